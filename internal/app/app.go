package app

import (
	"fmt"
	"net/http"

	"github.com/pitchside/league-stats/external/boardshot"
	"github.com/pitchside/league-stats/internal/config"
	"github.com/pitchside/league-stats/internal/domain/league"
	"github.com/pitchside/league-stats/internal/domain/match"
	"github.com/pitchside/league-stats/internal/domain/matchevent"
	"github.com/pitchside/league-stats/internal/domain/participation"
	"github.com/pitchside/league-stats/internal/domain/player"
	"github.com/pitchside/league-stats/internal/infrastructure/repository/memory"
	"github.com/pitchside/league-stats/internal/infrastructure/repository/postgres"
	"github.com/pitchside/league-stats/internal/interfaces/httpapi"
	"github.com/pitchside/league-stats/internal/platform/cache"
	"github.com/pitchside/league-stats/internal/platform/logging"
	"github.com/pitchside/league-stats/internal/platform/resilience"
	"github.com/pitchside/league-stats/internal/usecase"
)

// NewHTTPServer wires repositories, services and the router. The returned
// cleanup releases the database handle and is safe to call on error paths.
func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, func(), error) {
	if logger == nil {
		logger = logging.Default()
	}

	var (
		leagueRepo league.Repository
		matchRepo  match.Repository
		recordRepo participation.Repository
		eventRepo  matchevent.Repository
		playerRepo player.Repository
	)
	cleanup := func() {}

	if cfg.DBURL != "" {
		db, err := openDB(cfg, logger)
		if err != nil {
			return nil, cleanup, err
		}
		cleanup = func() { _ = db.Close() }

		leagueRepo = postgres.NewLeagueRepository(db)
		matchRepo = postgres.NewMatchRepository(db)
		recordRepo = postgres.NewParticipationRepository(db)
		eventRepo = postgres.NewEventRepository(db)
		playerRepo = postgres.NewPlayerRepository(db)
	} else {
		logger.Warn("DB_URL is empty, serving seeded in-memory data")

		matches := memory.SeedMatches()
		instanceOf := memory.MatchInstanceIndex(matches)

		leagueRepo = memory.NewLeagueRepository(memory.SeedInstances())
		matchRepo = memory.NewMatchRepository(matches)
		recordRepo = memory.NewParticipationRepository(memory.SeedRecords(), instanceOf)
		eventRepo = memory.NewEventRepository(memory.SeedEvents(), instanceOf)
		playerRepo = memory.NewPlayerRepository(memory.SeedPlayers(), memory.SeedProfiles())
	}

	store := cache.NewStore(cfg.CacheTTL)

	standingsSvc := usecase.NewStandingsService(matchRepo, recordRepo, eventRepo, playerRepo, store, cfg.FormWindow)
	captainSvc := usecase.NewCaptainService(matchRepo, recordRepo, playerRepo, store)
	instanceSvc := usecase.NewInstanceService(leagueRepo)
	eventSvc := usecase.NewEventService(matchRepo, eventRepo, playerRepo)

	var renderer usecase.StandingsImageRenderer
	if cfg.BoardshotEnabled {
		renderer = boardshot.NewClient(boardshot.ClientConfig{
			BaseURL:    cfg.BoardshotBaseURL,
			Token:      cfg.BoardshotToken,
			Timeout:    cfg.BoardshotTimeout,
			MaxRetries: cfg.BoardshotMaxRetries,
			Logger:     logger,
			CircuitBreaker: resilience.CircuitBreakerConfig{
				Enabled:          cfg.BoardshotCircuitEnabled,
				FailureThreshold: cfg.BoardshotCircuitFailureCount,
				OpenTimeout:      cfg.BoardshotCircuitOpenTimeout,
				HalfOpenMaxReq:   cfg.BoardshotCircuitHalfOpenMaxReq,
			},
		})
	}

	exportSvc := usecase.NewExportService(standingsSvc, captainSvc, renderer)
	recomputeSvc := usecase.NewRecomputeService(leagueRepo, standingsSvc, captainSvc, store, logger)

	handler := httpapi.NewHandler(instanceSvc, standingsSvc, captainSvc, eventSvc, exportSvc, recomputeSvc, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins, cfg.InternalJobToken)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		cleanup()
		return nil, func() {}, fmt.Errorf("http server addr cannot be empty")
	}

	return server, cleanup, nil
}
