package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/sourcegraph/conc/pool"

	"github.com/pitchside/league-stats/internal/domain/league"
	"github.com/pitchside/league-stats/internal/domain/match"
	"github.com/pitchside/league-stats/internal/domain/matchevent"
	"github.com/pitchside/league-stats/internal/domain/participation"
	"github.com/pitchside/league-stats/internal/domain/player"
	"github.com/pitchside/league-stats/internal/domain/score"
	"github.com/pitchside/league-stats/internal/platform/cache"
)

// DefaultFormWindow is the trailing match count shown as a player's form.
const DefaultFormWindow = 5

// FormStats is the per-match stat payload attached to a form item when the
// player has a participation record for that match.
type FormStats struct {
	Goals       int
	Assists     int
	YellowCards int
	RedCards    int
	Rating      float64
	IsCaptain   bool
}

// FormItem is one match inside a player's form window, oldest first.
type FormItem struct {
	Result     score.Result
	MatchScore string
	MatchDate  time.Time
	Stats      *FormStats
}

// StandingRow is one ranked line of the league table.
type StandingRow struct {
	PlayerID    int64
	Name        string
	Games       int
	Goals       int
	Autogoals   int
	Assists     int
	YellowCards int
	RedCards    int
	// BestDefender is zeroed on standings rows; DefenderCounts exposes the
	// real tallies on demand.
	BestDefender int
	Points       int
	GoalsDiff    int
	AvgRating    *float64
	Form         []FormItem
}

type StandingsService struct {
	matchRepo  match.Repository
	recordRepo participation.Repository
	eventRepo  matchevent.Repository
	playerRepo player.Repository
	store      *cache.Store
	formWindow int
}

func NewStandingsService(
	matchRepo match.Repository,
	recordRepo participation.Repository,
	eventRepo matchevent.Repository,
	playerRepo player.Repository,
	store *cache.Store,
	formWindow int,
) *StandingsService {
	if formWindow <= 0 {
		formWindow = DefaultFormWindow
	}
	return &StandingsService{
		matchRepo:  matchRepo,
		recordRepo: recordRepo,
		eventRepo:  eventRepo,
		playerRepo: playerRepo,
		store:      store,
		formWindow: formWindow,
	}
}

// Standings computes the ranked table for one league instance. Results are
// cached per (instance, window) and recomputed after the cache TTL or an
// explicit invalidation.
func (s *StandingsService) Standings(ctx context.Context, instance league.Instance, window int) ([]StandingRow, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingsService.Standings")
	defer span.End()

	if instance.ChatID == 0 {
		return nil, fmt.Errorf("%w: chat id is required", ErrInvalidInput)
	}
	if window <= 0 {
		window = s.formWindow
	}

	key := fmt.Sprintf("standings:%d:%d:%d", instance.ChatID, instance.ThreadID, window)
	value, err := s.store.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		return s.computeStandings(ctx, instance, window)
	})
	if err != nil {
		return nil, err
	}

	return value.([]StandingRow), nil
}

// DefenderCounts returns best-defender tallies per player, omitting zeroes.
// Standings rows keep the column suppressed; this is the explicit lookup.
func (s *StandingsService) DefenderCounts(ctx context.Context, instance league.Instance) (map[int64]int, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingsService.DefenderCounts")
	defer span.End()

	if instance.ChatID == 0 {
		return nil, fmt.Errorf("%w: chat id is required", ErrInvalidInput)
	}

	records, err := s.recordRepo.ListByInstance(ctx, instance)
	if err != nil {
		return nil, fmt.Errorf("list participation records: %w", err)
	}

	counts := make(map[int64]int)
	for _, r := range records {
		if r.BestDefender {
			counts[r.PlayerID]++
		}
	}

	return counts, nil
}

type leagueSnapshot struct {
	matches   []match.Match
	records   []participation.Record
	events    []matchevent.Event
	histories map[int64]string
}

func (s *StandingsService) fetchSnapshot(ctx context.Context, instance league.Instance) (*leagueSnapshot, error) {
	snap := &leagueSnapshot{}

	p := pool.New().WithContext(ctx).WithCancelOnError()
	p.Go(func(ctx context.Context) error {
		matches, err := s.matchRepo.ListByInstance(ctx, instance)
		if err != nil {
			return fmt.Errorf("list matches: %w", err)
		}
		snap.matches = matches
		return nil
	})
	p.Go(func(ctx context.Context) error {
		records, err := s.recordRepo.ListByInstance(ctx, instance)
		if err != nil {
			return fmt.Errorf("list participation records: %w", err)
		}
		snap.records = records
		return nil
	})
	p.Go(func(ctx context.Context) error {
		events, err := s.eventRepo.ListByInstance(ctx, instance)
		if err != nil {
			return fmt.Errorf("list match events: %w", err)
		}
		snap.events = events
		return nil
	})
	p.Go(func(ctx context.Context) error {
		histories, err := s.recordRepo.HistoryByInstance(ctx, instance)
		if err != nil {
			return fmt.Errorf("load participation histories: %w", err)
		}
		snap.histories = histories
		return nil
	})
	if err := p.Wait(); err != nil {
		return nil, err
	}

	return snap, nil
}

func (s *StandingsService) computeStandings(ctx context.Context, instance league.Instance, window int) ([]StandingRow, error) {
	snap, err := s.fetchSnapshot(ctx, instance)
	if err != nil {
		return nil, err
	}

	playerIDs := make([]int64, 0, len(snap.records))
	seen := make(map[int64]struct{}, len(snap.records))
	for _, r := range snap.records {
		if _, ok := seen[r.PlayerID]; ok {
			continue
		}
		seen[r.PlayerID] = struct{}{}
		playerIDs = append(playerIDs, r.PlayerID)
	}
	sort.Slice(playerIDs, func(i, j int) bool { return playerIDs[i] < playerIDs[j] })

	var (
		players   map[int64]player.Player
		overrides map[int64]string
	)
	p := pool.New().WithContext(ctx).WithCancelOnError()
	p.Go(func(ctx context.Context) error {
		loaded, err := s.playerRepo.GetByIDs(ctx, playerIDs)
		if err != nil {
			return fmt.Errorf("load players: %w", err)
		}
		players = loaded
		return nil
	})
	p.Go(func(ctx context.Context) error {
		loaded, err := s.playerRepo.DisplayOverrides(ctx, instance)
		if err != nil {
			return fmt.Errorf("load display overrides: %w", err)
		}
		overrides = loaded
		return nil
	})
	if err := p.Wait(); err != nil {
		return nil, err
	}

	scores := make(map[int64]score.Pair, len(snap.matches))
	for _, m := range snap.matches {
		pair, parseErr := score.Parse(m.Score)
		if parseErr != nil {
			continue
		}
		scores[m.ID] = pair
	}

	assists := matchevent.CountAssists(snap.events)

	type accumulator struct {
		row         StandingRow
		ratingSum   float64
		ratingCount int
	}
	accs := make(map[int64]*accumulator, len(playerIDs))
	for _, id := range playerIDs {
		accs[id] = &accumulator{row: StandingRow{
			PlayerID: id,
			Name:     player.ResolveName(players[id], overrides),
		}}
	}

	for _, r := range snap.records {
		acc := accs[r.PlayerID]
		acc.row.Games++
		acc.row.Goals += r.Goals
		acc.row.Autogoals += r.Autogoals
		acc.row.YellowCards += r.YellowCards
		acc.row.RedCards += r.RedCards
		acc.row.Assists += assists.Count(r.PlayerID, r.MatchID)

		if !r.IsCaptain && r.Rating != nil {
			acc.ratingSum += *r.Rating
			acc.ratingCount++
		}

		pair, ok := scores[r.MatchID]
		if !ok {
			continue
		}
		acc.row.Points += score.Points(score.Outcome(pair, r.Team))
		acc.row.GoalsDiff += score.Diff(pair, r.Team)
	}

	recent := match.RecentWindow(snap.matches, window)
	rows := make([]StandingRow, 0, len(playerIDs))
	for _, id := range playerIDs {
		acc := accs[id]
		if acc.ratingCount > 0 {
			avg := acc.ratingSum / float64(acc.ratingCount)
			acc.row.AvgRating = &avg
		}
		acc.row.Form = buildForm(recent, scores, participation.DecodeHistory(snap.histories[id]), assists, id)
		rows = append(rows, acc.row)
	}

	// Fewer games ranks higher among otherwise equal rows.
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.Points != b.Points {
			return a.Points > b.Points
		}
		if a.Goals != b.Goals {
			return a.Goals > b.Goals
		}
		if a.Assists != b.Assists {
			return a.Assists > b.Assists
		}
		if a.Games != b.Games {
			return a.Games < b.Games
		}
		return a.PlayerID < b.PlayerID
	})

	return rows, nil
}

// buildForm walks the trailing match window in chronological order. A match
// without a snapshot becomes a Skipped item with no stat payload; a match
// with a snapshot but an unparseable score counts as a draw.
func buildForm(
	recent []match.Match,
	scores map[int64]score.Pair,
	history map[int64]participation.HistorySnapshot,
	assists matchevent.AssistIndex,
	playerID int64,
) []FormItem {
	if len(recent) == 0 {
		return nil
	}

	items := make([]FormItem, 0, len(recent))
	for _, m := range recent {
		displayScore := m.Score
		if displayScore == "" {
			displayScore = "-:-"
		}
		item := FormItem{
			Result:     score.ResultSkipped,
			MatchScore: displayScore,
			MatchDate:  m.Date,
		}

		snapshot, ok := history[m.ID]
		if ok {
			item.Result = score.ResultDraw
			if pair, scored := scores[m.ID]; scored {
				item.Result = score.Outcome(pair, snapshot.Team)
			}
			item.Stats = &FormStats{
				Goals:       snapshot.Goals,
				Assists:     assists.Count(playerID, m.ID),
				YellowCards: snapshot.YellowCards,
				RedCards:    snapshot.RedCards,
				Rating:      snapshot.Rating,
				IsCaptain:   snapshot.IsCaptain,
			}
		}

		items = append(items, item)
	}

	return items
}
