package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/pitchside/league-stats/internal/domain/league"
	"github.com/pitchside/league-stats/internal/domain/match"
	"github.com/pitchside/league-stats/internal/domain/participation"
	"github.com/pitchside/league-stats/internal/domain/player"
	"github.com/pitchside/league-stats/internal/domain/score"
	"github.com/pitchside/league-stats/internal/platform/cache"
)

// CaptainRow is one line of the captain rating table.
type CaptainRow struct {
	PlayerID      int64
	Name          string
	Games         int
	Wins          int
	Draws         int
	Losses        int
	Points        int
	GoalsScored   int
	GoalsConceded int
	GoalsDiff     int
}

type CaptainService struct {
	matchRepo  match.Repository
	recordRepo participation.Repository
	playerRepo player.Repository
	store      *cache.Store
}

func NewCaptainService(
	matchRepo match.Repository,
	recordRepo participation.Repository,
	playerRepo player.Repository,
	store *cache.Store,
) *CaptainService {
	return &CaptainService{
		matchRepo:  matchRepo,
		recordRepo: recordRepo,
		playerRepo: playerRepo,
		store:      store,
	}
}

// Ratings folds captain-flagged participation records into the captain table.
// A match with an unparseable score still counts as played but contributes to
// none of wins, draws or losses.
func (s *CaptainService) Ratings(ctx context.Context, instance league.Instance) ([]CaptainRow, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CaptainService.Ratings")
	defer span.End()

	if instance.ChatID == 0 {
		return nil, fmt.Errorf("%w: chat id is required", ErrInvalidInput)
	}

	key := fmt.Sprintf("captains:%d:%d", instance.ChatID, instance.ThreadID)
	value, err := s.store.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		return s.computeRatings(ctx, instance)
	})
	if err != nil {
		return nil, err
	}

	return value.([]CaptainRow), nil
}

func (s *CaptainService) computeRatings(ctx context.Context, instance league.Instance) ([]CaptainRow, error) {
	matches, err := s.matchRepo.ListByInstance(ctx, instance)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	records, err := s.recordRepo.ListByInstance(ctx, instance)
	if err != nil {
		return nil, fmt.Errorf("list participation records: %w", err)
	}

	scores := make(map[int64]score.Pair, len(matches))
	for _, m := range matches {
		pair, parseErr := score.Parse(m.Score)
		if parseErr != nil {
			continue
		}
		scores[m.ID] = pair
	}

	rowsByPlayer := make(map[int64]*CaptainRow)
	playerIDs := make([]int64, 0)
	for _, r := range records {
		if !r.IsCaptain {
			continue
		}

		row, ok := rowsByPlayer[r.PlayerID]
		if !ok {
			row = &CaptainRow{PlayerID: r.PlayerID}
			rowsByPlayer[r.PlayerID] = row
			playerIDs = append(playerIDs, r.PlayerID)
		}
		row.Games++

		pair, scored := scores[r.MatchID]
		if !scored {
			continue
		}
		switch score.Outcome(pair, r.Team) {
		case score.ResultWin:
			row.Wins++
		case score.ResultDraw:
			row.Draws++
		case score.ResultLoss:
			row.Losses++
		}
		row.Points += score.Points(score.Outcome(pair, r.Team))
		row.GoalsScored += score.GoalsFor(pair, r.Team)
		row.GoalsConceded += score.GoalsAgainst(pair, r.Team)
	}

	sort.Slice(playerIDs, func(i, j int) bool { return playerIDs[i] < playerIDs[j] })

	players, err := s.playerRepo.GetByIDs(ctx, playerIDs)
	if err != nil {
		return nil, fmt.Errorf("load players: %w", err)
	}
	overrides, err := s.playerRepo.DisplayOverrides(ctx, instance)
	if err != nil {
		return nil, fmt.Errorf("load display overrides: %w", err)
	}

	rows := make([]CaptainRow, 0, len(playerIDs))
	for _, id := range playerIDs {
		row := rowsByPlayer[id]
		row.Name = player.ResolveName(players[id], overrides)
		row.GoalsDiff = row.GoalsScored - row.GoalsConceded
		rows = append(rows, *row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.Points != b.Points {
			return a.Points > b.Points
		}
		if a.Wins != b.Wins {
			return a.Wins > b.Wins
		}
		if a.GoalsScored != b.GoalsScored {
			return a.GoalsScored > b.GoalsScored
		}
		return a.PlayerID < b.PlayerID
	})

	return rows, nil
}
