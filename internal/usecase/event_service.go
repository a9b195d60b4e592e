package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/pitchside/league-stats/internal/domain/league"
	"github.com/pitchside/league-stats/internal/domain/match"
	"github.com/pitchside/league-stats/internal/domain/matchevent"
	"github.com/pitchside/league-stats/internal/domain/player"
	"github.com/pitchside/league-stats/internal/domain/score"
)

// EventView is one in-match event with player names resolved for display.
type EventView struct {
	ID         int64
	MatchID    int64
	Type       matchevent.Type
	Team       score.Team
	Minute     *int
	PlayerID   int64
	PlayerName string
	AssistID   int64
	AssistName string
	IsPenalty  bool
}

type EventService struct {
	matchRepo  match.Repository
	eventRepo  matchevent.Repository
	playerRepo player.Repository
}

func NewEventService(
	matchRepo match.Repository,
	eventRepo matchevent.Repository,
	playerRepo player.Repository,
) *EventService {
	return &EventService{
		matchRepo:  matchRepo,
		eventRepo:  eventRepo,
		playerRepo: playerRepo,
	}
}

// ListMatches returns the instance's matches, most recent first.
func (s *EventService) ListMatches(ctx context.Context, instance league.Instance) ([]match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.EventService.ListMatches")
	defer span.End()

	if instance.ChatID == 0 {
		return nil, fmt.Errorf("%w: chat id is required", ErrInvalidInput)
	}

	matches, err := s.matchRepo.ListByInstance(ctx, instance)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}

	return matches, nil
}

// EventsByMatch groups the instance's events per match, ordered by minute,
// with scorer and assist names resolved.
func (s *EventService) EventsByMatch(ctx context.Context, instance league.Instance) (map[int64][]EventView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.EventService.EventsByMatch")
	defer span.End()

	if instance.ChatID == 0 {
		return nil, fmt.Errorf("%w: chat id is required", ErrInvalidInput)
	}

	events, err := s.eventRepo.ListByInstance(ctx, instance)
	if err != nil {
		return nil, fmt.Errorf("list match events: %w", err)
	}

	playerIDs := make([]int64, 0, len(events))
	seen := make(map[int64]struct{})
	collect := func(id int64) {
		if id == 0 {
			return
		}
		if _, ok := seen[id]; ok {
			return
		}
		seen[id] = struct{}{}
		playerIDs = append(playerIDs, id)
	}
	for _, e := range events {
		collect(e.PlayerID)
		collect(e.AssistPlayerID)
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

	grouped := matchevent.GroupByMatch(events)
	out := make(map[int64][]EventView, len(grouped))
	for matchID, ordered := range grouped {
		views := make([]EventView, 0, len(ordered))
		for _, e := range ordered {
			view := EventView{
				ID:         e.ID,
				MatchID:    e.MatchID,
				Type:       e.Type,
				Team:       e.Team,
				Minute:     e.Minute,
				PlayerID:   e.PlayerID,
				PlayerName: player.ResolveName(players[e.PlayerID], overrides),
				AssistID:   e.AssistPlayerID,
				IsPenalty:  e.IsPenalty,
			}
			if e.AssistPlayerID != 0 {
				view.AssistName = player.ResolveName(players[e.AssistPlayerID], overrides)
			}
			views = append(views, view)
		}
		out[matchID] = views
	}

	return out, nil
}
