package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pitchside/league-stats/internal/domain/league"
	"github.com/pitchside/league-stats/internal/domain/match"
	"github.com/pitchside/league-stats/internal/domain/participation"
	"github.com/pitchside/league-stats/internal/domain/player"
	"github.com/pitchside/league-stats/internal/domain/score"
	"github.com/pitchside/league-stats/internal/platform/cache"
)

func TestCaptainService_Ratings(t *testing.T) {
	t.Parallel()

	instance := league.Instance{ChatID: 21}
	key := instance.Key()

	matchRepo := &stubMatchRepository{byInstance: map[string][]match.Match{
		key: {
			{ID: 4, Instance: instance, Score: "abc"},
			{ID: 3, Instance: instance, Score: "2:2"},
			{ID: 2, Instance: instance, Score: "3:1"},
			{ID: 1, Instance: instance, Score: "1:3"},
		},
	}}
	recordRepo := &stubParticipationRepository{byInstance: map[string][]participation.Record{
		key: {
			{MatchID: 1, PlayerID: 10, Team: score.TeamWhite, IsCaptain: true},
			{MatchID: 3, PlayerID: 10, Team: score.TeamWhite, IsCaptain: true},
			{MatchID: 4, PlayerID: 10, Team: score.TeamWhite, IsCaptain: true},
			{MatchID: 2, PlayerID: 20, Team: score.TeamWhite, IsCaptain: true},
			{MatchID: 1, PlayerID: 30, Team: score.TeamRed},
		},
	}}
	playerRepo := &stubPlayerRepository{players: map[int64]player.Player{
		10: {ID: 10, Name: "Alpha"},
		20: {ID: 20, Name: "Bravo"},
		30: {ID: 30, Name: "NotACaptain"},
	}}

	service := NewCaptainService(matchRepo, recordRepo, playerRepo, cache.NewStore(time.Minute))

	rows, err := service.Ratings(context.Background(), instance)
	if err != nil {
		t.Fatalf("Ratings error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 captain rows, got %d", len(rows))
	}

	top := rows[0]
	if top.PlayerID != 10 || top.Name != "Alpha" {
		t.Fatalf("unexpected top captain: %+v", top)
	}
	if top.Games != 3 || top.Wins != 1 || top.Draws != 1 || top.Losses != 0 {
		t.Fatalf("unexpected top record: %+v", top)
	}
	if top.Points != 4 || top.GoalsScored != 5 || top.GoalsConceded != 3 || top.GoalsDiff != 2 {
		t.Fatalf("unexpected top tallies: %+v", top)
	}

	second := rows[1]
	if second.PlayerID != 20 || second.Games != 1 || second.Losses != 1 || second.Points != 0 {
		t.Fatalf("unexpected second captain: %+v", second)
	}
	if second.GoalsScored != 1 || second.GoalsConceded != 3 || second.GoalsDiff != -2 {
		t.Fatalf("unexpected second tallies: %+v", second)
	}
}

func TestCaptainService_WinsBreakPointsTies(t *testing.T) {
	t.Parallel()

	instance := league.Instance{ChatID: 23}
	key := instance.Key()

	// Three draws equal one win plus two losses on points.
	matchRepo := &stubMatchRepository{byInstance: map[string][]match.Match{
		key: {
			{ID: 6, Instance: instance, Score: "1:2"},
			{ID: 5, Instance: instance, Score: "2:1"},
			{ID: 4, Instance: instance, Score: "2:1"},
			{ID: 3, Instance: instance, Score: "1:1"},
			{ID: 2, Instance: instance, Score: "1:1"},
			{ID: 1, Instance: instance, Score: "1:1"},
		},
	}}
	recordRepo := &stubParticipationRepository{byInstance: map[string][]participation.Record{
		key: {
			{MatchID: 1, PlayerID: 10, Team: score.TeamWhite, IsCaptain: true},
			{MatchID: 2, PlayerID: 10, Team: score.TeamWhite, IsCaptain: true},
			{MatchID: 3, PlayerID: 10, Team: score.TeamWhite, IsCaptain: true},
			{MatchID: 4, PlayerID: 20, Team: score.TeamRed, IsCaptain: true},
			{MatchID: 5, PlayerID: 20, Team: score.TeamWhite, IsCaptain: true},
			{MatchID: 6, PlayerID: 20, Team: score.TeamRed, IsCaptain: true},
		},
	}}
	playerRepo := &stubPlayerRepository{players: map[int64]player.Player{
		10: {ID: 10, Name: "Drawer"},
		20: {ID: 20, Name: "Winner"},
	}}

	service := NewCaptainService(matchRepo, recordRepo, playerRepo, cache.NewStore(time.Minute))

	rows, err := service.Ratings(context.Background(), instance)
	if err != nil {
		t.Fatalf("Ratings error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].Points != rows[1].Points {
		t.Fatalf("fixture must produce a points tie: %+v", rows)
	}
	if rows[0].PlayerID != 20 || rows[0].Wins != 1 {
		t.Fatalf("more wins must rank higher among ties: %+v", rows[0])
	}
}

func TestCaptainService_InvalidInstance(t *testing.T) {
	t.Parallel()

	service := NewCaptainService(&stubMatchRepository{}, &stubParticipationRepository{}, &stubPlayerRepository{}, cache.NewStore(time.Minute))

	if _, err := service.Ratings(context.Background(), league.Instance{}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
