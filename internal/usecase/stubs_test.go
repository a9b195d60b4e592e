package usecase

import (
	"context"
	"sync"

	"github.com/pitchside/league-stats/internal/domain/league"
	"github.com/pitchside/league-stats/internal/domain/match"
	"github.com/pitchside/league-stats/internal/domain/matchevent"
	"github.com/pitchside/league-stats/internal/domain/participation"
	"github.com/pitchside/league-stats/internal/domain/player"
)

type stubLeagueRepository struct {
	instances []league.Instance
	err       error
}

func (s *stubLeagueRepository) ListInstances(_ context.Context) ([]league.Instance, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make([]league.Instance, len(s.instances))
	copy(out, s.instances)
	return out, nil
}

type stubMatchRepository struct {
	byInstance map[string][]match.Match
	err        error

	mu    sync.Mutex
	calls int
}

func (s *stubMatchRepository) ListByInstance(_ context.Context, instance league.Instance) ([]match.Match, error) {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	items := s.byInstance[instance.Key()]
	out := make([]match.Match, len(items))
	copy(out, items)
	return out, nil
}

type stubParticipationRepository struct {
	byInstance map[string][]participation.Record
	// histories overrides the derived encoding when set.
	histories map[string]map[int64]string
}

func (s *stubParticipationRepository) ListByInstance(_ context.Context, instance league.Instance) ([]participation.Record, error) {
	items := s.byInstance[instance.Key()]
	out := make([]participation.Record, len(items))
	copy(out, items)
	return out, nil
}

func (s *stubParticipationRepository) HistoryByInstance(_ context.Context, instance league.Instance) (map[int64]string, error) {
	if explicit, ok := s.histories[instance.Key()]; ok {
		return explicit, nil
	}

	snapshots := make(map[int64][]participation.HistorySnapshot)
	for _, r := range s.byInstance[instance.Key()] {
		snapshots[r.PlayerID] = append(snapshots[r.PlayerID], r.Snapshot())
	}
	out := make(map[int64]string, len(snapshots))
	for playerID, items := range snapshots {
		out[playerID] = participation.EncodeHistory(items)
	}
	return out, nil
}

type stubEventRepository struct {
	byInstance map[string][]matchevent.Event
}

func (s *stubEventRepository) ListByInstance(_ context.Context, instance league.Instance) ([]matchevent.Event, error) {
	items := s.byInstance[instance.Key()]
	out := make([]matchevent.Event, len(items))
	copy(out, items)
	return out, nil
}

type stubPlayerRepository struct {
	players   map[int64]player.Player
	overrides map[string]map[int64]string
}

func (s *stubPlayerRepository) GetByIDs(_ context.Context, ids []int64) (map[int64]player.Player, error) {
	out := make(map[int64]player.Player, len(ids))
	for _, id := range ids {
		if p, ok := s.players[id]; ok {
			out[id] = p
		}
	}
	return out, nil
}

func (s *stubPlayerRepository) DisplayOverrides(_ context.Context, instance league.Instance) (map[int64]string, error) {
	return s.overrides[instance.Key()], nil
}

func ratingOf(v float64) *float64 {
	return &v
}

func minuteOf(v int) *int {
	return &v
}
