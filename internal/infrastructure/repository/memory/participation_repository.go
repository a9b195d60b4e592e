package memory

import (
	"context"
	"sync"

	"github.com/pitchside/league-stats/internal/domain/league"
	"github.com/pitchside/league-stats/internal/domain/participation"
)

type ParticipationRepository struct {
	mu    sync.RWMutex
	items map[string][]participation.Record
}

func NewParticipationRepository(records []participation.Record, instanceOf func(matchID int64) (league.Instance, bool)) *ParticipationRepository {
	items := make(map[string][]participation.Record)
	for _, r := range records {
		instance, ok := instanceOf(r.MatchID)
		if !ok {
			continue
		}
		key := instance.Key()
		items[key] = append(items[key], r)
	}
	return &ParticipationRepository{items: items}
}

func (r *ParticipationRepository) ListByInstance(_ context.Context, instance league.Instance) ([]participation.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := r.items[instance.Key()]
	out := make([]participation.Record, len(items))
	copy(out, items)
	return out, nil
}

func (r *ParticipationRepository) HistoryByInstance(_ context.Context, instance league.Instance) (map[int64]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snapshots := make(map[int64][]participation.HistorySnapshot)
	for _, record := range r.items[instance.Key()] {
		snapshots[record.PlayerID] = append(snapshots[record.PlayerID], record.Snapshot())
	}

	out := make(map[int64]string, len(snapshots))
	for playerID, items := range snapshots {
		out[playerID] = participation.EncodeHistory(items)
	}
	return out, nil
}
