package memory

import (
	"context"
	"sync"

	"github.com/pitchside/league-stats/internal/domain/league"
	"github.com/pitchside/league-stats/internal/domain/player"
)

type PlayerRepository struct {
	mu        sync.RWMutex
	players   map[int64]player.Player
	overrides map[string]map[int64]string
}

func NewPlayerRepository(players []player.Player, profiles []player.Profile) *PlayerRepository {
	byID := make(map[int64]player.Player, len(players))
	for _, p := range players {
		byID[p.ID] = p
	}

	overrides := make(map[string]map[int64]string)
	for _, profile := range profiles {
		if profile.DisplayName == "" {
			continue
		}
		key := profile.Instance.Key()
		if overrides[key] == nil {
			overrides[key] = make(map[int64]string)
		}
		overrides[key][profile.PlayerID] = profile.DisplayName
	}

	return &PlayerRepository{players: byID, overrides: overrides}
}

func (r *PlayerRepository) GetByIDs(_ context.Context, ids []int64) (map[int64]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[int64]player.Player, len(ids))
	for _, id := range ids {
		if p, ok := r.players[id]; ok {
			out[id] = p
		}
	}
	return out, nil
}

func (r *PlayerRepository) DisplayOverrides(_ context.Context, instance league.Instance) (map[int64]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := r.overrides[instance.Key()]
	out := make(map[int64]string, len(items))
	for id, name := range items {
		out[id] = name
	}
	return out, nil
}
