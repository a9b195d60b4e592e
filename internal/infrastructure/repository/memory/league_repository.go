package memory

import (
	"context"
	"sync"

	"github.com/pitchside/league-stats/internal/domain/league"
)

type LeagueRepository struct {
	mu        sync.RWMutex
	instances []league.Instance
}

func NewLeagueRepository(instances []league.Instance) *LeagueRepository {
	out := make([]league.Instance, len(instances))
	copy(out, instances)
	return &LeagueRepository{instances: out}
}

func (r *LeagueRepository) ListInstances(_ context.Context) ([]league.Instance, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]league.Instance, len(r.instances))
	copy(out, r.instances)
	return out, nil
}
