package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/pitchside/league-stats/internal/domain/league"
	"github.com/pitchside/league-stats/internal/domain/match"
)

type MatchRepository struct {
	mu    sync.RWMutex
	items map[string][]match.Match
}

func NewMatchRepository(matches []match.Match) *MatchRepository {
	items := make(map[string][]match.Match)
	for _, m := range matches {
		key := m.Instance.Key()
		items[key] = append(items[key], m)
	}

	// Repositories hand out matches date descending, newest first.
	for _, bucket := range items {
		sort.SliceStable(bucket, func(i, j int) bool {
			if !bucket[i].Date.Equal(bucket[j].Date) {
				return bucket[i].Date.After(bucket[j].Date)
			}
			return bucket[i].ID > bucket[j].ID
		})
	}

	return &MatchRepository{items: items}
}

func (r *MatchRepository) ListByInstance(_ context.Context, instance league.Instance) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := r.items[instance.Key()]
	out := make([]match.Match, len(items))
	copy(out, items)
	return out, nil
}
