package memory

import (
	"context"
	"sync"

	"github.com/pitchside/league-stats/internal/domain/league"
	"github.com/pitchside/league-stats/internal/domain/matchevent"
)

type EventRepository struct {
	mu    sync.RWMutex
	items map[string][]matchevent.Event
}

func NewEventRepository(events []matchevent.Event, instanceOf func(matchID int64) (league.Instance, bool)) *EventRepository {
	items := make(map[string][]matchevent.Event)
	for _, e := range events {
		instance, ok := instanceOf(e.MatchID)
		if !ok {
			continue
		}
		key := instance.Key()
		items[key] = append(items[key], e)
	}
	return &EventRepository{items: items}
}

func (r *EventRepository) ListByInstance(_ context.Context, instance league.Instance) ([]matchevent.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := r.items[instance.Key()]
	out := make([]matchevent.Event, len(items))
	copy(out, items)
	return out, nil
}
