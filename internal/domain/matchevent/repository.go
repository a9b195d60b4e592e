package matchevent

import (
	"context"

	"github.com/pitchside/league-stats/internal/domain/league"
)

type Repository interface {
	// ListByInstance returns every event recorded for matches of the
	// instance, in insertion order.
	ListByInstance(ctx context.Context, instance league.Instance) ([]Event, error)
}
