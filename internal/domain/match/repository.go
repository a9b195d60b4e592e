package match

import (
	"context"

	"github.com/pitchside/league-stats/internal/domain/league"
)

// Repository exposes match reads for one instance.
type Repository interface {
	// ListByInstance returns all matches of the instance, date descending.
	ListByInstance(ctx context.Context, instance league.Instance) ([]Match, error)
}
