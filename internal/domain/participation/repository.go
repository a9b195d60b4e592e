package participation

import (
	"context"

	"github.com/pitchside/league-stats/internal/domain/league"
)

type Repository interface {
	// ListByInstance returns every participation record of the instance.
	ListByInstance(ctx context.Context, instance league.Instance) ([]Record, error)
	// HistoryByInstance returns per player the flattened history string
	// (see EncodeHistory) covering all of the player's matches in the
	// instance. Kept as a string so legacy snapshots remain readable.
	HistoryByInstance(ctx context.Context, instance league.Instance) (map[int64]string, error)
}
