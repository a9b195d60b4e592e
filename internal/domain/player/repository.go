package player

import (
	"context"

	"github.com/pitchside/league-stats/internal/domain/league"
)

type Repository interface {
	// GetByIDs resolves canonical players for the given ids; missing ids are
	// simply absent from the result.
	GetByIDs(ctx context.Context, ids []int64) (map[int64]Player, error)
	// DisplayOverrides returns the per-instance display-name overrides,
	// keyed by player id. Players without an override are absent.
	DisplayOverrides(ctx context.Context, instance league.Instance) (map[int64]string, error)
}
