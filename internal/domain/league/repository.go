package league

import "context"

// Repository lists the instances that have recorded matches.
type Repository interface {
	ListInstances(ctx context.Context) ([]Instance, error)
}
