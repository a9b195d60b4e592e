package usecase

import (
	"context"
	"fmt"

	"github.com/pitchside/league-stats/internal/domain/league"
)

type InstanceService struct {
	leagueRepo league.Repository
}

func NewInstanceService(leagueRepo league.Repository) *InstanceService {
	return &InstanceService{leagueRepo: leagueRepo}
}

// List returns every league instance known to the store.
func (s *InstanceService) List(ctx context.Context) ([]league.Instance, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.InstanceService.List")
	defer span.End()

	instances, err := s.leagueRepo.ListInstances(ctx)
	if err != nil {
		return nil, fmt.Errorf("list league instances: %w", err)
	}

	return instances, nil
}
