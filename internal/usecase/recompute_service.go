package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/pitchside/league-stats/internal/domain/league"
	"github.com/pitchside/league-stats/internal/platform/cache"
	"github.com/pitchside/league-stats/internal/platform/logging"
)

const (
	defaultRecomputeWorkers = 4
	maxRecomputeWorkers     = 16

	recomputeStatusSuccess = "success"
	recomputeStatusFailed  = "failed"
)

type RecomputeInput struct {
	MaxWorkers int
}

type RecomputeResult struct {
	InstanceCount int                   `json:"instance_count"`
	SuccessCount  int                   `json:"success_count"`
	FailedCount   int                   `json:"failed_count"`
	WorkerCount   int                   `json:"worker_count"`
	Tasks         []RecomputeTaskResult `json:"tasks"`
}

type RecomputeTaskResult struct {
	ChatID     int64  `json:"chat_id"`
	ThreadID   int64  `json:"thread_id"`
	Status     string `json:"status"`
	DurationMs int64  `json:"duration_ms"`
	Message    string `json:"message,omitempty"`
}

// RecomputeService drops cached tables and rebuilds them for every known
// league instance, fanning the work out over a bounded pool.
type RecomputeService struct {
	leagueRepo   league.Repository
	standingsSvc *StandingsService
	captainSvc   *CaptainService
	store        *cache.Store
	logger       *logging.Logger
}

func NewRecomputeService(
	leagueRepo league.Repository,
	standingsSvc *StandingsService,
	captainSvc *CaptainService,
	store *cache.Store,
	logger *logging.Logger,
) *RecomputeService {
	return &RecomputeService{
		leagueRepo:   leagueRepo,
		standingsSvc: standingsSvc,
		captainSvc:   captainSvc,
		store:        store,
		logger:       logger,
	}
}

// Invalidate evicts every cached view of one instance.
func (s *RecomputeService) Invalidate(ctx context.Context, instance league.Instance) {
	s.store.DeletePrefix(ctx, fmt.Sprintf("standings:%d:%d:", instance.ChatID, instance.ThreadID))
	s.store.Delete(ctx, fmt.Sprintf("captains:%d:%d", instance.ChatID, instance.ThreadID))
}

// WarmAll recomputes standings and captain tables for all instances.
func (s *RecomputeService) WarmAll(ctx context.Context, input RecomputeInput) (RecomputeResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RecomputeService.WarmAll")
	defer span.End()

	instances, err := s.leagueRepo.ListInstances(ctx)
	if err != nil {
		return RecomputeResult{}, fmt.Errorf("list league instances: %w", err)
	}

	workerCount := input.MaxWorkers
	if workerCount <= 0 {
		workerCount = defaultRecomputeWorkers
	}
	if workerCount > maxRecomputeWorkers {
		workerCount = maxRecomputeWorkers
	}
	if workerCount > len(instances) && len(instances) > 0 {
		workerCount = len(instances)
	}

	result := RecomputeResult{
		InstanceCount: len(instances),
		WorkerCount:   workerCount,
	}
	if len(instances) == 0 {
		return result, nil
	}

	results := make(chan RecomputeTaskResult, len(instances))

	var successCount atomic.Int32
	var failedCount atomic.Int32

	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return RecomputeResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var workers sync.WaitGroup
	for _, instance := range instances {
		instance := instance
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			start := time.Now()
			row := RecomputeTaskResult{
				ChatID:   instance.ChatID,
				ThreadID: instance.ThreadID,
				Status:   recomputeStatusSuccess,
			}

			if warmErr := s.warmInstance(ctx, instance); warmErr != nil {
				row.Status = recomputeStatusFailed
				row.Message = warmErr.Error()
				failedCount.Add(1)
				s.logger.ErrorContext(ctx, "recompute instance failed",
					"chat_id", instance.ChatID,
					"thread_id", instance.ThreadID,
					"error", warmErr,
				)
			} else {
				successCount.Add(1)
			}

			row.DurationMs = time.Since(start).Milliseconds()
			results <- row
		}); err != nil {
			workers.Done()
			return RecomputeResult{}, fmt.Errorf("submit task to worker pool: %w", err)
		}
	}

	workers.Wait()
	close(results)

	for row := range results {
		result.Tasks = append(result.Tasks, row)
	}
	sort.SliceStable(result.Tasks, func(i, j int) bool {
		if result.Tasks[i].ChatID != result.Tasks[j].ChatID {
			return result.Tasks[i].ChatID < result.Tasks[j].ChatID
		}
		return result.Tasks[i].ThreadID < result.Tasks[j].ThreadID
	})

	result.SuccessCount = int(successCount.Load())
	result.FailedCount = int(failedCount.Load())
	return result, nil
}

func (s *RecomputeService) warmInstance(ctx context.Context, instance league.Instance) error {
	s.Invalidate(ctx, instance)

	if _, err := s.standingsSvc.Standings(ctx, instance, 0); err != nil {
		return fmt.Errorf("recompute standings: %w", err)
	}
	if _, err := s.captainSvc.Ratings(ctx, instance); err != nil {
		return fmt.Errorf("recompute captain ratings: %w", err)
	}
	return nil
}
