package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/pitchside/league-stats/internal/domain/league"
	"github.com/pitchside/league-stats/internal/domain/participation"
	qb "github.com/pitchside/league-stats/internal/platform/querybuilder"
)

type ParticipationRepository struct {
	db *sqlx.DB
}

var participantSelectColumns = []string{
	"mp.match_id",
	"mp.player_id",
	"mp.team",
	"mp.goals",
	"mp.autogoals",
	"mp.yellow_cards",
	"mp.red_cards",
	"mp.best_defender",
	"mp.is_captain",
	"mp.rating",
	"m.date AS match_date",
}

func NewParticipationRepository(db *sqlx.DB) *ParticipationRepository {
	return &ParticipationRepository{db: db}
}

func (r *ParticipationRepository) ListByInstance(ctx context.Context, instance league.Instance) ([]participation.Record, error) {
	rows, err := r.selectByInstance(ctx, instance)
	if err != nil {
		return nil, err
	}

	out := make([]participation.Record, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toRecord())
	}

	return out, nil
}

// HistoryByInstance rebuilds the flattened per-player history string from the
// structured participant rows, oldest match first. The string form is kept as
// the transport so legacy snapshots and fresh rows read identically
// downstream.
func (r *ParticipationRepository) HistoryByInstance(ctx context.Context, instance league.Instance) (map[int64]string, error) {
	rows, err := r.selectByInstance(ctx, instance)
	if err != nil {
		return nil, err
	}

	snapshots := make(map[int64][]participation.HistorySnapshot)
	for _, row := range rows {
		snapshots[row.PlayerID] = append(snapshots[row.PlayerID], row.toRecord().Snapshot())
	}

	out := make(map[int64]string, len(snapshots))
	for playerID, items := range snapshots {
		out[playerID] = participation.EncodeHistory(items)
	}

	return out, nil
}

func (r *ParticipationRepository) selectByInstance(ctx context.Context, instance league.Instance) ([]participantTableModel, error) {
	query, args, err := qb.Select(participantSelectColumns...).From("match_participants mp").
		Join("JOIN matches m ON m.id = mp.match_id").
		Where(
			qb.Eq("m.chat_id", instance.ChatID),
			qb.Eq("m.thread_id", instance.ThreadID),
		).
		OrderBy("m.date ASC", "mp.match_id ASC", "mp.player_id ASC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select match participants query: %w", err)
	}

	var rows []participantTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select match participants: %w", err)
	}

	return rows, nil
}
