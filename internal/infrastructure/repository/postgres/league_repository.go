package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/pitchside/league-stats/internal/domain/league"
	qb "github.com/pitchside/league-stats/internal/platform/querybuilder"
)

type LeagueRepository struct {
	db *sqlx.DB
}

func NewLeagueRepository(db *sqlx.DB) *LeagueRepository {
	return &LeagueRepository{db: db}
}

type instanceTableModel struct {
	ChatID   int64 `db:"chat_id"`
	ThreadID int64 `db:"thread_id"`
}

// ListInstances derives the instance list from recorded matches; there is no
// separate instances table.
func (r *LeagueRepository) ListInstances(ctx context.Context) ([]league.Instance, error) {
	query, args, err := qb.Select("DISTINCT chat_id", "thread_id").From("matches").
		OrderBy("chat_id", "thread_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select instances query: %w", err)
	}

	var rows []instanceTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select instances: %w", err)
	}

	out := make([]league.Instance, 0, len(rows))
	for _, row := range rows {
		out = append(out, league.Instance{ChatID: row.ChatID, ThreadID: row.ThreadID})
	}

	return out, nil
}
