package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/pitchside/league-stats/internal/domain/league"
	"github.com/pitchside/league-stats/internal/domain/player"
	qb "github.com/pitchside/league-stats/internal/platform/querybuilder"
)

type PlayerRepository struct {
	db *sqlx.DB
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) GetByIDs(ctx context.Context, ids []int64) (map[int64]player.Player, error) {
	if len(ids) == 0 {
		return map[int64]player.Player{}, nil
	}

	query, args, err := qb.Select("id", "name", "created_at", "updated_at").From("players").
		Where(qb.In("id", int64SliceToAny(ids))).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select players by ids query: %w", err)
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select players by ids: %w", err)
	}

	out := make(map[int64]player.Player, len(rows))
	for _, row := range rows {
		out[row.ID] = player.Player{ID: row.ID, Name: row.Name}
	}

	return out, nil
}

func (r *PlayerRepository) DisplayOverrides(ctx context.Context, instance league.Instance) (map[int64]string, error) {
	query, args, err := qb.Select("player_id", "chat_id", "thread_id", "display_name").From("player_profiles").
		Where(
			qb.Eq("chat_id", instance.ChatID),
			qb.Eq("thread_id", instance.ThreadID),
			qb.Expr("display_name <> ''"),
		).
		OrderBy("player_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select player profiles query: %w", err)
	}

	var rows []profileTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select player profiles: %w", err)
	}

	out := make(map[int64]string, len(rows))
	for _, row := range rows {
		out[row.PlayerID] = row.DisplayName
	}

	return out, nil
}
