package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/pitchside/league-stats/internal/domain/league"
	"github.com/pitchside/league-stats/internal/domain/match"
	qb "github.com/pitchside/league-stats/internal/platform/querybuilder"
)

type MatchRepository struct {
	db *sqlx.DB
}

var matchSelectColumns = []string{
	"id",
	"chat_id",
	"thread_id",
	"date",
	"skill_level",
	"score",
	"created_at",
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) ListByInstance(ctx context.Context, instance league.Instance) ([]match.Match, error) {
	query, args, err := qb.Select(matchSelectColumns...).From("matches").
		Where(
			qb.Eq("chat_id", instance.ChatID),
			qb.Eq("thread_id", instance.ThreadID),
		).
		OrderBy("date DESC", "id DESC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select matches query: %w", err)
	}

	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select matches: %w", err)
	}

	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		out = append(out, match.Match{
			ID:         row.ID,
			Instance:   league.Instance{ChatID: row.ChatID, ThreadID: row.ThreadID},
			Date:       row.Date,
			SkillLevel: row.SkillLevel.String,
			Score:      row.Score.String,
		})
	}

	return out, nil
}
