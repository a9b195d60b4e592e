package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/pitchside/league-stats/internal/domain/league"
	"github.com/pitchside/league-stats/internal/domain/matchevent"
	qb "github.com/pitchside/league-stats/internal/platform/querybuilder"
)

type EventRepository struct {
	db *sqlx.DB
}

var eventSelectColumns = []string{
	"me.id",
	"me.match_id",
	"me.player_id",
	"me.team",
	"me.type",
	"me.minute",
	"me.assist_player_id",
	"me.metadata",
}

func NewEventRepository(db *sqlx.DB) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) ListByInstance(ctx context.Context, instance league.Instance) ([]matchevent.Event, error) {
	query, args, err := qb.Select(eventSelectColumns...).From("match_events me").
		Join("JOIN matches m ON m.id = me.match_id").
		Where(
			qb.Eq("m.chat_id", instance.ChatID),
			qb.Eq("m.thread_id", instance.ThreadID),
		).
		OrderBy("me.id ASC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select match events query: %w", err)
	}

	var rows []eventTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select match events: %w", err)
	}

	out := make([]matchevent.Event, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toEvent())
	}

	return out, nil
}
