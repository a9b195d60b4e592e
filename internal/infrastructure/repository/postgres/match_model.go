package postgres

import (
	"database/sql"
	"time"
)

type matchTableModel struct {
	ID         int64          `db:"id"`
	ChatID     int64          `db:"chat_id"`
	ThreadID   int64          `db:"thread_id"`
	Date       time.Time      `db:"date"`
	SkillLevel sql.NullString `db:"skill_level"`
	Score      sql.NullString `db:"score"`
	CreatedAt  time.Time      `db:"created_at"`
}
