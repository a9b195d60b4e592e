package postgres

import "time"

type playerTableModel struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type profileTableModel struct {
	PlayerID    int64  `db:"player_id"`
	ChatID      int64  `db:"chat_id"`
	ThreadID    int64  `db:"thread_id"`
	DisplayName string `db:"display_name"`
}
