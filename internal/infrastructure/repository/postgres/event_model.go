package postgres

import (
	"database/sql"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/pitchside/league-stats/internal/domain/matchevent"
	"github.com/pitchside/league-stats/internal/domain/score"
)

type eventTableModel struct {
	ID             int64          `db:"id"`
	MatchID        int64          `db:"match_id"`
	PlayerID       int64          `db:"player_id"`
	Team           string         `db:"team"`
	Type           string         `db:"type"`
	Minute         sql.NullInt64  `db:"minute"`
	AssistPlayerID sql.NullInt64  `db:"assist_player_id"`
	Metadata       sql.NullString `db:"metadata"`
}

func (m eventTableModel) toEvent() matchevent.Event {
	event := matchevent.Event{
		ID:             m.ID,
		MatchID:        m.MatchID,
		PlayerID:       m.PlayerID,
		Team:           score.Team(m.Team),
		Type:           matchevent.Type(m.Type),
		AssistPlayerID: m.AssistPlayerID.Int64,
	}
	if m.Minute.Valid {
		minute := int(m.Minute.Int64)
		event.Minute = &minute
	}
	metadata := decodeJSONMap(m.Metadata.String)
	if isPenalty, ok := metadata["is_penalty"].(bool); ok {
		event.IsPenalty = isPenalty
	}
	return event
}

func decodeJSONMap(raw string) map[string]any {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return map[string]any{}
	}
	out := make(map[string]any)
	if err := sonic.Unmarshal([]byte(raw), &out); err != nil {
		return map[string]any{}
	}
	return out
}
