package postgres

import (
	"database/sql"
	"fmt"
	"testing"

	"github.com/pitchside/league-stats/internal/domain/matchevent"
	"github.com/pitchside/league-stats/internal/domain/score"
)

func TestIsNotFound(t *testing.T) {
	if !isNotFound(sql.ErrNoRows) {
		t.Fatalf("expected true for sql.ErrNoRows")
	}
	if isNotFound(fmt.Errorf("pq: relation matches does not exist")) {
		t.Fatalf("expected false for unrelated error")
	}
}

func TestDecodeJSONMap(t *testing.T) {
	t.Run("decodes object", func(t *testing.T) {
		got := decodeJSONMap(`{"is_penalty":true}`)
		if v, _ := got["is_penalty"].(bool); !v {
			t.Fatalf("expected is_penalty=true, got %v", got)
		}
	})

	t.Run("empty input yields empty map", func(t *testing.T) {
		if got := decodeJSONMap("  "); len(got) != 0 {
			t.Fatalf("expected empty map, got %v", got)
		}
	})

	t.Run("invalid input yields empty map", func(t *testing.T) {
		if got := decodeJSONMap("{broken"); len(got) != 0 {
			t.Fatalf("expected empty map, got %v", got)
		}
	})
}

func TestEventTableModel_ToEvent(t *testing.T) {
	model := eventTableModel{
		ID:             7,
		MatchID:        3,
		PlayerID:       42,
		Team:           "White",
		Type:           "goal",
		Minute:         sql.NullInt64{Int64: 55, Valid: true},
		AssistPlayerID: sql.NullInt64{Int64: 43, Valid: true},
		Metadata:       sql.NullString{String: `{"is_penalty":true}`, Valid: true},
	}

	event := model.toEvent()
	if event.Team != score.TeamWhite || event.Type != matchevent.TypeGoal {
		t.Fatalf("unexpected event mapping: %+v", event)
	}
	if event.Minute == nil || *event.Minute != 55 {
		t.Fatalf("unexpected minute: %v", event.Minute)
	}
	if event.AssistPlayerID != 43 || !event.IsPenalty {
		t.Fatalf("unexpected assist/penalty mapping: %+v", event)
	}
}

func TestEventTableModel_ToEvent_NullColumns(t *testing.T) {
	event := eventTableModel{ID: 1, MatchID: 2, PlayerID: 3, Team: "Red", Type: "card_yellow"}.toEvent()
	if event.Minute != nil {
		t.Fatalf("expected nil minute, got %v", *event.Minute)
	}
	if event.AssistPlayerID != 0 || event.IsPenalty {
		t.Fatalf("unexpected defaults: %+v", event)
	}
}

func TestParticipantTableModel_ToRecord(t *testing.T) {
	model := participantTableModel{
		MatchID:   12,
		PlayerID:  8,
		Team:      "Red",
		Goals:     2,
		IsCaptain: false,
		Rating:    sql.NullFloat64{Float64: 7.5, Valid: true},
	}

	record := model.toRecord()
	if record.Rating == nil || *record.Rating != 7.5 {
		t.Fatalf("unexpected rating: %v", record.Rating)
	}
	if record.Team != score.TeamRed || record.Goals != 2 {
		t.Fatalf("unexpected record mapping: %+v", record)
	}

	model.Rating = sql.NullFloat64{}
	if got := model.toRecord(); got.Rating != nil {
		t.Fatalf("expected nil rating for null column, got %v", *got.Rating)
	}
}
