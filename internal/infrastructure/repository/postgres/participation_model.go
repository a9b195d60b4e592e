package postgres

import (
	"database/sql"
	"time"

	"github.com/pitchside/league-stats/internal/domain/participation"
	"github.com/pitchside/league-stats/internal/domain/score"
)

type participantTableModel struct {
	MatchID      int64           `db:"match_id"`
	PlayerID     int64           `db:"player_id"`
	Team         string          `db:"team"`
	Goals        int             `db:"goals"`
	Autogoals    int             `db:"autogoals"`
	YellowCards  int             `db:"yellow_cards"`
	RedCards     int             `db:"red_cards"`
	BestDefender bool            `db:"best_defender"`
	IsCaptain    bool            `db:"is_captain"`
	Rating       sql.NullFloat64 `db:"rating"`
	MatchDate    time.Time       `db:"match_date"`
}

func (m participantTableModel) toRecord() participation.Record {
	record := participation.Record{
		MatchID:      m.MatchID,
		PlayerID:     m.PlayerID,
		Team:         score.Team(m.Team),
		Goals:        m.Goals,
		Autogoals:    m.Autogoals,
		YellowCards:  m.YellowCards,
		RedCards:     m.RedCards,
		BestDefender: m.BestDefender,
		IsCaptain:    m.IsCaptain,
	}
	if m.Rating.Valid {
		rating := m.Rating.Float64
		record.Rating = &rating
	}
	return record
}
