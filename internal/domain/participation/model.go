package participation

import "github.com/pitchside/league-stats/internal/domain/score"

// Record is one player's recorded involvement in one match. There is at most
// one record per (match, player) pair; the engine never mutates it.
type Record struct {
	MatchID  int64
	PlayerID int64
	Team     score.Team
	Goals    int
	// Autogoals are own goals.
	Autogoals    int
	YellowCards  int
	RedCards     int
	BestDefender bool
	IsCaptain    bool
	// Rating is nil when the match was not rated. By the current scoring
	// convention it is only meaningful for non-captains.
	Rating *float64
}

// Snapshot captures Record for the history projection.
func (r Record) Snapshot() HistorySnapshot {
	rating := 0.0
	if r.Rating != nil {
		rating = *r.Rating
	}
	return HistorySnapshot{
		MatchID:     r.MatchID,
		Team:        r.Team,
		Goals:       r.Goals,
		YellowCards: r.YellowCards,
		RedCards:    r.RedCards,
		Rating:      rating,
		IsCaptain:   r.IsCaptain,
	}
}
