package match

import (
	"time"

	"github.com/pitchside/league-stats/internal/domain/league"
)

// Match is one played game. The score stays empty until an organizer records
// it; aggregators must treat an unparseable score as undetermined, not as an
// error.
type Match struct {
	ID         int64
	Instance   league.Instance
	Date       time.Time
	SkillLevel string
	// Score is the raw "A:B" token, or empty when not recorded yet.
	Score string
}

// RecentWindow returns the n most recent matches reordered oldest first, the
// shape the form timeline is displayed in. The input must already be sorted
// date descending, which is how repositories return it.
func RecentWindow(matches []Match, n int) []Match {
	if n <= 0 || len(matches) == 0 {
		return nil
	}
	if n > len(matches) {
		n = len(matches)
	}

	out := make([]Match, n)
	for i := 0; i < n; i++ {
		out[i] = matches[n-1-i]
	}
	return out
}
