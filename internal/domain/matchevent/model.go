package matchevent

import "github.com/pitchside/league-stats/internal/domain/score"

type Type string

const (
	TypeGoal       Type = "goal"
	TypeAutogoal   Type = "autogoal"
	TypeCardYellow Type = "card_yellow"
	TypeCardRed    Type = "card_red"
)

// Event is one in-match occurrence, owned by the scorer's participation
// record.
type Event struct {
	ID       int64
	MatchID  int64
	PlayerID int64
	Team     score.Team
	Type     Type
	// Minute is nil when the time was not tracked.
	Minute *int
	// AssistPlayerID is zero when no assist was credited.
	AssistPlayerID int64
	IsPenalty      bool
}
