package score

import (
	"errors"
	"strconv"
	"strings"
)

// ErrInvalidScore marks a score token that is missing or not "A:B".
// Aggregators treat the affected match as undetermined instead of failing.
var ErrInvalidScore = errors.New("invalid score")

// Team is the side a player was drafted to for one match.
type Team string

const (
	TeamWhite Team = "White"
	TeamRed   Team = "Red"
)

// Result of one match from one team's perspective.
type Result string

const (
	ResultWin  Result = "W"
	ResultDraw Result = "D"
	ResultLoss Result = "L"
	// ResultSkipped marks a match inside a form window the player has no
	// participation record for.
	ResultSkipped Result = "S"
)

// Pair holds the two raw tallies of a score token, positionally.
// The mapping between position and team is fixed by Outcome; callers must
// not reinterpret Left/Right themselves.
type Pair struct {
	Left  int
	Right int
}

// Parse validates a score token against the "A:B" shape.
func Parse(token string) (Pair, error) {
	token = strings.TrimSpace(token)
	left, right, ok := strings.Cut(token, ":")
	if !ok {
		return Pair{}, ErrInvalidScore
	}

	l, err := strconv.Atoi(strings.TrimSpace(left))
	if err != nil || l < 0 {
		return Pair{}, ErrInvalidScore
	}
	r, err := strconv.Atoi(strings.TrimSpace(right))
	if err != nil || r < 0 {
		return Pair{}, ErrInvalidScore
	}

	return Pair{Left: l, Right: r}, nil
}

// Outcome derives the match result for a team.
//
// By convention inherited from the recorded data, White wins when the left
// tally is LOWER than the right one, and Red wins when it is higher. The
// asymmetry is deliberate; changing it silently flips every standing.
func Outcome(p Pair, team Team) Result {
	if p.Left == p.Right {
		return ResultDraw
	}

	switch team {
	case TeamWhite:
		if p.Left < p.Right {
			return ResultWin
		}
		return ResultLoss
	case TeamRed:
		if p.Left > p.Right {
			return ResultWin
		}
		return ResultLoss
	default:
		return ResultDraw
	}
}

// Points maps a result to tournament points.
func Points(r Result) int {
	switch r {
	case ResultWin:
		return 3
	case ResultDraw:
		return 1
	default:
		return 0
	}
}

// GoalsFor returns the goals scored by the given team.
// Same left/right convention as Outcome: White's own tally is the right one.
func GoalsFor(p Pair, team Team) int {
	if team == TeamWhite {
		return p.Right
	}
	return p.Left
}

// GoalsAgainst returns the goals conceded by the given team.
func GoalsAgainst(p Pair, team Team) int {
	if team == TeamWhite {
		return p.Left
	}
	return p.Right
}

// Diff is the signed goal differential from the team's perspective.
func Diff(p Pair, team Team) int {
	return GoalsFor(p, team) - GoalsAgainst(p, team)
}
