package player

import "github.com/pitchside/league-stats/internal/domain/league"

// Player is the canonical identity shared across all league instances.
type Player struct {
	ID   int64
	Name string
}

// Profile is the optional per-instance override; when DisplayName is set it
// shadows the canonical name inside that instance only.
type Profile struct {
	PlayerID    int64
	Instance    league.Instance
	DisplayName string
}

// ResolveName applies the override map produced by Repository.DisplayOverrides.
func ResolveName(p Player, overrides map[int64]string) string {
	if name, ok := overrides[p.ID]; ok && name != "" {
		return name
	}
	return p.Name
}
