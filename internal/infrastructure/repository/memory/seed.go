package memory

import (
	"time"

	"github.com/pitchside/league-stats/internal/domain/league"
	"github.com/pitchside/league-stats/internal/domain/match"
	"github.com/pitchside/league-stats/internal/domain/matchevent"
	"github.com/pitchside/league-stats/internal/domain/participation"
	"github.com/pitchside/league-stats/internal/domain/player"
	"github.com/pitchside/league-stats/internal/domain/score"
)

// SeedInstance is the demo league used when no database is configured.
var SeedInstance = league.Instance{ChatID: -1001234567890}

func SeedInstances() []league.Instance {
	return []league.Instance{SeedInstance}
}

func SeedPlayers() []player.Player {
	return []player.Player{
		{ID: 101, Name: "Denis"},
		{ID: 102, Name: "Marat"},
		{ID: 103, Name: "Sergey"},
		{ID: 104, Name: "Ilya"},
		{ID: 105, Name: "Pavel"},
		{ID: 106, Name: "Artur"},
		{ID: 107, Name: "Kirill"},
		{ID: 108, Name: "Timur"},
	}
}

func SeedProfiles() []player.Profile {
	return []player.Profile{
		{PlayerID: 103, Instance: SeedInstance, DisplayName: "Seryoga"},
	}
}

func SeedMatches() []match.Match {
	return []match.Match{
		{ID: 1, Instance: SeedInstance, Date: time.Date(2026, 7, 26, 19, 0, 0, 0, time.UTC), SkillLevel: "mixed", Score: "2:4"},
		{ID: 2, Instance: SeedInstance, Date: time.Date(2026, 8, 2, 19, 0, 0, 0, time.UTC), SkillLevel: "mixed", Score: "3:3"},
		{ID: 3, Instance: SeedInstance, Date: time.Date(2026, 8, 9, 19, 0, 0, 0, time.UTC), SkillLevel: "mixed", Score: "5:1"},
		{ID: 4, Instance: SeedInstance, Date: time.Date(2026, 8, 16, 19, 0, 0, 0, time.UTC), SkillLevel: "mixed", Score: "1:2"},
		// Played but not recorded yet.
		{ID: 5, Instance: SeedInstance, Date: time.Date(2026, 8, 23, 19, 0, 0, 0, time.UTC), SkillLevel: "mixed"},
	}
}

func SeedRecords() []participation.Record {
	r := func(v float64) *float64 { return &v }
	return []participation.Record{
		{MatchID: 1, PlayerID: 101, Team: score.TeamWhite, Goals: 2, Rating: r(8.5)},
		{MatchID: 1, PlayerID: 102, Team: score.TeamWhite, Goals: 1, IsCaptain: true},
		{MatchID: 1, PlayerID: 103, Team: score.TeamWhite, Goals: 1, BestDefender: true, Rating: r(7.0)},
		{MatchID: 1, PlayerID: 104, Team: score.TeamRed, Goals: 1, Rating: r(6.5)},
		{MatchID: 1, PlayerID: 105, Team: score.TeamRed, Goals: 1, IsCaptain: true},
		{MatchID: 1, PlayerID: 106, Team: score.TeamRed, YellowCards: 1, Rating: r(6.0)},

		{MatchID: 2, PlayerID: 101, Team: score.TeamRed, Goals: 1, Rating: r(7.5)},
		{MatchID: 2, PlayerID: 104, Team: score.TeamRed, Goals: 2, IsCaptain: true},
		{MatchID: 2, PlayerID: 107, Team: score.TeamRed, Rating: r(6.8)},
		{MatchID: 2, PlayerID: 102, Team: score.TeamWhite, Goals: 2, Rating: r(7.2)},
		{MatchID: 2, PlayerID: 103, Team: score.TeamWhite, Goals: 1, IsCaptain: true},
		{MatchID: 2, PlayerID: 108, Team: score.TeamWhite, BestDefender: true, Rating: r(7.9)},

		{MatchID: 3, PlayerID: 105, Team: score.TeamRed, Goals: 3, Rating: r(9.1)},
		{MatchID: 3, PlayerID: 106, Team: score.TeamRed, Goals: 2, IsCaptain: true},
		{MatchID: 3, PlayerID: 107, Team: score.TeamRed, BestDefender: true, Rating: r(7.4)},
		{MatchID: 3, PlayerID: 101, Team: score.TeamWhite, Goals: 1, IsCaptain: true},
		{MatchID: 3, PlayerID: 108, Team: score.TeamWhite, YellowCards: 1, RedCards: 1, Rating: r(5.5)},

		{MatchID: 4, PlayerID: 101, Team: score.TeamWhite, Goals: 2, Rating: r(8.0)},
		{MatchID: 4, PlayerID: 103, Team: score.TeamWhite, IsCaptain: true},
		{MatchID: 4, PlayerID: 104, Team: score.TeamRed, Goals: 1, IsCaptain: true},
		{MatchID: 4, PlayerID: 108, Team: score.TeamRed, Autogoals: 1, Rating: r(6.1)},
	}
}

func SeedEvents() []matchevent.Event {
	m := func(v int) *int { return &v }
	return []matchevent.Event{
		{ID: 1, MatchID: 1, PlayerID: 101, Team: score.TeamWhite, Type: matchevent.TypeGoal, Minute: m(8), AssistPlayerID: 102},
		{ID: 2, MatchID: 1, PlayerID: 101, Team: score.TeamWhite, Type: matchevent.TypeGoal, Minute: m(23)},
		{ID: 3, MatchID: 1, PlayerID: 104, Team: score.TeamRed, Type: matchevent.TypeGoal, Minute: m(30), AssistPlayerID: 105},
		{ID: 4, MatchID: 1, PlayerID: 106, Team: score.TeamRed, Type: matchevent.TypeCardYellow, Minute: m(41)},
		{ID: 5, MatchID: 2, PlayerID: 102, Team: score.TeamWhite, Type: matchevent.TypeGoal, Minute: m(12), AssistPlayerID: 103},
		{ID: 6, MatchID: 2, PlayerID: 104, Team: score.TeamRed, Type: matchevent.TypeGoal, Minute: m(19), IsPenalty: true},
		{ID: 7, MatchID: 3, PlayerID: 105, Team: score.TeamRed, Type: matchevent.TypeGoal, Minute: m(5), AssistPlayerID: 106},
		{ID: 8, MatchID: 3, PlayerID: 105, Team: score.TeamRed, Type: matchevent.TypeGoal, Minute: m(28), AssistPlayerID: 107},
		{ID: 9, MatchID: 3, PlayerID: 108, Team: score.TeamWhite, Type: matchevent.TypeCardRed, Minute: m(39)},
		{ID: 10, MatchID: 4, PlayerID: 101, Team: score.TeamWhite, Type: matchevent.TypeGoal, Minute: m(15), AssistPlayerID: 103},
	}
}

// MatchInstanceIndex builds the match-to-instance lookup the participation
// and event repositories key their buckets with.
func MatchInstanceIndex(matches []match.Match) func(matchID int64) (league.Instance, bool) {
	index := make(map[int64]league.Instance, len(matches))
	for _, m := range matches {
		index[m.ID] = m.Instance
	}
	return func(matchID int64) (league.Instance, bool) {
		instance, ok := index[matchID]
		return instance, ok
	}
}
