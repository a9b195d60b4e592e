package participation

import (
	"strconv"
	"strings"

	"github.com/pitchside/league-stats/internal/domain/score"
	"github.com/valyala/bytebufferpool"
)

// HistorySnapshot is one match entry of a player's flattened history.
type HistorySnapshot struct {
	MatchID     int64
	Team        score.Team
	Goals       int
	YellowCards int
	RedCards    int
	Rating      float64
	IsCaptain   bool
}

// historyFieldCount is the full entry shape:
// matchID:team:goals:yellows:reds:rating:isCaptain.
// Shorter entries are the legacy matchID:team form.
const historyFieldCount = 7

// EncodeHistory flattens snapshots into the comma-separated wire form the
// decoder understands. Entry order follows the input.
func EncodeHistory(snapshots []HistorySnapshot) string {
	if len(snapshots) == 0 {
		return ""
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	for i, s := range snapshots {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(strconv.FormatInt(s.MatchID, 10))
		buf.WriteByte(':')
		buf.WriteString(string(s.Team))
		buf.WriteByte(':')
		buf.WriteString(strconv.Itoa(s.Goals))
		buf.WriteByte(':')
		buf.WriteString(strconv.Itoa(s.YellowCards))
		buf.WriteByte(':')
		buf.WriteString(strconv.Itoa(s.RedCards))
		buf.WriteByte(':')
		buf.WriteString(strconv.FormatFloat(s.Rating, 'f', -1, 64))
		buf.WriteByte(':')
		if s.IsCaptain {
			buf.WriteByte('1')
		} else {
			buf.WriteByte('0')
		}
	}

	return buf.String()
}

// DecodeHistory parses a flattened history string into per-match snapshots.
//
// Entries with at least 7 fields carry the full stat payload; shorter entries
// are the legacy matchID:team form and decode with zeroed stats. A malformed
// entry is dropped, never propagated: a player's broken history must not fail
// the whole aggregation.
func DecodeHistory(encoded string) map[int64]HistorySnapshot {
	out := make(map[int64]HistorySnapshot)
	if strings.TrimSpace(encoded) == "" {
		return out
	}

	for _, entry := range strings.Split(encoded, ",") {
		fields := strings.Split(entry, ":")
		if len(fields) < 2 {
			continue
		}

		matchID, err := strconv.ParseInt(strings.TrimSpace(fields[0]), 10, 64)
		if err != nil {
			continue
		}
		snapshot := HistorySnapshot{
			MatchID: matchID,
			Team:    score.Team(strings.TrimSpace(fields[1])),
		}

		if len(fields) >= historyFieldCount {
			snapshot.Goals = parseHistoryInt(fields[2])
			snapshot.YellowCards = parseHistoryInt(fields[3])
			snapshot.RedCards = parseHistoryInt(fields[4])
			snapshot.Rating = parseHistoryFloat(fields[5])
			snapshot.IsCaptain = parseHistoryInt(fields[6]) != 0
		}

		out[matchID] = snapshot
	}

	return out
}

func parseHistoryInt(field string) int {
	v, err := strconv.Atoi(strings.TrimSpace(field))
	if err != nil {
		return 0
	}
	return v
}

func parseHistoryFloat(field string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
	if err != nil {
		return 0
	}
	return v
}
