package participation

import (
	"testing"

	"github.com/pitchside/league-stats/internal/domain/score"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryRoundTrip(t *testing.T) {
	t.Parallel()

	in := []HistorySnapshot{
		{MatchID: 12, Team: score.TeamWhite, Goals: 2, YellowCards: 1, RedCards: 0, Rating: 7.5, IsCaptain: false},
		{MatchID: 13, Team: score.TeamRed, Goals: 0, YellowCards: 0, RedCards: 1, Rating: 4, IsCaptain: true},
	}

	decoded := DecodeHistory(EncodeHistory(in))
	require.Len(t, decoded, 2)

	got := decoded[12]
	assert.Equal(t, score.TeamWhite, got.Team)
	assert.Equal(t, 2, got.Goals)
	assert.Equal(t, 1, got.YellowCards)
	assert.Equal(t, 0, got.RedCards)
	assert.Equal(t, 7.5, got.Rating)
	assert.False(t, got.IsCaptain)

	captain := decoded[13]
	assert.Equal(t, score.TeamRed, captain.Team)
	assert.True(t, captain.IsCaptain)
	assert.Equal(t, 1, captain.RedCards)
}

func TestDecodeHistory_LegacyShortForm(t *testing.T) {
	t.Parallel()

	decoded := DecodeHistory("12:White")
	require.Len(t, decoded, 1)

	got := decoded[12]
	assert.Equal(t, score.TeamWhite, got.Team)
	assert.Zero(t, got.Goals)
	assert.Zero(t, got.Rating)
	assert.False(t, got.IsCaptain)
}

func TestDecodeHistory_MalformedEntriesSkipped(t *testing.T) {
	t.Parallel()

	decoded := DecodeHistory("garbage,12:White:2:0:0:8:0,:Red,x:y")
	require.Len(t, decoded, 1)
	assert.Equal(t, 2, decoded[12].Goals)
}

func TestDecodeHistory_Empty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, DecodeHistory(""))
	assert.Empty(t, DecodeHistory("   "))
}

func TestDecodeHistory_BadNumericFieldsDefaultToZero(t *testing.T) {
	t.Parallel()

	decoded := DecodeHistory("7:Red:x:1:y:bad:1")
	require.Len(t, decoded, 1)

	got := decoded[7]
	assert.Zero(t, got.Goals)
	assert.Equal(t, 1, got.YellowCards)
	assert.Zero(t, got.RedCards)
	assert.Zero(t, got.Rating)
	assert.True(t, got.IsCaptain)
}

func TestSnapshotFromRecord(t *testing.T) {
	t.Parallel()

	rating := 8.0
	snap := Record{MatchID: 3, PlayerID: 9, Team: score.TeamRed, Goals: 1, Rating: &rating}.Snapshot()
	assert.Equal(t, 8.0, snap.Rating)

	unrated := Record{MatchID: 4, PlayerID: 9, Team: score.TeamRed}.Snapshot()
	assert.Zero(t, unrated.Rating)
}
