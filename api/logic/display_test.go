/* display_test.go
 * Contains unit tests for the derived display ordering
 */

package logic

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"matchday-bot/api/shared"
)

var baseTime = time.Date(2025, time.June, 1, 18, 0, 0, 0, time.UTC)

func unscoredMatch(id string, created time.Time) shared.MatchRecord {
	return shared.MatchRecord{
		ID:        id,
		Stadium:   shared.Stadium{ID: 1, Name: "Vake Park Arena", MaxPlayers: 10},
		MatchTime: "19:00",
		MatchDay:  "Friday",
		Timestamp: created,
	}
}

func scoredMatch(id string, created time.Time, t1, t2 int) shared.MatchRecord {
	m := unscoredMatch(id, created)
	m.Score = &shared.Score{Team1: t1, Team2: t2}
	return m
}

func ids(matches []shared.MatchRecord) []string {
	var out []string
	for _, m := range matches {
		out = append(out, m.ID)
	}
	return out
}

func TestSortForDisplay_UnscoredBeforeScored(t *testing.T) {
	in := []shared.MatchRecord{
		scoredMatch("finished-new", baseTime.Add(3*time.Hour), 2, 1),
		unscoredMatch("upcoming-old", baseTime),
		scoredMatch("finished-old", baseTime.Add(1*time.Hour), 0, 0),
		unscoredMatch("upcoming-new", baseTime.Add(2*time.Hour)),
	}

	got := SortForDisplay(in)

	assert.Equal(t, []string{"upcoming-new", "upcoming-old", "finished-new", "finished-old"}, ids(got))
}

func TestSortForDisplay_TimestampDescendingWithinGroup(t *testing.T) {
	in := []shared.MatchRecord{
		unscoredMatch("a", baseTime),
		unscoredMatch("b", baseTime.Add(2*time.Hour)),
		unscoredMatch("c", baseTime.Add(1*time.Hour)),
	}

	got := SortForDisplay(in)

	assert.Equal(t, []string{"b", "c", "a"}, ids(got))
}

// Scenario from the app's history: A created at T1, B created at T2>T1,
// both unscored the list is [B, A]; once A gets a score it moves behind B
// even though the relative order happens to look the same.
func TestSortForDisplay_ScoringDemotesOlderMatch(t *testing.T) {
	a := unscoredMatch("A", baseTime)
	b := unscoredMatch("B", baseTime.Add(time.Hour))

	got := SortForDisplay([]shared.MatchRecord{a, b})
	require.Equal(t, []string{"B", "A"}, ids(got))

	a.Score = &shared.Score{Team1: 2, Team2: 1}
	got = SortForDisplay([]shared.MatchRecord{a, b})
	assert.Equal(t, []string{"B", "A"}, ids(got))
	assert.True(t, got[1].Finished())
	assert.False(t, got[0].Finished())
}

// C created first with an immediate score, D created later without one: D
// leads regardless of recency inside the scored group.
func TestSortForDisplay_ImmediatelyScoredMatchSortsLast(t *testing.T) {
	c := scoredMatch("C", baseTime, 0, 0)
	d := unscoredMatch("D", baseTime.Add(time.Hour))

	got := SortForDisplay([]shared.MatchRecord{c, d})

	assert.Equal(t, []string{"D", "C"}, ids(got))
}

func TestSortForDisplay_DoesNotMutateInput(t *testing.T) {
	in := []shared.MatchRecord{
		scoredMatch("x", baseTime.Add(time.Hour), 1, 1),
		unscoredMatch("y", baseTime),
	}

	_ = SortForDisplay(in)

	assert.Equal(t, "x", in[0].ID)
	assert.Equal(t, "y", in[1].ID)
}

func TestSortForDisplay_EmptyAndSingle(t *testing.T) {
	assert.Empty(t, SortForDisplay(nil))

	got := SortForDisplay([]shared.MatchRecord{unscoredMatch("only", baseTime)})
	assert.Equal(t, []string{"only"}, ids(got))
}

func TestSortForDisplay_StableOnEqualKeys(t *testing.T) {
	in := []shared.MatchRecord{
		unscoredMatch("first", baseTime),
		unscoredMatch("second", baseTime),
	}

	got := SortForDisplay(in)

	// Identical instants keep their pushed order
	assert.Equal(t, []string{"first", "second"}, ids(got))
}
