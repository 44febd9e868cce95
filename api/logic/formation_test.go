/* formation_test.go
 * Contains unit tests for the text formation rendering
 */

package logic

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormationLines_GoalkeepersFirstSlot(t *testing.T) {
	out := FormationLines(
		[]string{"Gio", "Nika", "Luka", "Dato", "Beka"},
		[]string{"Saba", "Irakli", "Levan", "Tornike", "Giga"},
	)

	assert.Contains(t, out, "[GK] Gio")
	assert.Contains(t, out, "[GK] Saba")
}

func TestFormationLines_Team2Mirrored(t *testing.T) {
	out := FormationLines([]string{"Gio", "Nika"}, []string{"Saba", "Irakli"})

	lines := strings.Split(out, "\n")
	// Team 2's goalkeeper renders below its field players
	var gkIdx, fieldIdx int
	for i, line := range lines {
		if strings.Contains(line, "[GK] Saba") {
			gkIdx = i
		}
		if strings.Contains(line, "Irakli") {
			fieldIdx = i
		}
	}
	require.NotZero(t, gkIdx)
	require.NotZero(t, fieldIdx)
	assert.Greater(t, gkIdx, fieldIdx)
}

func TestFormationLines_OpenSlots(t *testing.T) {
	out := FormationLines([]string{"Gio", "", "Luka"}, []string{"", "Irakli"})

	assert.Contains(t, out, "(open)")
	assert.Contains(t, out, "[GK] (open)")
}

func TestFormationLines_EmptyTeams(t *testing.T) {
	out := FormationLines(nil, nil)

	assert.Contains(t, out, "(no players)")
	assert.Contains(t, out, "halfway")
}

func TestFormationLines_LargeTeamWrapsRows(t *testing.T) {
	team := []string{"gk", "p1", "p2", "p3", "p4", "p5", "p6"}
	out := FormationLines(team, team)

	// 6 field players split across two rows of at most four
	lines := strings.Split(out, "\n")
	var rowWithP5 string
	for _, line := range lines {
		if strings.Contains(line, "p5") {
			rowWithP5 = line
			break
		}
	}
	require.NotEmpty(t, rowWithP5)
	assert.NotContains(t, rowWithP5, "p1")
}
