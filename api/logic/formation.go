/* formation.go
 * Renders a text pitch diagram for a match. Slot 0 of each roster is the
 * goalkeeper; the remaining slots are laid out in rows across the pitch,
 * team 1 in the top half and team 2 mirrored in the bottom half.
 */

package logic

import (
	"fmt"
	"strings"
)

const (
	pitchLine   = "----------------------------------------"
	halfwayLine = "--------------- halfway ----------------"
	maxPerRow   = 4
)

// FormationLines renders both rosters onto a text pitch. Unfilled slots are
// shown as open positions so the shape of the formation stays visible even
// with an incomplete roster.
func FormationLines(team1Players, team2Players []string) string {
	var b strings.Builder
	b.WriteString(pitchLine)
	b.WriteString("\n")

	for _, line := range teamLines(team1Players) {
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString(halfwayLine)
	b.WriteString("\n")

	// Mirror team 2 so its goalkeeper sits at the bottom of the pitch
	lines := teamLines(team2Players)
	for i := len(lines) - 1; i >= 0; i-- {
		b.WriteString(lines[i])
		b.WriteString("\n")
	}

	b.WriteString(pitchLine)
	return b.String()
}

// teamLines renders one team top-down: goalkeeper first, then field
// players in rows of at most maxPerRow.
func teamLines(players []string) []string {
	if len(players) == 0 {
		return []string{centerLine("(no players)")}
	}

	lines := []string{centerLine(fmt.Sprintf("[GK] %s", slotName(players[0])))}
	field := players[1:]
	for start := 0; start < len(field); start += maxPerRow {
		end := start + maxPerRow
		if end > len(field) {
			end = len(field)
		}
		var names []string
		for _, p := range field[start:end] {
			names = append(names, slotName(p))
		}
		lines = append(lines, centerLine(strings.Join(names, "   ")))
	}
	return lines
}

func slotName(player string) string {
	if strings.TrimSpace(player) == "" {
		return "(open)"
	}
	return strings.TrimSpace(player)
}

func centerLine(s string) string {
	width := len(pitchLine)
	if len(s) >= width {
		return s
	}
	pad := (width - len(s)) / 2
	return strings.Repeat(" ", pad) + s
}
