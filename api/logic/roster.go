/* roster.go
 * Contains roster shaping helpers. Rosters always have exactly
 * maxPlayers/2 slots per team once a stadium is chosen; an empty string
 * marks an unfilled slot and slot 0 is the goalkeeper by convention.
 */

package logic

import "strings"

// ShapeRoster trims player names and pads or truncates the list to exactly
// size slots, so the roster length invariant holds regardless of how many
// names the user actually entered.
func ShapeRoster(players []string, size int) []string {
	if size < 0 {
		size = 0
	}
	out := make([]string, size)
	for i := 0; i < size && i < len(players); i++ {
		out[i] = strings.TrimSpace(players[i])
	}
	return out
}

// FilledSlots counts the named players in a roster.
func FilledSlots(players []string) int {
	count := 0
	for _, p := range players {
		if strings.TrimSpace(p) != "" {
			count++
		}
	}
	return count
}
