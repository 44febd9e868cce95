/* display.go
 * Contains the derived display ordering for the match list. The order shown
 * to users is computed from the mirror on demand and is distinct from the
 * creation-time order the store delivers.
 */

package logic

import (
	"sort"

	"matchday-bot/api/shared"
)

// SortForDisplay returns the matches in presentation order: every match
// without a score comes before every finished match, and within each group
// the most recently created match comes first. The input slice is not
// modified.
func SortForDisplay(matches []shared.MatchRecord) []shared.MatchRecord {
	out := make([]shared.MatchRecord, len(matches))
	copy(out, matches)

	// Stable so records with identical timestamps keep their pushed order
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Finished() != out[j].Finished() {
			return !out[i].Finished()
		}
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	return out
}
