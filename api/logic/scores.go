/* scores.go
 * Contains the score input coercion rules.
 */

package logic

import (
	"strconv"
	"strings"

	"matchday-bot/api/shared"
)

// CoerceScore converts raw score form input into a Score. Each side is
// coerced independently and leniently: empty, non-numeric or negative input
// becomes 0 rather than an error. This mirrors how the score form has
// always behaved and is deliberate policy, not input validation that got
// lost.
func CoerceScore(input shared.ScoreInput) shared.Score {
	return shared.Score{
		Team1: coerceSide(input.Team1),
		Team2: coerceSide(input.Team2),
	}
}

func coerceSide(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		return 0
	}
	return n
}
