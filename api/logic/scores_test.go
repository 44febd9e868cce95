/* scores_test.go
 * Contains unit tests for score input coercion
 */

package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"matchday-bot/api/shared"
)

func TestCoerceScore_ValidNumbers(t *testing.T) {
	got := CoerceScore(shared.ScoreInput{Team1: "3", Team2: "1"})

	assert.Equal(t, shared.Score{Team1: 3, Team2: 1}, got)
}

func TestCoerceScore_EmptyAndGarbageBecomeZero(t *testing.T) {
	got := CoerceScore(shared.ScoreInput{Team1: "", Team2: "abc"})

	assert.Equal(t, shared.Score{Team1: 0, Team2: 0}, got)
}

// "" and "abc" must coerce identically to explicit zeros
func TestCoerceScore_LenientEquivalence(t *testing.T) {
	lenient := CoerceScore(shared.ScoreInput{Team1: "", Team2: "abc"})
	explicit := CoerceScore(shared.ScoreInput{Team1: "0", Team2: "0"})

	assert.Equal(t, explicit, lenient)
}

func TestCoerceScore_SidesCoercedIndependently(t *testing.T) {
	got := CoerceScore(shared.ScoreInput{Team1: "x", Team2: "4"})

	assert.Equal(t, shared.Score{Team1: 0, Team2: 4}, got)
}

func TestCoerceScore_NegativeBecomesZero(t *testing.T) {
	got := CoerceScore(shared.ScoreInput{Team1: "-2", Team2: "5"})

	assert.Equal(t, shared.Score{Team1: 0, Team2: 5}, got)
}

func TestCoerceScore_Whitespace(t *testing.T) {
	got := CoerceScore(shared.ScoreInput{Team1: " 2 ", Team2: "\t7"})

	assert.Equal(t, shared.Score{Team1: 2, Team2: 7}, got)
}

func TestCoerceScore_FloatIsNotAScore(t *testing.T) {
	got := CoerceScore(shared.ScoreInput{Team1: "2.5", Team2: "1"})

	assert.Equal(t, shared.Score{Team1: 0, Team2: 1}, got)
}
