/* catalog_test.go
 * Contains unit tests for the stadium catalog lookups
 */

package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAll_ReturnsEveryStadium(t *testing.T) {
	all := All()

	require.NotEmpty(t, all)
	for _, s := range all {
		assert.NotZero(t, s.ID)
		assert.NotEmpty(t, s.Name)
		assert.NotEmpty(t, s.MapsLink)
		// Rosters are split evenly between the two teams
		assert.Equal(t, 0, s.MaxPlayers%2)
	}
}

func TestAll_ReturnsCopy(t *testing.T) {
	all := All()
	all[0].Name = "mutated"

	again := All()
	assert.NotEqual(t, "mutated", again[0].Name)
}

func TestByID_Found(t *testing.T) {
	s, ok := ByID(1)

	require.True(t, ok)
	assert.Equal(t, "Vake Park Arena", s.Name)
	assert.Equal(t, 5, s.PlayersPerTeam())
}

func TestByID_NotFound(t *testing.T) {
	_, ok := ByID(999)
	assert.False(t, ok)
}

func TestByName_ExactMatch(t *testing.T) {
	s, ok := ByName("Gldani Stadium")

	require.True(t, ok)
	assert.Equal(t, 5, s.ID)
}

func TestByName_CaseInsensitive(t *testing.T) {
	s, ok := ByName("gldani stadium")

	require.True(t, ok)
	assert.Equal(t, 5, s.ID)
}

func TestByName_FuzzyPartial(t *testing.T) {
	s, ok := ByName("vake")

	require.True(t, ok)
	assert.Equal(t, "Vake Park Arena", s.Name)
}

func TestByName_NoMatch(t *testing.T) {
	_, ok := ByName("camp nou")
	assert.False(t, ok)
}

func TestByName_EmptyInput(t *testing.T) {
	_, ok := ByName("   ")
	assert.False(t, ok)
}
