/* catalog.go
 * Static reference catalog of stadiums a match can be scheduled at. The
 * catalog is fixed at build time; matches embed a snapshot of the chosen
 * entry so edits to this list never touch existing matches.
 */

package catalog

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"matchday-bot/api/shared"
)

var stadiums = []shared.Stadium{
	{ID: 1, Name: "Vake Park Arena", MapsLink: "https://maps.app.goo.gl/vakeparkarena", MaxPlayers: 10},
	{ID: 2, Name: "Saburtalo Court", MapsLink: "https://maps.app.goo.gl/saburtalocourt", MaxPlayers: 12},
	{ID: 3, Name: "Lisi Lake Field", MapsLink: "https://maps.app.goo.gl/lisilakefield", MaxPlayers: 10},
	{ID: 4, Name: "Dighomi Pitch", MapsLink: "https://maps.app.goo.gl/dighomipitch", MaxPlayers: 14},
	{ID: 5, Name: "Gldani Stadium", MapsLink: "https://maps.app.goo.gl/gldanistadium", MaxPlayers: 22},
	{ID: 6, Name: "Varketili Arena", MapsLink: "https://maps.app.goo.gl/varketiliarena", MaxPlayers: 12},
}

// All returns a copy of the full stadium catalog.
func All() []shared.Stadium {
	out := make([]shared.Stadium, len(stadiums))
	copy(out, stadiums)
	return out
}

// ByID looks a stadium up by its catalog id.
func ByID(id int) (shared.Stadium, bool) {
	for _, s := range stadiums {
		if s.ID == id {
			return s, true
		}
	}
	return shared.Stadium{}, false
}

// ByName resolves a user-entered stadium name to a catalog entry. Matching
// is case insensitive and fuzzy so "vake" or "gldani stad" resolve, but an
// exact name always wins over the best ranked match.
func ByName(name string) (shared.Stadium, bool) {
	lowerName := strings.ToLower(strings.TrimSpace(name))
	if lowerName == "" {
		return shared.Stadium{}, false
	}

	lookup := make(map[string]shared.Stadium)
	var namesLower []string
	for _, s := range stadiums {
		lower := strings.ToLower(s.Name)
		lookup[lower] = s
		namesLower = append(namesLower, lower)
	}

	fuzzyResults := fuzzy.RankFind(lowerName, namesLower)
	if len(fuzzyResults) == 0 {
		return shared.Stadium{}, false
	}

	// Prefer an exact match when several names rank
	best := fuzzyResults[0].Target
	for i := range fuzzyResults {
		if fuzzyResults[i].Target == lowerName {
			best = fuzzyResults[i].Target
		}
	}
	return lookup[best], true
}
