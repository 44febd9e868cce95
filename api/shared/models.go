/* models.go
 * This file contains the structs and helper functions that are shared between sub packages
 */

package shared

import "time"

// Stadium is the snapshot of a catalog entry embedded into a match at
// creation time. It is copied, not referenced, so later catalog changes
// never rewrite existing matches.
type Stadium struct {
	ID         int    `bson:"id" json:"id"`
	Name       string `bson:"name" json:"name"`
	MapsLink   string `bson:"maps_link" json:"mapsLink"`
	MaxPlayers int    `bson:"max_players" json:"maxPlayers"`
}

// PlayersPerTeam returns the roster size for one side.
func (s Stadium) PlayersPerTeam() int {
	return s.MaxPlayers / 2
}

// Score holds the final result of a finished match. Both sides are always
// set together; a match never has half a score.
type Score struct {
	Team1 int `bson:"team1" json:"team1"`
	Team2 int `bson:"team2" json:"team2"`
}

// MatchRecord is the domain entity for one scheduled match. A nil Score
// means the match has not been finished yet.
type MatchRecord struct {
	ID           string    `json:"id"`
	Stadium      Stadium   `json:"stadium"`
	Team1Players []string  `json:"team1Players"`
	Team2Players []string  `json:"team2Players"`
	MatchTime    string    `json:"matchTime"` // "HH:MM" wall clock, no date
	MatchDay     string    `json:"matchDay"`
	Timestamp    time.Time `json:"timestamp"` // creation instant, never changed by edits
	Score        *Score    `json:"score,omitempty"`
}

// Finished reports whether a final score has been recorded.
func (m MatchRecord) Finished() bool {
	return m.Score != nil
}

// MatchDays is the fixed set of weekday labels a match can be scheduled on.
var MatchDays = []string{
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
	"Sunday",
}

// ValidMatchDay reports whether day is one of the allowed weekday labels.
func ValidMatchDay(day string) bool {
	for _, d := range MatchDays {
		if d == day {
			return true
		}
	}
	return false
}

// MatchForm is the user-supplied input for creating or editing a match.
// The id and timestamp are assigned by the reconciliation layer, never by
// the form.
type MatchForm struct {
	StadiumID    int
	MatchDay     string
	MatchTime    string
	Team1Players []string
	Team2Players []string
}

// ScoreInput carries the raw score strings exactly as entered by the user.
// Coercion to integers happens in the logic package.
type ScoreInput struct {
	Team1 string
	Team2 string
}
