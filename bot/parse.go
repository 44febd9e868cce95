/* parse.go
 * Contains parsing of the $create / $edit command grammar into a MatchForm.
 * The command body is pipe-separated sections; rosters are comma lists
 * where names containing commas can be double quoted.
 */

package bot

import (
	"fmt"
	"strings"

	"github.com/go-andiamo/splitter"

	"matchday-bot/api/catalog"
	"matchday-bot/api/shared"
)

const createUsage = "usage: $create <stadium> | <day> | <HH:MM> | <goalkeeper, player2, ...> | <goalkeeper, player2, ...>"

// parseMatchForm turns the pipe-separated command body into a MatchForm.
// The stadium section is resolved against the catalog with fuzzy matching;
// the day section is matched case-insensitively against the weekday labels.
func parseMatchForm(body string) (shared.MatchForm, error) {
	sections := strings.Split(body, "|")
	if len(sections) != 5 {
		return shared.MatchForm{}, fmt.Errorf("expected 5 sections separated by '|', got %d", len(sections))
	}

	stadium, ok := catalog.ByName(sections[0])
	if !ok {
		return shared.MatchForm{}, fmt.Errorf("unknown stadium '%s', see $stadiums for the list", strings.TrimSpace(sections[0]))
	}

	day, ok := matchDay(sections[1])
	if !ok {
		return shared.MatchForm{}, fmt.Errorf("unknown day '%s', use a weekday name like Friday", strings.TrimSpace(sections[1]))
	}

	matchTime := strings.TrimSpace(sections[2])

	team1, err := parseRoster(sections[3])
	if err != nil {
		return shared.MatchForm{}, fmt.Errorf("could not read team 1 roster: %w", err)
	}
	team2, err := parseRoster(sections[4])
	if err != nil {
		return shared.MatchForm{}, fmt.Errorf("could not read team 2 roster: %w", err)
	}

	return shared.MatchForm{
		StadiumID:    stadium.ID,
		MatchDay:     day,
		MatchTime:    matchTime,
		Team1Players: team1,
		Team2Players: team2,
	}, nil
}

// parseRoster splits a comma list of player names. We use splitter here
// instead of strings.Split so a quoted name containing a comma stays one
// player.
func parseRoster(s string) ([]string, error) {
	commaSplitter, err := splitter.NewSplitter(',', splitter.DoubleQuotes)
	if err != nil {
		return nil, err
	}
	parts, err := commaSplitter.Split(s)
	if err != nil {
		return nil, err
	}

	var players []string
	for _, p := range parts {
		p = strings.TrimSpace(p)
		p = strings.Trim(p, "\"")
		if p != "" {
			players = append(players, p)
		}
	}
	return players, nil
}

// matchDay resolves a user-entered day against the fixed weekday labels.
func matchDay(s string) (string, bool) {
	in := strings.ToLower(strings.TrimSpace(s))
	for _, d := range shared.MatchDays {
		if strings.ToLower(d) == in {
			return d, true
		}
	}
	return "", false
}
