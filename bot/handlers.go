/* handlers.go
 * Contains testable handler methods that accept a DiscordSession interface.
 * Every handler answers the channel; remote failures come back as
 * retry-prompting notices, never as raw errors.
 */

package bot

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/go-andiamo/splitter"

	"matchday-bot/api/catalog"
	"matchday-bot/api/logic"
	"matchday-bot/api/shared"
)

// newMessageHandler routes messages to the appropriate handler.
// botUserID is the bot's user ID to prevent self-responses.
func (b *Bot) newMessageHandler(session DiscordSession, message *discordgo.MessageCreate, botUserID string) {
	// Prevent bot from responding to its own messages
	if message.Author.ID == botUserID {
		return
	}
	if !strings.HasPrefix(message.Content, "$") {
		return
	}

	if !b.allowCommand(message.Author.ID) {
		session.ChannelMessageSend(message.ChannelID, "You're sending commands too quickly, give it a moment and try again")
		return
	}

	// Route to appropriate handler
	switch {
	case strings.HasPrefix(message.Content, "$help"):
		b.helpHandler(session, message)

	case strings.HasPrefix(message.Content, "$stadiums"):
		b.stadiumsHandler(session, message)

	case strings.HasPrefix(message.Content, "$matches"):
		b.matchesHandler(session, message)

	case strings.HasPrefix(message.Content, "$create"):
		b.createHandler(session, message)

	case strings.HasPrefix(message.Content, "$edit"):
		b.editHandler(session, message)

	case strings.HasPrefix(message.Content, "$score"):
		b.scoreHandler(session, message)

	case strings.HasPrefix(message.Content, "$delete"):
		b.deleteHandler(session, message)

	case strings.HasPrefix(message.Content, "$formation"):
		b.formationHandler(session, message)
	}
}

// helpHandler handles the $help command
func (b *Bot) helpHandler(session DiscordSession, message *discordgo.MessageCreate) {
	var res strings.Builder
	res.WriteString("Matchday Bot\n")
	res.WriteString("`$matches`: list all matches, upcoming first\n")
	res.WriteString(fmt.Sprintf("`%s`\n", createUsage))
	res.WriteString("The first player of each roster is the goalkeeper. Leave names out to keep slots open; quote a name that contains a comma.\n")
	res.WriteString("`$edit <id> | <stadium> | <day> | <HH:MM> | <team 1> | <team 2>`: replace a match, keeping its id\n")
	res.WriteString("`$score <id> <team1> <team2>`: record the final score (blank or non-numeric sides count as 0)\n")
	res.WriteString("`$delete <id>`: remove a match\n")
	res.WriteString("`$formation <id>`: show both teams on the pitch\n")
	res.WriteString("`$stadiums`: list the stadiums you can book\n")
	session.ChannelMessageSend(message.ChannelID, res.String())
}

// stadiumsHandler handles the $stadiums command
func (b *Bot) stadiumsHandler(session DiscordSession, message *discordgo.MessageCreate) {
	var res strings.Builder
	res.WriteString("Stadiums:\n")
	for _, s := range catalog.All() {
		res.WriteString(fmt.Sprintf("- %s (%dv%d): %s\n", s.Name, s.PlayersPerTeam(), s.PlayersPerTeam(), s.MapsLink))
	}
	session.ChannelMessageSend(message.ChannelID, res.String())
}

// matchesHandler handles the $matches command. The list arrives already in
// display order: unfinished matches first, newest first within each group.
func (b *Bot) matchesHandler(session DiscordSession, message *discordgo.MessageCreate) {
	matches := b.APIPtr.Matches()
	if len(matches) == 0 {
		session.ChannelMessageSend(message.ChannelID, "No matches scheduled yet. Create the first one with $create!")
		return
	}

	var res strings.Builder
	wroteFinishedHeader := false
	res.WriteString("Upcoming matches:\n")
	for _, m := range matches {
		if m.Finished() && !wroteFinishedHeader {
			res.WriteString("Finished matches:\n")
			wroteFinishedHeader = true
		}
		res.WriteString(formatMatchLine(m))
	}
	session.ChannelMessageSend(message.ChannelID, res.String())
}

// createHandler handles the $create command
func (b *Bot) createHandler(session DiscordSession, message *discordgo.MessageCreate) {
	body := strings.TrimSpace(strings.TrimPrefix(message.Content, "$create"))
	form, err := parseMatchForm(body)
	if err != nil {
		session.ChannelMessageSend(message.ChannelID, fmt.Sprintf("%s\n%s", err, createUsage))
		return
	}

	if !b.APIPtr.CreateOrUpdate(form, "") {
		session.ChannelMessageSend(message.ChannelID, "Failed to create match. Please try again.")
		return
	}
	session.ChannelMessageSend(message.ChannelID, "Match created")
}

// editHandler handles the $edit command. The first section is the match id;
// the rest is the same grammar as $create and replaces the record in full.
func (b *Bot) editHandler(session DiscordSession, message *discordgo.MessageCreate) {
	body := strings.TrimSpace(strings.TrimPrefix(message.Content, "$edit"))
	sections := strings.SplitN(body, "|", 2)
	if len(sections) != 2 {
		session.ChannelMessageSend(message.ChannelID, "usage: $edit <id> | <stadium> | <day> | <HH:MM> | <team 1> | <team 2>")
		return
	}
	id := strings.TrimSpace(sections[0])

	if _, found := b.APIPtr.FindByID(id); !found {
		session.ChannelMessageSend(message.ChannelID, fmt.Sprintf("No match found with id %s. Use $matches to see the ids.", id))
		return
	}

	form, err := parseMatchForm(sections[1])
	if err != nil {
		session.ChannelMessageSend(message.ChannelID, err.Error())
		return
	}

	if !b.APIPtr.CreateOrUpdate(form, id) {
		session.ChannelMessageSend(message.ChannelID, "Failed to update match. Please try again.")
		return
	}
	session.ChannelMessageSend(message.ChannelID, "Match updated")
}

// scoreHandler handles the $score command. The raw side values are passed
// through as entered; coercion of blank or non-numeric sides to 0 is the
// API's documented policy.
func (b *Bot) scoreHandler(session DiscordSession, message *discordgo.MessageCreate) {
	spaceSplitter, _ := splitter.NewSplitter(' ', splitter.DoubleQuotes)
	args, _ := spaceSplitter.Split(message.Content)
	if len(args) != 4 {
		session.ChannelMessageSend(message.ChannelID, "usage: $score <id> <team1> <team2>")
		return
	}
	id := args[1]

	if _, found := b.APIPtr.FindByID(id); !found {
		session.ChannelMessageSend(message.ChannelID, fmt.Sprintf("No match found with id %s. Use $matches to see the ids.", id))
		return
	}

	if !b.APIPtr.UpdateScore(id, shared.ScoreInput{Team1: args[2], Team2: args[3]}) {
		session.ChannelMessageSend(message.ChannelID, "Failed to update score. Please try again.")
		return
	}
	session.ChannelMessageSend(message.ChannelID, "Score updated")
}

// deleteHandler handles the $delete command
func (b *Bot) deleteHandler(session DiscordSession, message *discordgo.MessageCreate) {
	id := strings.TrimSpace(strings.TrimPrefix(message.Content, "$delete"))
	if id == "" {
		session.ChannelMessageSend(message.ChannelID, "usage: $delete <id>")
		return
	}

	if !b.APIPtr.Remove(id) {
		session.ChannelMessageSend(message.ChannelID, "Failed to delete match. Please try again.")
		return
	}
	session.ChannelMessageSend(message.ChannelID, "Match deleted")
}

// formationHandler handles the $formation command
func (b *Bot) formationHandler(session DiscordSession, message *discordgo.MessageCreate) {
	id := strings.TrimSpace(strings.TrimPrefix(message.Content, "$formation"))
	match, found := b.APIPtr.FindByID(id)
	if !found {
		session.ChannelMessageSend(message.ChannelID, fmt.Sprintf("No match found with id %s. Use $matches to see the ids.", id))
		return
	}

	pitch := formatMatchLine(match) + "```\n" + formationText(match) + "\n```"
	session.ChannelMessageSend(message.ChannelID, pitch)
}

// formatMatchLine renders one match as a list entry.
func formatMatchLine(m shared.MatchRecord) string {
	line := fmt.Sprintf("- [%s] %s %s at %s (%dv%d)", m.ID, m.MatchDay, m.MatchTime, m.Stadium.Name, m.Stadium.PlayersPerTeam(), m.Stadium.PlayersPerTeam())
	if m.Finished() {
		line += fmt.Sprintf(", final score %d:%d", m.Score.Team1, m.Score.Team2)
	}
	return line + "\n"
}

// formationText renders the pitch diagram for a match.
func formationText(m shared.MatchRecord) string {
	return logic.FormationLines(m.Team1Players, m.Team2Players)
}
