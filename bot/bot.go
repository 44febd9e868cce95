/* bot.go
 * Contains logic used for creating and running the bot. Requires a discord
 * bot token and a pointer to the match API, both passed in from main.go.
 */

package bot

import (
	"fmt"
	"os"
	"os/signal"
	"sync"

	"github.com/bwmarrin/discordgo"
	"golang.org/x/time/rate"

	"matchday-bot/api/api"
)

// Command spam goes straight into store writes, so each user gets a small
// token bucket before their commands are dropped with a notice.
const (
	defaultCommandRate  = rate.Limit(0.5) // one command every two seconds sustained
	defaultCommandBurst = 3
)

type Bot struct {
	BotToken string
	APIPtr   *api.API

	cmdRate  rate.Limit
	cmdBurst int

	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

func NewBot(botToken string, apiPtr *api.API) (*Bot, error) {
	if botToken == "" {
		return nil, fmt.Errorf("botToken is required but none was provided")
	}
	if apiPtr == nil {
		return nil, fmt.Errorf("apiPtr is required but none was provided")
	}

	return &Bot{
		BotToken: botToken,
		APIPtr:   apiPtr,
		cmdRate:  defaultCommandRate,
		cmdBurst: defaultCommandBurst,
		limiters: make(map[string]*rate.Limiter),
	}, nil
}

// Run connects to Discord and blocks until interrupted.
func (b *Bot) Run() error {
	// create a session
	discord, err := discordgo.New("Bot " + b.BotToken)
	if err != nil {
		return err
	}

	// add an event handler
	discord.AddHandler(b.newMessage)

	// open session
	if err := discord.Open(); err != nil {
		return err
	}
	defer discord.Close() // close session, after function termination

	// keep bot running until there is an os interruption (ctrl + C)
	fmt.Println("Bot running....")
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	<-c
	return nil
}

// newMessage adapts the live session onto the testable handler entrypoint.
func (b *Bot) newMessage(discord *discordgo.Session, message *discordgo.MessageCreate) {
	b.newMessageHandler(discord, message, discord.State.User.ID)
}

// allowCommand reports whether the user is within their command budget.
func (b *Bot) allowCommand(userID string) bool {
	b.mu.Lock()
	limiter, ok := b.limiters[userID]
	if !ok {
		limiter = rate.NewLimiter(b.cmdRate, b.cmdBurst)
		b.limiters[userID] = limiter
	}
	b.mu.Unlock()

	return limiter.Allow()
}

// setCommandLimit overrides the per-user limiter parameters. Used by tests;
// existing limiters are reset so the new budget applies immediately.
func (b *Bot) setCommandLimit(limit rate.Limit, burst int) {
	b.mu.Lock()
	b.cmdRate = limit
	b.cmdBurst = burst
	b.limiters = make(map[string]*rate.Limiter)
	b.mu.Unlock()
}
