// Package fun implements the stateless entertainment commands.
package fun

import (
	"math/rand"
	"time"

	"github.com/starshine-sys/bcr"
	"github.com/starshine-sys/vigil/bot"
)

// Bot ...
type Bot struct {
	*bot.Bot
}

// Init ...
func Init(b *bot.Bot) (err error) {
	// the global source is safe for concurrent use, unlike a rand.Rand
	rand.Seed(time.Now().UnixNano())

	fb := &Bot{Bot: b}

	b.Router.AddCommand(&bcr.Command{
		Name:    "ping",
		Summary: "Show the bot's latency and other stats.",

		Command: fb.ping,
	})

	b.Router.AddCommand(&bcr.Command{
		Name:    "coinflip",
		Aliases: []string{"flip", "coin"},
		Summary: "Flip a coin.",

		Command: fb.coinflip,
	})

	b.Router.AddCommand(&bcr.Command{
		Name:    "roll",
		Aliases: []string{"dice"},
		Summary: "Roll a dice with the given number of sides (default 6).",
		Usage:   "[sides]",

		Command: fb.roll,
	})

	b.Router.AddCommand(&bcr.Command{
		Name:    "choose",
		Aliases: []string{"pick"},
		Summary: "Choose between multiple options, separated by commas or \"or\".",
		Usage:   "<options...>",
		Args:    bcr.MinArgs(1),

		Command: fb.choose,
	})

	b.Router.AddCommand(&bcr.Command{
		Name:    "8ball",
		Aliases: []string{"eightball", "magic8ball"},
		Summary: "Ask the magic 8-ball a question.",
		Usage:   "<question>",
		Args:    bcr.MinArgs(1),

		Command: fb.eightBall,
	})

	b.Router.AddCommand(&bcr.Command{
		Name:      "serverinfo",
		Aliases:   []string{"server"},
		Summary:   "Show information about this server.",
		GuildOnly: true,

		Command: fb.serverInfo,
	})

	b.Router.AddCommand(&bcr.Command{
		Name:      "userinfo",
		Aliases:   []string{"user", "whois"},
		Summary:   "Show information about a user.",
		Usage:     "[member]",
		GuildOnly: true,

		Command: fb.userInfo,
	})

	return nil
}
