// Package meta implements the commands about the bot itself. These are
// always registered, regardless of which feature modules are enabled.
package meta

import (
	"github.com/starshine-sys/bcr"
	"github.com/starshine-sys/vigil/bot"
)

// Bot ...
type Bot struct {
	*bot.Bot
}

// Init ...
func Init(b *bot.Bot) (err error) {
	mb := &Bot{Bot: b}

	b.Router.AddCommand(&bcr.Command{
		Name:    "help",
		Summary: "Show information about the bot, or a specific command.",
		Usage:   "[command]",

		Command: mb.help,
	})

	b.Router.AddCommand(&bcr.Command{
		Name:    "invite",
		Summary: "Get an invite link for the bot.",

		Command: mb.invite,
	})

	return nil
}
