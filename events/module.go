// Package events implements event logging: member joins and leaves, message
// edits, and message deletes are forwarded to the server's log channel.
package events

import (
	"time"

	"github.com/ReneKroon/ttlcache/v2"
	"github.com/starshine-sys/bcr"
	vbot "github.com/starshine-sys/vigil/bot"
)

// keep message content around this long for delete/edit logs
const messageTTL = 30 * time.Minute

// Bot ...
type Bot struct {
	*vbot.Bot

	// recent message content, keyed by message ID. The gateway only sends
	// IDs for deletes, so without this deleted messages log without content.
	messages *ttlcache.Cache
}

// Init ...
func Init(b *vbot.Bot) (err error) {
	eb := &Bot{
		Bot:      b,
		messages: ttlcache.NewCache(),
	}
	eb.messages.SetTTL(messageTTL)

	// message cache handler
	b.AddHandler(eb.messageCreate)

	// log handlers
	b.AddHandler(eb.guildMemberAdd)
	b.AddHandler(eb.guildMemberRemove)
	b.AddHandler(eb.messageUpdate)
	b.AddHandler(eb.messageDelete)

	b.Router.AddCommand(&bcr.Command{
		Name:      "setlogchannel",
		Summary:   "Set the log channel for this server. Not persisted across restarts.",
		Usage:     "[channel]",
		GuildOnly: true,

		Command: eb.setLogChannel,
	})

	b.Router.AddCommand(&bcr.Command{
		Name:      "testlog",
		Summary:   "Send a test message to the log channel.",
		GuildOnly: true,

		Command: eb.testLog,
	})

	return nil
}
