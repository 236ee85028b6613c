// Package moderation implements the kick, ban, mute, and unmute commands.
// All of them are gated on the configured admin roles.
package moderation

import (
	"strings"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/spf13/pflag"
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
		Name:      "kick",
		Summary:   "Kick a member from the server.",
		Usage:     "<member> [reason]",
		Args:      bcr.MinArgs(1),
		GuildOnly: true,

		Command: mb.kick,
	})

	b.Router.AddCommand(&bcr.Command{
		Name:      "ban",
		Summary:   "Ban a member from the server.",
		Usage:     "<member> [reason]",
		Args:      bcr.MinArgs(1),
		GuildOnly: true,
		Flags: func(fs *pflag.FlagSet) *pflag.FlagSet {
			fs.UintP("days", "d", 0, "Also delete the member's messages from the past N days (max 7).")
			return fs
		},

		Command: mb.ban,
	})

	b.Router.AddCommand(&bcr.Command{
		Name:      "mute",
		Summary:   "Mute a member by giving them the mute role.",
		Usage:     "<member> [reason]",
		Args:      bcr.MinArgs(1),
		GuildOnly: true,

		Command: mb.mute,
	})

	b.Router.AddCommand(&bcr.Command{
		Name:      "unmute",
		Summary:   "Unmute a member by taking away the mute role.",
		Usage:     "<member>",
		Args:      bcr.MinArgs(1),
		GuildOnly: true,

		Command: mb.unmute,
	})

	return nil
}

// target parses the target member and free-text reason from a moderation
// command invocation. A nil member with nil error means the target couldn't
// be parsed and a reply has already been sent.
func (bot *Bot) target(ctx *bcr.Context) (m *discord.Member, reason string, err error) {
	m, err = ctx.ParseMember(ctx.Args[0])
	if err != nil {
		_, err = ctx.Send("❌ Member not found!")
		return nil, "", err
	}

	reason = "No reason provided"
	if len(ctx.Args) > 1 {
		reason = strings.Join(ctx.Args[1:], " ")
	}
	return m, reason, nil
}

// checkTarget rejects targets no moderation action should ever apply to:
// the invoker themselves, the bot, and members who hold an admin role.
func (bot *Bot) checkTarget(ctx *bcr.Context, m *discord.Member) (ok bool, err error) {
	switch m.User.ID {
	case ctx.Author.ID:
		_, err = ctx.Send("❌ You cannot do that to yourself!")
		return false, err
	case bot.Router.Bot.ID:
		_, err = ctx.Send("❌ I cannot do that to myself!")
		return false, err
	}

	admin, err := bot.MemberIsAdmin(ctx.Message.GuildID, m)
	if err != nil {
		return false, bot.ReportCtx(ctx, err)
	}
	if admin {
		_, err = ctx.Send("❌ You cannot do that to a moderator!")
		return false, err
	}
	return true, nil
}
