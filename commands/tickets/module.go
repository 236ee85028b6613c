// Package tickets implements the support ticket workflow: one private
// channel per request, scoped to the requester and the support staff. A
// ticket has no state anywhere else; it exists exactly as long as its
// channel does.
package tickets

import (
	"strings"

	"github.com/diamondburned/arikawa/v3/api"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/starshine-sys/bcr"
	"github.com/starshine-sys/vigil/bot"
)

// Bot ...
type Bot struct {
	*bot.Bot
}

// Init ...
func Init(b *bot.Bot) (err error) {
	tb := &Bot{Bot: b}

	b.Router.AddCommand(&bcr.Command{
		Name:      "ticket",
		Summary:   "Open a new support ticket.",
		Usage:     "[topic]",
		GuildOnly: true,

		Command: tb.open,
	})

	b.Router.AddCommand(&bcr.Command{
		Name:      "close",
		Summary:   "Close the current ticket. This deletes the channel!",
		GuildOnly: true,

		Command: tb.close,
	})

	b.Router.AddCommand(&bcr.Command{
		Name:      "adduser",
		Summary:   "Add another user to the current ticket.",
		Usage:     "<member>",
		Args:      bcr.MinArgs(1),
		GuildOnly: true,

		Command: tb.addUser,
	})

	return nil
}

// ChannelName returns the deterministic name for a user's ticket channel.
// The user ID suffix is what makes tickets attributable, so both the
// one-ticket-per-user check and the close permission check depend on it.
func ChannelName(username string, id discord.UserID) string {
	name := strings.ToLower(strings.ReplaceAll(username, " ", "-"))
	return "ticket-" + name + "-" + id.String()
}

// IsTicketOwner reports whether the channel name marks the user as the
// ticket's requester.
func IsTicketOwner(channelName string, id discord.UserID) bool {
	return strings.HasSuffix(channelName, "-"+id.String())
}

// Overwrites builds the permission overwrites for a new ticket channel:
// hidden from everyone, visible to the requester, the bot, the support
// role, and the admin roles.
func Overwrites(everyone discord.RoleID, user, botUser discord.UserID, support *discord.RoleID, admins []discord.RoleID) []discord.Overwrite {
	const memberAllow = discord.PermissionViewChannel |
		discord.PermissionSendMessages |
		discord.PermissionAttachFiles |
		discord.PermissionEmbedLinks

	const staffAllow = memberAllow |
		discord.PermissionManageChannels |
		discord.PermissionManageMessages

	ow := []discord.Overwrite{
		{
			ID:   discord.Snowflake(everyone),
			Type: discord.OverwriteRole,
			Deny: discord.PermissionViewChannel,
		},
		{
			ID:    discord.Snowflake(user),
			Type:  discord.OverwriteMember,
			Allow: memberAllow,
		},
		{
			ID:    discord.Snowflake(botUser),
			Type:  discord.OverwriteMember,
			Allow: staffAllow,
		},
	}

	if support != nil {
		ow = append(ow, discord.Overwrite{
			ID:    discord.Snowflake(*support),
			Type:  discord.OverwriteRole,
			Allow: memberAllow,
		})
	}

	for _, id := range admins {
		ow = append(ow, discord.Overwrite{
			ID:    discord.Snowflake(id),
			Type:  discord.OverwriteRole,
			Allow: staffAllow,
		})
	}

	return ow
}

// category returns the configured ticket category, creating it if needed.
func (bot *Bot) category(ctx *bcr.Context) (*discord.Channel, error) {
	name := bot.Config.Features.Tickets.CategoryName

	cat, err := bot.ChannelByName(ctx.Message.GuildID, discord.GuildCategory, name)
	if err != nil || cat != nil {
		return cat, err
	}

	return ctx.State.CreateChannel(ctx.Message.GuildID, api.CreateChannelData{
		Name: name,
		Type: discord.GuildCategory,
	})
}

// inTicket reports whether the command was invoked inside a ticket channel,
// i.e. a text channel under the configured category.
func (bot *Bot) inTicket(ctx *bcr.Context) (bool, error) {
	cat, err := bot.ChannelByName(ctx.Message.GuildID, discord.GuildCategory, bot.Config.Features.Tickets.CategoryName)
	if err != nil {
		return false, err
	}
	if cat == nil {
		return false, nil
	}
	return ctx.Channel.ParentID == cat.ID, nil
}
