// Package setup creates the roles and channels the other modules expect.
package setup

import (
	"fmt"
	"strings"

	"github.com/diamondburned/arikawa/v3/api"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/starshine-sys/bcr"
	vbot "github.com/starshine-sys/vigil/bot"
	"github.com/starshine-sys/vigil/common"
)

// Bot ...
type Bot struct {
	*vbot.Bot
}

// Init ...
func Init(b *vbot.Bot) (err error) {
	sb := &Bot{Bot: b}

	b.Router.AddCommand(&bcr.Command{
		Name:      "setup",
		Summary:   "Create any missing roles and channels used by the bot.",
		GuildOnly: true,

		Command: sb.setup,
	})

	b.Router.AddCommand(&bcr.Command{
		Name:      "checksetup",
		Summary:   "Check which of the bot's roles and channels exist.",
		GuildOnly: true,

		Command: sb.checkSetup,
	})

	return nil
}

func (bot *Bot) setup(ctx *bcr.Context) (err error) {
	if !bot.CheckAdmin(ctx) {
		return
	}

	guildID := ctx.Message.GuildID
	var created, existed, failed []string

	note := func(name string, wasCreated bool, err error) {
		switch {
		case err != nil:
			common.Log.Errorf("Error creating %v in guild %v: %v", name, guildID, err)
			failed = append(failed, name)
		case wasCreated:
			created = append(created, name)
		default:
			existed = append(existed, name)
		}
	}

	// mute role, with its channel overwrites
	muteName := fmt.Sprintf("mute role `%v`", bot.Config.Features.Moderation.MuteRoleName)
	r, err := bot.RoleByName(guildID, bot.Config.Features.Moderation.MuteRoleName)
	if err == nil && r == nil {
		_, err = bot.EnsureMuteRole(guildID)
		note(muteName, true, err)
	} else {
		note(muteName, false, err)
	}

	// support role
	supportName := fmt.Sprintf("support role `%v`", bot.Config.Features.Tickets.SupportRole)
	r, err = bot.RoleByName(guildID, bot.Config.Features.Tickets.SupportRole)
	if err == nil && r == nil {
		_, err = ctx.State.CreateRole(guildID, api.CreateRoleData{
			Name:  bot.Config.Features.Tickets.SupportRole,
			Color: common.ColourBlue,
		})
		note(supportName, true, err)
	} else {
		note(supportName, false, err)
	}

	// log channel
	logName := fmt.Sprintf("log channel `#%v`", bot.Config.Features.Logs.LogChannelName)
	ch, err := bot.ChannelByName(guildID, discord.GuildText, bot.Config.Features.Logs.LogChannelName)
	if err == nil && ch == nil {
		_, err = ctx.State.CreateChannel(guildID, api.CreateChannelData{
			Name:  bot.Config.Features.Logs.LogChannelName,
			Type:  discord.GuildText,
			Topic: "Bot event logs",
			Overwrites: []discord.Overwrite{{
				ID:   discord.Snowflake(guildID),
				Type: discord.OverwriteRole,
				Deny: discord.PermissionViewChannel,
			}},
			AuditLogReason: "Log channel created by bot setup",
		})
		note(logName, true, err)
	} else {
		note(logName, false, err)
	}

	// ticket category
	catName := fmt.Sprintf("ticket category `%v`", bot.Config.Features.Tickets.CategoryName)
	ch, err = bot.ChannelByName(guildID, discord.GuildCategory, bot.Config.Features.Tickets.CategoryName)
	if err == nil && ch == nil {
		_, err = ctx.State.CreateChannel(guildID, api.CreateChannelData{
			Name:           bot.Config.Features.Tickets.CategoryName,
			Type:           discord.GuildCategory,
			AuditLogReason: "Ticket category created by bot setup",
		})
		note(catName, true, err)
	} else {
		note(catName, false, err)
	}

	e := discord.Embed{
		Title:     "⚙️ Setup",
		Color:     bcr.ColourGreen,
		Timestamp: discord.NowTimestamp(),
	}
	if len(created) > 0 {
		e.Fields = append(e.Fields, discord.EmbedField{Name: "Created", Value: strings.Join(created, "\n")})
	}
	if len(existed) > 0 {
		e.Fields = append(e.Fields, discord.EmbedField{Name: "Already existed", Value: strings.Join(existed, "\n")})
	}
	if len(failed) > 0 {
		e.Color = bcr.ColourRed
		e.Fields = append(e.Fields, discord.EmbedField{Name: "Failed", Value: strings.Join(failed, "\n")})
	}

	_, err = ctx.Send("", e)
	return
}

func (bot *Bot) checkSetup(ctx *bcr.Context) (err error) {
	if !bot.CheckAdmin(ctx) {
		return
	}

	guildID := ctx.Message.GuildID

	check := func(name string, exists bool, lookupErr error) string {
		switch {
		case lookupErr != nil:
			return "⚠️ " + name + " (lookup failed)"
		case exists:
			return "✅ " + name
		default:
			return "❌ " + name
		}
	}

	var lines []string

	r, rerr := bot.RoleByName(guildID, bot.Config.Features.Moderation.MuteRoleName)
	lines = append(lines, check(fmt.Sprintf("mute role `%v`", bot.Config.Features.Moderation.MuteRoleName), r != nil, rerr))

	r, rerr = bot.RoleByName(guildID, bot.Config.Features.Tickets.SupportRole)
	lines = append(lines, check(fmt.Sprintf("support role `%v`", bot.Config.Features.Tickets.SupportRole), r != nil, rerr))

	ch, cerr := bot.ChannelByName(guildID, discord.GuildText, bot.Config.Features.Logs.LogChannelName)
	lines = append(lines, check(fmt.Sprintf("log channel `#%v`", bot.Config.Features.Logs.LogChannelName), ch != nil, cerr))

	ch, cerr = bot.ChannelByName(guildID, discord.GuildCategory, bot.Config.Features.Tickets.CategoryName)
	lines = append(lines, check(fmt.Sprintf("ticket category `%v`", bot.Config.Features.Tickets.CategoryName), ch != nil, cerr))

	for _, name := range bot.Config.AdminRoles {
		r, rerr = bot.RoleByName(guildID, name)
		lines = append(lines, check(fmt.Sprintf("admin role `%v`", name), r != nil, rerr))
	}

	_, err = ctx.Send("", discord.Embed{
		Title:       "⚙️ Setup status",
		Description: strings.Join(lines, "\n"),
		Color:       common.ColourBlue,
		Timestamp:   discord.NowTimestamp(),
	})
	return
}
