package meta

import (
	"fmt"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/starshine-sys/bcr"
	"github.com/starshine-sys/vigil/common"
)

func (bot *Bot) help(ctx *bcr.Context) (err error) {
	// help for specific commands
	if len(ctx.Args) > 0 {
		return ctx.Help(ctx.Args)
	}

	e := discord.Embed{
		Title:       "Help",
		Description: fmt.Sprintf("%v is a modular moderation and utility bot.\nUse `%vhelp <command>` for more information about a command.", ctx.Bot.Username, ctx.Prefix),
		Color:       bcr.ColourPurple,

		Fields: []discord.EmbedField{
			{
				Name:  "Moderation",
				Value: "`kick`, `ban`, `mute`, `unmute`: moderate members\n`warn`, `warnings`, `clearwarnings`: manage automod warnings\n`lockdown`, `raidstatus`: manage raid protection",
			},
			{
				Name:  "Tickets",
				Value: "`ticket`: open a support ticket\n`close`: close the current ticket\n`adduser`: add a member to the current ticket",
			},
			{
				Name:  "Logging",
				Value: "`setlogchannel`: log events to the given channel\n`testlog`: send a test log message",
			},
			{
				Name:  "Fun",
				Value: "`ping`, `coinflip`, `roll`, `choose`, `8ball`, `serverinfo`, `userinfo`",
			},
			{
				Name:  "Server setup",
				Value: "`setup`: create the roles and channels the bot needs\n`checksetup`: check the server's configuration",
			},
		},

		Footer: &discord.EmbedFooter{
			Text: "Version " + common.Version(),
		},
	}

	_, err = ctx.Send("", e)
	return
}

func (bot *Bot) invite(ctx *bcr.Context) (err error) {
	perms := discord.PermissionViewChannel |
		discord.PermissionReadMessageHistory |
		discord.PermissionSendMessages |
		discord.PermissionEmbedLinks |
		discord.PermissionAddReactions |
		discord.PermissionManageMessages |
		discord.PermissionManageChannels |
		discord.PermissionManageRoles |
		discord.PermissionKickMembers |
		discord.PermissionBanMembers

	link := fmt.Sprintf("https://discord.com/api/oauth2/authorize?client_id=%v&permissions=%v&scope=bot%%20applications.commands", ctx.Bot.ID, perms)

	_, err = ctx.Sendf("Use the following link to invite me to your server: <%v>", link)
	return
}
