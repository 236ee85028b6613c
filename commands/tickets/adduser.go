package tickets

import (
	"fmt"

	"github.com/diamondburned/arikawa/v3/api"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/starshine-sys/bcr"
	"github.com/starshine-sys/vigil/common"
)

func (bot *Bot) addUser(ctx *bcr.Context) (err error) {
	in, err := bot.inTicket(ctx)
	if err != nil {
		return bot.ReportCtx(ctx, err)
	}
	if !in {
		_, err = ctx.Send("❌ This command can only be used in a ticket channel!")
		return
	}

	m, err := ctx.ParseMember(ctx.RawArgs)
	if err != nil {
		_, err = ctx.Send("❌ Member not found!")
		return
	}

	err = ctx.State.EditChannelPermission(ctx.Channel.ID, discord.Snowflake(m.User.ID), api.EditChannelPermissionData{
		Type: discord.OverwriteMember,
		Allow: discord.PermissionViewChannel |
			discord.PermissionSendMessages |
			discord.PermissionAttachFiles |
			discord.PermissionEmbedLinks,
	})
	if err != nil {
		common.Log.Errorf("Error adding %v to ticket: %v", m.User.ID, err)
		_, err = ctx.Sendf("❌ Failed to add user: %v", err)
		return
	}

	common.Log.Infof("%v added %v to ticket %v", ctx.Author.ID, m.User.ID, ctx.Channel.Name)

	_, err = ctx.Send(fmt.Sprintf("✅ Added %v to this ticket!", m.Mention()))
	return
}
