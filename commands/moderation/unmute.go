package moderation

import (
	"fmt"

	"github.com/diamondburned/arikawa/v3/api"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/starshine-sys/bcr"
	"github.com/starshine-sys/vigil/common"
)

func (bot *Bot) unmute(ctx *bcr.Context) (err error) {
	if !bot.CheckAdmin(ctx) {
		return nil
	}

	m, _, err := bot.target(ctx)
	if m == nil {
		return err
	}

	role, err := bot.RoleByName(ctx.Message.GuildID, bot.Config.Features.Moderation.MuteRoleName)
	if err != nil {
		return bot.ReportCtx(ctx, err)
	}
	if role == nil {
		_, err = ctx.Send("❌ The mute role doesn't exist!")
		return
	}

	if !common.Contains(m.RoleIDs, role.ID) {
		_, err = ctx.Sendf("❌ %v is not muted!", m.Mention())
		return
	}

	auditReason := fmt.Sprintf("Unmuted by %v#%v", ctx.Author.Username, ctx.Author.Discriminator)
	err = ctx.State.RemoveRole(ctx.Message.GuildID, m.User.ID, role.ID, api.AuditLogReason(auditReason))
	if err != nil {
		common.Log.Errorf("Error unmuting %v: %v", m.User.ID, err)
		_, err = ctx.Sendf("❌ Failed to unmute member: %v", err)
		return
	}

	_, err = ctx.Send("", discord.Embed{
		Title:       "🔊 Member unmuted",
		Description: fmt.Sprintf("**%v#%v** has been unmuted.", m.User.Username, m.User.Discriminator),
		Color:       bcr.ColourGreen,
		Fields: []discord.EmbedField{
			{Name: "Moderator", Value: ctx.Author.Mention(), Inline: true},
		},
	})
	return
}
