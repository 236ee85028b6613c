package moderation

import (
	"fmt"

	"github.com/diamondburned/arikawa/v3/api"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/starshine-sys/bcr"
	"github.com/starshine-sys/vigil/common"
)

func (bot *Bot) mute(ctx *bcr.Context) (err error) {
	if !bot.CheckAdmin(ctx) {
		return nil
	}

	m, reason, err := bot.target(ctx)
	if m == nil {
		return err
	}

	if ok, err := bot.checkTarget(ctx, m); !ok {
		return err
	}

	role, err := bot.EnsureMuteRole(ctx.Message.GuildID)
	if err != nil {
		common.Log.Errorf("Error getting mute role: %v", err)
		_, err = ctx.Sendf("❌ Failed to mute member: %v", err)
		return
	}

	if common.Contains(m.RoleIDs, role.ID) {
		_, err = ctx.Sendf("❌ %v is already muted!", m.Mention())
		return
	}

	auditReason := fmt.Sprintf("Muted by %v#%v: %v", ctx.Author.Username, ctx.Author.Discriminator, reason)
	err = ctx.State.AddRole(ctx.Message.GuildID, m.User.ID, role.ID, api.AddRoleData{
		AuditLogReason: api.AuditLogReason(auditReason),
	})
	if err != nil {
		common.Log.Errorf("Error muting %v: %v", m.User.ID, err)
		_, err = ctx.Sendf("❌ Failed to mute member: %v", err)
		return
	}

	_, err = ctx.Send("", discord.Embed{
		Title:       "🔇 Member muted",
		Description: fmt.Sprintf("**%v#%v** has been muted.", m.User.Username, m.User.Discriminator),
		Color:       common.ColourGrey,
		Fields: []discord.EmbedField{
			{Name: "Reason", Value: reason},
			{Name: "Moderator", Value: ctx.Author.Mention(), Inline: true},
		},
	})
	return
}
