package moderation

import (
	"fmt"

	"github.com/diamondburned/arikawa/v3/api"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/starshine-sys/vigil/common"

	"github.com/starshine-sys/bcr"
)

func (bot *Bot) kick(ctx *bcr.Context) (err error) {
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

	auditReason := fmt.Sprintf("Kicked by %v#%v: %v", ctx.Author.Username, ctx.Author.Discriminator, reason)
	err = ctx.State.Kick(ctx.Message.GuildID, m.User.ID, api.AuditLogReason(auditReason))
	if err != nil {
		common.Log.Errorf("Error kicking %v: %v", m.User.ID, err)
		_, err = ctx.Sendf("❌ Failed to kick member: %v", err)
		return
	}

	_, err = ctx.Send("", discord.Embed{
		Title:       "👢 Member kicked",
		Description: fmt.Sprintf("**%v#%v** has been kicked from the server.", m.User.Username, m.User.Discriminator),
		Color:       common.ColourOrange,
		Fields: []discord.EmbedField{
			{Name: "Reason", Value: reason},
			{Name: "Moderator", Value: ctx.Author.Mention(), Inline: true},
		},
	})
	return
}
