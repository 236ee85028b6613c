package moderation

import (
	"fmt"

	"github.com/diamondburned/arikawa/v3/api"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/utils/json/option"
	"github.com/starshine-sys/bcr"
	"github.com/starshine-sys/vigil/common"
)

func (bot *Bot) ban(ctx *bcr.Context) (err error) {
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

	days, _ := ctx.Flags.GetUint("days")
	if days > 7 {
		days = 7
	}

	auditReason := fmt.Sprintf("Banned by %v#%v: %v", ctx.Author.Username, ctx.Author.Discriminator, reason)
	data := api.BanData{
		AuditLogReason: api.AuditLogReason(auditReason),
	}
	if days > 0 {
		data.DeleteDays = option.NewUint(days)
	}

	err = ctx.State.Ban(ctx.Message.GuildID, m.User.ID, data)
	if err != nil {
		common.Log.Errorf("Error banning %v: %v", m.User.ID, err)
		_, err = ctx.Sendf("❌ Failed to ban member: %v", err)
		return
	}

	_, err = ctx.Send("", discord.Embed{
		Title:       "🔨 Member banned",
		Description: fmt.Sprintf("**%v#%v** has been banned from the server.", m.User.Username, m.User.Discriminator),
		Color:       bcr.ColourRed,
		Fields: []discord.EmbedField{
			{Name: "Reason", Value: reason},
			{Name: "Moderator", Value: ctx.Author.Mention(), Inline: true},
		},
	})
	return
}
