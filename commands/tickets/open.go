package tickets

import (
	"fmt"

	"github.com/diamondburned/arikawa/v3/api"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/starshine-sys/bcr"
	"github.com/starshine-sys/vigil/common"
)

func (bot *Bot) open(ctx *bcr.Context) (err error) {
	topic := "General Support"
	if ctx.RawArgs != "" {
		topic = ctx.RawArgs
	}

	cat, err := bot.category(ctx)
	if err != nil {
		common.Log.Errorf("Error getting ticket category: %v", err)
		_, err = ctx.Sendf("❌ Failed to create ticket: %v", err)
		return
	}

	// one open ticket per user
	channels, err := ctx.State.Channels(ctx.Message.GuildID)
	if err != nil {
		return bot.ReportCtx(ctx, err)
	}
	for _, ch := range channels {
		if ch.ParentID == cat.ID && IsTicketOwner(ch.Name, ctx.Author.ID) {
			_, err = ctx.Sendf("❌ You already have an open ticket: %v\nPlease close your existing ticket before opening a new one.", ch.Mention())
			return
		}
	}

	var supportID *discord.RoleID
	support, err := bot.RoleByName(ctx.Message.GuildID, bot.Config.Features.Tickets.SupportRole)
	if err != nil {
		return bot.ReportCtx(ctx, err)
	}
	if support != nil {
		supportID = &support.ID
	}

	var adminIDs []discord.RoleID
	for _, name := range bot.Config.AdminRoles {
		r, err := bot.RoleByName(ctx.Message.GuildID, name)
		if err == nil && r != nil {
			adminIDs = append(adminIDs, r.ID)
		}
	}

	g, err := ctx.State.Guild(ctx.Message.GuildID)
	if err != nil {
		return bot.ReportCtx(ctx, err)
	}

	ch, err := ctx.State.CreateChannel(ctx.Message.GuildID, api.CreateChannelData{
		Name:       ChannelName(ctx.Author.Username, ctx.Author.ID),
		Type:       discord.GuildText,
		Topic:      fmt.Sprintf("Support ticket for %v#%v | %v", ctx.Author.Username, ctx.Author.Discriminator, topic),
		CategoryID: cat.ID,
		Overwrites: Overwrites(
			discord.RoleID(g.ID), // the @everyone role ID is the guild ID
			ctx.Author.ID,
			bot.Router.Bot.ID,
			supportID,
			adminIDs,
		),
		AuditLogReason: api.AuditLogReason(fmt.Sprintf("Ticket opened by %v#%v", ctx.Author.Username, ctx.Author.Discriminator)),
	})
	if err != nil {
		common.Log.Errorf("Error creating ticket channel: %v", err)
		_, err = ctx.Sendf("❌ Failed to create ticket: %v", err)
		return
	}

	common.Log.Infof("%v opened ticket %v in guild %v", ctx.Author.ID, ch.Name, ctx.Message.GuildID)

	_, err = ctx.Send("", discord.Embed{
		Title:       "🎫 Ticket created",
		Description: "Your support ticket has been created: " + ch.Mention(),
		Color:       bcr.ColourGreen,
	})
	if err != nil {
		return err
	}

	_, err = ctx.State.SendEmbeds(ch.ID, discord.Embed{
		Title: "🎫 Support ticket",
		Description: fmt.Sprintf(
			"Hello %v!\n\n**Topic:** %v\n\nA member of the support team will be with you shortly. Please describe your issue in detail.\n\nTo close this ticket, use `%vclose`.",
			ctx.Author.Mention(), topic, ctx.Prefix,
		),
		Color: common.ColourBlue,
		Footer: &discord.EmbedFooter{
			Text: "Ticket ID: " + ch.ID.String(),
		},
	})
	if err != nil {
		return err
	}

	if support != nil {
		_, err = ctx.State.SendMessage(ch.ID, fmt.Sprintf("%v - new support ticket from %v", support.Mention(), ctx.Author.Mention()))
	}
	return
}
