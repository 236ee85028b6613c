package tickets

import (
	"fmt"
	"time"

	"github.com/diamondburned/arikawa/v3/api"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/starshine-sys/bcr"
	"github.com/starshine-sys/vigil/common"
)

func (bot *Bot) close(ctx *bcr.Context) (err error) {
	in, err := bot.inTicket(ctx)
	if err != nil {
		return bot.ReportCtx(ctx, err)
	}
	if !in {
		_, err = ctx.Send("❌ This command can only be used in a ticket channel!")
		return
	}

	allowed := IsTicketOwner(ctx.Channel.Name, ctx.Author.ID)
	if !allowed {
		admin, err := bot.MemberIsAdmin(ctx.Message.GuildID, ctx.Member)
		if err != nil {
			return bot.ReportCtx(ctx, err)
		}
		allowed = admin
	}
	if !allowed {
		if support, err := bot.RoleByName(ctx.Message.GuildID, bot.Config.Features.Tickets.SupportRole); err == nil && support != nil {
			allowed = common.Contains(ctx.Member.RoleIDs, support.ID)
		}
	}
	if !allowed {
		_, err = ctx.Send("❌ You don't have permission to close this ticket!")
		return
	}

	_, err = ctx.Send("", discord.Embed{
		Title:       "🔒 Ticket closing",
		Description: "This ticket will be deleted in 5 seconds...",
		Color:       bcr.ColourRed,
		Fields: []discord.EmbedField{
			{Name: "Closed by", Value: ctx.Author.Mention()},
		},
	})
	if err != nil {
		return err
	}

	common.Log.Infof("%v closed ticket %v in guild %v", ctx.Author.ID, ctx.Channel.Name, ctx.Message.GuildID)

	time.Sleep(5 * time.Second)

	err = ctx.State.DeleteChannel(ctx.Channel.ID,
		api.AuditLogReason(fmt.Sprintf("Ticket closed by %v#%v", ctx.Author.Username, ctx.Author.Discriminator)))
	if err != nil {
		common.Log.Errorf("Error deleting ticket channel: %v", err)
		_, err = ctx.Sendf("❌ Failed to close ticket: %v", err)
	}
	return
}
