package automod

import (
	"fmt"
	"strings"
	"time"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/starshine-sys/bcr"
	"github.com/starshine-sys/vigil/common"
)

func (bot *Bot) warn(ctx *bcr.Context) (err error) {
	if !bot.CheckAdmin(ctx) {
		return
	}

	m, err := ctx.ParseMember(ctx.Args[0])
	if err != nil {
		_, err = ctx.Send("❌ Member not found.")
		return
	}

	if m.User.ID == ctx.Author.ID {
		_, err = ctx.Send("❌ You cannot warn yourself!")
		return
	}
	if m.User.Bot {
		_, err = ctx.Send("❌ You cannot warn a bot!")
		return
	}
	if admin, _ := bot.MemberIsAdmin(ctx.Message.GuildID, m); admin {
		_, err = ctx.Send("❌ You cannot warn a moderator!")
		return
	}

	reason := "No reason provided"
	if len(ctx.Args) > 1 {
		reason = strings.Join(ctx.Args[1:], " ")
	}

	count := bot.warnings.Add(ctx.Message.GuildID, m.User.ID, time.Now().UTC())

	_, err = ctx.Send("", discord.Embed{
		Title:       "⚠️ Member warned",
		Description: fmt.Sprintf("**%v#%v** has been warned.", m.User.Username, m.User.Discriminator),
		Color:       common.ColourOrange,

		Fields: []discord.EmbedField{
			{Name: "Reason", Value: reason},
			{Name: "Warning #", Value: fmt.Sprint(count), Inline: true},
			{Name: "Moderator", Value: ctx.Author.Mention(), Inline: true},
		},
	})
	return
}

func (bot *Bot) showWarnings(ctx *bcr.Context) (err error) {
	if !bot.CheckAdmin(ctx) {
		return
	}

	m, err := ctx.ParseMember(ctx.RawArgs)
	if err != nil {
		_, err = ctx.Send("❌ Member not found.")
		return
	}

	total := bot.warnings.Count(ctx.Message.GuildID, m.User.ID)
	recent := bot.warnings.Recent(ctx.Message.GuildID, m.User.ID, time.Now().UTC().Add(-24*time.Hour))

	var colour discord.Color = bcr.ColourGreen
	if total > 0 {
		colour = common.ColourOrange
	}

	_, err = ctx.Send("", discord.Embed{
		Title: "⚠️ Warnings",
		Color: colour,

		Fields: []discord.EmbedField{
			{Name: "User", Value: fmt.Sprintf("%v#%v (%v)", m.User.Username, m.User.Discriminator, m.Mention())},
			{Name: "Total", Value: fmt.Sprint(total), Inline: true},
			{Name: "Last 24 hours", Value: fmt.Sprint(recent), Inline: true},
			{Name: "Mute threshold", Value: fmt.Sprintf("%v warnings", bot.Config.Features.Automod.MuteThreshold)},
		},
	})
	return
}

func (bot *Bot) clearWarnings(ctx *bcr.Context) (err error) {
	if !bot.CheckAdmin(ctx) {
		return
	}

	m, err := ctx.ParseMember(ctx.RawArgs)
	if err != nil {
		_, err = ctx.Send("❌ Member not found.")
		return
	}

	if !bot.warnings.Clear(ctx.Message.GuildID, m.User.ID) {
		_, err = ctx.Sendf("%v has no warnings to clear.", m.Mention())
		return
	}

	_, err = ctx.Send("", discord.Embed{
		Description: fmt.Sprintf("✅ All warnings for %v have been cleared.", m.Mention()),
		Color:       bcr.ColourGreen,
	})
	return
}

func (bot *Bot) status(ctx *bcr.Context) (err error) {
	if !bot.CheckAdmin(ctx) {
		return
	}

	cfg := bot.Config.Features.Automod

	_, err = ctx.Send("", discord.Embed{
		Title: "🛡️ Automod configuration",
		Color: common.ColourBlue,

		Fields: []discord.EmbedField{
			{
				Name:   "Message rate",
				Value:  fmt.Sprintf("%v messages in %vs", cfg.MessageRate, cfg.WindowSeconds),
				Inline: true,
			},
			{
				Name:   "Repeat limit",
				Value:  fmt.Sprintf("%v identical messages", cfg.RepeatLimit),
				Inline: true,
			},
			{
				Name:   "Mute threshold",
				Value:  fmt.Sprintf("%v warnings", cfg.MuteThreshold),
				Inline: true,
			},
			{
				Name:  "Exempt roles",
				Value: strings.Join(bot.Config.AdminRoles, ", "),
			},
		},
	})
	return
}
