package antiraid

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/starshine-sys/bcr"
	"github.com/starshine-sys/vigil/common"
)

func (bot *Bot) lockdown(ctx *bcr.Context) (err error) {
	if !bot.CheckAdmin(ctx) {
		return
	}

	cfg := bot.Config.Features.Antiraid
	now := time.Now().UTC()
	locked := bot.tracker.LockedDown(ctx.Message.GuildID, now)

	minutes := cfg.LockdownMinutes
	enable := !locked

	switch arg := strings.ToLower(ctx.RawArgs); arg {
	case "":
	case "on":
		enable = true
	case "off":
		enable = false
	default:
		n, perr := strconv.Atoi(arg)
		if perr != nil || n < 0 {
			_, err = ctx.Sendf("❌ Invalid argument. Usage: `%vlockdown [on|off|<minutes>]`", ctx.Prefix)
			return
		}
		enable = true
		minutes = n
	}

	if !enable {
		if !locked {
			_, err = ctx.Send("The server is not in lockdown.")
			return
		}

		bot.tracker.SetLockdown(ctx.Message.GuildID, false, 0, now)
		_, err = ctx.Send("", discord.Embed{
			Title:       "🔓 Lockdown ended",
			Description: fmt.Sprintf("Lockdown disabled by %v.", ctx.Author.Mention()),
			Color:       bcr.ColourGreen,
			Timestamp:   discord.NowTimestamp(),
		})
		return
	}

	d := time.Duration(minutes) * time.Minute
	bot.tracker.SetLockdown(ctx.Message.GuildID, true, d, now)

	desc := fmt.Sprintf("Lockdown enabled by %v for %v minutes. New members will be kicked.", ctx.Author.Mention(), minutes)
	if minutes == 0 {
		desc = fmt.Sprintf("Indefinite lockdown enabled by %v. New members will be kicked until `%vlockdown off`.", ctx.Author.Mention(), ctx.Prefix)
	}

	_, err = ctx.Send("", discord.Embed{
		Title:       "🔒 Lockdown enabled",
		Description: desc,
		Color:       common.ColourOrange,
		Timestamp:   discord.NowTimestamp(),
	})
	return
}

func (bot *Bot) raidStatus(ctx *bcr.Context) (err error) {
	if !bot.CheckAdmin(ctx) {
		return
	}

	cfg := bot.Config.Features.Antiraid
	now := time.Now().UTC()

	status := "✅ No lockdown active"
	if bot.tracker.LockedDown(ctx.Message.GuildID, now) {
		status = "🔒 Lockdown active (indefinite)"
		if until, ok := bot.tracker.LockdownEnd(ctx.Message.GuildID); ok {
			status = fmt.Sprintf("🔒 Lockdown active, ends in %v", until.Sub(now).Round(time.Second))
		}
	}

	_, err = ctx.Send("", discord.Embed{
		Title: "🚨 Raid detection status",
		Color: common.ColourBlue,

		Fields: []discord.EmbedField{
			{Name: "Status", Value: status},
			{
				Name:   "Join threshold",
				Value:  fmt.Sprintf("%v joins in %vs", cfg.JoinThreshold, cfg.WindowSeconds),
				Inline: true,
			},
			{
				Name:   "Minimum account age",
				Value:  fmt.Sprintf("%v days", cfg.MinAccountAgeDays),
				Inline: true,
			},
			{
				Name:   "Suspicious accounts flagged",
				Value:  fmt.Sprint(len(bot.tracker.Suspicious(ctx.Message.GuildID))),
				Inline: true,
			},
		},
		Timestamp: discord.NowTimestamp(),
	})
	return
}
