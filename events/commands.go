package events

import (
	"fmt"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/starshine-sys/bcr"
)

func (bot *Bot) setLogChannel(ctx *bcr.Context) (err error) {
	if !bot.CheckAdmin(ctx) {
		return
	}

	ch := ctx.Channel
	if ctx.RawArgs != "" {
		ch, err = ctx.ParseChannel(ctx.RawArgs)
		if err != nil {
			_, err = ctx.Send("❌ Channel not found.")
			return
		}
	}

	if ch.GuildID != ctx.Message.GuildID || ch.Type != discord.GuildText {
		_, err = ctx.Send("❌ That's not a text channel in this server.")
		return
	}

	bot.SetLogChannel(ctx.Message.GuildID, ch.ID)

	_, err = ctx.Send("", discord.Embed{
		Description: fmt.Sprintf("✅ Log channel set to %v.\nThis setting lasts until the bot restarts.", ch.Mention()),
		Color:       bcr.ColourGreen,
		Timestamp:   discord.NowTimestamp(),
	})
	return
}

func (bot *Bot) testLog(ctx *bcr.Context) (err error) {
	if !bot.CheckAdmin(ctx) {
		return
	}

	ok := bot.SendLog(ctx.Message.GuildID, discord.Embed{
		Title:       "Test log",
		Description: fmt.Sprintf("Requested by %v#%v.", ctx.Author.Username, ctx.Author.Discriminator),
		Color:       bcr.ColourPurple,
		Footer: &discord.EmbedFooter{
			Text: fmt.Sprintf("ID: %v", ctx.Author.ID),
		},
		Timestamp: discord.NowTimestamp(),
	})
	if !ok {
		_, err = ctx.Sendf("❌ No log channel found. Create a channel named `%v`, or set one with `%vsetlogchannel`.", bot.Config.Features.Logs.LogChannelName, ctx.Prefix)
		return
	}

	_, err = ctx.Send("✅ Test log sent!")
	return
}
