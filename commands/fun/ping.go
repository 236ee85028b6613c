package fun

import (
	"fmt"
	"runtime"
	"time"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/dustin/go-humanize"
	"github.com/starshine-sys/bcr"
)

func (bot *Bot) ping(ctx *bcr.Context) (err error) {
	stats := runtime.MemStats{}
	runtime.ReadMemStats(&stats)

	t := time.Now()

	m, err := ctx.Send("...")
	if err != nil {
		return err
	}

	latency := time.Since(t).Round(time.Millisecond)

	e := discord.Embed{
		Color: bcr.ColourPurple,
		Fields: []discord.EmbedField{
			{
				Name:   "Message latency",
				Value:  latency.String(),
				Inline: true,
			},
			{
				Name:   "Memory usage",
				Value:  fmt.Sprintf("%v / %v", humanize.Bytes(stats.Alloc), humanize.Bytes(stats.Sys)),
				Inline: true,
			},
			{
				Name:   "Goroutines",
				Value:  fmt.Sprint(runtime.NumGoroutine()),
				Inline: true,
			},
			{
				Name: "Uptime",
				Value: fmt.Sprintf(
					"%v\n(Since %v)",
					bcr.HumanizeDuration(bcr.DurationPrecisionSeconds, time.Since(bot.Start)),
					bot.Start.Format("Jan _2 2006, 15:04:05 MST"),
				),
				Inline: true,
			},
		},
	}

	_, err = ctx.State.EditEmbeds(m.ChannelID, m.ID, e)
	return err
}
