package bot

import (
	"strings"
	"time"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/getsentry/sentry-go"
	"github.com/starshine-sys/bcr"
	"github.com/starshine-sys/vigil/common"
)

// ErrorContext is the context for an error.
type ErrorContext struct {
	Event   string
	Command string

	UserID  discord.UserID
	GuildID discord.GuildID
}

// Report logs an error and, if Sentry is configured, captures it there.
func (bot *Bot) Report(ctx ErrorContext, err error) *sentry.EventID {
	in := ctx.Event
	if in == "" {
		in = ctx.Command
	}
	common.Log.Errorf("Error in %v: %v", in, err)

	if bot.Hub == nil {
		return nil
	}

	hub := bot.Hub.Clone()

	data := map[string]interface{}{}
	if ctx.Event != "" {
		data["event"] = ctx.Event
	}
	if ctx.Command != "" {
		data["command"] = ctx.Command
	}
	if ctx.GuildID.IsValid() {
		data["guild"] = ctx.GuildID
	}

	hub.ConfigureScope(func(scope *sentry.Scope) {
		if ctx.UserID.IsValid() {
			scope.SetUser(sentry.User{ID: ctx.UserID.String()})
			data["user"] = ctx.UserID
		}
	})

	hub.AddBreadcrumb(&sentry.Breadcrumb{
		Data:      data,
		Level:     sentry.LevelError,
		Timestamp: time.Now().UTC(),
	}, nil)

	return hub.CaptureException(err)
}

// ReportCtx reports a command error and tells the invoking channel, so a
// platform API failure never looks like the bot silently ignoring a command.
func (bot *Bot) ReportCtx(ctx *bcr.Context, e error) (err error) {
	id := bot.Report(ErrorContext{
		Command: strings.Join(ctx.FullCommandPath, " "),
		UserID:  ctx.Author.ID,
		GuildID: ctx.Message.GuildID,
	}, e)

	if id == nil {
		_, err = ctx.Send("Internal error occurred.")
		return
	}

	_, err = ctx.Send("", discord.Embed{
		Title:       "Internal error occurred",
		Description: "An internal error has occurred. If this issue persists, please contact the bot developer with the error code below.",
		Color:       bcr.ColourRed,

		Footer: &discord.EmbedFooter{
			Text: string(*id),
		},
		Timestamp: discord.NowTimestamp(),
	})
	return
}
