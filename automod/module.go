// Package automod detects message spam and escalates from warnings to mutes.
package automod

import (
	"sync"
	"time"

	"github.com/starshine-sys/bcr"
	vbot "github.com/starshine-sys/vigil/bot"
)

// Bot ...
type Bot struct {
	*vbot.Bot

	tracker  *Tracker
	warnings *Warnings

	// users currently being actioned, to avoid double punishment when spam
	// messages arrive faster than the API calls complete
	mu         sync.Mutex
	processing map[trackerKey]struct{}
}

// Init ...
func Init(b *vbot.Bot) (err error) {
	ab := &Bot{
		Bot:        b,
		tracker:    NewTracker(time.Duration(b.Config.Features.Automod.WindowSeconds) * time.Second),
		warnings:   NewWarnings(),
		processing: map[trackerKey]struct{}{},
	}

	b.AddHandler(ab.messageCreate)

	b.Router.AddCommand(&bcr.Command{
		Name:      "warn",
		Summary:   "Warn a member.",
		Usage:     "<member> [reason]",
		Args:      bcr.MinArgs(1),
		GuildOnly: true,

		Command: ab.warn,
	})

	b.Router.AddCommand(&bcr.Command{
		Name:      "warnings",
		Summary:   "Show a member's warnings.",
		Usage:     "<member>",
		Args:      bcr.MinArgs(1),
		GuildOnly: true,

		Command: ab.showWarnings,
	})

	b.Router.AddCommand(&bcr.Command{
		Name:      "clearwarnings",
		Summary:   "Clear all warnings for a member.",
		Usage:     "<member>",
		Args:      bcr.MinArgs(1),
		GuildOnly: true,

		Command: ab.clearWarnings,
	})

	b.Router.AddCommand(&bcr.Command{
		Name:      "automod",
		Summary:   "Show the current automod configuration.",
		GuildOnly: true,

		Command: ab.status,
	})

	return nil
}

func (bot *Bot) tryLock(key trackerKey) bool {
	bot.mu.Lock()
	defer bot.mu.Unlock()

	if _, ok := bot.processing[key]; ok {
		return false
	}
	bot.processing[key] = struct{}{}
	return true
}

func (bot *Bot) unlock(key trackerKey) {
	bot.mu.Lock()
	defer bot.mu.Unlock()

	delete(bot.processing, key)
}
