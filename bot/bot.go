package bot

import (
	"context"
	"os"
	"time"

	"emperror.dev/errors"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/gateway"
	"github.com/diamondburned/arikawa/v3/session/shard"
	"github.com/diamondburned/arikawa/v3/state"
	"github.com/diamondburned/arikawa/v3/utils/ws"
	"github.com/getsentry/sentry-go"
	"github.com/starshine-sys/bcr"
	"github.com/starshine-sys/vigil/common"
	"github.com/starshine-sys/vigil/stats"
)

// Intents are the gateway intents the bot subscribes to.
const Intents = gateway.IntentGuilds |
	gateway.IntentGuildMembers |
	gateway.IntentGuildBans |
	gateway.IntentGuildMessages

// Bot is the shared bot state passed to every feature module.
type Bot struct {
	Router *bcr.Router
	Config Config

	Hub   *sentry.Hub
	Stats *stats.Client

	logChannels logChannels

	Start time.Time
}

// New creates a new Bot. The gateway connection is not opened until Open is
// called; reconnection and session resuming are handled by the shard manager.
func New(c Config) (*Bot, error) {
	ws.WSDebug = common.Log.Named("ws").Debug
	ws.WSError = func(err error) {
		common.Log.Error("ws error: ", err)
	}

	var owners []discord.UserID
	if sf, err := discord.ParseSnowflake(os.Getenv("OWNER")); err == nil {
		owners = append(owners, discord.UserID(sf))
	}

	r, err := bcr.NewWithIntents(
		c.Bot.Token,
		owners,
		[]string{c.Bot.Prefix},
		Intents,
	)
	if err != nil {
		return nil, errors.Wrap(err, "creating router")
	}
	r.EmbedColor = bcr.ColourPurple

	b := &Bot{
		Router: r,
		Config: c,
		Start:  time.Now().UTC(),
	}

	return b, nil
}

// Open connects to the gateway.
func (bot *Bot) Open(ctx context.Context) error {
	common.Log.Debug("opening gateway connection")

	return bot.Router.ShardManager.Open(ctx)
}

// Close closes the gateway connection.
func (bot *Bot) Close() error {
	return bot.Router.ShardManager.Close()
}

// AddHandler adds handlers to all states.
func (bot *Bot) AddHandler(handlers ...interface{}) {
	for _, h := range handlers {
		bot.Router.AddHandler(h)
	}
}

// State gets a state.State for the guild.
func (bot *Bot) State(id discord.GuildID) *state.State {
	s, _ := bot.Router.StateFromGuildID(id)
	return s
}

// GuildCount returns the number of guilds the bot is in, across all shards.
func (bot *Bot) GuildCount() (count int) {
	bot.Router.ShardManager.ForEach(func(s shard.Shard) {
		state := s.(*state.State)

		guilds, err := state.GuildStore.Guilds()
		if err == nil {
			count += len(guilds)
		}
	})
	return count
}

// RoleByName returns the guild role with the given name, or nil.
func (bot *Bot) RoleByName(guildID discord.GuildID, name string) (*discord.Role, error) {
	roles, err := bot.State(guildID).Roles(guildID)
	if err != nil {
		return nil, err
	}

	for i := range roles {
		if roles[i].Name == name {
			return &roles[i], nil
		}
	}
	return nil, nil
}

// ChannelByName returns the guild channel with the given name and type, or nil.
func (bot *Bot) ChannelByName(guildID discord.GuildID, typ discord.ChannelType, name string) (*discord.Channel, error) {
	channels, err := bot.State(guildID).Channels(guildID)
	if err != nil {
		return nil, err
	}

	for i := range channels {
		if channels[i].Type == typ && channels[i].Name == name {
			return &channels[i], nil
		}
	}
	return nil, nil
}
