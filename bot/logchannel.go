package bot

import (
	"sync"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/starshine-sys/vigil/common"
)

// logChannels holds runtime log channel overrides. In-memory only; a restart
// falls back to the configured channel name.
type logChannels struct {
	mu sync.Mutex
	m  map[discord.GuildID]discord.ChannelID
}

// SetLogChannel overrides the log channel for a guild until restart.
func (bot *Bot) SetLogChannel(guildID discord.GuildID, chID discord.ChannelID) {
	bot.logChannels.mu.Lock()
	defer bot.logChannels.mu.Unlock()

	if bot.logChannels.m == nil {
		bot.logChannels.m = map[discord.GuildID]discord.ChannelID{}
	}
	bot.logChannels.m[guildID] = chID
}

// LogChannel resolves the log channel for a guild: a runtime override wins,
// otherwise the channel named in the configuration is looked up.
func (bot *Bot) LogChannel(guildID discord.GuildID) (discord.ChannelID, bool) {
	bot.logChannels.mu.Lock()
	id, ok := bot.logChannels.m[guildID]
	bot.logChannels.mu.Unlock()
	if ok {
		return id, true
	}

	ch, err := bot.ChannelByName(guildID, discord.GuildText, bot.Config.Features.Logs.LogChannelName)
	if err != nil || ch == nil {
		return 0, false
	}
	return ch.ID, true
}

// SendLog forwards an embed to the guild's log channel. Fire and forget: a
// missing channel or a send failure drops the event.
func (bot *Bot) SendLog(guildID discord.GuildID, e discord.Embed) bool {
	chID, ok := bot.LogChannel(guildID)
	if !ok {
		common.Log.Debugf("no log channel for guild %v, dropping event", guildID)
		return false
	}

	_, err := bot.State(guildID).SendEmbeds(chID, e)
	if err != nil {
		bot.Report(ErrorContext{
			Event:   "log send",
			GuildID: guildID,
		}, err)
		return false
	}
	return true
}
