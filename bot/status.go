package bot

import (
	"context"
	"fmt"
	"time"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/gateway"
	"github.com/diamondburned/arikawa/v3/session/shard"
	"github.com/diamondburned/arikawa/v3/state"
	"github.com/starshine-sys/vigil/common"
)

// StartStatusLoop starts the presence update loop on every shard.
// Must be called after the gateway connection is opened.
func (bot *Bot) StartStatusLoop() {
	bot.Router.ShardManager.ForEach(func(s shard.Shard) {
		go bot.statusLoop(s.(*state.State))
	})
}

func (bot *Bot) statusLoop(s *state.State) {
	for {
		err := s.Gateway().Send(context.Background(), &gateway.UpdatePresenceCommand{
			Status: discord.OnlineStatus,
			Activities: []discord.Activity{{
				Name: presenceString(bot.Config.Bot.Prefix, bot.GuildCount()),
				Type: discord.GameActivity,
			}},
		})
		if err != nil {
			common.Log.Errorf("Error setting status: %v", err)
		}

		time.Sleep(10 * time.Minute)
	}
}

func presenceString(prefix string, guilds int) string {
	str := fmt.Sprintf("%vhelp", prefix)
	if guilds != 0 {
		str += fmt.Sprintf(" | in %v servers", guilds)
	}
	return str
}
