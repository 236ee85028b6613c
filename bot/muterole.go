package bot

import (
	"github.com/diamondburned/arikawa/v3/api"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/starshine-sys/vigil/common"
)

// EnsureMuteRole returns the configured mute role, creating it (with
// send-message denies on all text channels) if it doesn't exist yet.
func (bot *Bot) EnsureMuteRole(guildID discord.GuildID) (*discord.Role, error) {
	name := bot.Config.Features.Moderation.MuteRoleName

	r, err := bot.RoleByName(guildID, name)
	if err != nil || r != nil {
		return r, err
	}

	s := bot.State(guildID)

	r, err = s.CreateRole(guildID, api.CreateRoleData{
		Name:  name,
		Color: common.ColourGrey,
	})
	if err != nil {
		return nil, err
	}

	channels, err := s.Channels(guildID)
	if err != nil {
		return nil, err
	}

	for _, ch := range channels {
		if ch.Type != discord.GuildText && ch.Type != discord.GuildNews {
			continue
		}

		err = s.EditChannelPermission(ch.ID, discord.Snowflake(r.ID), api.EditChannelPermissionData{
			Type: discord.OverwriteRole,
			Deny: discord.PermissionSendMessages | discord.PermissionAddReactions,
		})
		if err != nil {
			common.Log.Errorf("Error setting mute overwrite in %v: %v", ch.ID, err)
		}
	}

	common.Log.Infof("Created mute role %q in guild %v", name, guildID)
	return r, nil
}
