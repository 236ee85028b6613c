package events

import (
	"fmt"
	"strconv"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/gateway"
	"github.com/starshine-sys/bcr"
)

func (bot *Bot) guildMemberAdd(m *gateway.GuildMemberAddEvent) {
	e := discord.Embed{
		Title: "Member joined",
		Thumbnail: &discord.EmbedThumbnail{
			URL: m.User.AvatarURL(),
		},

		Color:       bcr.ColourGreen,
		Description: fmt.Sprintf("%v\n%v#%v", m.Mention(), m.User.Username, m.User.Discriminator),

		Fields: []discord.EmbedField{
			{
				Name:   "Account age",
				Value:  bcr.HumanizeTime(bcr.DurationPrecisionMinutes, m.User.ID.Time()),
				Inline: true,
			},
		},

		Footer: &discord.EmbedFooter{
			Text: fmt.Sprintf("ID: %v", m.User.ID),
		},
		Timestamp: discord.NowTimestamp(),
	}

	g, err := bot.State(m.GuildID).GuildWithCount(m.GuildID)
	if err == nil {
		e.Fields = append(e.Fields, discord.EmbedField{
			Name:   "Current member count",
			Value:  strconv.FormatUint(g.ApproximateMembers, 10),
			Inline: true,
		})
	}

	bot.SendLog(m.GuildID, e)
}

func (bot *Bot) guildMemberRemove(m *gateway.GuildMemberRemoveEvent) {
	e := discord.Embed{
		Title: "Member left",
		Thumbnail: &discord.EmbedThumbnail{
			URL: m.User.AvatarURL(),
		},

		Color:       bcr.ColourRed,
		Description: fmt.Sprintf("%v\n%v#%v", m.User.Mention(), m.User.Username, m.User.Discriminator),

		Footer: &discord.EmbedFooter{
			Text: fmt.Sprintf("ID: %v", m.User.ID),
		},
		Timestamp: discord.NowTimestamp(),
	}

	bot.SendLog(m.GuildID, e)
}
