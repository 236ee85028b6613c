package fun

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/starshine-sys/bcr"
	"github.com/starshine-sys/vigil/common"
)

func (bot *Bot) serverInfo(ctx *bcr.Context) (err error) {
	g, err := ctx.State.GuildWithCount(ctx.Message.GuildID)
	if err != nil {
		return bot.ReportCtx(ctx, err)
	}

	channels, err := ctx.State.Channels(g.ID)
	if err != nil {
		return bot.ReportCtx(ctx, err)
	}

	var text, voice int
	for _, ch := range channels {
		switch ch.Type {
		case discord.GuildText, discord.GuildNews:
			text++
		case discord.GuildVoice, discord.GuildStageVoice:
			voice++
		}
	}

	e := discord.Embed{
		Title: "📊 " + g.Name,
		Color: common.ColourBlue,
		Fields: []discord.EmbedField{
			{
				Name:   "Owner",
				Value:  g.OwnerID.Mention(),
				Inline: true,
			},
			{
				Name:   "Created",
				Value:  bcr.HumanizeTime(bcr.DurationPrecisionMinutes, g.ID.Time()),
				Inline: true,
			},
			{
				Name:   "Members",
				Value:  strconv.FormatUint(g.ApproximateMembers, 10),
				Inline: true,
			},
			{
				Name:   "Channels",
				Value:  fmt.Sprintf("Text: %v | Voice: %v", text, voice),
				Inline: true,
			},
			{
				Name:   "Roles",
				Value:  strconv.Itoa(len(g.Roles)),
				Inline: true,
			},
		},
		Footer: &discord.EmbedFooter{
			Text: "Server ID: " + g.ID.String(),
		},
		Timestamp: discord.NowTimestamp(),
	}

	if g.Icon != "" {
		e.Thumbnail = &discord.EmbedThumbnail{URL: g.IconURL()}
	}

	_, err = ctx.Send("", e)
	return
}

func (bot *Bot) userInfo(ctx *bcr.Context) (err error) {
	m := ctx.Member
	if ctx.RawArgs != "" {
		m, err = ctx.ParseMember(ctx.RawArgs)
		if err != nil {
			_, err = ctx.Send("❌ Member not found!")
			return
		}
	}

	name := m.User.Username
	if m.Nick != "" {
		name = m.Nick
	}

	mentions := make([]string, 0, len(m.RoleIDs))
	for _, id := range m.RoleIDs {
		mentions = append(mentions, id.Mention())
	}
	roles := "None"
	if len(mentions) > 0 {
		roles = strings.Join(mentions, ", ")
		if len(roles) > 1024 {
			roles = fmt.Sprintf("%v roles", len(mentions))
		}
	}

	e := discord.Embed{
		Title: fmt.Sprintf("👤 %v#%v", m.User.Username, m.User.Discriminator),
		Color: common.ColourBlue,
		Thumbnail: &discord.EmbedThumbnail{
			URL: m.User.AvatarURL(),
		},
		Fields: []discord.EmbedField{
			{
				Name:   "Display name",
				Value:  name,
				Inline: true,
			},
			{
				Name:   "Account created",
				Value:  bcr.HumanizeTime(bcr.DurationPrecisionMinutes, m.User.ID.Time()),
				Inline: true,
			},
			{
				Name:   "Joined server",
				Value:  bcr.HumanizeTime(bcr.DurationPrecisionMinutes, m.Joined.Time()),
				Inline: true,
			},
			{
				Name:  "Roles",
				Value: roles,
			},
		},
		Footer: &discord.EmbedFooter{
			Text: "User ID: " + m.User.ID.String(),
		},
		Timestamp: discord.NowTimestamp(),
	}

	_, err = ctx.Send("", e)
	return
}
