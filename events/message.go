package events

import (
	"fmt"
	"unicode/utf8"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/gateway"
	"github.com/starshine-sys/bcr"
)

// cachedMessage is the part of a message we keep around for edit and delete
// logs.
type cachedMessage struct {
	ID        discord.MessageID
	ChannelID discord.ChannelID
	UserID    discord.UserID
	Username  string
	Content   string
}

func (bot *Bot) messageCreate(m *gateway.MessageCreateEvent) {
	if !m.GuildID.IsValid() || m.Author.Bot {
		return
	}

	bot.messages.Set(m.ID.String(), cachedMessage{
		ID:        m.ID,
		ChannelID: m.ChannelID,
		UserID:    m.Author.ID,
		Username:  m.Author.Username + "#" + m.Author.Discriminator,
		Content:   m.Content,
	})
}

func (bot *Bot) messageUpdate(m *gateway.MessageUpdateEvent) {
	if !m.GuildID.IsValid() || m.Author.Bot {
		return
	}
	// embed-only updates have no content and aren't worth logging
	if m.Content == "" {
		return
	}

	old := "*Message content not cached*"
	v, err := bot.messages.Get(m.ID.String())
	if err == nil {
		msg := v.(cachedMessage)
		if msg.Content == m.Content {
			return
		}
		old = msg.Content
	}

	// cache the new content for the next edit or delete
	bot.messages.Set(m.ID.String(), cachedMessage{
		ID:        m.ID,
		ChannelID: m.ChannelID,
		UserID:    m.Author.ID,
		Username:  m.Author.Username + "#" + m.Author.Discriminator,
		Content:   m.Content,
	})

	e := discord.Embed{
		Author: &discord.EmbedAuthor{
			Icon: m.Author.AvatarURL(),
			Name: m.Author.Username + "#" + m.Author.Discriminator,
		},
		Title:       "Message updated",
		Description: fmt.Sprintf("[Jump to message](https://discord.com/channels/%v/%v/%v)", m.GuildID, m.ChannelID, m.ID),
		Color:       bcr.ColourPurple,

		Fields: []discord.EmbedField{
			{
				Name:  "Old content",
				Value: truncate(old, 1000),
			},
			{
				Name:  "New content",
				Value: truncate(m.Content, 1000),
			},
			{
				Name:   "Channel",
				Value:  fmt.Sprintf("%v\nID: %v", m.ChannelID.Mention(), m.ChannelID),
				Inline: true,
			},
			{
				Name:   "Sender",
				Value:  fmt.Sprintf("%v\nID: %v", m.Author.Mention(), m.Author.ID),
				Inline: true,
			},
		},

		Footer: &discord.EmbedFooter{
			Text: fmt.Sprintf("ID: %v", m.ID),
		},
		Timestamp: discord.NowTimestamp(),
	}

	bot.SendLog(m.GuildID, e)
}

func (bot *Bot) messageDelete(m *gateway.MessageDeleteEvent) {
	if !m.GuildID.IsValid() {
		return
	}

	v, err := bot.messages.Get(m.ID.String())
	if err != nil {
		e := discord.Embed{
			Title:       "Message deleted",
			Description: fmt.Sprintf("An uncached message was deleted in %v (%v).", m.ChannelID.Mention(), m.ChannelID),
			Color:       bcr.ColourRed,
			Footer: &discord.EmbedFooter{
				Text: "ID: " + m.ID.String(),
			},
			Timestamp: discord.NewTimestamp(m.ID.Time()),
		}

		bot.SendLog(m.GuildID, e)
		return
	}

	msg := v.(cachedMessage)
	bot.messages.Remove(m.ID.String())

	mention := msg.UserID.Mention()
	var author *discord.EmbedAuthor
	u, err := bot.State(m.GuildID).User(msg.UserID)
	if err == nil {
		mention = fmt.Sprintf("%v\n%v#%v\nID: %v", u.Mention(), u.Username, u.Discriminator, u.ID)
		author = &discord.EmbedAuthor{
			Icon: u.AvatarURL(),
			Name: u.Username + "#" + u.Discriminator,
		}
	}

	e := discord.Embed{
		Author:      author,
		Title:       "Message by " + msg.Username + " deleted",
		Description: truncate(msg.Content, 4000),
		Color:       bcr.ColourRed,

		Fields: []discord.EmbedField{
			{
				Name:   "Channel",
				Value:  fmt.Sprintf("%v\nID: %v", msg.ChannelID.Mention(), msg.ChannelID),
				Inline: true,
			},
			{
				Name:   "Sender",
				Value:  mention,
				Inline: true,
			},
		},

		Footer: &discord.EmbedFooter{
			Text: fmt.Sprintf("ID: %v", msg.ID),
		},
		Timestamp: discord.NewTimestamp(msg.ID.Time()),
	}

	bot.SendLog(m.GuildID, e)
}

func truncate(s string, limit int) string {
	if s == "" {
		return "*No content*"
	}
	if len(s) <= limit {
		return s
	}

	// cut on a rune boundary so we never emit a half-encoded character
	cut := limit
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
