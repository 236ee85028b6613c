package automod

import (
	"fmt"
	"time"

	"github.com/diamondburned/arikawa/v3/api"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/gateway"
	"github.com/starshine-sys/bcr"
	vbot "github.com/starshine-sys/vigil/bot"
	"github.com/starshine-sys/vigil/common"
)

func (bot *Bot) messageCreate(m *gateway.MessageCreateEvent) {
	if !m.GuildID.IsValid() || m.Author.Bot {
		return
	}

	if bot.exempt(m.GuildID, m.Member) {
		return
	}

	cfg := bot.Config.Features.Automod
	rate, repeats := bot.tracker.Observe(m.GuildID, m.Author.ID, m.Content, time.Now().UTC())

	switch {
	case rate >= cfg.MessageRate:
		bot.handleSpam(m, fmt.Sprintf("Message spam (%v messages in %vs)", rate, cfg.WindowSeconds))
	case repeats >= cfg.RepeatLimit:
		bot.handleSpam(m, fmt.Sprintf("Repeated message spam (%v identical messages)", repeats))
	}
}

// exempt reports whether a member is exempt from automod: bots (checked by
// the caller) and anyone holding an admin role.
func (bot *Bot) exempt(guildID discord.GuildID, m *discord.Member) bool {
	if m == nil {
		return false
	}
	admin, err := bot.MemberIsAdmin(guildID, m)
	if err != nil {
		common.Log.Errorf("checking roles for %v: %v", m.User.ID, err)
		return false
	}
	return admin
}

// handleSpam deletes the offending message, records a warning, and mutes the
// user once they pass the warning threshold.
func (bot *Bot) handleSpam(m *gateway.MessageCreateEvent, reason string) {
	key := trackerKey{m.GuildID, m.Author.ID}
	if !bot.tryLock(key) {
		return
	}
	defer bot.unlock(key)

	s := bot.State(m.GuildID)

	err := s.DeleteMessage(m.ChannelID, m.ID, api.AuditLogReason("Automod: "+reason))
	if err != nil {
		common.Log.Errorf("Error deleting spam message %v: %v", m.ID, err)
	}

	count := bot.warnings.Add(m.GuildID, m.Author.ID, time.Now().UTC())
	bot.tracker.Reset(m.GuildID, m.Author.ID)

	action := fmt.Sprintf("⚠️ Warned (warning #%v)", count)
	colour := common.ColourOrange

	if count >= bot.Config.Features.Automod.MuteThreshold {
		role, err := bot.EnsureMuteRole(m.GuildID)
		if err != nil {
			common.Log.Errorf("Error getting mute role: %v", err)
			action = fmt.Sprintf("⚠️ Warned (warning #%v), mute failed", count)
		} else {
			err = s.AddRole(m.GuildID, m.Author.ID, role.ID, api.AddRoleData{
				AuditLogReason: api.AuditLogReason("Automod: " + reason),
			})
			if err != nil {
				common.Log.Errorf("Error muting %v: %v", m.Author.ID, err)
				action = fmt.Sprintf("⚠️ Warned (warning #%v), mute failed", count)
			} else {
				action = fmt.Sprintf("🔇 Muted (warning #%v)", count)
				colour = bcr.ColourRed
			}
		}
	}

	common.Log.Infof("Automod action in guild %v: %v for %v (%v)", m.GuildID, action, m.Author.ID, reason)

	_, err = s.SendEmbeds(m.ChannelID, discord.Embed{
		Title:       "🛡️ Automod",
		Description: fmt.Sprintf("%v, slow down!", m.Author.Mention()),
		Color:       colour,

		Fields: []discord.EmbedField{
			{Name: "Reason", Value: reason, Inline: true},
			{Name: "Action", Value: action, Inline: true},
		},

		Footer: &discord.EmbedFooter{
			Text: fmt.Sprintf("ID: %v", m.Author.ID),
		},
		Timestamp: discord.NowTimestamp(),
	})
	if err != nil {
		bot.Report(vbot.ErrorContext{
			Event:   "automod action",
			GuildID: m.GuildID,
			UserID:  m.Author.ID,
		}, err)
	}
}
