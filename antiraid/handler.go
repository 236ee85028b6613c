package antiraid

import (
	"fmt"
	"time"

	"github.com/diamondburned/arikawa/v3/api"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/gateway"
	"github.com/starshine-sys/bcr"
	"github.com/starshine-sys/vigil/common"
)

func (bot *Bot) guildMemberAdd(m *gateway.GuildMemberAddEvent) {
	cfg := bot.Config.Features.Antiraid
	now := time.Now().UTC()

	minAge := time.Duration(cfg.MinAccountAgeDays) * 24 * time.Hour
	suspicious, reason := suspiciousAccount(m.User, minAge, now)

	joins := bot.tracker.RecordJoin(m.GuildID, m.User.ID, suspicious, now)

	if bot.tracker.LockedDown(m.GuildID, now) {
		err := bot.State(m.GuildID).Kick(m.GuildID, m.User.ID, api.AuditLogReason("Antiraid: server is in lockdown"))
		if err != nil {
			common.Log.Errorf("Error kicking %v during lockdown: %v", m.User.ID, err)
			return
		}

		e := discord.Embed{
			Title:       "🔒 Lockdown: member rejected",
			Description: fmt.Sprintf("%v#%v was kicked because the server is in lockdown.", m.User.Username, m.User.Discriminator),
			Color:       common.ColourOrange,

			Footer: &discord.EmbedFooter{
				Text: fmt.Sprintf("ID: %v", m.User.ID),
			},
			Timestamp: discord.NowTimestamp(),
		}
		if suspicious {
			e.Fields = append(e.Fields, discord.EmbedField{Name: "Flags", Value: reason})
		}

		bot.SendLog(m.GuildID, e)
		return
	}

	if suspicious {
		bot.SendLog(m.GuildID, discord.Embed{
			Title: "⚠️ Suspicious account joined",
			Color: common.ColourGold,

			Fields: []discord.EmbedField{
				{
					Name:   "User",
					Value:  fmt.Sprintf("%v#%v (%v)", m.User.Username, m.User.Discriminator, m.Mention()),
					Inline: true,
				},
				{
					Name:   "Account created",
					Value:  bcr.HumanizeTime(bcr.DurationPrecisionMinutes, m.User.ID.Time()),
					Inline: true,
				},
				{
					Name:  "Flags",
					Value: reason,
				},
			},

			Footer: &discord.EmbedFooter{
				Text: fmt.Sprintf("ID: %v", m.User.ID),
			},
			Timestamp: discord.NowTimestamp(),
		})
	}

	if joins >= cfg.JoinThreshold {
		bot.handleRaid(m.GuildID, joins)
	}
}

// handleRaid enables a timed lockdown and posts an alert. At most one alert
// per guild per cooldown period.
func (bot *Bot) handleRaid(guildID discord.GuildID, joins int) {
	if _, err := bot.alerted.Get(guildID.String()); err == nil {
		return
	}
	bot.alerted.Set(guildID.String(), struct{}{})

	cfg := bot.Config.Features.Antiraid
	d := time.Duration(cfg.LockdownMinutes) * time.Minute
	bot.tracker.SetLockdown(guildID, true, d, time.Now().UTC())

	suspicious := bot.tracker.Suspicious(guildID)

	common.Log.Warnf("Raid detected in guild %v: %v joins in %vs", guildID, joins, cfg.WindowSeconds)

	bot.SendLog(guildID, discord.Embed{
		Title:       "🚨 Raid detected",
		Description: fmt.Sprintf("**%v accounts** joined in the last %v seconds.\nThe server has been locked down for %v minutes: new members will be kicked.", joins, cfg.WindowSeconds, cfg.LockdownMinutes),
		Color:       bcr.ColourRed,

		Fields: []discord.EmbedField{
			{
				Name:  "Suspicious accounts flagged",
				Value: fmt.Sprint(len(suspicious)),
			},
			{
				Name:  "Manual commands",
				Value: "`lockdown off` ends the lockdown early\n`raidstatus` shows the current status",
			},
		},

		Timestamp: discord.NowTimestamp(),
	})
}
