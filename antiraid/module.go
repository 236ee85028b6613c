// Package antiraid detects mass-join raids and puts the server in lockdown.
package antiraid

import (
	"fmt"
	"strings"
	"time"

	"github.com/ReneKroon/ttlcache/v2"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/starshine-sys/bcr"
	vbot "github.com/starshine-sys/vigil/bot"
)

// don't re-alert for the same guild within this long of a raid alert
const raidAlertCooldown = time.Minute

// usernames containing these are flagged as suspicious
var suspiciousNames = []string{"raid", "nuke", "destroy", "spam"}

// Bot ...
type Bot struct {
	*vbot.Bot

	tracker *RaidTracker

	// guilds with a recent raid alert, to avoid spamming the log channel
	alerted *ttlcache.Cache
}

// Init ...
func Init(b *vbot.Bot) (err error) {
	ab := &Bot{
		Bot:     b,
		tracker: NewRaidTracker(time.Duration(b.Config.Features.Antiraid.WindowSeconds) * time.Second),
		alerted: ttlcache.NewCache(),
	}
	ab.alerted.SetTTL(raidAlertCooldown)

	b.AddHandler(ab.guildMemberAdd)

	b.Router.AddCommand(&bcr.Command{
		Name:      "lockdown",
		Summary:   "Toggle lockdown mode. New members are kicked while it's active.",
		Usage:     "[on|off|<minutes>]",
		GuildOnly: true,

		Command: ab.lockdown,
	})

	b.Router.AddCommand(&bcr.Command{
		Name:      "raidstatus",
		Summary:   "Show the current raid detection status.",
		GuildOnly: true,

		Command: ab.raidStatus,
	})

	return nil
}

// suspiciousAccount checks an account against the raid heuristics: account
// age below the configured minimum, no avatar, or a known-bad username.
func suspiciousAccount(u discord.User, minAge time.Duration, now time.Time) (bool, string) {
	var reasons []string

	age := now.Sub(u.ID.Time())
	if age < minAge {
		reasons = append(reasons, fmt.Sprintf("Account less than %v days old", int(minAge.Hours()/24)))
	}

	if u.Avatar == "" {
		reasons = append(reasons, "No profile picture")
	}

	name := strings.ToLower(u.Username)
	for _, p := range suspiciousNames {
		if strings.Contains(name, p) {
			reasons = append(reasons, "Suspicious username")
			break
		}
	}

	return len(reasons) > 0, strings.Join(reasons, ", ")
}
