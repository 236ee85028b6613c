package antiraid

import (
	"sync"
	"time"

	"github.com/diamondburned/arikawa/v3/discord"
)

// RaidTracker tracks join timestamps per guild, flags suspicious accounts,
// and holds the lockdown state.
type RaidTracker struct {
	mu     sync.Mutex
	window time.Duration

	joins      map[discord.GuildID][]time.Time
	suspicious map[discord.GuildID][]discord.UserID

	lockedDown    map[discord.GuildID]bool
	lockdownUntil map[discord.GuildID]time.Time
}

// NewRaidTracker returns a tracker with the given join-counting window.
func NewRaidTracker(window time.Duration) *RaidTracker {
	return &RaidTracker{
		window:        window,
		joins:         map[discord.GuildID][]time.Time{},
		suspicious:    map[discord.GuildID][]discord.UserID{},
		lockedDown:    map[discord.GuildID]bool{},
		lockdownUntil: map[discord.GuildID]time.Time{},
	}
}

// RecordJoin records a join and returns the number of joins in the window.
func (t *RaidTracker) RecordJoin(guildID discord.GuildID, userID discord.UserID, suspicious bool, now time.Time) int {
	t.mu.Lock()
	defer t.mu.Unlock()

	cutoff := now.Add(-t.window)
	kept := t.joins[guildID][:0]
	for _, ts := range t.joins[guildID] {
		if ts.After(cutoff) {
			kept = append(kept, ts)
		}
	}
	t.joins[guildID] = append(kept, now)

	if suspicious {
		t.suspicious[guildID] = append(t.suspicious[guildID], userID)
	}

	return len(t.joins[guildID])
}

// Suspicious returns the user IDs flagged as suspicious for a guild.
func (t *RaidTracker) Suspicious(guildID discord.GuildID) []discord.UserID {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]discord.UserID, len(t.suspicious[guildID]))
	copy(out, t.suspicious[guildID])
	return out
}

// ClearSuspicious resets the suspicious list for a guild.
func (t *RaidTracker) ClearSuspicious(guildID discord.GuildID) {
	t.mu.Lock()
	defer t.mu.Unlock()

	delete(t.suspicious, guildID)
}

// LockedDown reports whether the guild is in lockdown. An expired timed
// lockdown is cleared here.
func (t *RaidTracker) LockedDown(guildID discord.GuildID, now time.Time) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.lockedDown[guildID] {
		return false
	}
	if until, ok := t.lockdownUntil[guildID]; ok && now.After(until) {
		delete(t.lockedDown, guildID)
		delete(t.lockdownUntil, guildID)
		return false
	}
	return true
}

// SetLockdown sets the lockdown state. A zero duration means indefinite.
func (t *RaidTracker) SetLockdown(guildID discord.GuildID, enabled bool, d time.Duration, now time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !enabled {
		delete(t.lockedDown, guildID)
		delete(t.lockdownUntil, guildID)
		return
	}

	t.lockedDown[guildID] = true
	if d > 0 {
		t.lockdownUntil[guildID] = now.Add(d)
	} else {
		delete(t.lockdownUntil, guildID)
	}
}

// LockdownEnd returns when a timed lockdown expires, if one is set.
func (t *RaidTracker) LockdownEnd(guildID discord.GuildID) (time.Time, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	until, ok := t.lockdownUntil[guildID]
	return until, ok
}
