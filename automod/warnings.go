package automod

import (
	"sync"
	"time"

	"github.com/diamondburned/arikawa/v3/discord"
)

// Warnings tracks warning timestamps per user. In-memory only; warnings are
// lost on restart.
type Warnings struct {
	mu sync.Mutex
	m  map[trackerKey][]time.Time
}

// NewWarnings returns an empty warning store.
func NewWarnings() *Warnings {
	return &Warnings{m: map[trackerKey][]time.Time{}}
}

// Add records a warning and returns the user's new total.
func (w *Warnings) Add(guildID discord.GuildID, userID discord.UserID, now time.Time) int {
	w.mu.Lock()
	defer w.mu.Unlock()

	key := trackerKey{guildID, userID}
	w.m[key] = append(w.m[key], now)
	return len(w.m[key])
}

// Count returns the user's total warning count.
func (w *Warnings) Count(guildID discord.GuildID, userID discord.UserID) int {
	w.mu.Lock()
	defer w.mu.Unlock()

	return len(w.m[trackerKey{guildID, userID}])
}

// Recent returns the number of warnings issued after the cutoff.
func (w *Warnings) Recent(guildID discord.GuildID, userID discord.UserID, cutoff time.Time) (n int) {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, ts := range w.m[trackerKey{guildID, userID}] {
		if ts.After(cutoff) {
			n++
		}
	}
	return n
}

// Clear removes all warnings for a user. Returns false if there were none.
func (w *Warnings) Clear(guildID discord.GuildID, userID discord.UserID) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	key := trackerKey{guildID, userID}
	if len(w.m[key]) == 0 {
		return false
	}
	delete(w.m, key)
	return true
}
