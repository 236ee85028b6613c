package automod

import (
	"strings"
	"sync"
	"time"

	"github.com/diamondburned/arikawa/v3/discord"
)

// content longer than this is truncated before repeat comparison
const maxTrackedContent = 100

type trackerKey struct {
	GuildID discord.GuildID
	UserID  discord.UserID
}

type trackerEntry struct {
	times   []time.Time
	repeats map[string]int
}

// Tracker counts messages per user in a sliding window, plus repeated
// identical content, for spam detection.
type Tracker struct {
	mu      sync.Mutex
	window  time.Duration
	entries map[trackerKey]*trackerEntry
}

// NewTracker returns a tracker with the given sliding window.
func NewTracker(window time.Duration) *Tracker {
	return &Tracker{
		window:  window,
		entries: map[trackerKey]*trackerEntry{},
	}
}

// Observe records a message and returns how many messages the user sent
// within the window, and how many times this exact content was repeated.
func (t *Tracker) Observe(guildID discord.GuildID, userID discord.UserID, content string, now time.Time) (rate, repeats int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	key := trackerKey{guildID, userID}
	e := t.entries[key]
	if e == nil {
		e = &trackerEntry{repeats: map[string]int{}}
		t.entries[key] = e
	}

	// drop timestamps outside the window
	cutoff := now.Add(-t.window)
	kept := e.times[:0]
	for _, ts := range e.times {
		if ts.After(cutoff) {
			kept = append(kept, ts)
		}
	}
	e.times = append(kept, now)

	norm := normalizeContent(content)
	if norm != "" {
		e.repeats[norm]++
		repeats = e.repeats[norm]
	}

	return len(e.times), repeats
}

// Reset clears tracking state for a user, after action has been taken.
func (t *Tracker) Reset(guildID discord.GuildID, userID discord.UserID) {
	t.mu.Lock()
	defer t.mu.Unlock()

	delete(t.entries, trackerKey{guildID, userID})
}

func normalizeContent(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) > maxTrackedContent {
		s = s[:maxTrackedContent]
	}
	return s
}
