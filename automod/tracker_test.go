package automod

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTrackerRate(t *testing.T) {
	tr := NewTracker(5 * time.Second)
	now := time.Now().UTC()

	for i := 0; i < 4; i++ {
		rate, _ := tr.Observe(1, 2, "hello", now.Add(time.Duration(i)*time.Second))
		assert.Equal(t, i+1, rate)
	}

	// a message outside the window drops the oldest entries
	rate, _ := tr.Observe(1, 2, "hello", now.Add(10*time.Second))
	assert.Equal(t, 1, rate)
}

func TestTrackerRepeats(t *testing.T) {
	tr := NewTracker(5 * time.Second)
	now := time.Now().UTC()

	_, repeats := tr.Observe(1, 2, "spam spam", now)
	assert.Equal(t, 1, repeats)

	// case and surrounding whitespace don't matter
	_, repeats = tr.Observe(1, 2, "  SPAM SPAM ", now)
	assert.Equal(t, 2, repeats)

	_, repeats = tr.Observe(1, 2, "something else", now)
	assert.Equal(t, 1, repeats)

	// empty content never counts as a repeat
	_, repeats = tr.Observe(1, 2, "", now)
	assert.Equal(t, 0, repeats)
}

func TestTrackerScoping(t *testing.T) {
	tr := NewTracker(5 * time.Second)
	now := time.Now().UTC()

	tr.Observe(1, 2, "hi", now)
	rate, repeats := tr.Observe(1, 3, "hi", now)
	assert.Equal(t, 1, rate)
	assert.Equal(t, 1, repeats)

	rate, _ = tr.Observe(9, 2, "hi", now)
	assert.Equal(t, 1, rate)
}

func TestTrackerReset(t *testing.T) {
	tr := NewTracker(5 * time.Second)
	now := time.Now().UTC()

	tr.Observe(1, 2, "hi", now)
	tr.Observe(1, 2, "hi", now)
	tr.Reset(1, 2)

	rate, repeats := tr.Observe(1, 2, "hi", now)
	assert.Equal(t, 1, rate)
	assert.Equal(t, 1, repeats)
}

func TestWarnings(t *testing.T) {
	w := NewWarnings()
	now := time.Now().UTC()

	assert.Equal(t, 0, w.Count(1, 2))

	assert.Equal(t, 1, w.Add(1, 2, now.Add(-48*time.Hour)))
	assert.Equal(t, 2, w.Add(1, 2, now))
	assert.Equal(t, 2, w.Count(1, 2))

	// only the second warning is within the last day
	assert.Equal(t, 1, w.Recent(1, 2, now.Add(-24*time.Hour)))

	// other users and guilds are unaffected
	assert.Equal(t, 0, w.Count(1, 3))
	assert.Equal(t, 0, w.Count(9, 2))

	assert.True(t, w.Clear(1, 2))
	assert.Equal(t, 0, w.Count(1, 2))
	assert.False(t, w.Clear(1, 2))
}
