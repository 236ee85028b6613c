package antiraid

import (
	"testing"
	"time"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/stretchr/testify/assert"
)

func TestRecordJoin(t *testing.T) {
	tr := NewRaidTracker(time.Minute)
	now := time.Now().UTC()

	for i := 0; i < 3; i++ {
		joins := tr.RecordJoin(1, discord.UserID(i+10), false, now.Add(time.Duration(i)*time.Second))
		assert.Equal(t, i+1, joins)
	}

	// joins older than the window fall out
	joins := tr.RecordJoin(1, 20, false, now.Add(2*time.Minute))
	assert.Equal(t, 1, joins)

	// guilds are independent
	assert.Equal(t, 1, tr.RecordJoin(2, 20, false, now))
}

func TestSuspiciousJoins(t *testing.T) {
	tr := NewRaidTracker(time.Minute)
	now := time.Now().UTC()

	tr.RecordJoin(1, 10, true, now)
	tr.RecordJoin(1, 11, false, now)
	tr.RecordJoin(1, 12, true, now)

	assert.Equal(t, []discord.UserID{10, 12}, tr.Suspicious(1))

	tr.ClearSuspicious(1)
	assert.Empty(t, tr.Suspicious(1))
}

func TestLockdown(t *testing.T) {
	tr := NewRaidTracker(time.Minute)
	now := time.Now().UTC()

	assert.False(t, tr.LockedDown(1, now))

	tr.SetLockdown(1, true, 10*time.Minute, now)
	assert.True(t, tr.LockedDown(1, now))
	assert.True(t, tr.LockedDown(1, now.Add(9*time.Minute)))

	// timed lockdown expires on its own
	assert.False(t, tr.LockedDown(1, now.Add(11*time.Minute)))

	// indefinite lockdown doesn't
	tr.SetLockdown(1, true, 0, now)
	assert.True(t, tr.LockedDown(1, now.Add(24*time.Hour)))

	tr.SetLockdown(1, false, 0, now)
	assert.False(t, tr.LockedDown(1, now))
}

func TestLockdownEnd(t *testing.T) {
	tr := NewRaidTracker(time.Minute)
	now := time.Now().UTC()

	_, ok := tr.LockdownEnd(1)
	assert.False(t, ok)

	tr.SetLockdown(1, true, 10*time.Minute, now)
	until, ok := tr.LockdownEnd(1)
	assert.True(t, ok)
	assert.Equal(t, now.Add(10*time.Minute), until)
}

func TestSuspiciousAccount(t *testing.T) {
	now := time.Now().UTC()
	minAge := 7 * 24 * time.Hour

	// Snowflake IDs encode the creation time, so build them from timestamps.
	oldID := discord.NewSnowflake(now.Add(-30 * 24 * time.Hour))
	newID := discord.NewSnowflake(now.Add(-time.Hour))

	tests := []struct {
		name string
		user discord.User
		want bool
	}{
		{
			name: "established account",
			user: discord.User{ID: discord.UserID(oldID), Username: "alice", Avatar: "abc"},
			want: false,
		},
		{
			name: "brand new account",
			user: discord.User{ID: discord.UserID(newID), Username: "alice", Avatar: "abc"},
			want: true,
		},
		{
			name: "no avatar",
			user: discord.User{ID: discord.UserID(oldID), Username: "alice"},
			want: true,
		},
		{
			name: "bad username",
			user: discord.User{ID: discord.UserID(oldID), Username: "RaidMaster", Avatar: "abc"},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, reason := suspiciousAccount(tt.user, minAge, now)
			assert.Equal(t, tt.want, got)
			if tt.want {
				assert.NotEmpty(t, reason)
			} else {
				assert.Empty(t, reason)
			}
		})
	}
}
