package tickets

import (
	"testing"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChannelName(t *testing.T) {
	tests := []struct {
		name     string
		username string
		id       discord.UserID
		want     string
	}{
		{
			name:     "plain name",
			username: "alice",
			id:       123,
			want:     "ticket-alice-123",
		},
		{
			name:     "uppercase folded",
			username: "Alice",
			id:       123,
			want:     "ticket-alice-123",
		},
		{
			name:     "spaces become hyphens",
			username: "Mr Big Cat",
			id:       456,
			want:     "ticket-mr-big-cat-456",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ChannelName(tt.username, tt.id))
		})
	}
}

func TestIsTicketOwner(t *testing.T) {
	name := ChannelName("alice", 123)

	assert.True(t, IsTicketOwner(name, 123))
	assert.False(t, IsTicketOwner(name, 456))
	// a user ID that is a suffix of another must not match
	assert.False(t, IsTicketOwner(ChannelName("bob", 1123), 123))
}

func TestOverwrites(t *testing.T) {
	var (
		everyone = discord.RoleID(1)
		user     = discord.UserID(2)
		botUser  = discord.UserID(3)
		support  = discord.RoleID(4)
		admin    = discord.RoleID(5)
	)

	byID := func(ow []discord.Overwrite, id discord.Snowflake) *discord.Overwrite {
		for i := range ow {
			if ow[i].ID == id {
				return &ow[i]
			}
		}
		return nil
	}

	t.Run("full set", func(t *testing.T) {
		ow := Overwrites(everyone, user, botUser, &support, []discord.RoleID{admin})
		require.Len(t, ow, 5)

		ev := byID(ow, discord.Snowflake(everyone))
		require.NotNil(t, ev)
		assert.Equal(t, discord.OverwriteRole, ev.Type)
		assert.True(t, ev.Deny.Has(discord.PermissionViewChannel))
		assert.False(t, ev.Allow.Has(discord.PermissionViewChannel))

		u := byID(ow, discord.Snowflake(user))
		require.NotNil(t, u)
		assert.Equal(t, discord.OverwriteMember, u.Type)
		assert.True(t, u.Allow.Has(discord.PermissionViewChannel))
		assert.True(t, u.Allow.Has(discord.PermissionSendMessages))
		assert.False(t, u.Allow.Has(discord.PermissionManageChannels))

		sup := byID(ow, discord.Snowflake(support))
		require.NotNil(t, sup)
		assert.Equal(t, discord.OverwriteRole, sup.Type)
		assert.True(t, sup.Allow.Has(discord.PermissionViewChannel))

		adm := byID(ow, discord.Snowflake(admin))
		require.NotNil(t, adm)
		assert.True(t, adm.Allow.Has(discord.PermissionManageChannels))
		assert.True(t, adm.Allow.Has(discord.PermissionManageMessages))
	})

	t.Run("no support role", func(t *testing.T) {
		ow := Overwrites(everyone, user, botUser, nil, nil)
		require.Len(t, ow, 3)
		assert.Nil(t, byID(ow, discord.Snowflake(support)))
	})
}
