package bot

import (
	"testing"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/stretchr/testify/assert"
)

func TestHasAdminRole(t *testing.T) {
	guildRoles := []discord.Role{
		{ID: 1, Name: "Admin"},
		{ID: 2, Name: "Moderator"},
		{ID: 3, Name: "Member"},
	}
	adminNames := []string{"Admin", "Moderator"}

	tests := []struct {
		name   string
		member *discord.Member
		want   bool
	}{
		{
			name:   "nil member",
			member: nil,
			want:   false,
		},
		{
			name:   "no roles",
			member: &discord.Member{},
			want:   false,
		},
		{
			name:   "non-admin role only",
			member: &discord.Member{RoleIDs: []discord.RoleID{3}},
			want:   false,
		},
		{
			name:   "admin role",
			member: &discord.Member{RoleIDs: []discord.RoleID{1}},
			want:   true,
		},
		{
			name:   "second admin role",
			member: &discord.Member{RoleIDs: []discord.RoleID{3, 2}},
			want:   true,
		},
		{
			name:   "role ID not in guild list",
			member: &discord.Member{RoleIDs: []discord.RoleID{99}},
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasAdminRole(tt.member, guildRoles, adminNames))
		})
	}
}

func TestHasAdminRoleIsCaseSensitive(t *testing.T) {
	guildRoles := []discord.Role{{ID: 1, Name: "admin"}}
	m := &discord.Member{RoleIDs: []discord.RoleID{1}}

	assert.False(t, HasAdminRole(m, guildRoles, []string{"Admin"}))
	assert.True(t, HasAdminRole(m, guildRoles, []string{"admin"}))
}
