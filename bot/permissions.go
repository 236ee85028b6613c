package bot

import (
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/starshine-sys/bcr"
	"github.com/starshine-sys/vigil/common"
)

// HasAdminRole reports whether the member holds any of the configured admin
// role names. guildRoles is the guild's full role list.
func HasAdminRole(m *discord.Member, guildRoles []discord.Role, adminNames []string) bool {
	if m == nil {
		return false
	}

	for _, r := range guildRoles {
		if !common.Contains(m.RoleIDs, r.ID) {
			continue
		}
		if common.Contains(adminNames, r.Name) {
			return true
		}
	}
	return false
}

// MemberIsAdmin reports whether the member holds a configured admin role.
func (bot *Bot) MemberIsAdmin(guildID discord.GuildID, m *discord.Member) (bool, error) {
	roles, err := bot.State(guildID).Roles(guildID)
	if err != nil {
		return false, err
	}
	return HasAdminRole(m, roles, bot.Config.AdminRoles), nil
}

// CheckAdmin checks the invoking member against the configured admin roles.
// If the check fails, a rejection is sent as a reply and false is returned;
// the caller should return immediately without acting.
func (bot *Bot) CheckAdmin(ctx *bcr.Context) bool {
	admin, err := bot.MemberIsAdmin(ctx.Message.GuildID, ctx.Member)
	if err != nil {
		common.Log.Errorf("checking roles for %v: %v", ctx.Author.ID, err)
		_, _ = ctx.Send("Internal error occurred while checking your roles.")
		return false
	}

	if !admin {
		_, _ = ctx.Send("❌ You don't have permission to use this command!")
		return false
	}
	return true
}
