package bot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestReadConfig(t *testing.T) {
	path := writeConfig(t, `{
		"bot": {"token": "abc123", "prefix": "?"},
		"admin_roles": ["Staff"],
		"features": {
			"fun": {"enabled": false},
			"tickets": {"category_name": "Help Desk"}
		},
		"unknown_key": 42
	}`)

	c, err := ReadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "abc123", c.Bot.Token)
	assert.Equal(t, "?", c.Bot.Prefix)
	assert.Equal(t, []string{"Staff"}, c.AdminRoles)
	assert.Equal(t, "Help Desk", c.Features.Tickets.CategoryName)

	// defaults fill in what the file leaves out
	assert.Equal(t, "Muted", c.Features.Moderation.MuteRoleName)
	assert.Equal(t, "Support", c.Features.Tickets.SupportRole)
	assert.Equal(t, "bot-logs", c.Features.Logs.LogChannelName)
	assert.Equal(t, 5, c.Features.Automod.MessageRate)
	assert.Equal(t, 5, c.Features.Antiraid.JoinThreshold)
}

func TestReadConfigDefaults(t *testing.T) {
	path := writeConfig(t, `{"bot": {"token": "abc123"}}`)

	c, err := ReadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "!", c.Bot.Prefix)
	assert.Equal(t, []string{"Admin", "Moderator"}, c.AdminRoles)
}

func TestReadConfigEnvOverrides(t *testing.T) {
	t.Setenv("DISCORD_BOT_TOKEN", "env-token")
	t.Setenv("DISCORD_BOT_PREFIX", ";")

	path := writeConfig(t, `{"bot": {"token": "file-token", "prefix": "!"}}`)

	c, err := ReadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "env-token", c.Bot.Token)
	assert.Equal(t, ";", c.Bot.Prefix)
}

func TestReadConfigErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := ReadConfig(filepath.Join(t.TempDir(), "nope.json"))
		require.Error(t, err)
	})

	t.Run("invalid json", func(t *testing.T) {
		_, err := ReadConfig(writeConfig(t, `{"bot":`))
		require.Error(t, err)
	})

	t.Run("no token", func(t *testing.T) {
		_, err := ReadConfig(writeConfig(t, `{"bot": {"prefix": "!"}}`))
		require.Error(t, err)
	})
}

func TestFeatureEnabled(t *testing.T) {
	boolPtr := func(b bool) *bool { return &b }

	var c Config
	// no enabled keys set: everything defaults to on
	for _, name := range []string{"moderation", "tickets", "logs", "fun", "automod", "antiraid", "setup"} {
		assert.True(t, c.FeatureEnabled(name), name)
	}

	c.Features.Fun.Enabled = boolPtr(false)
	c.Features.Tickets.Enabled = boolPtr(true)

	assert.False(t, c.FeatureEnabled("fun"))
	assert.True(t, c.FeatureEnabled("tickets"))
	assert.False(t, c.FeatureEnabled("no-such-module"))
}
