package bot

import (
	"encoding/json"
	"os"

	"emperror.dev/errors"
)

// DefaultConfigPath is where the config file lives unless overridden on the
// command line.
const DefaultConfigPath = "data/config.json"

type Config struct {
	Bot        BotConfig `json:"bot"`
	AdminRoles []string  `json:"admin_roles"`
	Features   Features  `json:"features"`
}

type BotConfig struct {
	Token       string `json:"token"`
	Prefix      string `json:"prefix"`
	Description string `json:"description"`
}

type Features struct {
	Moderation ModerationConfig `json:"moderation"`
	Tickets    TicketsConfig    `json:"tickets"`
	Logs       LogsConfig       `json:"logs"`
	Fun        FunConfig        `json:"fun"`
	Automod    AutomodConfig    `json:"automod"`
	Antiraid   AntiraidConfig   `json:"antiraid"`
	Setup      SetupConfig      `json:"setup"`
}

// Feature flags default to enabled when the key is absent, so all of these
// use a pointer to tell "false" apart from "not set".
type ModerationConfig struct {
	Enabled      *bool  `json:"enabled"`
	MuteRoleName string `json:"mute_role_name"`
}

type TicketsConfig struct {
	Enabled      *bool  `json:"enabled"`
	CategoryName string `json:"category_name"`
	SupportRole  string `json:"support_role"`
}

type LogsConfig struct {
	Enabled        *bool  `json:"enabled"`
	LogChannelName string `json:"log_channel_name"`
}

type FunConfig struct {
	Enabled *bool `json:"enabled"`
}

type AutomodConfig struct {
	Enabled       *bool `json:"enabled"`
	MessageRate   int   `json:"message_rate"`
	RepeatLimit   int   `json:"repeat_limit"`
	WindowSeconds int   `json:"window_seconds"`
	MuteThreshold int   `json:"mute_threshold"`
}

type SetupConfig struct {
	Enabled *bool `json:"enabled"`
}

type AntiraidConfig struct {
	Enabled           *bool `json:"enabled"`
	JoinThreshold     int   `json:"join_threshold"`
	WindowSeconds     int   `json:"window_seconds"`
	MinAccountAgeDays int   `json:"min_account_age_days"`
	LockdownMinutes   int   `json:"lockdown_minutes"`
}

// FeatureEnabled reports whether the named feature is enabled.
// A missing `enabled` key counts as enabled; unknown names are disabled.
func (c Config) FeatureEnabled(name string) bool {
	switch name {
	case "moderation":
		return enabled(c.Features.Moderation.Enabled)
	case "tickets":
		return enabled(c.Features.Tickets.Enabled)
	case "logs":
		return enabled(c.Features.Logs.Enabled)
	case "fun":
		return enabled(c.Features.Fun.Enabled)
	case "automod":
		return enabled(c.Features.Automod.Enabled)
	case "antiraid":
		return enabled(c.Features.Antiraid.Enabled)
	case "setup":
		return enabled(c.Features.Setup.Enabled)
	}
	return false
}

func enabled(b *bool) bool {
	return b == nil || *b
}

// ReadConfig reads the configuration file at path and applies environment
// overrides. A missing file, unparseable file, or missing token is an error:
// the bot cannot run without them.
func ReadConfig(path string) (c Config, err error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return c, errors.Wrap(err, "read config file")
	}

	// unknown keys are ignored, missing keys fall back to defaults below
	err = json.Unmarshal(b, &c)
	if err != nil {
		return c, errors.Wrap(err, "unmarshal config")
	}

	c.applyEnv()
	c.applyDefaults()

	if c.Bot.Token == "" {
		return c, errors.New("no bot token in config file or DISCORD_BOT_TOKEN")
	}
	return c, nil
}

// applyEnv overrides file values from the environment.
func (c *Config) applyEnv() {
	if t := os.Getenv("DISCORD_BOT_TOKEN"); t != "" {
		c.Bot.Token = t
	}
	if p := os.Getenv("DISCORD_BOT_PREFIX"); p != "" {
		c.Bot.Prefix = p
	}
}

func (c *Config) applyDefaults() {
	if c.Bot.Prefix == "" {
		c.Bot.Prefix = "!"
	}
	if c.Bot.Description == "" {
		c.Bot.Description = "A modular Discord bot"
	}
	if len(c.AdminRoles) == 0 {
		c.AdminRoles = []string{"Admin", "Moderator"}
	}

	if c.Features.Moderation.MuteRoleName == "" {
		c.Features.Moderation.MuteRoleName = "Muted"
	}
	if c.Features.Tickets.CategoryName == "" {
		c.Features.Tickets.CategoryName = "Support Tickets"
	}
	if c.Features.Tickets.SupportRole == "" {
		c.Features.Tickets.SupportRole = "Support"
	}
	if c.Features.Logs.LogChannelName == "" {
		c.Features.Logs.LogChannelName = "bot-logs"
	}

	if c.Features.Automod.MessageRate == 0 {
		c.Features.Automod.MessageRate = 5
	}
	if c.Features.Automod.RepeatLimit == 0 {
		c.Features.Automod.RepeatLimit = 3
	}
	if c.Features.Automod.WindowSeconds == 0 {
		c.Features.Automod.WindowSeconds = 5
	}
	if c.Features.Automod.MuteThreshold == 0 {
		c.Features.Automod.MuteThreshold = 3
	}

	if c.Features.Antiraid.JoinThreshold == 0 {
		c.Features.Antiraid.JoinThreshold = 5
	}
	if c.Features.Antiraid.WindowSeconds == 0 {
		c.Features.Antiraid.WindowSeconds = 60
	}
	if c.Features.Antiraid.MinAccountAgeDays == 0 {
		c.Features.Antiraid.MinAccountAgeDays = 7
	}
	if c.Features.Antiraid.LockdownMinutes == 0 {
		c.Features.Antiraid.LockdownMinutes = 10
	}
}
