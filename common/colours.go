package common

import "github.com/diamondburned/arikawa/v3/discord"

// Embed colours not covered by bcr's built-ins.
const (
	ColourGold   discord.Color = 0xF1C40F
	ColourOrange discord.Color = 0xE67E22
	ColourBlue   discord.Color = 0x3498DB
	ColourGrey   discord.Color = 0x607D8B
)
