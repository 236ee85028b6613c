package bot

import (
	"github.com/starshine-sys/vigil/antiraid"
	"github.com/starshine-sys/vigil/automod"
	"github.com/starshine-sys/vigil/bot"
	"github.com/starshine-sys/vigil/commands/fun"
	"github.com/starshine-sys/vigil/commands/moderation"
	"github.com/starshine-sys/vigil/commands/setup"
	"github.com/starshine-sys/vigil/commands/tickets"
	"github.com/starshine-sys/vigil/events"
)

type module struct {
	name  string
	setup func(*bot.Bot) error
}

// modules is the feature registry. Each entry maps a feature name from the
// configuration to its registration entry point; disabled features are never
// registered, so their commands stay unknown to the router. Registration is
// one-shot at startup and order between modules doesn't matter.
var modules = []module{
	{"moderation", moderation.Init},
	{"tickets", tickets.Init},
	{"logs", events.Init},
	{"fun", fun.Init},
	{"automod", automod.Init},
	{"antiraid", antiraid.Init},
	{"setup", setup.Init},
}
