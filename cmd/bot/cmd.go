package bot

import (
	"os"
	"os/signal"
	"strings"

	"emperror.dev/errors"
	"github.com/diamondburned/arikawa/v3/gateway"
	"github.com/getsentry/sentry-go"
	"github.com/starshine-sys/vigil/bot"
	"github.com/starshine-sys/vigil/commands/meta"
	"github.com/starshine-sys/vigil/common"
	"github.com/starshine-sys/vigil/stats"
	"github.com/starshine-sys/vigil/web/server"
	"github.com/urfave/cli/v2"
)

var Command = &cli.Command{
	Name:   "bot",
	Usage:  "Run the bot",
	Action: run,

	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Value:   bot.DefaultConfigPath,
			Usage:   "Path to the configuration file",
		},
	},
}

func run(c *cli.Context) error {
	conf, err := bot.ReadConfig(c.String("config"))
	if err != nil {
		return errors.Wrap(err, "reading config")
	}

	// set up sentry, if a DSN is given
	var hub *sentry.Hub
	if dsn := os.Getenv("SENTRY_URL"); dsn != "" {
		err = sentry.Init(sentry.ClientOptions{
			Dsn:     dsn,
			Release: common.Version(),
		})
		if err != nil {
			return errors.Wrap(err, "initialising sentry")
		}
		hub = sentry.CurrentHub()
	}

	b, err := bot.New(conf)
	if err != nil {
		return errors.Wrap(err, "creating bot")
	}
	b.Hub = hub

	// metrics, if InfluxDB auth is given
	if url := os.Getenv("INFLUX_URL"); url != "" {
		b.Stats = stats.New(url, os.Getenv("INFLUX_TOKEN"), os.Getenv("INFLUX_ORG"), os.Getenv("INFLUX_DB"))
		b.AddHandler(b.Stats.EventHandler)
		b.AddHandler(func(m *gateway.MessageCreateEvent) {
			if strings.HasPrefix(m.Content, conf.Bot.Prefix) {
				b.Stats.IncCommand()
			}
		})
	}

	// meta commands are always available
	if err := meta.Init(b); err != nil {
		return errors.Wrap(err, "setting up meta commands")
	}

	// register feature modules
	for _, m := range modules {
		if !conf.FeatureEnabled(m.name) {
			common.Log.Infof("Module %v is disabled in configuration, skipping", m.name)
			continue
		}

		if err := m.setup(b); err != nil {
			common.Log.Warnf("Error setting up module %v, skipping: %v", m.name, err)
			continue
		}
		common.Log.Infof("Loaded module %v", m.name)
	}

	ctx, cancel := signal.NotifyContext(c.Context, os.Interrupt, os.Kill)
	defer cancel()

	if err := b.Open(ctx); err != nil {
		return errors.Wrap(err, "opening gateway connection")
	}

	defer func() {
		if err := b.Close(); err != nil {
			common.Log.Errorf("closing gateway connection: %v", err)
		}
		common.Log.Info("Disconnected from Discord.")
	}()

	common.Log.Info("Connected to Discord. Press Ctrl-C or send an interrupt signal to stop.")

	s, _ := b.Router.StateFromGuildID(0)
	botUser, err := s.Me()
	if err != nil {
		return errors.Wrap(err, "getting bot user")
	}
	common.Log.Infof("User: %v#%v (%v)", botUser.Username, botUser.Discriminator, botUser.ID)

	// normally creating a Context would do this, but the router needs the
	// user before the first message comes in
	b.Router.Bot = botUser
	b.Router.Prefixes = append(b.Router.Prefixes, "<@"+botUser.ID.String()+">", "<@!"+botUser.ID.String()+">")

	b.StartStatusLoop()

	// status endpoint, if configured
	if listen := os.Getenv("STATUS_LISTEN"); listen != "" {
		go server.New(b).Serve(listen)
	}

	<-ctx.Done()

	common.Log.Info("Interrupt signal received. Shutting down...")
	return nil
}
