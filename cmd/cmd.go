package cmd

import (
	"os"

	"github.com/starshine-sys/vigil/cmd/bot"
	"github.com/starshine-sys/vigil/common"
	"github.com/urfave/cli/v2"
)

var app = &cli.App{
	Name:    "Vigil",
	Usage:   "Discord moderation, ticketing and logging bot",
	Version: common.Version(),

	Commands: []*cli.Command{
		bot.Command,
	},
}

func Run() error {
	return app.Run(os.Args)
}
