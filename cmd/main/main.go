package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"tgproxy/internal/pkg/app"
)

func main() {
	cliApp := &cli.App{
		Name:  "tgproxy",
		Usage: "Telegram Bot API proxy with keyword-triggered auto-delete",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Value: "",
				Usage: "optional YAML config file; environment variables (TGPROXY_*) always apply",
			},
		},
		Action: func(c *cli.Context) error {
			return app.New(c.String("config"))
		},
	}

	if err := cliApp.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
