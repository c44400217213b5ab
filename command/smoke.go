package command

import (
	"tasepin/bot"

	"github.com/urfave/cli/v2"
)

// Smoke lightweight bot api connectivity check
type Smoke struct{}

func (s Smoke) Command() *cli.Command {
	return &cli.Command{
		Name:  "smoke",
		Usage: "check bot api connectivity without fetching quotes",
		Flags: []cli.Flag{
			configFlag(),
		},
		Action: func(c *cli.Context) error {
			cfg, err := loadConfig(c)
			if err != nil {
				return err
			}

			return bot.Smoke(cfg)
		},
	}
}
