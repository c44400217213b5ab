package command

import (
	"tasepin/bot"

	"github.com/urfave/cli/v2"
)

// Update one fetch, format and publish cycle
type Update struct{}

func (s Update) Command() *cli.Command {
	return &cli.Command{
		Name:    "update",
		Usage:   "fetch quotes and update the pinned message once",
		Aliases: []string{"u"},
		Flags: []cli.Flag{
			configFlag(),
		},
		Action: func(c *cli.Context) error {
			cfg, err := loadConfig(c)
			if err != nil {
				return err
			}

			return bot.UpdateOnce(cfg)
		},
	}
}
