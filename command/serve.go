package command

import (
	"tasepin/api"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

// Serve update loop plus a health check endpoint for hosted deployments
type Serve struct{}

func (s Serve) Command() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "run the update loop and expose a health check endpoint",
		Flags: []cli.Flag{
			configFlag(),
			&cli.StringFlag{
				Name:    "listen",
				Aliases: []string{"l"},
				Value:   ":8080",
				Usage:   "health check listen address",
			},
		},
		Action: func(c *cli.Context) error {
			cfg, err := loadConfig(c)
			if err != nil {
				return err
			}

			go func() {
				err := updateLoop(c.Context, cfg)
				if err != nil {
					zap.L().Error("update loop stopped", zap.Error(err))
				}
			}()

			return api.NewServer(c.String("listen")).Run()
		},
	}
}
