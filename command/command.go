package command

import (
	"tasepin/config"
	"tasepin/logger"

	"github.com/urfave/cli/v2"
)

// Commander define one cli subcommand
type Commander interface {
	Command() *cli.Command
}

var (
	// Commands all registered subcommands
	Commands = []Commander{
		Update{},
		Run{},
		Serve{},
		Smoke{},
		ShowVersion{},
	}
)

func configFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "optional toml config file, environment variables override it",
	}
}

// loadConfig parse config and install the configured global logger
func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg, err := config.Parse(c.String("config"))
	if err != nil {
		return nil, err
	}

	err = logger.Replace(cfg.Log.Level, cfg.Log.File)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
