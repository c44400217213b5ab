package command

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

// ShowVersion print version
type ShowVersion struct{}

func (s ShowVersion) Command() *cli.Command {
	return &cli.Command{
		Name:    "version",
		Usage:   "show version",
		Aliases: []string{"v"},
		Action: func(c *cli.Context) error {
			fmt.Println("v0.1.0")
			return nil
		},
	}
}
