package main

import (
	"os"

	"tasepin/command"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func main() {
	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	undo := zap.ReplaceGlobals(logger)
	defer undo()

	app := &cli.App{
		Name:     "tasepin",
		Usage:    "keep a pinned telegram message updated with tase index quotes",
		Commands: []*cli.Command{},
	}

	for _, cmd := range command.Commands {
		app.Commands = append(app.Commands, cmd.Command())
	}

	err := app.Run(os.Args)
	if err != nil {
		zap.L().Fatal("run failed", zap.Error(err))
	}
}
