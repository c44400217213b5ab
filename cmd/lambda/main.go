package main

import (
	"context"

	"tasepin/bot"
	"tasepin/config"
	"tasepin/logger"

	"github.com/aws/aws-lambda-go/lambda"
	"go.uber.org/zap"
)

// One update cycle per scheduled invocation. The periodic schedule itself is
// the event source's concern (eg. a cloudwatch rule).
func main() {
	devLogger, _ := zap.NewDevelopment()
	defer devLogger.Sync()

	undo := zap.ReplaceGlobals(devLogger)
	defer undo()

	cfg, err := config.Parse("")
	if err != nil {
		zap.L().Fatal("parse config failed", zap.Error(err))
	}

	err = logger.Replace(cfg.Log.Level, cfg.Log.File)
	if err != nil {
		zap.L().Fatal("replace logger failed", zap.Error(err))
	}

	lambda.Start(func(ctx context.Context) error {
		return bot.UpdateOnce(cfg)
	})
}
