package command

import (
	"context"
	"time"

	"tasepin/bot"
	"tasepin/config"
	"tasepin/exchanges"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

// errorBackoff pause after a failed cycle before trying again
const errorBackoff = time.Second * 10

// Run periodic loop: update, then sleep by trading hours interval
type Run struct{}

func (s Run) Command() *cli.Command {
	return &cli.Command{
		Name:  "run",
		Usage: "update the pinned message periodically until interrupted",
		Flags: []cli.Flag{
			configFlag(),
		},
		Action: func(c *cli.Context) error {
			cfg, err := loadConfig(c)
			if err != nil {
				return err
			}

			return updateLoop(c.Context, cfg)
		},
	}
}

// updateLoop update until ctx is done, pausing by trading hours interval
func updateLoop(ctx context.Context, cfg *config.Config) error {
	tase := exchanges.NewTase(cfg.Timezone)

	for {
		interval := cfg.UpdateInterval()
		if !tase.IsTradingTime(time.Now()) {
			interval = cfg.OffHoursInterval()
		}

		err := bot.UpdateOnce(cfg)
		if err != nil {
			zap.L().Error("update cycle failed", zap.Error(err))
			interval = errorBackoff
		} else {
			zap.L().Info("update cycle success", zap.Duration("next", interval))
		}

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(interval):
		}
	}
}
