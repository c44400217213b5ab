package bot

import (
	"time"

	"tasepin/config"
	"tasepin/exchanges"
	"tasepin/messages"
	"tasepin/notifiers"
	"tasepin/publisher"
	"tasepin/sources"
	"tasepin/stores"

	"go.uber.org/zap"
)

// UpdateOnce perform one full cycle: fetch quotes, build the status message
// and publish it. Fetch failures degrade to placeholders; configuration and
// delivery failures are returned to the caller.
func UpdateOnce(cfg *config.Config) error {
	indices, err := cfg.IndexList()
	if err != nil {
		return err
	}

	store, err := stores.Parse(cfg.StoreArgument())
	if err != nil {
		return err
	}
	defer store.Close()

	tase := exchanges.NewTase(cfg.Timezone)

	fetcher := sources.NewFetcher(sources.NewYahooFinance())
	results := fetcher.Fetch(cfg.Symbols())

	text := messages.Build(indices, results, time.Now().In(tase.Location()))

	pub := publisher.NewPublisher(notifiers.NewTelegram(cfg.BotToken, cfg.Chat), store, cfg.Chat)

	return pub.Publish(text)
}

// Smoke verify connectivity with the bot api without fetching quotes or
// touching the state
func Smoke(cfg *config.Config) error {
	me, err := notifiers.NewTelegram(cfg.BotToken, cfg.Chat).GetMe()
	if err != nil {
		return err
	}

	zap.L().Info("bot connectivity ok",
		zap.String("username", me.Username),
		zap.Int64("id", me.ID))

	return nil
}
