package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"tasepin/constants"

	"github.com/BurntSushi/toml"
)

// Index one configured index: display name and quote symbol
type Index struct {
	Name   string
	Symbol string
}

// Config global config
type Config struct {
	BotToken            string `toml:"bot_token"`
	Chat                string `toml:"chat"`
	Timezone            string `toml:"timezone"`
	Indices             string `toml:"indices"`
	UpdateIntervalSec   int    `toml:"update_interval_sec"`
	OffHoursIntervalSec int    `toml:"off_hours_interval_sec"`
	StatePath           string `toml:"state_path"`
	StateStore          string `toml:"state_store"`
	Log                 struct {
		Level string `toml:"level"`
		File  string `toml:"file"`
	} `toml:"log"`
}

// Valid validate config
func (s Config) Valid() error {
	if strings.TrimSpace(s.BotToken) == "" {
		return errors.New("bot token undefined")
	}

	if strings.TrimSpace(s.Chat) == "" {
		return errors.New("chat undefined")
	}

	if strings.TrimSpace(s.Indices) == "" {
		return errors.New("indices undefined")
	}

	_, err := s.IndexList()
	if err != nil {
		return err
	}

	return nil
}

// IndexList parse comma-separated name=symbol pairs, order preserved
func (s Config) IndexList() ([]Index, error) {
	parts := strings.Split(s.Indices, ",")
	indices := make([]Index, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		pair := strings.SplitN(part, "=", 2)
		if len(pair) != 2 || strings.TrimSpace(pair[0]) == "" || strings.TrimSpace(pair[1]) == "" {
			return nil, fmt.Errorf("indices pair invalid: %s", part)
		}

		indices = append(indices, Index{
			Name:   strings.TrimSpace(pair[0]),
			Symbol: strings.TrimSpace(pair[1]),
		})
	}

	if len(indices) == 0 {
		return nil, errors.New("indices undefined")
	}

	return indices, nil
}

// Symbols return configured symbols in declared order
func (s Config) Symbols() []string {
	indices, _ := s.IndexList()
	symbols := make([]string, 0, len(indices))
	for _, index := range indices {
		symbols = append(symbols, index.Symbol)
	}

	return symbols
}

// StoreArgument return state store argument for stores.Parse
func (s Config) StoreArgument() string {
	if strings.TrimSpace(s.StateStore) != "" {
		return s.StateStore
	}

	return "fs:" + s.StatePath
}

// UpdateInterval trading hours update interval
func (s Config) UpdateInterval() time.Duration {
	return time.Second * time.Duration(s.UpdateIntervalSec)
}

// OffHoursInterval off hours update interval
func (s Config) OffHoursInterval() time.Duration {
	return time.Second * time.Duration(s.OffHoursIntervalSec)
}

// Default create config with documented defaults
func Default() *Config {
	config := &Config{
		Timezone:            constants.DefaultTimezone,
		Indices:             constants.DefaultIndices,
		UpdateIntervalSec:   constants.DefaultUpdateIntervalSec,
		OffHoursIntervalSec: constants.DefaultOffHoursIntervalSec,
		StatePath:           constants.DefaultStatePath,
	}
	config.Log.Level = "info"

	return config
}

// Parse parse config from optional toml file and environment variables
func Parse(filePath string) (*Config, error) {
	config := Default()

	if strings.TrimSpace(filePath) != "" {
		_, err := toml.DecodeFile(filePath, config)
		if err != nil {
			return nil, err
		}
	}

	err := config.fromEnvironment()
	if err != nil {
		return nil, err
	}

	return config, config.Valid()
}

// fromEnvironment environment variables override file values
func (s *Config) fromEnvironment() error {
	if v := strings.TrimSpace(os.Getenv("TELEGRAM_BOT_TOKEN")); v != "" {
		s.BotToken = v
	}

	if v := strings.TrimSpace(os.Getenv("TELEGRAM_CHAT")); v != "" {
		s.Chat = v
	}

	if v := strings.TrimSpace(os.Getenv("TIMEZONE")); v != "" {
		s.Timezone = v
	}

	if v := strings.TrimSpace(os.Getenv("INDICES")); v != "" {
		s.Indices = v
	}

	if v := strings.TrimSpace(os.Getenv("UPDATE_INTERVAL_SEC")); v != "" {
		seconds, err := strconv.Atoi(v)
		if err != nil || seconds <= 0 {
			return fmt.Errorf("update interval invalid: %s", v)
		}
		s.UpdateIntervalSec = seconds
	}

	if v := strings.TrimSpace(os.Getenv("OFF_HOURS_INTERVAL_SEC")); v != "" {
		seconds, err := strconv.Atoi(v)
		if err != nil || seconds <= 0 {
			return fmt.Errorf("off hours interval invalid: %s", v)
		}
		s.OffHoursIntervalSec = seconds
	}

	if v := strings.TrimSpace(os.Getenv("STATE_PATH")); v != "" {
		s.StatePath = v
	}

	if v := strings.TrimSpace(os.Getenv("STATE_STORE")); v != "" {
		s.StateStore = v
	}

	if v := strings.TrimSpace(os.Getenv("LOG_LEVEL")); v != "" {
		s.Log.Level = v
	}

	if v := strings.TrimSpace(os.Getenv("LOG_FILE")); v != "" {
		s.Log.File = v
	}

	return nil
}
