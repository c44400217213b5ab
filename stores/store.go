package stores

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// State persisted delivery state: the single message the bot keeps editing.
// A zero MessageID means no prior message exists.
type State struct {
	MessageID int64  `json:"message_id"`
	Chat      string `json:"chat,omitempty"`
}

// HasMessage report whether a prior message id is recorded
func (s State) HasMessage() bool {
	return s.MessageID != 0
}

// Store define delivery state store
type Store interface {
	// Load load state, absent state yields a zero value
	Load() (*State, error)
	// Save save state, overwriting prior content
	Save(*State) error
	// Close close store
	Close() error
}

// Parse parse store argument, eg. "fs:state.json" or "redis:localhost:6379"
func Parse(arg string) (Store, error) {
	parts := strings.SplitN(arg, ":", 2)
	if len(parts) != 2 || strings.TrimSpace(parts[1]) == "" {
		zap.L().Error("store arg invalid", zap.String("arg", arg))
		return nil, fmt.Errorf("store arg invalid: %s", arg)
	}

	switch parts[0] {
	case "fs":
		return NewFileSystem(parts[1]), nil
	case "redis":
		return NewRedis(parts[1], ""), nil
	case "leveldb":
		return NewLevelDB(parts[1])
	case "s3":
		return NewS3FromArgument(parts[1])
	default:
		zap.L().Error("store type invalid", zap.String("type", parts[0]))
		return nil, fmt.Errorf("store type invalid: %s", parts[0])
	}
}
