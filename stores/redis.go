package stores

import (
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-redis/redis"
	"go.uber.org/zap"
)

// stateKey single redis key holding the json state record
const stateKey = "tasepin:state"

// Redis define redis store
type Redis struct {
	client *redis.Client
}

// NewRedis create redis store
func NewRedis(address, password string) *Redis {
	client := redis.NewClient(&redis.Options{
		Addr:         address,
		Password:     password,
		DB:           0, // use default DB
		MaxRetries:   2,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
	})

	return &Redis{client}
}

// Load load state, missing key is a valid empty state
func (s Redis) Load() (*State, error) {
	state := new(State)

	value, err := s.client.Get(stateKey).Result()
	if err != nil {
		if err == redis.Nil {
			return state, nil
		}

		zap.L().Error("load state from redis failed", zap.Error(err), zap.String("key", stateKey))
		return nil, err
	}

	err = sonic.Unmarshal([]byte(value), state)
	if err != nil {
		zap.L().Error("unmarshal redis state failed",
			zap.Error(err),
			zap.String("key", stateKey),
			zap.String("value", value))
		return nil, err
	}

	return state, nil
}

// Save save state, overwriting prior content
func (s Redis) Save(state *State) error {
	buffer, err := sonic.Marshal(state)
	if err != nil {
		zap.L().Error("marshal state failed", zap.Error(err), zap.Any("state", state))
		return err
	}

	err = s.client.Set(stateKey, string(buffer), 0).Err()
	if err != nil {
		zap.L().Error("save state to redis failed", zap.Error(err), zap.String("key", stateKey))
		return err
	}

	return nil
}

// Close close redis store
func (s Redis) Close() error {
	if s.client == nil {
		return nil
	}

	return s.client.Close()
}
