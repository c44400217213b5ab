package stores

import (
	"github.com/bytedance/sonic"
	"github.com/syndtr/goleveldb/leveldb"
	"go.uber.org/zap"
)

// LevelDB level db store
type LevelDB struct {
	db *leveldb.DB
}

// NewLevelDB create level db store
func NewLevelDB(root string) (*LevelDB, error) {
	db, err := leveldb.OpenFile(root, nil)
	if err != nil {
		zap.L().Error("open level db failed", zap.Error(err), zap.String("root", root))
		return nil, err
	}

	return &LevelDB{db}, nil
}

// Load load state, missing key is a valid empty state
func (s LevelDB) Load() (*State, error) {
	state := new(State)

	buffer, err := s.db.Get([]byte(stateKey), nil)
	if err != nil {
		if err == leveldb.ErrNotFound {
			return state, nil
		}

		zap.L().Error("load state from level db failed", zap.Error(err), zap.String("key", stateKey))
		return nil, err
	}

	err = sonic.Unmarshal(buffer, state)
	if err != nil {
		zap.L().Error("unmarshal level db state failed",
			zap.Error(err),
			zap.String("key", stateKey),
			zap.ByteString("value", buffer))
		return nil, err
	}

	return state, nil
}

// Save save state, overwriting prior content
func (s LevelDB) Save(state *State) error {
	buffer, err := sonic.Marshal(state)
	if err != nil {
		zap.L().Error("marshal state failed", zap.Error(err), zap.Any("state", state))
		return err
	}

	err = s.db.Put([]byte(stateKey), buffer, nil)
	if err != nil {
		zap.L().Error("save state to level db failed", zap.Error(err), zap.String("key", stateKey))
		return err
	}

	return nil
}

// Close close level db store
func (s LevelDB) Close() error {
	if s.db == nil {
		return nil
	}

	return s.db.Close()
}
