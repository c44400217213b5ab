package stores

import (
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/bytedance/sonic"
	"go.uber.org/zap"
)

// FileSystem define file system store holding the state as one json file
type FileSystem struct {
	path string
}

// NewFileSystem create file system store
func NewFileSystem(path string) *FileSystem {
	return &FileSystem{path: path}
}

// Load load state from file, absent or empty file is a valid empty state
func (s FileSystem) Load() (*State, error) {
	state := new(State)

	buffer, err := ioutil.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return state, nil
		}

		zap.L().Error("read state file failed", zap.Error(err), zap.String("path", s.path))
		return nil, err
	}

	if len(buffer) == 0 {
		return state, nil
	}

	err = sonic.Unmarshal(buffer, state)
	if err != nil {
		zap.L().Error("unmarshal state file failed",
			zap.Error(err),
			zap.String("path", s.path),
			zap.ByteString("json", buffer))
		return nil, err
	}

	return state, nil
}

// Save save state to file, overwriting prior content
func (s FileSystem) Save(state *State) error {
	buffer, err := sonic.Marshal(state)
	if err != nil {
		zap.L().Error("marshal state failed", zap.Error(err), zap.Any("state", state))
		return err
	}

	dir := filepath.Dir(s.path)
	if dir != "." {
		err = os.MkdirAll(dir, 0755)
		if err != nil {
			zap.L().Error("ensure state dir failed", zap.Error(err), zap.String("dir", dir))
			return err
		}
	}

	err = ioutil.WriteFile(s.path, buffer, 0660)
	if err != nil {
		zap.L().Error("save state file failed", zap.Error(err), zap.String("path", s.path))
		return err
	}

	return nil
}

// Close close store
func (s FileSystem) Close() error {
	return nil
}
