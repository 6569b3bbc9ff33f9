package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/topfreegames/pitaya/v3/pkg/logger"
	"github.com/topfreegames/pitaya/v3/pkg/modules"
)

const DefaultSettingsFile = "./data/user_states.json"

// FileSettings 单个 json 文件保存所有玩家设置，uid -> 设置
type FileSettings struct {
	modules.Base
	mu   sync.Mutex
	path string
}

func NewFileSettings(path string) *FileSettings {
	if path == "" {
		path = DefaultSettingsFile
	}
	return &FileSettings{path: path}
}

// Init makes sure the directory of the file exists.
func (f *FileSettings) Init() error {
	if err := os.MkdirAll(filepath.Dir(f.path), os.ModePerm); err != nil {
		return fmt.Errorf("create settings directory: %w", err)
	}
	logger.Log.Infof("[settings storage] file %s", f.path)
	return nil
}

func (f *FileSettings) Get(uid string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	all, err := f.load()
	if err != nil {
		return nil, err
	}
	data, ok := all[uid]
	if !ok {
		return nil, ErrSettingsNotFound
	}
	return data, nil
}

func (f *FileSettings) Put(uid string, data []byte) error {
	if !json.Valid(data) {
		return fmt.Errorf("settings of %s are not valid json", uid)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	all, err := f.load()
	if err != nil {
		return err
	}
	all[uid] = data
	return f.save(all)
}

func (f *FileSettings) load() (map[string]json.RawMessage, error) {
	all := make(map[string]json.RawMessage)
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return all, nil
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(data, &all); err != nil {
		return nil, fmt.Errorf("parse %s: %w", f.path, err)
	}
	return all, nil
}

// save 先写临时文件再改名，避免写一半的文件
func (f *FileSettings) save(all map[string]json.RawMessage) error {
	data, err := json.Marshal(all)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(f.path), os.ModePerm); err != nil {
		return err
	}
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, f.path)
}
