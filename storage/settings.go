package storage

import (
	"errors"

	"github.com/topfreegames/pitaya/v3/pkg/interfaces"
)

var ErrSettingsNotFound = errors.New("settings not found")

// SettingsStore 玩家设置的持久化，值为序列化后的设置
type SettingsStore interface {
	interfaces.Module
	Get(uid string) ([]byte, error)
	Put(uid string, data []byte) error
}

var (
	_ SettingsStore = (*ETCDSettings)(nil)
	_ SettingsStore = (*FileSettings)(nil)
)
