package config

import (
	"fmt"
	"time"

	"github.com/kevin-chtw/tw_ukeire/mahjong"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	pitayacfg "github.com/topfreegames/pitaya/v3/pkg/config"
)

const (
	StorageFile = "file"
	StorageEtcd = "etcd"
)

type Server struct {
	Address string `mapstructure:"address"`
	Type    string `mapstructure:"type"`
}

type Etcd struct {
	Endpoints   []string      `mapstructure:"endpoints"`
	Prefix      string        `mapstructure:"prefix"`
	DialTimeout time.Duration `mapstructure:"dialtimeout"`
}

type Storage struct {
	Type string `mapstructure:"type"`
	File string `mapstructure:"file"`
	Etcd Etcd   `mapstructure:"etcd"`
}

type Log struct {
	Level string `mapstructure:"level"`
}

type Manual struct {
	File string `mapstructure:"file"`
}

type Session struct {
	Idle time.Duration `mapstructure:"idle"` // 会话空闲多久后回收
}

// Config 服务配置
type Config struct {
	Server  Server        `mapstructure:"server"`
	Log     Log           `mapstructure:"log"`
	Rules   mahjong.Rules `mapstructure:"rules"`
	Storage Storage       `mapstructure:"storage"`
	Manual  Manual        `mapstructure:"manual"`
	Session Session       `mapstructure:"session"`
}

func setDefaults(vp *viper.Viper) {
	vp.SetDefault("server.address", ":3250")
	vp.SetDefault("server.type", "trainer")
	vp.SetDefault("log.level", "info")
	vp.SetDefault("rules.allow_kokushi", true)
	vp.SetDefault("rules.allow_chiitoitsu", true)
	vp.SetDefault("storage.type", StorageFile)
	vp.SetDefault("storage.file", "./data/user_states.json")
	vp.SetDefault("storage.etcd.endpoints", []string{"localhost:2379"})
	vp.SetDefault("storage.etcd.prefix", "ukeire/")
	vp.SetDefault("storage.etcd.dialtimeout", 5*time.Second)
	vp.SetDefault("manual.file", "")
	vp.SetDefault("session.idle", 2*time.Hour)
}

// Load reads a yaml file on top of the defaults. An empty file name gives
// the defaults only.
func Load(file string) (*Config, error) {
	vp := viper.New()
	setDefaults(vp)
	if file != "" {
		vp.SetConfigType("yaml")
		vp.SetConfigFile(file)
		if err := vp.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", file, err)
		}
	}

	c := &Config{}
	if err := vp.Unmarshal(c); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) validate() error {
	if c.Storage.Type != StorageFile && c.Storage.Type != StorageEtcd {
		return fmt.Errorf("unknown storage type %q", c.Storage.Type)
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	return nil
}

func (c *Config) LogLevel() (logrus.Level, error) {
	return logrus.ParseLevel(c.Log.Level)
}

// ETCDBindingConfig converts the etcd section for the pitaya style module.
func (c *Config) ETCDBindingConfig() pitayacfg.ETCDBindingConfig {
	return pitayacfg.ETCDBindingConfig{
		DialTimeout: c.Storage.Etcd.DialTimeout,
		Endpoints:   c.Storage.Etcd.Endpoints,
		Prefix:      c.Storage.Etcd.Prefix,
	}
}
