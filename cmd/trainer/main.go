package main

import (
	"flag"
	"strings"

	"github.com/kevin-chtw/tw_ukeire/config"
	"github.com/kevin-chtw/tw_ukeire/game"
	"github.com/kevin-chtw/tw_ukeire/service"
	"github.com/kevin-chtw/tw_ukeire/storage"
	"github.com/kevin-chtw/tw_ukeire/trainer"
	"github.com/kevin-chtw/tw_ukeire/utils"
	pitaya "github.com/topfreegames/pitaya/v3/pkg"
	"github.com/topfreegames/pitaya/v3/pkg/acceptor"
	"github.com/topfreegames/pitaya/v3/pkg/component"
	pitayacfg "github.com/topfreegames/pitaya/v3/pkg/config"
	"github.com/topfreegames/pitaya/v3/pkg/logger"
	"github.com/topfreegames/pitaya/v3/pkg/serialize/protobuf"
)

func main() {
	file := flag.String("config", "etc/trainer.yaml", "config file")
	console := flag.Bool("console", false, "also log to stdout")
	flag.Parse()

	conf, err := config.Load(*file)
	if err != nil {
		logger.Log.Fatalf("load config: %v", err)
	}
	level, _ := conf.LogLevel()
	logger.SetLogger(utils.Logger(level, "./logs", *console))

	var manual *game.Manual
	if conf.Manual.File != "" {
		if manual, err = game.LoadManual(conf.Manual.File); err != nil {
			logger.Log.Warnf("manual deal disabled: %v", err)
		}
	}

	builder := pitaya.NewDefaultBuilder(true, conf.Server.Type, pitaya.Standalone, map[string]string{}, *pitayacfg.NewDefaultPitayaConfig())
	builder.Serializer = protobuf.NewSerializer()
	builder.AddAcceptor(acceptor.NewWSAcceptor(conf.Server.Address))
	app := builder.Build()

	var store storage.SettingsStore
	switch conf.Storage.Type {
	case config.StorageEtcd:
		store = storage.NewETCDSettings(conf.ETCDBindingConfig())
	default:
		store = storage.NewFileSettings(conf.Storage.File)
	}
	if err := app.RegisterModule(store, "settingsStorage"); err != nil {
		logger.Log.Fatalf("register settings storage: %v", err)
	}

	sessions := trainer.NewManager(manual, conf.Session.Idle)
	defer sessions.Close()

	defaults := trainer.DefaultSettings()
	defaults.Rules = conf.Rules
	app.Register(service.NewTrainer(app, sessions, store, defaults),
		component.WithName("trainer"),
		component.WithNameFunc(strings.ToLower),
	)

	logger.Log.Infof("trainer listening on %s, storage %s", conf.Server.Address, conf.Storage.Type)
	app.Start()
}
