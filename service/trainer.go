package service

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/google/uuid"
	"github.com/kevin-chtw/tw_ukeire/mahjong"
	"github.com/kevin-chtw/tw_ukeire/storage"
	"github.com/kevin-chtw/tw_ukeire/trainer"
	pitaya "github.com/topfreegames/pitaya/v3/pkg"
	"github.com/topfreegames/pitaya/v3/pkg/component"
	"github.com/topfreegames/pitaya/v3/pkg/logger"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// Trainer 牌效练习服务
type Trainer struct {
	component.Base
	app      pitaya.Pitaya
	sessions *trainer.Manager
	store    storage.SettingsStore
	defaults trainer.Settings
}

// NewTrainer 创建牌效练习服务
func NewTrainer(app pitaya.Pitaya, sessions *trainer.Manager, store storage.SettingsStore, defaults trainer.Settings) *Trainer {
	return &Trainer{
		app:      app,
		sessions: sessions,
		store:    store,
		defaults: defaults,
	}
}

// Message 处理一条练习指令或要打出的牌
func (t *Trainer) Message(ctx context.Context, req *wrapperspb.StringValue) (ack *structpb.Struct, err error) {
	defer func() {
		if r := recover(); r != nil {
			logger.Log.Errorf("panic recovered %s\n %s", r, string(debug.Stack()))
			ack, err = nil, fmt.Errorf("internal error: %v", r)
		}
	}()
	if req == nil {
		return nil, errors.New("nil request")
	}

	uid, err := t.bindUID(ctx)
	if err != nil {
		return nil, err
	}

	s, created := t.sessions.LoadOrStore(uid, func() trainer.Settings { return t.loadSettings(uid) })
	if created {
		t.onClose(ctx, uid)
	}
	replies := s.Process(req.GetValue())
	t.saveSettings(s)
	return newMessageAck(uid, replies)
}

// Analyze 分析一手牌，不影响练习进度
func (t *Trainer) Analyze(ctx context.Context, req *wrapperspb.StringValue) (*structpb.Struct, error) {
	if req == nil {
		return nil, errors.New("nil request")
	}
	hand, err := mahjong.ParseHand(req.GetValue())
	if err != nil {
		return nil, err
	}

	rules := t.defaults.Rules
	if session := t.app.GetSessionFromCtx(ctx); session != nil && session.UID() != "" {
		if s := t.sessions.Get(session.UID()); s != nil {
			rules = s.Settings().Rules
		}
	}
	return newAnalysisAck(trainer.Analyze(hand, rules))
}

// bindUID 未绑定的连接分配一个随机 uid
func (t *Trainer) bindUID(ctx context.Context) (string, error) {
	session := t.app.GetSessionFromCtx(ctx)
	if session == nil {
		return "", errors.New("no session in context")
	}
	if uid := session.UID(); uid != "" {
		return uid, nil
	}
	uid := uuid.NewString()
	if err := session.Bind(ctx, uid); err != nil {
		return "", fmt.Errorf("bind session: %w", err)
	}
	logger.Log.Infof("session bound to %s", uid)
	return uid, nil
}

func (t *Trainer) onClose(ctx context.Context, uid string) {
	session := t.app.GetSessionFromCtx(ctx)
	if session == nil {
		return
	}
	if err := session.OnClose(func() { t.sessions.Delete(uid) }); err != nil {
		logger.Log.Debugf("session %s: no close callback: %v", uid, err)
	}
}

func (t *Trainer) loadSettings(uid string) trainer.Settings {
	data, err := t.store.Get(uid)
	if errors.Is(err, storage.ErrSettingsNotFound) {
		return t.defaults
	}
	if err != nil {
		logger.Log.Errorf("load settings of %s: %v", uid, err)
		return t.defaults
	}
	settings, err := trainer.UnmarshalSettings(data)
	if err != nil {
		logger.Log.Errorf("decode settings of %s: %v", uid, err)
		return t.defaults
	}
	return settings
}

func (t *Trainer) saveSettings(s *trainer.Session) {
	settings, dirty := s.TakeDirtySettings()
	if !dirty {
		return
	}
	data, err := settings.Marshal()
	if err == nil {
		err = t.store.Put(s.UID, data)
	}
	if err != nil {
		logger.Log.Errorf("save settings of %s: %v", s.UID, err)
		s.MarkDirty()
	}
}

func newMessageAck(uid string, replies []string) (*structpb.Struct, error) {
	list := make([]any, len(replies))
	for i, r := range replies {
		list[i] = r
	}
	return structpb.NewStruct(map[string]any{
		"uid":     uid,
		"replies": list,
	})
}

func newAnalysisAck(a trainer.Analysis) (*structpb.Struct, error) {
	discards := make([]any, len(a.Discards))
	for i, d := range a.Discards {
		discards[i] = map[string]any{
			"tile":      d.Tile.String(),
			"score":     d.Score,
			"improving": mahjong.TilesShort(d.Improving),
		}
	}
	return structpb.NewStruct(map[string]any{
		"hand":      a.Hand.String(),
		"shanten":   a.Shanten,
		"tiles":     mahjong.TilesShort(a.Tiles),
		"available": a.Available,
		"discards":  discards,
		"reducing":  mahjong.TilesShort(a.Reducing),
	})
}
