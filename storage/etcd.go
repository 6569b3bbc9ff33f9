package storage

// Copyright (c) TFG Co. All Rights Reserved.
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

import (
	"context"
	"fmt"
	"time"

	"github.com/topfreegames/pitaya/v3/pkg/config"
	"github.com/topfreegames/pitaya/v3/pkg/logger"
	"github.com/topfreegames/pitaya/v3/pkg/modules"
	clientv3 "go.etcd.io/etcd/client/v3"
	"go.etcd.io/etcd/client/v3/namespace"
)

const etcdRequestTimeout = 3 * time.Second

// ETCDSettings module that keeps user settings in etcd
type ETCDSettings struct {
	modules.Base
	cli             *clientv3.Client
	etcdEndpoints   []string
	etcdPrefix      string
	etcdDialTimeout time.Duration
}

// NewETCDSettings returns a new instance of ETCDSettings
func NewETCDSettings(conf config.ETCDBindingConfig) *ETCDSettings {
	return &ETCDSettings{
		etcdEndpoints:   conf.Endpoints,
		etcdPrefix:      conf.Prefix,
		etcdDialTimeout: conf.DialTimeout,
	}
}

func getUserSettingsKey(uid string) string {
	return fmt.Sprintf("settings/%s", uid)
}

// Put stores the settings of uid, without a lease
func (b *ETCDSettings) Put(uid string, data []byte) error {
	ctx, cancel := context.WithTimeout(context.Background(), etcdRequestTimeout)
	defer cancel()
	_, err := b.cli.Put(ctx, getUserSettingsKey(uid), string(data))
	return err
}

func (b *ETCDSettings) Remove(uid string) error {
	ctx, cancel := context.WithTimeout(context.Background(), etcdRequestTimeout)
	defer cancel()
	_, err := b.cli.Delete(ctx, getUserSettingsKey(uid))
	return err
}

// Get returns ErrSettingsNotFound for users that never saved settings
func (b *ETCDSettings) Get(uid string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(context.Background(), etcdRequestTimeout)
	defer cancel()
	etcdRes, err := b.cli.Get(ctx, getUserSettingsKey(uid))
	if err != nil {
		return nil, err
	}
	if len(etcdRes.Kvs) == 0 {
		return nil, ErrSettingsNotFound
	}
	return etcdRes.Kvs[0].Value, nil
}

// Init connects to etcd
func (b *ETCDSettings) Init() error {
	if b.cli == nil {
		cli, err := clientv3.New(clientv3.Config{
			Endpoints:   b.etcdEndpoints,
			DialTimeout: b.etcdDialTimeout,
		})
		if err != nil {
			return err
		}
		b.cli = cli
	}
	// namespaced etcd :)
	b.cli.KV = namespace.NewKV(b.cli.KV, b.etcdPrefix)
	logger.Log.Infof("[settings storage] etcd %v prefix %s", b.etcdEndpoints, b.etcdPrefix)
	return nil
}

// Shutdown closes the etcd client
func (b *ETCDSettings) Shutdown() error {
	if b.cli == nil {
		return nil
	}
	return b.cli.Close()
}
