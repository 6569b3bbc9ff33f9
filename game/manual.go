package game

import (
	"fmt"
	"math/rand"

	"github.com/kevin-chtw/tw_ukeire/mahjong"
	"github.com/spf13/viper"
)

// Manual 配牌文件，用于固定手牌练习
//
//	enable: true
//	hand: 123456789m1334p
//	discards: 19s77z
type Manual struct {
	vp *viper.Viper
}

// LoadManual reads a yaml deal file. A missing file yields an error; callers
// treat that as "no manual deal".
func LoadManual(file string) (*Manual, error) {
	m := &Manual{
		vp: viper.New(),
	}
	m.vp.SetConfigType("yaml")
	m.vp.SetConfigFile(file)
	if err := m.vp.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read manual %s: %w", file, err)
	}
	return m, nil
}

func (m *Manual) Enabled() bool {
	if m == nil {
		return false
	}
	return m.vp.GetBool("enable")
}

func (m *Manual) Hand() (mahjong.Hand, error) {
	return mahjong.ParseHand(m.vp.GetString("hand"))
}

func (m *Manual) Discards() ([]mahjong.Tile, error) {
	return mahjong.ParseTiles(m.vp.GetString("discards"))
}

// Deal builds a game state from the configured hand.
func (m *Manual) Deal(players int, drawFirst bool, rng *rand.Rand) (*State, error) {
	hand, err := m.Hand()
	if err != nil {
		return nil, err
	}
	discards, err := m.Discards()
	if err != nil {
		return nil, fmt.Errorf("manual discards: %w", err)
	}
	return NewStateWithHand(players, hand, discards, drawFirst, rng)
}
