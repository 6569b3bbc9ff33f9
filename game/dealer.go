package game

import (
	"fmt"
	"math/rand"
	"slices"

	"github.com/kevin-chtw/tw_ukeire/mahjong"
)

const (
	DeadWallSize      = 14
	maxDoraIndicators = 8 // 0-3 宝牌指示牌，4-7 里宝牌指示牌
)

// Dealer 牌墙，岭上区域与宝牌指示牌
type Dealer struct {
	rng       *rand.Rand
	tileWall  []mahjong.Tile
	deadWall  []mahjong.Tile
	indicator int // 已翻开的宝牌指示牌数量
}

// NewDealer 创建新的发牌器，rng 为空时使用随机种子
func NewDealer(rng *rand.Rand) *Dealer {
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	return &Dealer{
		rng:      rng,
		tileWall: make([]mahjong.Tile, 0),
	}
}

// Initialize 洗牌并切出岭上牌，excluded 中的牌不进入牌墙
func (d *Dealer) Initialize(excluded []mahjong.Tile) error {
	var used mahjong.Table
	for _, t := range excluded {
		if !t.IsValid() {
			return fmt.Errorf("invalid tile %d", t)
		}
		used.Add(t)
		if used.Count(t) > mahjong.SameTileCount {
			return fmt.Errorf("more than %d copies of %s", mahjong.SameTileCount, t)
		}
	}

	all := mahjong.AllTiles()
	total := len(all)*mahjong.SameTileCount - len(excluded)
	wall := make([]mahjong.Tile, total)

	// 填充并同时随机化牌墙
	i := 0
	for _, tile := range all {
		for range used.Remaining(tile) {
			pos := d.rng.Intn(i + 1)
			if pos != i {
				wall[i] = wall[pos]
			}
			wall[pos] = tile
			i++
		}
	}

	d.deadWall = slices.Clone(wall[total-DeadWallSize:])
	d.tileWall = wall[:total-DeadWallSize]
	d.indicator = 1
	return nil
}

// DrawTile 抽牌，牌墙为空时返回 TileNull
func (d *Dealer) DrawTile() mahjong.Tile {
	if len(d.tileWall) == 0 {
		return mahjong.TileNull
	}
	tile := d.tileWall[0]
	d.tileWall = d.tileWall[1:]
	return tile
}

func (d *Dealer) Deal(count int) []mahjong.Tile {
	tiles := make([]mahjong.Tile, count)
	copy(tiles, d.tileWall[:count])
	d.tileWall = d.tileWall[count:]
	return tiles
}

// RestCount 获取剩余牌数
func (d *Dealer) RestCount() int {
	return len(d.tileWall)
}

func (d *Dealer) Count(tile mahjong.Tile) int {
	count := 0
	for _, t := range d.tileWall {
		if t == tile {
			count++
		}
	}
	return count
}

// DoraIndicators returns the opened indicators.
func (d *Dealer) DoraIndicators() []mahjong.Tile {
	return slices.Clone(d.deadWall[4 : 4+d.indicator])
}

// OpenIndicator 杠后翻开新的宝牌指示牌
func (d *Dealer) OpenIndicator() bool {
	if d.indicator >= maxDoraIndicators/2 {
		return false
	}
	d.indicator++
	return true
}

func (d *Dealer) clone() *Dealer {
	return &Dealer{
		rng:       d.rng,
		tileWall:  slices.Clone(d.tileWall),
		deadWall:  slices.Clone(d.deadWall),
		indicator: d.indicator,
	}
}
