package trainer

import (
	"github.com/kevin-chtw/tw_ukeire/mahjong"
)

// Analysis 单手牌的牌效分析
type Analysis struct {
	Hand    mahjong.Hand
	Shanten int
	// 13张时：进张（听牌时为和牌张）
	Tiles     []mahjong.Tile
	Available int
	// 14张时：按二层进张排序的打法
	Discards []mahjong.WeightedDiscard
	// 14张时：能减少向听的打法
	Reducing []mahjong.Tile
}

// Analyze evaluates a hand as if only its own tiles were visible.
func Analyze(hand mahjong.Hand, rules mahjong.Rules) Analysis {
	tiles := hand.Tiles()
	visible := mahjong.NewTable(tiles)
	res := mahjong.CalcShanten(tiles, rules)
	a := Analysis{Hand: hand, Shanten: res.Shanten}

	if !hand.IsFull() {
		switch {
		case res.Shanten > 0:
			a.Tiles = mahjong.ImprovingTiles(tiles, res.Waits.Flatten(), res.Shanten, rules)
		case res.Shanten == 0:
			a.Tiles = mahjong.FinishingTiles(tiles, res.Waits.Flatten(), rules)
		}
		a.Available = mahjong.AvailableCount(&visible, a.Tiles)
		return a
	}

	a.Discards = mahjong.Ukeire2(tiles, res.Shanten, &visible, rules)
	// 与13张时的向听比较
	closed := mahjong.CalcShanten(hand.Closed(), rules).Shanten
	if res.Shanten < closed {
		a.Reducing = mahjong.ReducingDiscards(tiles, closed, rules)
	}
	return a
}
