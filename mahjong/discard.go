package mahjong

import (
	"cmp"
	"slices"
)

type WeightedDiscard struct {
	Tile      Tile   `json:"tile"`
	Improving []Tile `json:"improving"` // 打出后能减少向听的牌
	Score     int    `json:"score"`
}

// DiscardScores 最高分及所有同分的打法
type DiscardScores struct {
	Tiles []Tile
	Score int
}

// 分数从高到低，同分保持原顺序
func sortWeightedDiscards(discards []WeightedDiscard) {
	slices.SortStableFunc(discards, func(a, b WeightedDiscard) int {
		return cmp.Compare(b.Score, a.Score)
	})
}

// BestDiscardScores expects discards sorted by Ukeire1/Ukeire2.
func BestDiscardScores(discards []WeightedDiscard) DiscardScores {
	if len(discards) == 0 {
		return DiscardScores{}
	}
	result := DiscardScores{Score: discards[0].Score}
	for _, d := range discards {
		if d.Score < result.Score {
			break
		}
		result.Tiles = append(result.Tiles, d.Tile)
	}
	return result
}

func DiscardScore(discards []WeightedDiscard, tile Tile) int {
	for _, d := range discards {
		if d.Tile == tile {
			return d.Score
		}
	}
	return 0
}

// HasFuritenWaits 听的牌中有自己打过的牌
func HasFuritenWaits(waits []Tile, discards []Tile) bool {
	discardTable := NewTable(discards)
	for _, tile := range waits {
		if discardTable.Count(tile) > 0 {
			return true
		}
	}
	return false
}

// HasPotentialFuriten reports a discarded tile that is flagged above 1 in
// the waits table of a shanten result. It is a weaker signal than
// HasFuritenWaits and does not imply it.
func HasPotentialFuriten(waits *Table, discards []Tile) bool {
	for _, tile := range discards {
		if waits.Count(tile) > 1 {
			return true
		}
	}
	return false
}
