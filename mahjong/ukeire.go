package mahjong

import (
	"fmt"
	"slices"
)

func mustHandSize(tiles []Tile, size int, caller string) {
	if len(tiles) != size {
		panic(fmt.Sprintf("%s expects %d tiles, got %d", caller, size, len(tiles)))
	}
	if slices.Contains(tiles, TileNull) {
		panic(fmt.Sprintf("%s got an empty tile slot: %s", caller, TilesShort(tiles)))
	}
}

// eachDiscard calls fn once per distinct tile of hand with the hand left
// after discarding it. Tiles come in sorted order.
func eachDiscard(hand []Tile, fn func(discard Tile, reduced []Tile)) {
	full := slices.Clone(hand)
	slices.Sort(full)
	prev := TileNull
	for i, tile := range full {
		if tile == prev {
			continue
		}
		reduced := slices.Delete(slices.Clone(full), i, i+1)
		fn(tile, reduced)
		prev = tile
	}
}

// ImprovingTiles keeps the candidates that lower the shanten of a 13-tile hand.
func ImprovingTiles(hand []Tile, candidates []Tile, current int, rules Rules) []Tile {
	mustHandSize(hand, ClosedHandSize, "ImprovingTiles")
	return filterExtensions(hand, candidates, rules, func(shanten int) bool {
		return shanten < current
	})
}

// FinishingTiles keeps the candidates that complete a 13-tile hand.
func FinishingTiles(hand []Tile, candidates []Tile, rules Rules) []Tile {
	mustHandSize(hand, ClosedHandSize, "FinishingTiles")
	return filterExtensions(hand, candidates, rules, func(shanten int) bool {
		return shanten < 0
	})
}

func filterExtensions(hand []Tile, candidates []Tile, rules Rules, keep func(int) bool) []Tile {
	extended := append(slices.Clone(hand), TileNull)
	var result []Tile
	for _, tile := range candidates {
		extended[ClosedHandSize] = tile
		if keep(CalcShanten(extended, rules).Shanten) {
			result = append(result, tile)
		}
	}
	return result
}

// ReducingDiscards lists the discards from a 14-tile hand that leave a hand
// better than current.
func ReducingDiscards(hand []Tile, current int, rules Rules) []Tile {
	mustHandSize(hand, HandSize, "ReducingDiscards")
	var result []Tile
	eachDiscard(hand, func(discard Tile, reduced []Tile) {
		if CalcShanten(reduced, rules).Shanten < current {
			result = append(result, discard)
		}
	})
	return result
}

// AvailableCount 可摸到的张数总和，相邻重复的牌只计一次
func AvailableCount(visible *Table, tiles []Tile) int {
	count := 0
	prev := TileNull
	for _, tile := range tiles {
		if tile == prev {
			continue
		}
		count += visible.Remaining(tile)
		prev = tile
	}
	return count
}

// Ukeire1 ranks the discards of a 14-tile hand that keep minShanten by the
// number of drawable tiles improving the remaining hand.
func Ukeire1(hand []Tile, minShanten int, visible *Table, rules Rules) []WeightedDiscard {
	mustHandSize(hand, HandSize, "Ukeire1")

	discards := make([]WeightedDiscard, 0, HandSize)
	eachDiscard(hand, func(discard Tile, reduced []Tile) {
		res := CalcShanten(reduced, rules)
		if res.Shanten != minShanten {
			return
		}
		improving := ImprovingTiles(reduced, res.Waits.Flatten(), minShanten, rules)
		score := AvailableCount(visible, improving)
		if score == 0 {
			return
		}
		discards = append(discards, WeightedDiscard{
			Tile:      discard,
			Improving: improving,
			Score:     score,
		})
	})

	sortWeightedDiscards(discards)
	return discards
}

// Ukeire2 ranks discards by looking one draw further: every improving tile
// is drawn hypothetically and the best ukeire-1 score of the resulting hand
// is weighted by the copies of that tile still available.
// visible is restored before Ukeire2 returns.
func Ukeire2(hand []Tile, minShanten int, visible *Table, rules Rules) []WeightedDiscard {
	mustHandSize(hand, HandSize, "Ukeire2")

	if minShanten <= 0 {
		return Ukeire1(hand, minShanten, visible, rules)
	}

	discards := make([]WeightedDiscard, 0, HandSize)
	eachDiscard(hand, func(discard Tile, reduced []Tile) {
		res := CalcShanten(reduced, rules)
		if res.Shanten != minShanten {
			return
		}
		improving := ImprovingTiles(reduced, res.Waits.Flatten(), minShanten, rules)

		score := 0
		for _, tile := range improving {
			remaining := visible.Remaining(tile)
			if remaining == 0 {
				continue
			}
			drawn := append(slices.Clip(reduced), tile)
			visible.Hold(tile, func() {
				if next := Ukeire1(drawn, minShanten-1, visible, rules); len(next) > 0 {
					score += next[0].Score * remaining
				}
			})
		}

		discards = append(discards, WeightedDiscard{
			Tile:      discard,
			Improving: improving,
			Score:     score,
		})
	})

	sortWeightedDiscards(discards)
	return discards
}
