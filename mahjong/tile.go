package mahjong

import "fmt"

// TileNull 空牌位，不能进入向听计算
var TileNull Tile = -1

type Tile int32

func MakeTile(suit Suit, value int) Tile {
	return Tile(int(suit)<<4 | value)
}

func (t Tile) Suit() Suit {
	return Suit((t >> 4) & 0x0F)
}

func (t Tile) Value() int {
	return int(t & 0x0F)
}

func (t Tile) Info() (Suit, int) {
	return t.Suit(), t.Value()
}

func (t Tile) IsValid() bool {
	if t <= 0 {
		return false
	}
	s, v := t.Info()
	return v >= 1 && v <= s.Count()
}

func (t Tile) IsNumber() bool { // 数牌
	return t.IsValid() && t.Suit().IsNumber()
}

func (t Tile) IsHonor() bool { // 字牌
	return t.IsValid() && t.Suit() == SuitHonor
}

func (t Tile) IsTerminalOrHonor() bool { // 幺九牌
	if !t.IsValid() {
		return false
	}
	return t.IsHonor() || t.Value() == 1 || t.Value() == 9
}

// String returns the short notation, e.g. "3s" or "7z".
func (t Tile) String() string {
	if !t.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%d%c", t.Value(), t.Suit().Letter())
}

// Index maps a tile to its slot in a Table.
func Index(t Tile) int {
	if !t.IsValid() {
		panic(fmt.Sprintf("invalid tile %d has no table index", t))
	}
	return int(t.Suit())*suitSlotWidth + t.Value() - 1
}

// TileFromIndex is the inverse of Index.
func TileFromIndex(i int) Tile {
	if i < 0 || i >= TableSize || IsPaddingIndex(i) {
		panic(fmt.Sprintf("index %d does not map to a tile", i))
	}
	if i >= honorIndexBegin {
		return MakeTile(SuitHonor, i-honorIndexBegin+1)
	}
	return MakeTile(Suit(i/suitSlotWidth), i%suitSlotWidth+1)
}

// IsPaddingIndex reports the unused last slot of a number suit block.
func IsPaddingIndex(i int) bool {
	return isNumberIndex(i) && suitPos(i) == suitSlotWidth-1
}

func isNumberIndex(i int) bool {
	return i < honorIndexBegin
}

func suitPos(i int) int {
	return i % suitSlotWidth
}

// AllTiles returns every tile kind in table order.
func AllTiles() []Tile {
	tiles := make([]Tile, 0, 34)
	for s := SuitMan; s < SuitEnd; s++ {
		for v := 1; v <= s.Count(); v++ {
			tiles = append(tiles, MakeTile(s, v))
		}
	}
	return tiles
}

func MakeTiles(t Tile, count int) []Tile {
	if count <= 0 {
		return []Tile{}
	}
	res := make([]Tile, count)
	for i := range res {
		res[i] = t
	}
	return res
}
