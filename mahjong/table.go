package mahjong

import "fmt"

// Table 每种牌的张数，下标见 Index
type Table [TableSize]uint8

// NewTable counts tiles into a Table. Empty slots are a programming error.
func NewTable(tiles []Tile) Table {
	var t Table
	for _, tile := range tiles {
		if !tile.IsValid() {
			panic(fmt.Sprintf("incorrect tile %d in %s", tile, TilesShort(tiles)))
		}
		t[Index(tile)]++
	}
	return t
}

func (t *Table) Count(tile Tile) int {
	return int(t[Index(tile)])
}

func (t *Table) Add(tile Tile) {
	t[Index(tile)]++
}

func (t *Table) Total() int {
	total := 0
	for _, n := range t {
		total += int(n)
	}
	return total
}

// Remaining 还可能摸到的张数
func (t *Table) Remaining(tile Tile) int {
	return max(0, SameTileCount-t.Count(tile))
}

// Flatten returns one tile per populated slot, in table order.
func (t *Table) Flatten() []Tile {
	var tiles []Tile
	for i, n := range t {
		if n > 0 {
			tiles = append(tiles, TileFromIndex(i))
		}
	}
	return tiles
}

// Hold counts tile as seen while fn runs.
func (t *Table) Hold(tile Tile, fn func()) {
	i := Index(tile)
	t[i]++
	defer func() { t[i]-- }()
	fn()
}

// absorb flags every slot set in other with 2, keeping larger values.
func (t *Table) absorb(other *Table) {
	for i, n := range other {
		if n > 0 {
			setMax(&t[i], 2)
		}
	}
}

func setMax(v *uint8, n uint8) {
	*v = max(*v, n)
}
