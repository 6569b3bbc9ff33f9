package mahjong

import (
	"errors"
	"fmt"
	"slices"
)

// Hand 0-12 为手牌，13 为摸到的牌，未摸牌时为 TileNull
type Hand [HandSize]Tile

func EmptyHand() Hand {
	var h Hand
	for i := range h {
		h[i] = TileNull
	}
	return h
}

func NewHand(tiles []Tile) Hand {
	if len(tiles) > HandSize {
		panic(fmt.Sprintf("hand cannot hold %d tiles", len(tiles)))
	}
	h := EmptyHand()
	copy(h[:], tiles)
	return h
}

func (h *Hand) IsFull() bool {
	return h[ClosedHandSize] != TileNull
}

// Closed returns a copy of slots 0-12.
func (h *Hand) Closed() []Tile {
	return slices.Clone(h[:ClosedHandSize])
}

// Tiles returns a copy of all filled slots.
func (h *Hand) Tiles() []Tile {
	if h.IsFull() {
		return slices.Clone(h[:])
	}
	return h.Closed()
}

func (h *Hand) Sort() {
	if h.IsFull() {
		slices.Sort(h[:])
	} else {
		slices.Sort(h[:ClosedHandSize])
	}
}

// Index returns the slot holding tile or -1.
func (h *Hand) Index(tile Tile) int {
	if !tile.IsValid() {
		return -1
	}
	return slices.Index(h[:], tile)
}

func (h Hand) String() string {
	return TilesShort(h.Tiles())
}

var (
	ErrDigitWithoutSuit = errors.New("tile values must be followed by a suit letter")
	ErrSuitWithoutDigit = errors.New("suit letter without tile values")
)

// ParseTiles reads compact notation such as "123m456p77z".
func ParseTiles(s string) ([]Tile, error) {
	var tiles []Tile
	var values []int
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= '1' && c <= '9' {
			values = append(values, int(c-'0'))
			continue
		}
		suit, ok := suitFromLetter(c)
		if !ok {
			return nil, fmt.Errorf("unexpected character %q at %d", c, i)
		}
		if len(values) == 0 {
			return nil, ErrSuitWithoutDigit
		}
		for _, v := range values {
			t := MakeTile(suit, v)
			if !t.IsValid() {
				return nil, fmt.Errorf("no tile %d%c", v, c)
			}
			tiles = append(tiles, t)
		}
		values = values[:0]
	}
	if len(values) > 0 {
		return nil, ErrDigitWithoutSuit
	}
	return tiles, nil
}

// ParseHand reads a 13 or 14 tile hand. Tiles keep the input order.
func ParseHand(s string) (Hand, error) {
	tiles, err := ParseTiles(s)
	if err != nil {
		return EmptyHand(), fmt.Errorf("parse hand %q: %w", s, err)
	}
	if len(tiles) != ClosedHandSize && len(tiles) != HandSize {
		return EmptyHand(), fmt.Errorf("hand %q has %d tiles, want 13 or 14", s, len(tiles))
	}
	table := NewTable(tiles)
	for _, t := range tiles {
		if table.Count(t) > SameTileCount {
			return EmptyHand(), fmt.Errorf("hand %q has more than %d of %s", s, SameTileCount, t)
		}
	}
	return NewHand(tiles), nil
}
