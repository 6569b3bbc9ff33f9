package game

import (
	"errors"
	"fmt"
	"math/rand"
	"slices"

	"github.com/kevin-chtw/tw_ukeire/mahjong"
)

var ErrEmptyHand = errors.New("predefined hand is empty")

// State 一局练习的牌桌状态
type State struct {
	Hands        []mahjong.Hand
	Discards     [][]mahjong.Tile
	DiscardTable mahjong.Table // 所有玩家打出的牌
	dealer       *Dealer
}

// NewState deals a fresh game for players seats. Seat 0 draws its 14th tile
// when drawFirst is set.
func NewState(players int, drawFirst bool, rng *rand.Rand) *State {
	s := &State{dealer: NewDealer(rng)}
	// 完整牌墙不会失败
	_ = s.dealer.Initialize(nil)
	s.deal(0, players)
	if drawFirst {
		s.Draw(0)
	}
	return s
}

// NewStateWithHand gives seat 0 the predefined hand and puts discards into
// its discard pile. Both are taken out of the wall before shuffling.
func NewStateWithHand(players int, hand mahjong.Hand, discards []mahjong.Tile, drawFirst bool, rng *rand.Rand) (*State, error) {
	if hand[0] == mahjong.TileNull {
		return nil, ErrEmptyHand
	}

	s := &State{dealer: NewDealer(rng)}
	excluded := append(hand.Tiles(), discards...)
	if err := s.dealer.Initialize(excluded); err != nil {
		return nil, fmt.Errorf("deal hand %s: %w", hand, err)
	}

	hand.Sort()
	s.Hands = append(s.Hands, hand)
	s.Discards = append(s.Discards, nil)
	s.deal(1, players)

	for _, t := range discards {
		s.Discards[0] = append(s.Discards[0], t)
		s.DiscardTable.Add(t)
	}

	if drawFirst && !s.Hands[0].IsFull() {
		s.Draw(0)
	}
	return s, nil
}

func (s *State) deal(from, players int) {
	for range players - from {
		h := mahjong.NewHand(s.dealer.Deal(mahjong.ClosedHandSize))
		h.Sort()
		s.Hands = append(s.Hands, h)
		s.Discards = append(s.Discards, nil)
	}
}

// Draw 摸牌放入第14张位置，牌墙为空时返回 TileNull
func (s *State) Draw(seat int) mahjong.Tile {
	tile := s.dealer.DrawTile()
	s.Hands[seat][mahjong.ClosedHandSize] = tile
	return tile
}

// Discard removes the tile at slot, closes the gap and keeps the hand sorted.
func (s *State) Discard(seat, slot int) mahjong.Tile {
	hand := &s.Hands[seat]
	tile := hand[slot]
	copy(hand[slot:], hand[slot+1:])
	hand[mahjong.ClosedHandSize] = mahjong.TileNull
	hand.Sort()

	s.DiscardTable.Add(tile)
	s.Discards[seat] = append(s.Discards[seat], tile)
	return tile
}

// VisibleTiles counts what seat can see: every discard, its own hand and
// the opened dora indicators.
func (s *State) VisibleTiles(seat int) mahjong.Table {
	visible := s.DiscardTable
	for _, t := range s.Hands[seat].Tiles() {
		visible.Add(t)
	}
	for _, t := range s.dealer.DoraIndicators() {
		visible.Add(t)
	}
	return visible
}

func (s *State) LiveWallCount() int {
	return s.dealer.RestCount()
}

func (s *State) DoraIndicators() []mahjong.Tile {
	return s.dealer.DoraIndicators()
}

// Clone returns a deep copy that shares only the random source.
func (s *State) Clone() *State {
	c := &State{
		Hands:        slices.Clone(s.Hands),
		Discards:     make([][]mahjong.Tile, len(s.Discards)),
		DiscardTable: s.DiscardTable,
		dealer:       s.dealer.clone(),
	}
	for i, d := range s.Discards {
		c.Discards[i] = slices.Clone(d)
	}
	return c
}
