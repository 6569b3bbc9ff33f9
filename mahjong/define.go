package mahjong

type Suit int

const (
	SuitMan   Suit = iota // 万
	SuitPin               // 筒
	SuitSou               // 索
	SuitHonor             // 字牌
	SuitEnd
)

var valueCountBySuit = [SuitEnd]int{9, 9, 9, 7}
var suitLetters = [SuitEnd]byte{'m', 'p', 's', 'z'}

// Count 该花色的牌值个数
func (s Suit) Count() int {
	if s < SuitMan || s >= SuitEnd {
		return 0
	}
	return valueCountBySuit[s]
}

// IsNumber 数牌花色
func (s Suit) IsNumber() bool {
	return s >= SuitMan && s <= SuitSou
}

func (s Suit) Letter() byte {
	if s < SuitMan || s >= SuitEnd {
		return '?'
	}
	return suitLetters[s]
}

func suitFromLetter(c byte) (Suit, bool) {
	for s, l := range suitLetters {
		if l == c {
			return Suit(s), true
		}
	}
	return SuitEnd, false
}

const (
	HandSize        = 14
	ClosedHandSize  = 13
	SameTileCount   = 4
	TableSize       = 37
	MaxShanten      = 8
	suitSlotWidth   = 10 // 每个数牌花色占10格，最后一格不用
	honorIndexBegin = 30
)

const (
	HonorEast  = 1
	HonorSouth = 2
	HonorWest  = 3
	HonorNorth = 4
	HonorWhite = 5
	HonorGreen = 6
	HonorRed   = 7
)

// 幺九牌下标
var terminalHonorIndexes = [13]int{0, 8, 10, 18, 20, 28, 30, 31, 32, 33, 34, 35, 36}
