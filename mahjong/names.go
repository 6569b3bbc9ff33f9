package mahjong

import (
	"strconv"
	"strings"
)

type Terms int

const (
	TermsEnglish Terms = iota
	TermsJapanese
)

var englishNames = [TableSize]string{
	"one of man", "two of man", "three of man", "four of man", "five of man", "six of man", "seven of man", "eight of man", "nine of man", "",
	"one of pin", "two of pin", "three of pin", "four of pin", "five of pin", "six of pin", "seven of pin", "eight of pin", "nine of pin", "",
	"one of sou", "two of sou", "three of sou", "four of sou", "five of sou", "six of sou", "seven of sou", "eight of sou", "nine of sou", "",
	"east wind", "south wind", "west wind", "north wind", "white dragon", "green dragon", "red dragon",
}

var japaneseNames = [TableSize]string{
	"ii wan", "ryan wan", "san wan", "suu wan", "uu wan", "rou wan", "chii wan", "paa wan", "kyuu wan", "",
	"ii pin", "ryan pin", "san pin", "suu pin", "uu pin", "rou pin", "chii pin", "paa pin", "kyuu pin", "",
	"ii sou", "ryan sou", "san sou", "suu sou", "uu sou", "rou sou", "chii sou", "paa sou", "kyuu sou", "",
	"ton", "nan", "shaa", "pei", "haku", "hatsu", "chun",
}

// 字牌名称
var honorNames = map[string]Tile{
	"east":  MakeTile(SuitHonor, HonorEast),
	"south": MakeTile(SuitHonor, HonorSouth),
	"west":  MakeTile(SuitHonor, HonorWest),
	"north": MakeTile(SuitHonor, HonorNorth),
	"white": MakeTile(SuitHonor, HonorWhite),
	"green": MakeTile(SuitHonor, HonorGreen),
	"red":   MakeTile(SuitHonor, HonorRed),
	"ton":   MakeTile(SuitHonor, HonorEast),
	"nan":   MakeTile(SuitHonor, HonorSouth),
	"shaa":  MakeTile(SuitHonor, HonorWest),
	"pei":   MakeTile(SuitHonor, HonorNorth),
	"haku":  MakeTile(SuitHonor, HonorWhite),
	"hatsu": MakeTile(SuitHonor, HonorGreen),
	"chun":  MakeTile(SuitHonor, HonorRed),
}

var suitNames = map[string]Suit{
	"man": SuitMan,
	"wan": SuitMan,
	"pin": SuitPin,
	"sou": SuitSou,
}

var valueNames = map[string]int{
	"1": 1, "2": 2, "3": 3, "4": 4, "5": 5, "6": 6, "7": 7, "8": 8, "9": 9,
	"one": 1, "two": 2, "three": 3, "four": 4, "five": 5, "six": 6, "seven": 7, "eight": 8, "nine": 9,
	"ii": 1, "ryan": 2, "san": 3, "suu": 4, "uu": 5, "rou": 6, "chii": 7, "paa": 8, "kyuu": 9,
	"ichi": 1, "ni": 2, "yon": 4, "go": 5, "roku": 6, "nana": 7, "hachi": 8, "kyu": 9,
}

// ParseTile reads one tile as typed by a user: "3s", "three sou", "san sou",
// "chun" or "red". Unknown input gives TileNull.
func ParseTile(input string) Tile {
	input = strings.ToLower(strings.TrimSpace(input))
	if t, ok := honorNames[input]; ok {
		return t
	}

	if len(input) == 2 {
		suit, ok := suitFromLetter(input[1])
		if !ok || input[0] < '1' || input[0] > '9' {
			return TileNull
		}
		return validOrNull(MakeTile(suit, int(input[0]-'0')))
	}

	parts := strings.Fields(input)
	if len(parts) != 2 {
		return TileNull
	}
	value, ok := valueNames[parts[0]]
	if !ok {
		return TileNull
	}
	suit, ok := suitNames[parts[1]]
	if !ok {
		return TileNull
	}
	return validOrNull(MakeTile(suit, value))
}

func validOrNull(t Tile) Tile {
	if !t.IsValid() {
		return TileNull
	}
	return t
}

func TileName(t Tile, terms Terms) string {
	if !t.IsValid() {
		return ""
	}
	if terms == TermsJapanese {
		return japaneseNames[Index(t)]
	}
	return englishNames[Index(t)]
}

func suitName(s Suit, terms Terms) string {
	switch s {
	case SuitMan:
		if terms == TermsJapanese {
			return "wan"
		}
		return "man"
	case SuitPin:
		return "pin"
	case SuitSou:
		return "sou"
	default:
		return ""
	}
}

// TilesText groups tiles by suit: "1, 2, 3 man, 5 pin, east wind".
func TilesText(tiles []Tile, terms Terms) string {
	var b strings.Builder
	lastSuit := SuitHonor
	for _, t := range tiles {
		if !t.IsValid() {
			break
		}
		if b.Len() > 0 {
			if t.Suit() != lastSuit && lastSuit != SuitHonor {
				b.WriteString(" ")
				b.WriteString(suitName(lastSuit, terms))
			}
			b.WriteString(", ")
		}
		lastSuit = t.Suit()
		if t.IsHonor() {
			b.WriteString(TileName(t, terms))
		} else {
			b.WriteString(strconv.Itoa(t.Value()))
		}
	}
	if b.Len() > 0 && lastSuit != SuitHonor {
		b.WriteString(" ")
		b.WriteString(suitName(lastSuit, terms))
	}
	return b.String()
}

// TilesShort writes compact notation, the inverse of ParseTiles for runs
// of equal suit: "123m55z".
func TilesShort(tiles []Tile) string {
	var b strings.Builder
	lastSuit := SuitEnd
	for _, t := range tiles {
		if !t.IsValid() {
			continue
		}
		if lastSuit != SuitEnd && t.Suit() != lastSuit {
			b.WriteByte(lastSuit.Letter())
		}
		lastSuit = t.Suit()
		b.WriteString(strconv.Itoa(t.Value()))
	}
	if lastSuit != SuitEnd {
		b.WriteByte(lastSuit.Letter())
	}
	return b.String()
}

// TilesUnicode renders tiles with the Mahjong Tiles unicode block.
func TilesUnicode(tiles []Tile) string {
	var b strings.Builder
	for _, t := range tiles {
		if !t.IsValid() {
			continue
		}
		b.WriteRune(tileRune(t))
	}
	return b.String()
}

func tileRune(t Tile) rune {
	v := rune(t.Value() - 1)
	switch t.Suit() {
	case SuitMan:
		return 0x1F007 + v
	case SuitSou:
		return 0x1F010 + v
	case SuitPin:
		return 0x1F019 + v
	default:
		// 东南西北 then 中发白 in reverse order of the tile values
		if t.Value() <= HonorNorth {
			return 0x1F000 + v
		}
		return 0x1F006 - rune(t.Value()-HonorWhite)
	}
}
