package mahjong_test

import (
	"errors"
	"testing"

	"github.com/kevin-chtw/tw_ukeire/mahjong"
)

func Test_ParseHand(t *testing.T) {
	testCases := []struct {
		input   string
		wantErr bool
		full    bool
	}{
		{"123456789m1334p", false, false},
		{"123456789m1334p7z", false, true},
		{"123456789m133p", true, false},
		{"123456789m1334p77z", true, false},
		{"123456789m1334", true, false},
		{"123456789m1334p8z", true, false},
		{"11111m23456789p", true, false},
		{"123x456789m1334p", true, false},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			hand, err := mahjong.ParseHand(tc.input)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParseHand(%q) error = %v, wantErr %v", tc.input, err, tc.wantErr)
			}
			if err != nil {
				return
			}
			if hand.IsFull() != tc.full {
				t.Errorf("IsFull() = %v, want %v", hand.IsFull(), tc.full)
			}
			if got := hand.String(); got != tc.input {
				t.Errorf("String() = %q, want %q", got, tc.input)
			}
		})
	}
}

func Test_ParseTilesErrors(t *testing.T) {
	if _, err := mahjong.ParseTiles("123"); !errors.Is(err, mahjong.ErrDigitWithoutSuit) {
		t.Errorf("ParseTiles(123) error = %v", err)
	}
	if _, err := mahjong.ParseTiles("m123p"); !errors.Is(err, mahjong.ErrSuitWithoutDigit) {
		t.Errorf("ParseTiles(m123p) error = %v", err)
	}
	if tiles, err := mahjong.ParseTiles(""); err != nil || len(tiles) != 0 {
		t.Errorf("ParseTiles(\"\") = %v, %v", tiles, err)
	}
}

func Test_HandSort(t *testing.T) {
	hand, err := mahjong.ParseHand("987654321m4331p")
	if err != nil {
		t.Fatal(err)
	}
	hand.Sort()
	if got := hand.String(); got != "123456789m1334p" {
		t.Errorf("sorted hand = %s", got)
	}
	if hand[mahjong.ClosedHandSize] != mahjong.TileNull {
		t.Error("sorting a 13 tile hand touched the draw slot")
	}
	if hand.Index(mahjong.MakeTile(mahjong.SuitPin, 3)) != 10 {
		t.Errorf("Index(3p) = %d, want 10", hand.Index(mahjong.MakeTile(mahjong.SuitPin, 3)))
	}
	if hand.Index(mahjong.TileNull) != -1 {
		t.Error("Index(TileNull) should be -1")
	}
}

func Test_ParseTile(t *testing.T) {
	red := mahjong.MakeTile(mahjong.SuitHonor, mahjong.HonorRed)
	testCases := []struct {
		input string
		want  mahjong.Tile
	}{
		{"3s", mahjong.MakeTile(mahjong.SuitSou, 3)},
		{"7z", red},
		{"red", red},
		{"Chun", red},
		{"three sou", mahjong.MakeTile(mahjong.SuitSou, 3)},
		{"san sou", mahjong.MakeTile(mahjong.SuitSou, 3)},
		{"ii wan", mahjong.MakeTile(mahjong.SuitMan, 1)},
		{" 9p ", mahjong.MakeTile(mahjong.SuitPin, 9)},
		{"8z", mahjong.TileNull},
		{"0m", mahjong.TileNull},
		{"three", mahjong.TileNull},
		{"three sou pin", mahjong.TileNull},
		{"", mahjong.TileNull},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			if got := mahjong.ParseTile(tc.input); got != tc.want {
				t.Errorf("ParseTile(%q) = %s, want %s", tc.input, got, tc.want)
			}
		})
	}
}

func Test_TilesText(t *testing.T) {
	tiles := mustTiles(t, "123m5p1z")
	if got := mahjong.TilesText(tiles, mahjong.TermsEnglish); got != "1, 2, 3 man, 5 pin, east wind" {
		t.Errorf("english text = %q", got)
	}
	if got := mahjong.TilesText(tiles, mahjong.TermsJapanese); got != "1, 2, 3 wan, 5 pin, ton" {
		t.Errorf("japanese text = %q", got)
	}
	if got := mahjong.TilesText(nil, mahjong.TermsEnglish); got != "" {
		t.Errorf("empty text = %q", got)
	}
}

func Test_TilesUnicode(t *testing.T) {
	if got := mahjong.TilesUnicode(mustTiles(t, "1m9p1s567z")); got != "\U0001F007\U0001F021\U0001F010\U0001F006\U0001F005\U0001F004" {
		t.Errorf("TilesUnicode = %q", got)
	}
}

func Test_TileName(t *testing.T) {
	north := mahjong.MakeTile(mahjong.SuitHonor, mahjong.HonorNorth)
	if got := mahjong.TileName(north, mahjong.TermsJapanese); got != "pei" {
		t.Errorf("TileName(4z) = %q", got)
	}
	if got := mahjong.TileName(mahjong.MakeTile(mahjong.SuitPin, 2), mahjong.TermsEnglish); got != "two of pin" {
		t.Errorf("TileName(2p) = %q", got)
	}
}
