package trainer_test

import (
	"testing"

	"github.com/kevin-chtw/tw_ukeire/mahjong"
	"github.com/kevin-chtw/tw_ukeire/trainer"
)

func Test_Analyze(t *testing.T) {
	hand, err := mahjong.ParseHand("123456789m1334p")
	if err != nil {
		t.Fatal(err)
	}
	a := trainer.Analyze(hand, mahjong.DefaultRules())
	if a.Shanten != 1 {
		t.Errorf("Shanten = %d, want 1", a.Shanten)
	}
	if got := mahjong.TilesShort(a.Tiles); got != "123456p" {
		t.Errorf("Tiles = %s", got)
	}
	if a.Available != 20 {
		t.Errorf("Available = %d, want 20", a.Available)
	}
	if a.Discards != nil {
		t.Error("13 tile hand should not rank discards")
	}
}

func Test_AnalyzeTenpai(t *testing.T) {
	hand, _ := mahjong.ParseHand("123456789m1134p")
	a := trainer.Analyze(hand, mahjong.DefaultRules())
	if a.Shanten != 0 {
		t.Fatalf("Shanten = %d, want 0", a.Shanten)
	}
	if got := mahjong.TilesShort(a.Tiles); got != "25p" {
		t.Errorf("waits = %s", got)
	}
}

func Test_AnalyzeFullHand(t *testing.T) {
	hand, _ := mahjong.ParseHand("123456789m1334p2p")
	a := trainer.Analyze(hand, mahjong.DefaultRules())
	if a.Shanten != 0 {
		t.Fatalf("Shanten = %d, want 0", a.Shanten)
	}
	if len(a.Discards) == 0 {
		t.Error("no ranked discards")
	}
	if len(a.Reducing) == 0 {
		t.Error("drawing 2p reduced shanten but no reducing discards reported")
	}
}
