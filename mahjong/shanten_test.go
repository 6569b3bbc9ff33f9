package mahjong_test

import (
	"math/rand"
	"slices"
	"sync"
	"testing"

	"github.com/kevin-chtw/tw_ukeire/mahjong"
)

func Test_CalcShanten(t *testing.T) {
	testCases := []struct {
		name    string
		hand    string
		rules   mahjong.Rules
		shanten int
		waits   string
	}{
		{
			name:    "one shanten",
			hand:    "123456789m1334p",
			rules:   mahjong.DefaultRules(),
			shanten: 1,
			waits:   "123456p",
		},
		{
			name:    "two shanten",
			hand:    "122456789m1369p",
			rules:   mahjong.DefaultRules(),
			shanten: 2,
			waits:   "1234m2456789p",
		},
		{
			// 已有对子，单张不再计入，只听缺的 7z
			name:    "kokushi with pair",
			hand:    "19m19p19s1234566z",
			rules:   mahjong.DefaultRules(),
			shanten: 0,
			waits:   "7z",
		},
		{
			name:    "kokushi tenpai",
			hand:    "19m19p19s1234567z",
			rules:   mahjong.DefaultRules(),
			shanten: 0,
			waits:   "19m19p19s1234567z",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := mahjong.CalcShanten(mustTiles(t, tc.hand), tc.rules)
			if got.Shanten != tc.shanten {
				t.Errorf("CalcShanten(%s) = %d, want %d", tc.hand, got.Shanten, tc.shanten)
			}
			want := mustTiles(t, tc.waits)
			if waits := got.Waits.Flatten(); !slices.Equal(waits, want) {
				t.Errorf("waits of %s = %s, want %s", tc.hand, mahjong.TilesShort(waits), tc.waits)
			}
		})
	}
}

func Test_CalcShantenComplete(t *testing.T) {
	testCases := []struct {
		name  string
		hand  string
		rules mahjong.Rules
	}{
		{"standard", "123m456p789s11122z", mahjong.Rules{}},
		{"seven pairs", "1122m3344p5566s77z", mahjong.DefaultRules()},
		{"thirteen orphans", "19m19p19s12345677z", mahjong.DefaultRules()},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := mahjong.CalcShanten(mustTiles(t, tc.hand), tc.rules).Shanten; got != -1 {
				t.Errorf("CalcShanten(%s) = %d, want -1", tc.hand, got)
			}
		})
	}
}

func Test_CalcShantenRules(t *testing.T) {
	pairs := mustTiles(t, "1122m3344p5566s77z")
	if got := mahjong.CalcShanten(pairs, mahjong.Rules{}).Shanten; got < 0 {
		t.Errorf("seven pairs counted as complete with chiitoitsu disabled: %d", got)
	}

	orphans := mustTiles(t, "19m19p19s1234567z")
	if got := mahjong.CalcShanten(orphans, mahjong.Rules{AllowChiitoitsu: true}).Shanten; got <= 0 {
		t.Errorf("thirteen orphans counted as tenpai with kokushi disabled: %d", got)
	}
}

func Test_CalcShantenWaitFlags(t *testing.T) {
	res := mahjong.CalcShanten(mustTiles(t, "123456789m1334p"), mahjong.DefaultRules())
	for i, n := range res.Waits {
		if n > 2 {
			t.Errorf("waits[%d] = %d, flags must not exceed 2", i, n)
		}
	}
}

func Test_CalcShantenParallel(t *testing.T) {
	hands := []string{"123456789m1334p", "122456789m1369p", "19m19p19s1234567z", "1122m3344p5566s77z"}
	want := make([]mahjong.ShantenResult, len(hands))
	for i, h := range hands {
		want[i] = mahjong.CalcShanten(mustTiles(t, h), mahjong.DefaultRules())
	}

	var wg sync.WaitGroup
	errs := make(chan string, len(hands)*8)
	for range 8 {
		for i, h := range hands {
			tiles := mustTiles(t, h)
			wg.Add(1)
			go func() {
				defer wg.Done()
				if got := mahjong.CalcShanten(tiles, mahjong.DefaultRules()); got != want[i] {
					errs <- h
				}
			}()
		}
	}
	wg.Wait()
	close(errs)
	for h := range errs {
		t.Errorf("parallel CalcShanten(%s) differs from sequential result", h)
	}
}

func Test_CalcShantenSentinelPanics(t *testing.T) {
	tiles := mustTiles(t, "123456789m133p")
	tiles = append(tiles, mahjong.TileNull)
	defer func() {
		if recover() == nil {
			t.Error("CalcShanten with an empty slot did not panic")
		}
	}()
	mahjong.CalcShanten(tiles, mahjong.DefaultRules())
}

func Test_CalcShantenSevenPairsWaits(t *testing.T) {
	res := mahjong.CalcShanten(mustTiles(t, "1122m3344p5566s77z"), mahjong.DefaultRules())
	if res.Shanten != -1 {
		t.Fatalf("CalcShanten = %d, want -1", res.Shanten)
	}
	// 七对子直接返回，标准型的雀头和搭子不会出现在听牌表中
	if res.Waits != (mahjong.Table{}) {
		t.Errorf("waits of complete seven pairs = %s, want none", mahjong.TilesShort(res.Waits.Flatten()))
	}
}

func Test_CalcShantenShapesNeverWorse(t *testing.T) {
	wall := make([]mahjong.Tile, 0, 136)
	for _, tile := range mahjong.AllTiles() {
		wall = append(wall, mahjong.MakeTiles(tile, mahjong.SameTileCount)...)
	}

	rng := rand.New(rand.NewSource(20240601))
	for i := range 2000 {
		rng.Shuffle(len(wall), func(a, b int) { wall[a], wall[b] = wall[b], wall[a] })
		size := mahjong.ClosedHandSize + i%2
		hand := slices.Clone(wall[:size])

		all := mahjong.CalcShanten(hand, mahjong.DefaultRules()).Shanten
		standard := mahjong.CalcShanten(hand, mahjong.Rules{}).Shanten
		if all > standard {
			t.Fatalf("CalcShanten(%s) = %d with all shapes, %d with standard only", mahjong.TilesShort(hand), all, standard)
		}
	}
}
