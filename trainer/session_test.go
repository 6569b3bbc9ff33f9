package trainer_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/kevin-chtw/tw_ukeire/trainer"
)

func newSession() *trainer.Session {
	return trainer.NewSession("u1", trainer.DefaultSettings(), rand.New(rand.NewSource(3)))
}

func lastReply(t *testing.T, replies []string) string {
	t.Helper()
	if len(replies) == 0 {
		t.Fatal("no reply")
	}
	return replies[0]
}

func Test_ProcessWithoutHand(t *testing.T) {
	s := newSession()
	testCases := []struct {
		input string
		want  string
	}{
		{"", "No message received"},
		{"3s", "No hand is in progress"},
		{"/hand", "No hand is in progress"},
		{"/discards", "No hand is in progress"},
		{"/explain", "No moves are recorded to explain"},
		{"/settings", "Choose tile display type"},
		{"/start 123m", "Given string doesn't represent a valid hand"},
		{"/start 11111m23456789p", "Given string doesn't represent a valid hand"},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			if got := lastReply(t, s.Process(tc.input)); !strings.HasPrefix(got, tc.want) {
				t.Errorf("Process(%q) = %q, want prefix %q", tc.input, got, tc.want)
			}
		})
	}
}

func Test_ProcessDiscard(t *testing.T) {
	s := newSession()
	if got := lastReply(t, s.Process("/start 123456789m1334p5z")); !strings.HasPrefix(got, "Dealt new hand:\n123456789m1334p5z") {
		t.Fatalf("start reply = %q", got)
	}
	if got := lastReply(t, s.Process("/hand")); got != "Current hand:\n123456789m1334p5z" {
		t.Errorf("hand reply = %q", got)
	}
	if got := lastReply(t, s.Process("xyz")); !strings.HasPrefix(got, "Entered string doesn't seem to be a tile") {
		t.Errorf("bad tile reply = %q", got)
	}
	if got := lastReply(t, s.Process("7z")); got != "Could not find the given tile in the hand\n" {
		t.Errorf("missing tile reply = %q", got)
	}

	replies := s.Process("white")
	got := lastReply(t, replies)
	if !strings.HasPrefix(got, "Discarded white dragon (") {
		t.Errorf("discard reply = %q", got)
	}
	if !strings.Contains(got, "Drew ") || !strings.Contains(got, "tiles left in the live wall") {
		t.Errorf("discard reply without draw: %q", got)
	}
	if len(replies) != 2 {
		t.Errorf("got %d replies, want text and hand", len(replies))
	}

	explain := lastReply(t, s.Process("/explain"))
	if !strings.HasPrefix(explain, "Discarded white dragon\n") || !strings.Contains(explain, "White dragon: ") {
		t.Errorf("explain = %q", explain)
	}
	if !strings.Contains(lastReply(t, s.Process("/discards")), "Discards:\n5z") {
		t.Error("discard pile not shown")
	}
}

func Test_ProcessReachTenpai(t *testing.T) {
	s := newSession()
	s.Process("/start 123456789m1134p5z")

	got := lastReply(t, s.Process("5z"))
	for _, want := range []string{
		"The hand is ready now\n",
		"Waits: 2, 5 pin (",
		"Best discard\n",
		"Average efficiency 100% for 1 turns",
		"Send /start to start new game",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("reply %q does not contain %q", got, want)
		}
	}

	if got := lastReply(t, s.Process("/hand")); !strings.HasPrefix(got, "No hand is in progress") {
		t.Errorf("hand after tenpai = %q", got)
	}
}

func Test_ProcessJapaneseTerms(t *testing.T) {
	s := newSession()
	s.Process("/terms_jap")
	s.Process("/start 123456789m1134p5z")
	got := lastReply(t, s.Process("haku"))
	if !strings.HasPrefix(got, "Tenpai\n") {
		t.Errorf("reply = %q", got)
	}
	if !strings.Contains(got, "Waits: 2, 5 pin") {
		t.Errorf("reply = %q", got)
	}
}

func Test_ProcessSettings(t *testing.T) {
	s := newSession()
	if _, dirty := s.TakeDirtySettings(); dirty {
		t.Fatal("new session reports unsaved settings")
	}

	if got := lastReply(t, s.Process("/toggle_kokushi")); got != "Kokushi musou is now not counted for shanten calculation" {
		t.Errorf("toggle reply = %q", got)
	}
	if got := lastReply(t, s.Process("/toggle_chiitoi")); got != "Chiitoitsu is now not counted for shanten calculation" {
		t.Errorf("toggle reply = %q", got)
	}
	s.Process("/display_unicode")

	settings, dirty := s.TakeDirtySettings()
	if !dirty {
		t.Fatal("settings change not reported")
	}
	if settings.Rules.AllowKokushi || settings.Rules.AllowChiitoitsu {
		t.Errorf("rules = %+v", settings.Rules)
	}
	if settings.Display.Tiles != trainer.DisplayUnicode {
		t.Error("display not switched to unicode")
	}
	if _, dirty := s.TakeDirtySettings(); dirty {
		t.Error("dirty flag not cleared")
	}

	s.Process("/start 123456789m1334p5z")
	if got := lastReply(t, s.Process("/hand")); got != "Current hand:\n\U0001F007\U0001F008\U0001F009\U0001F00A\U0001F00B\U0001F00C\U0001F00D\U0001F00E\U0001F00F\U0001F019\U0001F01B\U0001F01B\U0001F01C\U0001F006" {
		t.Errorf("unicode hand = %q", got)
	}
}

func Test_SettingsJSON(t *testing.T) {
	settings, err := trainer.UnmarshalSettings([]byte(`{"display":{"tiles":1}}`))
	if err != nil {
		t.Fatal(err)
	}
	if settings.Display.Tiles != trainer.DisplayUnicode {
		t.Error("tiles display not decoded")
	}
	if !settings.Rules.AllowKokushi || !settings.Rules.AllowChiitoitsu {
		t.Error("missing rules not defaulted")
	}
	if settings.Display.Language != "ene" {
		t.Errorf("language = %q", settings.Display.Language)
	}

	data, err := settings.Marshal()
	if err != nil {
		t.Fatal(err)
	}
	again, err := trainer.UnmarshalSettings(data)
	if err != nil || again != settings {
		t.Errorf("round trip = %+v, %v", again, err)
	}

	if _, err := trainer.UnmarshalSettings([]byte("{")); err == nil {
		t.Error("broken json accepted")
	}
}
