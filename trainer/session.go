package trainer

import (
	"fmt"
	"math"
	"math/rand"
	"slices"
	"strings"
	"sync"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/kevin-chtw/tw_ukeire/game"
	"github.com/kevin-chtw/tw_ukeire/mahjong"
	"github.com/topfreegames/pitaya/v3/pkg/logger"
)

const (
	noHandMessage   = "No hand is in progress, send /start to start a new hand"
	badTileMessage  = "Entered string doesn't seem to be a tile representation, tile should be a digit followed by 'm', 'p', 's', or 'z' or a tile name (e.g. all \"7z\", \"red\", and \"chun\" are acceptable inputs for the red dragon tile)"
	badHandMessage  = "Given string doesn't represent a valid hand"
	newGameMessage  = "Send /start to start new game"
	settingsMessage = `Choose tile display type:
/display_text - use text representation of tiles
/display_unicode - use unicode characters of mahjong tiles

Choose terminology:
/terms_eng - English terminology
/terms_jap - Japanese terminology

Choose rules:
/toggle_chiitoi - turn on/off counting for Chiitoitsu
/toggle_kokushi - turn on/off counting for Kokushi musou`
)

const seat = 0 // 练习只有一个玩家

// moveRecord 打牌前的局面，用于 /explain
type moveRecord struct {
	state     *game.State
	shanten   int
	discarded mahjong.Tile
}

// Session 单个玩家的练习状态
type Session struct {
	mu sync.Mutex

	UID      string
	settings Settings
	dirty    bool // 设置有改动，需要保存

	state         *game.State
	currentScore  int
	bestScore     int
	efficiencySum float64
	moves         int
	previous      *moveRecord

	manual     *game.Manual
	rng        *rand.Rand
	lastActive time.Time
}

func NewSession(uid string, settings Settings, rng *rand.Rand) *Session {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Session{
		UID:        uid,
		settings:   settings,
		rng:        rng,
		lastActive: time.Now(),
	}
}

// SetManual makes /start without arguments deal the manual hand while it
// is enabled.
func (s *Session) SetManual(m *game.Manual) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.manual = m
}

func (s *Session) Settings() Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

// TakeDirtySettings returns the settings and clears the dirty flag when they
// changed since the last call.
func (s *Session) TakeDirtySettings() (Settings, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.dirty {
		return s.settings, false
	}
	s.dirty = false
	return s.settings, true
}

// MarkDirty flags the settings as unsaved again, e.g. after a failed save.
func (s *Session) MarkDirty() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dirty = true
}

func (s *Session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActive
}

// Process handles one message and returns the replies in order.
func (s *Session) Process(text string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastActive = time.Now()

	fields := strings.Fields(text)
	if len(fields) == 0 {
		return []string{"No message received"}
	}

	switch fields[0] {
	case "/start":
		return s.start(fields[1:])
	case "/hand":
		if s.state == nil {
			return []string{noHandMessage}
		}
		return []string{"Current hand:\n" + s.handText()}
	case "/discards":
		if s.state == nil {
			return []string{noHandMessage}
		}
		return []string{fmt.Sprintf("Dora indicator: %s\nDiscards:\n%s",
			mahjong.TileName(s.state.DoraIndicators()[0], s.settings.Display.Terms),
			s.tilesText(s.state.Discards[seat]))}
	case "/explain":
		if s.previous == nil {
			return []string{"No moves are recorded to explain"}
		}
		return []string{s.explain()}
	case "/settings":
		return []string{settingsMessage}
	case "/display_text":
		s.settings.Display.Tiles = DisplayText
		s.dirty = true
		return []string{"Set display style to text"}
	case "/display_unicode":
		s.settings.Display.Tiles = DisplayUnicode
		s.dirty = true
		return []string{"Set display style to unicode"}
	case "/terms_eng":
		s.settings.Display.Terms = mahjong.TermsEnglish
		s.settings.Display.Language = languageEnglish
		s.dirty = true
		return []string{"Set terminology to English"}
	case "/terms_jap":
		s.settings.Display.Terms = mahjong.TermsJapanese
		s.settings.Display.Language = languageJapanese
		s.dirty = true
		return []string{"Set terminology to Japanese"}
	case "/toggle_kokushi":
		s.settings.Rules.AllowKokushi = !s.settings.Rules.AllowKokushi
		s.dirty = true
		return []string{fmt.Sprintf("Kokushi musou is now %scounted for shanten calculation", notUnless(s.settings.Rules.AllowKokushi))}
	case "/toggle_chiitoi":
		s.settings.Rules.AllowChiitoitsu = !s.settings.Rules.AllowChiitoitsu
		s.dirty = true
		return []string{fmt.Sprintf("Chiitoitsu is now %scounted for shanten calculation", notUnless(s.settings.Rules.AllowChiitoitsu))}
	}

	if s.state == nil {
		return []string{noHandMessage}
	}
	tile := mahjong.ParseTile(text)
	if tile == mahjong.TileNull {
		return []string{badTileMessage}
	}
	return s.discard(tile)
}

func notUnless(on bool) string {
	if on {
		return ""
	}
	return "not "
}

// start 发新牌：/start [hand[-discards]] [discards]
func (s *Session) start(args []string) []string {
	switch {
	case len(args) > 0:
		handText, discardsText, found := strings.Cut(args[0], "-")
		if !found && len(args) > 1 {
			discardsText = args[1]
		}
		hand, err := mahjong.ParseHand(handText)
		if err != nil {
			logger.Log.Debugf("session %s: %v", s.UID, err)
			return []string{badHandMessage}
		}
		discards, err := mahjong.ParseTiles(discardsText)
		if err != nil {
			return []string{badHandMessage}
		}
		state, err := game.NewStateWithHand(1, hand, discards, true, s.rng)
		if err != nil {
			logger.Log.Debugf("session %s: %v", s.UID, err)
			return []string{badHandMessage}
		}
		s.state = state
	case s.manual.Enabled():
		state, err := s.manual.Deal(1, true, s.rng)
		if err != nil {
			logger.Log.Errorf("manual deal failed: %v", err)
			s.state = game.NewState(1, true, s.rng)
		} else {
			s.state = state
		}
	default:
		s.state = game.NewState(1, true, s.rng)
	}

	s.currentScore = 0
	s.bestScore = 0
	s.efficiencySum = 0
	s.moves = 0
	s.previous = nil
	logger.Log.Infof("session %s dealt %s", s.UID, s.state.Hands[seat])

	return []string{fmt.Sprintf("Dealt new hand:\n%s\nDora indicator: %s",
		s.handText(), mahjong.TileName(s.state.DoraIndicators()[0], s.settings.Display.Terms))}
}

func (s *Session) discard(tile mahjong.Tile) []string {
	state := s.state
	rules := s.settings.Rules
	terms := s.settings.Display.Terms
	hand := &state.Hands[seat]
	if !hand.IsFull() {
		return []string{"The hand has no tile to discard, send /start to start a new hand"}
	}

	fullShanten := mahjong.CalcShanten(hand.Tiles(), rules).Shanten
	visible := state.VisibleTiles(seat)
	ranked := mahjong.Ukeire2(hand.Tiles(), fullShanten, &visible, rules)
	best := mahjong.BestDiscardScores(ranked)

	var answer strings.Builder
	slot := hand.Index(tile)
	if slot < 0 {
		answer.WriteString("Could not find the given tile in the hand\n")
		return []string{answer.String(), s.handText()}
	}

	s.previous = &moveRecord{state: state.Clone(), shanten: fullShanten}
	discarded := state.Discard(seat, slot)
	s.previous.discarded = discarded
	score := mahjong.DiscardScore(ranked, discarded)

	s.bestScore += best.Score
	s.currentScore += score
	if best.Score > 0 {
		s.efficiencySum += float64(score) / float64(best.Score)
	}
	s.moves++

	closed := hand.Closed()
	after := mahjong.CalcShanten(closed, rules)
	if after.Shanten > 0 {
		fmt.Fprintf(&answer, "Discarded %s (%d/%d)\n", mahjong.TileName(discarded, terms), score, best.Score)
		if mahjong.HasPotentialFuriten(&after.Waits, state.Discards[seat]) {
			answer.WriteString("Possible furiten\n")
		}
	} else {
		answer.WriteString(translate("tenpai_hand", &s.settings))
		answer.WriteString("\n")
		waits := mahjong.FinishingTiles(closed, after.Waits.Flatten(), rules)
		visible = state.VisibleTiles(seat)
		fmt.Fprintf(&answer, "Waits: %s (%d tiles)", mahjong.TilesText(waits, terms), mahjong.AvailableCount(&visible, waits))
		if mahjong.HasFuritenWaits(waits, state.Discards[seat]) {
			answer.WriteString(" furiten")
		}
		answer.WriteString("\n")
	}

	switch {
	case after.Shanten > fullShanten:
		answer.WriteString("Went back in shanten\n")
	case slices.Contains(best.Tiles, discarded):
		answer.WriteString("Best discard\n")
	default:
		fmt.Fprintf(&answer, "Better discards: %s\n", capitalize(mahjong.TilesText(best.Tiles, terms)))
	}

	if after.Shanten <= 0 {
		if s.bestScore > 0 {
			fmt.Fprintf(&answer, "Score: %d/%d\nAverage efficiency %d%% for %d turns",
				s.currentScore, s.bestScore, s.efficiency(), s.moves)
		} else {
			fmt.Fprintf(&answer, "Some error occurred, best possible score was zero, current score: %d", s.currentScore)
		}
		logger.Log.Infof("session %s finished: %d/%d in %d moves", s.UID, s.currentScore, s.bestScore, s.moves)
		s.state = nil
		answer.WriteString("\n" + newGameMessage)
		return []string{answer.String()}
	}

	if state.LiveWallCount() == 0 {
		s.state = nil
		answer.WriteString("\nEnd of live wall, no more tiles left\n" + newGameMessage)
		return []string{answer.String()}
	}

	drawn := state.Draw(seat)
	fmt.Fprintf(&answer, "Drew %s\n%d tiles left in the live wall\n", mahjong.TileName(drawn, terms), state.LiveWallCount())
	return []string{answer.String(), s.handText()}
}

// efficiency 平均效率百分比，向下取整
func (s *Session) efficiency() int {
	if s.moves == 0 {
		return 0
	}
	return int(math.Floor(100 * s.efficiencySum / float64(s.moves)))
}

// explain 列出上一步所有打法的得分
func (s *Session) explain() string {
	prev := s.previous
	hand := prev.state.Hands[seat]
	if !hand.IsFull() {
		panic("recorded move has no 14th tile")
	}

	visible := prev.state.VisibleTiles(seat)
	ranked := mahjong.Ukeire2(hand.Tiles(), prev.shanten, &visible, s.settings.Rules)
	if len(ranked) == 0 {
		return "No appropriate discards. This shouldn't happen. Please report this error to the developers"
	}

	terms := s.settings.Display.Terms
	var b strings.Builder
	fmt.Fprintf(&b, "Discarded %s\n", mahjong.TileName(prev.discarded, terms))
	for _, d := range ranked {
		fmt.Fprintf(&b, "%s: %d (%s)\n", capitalize(mahjong.TileName(d.Tile, terms)), d.Score, mahjong.TilesText(d.Improving, terms))
	}
	return b.String()
}

func (s *Session) handText() string {
	return s.tilesText(s.state.Hands[seat].Tiles())
}

func (s *Session) tilesText(tiles []mahjong.Tile) string {
	if s.settings.Display.Tiles == DisplayUnicode {
		return mahjong.TilesUnicode(tiles)
	}
	return mahjong.TilesShort(tiles)
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
