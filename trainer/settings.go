package trainer

import (
	"encoding/json"

	"github.com/kevin-chtw/tw_ukeire/mahjong"
)

type TileDisplay int

const (
	DisplayText TileDisplay = iota
	DisplayUnicode
)

type Display struct {
	Tiles    TileDisplay   `json:"tiles"`
	Terms    mahjong.Terms `json:"terms"`
	Language string        `json:"language"` // 翻译表的键
}

// Settings 玩家设置，会被持久化
type Settings struct {
	Display Display       `json:"display"`
	Rules   mahjong.Rules `json:"rules"`
}

func DefaultSettings() Settings {
	return Settings{
		Display: Display{
			Tiles:    DisplayText,
			Terms:    mahjong.TermsEnglish,
			Language: languageEnglish,
		},
		Rules: mahjong.DefaultRules(),
	}
}

func (s Settings) Marshal() ([]byte, error) {
	return json.Marshal(s)
}

// UnmarshalSettings fills missing fields from DefaultSettings.
func UnmarshalSettings(data []byte) (Settings, error) {
	s := DefaultSettings()
	if err := json.Unmarshal(data, &s); err != nil {
		return DefaultSettings(), err
	}
	if _, ok := translations[s.Display.Language]; !ok {
		s.Display.Language = languageEnglish
	}
	return s, nil
}
