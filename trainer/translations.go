package trainer

const (
	languageEnglish  = "ene" // 英语术语
	languageJapanese = "enj" // 日语术语
)

var translations = map[string]map[string]string{
	languageEnglish: {
		"tenpai_hand": "The hand is ready now",
	},
	languageJapanese: {
		"tenpai_hand": "Tenpai",
	},
}

func translate(key string, settings *Settings) string {
	if table, ok := translations[settings.Display.Language]; ok {
		if text, ok := table[key]; ok {
			return text
		}
	}
	return translations[languageEnglish][key]
}
