package mahjong

// Rules 向听计算时允许的特殊牌型
type Rules struct {
	AllowKokushi    bool `json:"allow_kokushi" yaml:"allow_kokushi" mapstructure:"allow_kokushi"`
	AllowChiitoitsu bool `json:"allow_chiitoitsu" yaml:"allow_chiitoitsu" mapstructure:"allow_chiitoitsu"`
}

func DefaultRules() Rules {
	return Rules{AllowKokushi: true, AllowChiitoitsu: true}
}
