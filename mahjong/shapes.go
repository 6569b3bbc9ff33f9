package mahjong

// calcChiitoitsu 七对子向听
func (c *shantenCalc) calcChiitoitsu() {
	pairCount := 0
	distinct := 0
	for i := range c.hand {
		if c.hand[i] == 0 {
			continue
		}
		distinct++
		if c.hand[i] >= 2 {
			pairCount++
		} else {
			c.waits[i] += 2
		}
	}

	shanten := 6 - pairCount
	if distinct < 7 {
		shanten += 7 - distinct
	}

	c.record(shanten)
	c.waits = Table{}
}

// calcKokushi 十三幺向听，返回该牌型自身的向听数
func (c *shantenCalc) calcKokushi() int {
	distinct := 0
	hasPair := false
	for _, i := range terminalHonorIndexes {
		if c.hand[i] == 0 {
			c.waits[i] += 2
			continue
		}
		distinct++
		if c.hand[i] >= 2 {
			hasPair = true
		} else {
			c.waits[i]++
		}
	}

	shanten := 13 - distinct
	if hasPair {
		shanten--
		// 已有对子，不需要再凑对
		for _, i := range terminalHonorIndexes {
			if c.waits[i] == 1 {
				c.waits[i] = 0
			}
		}
	}

	c.record(shanten)
	c.waits = Table{}
	return shanten
}
