package mahjong

// ShantenResult is the outcome of one shanten query.
// Waits is a flag table (0/1/2), not a count of copies.
type ShantenResult struct {
	Shanten int
	Waits   Table
}

// shantenCalc 单次查询的搜索状态，不跨调用共享
type shantenCalc struct {
	hand         Table
	waits        Table
	completeSets int
	pair         int
	partialSets  int
	best         int
	bestWaits    Table
}

// CalcShanten returns the minimal shanten of tiles over the shapes enabled
// in rules, and the tiles taking part in any optimal decomposition.
func CalcShanten(tiles []Tile, rules Rules) ShantenResult {
	c := &shantenCalc{
		hand: NewTable(tiles),
		best: MaxShanten,
	}

	if rules.AllowChiitoitsu {
		c.calcChiitoitsu()
		if c.best < 0 {
			return c.result()
		}
	}

	if rules.AllowKokushi {
		// 十三幺向听小于3时，普通型不可能更好
		if c.calcKokushi() < 3 {
			return c.result()
		}
	}

	c.calcStandard()
	return c.result()
}

func (c *shantenCalc) result() ShantenResult {
	return ShantenResult{Shanten: c.best, Waits: c.bestWaits}
}

// record merges the current waits into the best result.
// Returns false when shanten is worse than the best seen.
func (c *shantenCalc) record(shanten int) bool {
	switch {
	case shanten < c.best:
		c.best = shanten
		c.bestWaits = Table{}
		c.bestWaits.absorb(&c.waits)
	case shanten == c.best:
		c.bestWaits.absorb(&c.waits)
	default:
		return false
	}
	return true
}

// step 一次拆牌：从手牌取出的牌、加入听牌表的牌、以及计数变化
type step struct {
	take     [3]int
	nTake    int
	waits    [2]int
	nWaits   int
	complete int
	partial  int
	pair     int
}

func (s *step) addWait(i int) {
	s.waits[s.nWaits] = i
	s.nWaits++
}

func (c *shantenCalc) apply(s *step, sign int) {
	for _, i := range s.take[:s.nTake] {
		c.hand[i] = uint8(int(c.hand[i]) - sign)
	}
	for _, i := range s.waits[:s.nWaits] {
		c.waits[i] = uint8(int(c.waits[i]) + sign)
	}
	c.completeSets += sign * s.complete
	c.partialSets += sign * s.partial
	c.pair += sign * s.pair
}

// try applies s, runs next and always undoes s afterwards.
func (c *shantenCalc) try(s step, next func()) {
	c.apply(&s, 1)
	defer c.apply(&s, -1)
	next()
}

func tripletStep(i int) step {
	return step{take: [3]int{i, i, i}, nTake: 3, complete: 1}
}

func sequenceStep(i int) step {
	return step{take: [3]int{i, i + 1, i + 2}, nTake: 3, complete: 1}
}

// 雀头
func pairStep(i int) step {
	s := step{take: [3]int{i, i}, nTake: 2, pair: 1}
	s.addWait(i)
	return s
}

// 对子搭子
func pairPartialStep(i int) step {
	s := step{take: [3]int{i, i}, nTake: 2, partial: 1}
	s.addWait(i)
	return s
}

// 两面或边张搭子
func sidePartialStep(i int) step {
	s := step{take: [3]int{i, i + 1}, nTake: 2, partial: 1}
	if suitPos(i) != 0 {
		s.addWait(i - 1)
	}
	if suitPos(i) != 7 {
		s.addWait(i + 2)
	}
	return s
}

// 嵌张搭子
func closedPartialStep(i int) step {
	s := step{take: [3]int{i, i + 2}, nTake: 2, partial: 1}
	s.addWait(i + 1)
	return s
}

func canStartSequence(i int) bool {
	return isNumberIndex(i) && suitPos(i) <= 6
}

func (c *shantenCalc) nextTile(i int) int {
	for i < TableSize && c.hand[i] == 0 {
		i++
	}
	return i
}

func (c *shantenCalc) calcStandard() {
	// 标准型只有一个雀头，先逐个尝试
	for i := range c.hand {
		if c.hand[i] >= 2 {
			c.try(pairStep(i), func() { c.removeCompletedSets(0) })
		}
	}
	c.removeCompletedSets(0)
}

func (c *shantenCalc) removeCompletedSets(i int) {
	i = c.nextTile(i)
	if i >= TableSize {
		c.removePotentialSets(0)
		return
	}

	if c.hand[i] >= 3 {
		c.try(tripletStep(i), func() { c.removeCompletedSets(i) })
	}
	if canStartSequence(i) && c.hand[i+1] != 0 && c.hand[i+2] != 0 {
		c.try(sequenceStep(i), func() { c.removeCompletedSets(i) })
	}

	c.removeCompletedSets(i + 1)
}

func (c *shantenCalc) removePotentialSets(i int) {
	i = c.nextTile(i)
	if i >= TableSize {
		shanten := MaxShanten - 2*c.completeSets - c.partialSets - c.pair
		if c.record(shanten) {
			c.flagSingleTiles()
		}
		return
	}

	// 4组面子+雀头，搭子和面子合计不超过4
	if c.completeSets+c.partialSets < 4 {
		if c.hand[i] == 2 {
			c.try(pairPartialStep(i), func() { c.removePotentialSets(i) })
		}
		if isNumberIndex(i) && suitPos(i) <= 7 && c.hand[i+1] != 0 {
			c.try(sidePartialStep(i), func() { c.removePotentialSets(i) })
		}
		if canStartSequence(i) && c.hand[i+2] != 0 {
			c.try(closedPartialStep(i), func() { c.removePotentialSets(i) })
		}
	}

	c.removePotentialSets(i + 1)
}

// flagSingleTiles marks tiles that could pair with or extend a lone tile
// left over after the decomposition.
func (c *shantenCalc) flagSingleTiles() {
	for i := range c.hand {
		if c.hand[i] != 1 {
			continue
		}
		setMax(&c.bestWaits[i], 1)
		if !isNumberIndex(i) {
			continue
		}
		pos := suitPos(i)
		if pos >= 1 {
			setMax(&c.bestWaits[i-1], 1)
		}
		if pos >= 2 {
			setMax(&c.bestWaits[i-2], 1)
		}
		if pos <= 7 {
			setMax(&c.bestWaits[i+1], 1)
		}
		if pos <= 6 {
			setMax(&c.bestWaits[i+2], 1)
		}
	}
}
