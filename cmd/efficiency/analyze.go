package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/kevin-chtw/tw_ukeire/mahjong"
	"github.com/kevin-chtw/tw_ukeire/trainer"
)

func shantenColor(shanten int) color.Attribute {
	switch {
	case shanten < 0:
		return color.FgHiGreen
	case shanten == 0:
		return color.FgHiYellow
	case shanten <= 2:
		return color.FgHiWhite
	default:
		return color.FgHiBlack
	}
}

func printShanten(w io.Writer, shanten int) {
	c := color.New(shantenColor(shanten))
	switch {
	case shanten < 0:
		c.Fprintln(w, "Complete hand")
	case shanten == 0:
		c.Fprintln(w, "Tenpai")
	default:
		c.Fprintf(w, "Shanten: %d\n", shanten)
	}
}

func analyzeHand(w io.Writer, input string, rules mahjong.Rules) error {
	hand, err := mahjong.ParseHand(input)
	if err != nil {
		return err
	}
	a := trainer.Analyze(hand, rules)

	printHand(w, hand)
	printShanten(w, a.Shanten)

	if !hand.IsFull() {
		switch {
		case a.Shanten == 0:
			fmt.Fprintf(w, "Waits: %s (%d tiles)\n", mahjong.TilesText(a.Tiles, mahjong.TermsEnglish), a.Available)
		case a.Shanten > 0:
			fmt.Fprintf(w, "Tiles that can improve shanten: %s, total %d tiles\n", mahjong.TilesText(a.Tiles, mahjong.TermsEnglish), a.Available)
		}
		return nil
	}

	if len(a.Reducing) > 0 {
		fmt.Fprintf(w, "Discards that reduce shanten: %s\n", mahjong.TilesText(a.Reducing, mahjong.TermsEnglish))
	}
	for _, d := range a.Discards {
		c := color.FgWhite
		if d.Score == a.Discards[0].Score {
			c = color.FgHiGreen
		}
		color.New(c).Fprintf(w, "%-3s %6d", d.Tile, d.Score)
		fmt.Fprintf(w, "  %s\n", mahjong.TilesText(d.Improving, mahjong.TermsEnglish))
	}
	return nil
}
