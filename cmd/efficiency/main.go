package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/fatih/color"
	"github.com/kevin-chtw/tw_ukeire/mahjong"
	"github.com/kevin-chtw/tw_ukeire/utils"
	"github.com/sirupsen/logrus"
	"github.com/topfreegames/pitaya/v3/pkg/logger"
)

func main() {
	hand := flag.String("hand", "", "analyze a 13 or 14 tile hand, e.g. 123456789m1334p")
	play := flag.Bool("play", false, "interactive training in the console")
	bench := flag.Int("bench", 0, "rank this many random hands")
	workers := flag.Int("workers", 4, "parallel workers for -bench")
	seed := flag.Int64("seed", 1, "random seed for -bench")
	noKokushi := flag.Bool("no-kokushi", false, "ignore thirteen orphans")
	noChiitoi := flag.Bool("no-chiitoi", false, "ignore seven pairs")
	verbose := flag.Bool("v", false, "debug logs")
	flag.Parse()

	level := logrus.WarnLevel
	if *verbose {
		level = logrus.DebugLevel
	}
	logger.SetLogger(utils.Logger(level, "./logs", false))

	rules := mahjong.Rules{AllowKokushi: !*noKokushi, AllowChiitoitsu: !*noChiitoi}

	var err error
	switch {
	case *hand != "":
		err = analyzeHand(os.Stdout, *hand, rules)
	case *bench > 0:
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		err = runBench(ctx, os.Stdout, *bench, *workers, *seed, rules)
	case *play:
		err = playConsole(os.Stdin, os.Stdout, rules)
	default:
		flag.Usage()
		return
	}
	if err != nil {
		color.New(color.FgHiRed).Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func printHand(w io.Writer, hand mahjong.Hand) {
	fmt.Fprint(w, hand.String(), "  ")
	color.New(color.FgHiWhite).Fprintln(w, mahjong.TilesUnicode(hand.Tiles()))
}
