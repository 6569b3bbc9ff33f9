package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/kevin-chtw/tw_ukeire/mahjong"
	"github.com/kevin-chtw/tw_ukeire/trainer"
)

const playUsage = `Send a tile to discard (e.g. "1m", "red", "san sou"), /start [hand] for a new hand,
/explain for the scores of the last move, /settings for options, q to quit`

func playConsole(in io.Reader, out io.Writer, rules mahjong.Rules) error {
	settings := trainer.DefaultSettings()
	settings.Rules = rules
	s := trainer.NewSession("console", settings, nil)
	fmt.Fprintln(out, playUsage)
	for _, reply := range s.Process("/start") {
		fmt.Fprintln(out, reply)
	}

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "":
			continue
		case "q", "/quit":
			fmt.Fprintln(out, "Quitting")
			return nil
		}
		for _, reply := range s.Process(line) {
			fmt.Fprintln(out, reply)
		}
	}
	return scanner.Err()
}
