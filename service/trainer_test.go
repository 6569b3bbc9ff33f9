package service

import (
	"testing"

	"github.com/kevin-chtw/tw_ukeire/mahjong"
	"github.com/kevin-chtw/tw_ukeire/trainer"
)

func Test_NewMessageAck(t *testing.T) {
	ack, err := newMessageAck("u1", []string{"Dealt new hand", "123m"})
	if err != nil {
		t.Fatal(err)
	}
	fields := ack.GetFields()
	if fields["uid"].GetStringValue() != "u1" {
		t.Errorf("uid = %v", fields["uid"])
	}
	replies := fields["replies"].GetListValue().GetValues()
	if len(replies) != 2 || replies[1].GetStringValue() != "123m" {
		t.Errorf("replies = %v", replies)
	}
}

func Test_NewAnalysisAck(t *testing.T) {
	hand, err := mahjong.ParseHand("123456789m1334p2p")
	if err != nil {
		t.Fatal(err)
	}
	ack, err := newAnalysisAck(trainer.Analyze(hand, mahjong.DefaultRules()))
	if err != nil {
		t.Fatal(err)
	}
	fields := ack.GetFields()
	if fields["hand"].GetStringValue() != "123456789m13342p" {
		t.Errorf("hand = %v", fields["hand"])
	}
	if fields["shanten"].GetNumberValue() != 0 {
		t.Errorf("shanten = %v", fields["shanten"])
	}
	discards := fields["discards"].GetListValue().GetValues()
	if len(discards) == 0 {
		t.Fatal("no discards in ack")
	}
	first := discards[0].GetStructValue().GetFields()
	if first["tile"].GetStringValue() == "" || first["score"].GetNumberValue() <= 0 {
		t.Errorf("first discard = %v", first)
	}
}
