package utils_test

import (
	"runtime"
	"testing"
	"time"

	"github.com/kevin-chtw/tw_ukeire/utils"
	"github.com/sirupsen/logrus"
)

func Test_Formatter(t *testing.T) {
	entry := &logrus.Entry{
		Time:    time.Date(2024, 5, 1, 8, 30, 0, 0, time.UTC),
		Level:   logrus.InfoLevel,
		Message: "dealt hand",
		Data:    logrus.Fields{"uid": "u1", "shanten": 2},
	}

	f := &utils.Formatter{}
	got, err := f.Format(entry)
	if err != nil {
		t.Fatal(err)
	}
	if want := "2024-05-01 08:30:00 [info] dealt hand shanten=2 uid=u1\n"; string(got) != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}

	entry.Caller = &runtime.Frame{File: "/src/trainer/session.go", Line: 42, Function: "github.com/x/trainer.(*Session).start"}
	got, _ = f.Format(entry)
	if want := "2024-05-01 08:30:00 [info] session.go:42 start dealt hand shanten=2 uid=u1\n"; string(got) != want {
		t.Errorf("Format() with caller = %q, want %q", got, want)
	}
}
