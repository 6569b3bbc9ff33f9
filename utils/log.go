package utils

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"github.com/sirupsen/logrus"
	"github.com/topfreegames/pitaya/v3/pkg/logger/interfaces"
	logruswrapper "github.com/topfreegames/pitaya/v3/pkg/logger/logrus"
)

const (
	logMaxAge   = 7 * 24 * time.Hour
	logRotation = 24 * time.Hour
)

type Formatter struct{}

func (f *Formatter) Format(entry *logrus.Entry) ([]byte, error) {
	timestamp := entry.Time.Format(time.DateTime)
	level := strings.ToLower(entry.Level.String())

	var b strings.Builder
	fmt.Fprintf(&b, "%s [%s]", timestamp, level)
	if entry.Caller != nil {
		fileName := filepath.Base(entry.Caller.File)
		funcName := entry.Caller.Function
		funcName = funcName[strings.LastIndex(funcName, ".")+1:]
		fmt.Fprintf(&b, " %s:%d %s", fileName, entry.Caller.Line, funcName)
	}
	b.WriteString(" ")
	b.WriteString(entry.Message)

	// 字段按名字排序输出
	keys := make([]string, 0, len(entry.Data))
	for k := range entry.Data {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, entry.Data[k])
	}
	b.WriteString("\n")
	return []byte(b.String()), nil
}

// Logger 日志写入 dir 下按天轮转的文件，console 为真时同时输出到标准输出
func Logger(level logrus.Level, dir string, console bool) interfaces.Logger {
	l := logrus.New()
	writer, err := getWriter(dir)
	if err != nil {
		logrus.Fatalf("Failed to create log writer: %v", err)
	}
	if console {
		l.SetOutput(io.MultiWriter(writer, os.Stdout))
	} else {
		l.SetOutput(writer)
	}
	l.SetReportCaller(true)
	l.Formatter = &Formatter{}
	l.SetLevel(level)
	return logruswrapper.NewWithFieldLogger(l)
}

func getWriter(dir string) (*SafeRotateLogs, error) {
	programName := filepath.Base(os.Args[0])
	if dir == "" {
		dir = "./logs"
	}
	logFile := filepath.Join(dir, fmt.Sprintf("%s-%%Y%%m%%d.log", programName))
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	s := &SafeRotateLogs{logPattern: logFile}
	if err := s.reopen(); err != nil {
		return nil, err
	}
	return s, nil
}

// SafeRotateLogs 日志文件被删除后重新创建
type SafeRotateLogs struct {
	*rotatelogs.RotateLogs
	logPattern string
}

func (s *SafeRotateLogs) reopen() error {
	writer, err := rotatelogs.New(
		s.logPattern,
		rotatelogs.WithMaxAge(logMaxAge),
		rotatelogs.WithRotationTime(logRotation),
	)
	if err != nil {
		return fmt.Errorf("failed to create log writer: %w", err)
	}
	s.RotateLogs = writer
	return nil
}

func (s *SafeRotateLogs) Write(p []byte) (n int, err error) {
	current := s.RotateLogs.CurrentFileName()
	if current != "" {
		if _, err := os.Stat(current); os.IsNotExist(err) {
			if err := s.reopen(); err != nil {
				return 0, err
			}
		}
	}
	return s.RotateLogs.Write(p)
}
