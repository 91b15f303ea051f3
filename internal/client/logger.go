package client

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/sanity-io/litter"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

const logfile = "gudangc.log"

// nolint:deadcode,unused
func debug(v any, verbose ...bool) {
	if len(verbose) > 0 && verbose[0] {
		NewLogger().Println(litter.Sdump(v))
		return
	}
	NewLogger().Println(v)
}

// NewLogger returns a logger writing to a rotated file in the current
// directory. Stdout stays clean for the command's own output.
func NewLogger() logrus.StdLogger {
	formatter := new(logFormatter)

	log := logrus.New()
	log.SetOutput(io.Discard)
	log.SetFormatter(formatter)
	log.Hooks.Add(&fileHook{
		rotate: &lumberjack.Logger{
			Filename:   logfile,
			MaxSize:    20, // megabytes
			MaxBackups: 2,
			MaxAge:     10, // days
		},
		formatter: formatter,
	})

	return log
}

// fileHook forwards every entry to the rotated logfile.
type fileHook struct {
	sync.Mutex
	rotate    *lumberjack.Logger
	formatter logrus.Formatter
}

// Fire implements logrus.Hook.
func (hook *fileHook) Fire(entry *logrus.Entry) error {
	hook.Lock()
	defer hook.Unlock()

	msg, err := hook.formatter.Format(entry)
	if err != nil {
		return err
	}

	_, err = hook.rotate.Write(msg)
	return err
}

// Levels implements logrus.Hook.
func (hook *fileHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

type logFormatter struct{}

// Format implements logrus.Formatter. Fields are sorted so entries diff
// cleanly between runs.
func (f *logFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	fields := ""
	if len(entry.Data) > 0 {
		fs := make([]string, 0, len(entry.Data))
		for k, v := range entry.Data {
			fs = append(fs, fmt.Sprintf("%s=%v", k, v))
		}
		sort.Strings(fs)
		fields = fmt.Sprintf(" (%s)", strings.Join(fs, ", "))
	}

	data := fmt.Sprintf("[%s] %+5s: %s%s\n",
		time.Now().Format(time.RFC3339),
		strings.ToUpper(entry.Level.String()),
		entry.Message,
		fields,
	)
	return []byte(data), nil
}
