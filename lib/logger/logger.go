package logger

import (
	"io"
	"os"
	"sync/atomic"

	charmlog "github.com/charmbracelet/log"
)

type Level string

const (
	DebugLevel Level = "debug"
	InfoLevel  Level = "info"
	WarnLevel  Level = "warn"
	ErrorLevel Level = "error"
)

func (l Level) charmLevel() charmlog.Level {
	switch l {
	case DebugLevel:
		return charmlog.DebugLevel
	case WarnLevel:
		return charmlog.WarnLevel
	case ErrorLevel:
		return charmlog.ErrorLevel
	default:
		return charmlog.InfoLevel
	}
}

// Logger is the subset of the charm logger used by wordgram.
type Logger interface {
	Debug(msg interface{}, keyvals ...interface{})
	Info(msg interface{}, keyvals ...interface{})
	Warn(msg interface{}, keyvals ...interface{})
	Error(msg interface{}, keyvals ...interface{})
}

type Config struct {
	Level  Level
	Output io.Writer
	JSON   bool
}

func New(cfg Config) *charmlog.Logger {
	if cfg.Output == nil {
		cfg.Output = os.Stderr
	}
	l := charmlog.NewWithOptions(cfg.Output, charmlog.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Level:           cfg.Level.charmLevel(),
	})
	if cfg.JSON {
		l.SetFormatter(charmlog.JSONFormatter)
	}
	return l
}

var defaultLogger atomic.Pointer[charmlog.Logger]

func init() {
	defaultLogger.Store(New(Config{Level: InfoLevel}))
}

func Default() *charmlog.Logger {
	return defaultLogger.Load()
}

func SetDefault(l *charmlog.Logger) {
	defaultLogger.Store(l)
}

// Discard returns a logger that drops everything.
func Discard() *charmlog.Logger {
	return New(Config{Output: io.Discard, Level: ErrorLevel})
}
