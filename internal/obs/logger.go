package obs

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

type Level int

const (
	Debug Level = iota
	Info
	Warn
	Error
)

func (l Level) String() string {
	switch l {
	case Debug:
		return "DEBUG"
	case Info:
		return "INFO"
	case Warn:
		return "WARN"
	case Error:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Logger is a minimal logging interface for observability.
type Logger interface {
	Logf(level Level, format string, args ...interface{})
}

// NopLogger discards all logs.
type NopLogger struct{}

func (NopLogger) Logf(level Level, format string, args ...interface{}) {}

// LogrusLogger forwards to a logrus entry.
type LogrusLogger struct {
	E *logrus.Entry
}

func (l LogrusLogger) Logf(level Level, format string, args ...interface{}) {
	if l.E == nil {
		return
	}
	switch level {
	case Debug:
		l.E.Debugf(format, args...)
	case Info:
		l.E.Infof(format, args...)
	case Warn:
		l.E.Warnf(format, args...)
	default:
		l.E.Errorf(format, args...)
	}
}

// NewLogrus builds a configured logrus-backed logger with a named entry.
// level accepts logrus level names; empty or unparseable values fall back
// to info.
func NewLogrus(name, level string) LogrusLogger {
	lg := logrus.New()
	lg.SetOutput(os.Stdout)
	lg.SetFormatter(&logrus.TextFormatter{
		ForceQuote:      true,
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   true,
	})
	lvl, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		lvl = logrus.InfoLevel
	}
	lg.SetLevel(lvl)
	return LogrusLogger{E: lg.WithFields(logrus.Fields{"logName": name})}
}
