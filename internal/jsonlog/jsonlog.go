package jsonlog

import (
	"io"
	"os"
	"runtime/debug"
	"time"

	"github.com/sirupsen/logrus"
)

type Level int8

const (
	LevelDebug Level = iota
	LevelInfo
	LevelError
	LevelFatal
	LevelOff
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelError:
		return "ERROR"
	case LevelFatal:
		return "FATAL"
	default:
		return ""
	}
}

func (l Level) logrusLevel() logrus.Level {
	switch l {
	case LevelDebug:
		return logrus.DebugLevel
	case LevelInfo:
		return logrus.InfoLevel
	case LevelError:
		return logrus.ErrorLevel
	default:
		return logrus.FatalLevel
	}
}

// Logger writes one JSON object per line. Properties are nested under "properties" and
// error-level entries carry a stack trace under "trace".
type Logger struct {
	log      *logrus.Logger
	minLevel Level
}

func New(out io.Writer, minLevel Level) *Logger {
	log := logrus.New()
	log.SetOutput(out)
	if minLevel == LevelOff {
		log.SetOutput(io.Discard)
	}
	log.SetLevel(minLevel.logrusLevel())
	log.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime: "time",
			logrus.FieldKeyMsg:  "message",
		},
	})
	log.ExitFunc = os.Exit

	return &Logger{log: log, minLevel: minLevel}
}

// Discard returns a Logger that drops every entry.
func Discard() *Logger {
	return New(io.Discard, LevelOff)
}

func (l *Logger) PrintDebug(message string, properties map[string]string) {
	l.entry(LevelDebug, properties).Debug(message)
}

func (l *Logger) PrintInfo(message string, properties map[string]string) {
	l.entry(LevelInfo, properties).Info(message)
}

func (l *Logger) PrintError(err error, properties map[string]string) {
	l.entry(LevelError, properties).Error(err.Error())
}

func (l *Logger) PrintFatal(err error, properties map[string]string) {
	l.entry(LevelFatal, properties).Fatal(err.Error())
}

// Write lets the Logger back an http.Server ErrorLog.
func (l *Logger) Write(message []byte) (n int, err error) {
	l.entry(LevelError, nil).Error(string(message))
	return len(message), nil
}

func (l *Logger) entry(level Level, properties map[string]string) *logrus.Entry {
	fields := logrus.Fields{}
	if len(properties) > 0 {
		fields["properties"] = properties
	}
	if level >= LevelError && level < LevelOff && l.minLevel < LevelOff {
		fields["trace"] = string(debug.Stack())
	}

	return l.log.WithFields(fields)
}
