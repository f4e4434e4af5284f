package logger

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

const (
	// EnvLevel enables logging to stdout at the given level (debug, warn, error).
	EnvLevel = "DEBUG_CASC"
	// EnvFailFast turns every warning and error into a fatal exit.
	EnvFailFast = "WARNFAIL_CASC"
)

var (
	log      *Logger
	once     sync.Once
	failFast string
)

type Logger struct {
	*logrus.Logger
}

type Entry struct {
	*logrus.Entry
}

func (l *Logger) Warn(args ...interface{}) {
	warnFatal(args...)
	l.Logger.Warn(args...)
}

func (l *Logger) Warnf(format string, args ...interface{}) {
	warnFatalf(format, args...)
	l.Logger.Warnf(format, args...)
}

func (l *Logger) Error(args ...interface{}) {
	warnFatal(args...)
	l.Logger.Error(args...)
}

func (l *Logger) Errorf(format string, args ...interface{}) {
	warnFatalf(format, args...)
	l.Logger.Errorf(format, args...)
}

func (l *Logger) WithField(key string, value interface{}) *Entry {
	return &Entry{l.Logger.WithField(key, value)}
}

func (l *Logger) WithFields(fields logrus.Fields) *Entry {
	return &Entry{l.Logger.WithFields(fields)}
}

func (l *Logger) WithError(err error) *Entry {
	return &Entry{l.Logger.WithError(err)}
}

func (e *Entry) WithField(key string, value interface{}) *Entry {
	return &Entry{e.Entry.WithField(key, value)}
}

func (e *Entry) WithFields(fields logrus.Fields) *Entry {
	return &Entry{e.Entry.WithFields(fields)}
}

func (e *Entry) WithError(err error) *Entry {
	return &Entry{e.Entry.WithError(err)}
}

func (e *Entry) Warn(args ...interface{}) {
	warnFatal(args...)
	e.Entry.Warn(args...)
}

func (e *Entry) Error(args ...interface{}) {
	warnFatal(args...)
	e.Entry.Error(args...)
}

func warnFatal(args ...interface{}) {
	if failFast != "" {
		log.Logger.Fatal(args...)
	}
}

func warnFatalf(format string, args ...interface{}) {
	if failFast != "" {
		log.Logger.Fatalf(format, args...)
	}
}

// ParseLevel maps the level names accepted in DEBUG_CASC and in the
// configuration file to a logrus level. Unknown names enable debug output.
func ParseLevel(name string) logrus.Level {
	switch strings.ToLower(name) {
	case "debug":
		return logrus.DebugLevel
	case "info":
		return logrus.InfoLevel
	case "warn":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	default:
		return logrus.DebugLevel
	}
}

// SetLevel enables logging to stdout at the named level. An empty name
// leaves the current configuration untouched.
func SetLevel(name string) {
	if name == "" {
		return
	}
	l := GetGoCascLogger()
	l.SetOutput(os.Stdout)
	l.Logger.SetLevel(ParseLevel(name))
}

func InitializeGoCascLogger() {
	once.Do(func() {
		log = &Logger{Logger: logrus.New()}
		// silent unless asked for
		log.SetOutput(io.Discard)
		log.Logger.SetLevel(logrus.PanicLevel)
		if logLevel := os.Getenv(EnvLevel); logLevel != "" {
			failFast = os.Getenv(EnvFailFast)
			if failFast != "" {
				logLevel = "debug"
			}
			log.SetOutput(os.Stdout)
			log.Logger.SetLevel(ParseLevel(logLevel))
			log.WithField("level", log.GetLevel()).Debug("Logging enabled.")
		}
	})
}

// GetGoCascLogger returns the initialized Logger
func GetGoCascLogger() *Logger {
	if log == nil {
		InitializeGoCascLogger()
	}
	return log
}

func init() {
	InitializeGoCascLogger()
}
