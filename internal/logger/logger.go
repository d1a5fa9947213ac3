package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Logger interface for structured logging
type Logger interface {
	Debug(msg string, fields ...interface{})
	Info(msg string, fields ...interface{})
	Warn(msg string, fields ...interface{})
	Error(msg string, fields ...interface{})
	Fatal(msg string, fields ...interface{})
	WithField(key string, value interface{}) Logger
	WithFields(fields map[string]interface{}) Logger
}

type logrusLogger struct {
	*logrus.Logger
}

// New creates a new logger instance
func New(level, format string) Logger {
	log := logrus.New()

	// Set log level
	switch level {
	case "debug":
		log.SetLevel(logrus.DebugLevel)
	case "info":
		log.SetLevel(logrus.InfoLevel)
	case "warn":
		log.SetLevel(logrus.WarnLevel)
	case "error":
		log.SetLevel(logrus.ErrorLevel)
	default:
		log.SetLevel(logrus.InfoLevel)
	}

	// Set format
	if format == "json" {
		log.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02T15:04:05.000Z",
		})
	} else {
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
			ForceColors:     true,
		})
	}

	log.SetOutput(os.Stdout)

	return &logrusLogger{log}
}

// NewNop returns a logger that discards all output, for use in tests
func NewNop() Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return &logrusLogger{log}
}

func (l *logrusLogger) Debug(msg string, fields ...interface{}) {
	l.Logger.WithFields(parseFields(fields...)).Debug(msg)
}

func (l *logrusLogger) Info(msg string, fields ...interface{}) {
	l.Logger.WithFields(parseFields(fields...)).Info(msg)
}

func (l *logrusLogger) Warn(msg string, fields ...interface{}) {
	l.Logger.WithFields(parseFields(fields...)).Warn(msg)
}

func (l *logrusLogger) Error(msg string, fields ...interface{}) {
	l.Logger.WithFields(parseFields(fields...)).Error(msg)
}

func (l *logrusLogger) Fatal(msg string, fields ...interface{}) {
	l.Logger.WithFields(parseFields(fields...)).Fatal(msg)
}

func (l *logrusLogger) WithField(key string, value interface{}) Logger {
	return &entryLogger{l.Logger.WithField(key, value)}
}

func (l *logrusLogger) WithFields(fields map[string]interface{}) Logger {
	return &entryLogger{l.Logger.WithFields(fields)}
}

// entryLogger carries accumulated fields on a logrus entry
type entryLogger struct {
	entry *logrus.Entry
}

func (e *entryLogger) Debug(msg string, fields ...interface{}) {
	e.entry.WithFields(parseFields(fields...)).Debug(msg)
}

func (e *entryLogger) Info(msg string, fields ...interface{}) {
	e.entry.WithFields(parseFields(fields...)).Info(msg)
}

func (e *entryLogger) Warn(msg string, fields ...interface{}) {
	e.entry.WithFields(parseFields(fields...)).Warn(msg)
}

func (e *entryLogger) Error(msg string, fields ...interface{}) {
	e.entry.WithFields(parseFields(fields...)).Error(msg)
}

func (e *entryLogger) Fatal(msg string, fields ...interface{}) {
	e.entry.WithFields(parseFields(fields...)).Fatal(msg)
}

func (e *entryLogger) WithField(key string, value interface{}) Logger {
	return &entryLogger{e.entry.WithField(key, value)}
}

func (e *entryLogger) WithFields(fields map[string]interface{}) Logger {
	return &entryLogger{e.entry.WithFields(fields)}
}

func parseFields(fields ...interface{}) logrus.Fields {
	result := make(logrus.Fields)

	for i := 0; i < len(fields)-1; i += 2 {
		if key, ok := fields[i].(string); ok {
			result[key] = fields[i+1]
		}
	}

	return result
}
