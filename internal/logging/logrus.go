package logging

import (
	"strings"

	"github.com/sirupsen/logrus"
)

// logrusAdapter backs the Logger interface with logrus, keeping the rest of
// the codebase decoupled from the framework.
type logrusAdapter struct {
	logger *logrus.Logger
	entry  *logrus.Entry
}

// New creates a Logger with the given level ("debug", "info", "warn",
// "error") and format ("text" or "json"). Invalid values fall back to
// info/text rather than failing.
func New(level, format string) Logger {
	logger := logrus.New()

	logLevel, err := logrus.ParseLevel(strings.ToLower(level))
	if err != nil {
		logger.Warnf("Invalid log level '%s', using 'info'", level)
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	if strings.ToLower(format) == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	return &logrusAdapter{logger: logger, entry: logrus.NewEntry(logger)}
}

// FromLogrus wraps an existing logrus.Logger.
func FromLogrus(logger *logrus.Logger) Logger {
	if logger == nil {
		logger = logrus.New()
	}
	return &logrusAdapter{logger: logger, entry: logrus.NewEntry(logger)}
}

// Default returns an info-level text logger.
func Default() Logger {
	return New("info", "text")
}

func (l *logrusAdapter) Debug(msg string, fields ...Field) {
	l.entry.WithFields(convertFields(fields)).Debug(msg)
}

func (l *logrusAdapter) Info(msg string, fields ...Field) {
	l.entry.WithFields(convertFields(fields)).Info(msg)
}

func (l *logrusAdapter) Warn(msg string, fields ...Field) {
	l.entry.WithFields(convertFields(fields)).Warn(msg)
}

func (l *logrusAdapter) Error(msg string, fields ...Field) {
	l.entry.WithFields(convertFields(fields)).Error(msg)
}

func (l *logrusAdapter) WithError(err error) Logger {
	return &logrusAdapter{logger: l.logger, entry: l.entry.WithError(err)}
}

func (l *logrusAdapter) WithField(key string, value interface{}) Logger {
	return &logrusAdapter{logger: l.logger, entry: l.entry.WithField(key, value)}
}

func (l *logrusAdapter) WithFields(fields ...Field) Logger {
	return &logrusAdapter{logger: l.logger, entry: l.entry.WithFields(convertFields(fields))}
}

func convertFields(fields []Field) logrus.Fields {
	out := make(logrus.Fields, len(fields))
	for _, f := range fields {
		out[f.Key] = f.Value
	}
	return out
}
