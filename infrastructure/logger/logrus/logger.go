// ABOUTME: Logrus implementation of the Logger interface with structured JSON output
// ABOUTME: Optionally rotates log files via lumberjack when a file path is configured

package logrus

import (
	"os"

	sirupsen "github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configures the logger.
type Options struct {
	// Level is the minimum level to emit: debug, info, warn, or error.
	// Unknown values fall back to info.
	Level string

	// File, when set, sends output to a rotated log file instead of stdout.
	File string
}

// LogrusLogger implements the Logger interface using sirupsen/logrus
type LogrusLogger struct {
	log *sirupsen.Logger
}

// NewLogrusLogger creates a structured JSON logger.
func NewLogrusLogger(opts Options) *LogrusLogger {
	log := sirupsen.New()
	log.SetFormatter(&sirupsen.JSONFormatter{})

	level, err := sirupsen.ParseLevel(opts.Level)
	if err != nil {
		level = sirupsen.InfoLevel
	}
	log.SetLevel(level)

	if opts.File != "" {
		log.SetOutput(&lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    100, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		})
	} else {
		log.SetOutput(os.Stdout)
	}

	return &LogrusLogger{log: log}
}

// Debug logs a debug message
func (l *LogrusLogger) Debug(msg string, fields map[string]interface{}) {
	l.log.WithFields(sirupsen.Fields(fields)).Debug(msg)
}

// Info logs an info message
func (l *LogrusLogger) Info(msg string, fields map[string]interface{}) {
	l.log.WithFields(sirupsen.Fields(fields)).Info(msg)
}

// Warn logs a warning message
func (l *LogrusLogger) Warn(msg string, fields map[string]interface{}) {
	l.log.WithFields(sirupsen.Fields(fields)).Warn(msg)
}

// Error logs an error message
func (l *LogrusLogger) Error(msg string, fields map[string]interface{}) {
	l.log.WithFields(sirupsen.Fields(fields)).Error(msg)
}
