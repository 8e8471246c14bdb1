package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config controls where and how much the application logs
type Config struct {
	Dir        string // log directory; empty logs to stdout only
	Level      string // logrus level name, e.g. "info", "debug"
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	JSON       bool
}

// DefaultConfig returns the production logging defaults
func DefaultConfig() Config {
	return Config{
		Dir:        "logs",
		Level:      "info",
		MaxSizeMB:  50,
		MaxBackups: 7,
		MaxAgeDays: 30,
	}
}

var std = newStd()

func newStd() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stdout)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return l
}

// SetupLogger configures the shared logger: stdout plus a rotated file under cfg.Dir
func SetupLogger(cfg Config) error {
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	std.SetLevel(level)

	if cfg.JSON {
		std.SetFormatter(&logrus.JSONFormatter{})
	}

	if cfg.Dir == "" {
		std.SetOutput(os.Stdout)
		return nil
	}
	if err := os.MkdirAll(cfg.Dir, 0755); err != nil {
		return fmt.Errorf("create log directory: %w", err)
	}
	rotator := &lumberjack.Logger{
		Filename:   filepath.Join(cfg.Dir, "app.log"),
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   true,
	}
	std.SetOutput(io.MultiWriter(os.Stdout, rotator))
	return nil
}

// WithFields starts a structured entry on the shared logger
func WithFields(fields logrus.Fields) *logrus.Entry {
	return std.WithFields(fields)
}

// Debug logs at debug level
func Debug(format string, v ...interface{}) {
	std.Debugf(format, v...)
}

// Info logs at info level
func Info(format string, v ...interface{}) {
	std.Infof(format, v...)
}

// Warning logs at warning level
func Warning(format string, v ...interface{}) {
	std.Warnf(format, v...)
}

// Error logs at error level
func Error(format string, v ...interface{}) {
	std.Errorf(format, v...)
}
