// Package telemetry provides the structured logging shared by the
// crawler, indexer and query-engine binaries: a rotating file log plus a
// colorized console writer, built on zerolog and lumberjack the same way
// as a teacher-style crawl tool's internal/utils logger.
package telemetry

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger is the package-level logger configured by Init.
var Logger zerolog.Logger

// LogConfig controls where and how verbosely a stage logs.
type LogConfig struct {
	Level      string // trace, debug, info, warn, error, fatal, panic
	LogDir     string
	LogFile    string // base name, e.g. "crawler.log"
	MaxSize    int    // MB per file before rotation
	MaxBackups int
	MaxAge     int // days
	Compress   bool
}

// DefaultLogConfig returns sane defaults for stage, used when no config
// file overrides them.
func DefaultLogConfig(stage string) LogConfig {
	return LogConfig{
		Level:      "info",
		LogDir:     "logs",
		LogFile:    stage + ".log",
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     28,
		Compress:   true,
	}
}

// Init wires up Logger: a colorized console writer plus a rotating file
// writer, and makes Logger the package-level zerolog default too.
func Init(config LogConfig) error {
	if err := os.MkdirAll(config.LogDir, 0755); err != nil {
		return err
	}

	level, err := zerolog.ParseLevel(config.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	fileWriter := &lumberjack.Logger{
		Filename:   filepath.Join(config.LogDir, config.LogFile),
		MaxSize:    config.MaxSize,
		MaxBackups: config.MaxBackups,
		MaxAge:     config.MaxAge,
		Compress:   config.Compress,
	}

	consoleWriter := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    false,
	}

	multi := io.MultiWriter(consoleWriter, fileWriter)

	Logger = zerolog.New(multi).With().Timestamp().Logger()
	log.Logger = Logger

	return nil
}

func Infof(format string, args ...interface{})  { Logger.Info().Msgf(format, args...) }
func Warnf(format string, args ...interface{})  { Logger.Warn().Msgf(format, args...) }
func Debugf(format string, args ...interface{}) { Logger.Debug().Msgf(format, args...) }

func Errorf(err error, format string, args ...interface{}) {
	Logger.Error().Err(err).Msgf(format, args...)
}

// Fatalf logs at fatal level and terminates the process, mirroring the
// structural failures spec §7 marks fatal (invalid argument, missing
// directory, seed fetch failure, artifact/index I/O failure).
func Fatalf(err error, format string, args ...interface{}) {
	Logger.Fatal().Err(err).Msgf(format, args...)
}
