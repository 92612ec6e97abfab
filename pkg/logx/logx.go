// Package logx is a small leveled logging facade backed by zerolog.
package logx

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
)

// Level mirrors zerolog's severity levels.
type Level int8

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var logger = zerolog.New(os.Stderr).With().Timestamp().Logger()

// Setup configures the global logger. Development mode switches to the
// human-readable console writer and enables debug output.
func Setup(development bool) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if development {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
		SetLevel(LevelDebug)
		return
	}
	logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	SetLevel(LevelInfo)
}

// SetLevel adjusts the minimum emitted level.
func SetLevel(l Level) {
	switch l {
	case LevelDebug:
		logger = logger.Level(zerolog.DebugLevel)
	case LevelInfo:
		logger = logger.Level(zerolog.InfoLevel)
	case LevelWarn:
		logger = logger.Level(zerolog.WarnLevel)
	case LevelError:
		logger = logger.Level(zerolog.ErrorLevel)
	}
}

func Debug(msg string) { logger.Debug().Msg(msg) }

func Debugf(format string, args ...any) { logger.Debug().Msg(fmt.Sprintf(format, args...)) }

func Info(msg string) { logger.Info().Msg(msg) }

func Infof(format string, args ...any) { logger.Info().Msg(fmt.Sprintf(format, args...)) }

func Warn(msg string) { logger.Warn().Msg(msg) }

func Warnf(format string, args ...any) { logger.Warn().Msg(fmt.Sprintf(format, args...)) }

func Error(msg string) { logger.Error().Msg(msg) }

func Errorf(format string, args ...any) { logger.Error().Msg(fmt.Sprintf(format, args...)) }

// Fatalf logs at fatal level and exits the process.
func Fatalf(format string, args ...any) { logger.Fatal().Msg(fmt.Sprintf(format, args...)) }
