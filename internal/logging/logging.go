// internal/logging/logging.go
package logging

import (
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// ParseLevel переводит строку из конфига в уровень zerolog. Неизвестные
// значения дают info.
func ParseLevel(s string) zerolog.Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "TRACE":
		return zerolog.TraceLevel
	case "DEBUG":
		return zerolog.DebugLevel
	case "INFO":
		return zerolog.InfoLevel
	case "WARN":
		return zerolog.WarnLevel
	case "ERROR":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// Options — параметры Setup.
type Options struct {
	Level   string
	Session string // id запуска, попадает в каждую запись
	NoColor bool
}

// Setup создаёт логгер процесса с читаемым выводом в out.
func Setup(out io.Writer, opts Options) zerolog.Logger {
	level := ParseLevel(opts.Level)
	zerolog.SetGlobalLevel(level)
	zerolog.TimestampFunc = func() time.Time {
		return time.Now().UTC()
	}

	w := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.RFC3339,
		NoColor:    opts.NoColor,
	}

	session := opts.Session
	logger := zerolog.New(w).With().Timestamp().Logger().
		Hook(zerolog.HookFunc(func(e *zerolog.Event, _ zerolog.Level, _ string) {
			if session != "" {
				e.Str("session", session)
			}
		}))

	logger.Debug().Str("loglevel", level.String()).Msg("Logging set up")
	return logger
}

// Sampled оборачивает логгер для сообщений каждого кадра: не больше 5
// записей в секунду, дальше 1 из 100.
func Sampled(logger zerolog.Logger) zerolog.Logger {
	return logger.With().Bool("sampled", true).Logger().Sample(&zerolog.BurstSampler{
		Burst:       5,
		Period:      time.Second,
		NextSampler: &zerolog.BasicSampler{N: 100},
	})
}
