// Package logger configures the global zerolog logger.
package logger

import (
	"io"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ziadkadry99/brandcraft/internal/config"
)

var sensitivePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(sk-ant-[a-zA-Z0-9\-_]{20,})`),
	regexp.MustCompile(`(sk-or-[a-zA-Z0-9\-_]{20,})`),
	regexp.MustCompile(`(AIza[a-zA-Z0-9\-_]{30,})`),
	regexp.MustCompile(`(hf_[a-zA-Z0-9]{20,})`),
	regexp.MustCompile(`(sk-[a-zA-Z0-9\-_]{20,})`),
	regexp.MustCompile(`(Bearer\s+[a-zA-Z0-9\-_\.]+)`),
	regexp.MustCompile(`((?:api[_-]?key|apikey|key|token|secret)\s*[=:]\s*)([a-zA-Z0-9\-_\.]{10,})`),
}

type maskedWriter struct {
	underlying io.Writer
}

func (w *maskedWriter) Write(p []byte) (int, error) {
	if _, err := w.underlying.Write([]byte(MaskSensitive(string(p)))); err != nil {
		return 0, err
	}
	return len(p), nil
}

// Setup replaces the global logger. Output goes to cfg.File when set,
// otherwise to out (stderr when out is nil). Format "json" writes JSON
// lines; anything else writes the human-readable console format.
func Setup(cfg config.LoggingConfig, out io.Writer) {
	zerolog.SetGlobalLevel(parseLevel(cfg.Level))
	zerolog.TimeFieldFormat = time.RFC3339

	if out == nil {
		out = os.Stderr
	}
	if cfg.File != "" {
		file, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			log.Warn().Err(err).Str("file", cfg.File).Msg("cannot open log file, using stderr")
		} else {
			out = file
		}
	}
	masked := &maskedWriter{underlying: out}

	if strings.EqualFold(cfg.Format, "json") {
		log.Logger = zerolog.New(masked).With().Timestamp().Logger()
		return
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{
		Out:        masked,
		TimeFormat: time.Kitchen,
	}).With().Timestamp().Logger()
}

func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

// MaskSensitive replaces API keys and bearer tokens in s, keeping the first
// and last four characters.
func MaskSensitive(s string) string {
	for _, pattern := range sensitivePatterns {
		s = pattern.ReplaceAllStringFunc(s, func(match string) string {
			if strings.HasPrefix(match, "Bearer ") {
				return "Bearer " + maskValue(strings.TrimPrefix(match, "Bearer "))
			}
			if pattern.NumSubexp() == 2 {
				sub := pattern.FindStringSubmatch(match)
				return sub[1] + maskValue(sub[2])
			}
			return maskValue(match)
		})
	}
	return s
}

func maskValue(value string) string {
	value = strings.TrimSpace(value)
	if len(value) <= 8 {
		return "***"
	}
	return value[:4] + "***" + value[len(value)-4:]
}
