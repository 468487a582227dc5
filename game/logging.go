package game

import (
	"log/slog"
	"os"
	"strings"
)

// SetupLogging installs the default JSON logger at the requested level.
// quiet forces the level to error regardless of level's value.
func SetupLogging(level string, quiet bool) {
	lvl := parseLevel(level)
	if quiet {
		lvl = slog.LevelError
	}
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(handler))
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Log writes the end-of-game summary through slog.
func (s Summary) Log() {
	slog.Info("game over",
		"winner", s.Winner.String(),
		"predator_wins", s.Tally.Predator,
		"prey_wins", s.Tally.Prey,
		"rounds", s.Rounds,
		"seed", s.Seed,
		"highlights", len(s.Highlights),
	)
	for _, h := range s.Highlights {
		h.Log()
	}
}
