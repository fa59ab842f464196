package logging

import (
	"log/slog"
	"os"
)

// Setup installs a JSON stdout logger. main replaces it with a MultiHandler
// once the database is reachable.
func Setup() {
	slog.SetDefault(slog.New(StdoutHandler()))
}

func StdoutHandler() slog.Handler {
	return slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
}
