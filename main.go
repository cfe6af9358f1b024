package main

import (
	"fmt"
	"log/slog"
	"os"

	app "github.com/rocketscienceinc/tictactoe-cli/internal"
	"github.com/rocketscienceinc/tictactoe-cli/internal/config"
)

const configFile = "config.yml"

var logLevels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

func main() {
	os.Exit(run())
}

// run - loads config.yml from the working directory, plays, and returns the process exit code.
func run() (code int) {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "tictactoe: unexpected failure: %v\n", err)
			code = 1
		}
	}()

	conf, err := config.Load(configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "tictactoe: %v\n", err)
		return 2
	}

	logger := newLogger(conf.LogLevel)

	if err = app.RunApp(logger, conf); err != nil {
		logger.Error("game aborted", "error", err)
		fmt.Fprintf(os.Stderr, "tictactoe: %v\n", err)
		return 1
	}

	return 0
}

// newLogger writes JSON to stderr; stdout belongs to the board and prompts.
// Unknown levels fall back to warn.
func newLogger(level string) *slog.Logger {
	lvl, ok := logLevels[level]
	if !ok {
		lvl = slog.LevelWarn
	}

	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}
