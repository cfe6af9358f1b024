package suite

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"strings"
	"testing"
	"time"
)

const (
	maxWaitDuration = 30 * time.Second

	// Seed keeps random bots reproducible across test runs.
	Seed = 42
)

type Suite struct {
	*testing.T
	Logger *slog.Logger

	Rand   *rand.Rand
	Output *bytes.Buffer
}

// New - builds the shared test fixture: a context bounded by maxWaitDuration,
// a logger, a seeded random source and a buffer for console output.
func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	return ctx, &Suite{
		T:      t,
		Logger: logger,
		Rand:   rand.New(rand.NewSource(Seed)), //nolint: gosec // it's ok
		Output: &bytes.Buffer{},
	}
}

// Input - a reader that yields lines one per prompt, then io.EOF.
func (that *Suite) Input(lines ...string) io.Reader {
	if len(lines) == 0 {
		return strings.NewReader("")
	}

	return strings.NewReader(strings.Join(lines, "\n") + "\n")
}
