package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

// Console reads answers line by line and writes prompts.
// Reading happens on its own goroutine so a pending prompt can be abandoned when ctx is done.
type Console struct {
	out   io.Writer
	lines <-chan string
	errs  <-chan error
	err   error

	done      chan struct{}
	stopped   chan struct{}
	closeOnce sync.Once
}

func NewConsole(in io.Reader, out io.Writer) *Console {
	lines := make(chan string)
	errs := make(chan error, 1)
	done := make(chan struct{})
	stopped := make(chan struct{})

	go func() {
		defer close(stopped)

		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-done:
				return
			}
		}

		err := scanner.Err()
		if err == nil {
			err = io.EOF
		}
		errs <- err
		close(lines)
	}()

	return &Console{
		out:     out,
		lines:   lines,
		errs:    errs,
		done:    done,
		stopped: stopped,
	}
}

// Close - stops the reader goroutine at its next line. Later calls to Ask return io.EOF.
// A read already blocked on in only returns when in yields a line or fails.
func (that *Console) Close() {
	that.closeOnce.Do(func() {
		close(that.done)
	})
}

// Ask - prints prompt and waits for the next line. Returns io.EOF once input is exhausted.
func (that *Console) Ask(ctx context.Context, prompt string) (string, error) {
	that.Print(prompt)

	select {
	case <-that.done:
		return "", io.EOF
	default:
	}

	select {
	case <-that.done:
		return "", io.EOF
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-that.lines:
		if !ok {
			if that.err == nil {
				that.err = <-that.errs
			}
			return "", that.err
		}

		return strings.TrimSpace(line), nil
	}
}

func (that *Console) Print(text string) {
	fmt.Fprint(that.out, text)
}

func (that *Console) Println(text string) {
	fmt.Fprintln(that.out, text)
}

func (that *Console) Printf(format string, args ...any) {
	fmt.Fprintf(that.out, format, args...)
}

// ParseCoordinate - parses one row or column index.
func ParseCoordinate(text string) (int, error) {
	value, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", apperror.ErrMalformedInput, text)
	}

	if value < 0 || value >= entity.Size {
		return 0, fmt.Errorf("%w: %d", apperror.ErrInvalidCell, value)
	}

	return value, nil
}
