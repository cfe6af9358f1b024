package cli

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cli/internal/service"
	"github.com/rocketscienceinc/tictactoe-cli/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-cli/testing/suite"
)

func newHandler(st *suite.Suite, in io.Reader) *Handler {
	manager := usecase.NewGameManager(st.Logger, service.NewBots(st.Logger, st.Rand))

	return New(st.Logger, in, st.Output, manager)
}

func TestHandler_HumanVsHuman(t *testing.T) {
	t.Run("X wins the top row", func(t *testing.T) {
		// Given: two humans playing X (0,0), O (1,0), X (0,1), O (1,1), X (0,2)
		ctx, st := suite.New(t)
		handler := newHandler(st, st.Input(
			"2",
			"0", "0",
			"1", "0",
			"0", "1",
			"1", "1",
			"0", "2",
			"n",
		))

		// When: the session runs
		err := handler.Run(ctx)

		// Then: X is announced as the winner and the program stops
		require.NoError(t, err)

		output := st.Output.String()
		assert.Contains(t, output, "Human vs Human")
		assert.Contains(t, output, "Player X vs Player O")
		assert.Contains(t, output, "Player X's turn")
		assert.Contains(t, output, "Player O's turn")
		assert.Contains(t, output, "X|X|X\n-----\nO|O| \n-----\n")
		assert.Contains(t, output, "Player X wins")
		assert.Contains(t, output, "Play again? (y/n): ")
	})

	t.Run("Bad input is re-prompted without consuming the turn", func(t *testing.T) {
		// Given: a malformed row, an out of range row, a legal move and then an occupied cell
		ctx, st := suite.New(t)
		handler := newHandler(st, st.Input(
			"2",
			"abc",
			"5",
			"0", "0",
			"0", "0",
		))

		// When: the session runs until input ends
		err := handler.Run(ctx)

		// Then: every bad entry is rejected and only X's move is on the board
		require.NoError(t, err)
		assert.Equal(t, 3, strings.Count(st.Output.String(), msgInvalidMove))
		assert.Equal(t, entity.PlayerX, handler.board.At(0, 0))
		assert.Len(t, handler.board.EmptyCells(), 8)
	})

	t.Run("Play again starts on a fresh board", func(t *testing.T) {
		// Given: one finished game, then a second session that ends after one move
		ctx, st := suite.New(t)
		handler := newHandler(st, st.Input(
			"2",
			"0", "0",
			"1", "0",
			"0", "1",
			"1", "1",
			"0", "2",
			"y",
			"2",
			"2", "2",
		))

		// When: both sessions run
		err := handler.Run(ctx)

		// Then: the menu was shown twice and the second board only holds the new move
		require.NoError(t, err)
		assert.Equal(t, 2, strings.Count(st.Output.String(), "TIC TAC TOE"))
		assert.Equal(t, entity.PlayerX, handler.board.At(2, 2))
		assert.Len(t, handler.board.EmptyCells(), 8)
	})
}

func TestHandler_HumanVsAI(t *testing.T) {
	t.Run("Hard AI punishes row-major play", func(t *testing.T) {
		// Given: the human plays X first and always picks the first empty cell
		ctx, st := suite.New(t)
		handler := newHandler(st, st.Input(
			"1",
			"x",
			"3",
			"1",
			"0", "0",
			"0", "1",
			"1", "0",
			"n",
		))

		// When: the session runs
		err := handler.Run(ctx)

		// Then: the AI answers centre, blocks the top row and wins on the anti diagonal
		require.NoError(t, err)

		output := st.Output.String()
		assert.Contains(t, output, "Human vs AI | Difficulty: Hard")
		assert.Contains(t, output, "Human: X | AI: O")
		assert.Contains(t, output, "AI plays (1, 1)")
		assert.Contains(t, output, "AI plays (0, 2)")
		assert.Contains(t, output, "AI plays (2, 0)")
		assert.Contains(t, output, "AI wins")
	})

	t.Run("AI can start and its cell is then occupied", func(t *testing.T) {
		// Given: an invalid symbol first, then O for the AI, Hard and the AI starting
		ctx, st := suite.New(t)
		handler := newHandler(st, st.Input(
			"1",
			"z",
			"x",
			"3",
			"9",
			"2",
			"0", "0",
		))

		// When: the session runs until input ends
		err := handler.Run(ctx)

		// Then: the AI opened in the corner and the human's copy of it was rejected
		require.NoError(t, err)

		output := st.Output.String()
		assert.Equal(t, 2, strings.Count(output, msgInvalidChoice))
		assert.Contains(t, output, "AI plays (0, 0)")
		assert.Contains(t, output, msgInvalidMove)
		assert.Equal(t, entity.PlayerO, handler.board.At(0, 0))
	})

	t.Run("Difficulty defaults to Hard", func(t *testing.T) {
		ctx, st := suite.New(t)
		handler := newHandler(st, st.Input("1", "o", "whatever", "1"))

		require.NoError(t, handler.Run(ctx))

		assert.Contains(t, st.Output.String(), "Human vs AI | Difficulty: Hard")
		assert.Contains(t, st.Output.String(), "Human: O | AI: X")
	})

	t.Run("Easy is chosen with 1", func(t *testing.T) {
		ctx, st := suite.New(t)
		handler := newHandler(st, st.Input("1", "X", "1", "1"))

		require.NoError(t, handler.Run(ctx))

		assert.Contains(t, st.Output.String(), "Human vs AI | Difficulty: Easy")
	})
}

func TestHandler_Run(t *testing.T) {
	t.Run("Unknown mode prints an error and stops", func(t *testing.T) {
		ctx, st := suite.New(t)
		handler := newHandler(st, st.Input("7", "2"))

		err := handler.Run(ctx)

		require.NoError(t, err)
		assert.Contains(t, st.Output.String(), msgInvalidChoice)
		assert.NotContains(t, st.Output.String(), "Player X vs Player O")
		assert.Equal(t, 1, strings.Count(st.Output.String(), "Choose mode: "))
	})

	t.Run("Stops reading input once finished", func(t *testing.T) {
		// Given: lines left over after the program decided to stop
		ctx, st := suite.New(t)
		handler := newHandler(st, st.Input("7", "2", "0", "0"))

		// When: the handler returns
		require.NoError(t, handler.Run(ctx))

		// Then: the input reader has exited
		require.Eventually(t, func() bool {
			select {
			case <-handler.console.stopped:
				return true
			default:
				return false
			}
		}, time.Second, 10*time.Millisecond)
	})

	t.Run("Empty input exits cleanly", func(t *testing.T) {
		ctx, st := suite.New(t)
		handler := newHandler(st, st.Input())

		assert.NoError(t, handler.Run(ctx))
	})

	t.Run("Canceled context exits cleanly", func(t *testing.T) {
		// Given: input that never arrives
		_, st := suite.New(t)
		reader, writer := io.Pipe()
		t.Cleanup(func() {
			_ = writer.Close()
		})

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		handler := newHandler(st, reader)

		// When: running with a canceled context
		err := handler.Run(ctx)

		// Then: the handler stops without error
		assert.NoError(t, err)
	})
}
