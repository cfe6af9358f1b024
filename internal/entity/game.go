package entity

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
)

// Mode is the kind of session being played.
type Mode int

const (
	HumanVsAI Mode = iota + 1
	HumanVsHuman
)

func (that Mode) String() string {
	switch that {
	case HumanVsAI:
		return "Human vs AI"
	case HumanVsHuman:
		return "Human vs Human"
	default:
		return fmt.Sprintf("Mode(%d)", int(that))
	}
}

var ErrUnknownGameStatus = errors.New("unknown game status")

// GameOptions are the menu choices a session starts from.
type GameOptions struct {
	Mode       Mode
	Human      Mark
	Difficulty Difficulty
	AIStarts   bool
}

// Game is one session: the board plus who plays which mark.
//
// In a human vs human game Human is the first player (X) and AI the second (O).
type Game struct {
	ID         string     `json:"id"`
	Board      *Board     `json:"board"`
	Mode       Mode       `json:"mode"`
	Difficulty Difficulty `json:"difficulty,omitempty"`
	Human      Mark       `json:"human"`
	AI         Mark       `json:"ai"`
	Turn       Mark       `json:"turn"`
	Winner     Mark       `json:"winner"`
	Status     string     `json:"status"`
}

// NewGame - starts a session on board, which is reset first.
func NewGame(id string, board *Board, opts GameOptions) (*Game, error) {
	game := &Game{
		ID:     id,
		Board:  board,
		Mode:   opts.Mode,
		Status: StatusOngoing,
	}

	switch opts.Mode {
	case HumanVsAI:
		if !opts.Human.IsPlayer() {
			return nil, fmt.Errorf("%w: %q", apperror.ErrUnknownMark, opts.Human)
		}

		if opts.Difficulty < Easy || opts.Difficulty > Hard {
			return nil, fmt.Errorf("%w: %d", apperror.ErrUnknownDifficulty, opts.Difficulty)
		}

		game.Human = opts.Human
		game.AI = opts.Human.Opponent()
		game.Difficulty = opts.Difficulty
		game.Turn = game.Human
		if opts.AIStarts {
			game.Turn = game.AI
		}
	case HumanVsHuman:
		game.Human = PlayerX
		game.AI = PlayerO
		game.Turn = PlayerX
	default:
		return nil, fmt.Errorf("%w: %d", apperror.ErrUnknownMode, opts.Mode)
	}

	board.Reset()

	return game, nil
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsDraw() bool {
	return that.IsFinished() && that.Winner == PlayerTie
}

// IsAITurn - the computer is the one to move.
func (that *Game) IsAITurn() bool {
	return that.Mode == HumanVsAI && that.IsOngoing() && that.Turn == that.AI
}

func (that *Game) ConfirmOngoingState() error {
	switch {
	case that.IsFinished():
		return apperror.ErrGameFinished
	case that.IsOngoing():
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownGameStatus, that.Status)
	}
}
