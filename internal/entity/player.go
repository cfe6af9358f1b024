package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
)

// Mark is the content of a board cell.
type Mark string

const (
	Empty   Mark = ""
	PlayerX Mark = "X"
	PlayerO Mark = "O"

	// PlayerTie is stored as the winner of a drawn game.
	PlayerTie Mark = "-"
)

// ParseMark - parses a player symbol, case-insensitive.
func ParseMark(symbol string) (Mark, error) {
	switch strings.ToUpper(strings.TrimSpace(symbol)) {
	case string(PlayerX):
		return PlayerX, nil
	case string(PlayerO):
		return PlayerO, nil
	default:
		return Empty, fmt.Errorf("%w: %q", apperror.ErrUnknownMark, symbol)
	}
}

// Opponent - returns the other player's mark.
func (that Mark) Opponent() Mark {
	switch that {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return Empty
	}
}

func (that Mark) IsPlayer() bool {
	return that == PlayerX || that == PlayerO
}

func (that Mark) String() string {
	if that == Empty {
		return " "
	}
	return string(that)
}
