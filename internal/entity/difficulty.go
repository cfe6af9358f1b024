package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
)

// Difficulty selects how the AI picks its moves.
type Difficulty int

const (
	Easy Difficulty = iota + 1
	Medium
	Hard
)

// Difficulties lists every level in menu order.
var Difficulties = []Difficulty{Easy, Medium, Hard}

func (that Difficulty) String() string {
	switch that {
	case Easy:
		return "Easy"
	case Medium:
		return "Medium"
	case Hard:
		return "Hard"
	default:
		return fmt.Sprintf("Difficulty(%d)", int(that))
	}
}

// ParseDifficulty - parses a difficulty name, case-insensitive.
func ParseDifficulty(name string) (Difficulty, error) {
	for _, difficulty := range Difficulties {
		if strings.EqualFold(strings.TrimSpace(name), difficulty.String()) {
			return difficulty, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", apperror.ErrUnknownDifficulty, name)
}
