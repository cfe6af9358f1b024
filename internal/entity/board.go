package entity

import (
	"fmt"
	"strings"
)

const Size = 3

// Move is a (row, col) coordinate on the board.
type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (that Move) InRange() bool {
	return that.Row >= 0 && that.Row < Size && that.Col >= 0 && that.Col < Size
}

func (that Move) String() string {
	return fmt.Sprintf("(%d, %d)", that.Row, that.Col)
}

// WinLines lists every row, column and diagonal.
var WinLines = [8][Size]Move{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

// Board is the 3x3 grid. The zero value is an empty board.
//
// Place does not validate its arguments; callers check IsEmpty and Move.InRange first.
type Board [Size][Size]Mark

func (that *Board) Place(row, col int, mark Mark) {
	that[row][col] = mark
}

// Clear - empties a cell, used to undo a simulated move.
func (that *Board) Clear(row, col int) {
	that[row][col] = Empty
}

func (that *Board) At(row, col int) Mark {
	return that[row][col]
}

func (that *Board) IsEmpty(row, col int) bool {
	return that[row][col] == Empty
}

// EmptyCells - returns the empty cells in row-major order.
func (that *Board) EmptyCells() []Move {
	cells := make([]Move, 0, Size*Size)
	for row := range Size {
		for col := range Size {
			if that[row][col] == Empty {
				cells = append(cells, Move{Row: row, Col: col})
			}
		}
	}

	return cells
}

// HasWon - reports whether mark occupies a whole row, column or diagonal.
func (that *Board) HasWon(mark Mark) bool {
	if !mark.IsPlayer() {
		return false
	}

	for _, line := range WinLines {
		if that[line[0].Row][line[0].Col] == mark &&
			that[line[1].Row][line[1].Col] == mark &&
			that[line[2].Row][line[2].Col] == mark {
			return true
		}
	}

	return false
}

// IsFull reports whether no cell is empty. It says nothing about a winner.
func (that *Board) IsFull() bool {
	for row := range Size {
		for col := range Size {
			if that[row][col] == Empty {
				return false
			}
		}
	}

	return true
}

// IsTerminal - the game on this board is over: somebody won or no cell is left.
func (that *Board) IsTerminal() bool {
	return that.HasWon(PlayerX) || that.HasWon(PlayerO) || that.IsFull()
}

func (that *Board) Count(mark Mark) int {
	count := 0
	for row := range Size {
		for col := range Size {
			if that[row][col] == mark {
				count++
			}
		}
	}

	return count
}

func (that *Board) Reset() {
	*that = Board{}
}

// String renders the board one row per line, each followed by a separator.
func (that *Board) String() string {
	var sb strings.Builder
	for row := range Size {
		cells := make([]string, Size)
		for col := range Size {
			cells[col] = that[row][col].String()
		}
		sb.WriteString(strings.Join(cells, "|"))
		sb.WriteString("\n")
		sb.WriteString(strings.Repeat("-", 2*Size-1))
		sb.WriteString("\n")
	}

	return sb.String()
}
