package service

import (
	"fmt"
	"math"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

// Scores are seen from the AI's side.
const (
	ScoreLoss = -1
	ScoreDraw = 0
	ScoreWin  = 1
)

// Result is the outcome of a top-level search.
type Result struct {
	Move  entity.Move
	Score int
}

// Search runs minimax with alpha-beta pruning on a board in place.
// Every simulated move is undone before the call that made it returns,
// so the board is unchanged once Evaluate or OptimalMove is done.
type Search struct {
	board *entity.Board
	ai    entity.Mark
	human entity.Mark

	visited int
}

// NewSearch - searches on behalf of ai against human.
func NewSearch(board *entity.Board, ai, human entity.Mark) *Search {
	return &Search{
		board: board,
		ai:    ai,
		human: human,
	}
}

// Visited - the number of positions evaluated so far.
func (that *Search) Visited() int {
	return that.visited
}

// Evaluate - returns the game value of the position with perfect play from both sides.
func (that *Search) Evaluate(maximizing bool, alpha, beta int) int {
	that.visited++

	if that.board.HasWon(that.ai) {
		return ScoreWin
	}

	if that.board.HasWon(that.human) {
		return ScoreLoss
	}

	if that.board.IsFull() {
		return ScoreDraw
	}

	// a cutoff stops the scan of the current row only, later rows are still visited
	if maximizing {
		best := math.MinInt
		for row := range entity.Size {
			for col := range entity.Size {
				if !that.board.IsEmpty(row, col) {
					continue
				}

				that.board.Place(row, col, that.ai)
				score := that.Evaluate(false, alpha, beta)
				that.board.Clear(row, col)

				best = max(best, score)
				alpha = max(alpha, best)
				if beta <= alpha {
					break
				}
			}
		}

		return best
	}

	best := math.MaxInt
	for row := range entity.Size {
		for col := range entity.Size {
			if !that.board.IsEmpty(row, col) {
				continue
			}

			that.board.Place(row, col, that.human)
			score := that.Evaluate(true, alpha, beta)
			that.board.Clear(row, col)

			best = min(best, score)
			beta = min(beta, best)
			if beta <= alpha {
				break
			}
		}
	}

	return best
}

// OptimalMove - picks the AI move with the highest value. Ties go to the first cell in row-major order.
// The board must not be terminal.
func (that *Search) OptimalMove() (Result, error) {
	if that.board.IsTerminal() {
		return Result{}, fmt.Errorf("%w: board is terminal", apperror.ErrNoAvailableMoves)
	}

	best := Result{Score: math.MinInt}
	for _, cell := range that.board.EmptyCells() {
		that.board.Place(cell.Row, cell.Col, that.ai)
		score := that.Evaluate(false, math.MinInt, math.MaxInt)
		that.board.Clear(cell.Row, cell.Col)

		if score > best.Score {
			best = Result{Move: cell, Score: score}
		}
	}

	return best, nil
}
