package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

// MakeTurn - places mark on move and moves the game to its next state.
func MakeTurn(gameInstance *entity.Game, mark entity.Mark, move entity.Move) error {
	if gameInstance.IsFinished() {
		return apperror.ErrGameFinished
	}

	if err := validateMove(gameInstance, mark, move); err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	gameInstance.Board.Place(move.Row, move.Col, mark)
	updateGameStatus(gameInstance, mark)

	return nil
}

// validateMove - checks if the move is valid.
func validateMove(gameInstance *entity.Game, mark entity.Mark, move entity.Move) error {
	if !move.InRange() {
		return fmt.Errorf("%w: %s", apperror.ErrInvalidCell, move)
	}

	if gameInstance.Turn != mark {
		return apperror.ErrNotYourTurn
	}

	if !gameInstance.Board.IsEmpty(move.Row, move.Col) {
		return fmt.Errorf("%w: %s", apperror.ErrCellOccupied, move)
	}

	return nil
}

// updateGameStatus - checks the game status after a move.
// A win is checked before fullness: the move that fills the board may also win it.
func updateGameStatus(gameInstance *entity.Game, mark entity.Mark) {
	switch {
	case gameInstance.Board.HasWon(mark):
		gameInstance.Winner = mark
		gameInstance.Status = entity.StatusFinished
		gameInstance.Turn = entity.Empty
	case gameInstance.Board.IsFull():
		gameInstance.Winner = entity.PlayerTie
		gameInstance.Status = entity.StatusFinished
		gameInstance.Turn = entity.Empty
	default:
		gameInstance.Turn = mark.Opponent()
	}
}
