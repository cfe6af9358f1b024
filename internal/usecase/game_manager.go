package usecase

import (
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cli/internal/pkg"
	"github.com/rocketscienceinc/tictactoe-cli/internal/service"
	"github.com/rocketscienceinc/tictactoe-cli/internal/tictactoe"
)

// GameManager runs game sessions one at a time. The board passed to NewGame
// belongs to the session until it finishes.
type GameManager struct {
	logger *slog.Logger
	bots   map[entity.Difficulty]service.BotService
}

func NewGameManager(logger *slog.Logger, bots map[entity.Difficulty]service.BotService) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),
		bots:   bots,
	}
}

// NewGame - resets board and starts a new session on it.
func (that *GameManager) NewGame(board *entity.Board, opts entity.GameOptions) (*entity.Game, error) {
	if opts.Mode == entity.HumanVsAI {
		if _, ok := that.bots[opts.Difficulty]; !ok {
			return nil, fmt.Errorf("%w: %s", apperror.ErrUnknownDifficulty, opts.Difficulty)
		}
	}

	game, err := entity.NewGame(pkg.GenerateSessionID(), board, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	that.logger.Info("game started",
		"session", game.ID,
		"mode", game.Mode.String(),
		"difficulty", game.Difficulty.String(),
		"human", string(game.Human),
		"ai", string(game.AI),
		"turn", string(game.Turn),
	)

	return game, nil
}

// MakeTurn - plays a human move for whoever's turn it is.
// Out of range and occupied cells leave the game unchanged.
func (that *GameManager) MakeTurn(game *entity.Game, move entity.Move) error {
	if game.IsAITurn() {
		return apperror.ErrNotYourTurn
	}

	mark := game.Turn
	if err := tictactoe.MakeTurn(game, mark, move); err != nil {
		return fmt.Errorf("failed to make turn: %w", err)
	}

	that.logTurn(game, mark, move)

	return nil
}

// MakeBotTurn - asks the bot for the AI's move and plays it.
func (that *GameManager) MakeBotTurn(game *entity.Game) (entity.Move, error) {
	if err := game.ConfirmOngoingState(); err != nil {
		return entity.Move{}, err
	}

	if !game.IsAITurn() {
		return entity.Move{}, apperror.ErrNotYourTurn
	}

	bot, ok := that.bots[game.Difficulty]
	if !ok {
		return entity.Move{}, fmt.Errorf("%w: %s", apperror.ErrUnknownDifficulty, game.Difficulty)
	}

	move, err := bot.ChooseMove(game)
	if err != nil {
		return entity.Move{}, fmt.Errorf("bot failed to choose move: %w", err)
	}

	if err = tictactoe.MakeTurn(game, game.AI, move); err != nil {
		return entity.Move{}, fmt.Errorf("bot failed to make turn: %w", err)
	}

	that.logTurn(game, game.AI, move)

	return move, nil
}

func (that *GameManager) logTurn(game *entity.Game, mark entity.Mark, move entity.Move) {
	log := that.logger.With("session", game.ID)

	log.Debug("turn played", "mark", string(mark), "move", move.String())

	if game.IsFinished() {
		log.Info("game finished", "winner", string(game.Winner))
	}
}
