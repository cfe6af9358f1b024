package service

import (
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

// BotService picks the AI's next move. It never changes the board.
type BotService interface {
	ChooseMove(game *entity.Game) (entity.Move, error)
}

// NewBotService - returns the bot for difficulty.
func NewBotService(logger *slog.Logger, difficulty entity.Difficulty, rng *rand.Rand) (BotService, error) {
	easy := &easyBot{rng: rng}
	hard := &hardBot{logger: logger.With("component", "bot", "difficulty", entity.Hard.String())}

	switch difficulty {
	case entity.Easy:
		return easy, nil
	case entity.Medium:
		return &mediumBot{rng: rng, easy: easy, hard: hard}, nil
	case entity.Hard:
		return hard, nil
	default:
		return nil, fmt.Errorf("%w: %d", apperror.ErrUnknownDifficulty, difficulty)
	}
}

// NewBots - one bot per difficulty, sharing rng.
func NewBots(logger *slog.Logger, rng *rand.Rand) map[entity.Difficulty]BotService {
	bots := make(map[entity.Difficulty]BotService, len(entity.Difficulties))
	for _, difficulty := range entity.Difficulties {
		bot, err := NewBotService(logger, difficulty, rng)
		if err != nil {
			panic(err)
		}
		bots[difficulty] = bot
	}

	return bots
}

func confirmPlayable(game *entity.Game) error {
	if game.Board.IsTerminal() {
		return fmt.Errorf("%w: board is terminal", apperror.ErrNoAvailableMoves)
	}

	return nil
}

// easyBot picks uniformly among the empty cells.
type easyBot struct {
	rng *rand.Rand
}

func (that *easyBot) ChooseMove(game *entity.Game) (entity.Move, error) {
	if err := confirmPlayable(game); err != nil {
		return entity.Move{}, err
	}

	availableCells := game.Board.EmptyCells()

	return availableCells[that.rng.Intn(len(availableCells))], nil
}

// mediumBot flips a coin on every move: heads plays like easyBot, tails like hardBot.
type mediumBot struct {
	rng  *rand.Rand
	easy *easyBot
	hard *hardBot
}

func (that *mediumBot) ChooseMove(game *entity.Game) (entity.Move, error) {
	if that.rng.Float64() < 0.5 {
		return that.easy.ChooseMove(game)
	}

	return that.hard.ChooseMove(game)
}

type hardBot struct {
	logger *slog.Logger
}

func (that *hardBot) ChooseMove(game *entity.Game) (entity.Move, error) {
	search := NewSearch(game.Board, game.AI, game.Human)

	result, err := search.OptimalMove()
	if err != nil {
		return entity.Move{}, fmt.Errorf("failed to search: %w", err)
	}

	that.logger.Debug("optimal move found",
		"session", game.ID,
		"move", result.Move.String(),
		"score", result.Score,
		"visited", search.Visited(),
	)

	return result.Move, nil
}
