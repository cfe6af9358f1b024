package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

const (
	msgInvalidChoice = "Invalid choice!"
	msgInvalidMove   = "Invalid move!"
)

// errQuit ends Run after an unknown main menu choice.
var errQuit = errors.New("quit")

type gameManager interface {
	NewGame(board *entity.Board, opts entity.GameOptions) (*entity.Game, error)
	MakeTurn(game *entity.Game, move entity.Move) error
	MakeBotTurn(game *entity.Game) (entity.Move, error)
}

// Handler drives the terminal menus and game loops.
type Handler struct {
	logger  *slog.Logger
	console *Console
	games   gameManager

	// board is reused by every session and reset when one starts
	board entity.Board

	handlers map[string]func(ctx context.Context) error
}

func New(logger *slog.Logger, in io.Reader, out io.Writer, games gameManager) *Handler {
	handler := &Handler{
		logger:  logger.With("component", "cli"),
		console: NewConsole(in, out),
		games:   games,

		handlers: make(map[string]func(ctx context.Context) error),
	}

	handler.handlers["1"] = handler.handleHumanVsAI
	handler.handlers["2"] = handler.handleHumanVsHuman

	return handler
}

// Run - shows the main menu until the player stops, input ends or ctx is canceled.
func (that *Handler) Run(ctx context.Context) error {
	log := that.logger.With("method", "Run")
	defer that.console.Close()

	for {
		err := that.handleMenu(ctx)
		if isClosed(err) {
			log.Info("input closed, exiting", "reason", err)
			return nil
		}

		if errors.Is(err, errQuit) {
			return nil
		}

		if err != nil {
			log.Error("session aborted", "error", err)
			return err
		}

		answer, err := that.console.Ask(ctx, "Play again? (y/n): ")
		if isClosed(err) {
			return nil
		}

		if err != nil {
			return fmt.Errorf("failed to read answer: %w", err)
		}

		if !strings.EqualFold(answer, "y") {
			return nil
		}
	}
}

func (that *Handler) handleMenu(ctx context.Context) error {
	that.console.Println("TIC TAC TOE")
	that.console.Println("1. Human vs AI")
	that.console.Println("2. Human vs Human")

	choice, err := that.console.Ask(ctx, "Choose mode: ")
	if err != nil {
		return err
	}

	handler, ok := that.handlers[choice]
	if !ok {
		that.console.Println(msgInvalidChoice)
		return errQuit
	}

	return handler(ctx)
}

func (that *Handler) handleHumanVsAI(ctx context.Context) error {
	human, err := that.askSymbol(ctx)
	if err != nil {
		return err
	}

	difficulty, err := that.askDifficulty(ctx)
	if err != nil {
		return err
	}

	aiStarts, err := that.askStarter(ctx)
	if err != nil {
		return err
	}

	game, err := that.games.NewGame(&that.board, entity.GameOptions{
		Mode:       entity.HumanVsAI,
		Human:      human,
		Difficulty: difficulty,
		AIStarts:   aiStarts,
	})
	if err != nil {
		return fmt.Errorf("failed to start game: %w", err)
	}

	that.console.Printf("\nHuman vs AI | Difficulty: %s\n", game.Difficulty)
	that.console.Printf("Human: %s | AI: %s\n", game.Human, game.AI)

	return that.play(ctx, game)
}

func (that *Handler) handleHumanVsHuman(ctx context.Context) error {
	game, err := that.games.NewGame(&that.board, entity.GameOptions{Mode: entity.HumanVsHuman})
	if err != nil {
		return fmt.Errorf("failed to start game: %w", err)
	}

	that.console.Println("\nHuman vs Human")
	that.console.Printf("Player %s vs Player %s\n", game.Human, game.AI)

	return that.play(ctx, game)
}

func (that *Handler) askSymbol(ctx context.Context) (entity.Mark, error) {
	for {
		answer, err := that.console.Ask(ctx, "Choose your symbol (X or O): ")
		if err != nil {
			return entity.Empty, err
		}

		mark, err := entity.ParseMark(answer)
		if err == nil {
			return mark, nil
		}

		that.console.Println(msgInvalidChoice)
	}
}

// askDifficulty - anything but 1 or 2 means Hard.
func (that *Handler) askDifficulty(ctx context.Context) (entity.Difficulty, error) {
	that.console.Println("\nChoose Difficulty:")
	for i, difficulty := range entity.Difficulties {
		that.console.Printf("%d. %s\n", i+1, difficulty)
	}

	answer, err := that.console.Ask(ctx, "Enter choice: ")
	if err != nil {
		return 0, err
	}

	switch answer {
	case "1":
		return entity.Easy, nil
	case "2":
		return entity.Medium, nil
	}

	if difficulty, err := entity.ParseDifficulty(answer); err == nil {
		return difficulty, nil
	}

	return entity.Hard, nil
}

func (that *Handler) askStarter(ctx context.Context) (bool, error) {
	that.console.Println("\nWho starts?")
	that.console.Println("1. Human")
	that.console.Println("2. AI")

	for {
		answer, err := that.console.Ask(ctx, "Enter choice: ")
		if err != nil {
			return false, err
		}

		switch answer {
		case "1":
			return false, nil
		case "2":
			return true, nil
		}

		that.console.Println(msgInvalidChoice)
	}
}

func (that *Handler) play(ctx context.Context, game *entity.Game) error {
	log := that.logger.With("method", "play", "session", game.ID)

	for game.IsOngoing() {
		if game.IsAITurn() {
			move, err := that.games.MakeBotTurn(game)
			if err != nil {
				return fmt.Errorf("AI failed to move: %w", err)
			}

			that.console.Printf("AI plays %s\n", move)

			continue
		}

		that.console.Print(game.Board.String())
		if game.Mode == entity.HumanVsHuman {
			that.console.Printf("Player %s's turn\n", game.Turn)
		}

		if err := that.humanTurn(ctx, game); err != nil {
			return err
		}
	}

	that.console.Print(game.Board.String())
	that.console.Println(outcome(game))

	log.Debug("session over", "winner", string(game.Winner))

	return nil
}

// humanTurn - re-prompts until a legal move has been played.
func (that *Handler) humanTurn(ctx context.Context, game *entity.Game) error {
	log := that.logger.With("method", "humanTurn", "session", game.ID)

	for {
		move, err := that.askMove(ctx)
		if err == nil {
			err = that.games.MakeTurn(game, move)
		}

		switch {
		case err == nil:
			return nil
		case isRejectedMove(err):
			log.Debug("move rejected", "error", err)
			that.console.Println(msgInvalidMove)
		default:
			return err
		}
	}
}

func (that *Handler) askMove(ctx context.Context) (entity.Move, error) {
	answer, err := that.console.Ask(ctx, "Enter row (0-2): ")
	if err != nil {
		return entity.Move{}, err
	}

	row, err := ParseCoordinate(answer)
	if err != nil {
		return entity.Move{}, err
	}

	answer, err = that.console.Ask(ctx, "Enter col (0-2): ")
	if err != nil {
		return entity.Move{}, err
	}

	col, err := ParseCoordinate(answer)
	if err != nil {
		return entity.Move{}, err
	}

	return entity.Move{Row: row, Col: col}, nil
}

func outcome(game *entity.Game) string {
	switch {
	case game.IsDraw():
		return "Draw"
	case game.Mode == entity.HumanVsHuman:
		return fmt.Sprintf("Player %s wins", game.Winner)
	case game.Winner == game.Human:
		return "Human wins"
	default:
		return "AI wins"
	}
}

func isRejectedMove(err error) bool {
	return errors.Is(err, apperror.ErrMalformedInput) ||
		errors.Is(err, apperror.ErrInvalidCell) ||
		errors.Is(err, apperror.ErrCellOccupied)
}

func isClosed(err error) bool {
	return errors.Is(err, io.EOF) || errors.Is(err, context.Canceled)
}
