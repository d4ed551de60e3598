package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-history/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-history/internal/entity"
	"github.com/rocketscienceinc/tictactoe-history/internal/pkg"
	"github.com/rocketscienceinc/tictactoe-history/internal/tictactoe"
)

type game interface {
	Move(cell int) error
	JumpTo(step int) error
	Reset()

	CurrentBoard() entity.Board
	CurrentPlayer() string
	Winner() string
	Status() string
	Step() int
	Moves() []string
	IsFinished() bool
}

// GameManager - drives one game session for the rendering layer.
type GameManager struct {
	logger *slog.Logger

	gameID string
	game   game
}

func NewGameManager(logger *slog.Logger, game *tictactoe.Game) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),
		gameID: pkg.GenerateGameID(),
		game:   game,
	}
}

// MakeTurn - plays cell for the player to move. An ignored move returns the unchanged state
// together with an error wrapping apperror.ErrMoveIgnored.
func (that *GameManager) MakeTurn(ctx context.Context, cell int) (*entity.GameView, error) {
	log := that.logger.With("method", "MakeTurn", "gameID", that.gameID)

	player := that.game.CurrentPlayer()

	if err := that.game.Move(cell); err != nil {
		log.DebugContext(ctx, "move ignored", "cell", cell, "player", player, "reason", err)

		return that.State(ctx), fmt.Errorf("%w: %w", apperror.ErrMoveIgnored, err)
	}

	log.InfoContext(ctx, "move played", "cell", cell, "player", player, "step", that.game.Step())

	if that.game.IsFinished() {
		log.InfoContext(ctx, "game finished", "status", that.game.Status())
	}

	return that.State(ctx), nil
}

// JumpTo - moves to an earlier (or later) snapshot without changing the history.
func (that *GameManager) JumpTo(ctx context.Context, step int) (*entity.GameView, error) {
	log := that.logger.With("method", "JumpTo", "gameID", that.gameID)

	if err := that.game.JumpTo(step); err != nil {
		log.DebugContext(ctx, "jump ignored", "step", step, "reason", err)

		return that.State(ctx), fmt.Errorf("%w: %w", apperror.ErrMoveIgnored, err)
	}

	log.InfoContext(ctx, "jumped", "step", step)

	return that.State(ctx), nil
}

// NewGame - drops the history and starts a fresh session.
func (that *GameManager) NewGame(ctx context.Context) *entity.GameView {
	that.game.Reset()
	that.gameID = pkg.GenerateGameID()

	that.logger.InfoContext(ctx, "new game started", "gameID", that.gameID)

	return that.State(ctx)
}

func (that *GameManager) State(_ context.Context) *entity.GameView {
	view := &entity.GameView{
		ID:       that.gameID,
		Board:    that.game.CurrentBoard(),
		Step:     that.game.Step(),
		Winner:   that.game.Winner(),
		Status:   that.game.Status(),
		Moves:    that.game.Moves(),
		Finished: that.game.IsFinished(),
	}

	if !view.Finished {
		view.Turn = that.game.CurrentPlayer()
	}

	return view
}
