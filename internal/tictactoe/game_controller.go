package tictactoe

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-history/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-history/internal/entity"
)

var ErrInvalidStep = errors.New("invalid history step")

const (
	moveStartLabel = "Go to game start"
	moveLabel      = "Go to move #%d"
)

// Game holds the move history and the cursor into it. The player to move and the
// winner are always derived from the snapshot at the cursor.
type Game struct {
	history []entity.Board
	step    int
}

func NewGame() *Game {
	return &Game{
		history: []entity.Board{entity.NewBoard()},
		step:    0,
	}
}

// Move - plays the current player's mark on cell. A rejected move leaves the game untouched,
// the returned error only says why.
func (that *Game) Move(cell int) error {
	current := that.CurrentBoard()

	if CalculateWinner(current) != entity.EmptyCell {
		return apperror.ErrGameFinished
	}

	next, err := ApplyMove(current, cell, that.CurrentPlayer())
	if err != nil {
		return err
	}

	// drop the future we jumped back from
	that.history = append(that.history[:that.step+1:that.step+1], next)
	that.step = len(that.history) - 1

	return nil
}

// JumpTo - moves the cursor to step without touching the history.
func (that *Game) JumpTo(step int) error {
	if step < 0 || step >= len(that.history) {
		return fmt.Errorf("%w: %d of %d", ErrInvalidStep, step, len(that.history))
	}

	that.step = step

	return nil
}

// Reset - starts a new game.
func (that *Game) Reset() {
	that.history = []entity.Board{entity.NewBoard()}
	that.step = 0
}

func (that *Game) CurrentBoard() entity.Board {
	return that.history[that.step]
}

func (that *Game) CurrentPlayer() string {
	if that.step%2 == 0 {
		return entity.PlayerX
	}
	return entity.PlayerO
}

func (that *Game) Winner() string {
	return CalculateWinner(that.CurrentBoard())
}

func (that *Game) IsFinished() bool {
	return that.CurrentBoard().Result() != entity.EmptyCell
}

// Status - "Winner: X" once a line is complete, otherwise the player to move.
// A drawn board still names the next player, IsFinished tells it apart.
func (that *Game) Status() string {
	if winner := that.Winner(); winner != entity.EmptyCell {
		return "Winner: " + winner
	}

	return "Next player: " + that.CurrentPlayer()
}

func (that *Game) Step() int {
	return that.step
}

// Len - number of snapshots in the history, the game start included.
func (that *Game) Len() int {
	return len(that.history)
}

// Snapshot - the board as it was after step moves.
func (that *Game) Snapshot(step int) (entity.Board, error) {
	if step < 0 || step >= len(that.history) {
		return entity.Board{}, fmt.Errorf("%w: %d of %d", ErrInvalidStep, step, len(that.history))
	}

	return that.history[step], nil
}

// Moves - labels for the jump list, one per snapshot.
func (that *Game) Moves() []string {
	moves := make([]string, 0, len(that.history))
	for step := range that.history {
		if step == 0 {
			moves = append(moves, moveStartLabel)
			continue
		}
		moves = append(moves, fmt.Sprintf(moveLabel, step))
	}

	return moves
}
