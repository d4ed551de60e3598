package tictactoe

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-history/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-history/internal/entity"
)

var (
	ErrInvalidCell = errors.New("invalid cell index")
	ErrInvalidMark = errors.New("invalid player mark")
)

// ApplyMove - returns a copy of board with cell set to player. The input board is never modified.
func ApplyMove(board entity.Board, cell int, player string) (entity.Board, error) {
	if err := validateMove(board, cell, player); err != nil {
		return board, fmt.Errorf("invalid move: %w", err)
	}

	board[cell] = player

	return board, nil
}

// CalculateWinner - returns the mark of the first complete winning line, or entity.EmptyCell.
func CalculateWinner(board entity.Board) string {
	return board.Line()
}

// validateMove - checks if the move is valid.
func validateMove(board entity.Board, cell int, player string) error {
	if cell < 0 || cell >= len(board) {
		return fmt.Errorf("%w: cell %d", ErrInvalidCell, cell)
	}

	if !entity.IsPlayerMark(player) {
		return fmt.Errorf("%w: %q", ErrInvalidMark, player)
	}

	if CalculateWinner(board) != entity.EmptyCell {
		return apperror.ErrGameFinished
	}

	if board[cell] != entity.EmptyCell {
		return apperror.ErrCellOccupied
	}

	return nil
}
