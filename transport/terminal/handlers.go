package terminal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/rocketscienceinc/tictactoe-history/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-history/internal/entity"
)

func (that *Server) handleMove(ctx context.Context, msg *Message, writer io.Writer) error {
	cell, err := singleIntArg(msg)
	if err != nil {
		return that.writeLine(writer, "usage: move <0-8>")
	}

	view, err := that.uGame.MakeTurn(ctx, cell)

	return that.respond(writer, view, err)
}

func (that *Server) handleJump(ctx context.Context, msg *Message, writer io.Writer) error {
	step, err := singleIntArg(msg)
	if err != nil {
		return that.writeLine(writer, "usage: jump <step>")
	}

	view, err := that.uGame.JumpTo(ctx, step)

	return that.respond(writer, view, err)
}

func (that *Server) handleNewGame(ctx context.Context, _ *Message, writer io.Writer) error {
	return that.renderView(writer, that.uGame.NewGame(ctx))
}

func (that *Server) handleShow(ctx context.Context, _ *Message, writer io.Writer) error {
	return that.renderView(writer, that.uGame.State(ctx))
}

func (that *Server) handleHelp(_ context.Context, _ *Message, writer io.Writer) error {
	if _, err := io.WriteString(writer, helpText); err != nil {
		return fmt.Errorf("failed to write help: %w", err)
	}

	return nil
}

func (that *Server) handleQuit(_ context.Context, _ *Message, _ io.Writer) error {
	return errQuit
}

// respond - renders the view; an ignored move is reported, anything else is a failure.
func (that *Server) respond(writer io.Writer, view *entity.GameView, err error) error {
	if err != nil && !errors.Is(err, apperror.ErrMoveIgnored) {
		return fmt.Errorf("failed to process command: %w", err)
	}

	if err != nil {
		if wErr := that.writeLine(writer, err.Error()); wErr != nil {
			return wErr
		}
	}

	return that.renderView(writer, view)
}

func singleIntArg(msg *Message) (int, error) {
	if len(msg.Args) != 1 {
		return 0, fmt.Errorf("expected one argument, got %d", len(msg.Args))
	}

	value, err := strconv.Atoi(msg.Args[0])
	if err != nil {
		return 0, fmt.Errorf("failed to parse argument: %w", err)
	}

	return value, nil
}
