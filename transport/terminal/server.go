package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-history/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-history/internal/config"
	"github.com/rocketscienceinc/tictactoe-history/internal/entity"
)

var errQuit = errors.New("quit requested")

type uGame interface {
	MakeTurn(ctx context.Context, cell int) (*entity.GameView, error)
	JumpTo(ctx context.Context, step int) (*entity.GameView, error)
	NewGame(ctx context.Context) *entity.GameView
	State(ctx context.Context) *entity.GameView
}

type Server struct {
	logger *slog.Logger
	uGame  uGame

	prompt     string
	emptyGlyph string

	handlers map[string]func(ctx context.Context, message *Message, writer io.Writer) error
}

func New(logger *slog.Logger, uGame uGame, conf config.Terminal) *Server {
	server := &Server{
		logger: logger.With("component", "terminal"),
		uGame:  uGame,

		prompt:     conf.Prompt,
		emptyGlyph: conf.EmptyGlyph,

		handlers: make(map[string]func(context.Context, *Message, io.Writer) error),
	}

	server.handlers[actionMove] = server.handleMove
	server.handlers[actionJump] = server.handleJump
	server.handlers[actionNew] = server.handleNewGame
	server.handlers[actionShow] = server.handleShow
	server.handlers[actionHelp] = server.handleHelp
	server.handlers[actionQuit] = server.handleQuit

	return server
}

// Start - reads commands from reader until quit, end of input or ctx is done.
func (that *Server) Start(ctx context.Context, reader io.Reader, writer io.Writer) error {
	log := that.logger.With("method", "Start")

	lines := make(chan string)
	readErr := make(chan error, 1)

	// A Read blocked on an idle terminal cannot be interrupted, the goroutine ends with the process.
	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(reader)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		readErr <- scanner.Err()
	}()

	if err := that.handleShow(ctx, nil, writer); err != nil {
		return err
	}

	for {
		if err := that.writePrompt(writer); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			log.Info("context canceled, stopping terminal")
			return nil
		case line, ok := <-lines:
			if !ok {
				return that.finishInput(readErr)
			}

			if ctx.Err() != nil {
				log.Info("context canceled, dropping pending input")
				return nil
			}

			err := that.handleLine(ctx, line, writer)
			if errors.Is(err, errQuit) {
				log.Info("quit requested")
				return nil
			}
			if err != nil {
				return err
			}
		}
	}
}

// handleLine - dispatches one input line to its handler.
func (that *Server) handleLine(ctx context.Context, line string, writer io.Writer) error {
	log := that.logger.With("method", "handleLine")

	message, ok := parseMessage(line)
	if !ok {
		return nil
	}

	handler, ok := that.handlers[message.Action]
	if !ok {
		log.Debug("unknown command", "action", message.Action)
		return that.writeLine(writer, fmt.Sprintf("%v: %q, type help", apperror.ErrUnknownCommand, message.Action))
	}

	return handler(ctx, message, writer)
}

func (that *Server) finishInput(readErr <-chan error) error {
	select {
	case err := <-readErr:
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
	default:
	}

	that.logger.Info("input closed, stopping terminal")

	return nil
}

func (that *Server) writePrompt(writer io.Writer) error {
	if _, err := io.WriteString(writer, that.prompt); err != nil {
		return fmt.Errorf("failed to write prompt: %w", err)
	}

	return nil
}

func (that *Server) writeLine(writer io.Writer, line string) error {
	if _, err := io.WriteString(writer, line+"\n"); err != nil {
		return fmt.Errorf("failed to write response: %w", err)
	}

	return nil
}

// parseMessage - splits a line into action and arguments. A bare number is a move.
func parseMessage(line string) (*Message, bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, false
	}

	action := strings.ToLower(fields[0])
	if _, err := strconv.Atoi(action); err == nil {
		return &Message{Action: actionMove, Args: fields}, true
	}

	return &Message{Action: action, Args: fields[1:]}, true
}
