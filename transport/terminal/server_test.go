package terminal

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rocketscienceinc/tictactoe-history/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-history/internal/config"
	"github.com/rocketscienceinc/tictactoe-history/internal/entity"
	"github.com/rocketscienceinc/tictactoe-history/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-history/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-history/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var errStorageDown = errors.New("storage down")

type mockGame struct {
	mock.Mock
}

func (m *mockGame) MakeTurn(ctx context.Context, cell int) (*entity.GameView, error) {
	args := m.Called(ctx, cell)
	view, _ := args.Get(0).(*entity.GameView)
	return view, args.Error(1)
}

func (m *mockGame) JumpTo(ctx context.Context, step int) (*entity.GameView, error) {
	args := m.Called(ctx, step)
	view, _ := args.Get(0).(*entity.GameView)
	return view, args.Error(1)
}

func (m *mockGame) NewGame(ctx context.Context) *entity.GameView {
	args := m.Called(ctx)
	view, _ := args.Get(0).(*entity.GameView)
	return view
}

func (m *mockGame) State(ctx context.Context) *entity.GameView {
	args := m.Called(ctx)
	view, _ := args.Get(0).(*entity.GameView)
	return view
}

var terminalConf = config.Terminal{Prompt: "> ", EmptyGlyph: "."}

func startView() *entity.GameView {
	return &entity.GameView{
		ID:     "g1",
		Board:  entity.NewBoard(),
		Turn:   entity.PlayerX,
		Status: "Next player: X",
		Moves:  []string{"Go to game start"},
	}
}

func TestServer_renderView(t *testing.T) {
	_, st := suite.New(t)
	server := New(st.Logger, &mockGame{}, terminalConf)

	// Given: a view two moves into the game
	view := &entity.GameView{
		Board:  entity.Board{entity.PlayerX, "", "", "", entity.PlayerO, "", "", "", ""},
		Step:   2,
		Turn:   entity.PlayerX,
		Status: "Next player: X",
		Moves:  []string{"Go to game start", "Go to move #1", "Go to move #2"},
	}

	// When: rendering it
	var out bytes.Buffer
	err := server.renderView(&out, view)

	// Then: the grid, the status and the move list are printed with the current step marked
	require.NoError(t, err)
	expected := "\n" +
		" X | . | . \n" +
		"---+---+---\n" +
		" . | O | . \n" +
		"---+---+---\n" +
		" . | . | . \n" +
		"\n" +
		"Next player: X\n" +
		"  0. Go to game start\n" +
		"  1. Go to move #1\n" +
		"* 2. Go to move #2\n"
	assert.Equal(t, expected, out.String())
}

func TestServer_Start(t *testing.T) {
	t.Run("Dispatches move and quit", func(t *testing.T) {
		ctx, st := suite.New(t)
		game := &mockGame{}
		server := New(st.Logger, game, terminalConf)

		moved := startView()
		moved.Board[4] = entity.PlayerX
		moved.Step = 1
		moved.Turn = entity.PlayerO
		moved.Status = "Next player: O"
		moved.Moves = append(moved.Moves, "Go to move #1")

		game.On("State", mock.Anything).Return(startView()).Once()
		game.On("MakeTurn", mock.Anything, 4).Return(moved, nil).Once()

		// When: the player types a move and quits
		var out bytes.Buffer
		err := server.Start(ctx, strings.NewReader("move 4\nquit\nmove 5\n"), &out)

		// Then: the move reaches the game and nothing after quit does
		require.NoError(t, err)
		assert.Contains(t, out.String(), "Next player: O")
		assert.Contains(t, out.String(), "* 1. Go to move #1")
		game.AssertExpectations(t)
	})

	t.Run("Bare number is a move and jump is forwarded", func(t *testing.T) {
		ctx, st := suite.New(t)
		game := &mockGame{}
		server := New(st.Logger, game, terminalConf)

		game.On("State", mock.Anything).Return(startView()).Once()
		game.On("MakeTurn", mock.Anything, 0).Return(startView(), nil).Once()
		game.On("JumpTo", mock.Anything, 0).Return(startView(), nil).Once()

		// When: the input ends without quit
		var out bytes.Buffer
		err := server.Start(ctx, strings.NewReader("0\n\n  jump 0  \n"), &out)

		// Then: both commands were dispatched and the server stops cleanly
		require.NoError(t, err)
		game.AssertExpectations(t)
	})

	t.Run("Bad input is reported", func(t *testing.T) {
		ctx, st := suite.New(t)
		game := &mockGame{}
		server := New(st.Logger, game, terminalConf)

		game.On("State", mock.Anything).Return(startView()).Once()

		// When: the player types unknown and malformed commands
		var out bytes.Buffer
		err := server.Start(ctx, strings.NewReader("dance\nmove\nmove x\njump 1 2\nhelp\n"), &out)

		// Then: each one is answered and the game is never touched
		require.NoError(t, err)
		assert.Contains(t, out.String(), `unknown command: "dance", type help`)
		assert.Contains(t, out.String(), "usage: move <0-8>")
		assert.Contains(t, out.String(), "usage: jump <step>")
		assert.Contains(t, out.String(), "start a new game")
		game.AssertExpectations(t)
	})

	t.Run("Unexpected game error stops the server", func(t *testing.T) {
		ctx, st := suite.New(t)
		game := &mockGame{}
		server := New(st.Logger, game, terminalConf)

		game.On("State", mock.Anything).Return(startView()).Once()
		game.On("MakeTurn", mock.Anything, 1).Return((*entity.GameView)(nil), errStorageDown).Once()

		// When: the game fails with an error that is not an ignored move
		var out bytes.Buffer
		err := server.Start(ctx, strings.NewReader("move 1\n"), &out)

		// Then: the error is returned
		require.ErrorIs(t, err, errStorageDown)
	})

	t.Run("Canceled context stops the server", func(t *testing.T) {
		ctx, st := suite.New(t)
		game := &mockGame{}
		server := New(st.Logger, game, terminalConf)

		game.On("State", mock.Anything).Return(startView()).Once()

		ctx, cancel := context.WithCancel(ctx)
		cancel()

		// When: the context is already canceled
		var out bytes.Buffer
		err := server.Start(ctx, blockingReader{}, &out)

		// Then: Start returns without reading input
		require.NoError(t, err)
	})

	t.Run("Canceled context drops pending lines", func(t *testing.T) {
		ctx, st := suite.New(t)
		ctx, cancel := context.WithCancel(ctx)
		cancel()

		input := strings.Repeat("move 4\n", 50)

		for i := 0; i < 20; i++ {
			game := &mockGame{}
			game.Test(t)
			server := New(st.Logger, game, terminalConf)

			game.On("State", mock.Anything).Return(startView()).Once()

			// When: input is waiting but the context is already canceled
			var out bytes.Buffer
			err := server.Start(ctx, strings.NewReader(input), &out)

			// Then: no line reaches the game
			require.NoError(t, err)
			game.AssertExpectations(t)
			game.AssertNotCalled(t, "MakeTurn", mock.Anything, mock.Anything)
		}
	})
}

func TestServer_Start_PlaysAGame(t *testing.T) {
	ctx, st := suite.New(t)
	manager := usecase.NewGameManager(st.Logger, tictactoe.NewGame())
	server := New(st.Logger, manager, terminalConf)

	// When: X wins on the top row, both players try to play on, then jump back and branch off
	input := strings.Join([]string{
		"move 0", "move 4", "move 1", "move 3", "move 2",
		"move 5",
		"jump 9",
		"jump 4",
		"move 5",
		"quit",
	}, "\n")

	var out bytes.Buffer
	err := server.Start(ctx, strings.NewReader(input), &out)
	require.NoError(t, err)

	// Then: the win, the ignored commands and the branch are all visible
	output := out.String()
	assert.Contains(t, output, "Winner: X")
	assert.Contains(t, output, apperror.ErrMoveIgnored.Error()+": "+apperror.ErrGameFinished.Error())
	assert.Contains(t, output, tictactoe.ErrInvalidStep.Error())

	view := manager.State(ctx)
	assert.Equal(t, 5, view.Step)
	assert.Len(t, view.Moves, 6)
	assert.Equal(t, entity.PlayerX, view.Board[5])
	assert.Equal(t, entity.EmptyCell, view.Board[2])
	assert.Equal(t, "Next player: O", view.Status)
}

// blockingReader never returns, like an idle terminal.
type blockingReader struct{}

func (blockingReader) Read(_ []byte) (int, error) {
	select {}
}
