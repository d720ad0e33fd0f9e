package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/minesweeper/internal/config"
	"github.com/vancomm/minesweeper/internal/journal"
	"github.com/vancomm/minesweeper/internal/mines"
)

// fixedBoards ignores the settings' difficulty and places a single mine in
// the top-left corner.
func fixedBoards(g config.Game, _ *rand.Rand) (*mines.Board, error) {
	layout := make([]bool, g.Width*g.Height)
	layout[0] = true
	return mines.NewBoardFromMines(g.Width, g.Height, layout)
}

func newTestApp(t *testing.T, settings config.Game) (*application, *bytes.Buffer, *test.Hook) {
	t.Helper()
	logger, hook := test.NewNullLogger()
	var out bytes.Buffer
	app := &application{
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		journal:  journal.NewWithLogger(logger),
		rnd:      rand.New(rand.NewPCG(1, 2)),
		out:      &out,
		settings: settings,
		newBoard: fixedBoards,
	}
	return app, &out, hook
}

func feed(lines ...string) <-chan string {
	ch := make(chan string, len(lines))
	for _, l := range lines {
		ch <- l
	}
	close(ch)
	return ch
}

func TestRunWinningGame(t *testing.T) {
	app, out, hook := newTestApp(t, config.Game{Width: 3, Height: 1, Difficulty: mines.Easy})

	err := app.run(context.Background(), feed(
		"",
		"h",
		"o 5 5",
		"f 0 0",
		"f 0 0",
		"o 2 0",
		"o 1 0",
		"x",
		"o 0 0",
	))
	require.NoError(t, err)

	s := out.String()
	assert.Contains(t, s, "\\ 0 1 2\n0 . . .\n")
	assert.Contains(t, s, "commands:")
	assert.Contains(t, s, "Tile out of bounds!")
	assert.Contains(t, s, "Tile already holds this mark!")
	assert.Contains(t, s, "You won!")
	assert.Contains(t, s, "Type n to play again")
	assert.Contains(t, s, "Game is already over!")
	assert.True(t, app.board.Won())

	var messages []string
	for _, e := range hook.AllEntries() {
		messages = append(messages, e.Message)
	}
	assert.Equal(t, []string{
		"game started", "move rejected", "move", "move rejected", "move", "game ended", "move rejected",
	}, messages)
}

func TestRunLosingGame(t *testing.T) {
	app, out, _ := newTestApp(t, config.Game{Width: 2, Height: 2, Difficulty: mines.Hard})

	require.NoError(t, app.run(context.Background(), feed("o 0 0")))
	assert.True(t, app.board.Lost())
	assert.Contains(t, out.String(), "\\ 0 1\n0 X 1\n1 1 1\n")
	assert.Contains(t, out.String(), "Boom! You lost.")
}

func TestRunNewGame(t *testing.T) {
	app, out, hook := newTestApp(t, config.DefaultGame())

	require.NoError(t, app.run(context.Background(), feed(
		"n width=4 height=2 difficulty=hard",
		"n width=0",
		"n %zz",
		"z",
		"o 1",
	)))
	assert.Equal(t, config.Game{Width: 4, Height: 2, Difficulty: mines.Hard}, app.settings)
	assert.Equal(t, 4, app.board.Width())

	s := out.String()
	assert.Contains(t, s, "\\ 0 1 2 3\n0 . . . .\n1 . . . .\n")
	assert.Contains(t, s, "invalid game settings")
	assert.Contains(t, s, "unknown command (h for help)")
	assert.Contains(t, s, "invalid number of arguments (h for help)")

	/* the abandoned 9x9 and 4x2 games are both closed in the journal */
	ended := 0
	for _, e := range hook.AllEntries() {
		if e.Message == "game ended" {
			ended++
			assert.Equal(t, "abandoned", e.Data["outcome"])
		}
	}
	assert.Equal(t, 2, ended)
}

func TestRunMarksAndChord(t *testing.T) {
	app, out, _ := newTestApp(t, config.Game{Width: 3, Height: 3, Difficulty: mines.Easy})

	require.NoError(t, app.run(context.Background(), feed(
		"q 2 2",
		"u 2 2",
		"u 2 2",
		"o 1 1",
		"f 1 1",
		"c 1 1",
		"f 0 0",
		"c 1 1",
	)))
	s := out.String()
	assert.Contains(t, s, "2 . . ?")
	assert.Contains(t, s, "Cannot mark a revealed tile!")
	assert.Contains(t, s, "Flag count does not match the tile number!")
	assert.True(t, app.board.Won())
	assert.Equal(t, 1, strings.Count(s, "You won!"))
}

func TestRunCancelled(t *testing.T) {
	app, _, hook := newTestApp(t, config.DefaultGame())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, app.run(ctx, make(chan string)))
	assert.Equal(t, "game ended", hook.LastEntry().Message)
}

func TestReadLines(t *testing.T) {
	var got []string
	for line := range readLines(strings.NewReader("o 1 1\nx\n")) {
		got = append(got, line)
	}
	assert.Equal(t, []string{"o 1 1", "x"}, got)
}
