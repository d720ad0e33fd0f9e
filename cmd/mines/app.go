package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"

	"github.com/vancomm/minesweeper/internal/config"
	"github.com/vancomm/minesweeper/internal/console"
	"github.com/vancomm/minesweeper/internal/journal"
	"github.com/vancomm/minesweeper/internal/mines"
)

var errQuit = errors.New("quit")

type application struct {
	logger   *slog.Logger
	journal  *journal.Journal
	rnd      *rand.Rand
	out      io.Writer
	settings config.Game
	board    *mines.Board

	// generates boards; tests swap in fixed layouts
	newBoard func(config.Game, *rand.Rand) (*mines.Board, error)
}

func generateBoard(g config.Game, r *rand.Rand) (*mines.Board, error) {
	return mines.NewBoard(g.Width, g.Height, g.Difficulty, r)
}

func (app *application) printf(format string, args ...any) {
	if _, err := fmt.Fprintf(app.out, format, args...); err != nil {
		app.logger.Error("failed to write output", slog.Any("error", err))
	}
}

func (app *application) printBoard() {
	if err := console.WriteBoard(app.out, app.board); err != nil {
		app.logger.Error("failed to write board", slog.Any("error", err))
	}
	app.printf("%s\n", console.Status(app.board))
}

func (app *application) newGame(settings config.Game) error {
	board, err := app.newBoard(settings, app.rnd)
	if err != nil {
		return fmt.Errorf("unable to generate a new game: %w", err)
	}
	if app.board != nil && !app.board.Finished() {
		app.journal.GameEnded(app.board)
	}
	app.settings = settings
	app.board = board
	app.journal.GameStarted(board, settings.Difficulty)
	app.logger.Info("new game",
		slog.Int("width", settings.Width),
		slog.Int("height", settings.Height),
		slog.String("difficulty", settings.Difficulty.String()),
	)
	return nil
}

func (app *application) mark(cmd console.Command, m mines.Mark) mines.Result {
	res := app.board.SetMark(cmd.X, cmd.Y, m)
	app.journal.MarkMove(app.board, res, m)
	return res
}

func (app *application) execute(cmd console.Command) error {
	var res mines.Result
	switch cmd.Name {
	case "x":
		return errQuit
	case "h":
		app.printf("%s", console.Help)
		return nil
	case "p":
		app.printBoard()
		return nil
	case "n":
		query, err := cmd.Query()
		if err != nil {
			return err
		}
		settings, err := app.settings.Decode(query)
		if err != nil {
			return err
		}
		if err := app.newGame(settings); err != nil {
			return err
		}
		app.printBoard()
		return nil
	case "o":
		res = app.board.Reveal(cmd.X, cmd.Y)
		app.journal.Move(app.board, res)
	case "c":
		res = app.board.Chord(cmd.X, cmd.Y)
		app.journal.Move(app.board, res)
	case "f":
		res = app.mark(cmd, mines.Flagged)
	case "q":
		res = app.mark(cmd, mines.Questioned)
	case "u":
		res = app.mark(cmd, mines.None)
	default:
		return console.ErrUnknownCommand
	}

	if !res.Ok() {
		app.printf("%s\n", console.Describe(res))
		return nil
	}
	app.printBoard()
	if app.board.Finished() {
		app.journal.GameEnded(app.board)
		app.printf("Type n to play again or x to quit.\n")
	}
	return nil
}

func readLines(r io.Reader) <-chan string {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
	}()
	return lines
}

func (app *application) run(ctx context.Context, lines <-chan string) error {
	if err := app.newGame(app.settings); err != nil {
		return err
	}
	defer func() {
		if !app.board.Finished() {
			app.journal.GameEnded(app.board)
		}
	}()

	app.printBoard()
	for {
		app.printf("> ")
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				return nil
			}
			cmd, err := console.ParseCommand(line)
			if errors.Is(err, console.ErrEmptyCommand) {
				continue
			}
			if err == nil {
				err = app.execute(cmd)
			}
			if errors.Is(err, errQuit) {
				return nil
			}
			if err != nil {
				app.printf("%s (h for help)\n", err)
			}
		}
	}
}
