package main

import (
	"context"
	"flag"
	"hash/maphash"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/vancomm/minesweeper/internal/config"
	"github.com/vancomm/minesweeper/internal/journal"
	"github.com/vancomm/minesweeper/internal/mines"
)

var (
	width       int
	height      int
	difficulty  string
	journalPath string
)

func init() {
	flag.IntVar(&width, "width", 0, "board width (overrides MINES_WIDTH)")
	flag.IntVar(&height, "height", 0, "board height (overrides MINES_HEIGHT)")
	flag.StringVar(&difficulty, "difficulty", "", "easy, medium or hard (overrides MINES_DIFFICULTY)")
	flag.StringVar(&journalPath, "journal", "", "move journal file (overrides MINES_JOURNAL_FILE)")
}

func createRand() *rand.Rand {
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

// flagSettings collects the game flags given on the command line.
func flagSettings() map[string][]string {
	src := make(map[string][]string)
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			src["width"] = []string{strconv.Itoa(width)}
		case "height":
			src["height"] = []string{strconv.Itoa(height)}
		case "difficulty":
			src["difficulty"] = []string{difficulty}
		}
	})
	return src
}

func main() {
	flag.Parse()

	logger := config.NewLogger(os.Stderr)
	mines.Log = logger.With(slog.String("component", "mines"))

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	settings, err := config.NewGame()
	if err != nil {
		logger.Error("failed to read game config", slog.Any("error", err))
		os.Exit(1)
	}
	settings, err = settings.Decode(flagSettings())
	if err != nil {
		logger.Error("invalid game flags", slog.Any("error", err))
		os.Exit(1)
	}

	journalCfg, err := config.NewJournal()
	if err != nil {
		logger.Error("failed to read journal config", slog.Any("error", err))
		os.Exit(1)
	}
	if journalPath != "" {
		journalCfg.Filename = journalPath
	}

	var j *journal.Journal
	if journalCfg.Enabled() {
		j, err = journal.New(*journalCfg)
		if err != nil {
			logger.Error("failed to open journal", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Debug("journal enabled", slog.String("file", journalCfg.Filename))
	}

	app := &application{
		logger:   logger,
		journal:  j,
		rnd:      createRand(),
		out:      os.Stdout,
		settings: settings,
		newBoard: generateBoard,
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer stop()
		return app.run(gCtx, readLines(os.Stdin))
	})
	g.Go(func() error {
		<-gCtx.Done()
		logger.Debug("game loop stopped", slog.Any("cause", context.Cause(gCtx)))
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("exit reason", slog.Any("error", err))
		os.Exit(1)
	}
}
