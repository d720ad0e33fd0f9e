// Package journal keeps an append-only record of moves, one JSON line per
// entry, in a size-rotated file.
package journal

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"

	"github.com/vancomm/minesweeper/internal/config"
	"github.com/vancomm/minesweeper/internal/mines"
)

// A nil *Journal drops every entry.
type Journal struct {
	log  *logrus.Logger
	game int
}

func New(cfg config.Journal) (*Journal, error) {
	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   cfg.Filename,
		MaxSize:    cfg.MaxSize,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAge,
		Level:      logrus.InfoLevel,
		Formatter:  &logrus.JSONFormatter{},
	})
	if err != nil {
		return nil, fmt.Errorf("unable to create journal file hook: %w", err)
	}

	log := logrus.New()
	log.SetOutput(io.Discard)
	log.AddHook(hook)

	return NewWithLogger(log), nil
}

func NewWithLogger(log *logrus.Logger) *Journal {
	return &Journal{log: log}
}

func boardFields(b *mines.Board) logrus.Fields {
	return logrus.Fields{
		"width":    b.Width(),
		"height":   b.Height(),
		"mines":    b.MineCount(),
		"revealed": b.RevealedCount(),
	}
}

func (j *Journal) GameStarted(b *mines.Board, d mines.Difficulty) {
	if j == nil {
		return
	}
	j.game++
	j.log.WithFields(boardFields(b)).
		WithField("game", j.game).
		WithField("difficulty", d.String()).
		Info("game started")
}

func (j *Journal) Move(b *mines.Board, res mines.Result) {
	if j == nil {
		return
	}
	entry := j.log.WithFields(boardFields(b)).WithFields(logrus.Fields{
		"game": j.game,
		"move": res.Move.String(),
		"x":    res.X,
		"y":    res.Y,
	})
	if !res.Ok() {
		entry.WithField("reason", res.Rejection.Error()).Warn("move rejected")
		return
	}
	entry.Info("move")
}

func (j *Journal) MarkMove(b *mines.Board, res mines.Result, m mines.Mark) {
	if j == nil {
		return
	}
	entry := j.log.WithFields(logrus.Fields{
		"game": j.game,
		"move": res.Move.String(),
		"mark": m.String(),
		"x":    res.X,
		"y":    res.Y,
	})
	if !res.Ok() {
		entry.WithField("reason", res.Rejection.Error()).Warn("move rejected")
		return
	}
	entry.WithField("flags", b.MarkCount(mines.Flagged)).Info("move")
}

func (j *Journal) GameEnded(b *mines.Board) {
	if j == nil {
		return
	}
	outcome := "abandoned"
	switch {
	case b.Won():
		outcome = "won"
	case b.Lost():
		outcome = "lost"
	}
	j.log.WithFields(boardFields(b)).
		WithField("game", j.game).
		WithField("outcome", outcome).
		Info("game ended")
}
