package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/gorilla/schema"
	"github.com/vancomm/minesweeper/internal/mines"
)

const (
	MaxWidth  = 99
	MaxHeight = 99
)

var ErrInvalidGame = errors.New("invalid game settings")

type Game struct {
	Width      int              `schema:"width"`
	Height     int              `schema:"height"`
	Difficulty mines.Difficulty `schema:"difficulty"`
}

func DefaultGame() Game {
	return Game{Width: 9, Height: 9, Difficulty: mines.Easy}
}

var gameEnv = map[string]string{
	"width":      "MINES_WIDTH",
	"height":     "MINES_HEIGHT",
	"difficulty": "MINES_DIFFICULTY",
}

// NewGame reads the MINES_* env variables on top of the defaults.
func NewGame() (Game, error) {
	src := make(map[string][]string)
	for key, env := range gameEnv {
		if v, ok := os.LookupEnv(env); ok {
			src[key] = []string{v}
		}
	}
	g, err := DefaultGame().Decode(src)
	if err != nil {
		return Game{}, fmt.Errorf("unable to read game env: %w", err)
	}
	return g, nil
}

// Decode overrides the settings present in src, a query-style map such as
// url.Values, and validates the result.
func (g Game) Decode(src map[string][]string) (Game, error) {
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	if err := dec.Decode(&g, src); err != nil {
		return Game{}, fmt.Errorf("%w: %w", ErrInvalidGame, err)
	}
	if err := g.Validate(); err != nil {
		return Game{}, err
	}
	return g, nil
}

func (g Game) Validate() error {
	if g.Width < 1 || g.Width > MaxWidth {
		return fmt.Errorf("%w: width must be within 1..%d", ErrInvalidGame, MaxWidth)
	}
	if g.Height < 1 || g.Height > MaxHeight {
		return fmt.Errorf("%w: height must be within 1..%d", ErrInvalidGame, MaxHeight)
	}
	if _, ok := g.Difficulty.Threshold(); !ok {
		return fmt.Errorf("%w: %w", ErrInvalidGame, mines.ErrUnknownDifficulty)
	}
	return nil
}
