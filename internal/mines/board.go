package mines

import (
	"errors"
	"fmt"
	"iter"
	"math/rand/v2"
)

var (
	ErrInvalidDimensions = errors.New("board dimensions must be positive")
	ErrLayoutMismatch    = errors.New("mine layout does not match board dimensions")
	ErrGameInProgress    = errors.New("game is still in progress")
)

type cell struct {
	mine     bool
	revealed bool
	adjacent int
	mark     Mark
}

type Board struct {
	width, height int
	cells         []cell /* row-major, y*width + x */
	mineCount     int
	revealedCount int
	lost          bool
}

// NewBoard seeds every cell independently: a cell holds a mine when a draw in
// [0,100) exceeds the difficulty threshold.
func NewBoard(width, height int, d Difficulty, r *rand.Rand) (*Board, error) {
	threshold, ok := d.Threshold()
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownDifficulty, uint8(d))
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}

	layout := make([]bool, width*height)
	for i := range layout {
		layout[i] = r.IntN(100) > threshold
	}

	b := newBoard(width, height, layout)
	Log.Debug("generated board",
		"width", width, "height", height,
		"difficulty", d.String(), "mines", b.mineCount,
	)
	return b, nil
}

// NewBoardFromMines builds a board from a fixed row-major mine layout.
func NewBoardFromMines(width, height int, layout []bool) (*Board, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if len(layout) != width*height {
		return nil, fmt.Errorf(
			"%w: have %d cells, want %d", ErrLayoutMismatch, len(layout), width*height,
		)
	}
	return newBoard(width, height, layout), nil
}

func newBoard(width, height int, layout []bool) *Board {
	b := &Board{
		width:  width,
		height: height,
		cells:  make([]cell, width*height),
	}
	for i, mine := range layout {
		b.cells[i].mine = mine
		if mine {
			b.mineCount++
		}
	}
	/* counts need every mine in place */
	for i := range b.cells {
		for j := range b.neighbours(i) {
			if b.cells[j].mine {
				b.cells[i].adjacent++
			}
		}
	}
	return b
}

func (b *Board) Width() int  { return b.width }
func (b *Board) Height() int { return b.height }

func (b *Board) MineCount() int     { return b.mineCount }
func (b *Board) RevealedCount() int { return b.revealedCount }

func (b *Board) MarkCount(m Mark) int {
	n := 0
	for _, c := range b.cells {
		if c.mark == m {
			n++
		}
	}
	return n
}

func (b *Board) InBounds(x, y int) bool {
	return 0 <= x && x < b.width && 0 <= y && y < b.height
}

// neighbours yields the in-bounds indices of the 3x3 block around i, minus i.
func (b *Board) neighbours(i int) iter.Seq[int] {
	x, y := i%b.width, i/b.width
	return func(yield func(int) bool) {
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				if !b.InBounds(x+dx, y+dy) {
					continue
				}
				if !yield((y+dy)*b.width + (x + dx)) {
					return
				}
			}
		}
	}
}

func (b *Board) Lost() bool {
	return b.lost
}

func (b *Board) Finished() bool {
	return b.lost || b.revealedCount == len(b.cells)-b.mineCount
}

func (b *Board) Won() bool {
	return b.Finished() && !b.lost
}

func (b *Board) state(i int) CellState {
	c := b.cells[i]
	switch {
	case c.revealed && c.mine:
		return ExplodedMine
	case c.revealed:
		return CellState(c.adjacent)
	case c.mark == Flagged:
		return Flag
	case c.mark == Questioned:
		return Question
	default:
		return Unknown
	}
}

// Cell reports what a player may know about the cell at x:y.
func (b *Board) Cell(x, y int) (CellState, bool) {
	if !b.InBounds(x, y) {
		return Unknown, false
	}
	return b.state(y*b.width + x), true
}

// View returns the player's knowledge of the whole board.
func (b *Board) View() Grid {
	g := make(Grid, len(b.cells))
	for i := range b.cells {
		g[i] = b.state(i)
	}
	return g
}

// Disclose uncovers the whole board once the game is over.
func (b *Board) Disclose() (Grid, error) {
	if !b.Finished() {
		return nil, ErrGameInProgress
	}
	g := b.View()
	for i, c := range b.cells {
		switch {
		case c.revealed:
			continue
		case c.mark == Flagged && c.mine:
			g[i] = CorrectlyFlagged
		case c.mark == Flagged:
			g[i] = FalselyFlagged
		case c.mine:
			g[i] = UnflaggedMine
		default:
			g[i] = CellState(c.adjacent)
		}
	}
	return g, nil
}
