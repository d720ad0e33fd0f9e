package mines

import (
	"log/slog"
)

var Log *slog.Logger = slog.Default()

func (b *Board) reject(move Move, x, y int, r Rejection) Result {
	Log.Debug("move rejected",
		slog.String("move", move.String()),
		slog.Int("x", x), slog.Int("y", y),
		slog.String("reason", r.Error()),
	)
	return Result{Move: move, X: x, Y: y, Rejection: r}
}

// Reveal opens the cell at column x, row y. Opening a mine is an accepted
// move that loses the game.
func (b *Board) Reveal(x, y int) Result {
	if b.Finished() {
		return b.reject(Open, x, y, GameOver)
	}
	if !b.InBounds(x, y) {
		return b.reject(Open, x, y, OutOfBounds)
	}
	i := y*b.width + x
	if b.cells[i].mark != None {
		return b.reject(Open, x, y, CellMarked)
	}
	if b.cells[i].revealed {
		return b.reject(Open, x, y, AlreadyRevealed)
	}

	b.open(i)
	if b.lost {
		Log.Debug("mine opened", slog.Int("x", x), slog.Int("y", y))
	} else if b.Won() {
		Log.Debug("board cleared", slog.Int("revealed", b.revealedCount))
	}
	return Result{Move: Open, X: x, Y: y}
}

// open reveals cell i and, when it is a safe blank, every safe unmarked cell
// reachable through blanks. Revealed doubles as the visited set, so a cell is
// queued at most once.
func (b *Board) open(i int) {
	c := &b.cells[i]
	c.revealed = true
	if c.mine {
		b.lost = true
		return
	}
	b.revealedCount++
	if c.adjacent != 0 {
		return
	}

	todo := newWorklist(len(b.cells))
	todo.add(i)
	for !todo.empty() {
		j, _ := todo.pop()
		for k := range b.neighbours(j) {
			n := &b.cells[k]
			if n.revealed || n.mine || n.mark != None {
				continue
			}
			n.revealed = true
			b.revealedCount++
			if n.adjacent == 0 {
				todo.add(k)
			}
		}
	}
}

// SetMark puts m on a concealed cell, replacing any other mark. None clears.
func (b *Board) SetMark(x, y int, m Mark) Result {
	if b.Finished() {
		return b.reject(MarkCell, x, y, GameOver)
	}
	if !b.InBounds(x, y) {
		return b.reject(MarkCell, x, y, OutOfBounds)
	}
	if !m.valid() {
		return b.reject(MarkCell, x, y, UnknownMark)
	}
	c := &b.cells[y*b.width+x]
	if c.revealed {
		return b.reject(MarkCell, x, y, MarkRevealed)
	}
	if c.mark == m {
		return b.reject(MarkCell, x, y, SameMark)
	}
	c.mark = m
	return Result{Move: MarkCell, X: x, Y: y}
}

// Chord opens every unmarked neighbour of a revealed number once the player
// has flagged as many neighbours as the number says.
func (b *Board) Chord(x, y int) Result {
	if b.Finished() {
		return b.reject(ChordCell, x, y, GameOver)
	}
	if !b.InBounds(x, y) {
		return b.reject(ChordCell, x, y, OutOfBounds)
	}
	i := y*b.width + x
	if !b.cells[i].revealed {
		return b.reject(ChordCell, x, y, NotRevealed)
	}

	flags := 0
	js := make([]int, 0, 8)
	for j := range b.neighbours(i) {
		switch n := b.cells[j]; {
		case n.mark == Flagged:
			flags++
		case !n.revealed && n.mark == None:
			js = append(js, j)
		}
	}
	if flags != b.cells[i].adjacent || len(js) == 0 {
		return b.reject(ChordCell, x, y, FlagMismatch)
	}

	for _, j := range js {
		if b.cells[j].revealed {
			continue
		}
		b.open(j)
		if b.Finished() {
			break
		}
	}
	return Result{Move: ChordCell, X: x, Y: y}
}
