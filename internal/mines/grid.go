package mines

import (
	"fmt"
	"strconv"
	"strings"
)

type Mark uint8

const (
	None Mark = iota
	Flagged
	Questioned
)

func (m Mark) String() string {
	switch m {
	case None:
		return "none"
	case Flagged:
		return "flag"
	case Questioned:
		return "question"
	default:
		return fmt.Sprintf("Mark(%d)", uint8(m))
	}
}

func (m Mark) valid() bool {
	return m <= Questioned
}

type CellState int8

const (
	Question         CellState = -3
	Unknown          CellState = -2
	Flag             CellState = -1
	CorrectlyFlagged CellState = 64
	ExplodedMine     CellState = 65
	FalselyFlagged   CellState = 66
	UnflaggedMine    CellState = 67
	/*
	 * What a player is allowed to see of a cell:
	 *
	 *  - 0 to 8 mean the cell is open and has a surrounding mine
	 *    count.
	 *
	 *  - -1 means the cell is flagged, -3 that it carries a
	 *    question mark, -2 that nothing is known about it.
	 *
	 *  - 65 means the cell is a mine the player has opened.
	 *
	 * The remaining values only appear in a disclosed grid, once
	 * the game is over: 64 is a flag on a real mine, 66 a flag on
	 * a safe cell and 67 a mine nobody flagged.
	 */
)

func (s CellState) Revealed() bool {
	return (0 <= s && s <= 8) || s == ExplodedMine
}

func (s CellState) Count() (int, bool) {
	if 0 <= s && s <= 8 {
		return int(s), true
	}
	return 0, false
}

func (s CellState) String() string {
	switch {
	case s == Question:
		return "?"
	case s == Unknown:
		return "."
	case s == Flag:
		return "f"
	case s == 0:
		return " "
	case 0 < s && s <= 8:
		return strconv.Itoa(int(s))
	case s == CorrectlyFlagged:
		return "F"
	case s == ExplodedMine:
		return "X"
	case s == FalselyFlagged:
		return "!"
	case s == UnflaggedMine:
		return "x"
	default:
		return "#"
	}
}

type Grid []CellState

func (g Grid) At(width, x, y int) CellState {
	return g[y*width+x]
}

func (g Grid) ToString(width int) string {
	var b strings.Builder
	for y := range len(g) / width {
		for x := range width {
			i := y*width + x
			if i >= len(g) {
				break
			}
			fmt.Fprint(&b, g[i].String()+" ")
		}
		fmt.Fprint(&b, "\n")
	}
	return b.String()
}
