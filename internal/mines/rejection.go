package mines

import "fmt"

type Move uint8

const (
	Open Move = iota + 1
	MarkCell
	ChordCell
)

func (m Move) String() string {
	switch m {
	case Open:
		return "open"
	case MarkCell:
		return "mark"
	case ChordCell:
		return "chord"
	default:
		return fmt.Sprintf("Move(%d)", uint8(m))
	}
}

// Rejection tells why a move left the board untouched. Accepted is the zero
// value and means the move was applied.
type Rejection uint8

const (
	Accepted Rejection = iota
	GameOver
	OutOfBounds
	CellMarked
	AlreadyRevealed
	MarkRevealed
	SameMark
	UnknownMark
	NotRevealed
	FlagMismatch
)

var rejectionMessages = map[Rejection]string{
	Accepted:        "ok",
	GameOver:        "game is already over",
	OutOfBounds:     "tile out of bounds",
	CellMarked:      "cannot reveal a flagged or questioned tile",
	AlreadyRevealed: "tile is already revealed",
	MarkRevealed:    "cannot mark a revealed tile",
	SameMark:        "tile already holds this mark",
	UnknownMark:     "unknown mark",
	NotRevealed:     "cannot chord a concealed tile",
	FlagMismatch:    "flag count does not match the tile number",
}

// [Rejection] implements [error]
func (r Rejection) Error() string {
	if m, ok := rejectionMessages[r]; ok {
		return m
	}
	return fmt.Sprintf("Rejection(%d)", uint8(r))
}

type MoveError struct {
	Move      Move
	X, Y      int
	Rejection Rejection
}

// [MoveError] implements [error]
func (e *MoveError) Error() string {
	return fmt.Sprintf("%s %d:%d: %s", e.Move, e.X, e.Y, e.Rejection.Error())
}

func (e *MoveError) Unwrap() error {
	return e.Rejection
}

type Result struct {
	Move      Move
	X, Y      int
	Rejection Rejection
}

func (r Result) Ok() bool {
	return r.Rejection == Accepted
}

func (r Result) Err() error {
	if r.Ok() {
		return nil
	}
	return &MoveError{Move: r.Move, X: r.X, Y: r.Y, Rejection: r.Rejection}
}
