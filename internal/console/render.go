package console

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/vancomm/minesweeper/internal/mines"
)

// WriteGrid prints g with column numbers on top and row numbers on the left.
func WriteGrid(w io.Writer, g mines.Grid, width int) error {
	height := len(g) / width
	pad := len(strconv.Itoa(max(width, height) - 1))

	var b strings.Builder
	fmt.Fprintf(&b, "%*s", pad, `\`)
	for x := range width {
		fmt.Fprintf(&b, " %*d", pad, x)
	}
	b.WriteByte('\n')
	for y := range height {
		fmt.Fprintf(&b, "%*d", pad, y)
		for x := range width {
			fmt.Fprintf(&b, " %*s", pad, g.At(width, x, y).String())
		}
		b.WriteByte('\n')
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// WriteBoard prints what the player knows, or the whole board once the game
// is over.
func WriteBoard(w io.Writer, b *mines.Board) error {
	g, err := b.Disclose()
	if err != nil {
		g = b.View()
	}
	return WriteGrid(w, g, b.Width())
}

func Status(b *mines.Board) string {
	switch {
	case b.Won():
		return "You won!"
	case b.Lost():
		return "Boom! You lost."
	}
	return fmt.Sprintf(
		"mines: %d  flags: %d  revealed: %d/%d",
		b.MineCount(),
		b.MarkCount(mines.Flagged),
		b.RevealedCount(),
		b.Width()*b.Height()-b.MineCount(),
	)
}

// Describe turns a rejected move into a sentence for the player. Accepted
// moves describe as "".
func Describe(res mines.Result) string {
	if res.Ok() {
		return ""
	}
	msg := res.Rejection.Error()
	r, size := utf8.DecodeRuneInString(msg)
	return string(unicode.ToUpper(r)) + msg[size:] + "!"
}
