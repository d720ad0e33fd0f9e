package console

import (
	"errors"
	"net/url"
	"strconv"
	"strings"
)

var (
	ErrEmptyCommand   = errors.New("empty command")
	ErrUnknownCommand = errors.New("unknown command")
	ErrNargs          = errors.New("invalid number of arguments")
)

// Maps known commands to number of arguments, -1 takes any number
var commandNargs = map[string]int{
	"o": 2, // open
	"f": 2, // flag
	"q": 2, // question mark
	"u": 2, // clear mark
	"c": 2, // chord
	"p": 0, // print
	"n": -1,
	"h": 0,
	"x": 0,
}

type Command struct {
	Name string
	X, Y int
	Args []string
}

func parseXY(twoStrings []string) (x int, y int, err error) {
	if x, err = strconv.Atoi(twoStrings[0]); err != nil {
		err = errors.New("first argument must be an int")
		return
	}
	if y, err = strconv.Atoi(twoStrings[1]); err != nil {
		err = errors.New("second argument must be an int")
		return
	}
	return
}

func ParseCommand(line string) (Command, error) {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return Command{}, ErrEmptyCommand
	}
	name := strings.ToLower(parts[0])
	nargs, ok := commandNargs[name]
	if !ok {
		return Command{}, ErrUnknownCommand
	}
	cmd := Command{Name: name, Args: parts[1:]}
	if nargs < 0 {
		return cmd, nil
	}
	if nargs != len(cmd.Args) {
		return Command{}, ErrNargs
	}
	if nargs == 2 {
		x, y, err := parseXY(cmd.Args)
		if err != nil {
			return Command{}, err
		}
		cmd.X, cmd.Y = x, y
	}
	return cmd, nil
}

// Query reads key=value arguments, e.g. "n width=16 difficulty=hard".
func (c Command) Query() (url.Values, error) {
	return url.ParseQuery(strings.Join(c.Args, "&"))
}

const Help = `commands:
  o x y   open the tile at column x, row y
  f x y   flag a tile
  q x y   put a question mark on a tile
  u x y   clear the mark of a tile
  c x y   open the neighbours of a number once it is fully flagged
  p       print the board
  n [width=W] [height=H] [difficulty=easy|medium|hard]
          start a new game
  h       show this help
  x       quit
`
