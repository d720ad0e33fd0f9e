package mines

import (
	"errors"
	"fmt"
	"strings"
)

type Difficulty uint8

const (
	Easy   Difficulty = iota + 1 // easy
	Medium                       // medium
	Hard                         // hard
)

var ErrUnknownDifficulty = errors.New("unknown difficulty")

// A cell becomes a mine when a draw in [0,100) exceeds the threshold.
var thresholds = map[Difficulty]int{
	Easy:   90,
	Medium: 80,
	Hard:   70,
}

func (d Difficulty) Threshold() (int, bool) {
	t, ok := thresholds[d]
	return t, ok
}

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	default:
		return fmt.Sprintf("Difficulty(%d)", uint8(d))
	}
}

func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy", "e", "1":
		return Easy, nil
	case "medium", "m", "2":
		return Medium, nil
	case "hard", "h", "3":
		return Hard, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDifficulty, s)
}

// [Difficulty] implements [encoding.TextUnmarshaler]
func (d *Difficulty) UnmarshalText(text []byte) error {
	v, err := ParseDifficulty(string(text))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// [Difficulty] implements [encoding.TextMarshaler]
func (d Difficulty) MarshalText() ([]byte, error) {
	if _, ok := thresholds[d]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownDifficulty, uint8(d))
	}
	return []byte(d.String()), nil
}
