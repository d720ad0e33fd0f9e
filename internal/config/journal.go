package config

import (
	"fmt"
	"os"
	"strconv"
)

type Journal struct {
	Filename   string
	MaxSize    int // megabytes
	MaxBackups int
	MaxAge     int // days
}

func (j Journal) Enabled() bool {
	return j.Filename != ""
}

func lookupInt(key string, fallback int) (int, error) {
	s, ok := os.LookupEnv(key)
	if !ok {
		return fallback, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("unable to convert %s to int: %w", key, err)
	}
	if v < 0 {
		return 0, fmt.Errorf("%s must not be negative", key)
	}
	return v, nil
}

// NewJournal reads the journal settings. The journal stays disabled unless
// MINES_JOURNAL_FILE is set.
func NewJournal() (*Journal, error) {
	filename, _ := os.LookupEnv("MINES_JOURNAL_FILE")

	maxSize, err := lookupInt("MINES_JOURNAL_MAX_SIZE", 10)
	if err != nil {
		return nil, err
	}

	maxBackups, err := lookupInt("MINES_JOURNAL_MAX_BACKUPS", 3)
	if err != nil {
		return nil, err
	}

	maxAge, err := lookupInt("MINES_JOURNAL_MAX_AGE", 28)
	if err != nil {
		return nil, err
	}

	journal := &Journal{
		Filename:   filename,
		MaxSize:    maxSize,
		MaxBackups: maxBackups,
		MaxAge:     maxAge,
	}

	return journal, nil
}
