package game

import (
	"errors"
	"strconv"
	"strings"
)

// ErrInvalidShot is returned for any shot text that does not parse as two
// in-range coordinates. The caller re-prompts; the reason is not surfaced
// to the player beyond a fixed error message.
var ErrInvalidShot = errors.New("game: invalid shot input")

// ParseShot parses a player move of the form "<row>, <col>": exactly two
// non-negative integers separated by a comma, surrounding whitespace
// ignored, both strictly less than BoardSize.
func ParseShot(input string) (row, col int, err error) {
	fields := strings.Split(strings.TrimSpace(input), ",")
	if len(fields) != 2 {
		return 0, 0, ErrInvalidShot
	}

	coords := make([]int, 2)
	for i, f := range fields {
		f = strings.TrimSpace(f)
		// Reject signs and other non-digit noise that Atoi would accept.
		if f == "" || strings.IndexFunc(f, notDigit) >= 0 {
			return 0, 0, ErrInvalidShot
		}
		n, convErr := strconv.Atoi(f)
		if convErr != nil || n >= BoardSize {
			return 0, 0, ErrInvalidShot
		}
		coords[i] = n
	}

	return coords[0], coords[1], nil
}

func notDigit(r rune) bool {
	return r < '0' || r > '9'
}
