// Package game implements a single-round number guessing comparator.
package game

import (
	"cmp"
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
)

// Secret bounds, inclusive.
const (
	MinSecret = 1
	MaxSecret = 100
)

var (
	// ErrRead reports that the guess could not be read from input.
	ErrRead = errors.New("failed to read line")
	// ErrParse reports that the guess is not a non-negative integer.
	ErrParse = errors.New("please type a number")
)

// Outcome is the result of comparing a guess to the secret.
type Outcome int

const (
	Less Outcome = iota - 1
	Equal
	Greater
)

// String returns the lowercase outcome name.
func (o Outcome) String() string {
	switch o {
	case Less:
		return "less"
	case Greater:
		return "greater"
	case Equal:
		return "equal"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

// Message returns the line shown to the player.
func (o Outcome) Message() string {
	switch o {
	case Less:
		return "Too small!"
	case Greater:
		return "Too big!"
	case Equal:
		return "You win!"
	}
	return ""
}

// Compare reports how guess relates to secret.
func Compare(guess, secret uint32) Outcome {
	return Outcome(cmp.Compare(guess, secret))
}

// ParseGuess parses one line of input as an unsigned 32-bit integer.
// Surrounding whitespace, including the line terminator, is ignored, and a
// single leading plus sign is accepted.
func ParseGuess(line string) (uint32, error) {
	s := strings.TrimSpace(line)
	if s == "" {
		return 0, fmt.Errorf("%w: empty input", ErrParse)
	}
	digits := s
	if len(s) > 1 && s[0] == '+' && s[1] >= '0' && s[1] <= '9' {
		digits = s[1:]
	}
	n, err := strconv.ParseUint(digits, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrParse, s)
	}
	return uint32(n), nil
}

// NewSecret draws a secret uniformly from [MinSecret, MaxSecret].
// A nil r uses the global source.
func NewSecret(r *rand.Rand) uint32 {
	const span = MaxSecret - MinSecret + 1
	if r == nil {
		return MinSecret + rand.Uint32N(span)
	}
	return MinSecret + r.Uint32N(span)
}
