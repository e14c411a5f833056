package game

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"nickandperla.net/primer/internal/store"
)

// Game plays one round: draw, prompt, read, compare, report.
type Game struct {
	in       io.Reader
	out      io.Writer
	secret   uint32
	fixed    bool
	rand     *rand.Rand
	recorder store.Store
	logger   *zap.Logger
}

// New creates a game reading stdin and writing stdout unless configured.
func New(opts ...Option) *Game {
	g := &Game{
		in:     os.Stdin,
		out:    os.Stdout,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if !g.fixed {
		g.secret = NewSecret(g.rand)
	}
	return g
}

// Secret returns the number the player has to guess.
func (g *Game) Secret() uint32 {
	return g.secret
}

// Play runs the single round. The returned error wraps ErrRead or ErrParse;
// either one ends the round without a comparison.
func (g *Game) Play() (store.Round, error) {
	round := store.Round{Secret: g.secret}

	fmt.Fprintln(g.out, "Guess the number!")
	fmt.Fprintf(g.out, "The secret number is: %d\n", g.secret)
	fmt.Fprintln(g.out, "Please input your guess.")

	line, err := readLine(g.in)
	if err != nil {
		g.logger.Error("read guess", zap.Error(err))
		return round, fmt.Errorf("%w: %v", ErrRead, err)
	}
	fmt.Fprintf(g.out, "You guessed: %s\n", strings.TrimRight(line, "\r\n"))

	guess, err := ParseGuess(line)
	if err != nil {
		g.logger.Debug("parse guess", zap.String("line", line), zap.Error(err))
		return round, err
	}

	outcome := Compare(guess, g.secret)
	fmt.Fprintln(g.out, outcome.Message())

	round.Guess = guess
	round.Outcome = outcome.String()
	round.Ts = time.Now().UTC()
	g.logger.Debug("round complete",
		zap.Uint32("secret", g.secret),
		zap.Uint32("guess", guess),
		zap.Stringer("outcome", outcome))

	if g.recorder != nil {
		if err := g.recorder.Record(round); err != nil {
			g.logger.Warn("record round", zap.Error(err))
		}
	}
	return round, nil
}

// errInvalidUTF8 reports a line that is not text.
var errInvalidUTF8 = errors.New("stream did not contain valid UTF-8")

// readLine reads a single line including its terminator. End of input is not
// an error: whatever was read, possibly nothing, is the line.
func readLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	if !utf8.ValidString(line) {
		return "", errInvalidUTF8
	}
	return line, nil
}
