package game

import (
	"io"
	"math/rand/v2"

	"go.uber.org/zap"

	"nickandperla.net/primer/internal/store"
)

// Option configures a Game.
type Option func(*Game)

// WithInput sets the reader the guess is read from.
func WithInput(r io.Reader) Option {
	return func(g *Game) {
		g.in = r
	}
}

// WithOutput sets the writer prompts and results go to.
func WithOutput(w io.Writer) Option {
	return func(g *Game) {
		g.out = w
	}
}

// WithSecret fixes the secret instead of drawing one (for testing).
func WithSecret(secret uint32) Option {
	return func(g *Game) {
		g.secret = secret
		g.fixed = true
	}
}

// WithRand sets the random source used to draw the secret.
func WithRand(r *rand.Rand) Option {
	return func(g *Game) {
		g.rand = r
	}
}

// WithRecorder records the completed round in s.
func WithRecorder(s store.Store) Option {
	return func(g *Game) {
		g.recorder = s
	}
}

// WithLogger sets the diagnostic logger.
func WithLogger(logger *zap.Logger) Option {
	return func(g *Game) {
		if logger != nil {
			g.logger = logger
		}
	}
}
