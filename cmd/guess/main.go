// Command guess draws a secret number, reads one guess from stdin and says
// whether it is too small, too big or right.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"nickandperla.net/primer/internal/game"
	"nickandperla.net/primer/internal/logging"
	"nickandperla.net/primer/internal/store"
)

func main() {
	var (
		dbPath  = flag.String("db", "", "SQLite database to record the round in (disabled if empty)")
		history = flag.Int("history", 0, "Print the last N recorded rounds and exit (requires -db)")
		verbose = flag.Bool("v", false, "Enable debug logging to stderr")
	)
	flag.Parse()

	logger := logging.Must(*verbose)
	defer logger.Sync()

	opts := []game.Option{game.WithLogger(logger)}

	var rounds store.Store
	if *dbPath != "" {
		s, err := store.NewSQLite(*dbPath)
		if err != nil {
			// The round log is optional; play without it.
			logger.Warn("open round log", zap.String("path", *dbPath), zap.Error(err))
		} else {
			rounds = s
			defer rounds.Close()
			opts = append(opts, game.WithRecorder(rounds))
		}
	}

	if *history > 0 {
		if rounds == nil {
			fmt.Fprintf(os.Stderr, "Error: -history requires a readable -db\n")
			os.Exit(1)
		}
		if err := printHistory(rounds, *history); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if _, err := game.New(opts...).Play(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		logger.Sync()
		if rounds != nil {
			rounds.Close()
		}
		os.Exit(1)
	}
}

func printHistory(s store.Store, n int) error {
	rounds, err := s.Recent(n)
	if err != nil {
		return err
	}
	for _, r := range rounds {
		fmt.Printf("%s  secret=%-3d guess=%-3d %s\n", r.Ts.Local().Format("2006-01-02 15:04:05"), r.Secret, r.Guess, r.Outcome)
	}
	return nil
}
