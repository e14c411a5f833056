package main

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"testing"
)

var secretLine = regexp.MustCompile(`The secret number is: (\d+)`)

// buildGuess builds the CLI into a temp dir and returns the binary path.
func buildGuess(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()
	bin := filepath.Join(tmpDir, "guess")
	cmd := exec.Command("go", "build", "-o", bin, "./")
	cmd.Dir = "."
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("failed to build guess: %v\n%s", err, out)
	}
	return bin
}

func runGuess(t *testing.T, bin, stdin string, args ...string) (string, int) {
	t.Helper()
	cmd := exec.Command(bin, args...)
	cmd.Stdin = strings.NewReader(stdin)
	out, err := cmd.CombinedOutput()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return string(out), exitErr.ExitCode()
	}
	if err != nil {
		t.Fatalf("failed to run guess: %v", err)
	}
	return string(out), 0
}

// TestValidGuessReportsOneOutcome checks the outcome printed against the
// secret the program revealed.
func TestValidGuessReportsOneOutcome(t *testing.T) {
	bin := buildGuess(t)

	output, code := runGuess(t, bin, "50\n")
	if code != 0 {
		t.Fatalf("expected exit 0, got %d: %s", code, output)
	}

	m := secretLine.FindStringSubmatch(output)
	if m == nil {
		t.Fatalf("secret not printed: %s", output)
	}
	secret, _ := strconv.Atoi(m[1])
	if secret < 1 || secret > 100 {
		t.Fatalf("secret %d out of range", secret)
	}

	want := "You win!"
	switch {
	case 50 < secret:
		want = "Too small!"
	case 50 > secret:
		want = "Too big!"
	}
	if !strings.Contains(output, "You guessed: 50") || !strings.Contains(output, want) {
		t.Errorf("expected %q for secret %d, got: %s", want, secret, output)
	}
}

// TestMalformedInputExitsNonZero checks the fatal parse path.
func TestMalformedInputExitsNonZero(t *testing.T) {
	bin := buildGuess(t)

	for _, input := range []string{"abc\n", "\n", "", "-5\n"} {
		output, code := runGuess(t, bin, input)
		if code == 0 {
			t.Errorf("input %q: expected non-zero exit, got 0: %s", input, output)
		}
		if !strings.Contains(output, "please type a number") {
			t.Errorf("input %q: expected parse diagnostic, got: %s", input, output)
		}
	}
}

// TestRoundLog records a round in SQLite and reads it back with -history.
func TestRoundLog(t *testing.T) {
	bin := buildGuess(t)
	dbPath := filepath.Join(t.TempDir(), "rounds.db")

	if output, code := runGuess(t, bin, "42\n", "-db", dbPath); code != 0 {
		t.Fatalf("expected exit 0, got %d: %s", code, output)
	}
	if _, err := os.Stat(dbPath); err != nil {
		t.Fatalf("expected database to be created: %v", err)
	}

	output, code := runGuess(t, bin, "", "-db", dbPath, "-history", "5")
	if code != 0 {
		t.Fatalf("expected exit 0, got %d: %s", code, output)
	}
	if !strings.Contains(output, "guess=42") {
		t.Errorf("expected recorded guess in history, got: %s", output)
	}
	if strings.Contains(output, "Guess the number!") {
		t.Errorf("-history should not play a round, got: %s", output)
	}
}

func TestHistoryRequiresDB(t *testing.T) {
	bin := buildGuess(t)
	output, code := runGuess(t, bin, "", "-history", "3")
	if code == 0 {
		t.Errorf("expected non-zero exit, got 0: %s", output)
	}
}
