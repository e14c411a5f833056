//go:build !wasm

// Command hello runs the exported wasm functions natively: it greets names
// given as arguments, lines read from stdin, or names typed at a prompt.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"nickandperla.net/primer/internal/hello"
)

func main() {
	add := flag.Bool("add", false, "Add the two integer arguments instead of greeting")
	flag.Parse()

	if *add {
		sum, err := addArgs(flag.Args())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(sum)
		return
	}

	if flag.NArg() > 0 {
		for _, name := range flag.Args() {
			fmt.Println(hello.Greet(name))
		}
		return
	}

	if term.IsTerminal(int(os.Stdin.Fd())) {
		runPrompt(os.Stdin, os.Stdout)
		return
	}
	if err := greetLines(os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading stdin: %v\n", err)
		os.Exit(1)
	}
}

func addArgs(args []string) (int32, error) {
	if len(args) != 2 {
		return 0, fmt.Errorf("-add takes exactly two integers, got %d arguments", len(args))
	}
	var n [2]int32
	for i, arg := range args {
		v, err := strconv.ParseInt(arg, 10, 32)
		if err != nil {
			return 0, fmt.Errorf("invalid int32 %q", arg)
		}
		n[i] = int32(v)
	}
	return hello.Add(n[0], n[1]), nil
}

// greetLines greets every non-blank line of piped input.
func greetLines(r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		name := strings.TrimSpace(scanner.Text())
		if name == "" {
			continue
		}
		fmt.Fprintln(w, hello.Greet(name))
	}
	return scanner.Err()
}

// runPrompt is the interactive variant of greetLines (Ctrl+D to exit).
func runPrompt(r io.Reader, w io.Writer) {
	fmt.Fprintln(w, "hello greeter (Ctrl+D to exit)")
	reader := bufio.NewReader(r)
	for {
		fmt.Fprint(w, "name> ")
		line, err := reader.ReadString('\n')
		if name := strings.TrimSpace(line); name != "" {
			fmt.Fprintln(w, hello.Greet(name))
		}
		if err != nil {
			fmt.Fprintln(w)
			return
		}
	}
}
