// Command longest prints the longer of two strings.
package main

import (
	"flag"
	"fmt"
	"os"

	"nickandperla.net/primer/internal/longest"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: longest [x y]\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	s1, s2 := "hello", "world"
	switch flag.NArg() {
	case 0:
	case 2:
		s1, s2 = flag.Arg(0), flag.Arg(1)
	default:
		flag.Usage()
		os.Exit(2)
	}

	fmt.Println(longest.Longest(s1, s2))
}
