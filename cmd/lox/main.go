package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/lox-lang/lox"
)

// Exit codes
const (
	exitSuccess        = 0
	exitOperationError = 1
	exitUsageError     = 2
	exitDataError      = 65
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	l := lox.New()

	switch len(args) {
	case 0:
		if err := l.RunPrompt(); err != nil {
			fmt.Fprintf(os.Stderr, "lox: %v\n", err)
			return exitOperationError
		}
		return exitSuccess

	case 1:
		err := l.RunFile(args[0])
		switch {
		case errors.Is(err, lox.ErrHadError):
			return exitDataError
		case err != nil:
			fmt.Fprintf(os.Stderr, "lox: %v\n", err)
			return exitOperationError
		}
		return exitSuccess

	default:
		fmt.Fprintln(os.Stderr, "usage: lox [script]")
		return exitUsageError
	}
}
