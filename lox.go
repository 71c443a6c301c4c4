// Package lox drives the scanner. It feeds source text in from a file or an
// interactive prompt, prints the resulting token stream, and renders lexical
// errors as labeled pointers into the source.
package lox

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/chzyer/readline"

	"github.com/lox-lang/lox/diag"
	"github.com/lox-lang/lox/lexer"
)

// ErrHadError reports that a run surfaced at least one lexical error. The
// errors themselves have already been rendered to the error stream.
var ErrHadError = errors.New("source had lexical errors")

// Lox ties the scanner to its input and output streams.
type Lox struct {
	stdout io.Writer
	stderr io.Writer
	log    *slog.Logger
}

// Option configures a Lox driver
type Option func(*Lox)

// WithStdout redirects the token stream output
func WithStdout(w io.Writer) Option {
	return func(l *Lox) {
		l.stdout = w
	}
}

// WithStderr redirects diagnostic output
func WithStderr(w io.Writer) Option {
	return func(l *Lox) {
		l.stderr = w
	}
}

// WithLogger sets the logger for operational events
func WithLogger(logger *slog.Logger) Option {
	return func(l *Lox) {
		l.log = logger
	}
}

// New creates a driver writing to the process streams.
func New(opts ...Option) *Lox {
	l := &Lox{
		stdout: os.Stdout,
		stderr: os.Stderr,
		log:    slog.New(slog.NewJSONHandler(os.Stderr, nil)),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Run scans source and prints each token to the output stream. Lexical errors
// are rendered to the error stream and scanning continues, so a single run
// reports every error it can reach. Partial input is never surfaced as a
// token. Returns ErrHadError if anything was rendered.
func (l *Lox) Run(source string) error {
	lx := lexer.New(source)

	hadError := false
	for {
		tok, err := lx.Next()
		if err != nil {
			hadError = true
			if !diag.RenderError(l.stderr, err) {
				fmt.Fprintf(l.stderr, "error: %v\n", err)
			}
			continue
		}
		fmt.Fprintln(l.stdout, tok)
		if tok.Is(lexer.TokenEOF) {
			break
		}
	}

	if hadError {
		return ErrHadError
	}
	return nil
}

// RunFile reads a script and runs it
func (l *Lox) RunFile(name string) error {
	data, err := os.ReadFile(name)
	if err != nil {
		l.log.Error("cannot read script", "file", name, "error", err)
		return fmt.Errorf("reading %s: %w", name, err)
	}
	return l.Run(string(data))
}

// RunPrompt runs an interactive prompt. Every line is scanned independently;
// lexical errors are rendered and the prompt keeps going. The loop ends on
// end of input.
func (l *Lox) RunPrompt() error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		Stdout:          l.stdout,
		Stderr:          l.stderr,
	})
	if err != nil {
		return fmt.Errorf("initializing prompt: %w", err)
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err != nil { // io.EOF
			return nil
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		// Already rendered; a bad line never kills the prompt.
		_ = l.Run(line)
	}
}
