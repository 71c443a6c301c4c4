package lox

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDriver() (*Lox, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	l := New(
		WithStdout(&stdout),
		WithStderr(&stderr),
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
	return l, &stdout, &stderr
}

func TestRun(t *testing.T) {
	l, stdout, stderr := newTestDriver()

	err := l.Run(`var x = 1;`)
	require.NoError(t, err)
	assert.Empty(t, stderr.String())

	lines := strings.Split(strings.TrimRight(stdout.String(), "\n"), "\n")
	assert.Equal(t, []string{
		`(:var "var" [0:3])`,
		`(:identifier "x" [4:5])`,
		`(:equal "=" [6:7])`,
		`(:number "1" [8:9])`,
		`(:semicolon ";" [9:10])`,
		`(:EOF [10:10])`,
	}, lines)
}

func TestRunReportsEveryError(t *testing.T) {
	l, stdout, stderr := newTestDriver()

	err := l.Run("@ 1 #")
	assert.ErrorIs(t, err, ErrHadError)

	// Both bad characters rendered, valid tokens still printed.
	assert.Equal(t, 2, strings.Count(stderr.String(), "unexpected character"))
	assert.Contains(t, stdout.String(), `(:number "1" [2:3])`)
	assert.Contains(t, stdout.String(), "(:EOF [5:5])")
}

func TestRunUnterminatedString(t *testing.T) {
	l, stdout, stderr := newTestDriver()

	err := l.Run(`"unterminated`)
	assert.ErrorIs(t, err, ErrHadError)
	assert.Contains(t, stderr.String(), "unterminated string")

	// No partial string token surfaced, only the EOF sentinel.
	assert.Equal(t, "(:EOF [13:13])\n", stdout.String())
}

func TestRunFile(t *testing.T) {
	name := filepath.Join(t.TempDir(), "script.lox")
	require.NoError(t, os.WriteFile(name, []byte("print nil;\n"), 0o644))

	l, stdout, _ := newTestDriver()
	require.NoError(t, l.RunFile(name))
	assert.Contains(t, stdout.String(), `(:print "print" [0:5])`)
	assert.Contains(t, stdout.String(), `(:nil "nil" [6:9])`)
}

func TestRunFileMissing(t *testing.T) {
	l, stdout, _ := newTestDriver()

	err := l.RunFile(filepath.Join(t.TempDir(), "no-such-file.lox"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrHadError)
	assert.Empty(t, stdout.String())
}
