package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeSource(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "main.lox")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	return path
}

func TestRunFile(t *testing.T) {
	path := writeSource(t, "print 1;\n")

	var stdout, stderr bytes.Buffer
	code := run([]string{path}, strings.NewReader(""), &stdout, &stderr)

	require.Equal(t, 0, code)
	require.Empty(t, stderr.String())
	require.Equal(t, "{kind: Print, line: 1, column: 1}\n"+
		"{kind: Number, line: 1, column: 7, literal: 1}\n"+
		"{kind: SemiColon, line: 1, column: 8}\n"+
		"{kind: Eof, line: 2, column: 1}\n", stdout.String())
}

func TestRunFileWithErrors(t *testing.T) {
	path := writeSource(t, "a @")

	var stdout, stderr bytes.Buffer
	code := run([]string{"-quiet", path}, strings.NewReader(""), &stdout, &stderr)

	require.Equal(t, 1, code)
	require.Empty(t, stdout.String())
	require.Equal(t, "1:3: Error: unrecognized character\n"+
		"error: loxt: lexical error at line 1, column 3: unrecognized character\n", stderr.String())
}

func TestRunFileOverflowPolicy(t *testing.T) {
	path := writeSource(t, "18446744073709551616")

	var stdout, stderr bytes.Buffer
	code := run([]string{"-overflow", "saturate", path}, strings.NewReader(""), &stdout, &stderr)

	require.Equal(t, 0, code)
	require.Contains(t, stdout.String(), "literal: 18446744073709551615")
}

func TestRunMissingFile(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{filepath.Join(t.TempDir(), "nope.lox")}, strings.NewReader(""), &stdout, &stderr)

	require.Equal(t, 1, code)
	require.Contains(t, stderr.String(), "error: reading ")
}

func TestRunBadArguments(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"two files", []string{"a.lox", "b.lox"}},
		{"unknown flag", []string{"-nope"}},
		{"bad policy", []string{"-overflow", "clamp"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			code := run(tt.args, strings.NewReader(""), &stdout, &stderr)
			require.Equal(t, 2, code)
			require.Contains(t, stderr.String(), "Usage: loxt")
		})
	}
}

func TestRunPrompt(t *testing.T) {
	stdin := strings.NewReader("x\n\"open\ny\n")

	var stdout, stderr bytes.Buffer
	code := run(nil, stdin, &stdout, &stderr)

	require.Equal(t, 0, code)
	require.Equal(t, prompt+
		"{kind: Identifier, line: 1, column: 1, identifier: x}\n"+
		"{kind: Eof, line: 1, column: 2}\n"+
		prompt+
		"{kind: Error, line: 1, column: 1}\n"+
		"{kind: Eof, line: 1, column: 6}\n"+
		prompt+
		"{kind: Identifier, line: 1, column: 1, identifier: y}\n"+
		"{kind: Eof, line: 1, column: 2}\n"+
		prompt+"\n", stdout.String())
	require.Equal(t, "1:1: Error: string unterminated\n", stderr.String())
}
