// Command loxt prints the tokens of loxt source code.
//
// Usage:
//
//	loxt [-quiet] [-overflow reject|saturate|wrap] [file]
//
// With a file it lexes the whole file once and exits with status 1 if it
// contains lexical errors. Without one it reads lines from standard input
// and lexes each line on its own.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/KimNorgaard/go-loxt"
	"github.com/KimNorgaard/go-loxt/errors"
)

const prompt = "loxt> "

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("loxt", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: loxt [-quiet] [-overflow reject|saturate|wrap] [file]")
		fs.PrintDefaults()
	}
	quiet := fs.Bool("quiet", false, "only report errors, do not print tokens")
	policy := loxt.OverflowReject
	fs.Var(&policy, "overflow", "handling of number literals that do not fit in 64 bits: reject, saturate or wrap")

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() > 1 {
		fs.Usage()
		return 2
	}

	opts := []loxt.Option{
		loxt.WithReporter(errors.WriterReporter{W: stderr}),
		loxt.WithOverflowPolicy(policy),
	}

	if fs.NArg() == 1 {
		if err := runFile(fs.Arg(0), stdout, *quiet, opts); err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
		return 0
	}

	if err := runPrompt(stdin, stdout, *quiet, opts); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

func runFile(path string, stdout io.Writer, quiet bool, opts []loxt.Option) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	toks := loxt.Lex(src, opts...)
	if !quiet {
		fmt.Fprint(stdout, toks)
	}
	return toks.Err()
}

// runPrompt lexes each input line independently. Lexical errors are
// reported but do not end the session.
func runPrompt(stdin io.Reader, stdout io.Writer, quiet bool, opts []loxt.Option) error {
	sc := bufio.NewScanner(stdin)
	for {
		fmt.Fprint(stdout, prompt)
		if !sc.Scan() {
			fmt.Fprintln(stdout)
			if err := sc.Err(); err != nil {
				return fmt.Errorf("reading input: %w", err)
			}
			return nil
		}
		toks := loxt.Lex(sc.Bytes(), opts...)
		if !quiet {
			fmt.Fprint(stdout, toks)
		}
	}
}
