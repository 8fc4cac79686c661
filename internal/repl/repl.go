// Package repl implements the line-oriented read-lex-print loop. It is a
// thin consumer of the lexer: one fresh lexer per input line, every token
// printed until and including EOF, then the next line.
package repl

import (
	"bufio"
	"fmt"
	"io"

	"github.com/fatih/color"

	"monkey/internal/diagfmt"
	"monkey/internal/driver"
	"monkey/internal/token"
)

// DefaultPrompt is printed before each input line.
const DefaultPrompt = ">> "

// Options configures a REPL session.
type Options struct {
	Prompt         string
	Color          bool
	MaxDiagnostics int
}

var promptColor = color.New(color.FgGreen, color.Bold)

// Run reads lines from in until input EOF. Each line is lexed as its own
// virtual file; the loop over its tokens stops exactly when the EOF token
// is produced, which is also printed.
func Run(in io.Reader, out io.Writer, opts Options) error {
	prompt := opts.Prompt
	if prompt == "" {
		prompt = DefaultPrompt
	}
	maxDiagnostics := opts.MaxDiagnostics
	if maxDiagnostics <= 0 {
		maxDiagnostics = 100
	}

	scanner := bufio.NewScanner(in)
	for {
		if opts.Color {
			promptColor.Fprint(out, prompt)
		} else {
			fmt.Fprint(out, prompt)
		}

		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		line := scanner.Bytes()

		res := driver.TokenizeSource("repl", line, maxDiagnostics)
		for _, tok := range res.Tokens {
			fmt.Fprintln(out, diagfmt.TokenLine(tok))
			if tok.Kind == token.EOF {
				break
			}
		}

		if res.Bag.Len() > 0 {
			res.Bag.Sort()
			diagfmt.Pretty(out, res.Bag, res.FileSet, diagfmt.PrettyOpts{
				Color:   opts.Color,
				Context: 0,
			})
		}
	}
}
