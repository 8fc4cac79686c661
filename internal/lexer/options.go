package lexer

import (
	"monkey/internal/diag"
	"monkey/internal/source"
)

// Options configures a Lexer.
type Options struct {
	// Reporter receives lexical diagnostics. May be nil: errors are then
	// dropped, but lexing continues and still emits Invalid tokens.
	Reporter diag.Reporter
	// Interner, when set, dedupes identifier spellings across tokens.
	Interner *source.Interner
}

func (lx *Lexer) errLex(code diag.Code, sp source.Span, msg string) {
	diag.ReportError(lx.opts.Reporter, code, sp, msg)
}
