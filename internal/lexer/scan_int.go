package lexer

import (
	"errors"
	"strconv"

	"monkey/internal/diag"
	"monkey/internal/token"
)

// scanInt scans a maximal run of decimal digits and parses it as int64.
// The literal is always non-negative: a preceding minus is its own token.
// A run that exceeds the int64 range becomes an Invalid token plus a
// LexIntOverflow diagnostic; the cursor still advances past the whole run,
// so the caller can keep scanning.
func (lx *Lexer) scanInt() token.Token {
	start := lx.cursor.Mark()

	for isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	sp := lx.cursor.SpanFrom(start)
	text := lx.file.Slice(sp)

	value, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			lx.errLex(diag.LexIntOverflow, sp, "integer literal does not fit in 64 bits")
		} else {
			// Unreachable for a pure digit run, but never panic on it.
			lx.errLex(diag.LexIntOverflow, sp, "malformed integer literal")
		}
		return token.Token{Kind: token.Invalid, Span: sp, Text: text}
	}

	return token.Token{Kind: token.IntLit, Span: sp, Text: text, Value: value}
}
