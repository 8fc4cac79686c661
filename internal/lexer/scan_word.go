package lexer

import (
	"monkey/internal/token"
)

// scanWord scans a maximal run of letters and underscores starting at a
// letter, then classifies it through the keyword table. Token.Text for an
// Ident is exactly the source run; with an Interner configured, repeated
// spellings share one string.
func (lx *Lexer) scanWord() token.Token {
	start := lx.cursor.Mark()

	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if isWordContinueByte(b) {
			lx.cursor.Bump()
			continue
		}
		if b >= utf8RuneSelf {
			if r, sz := lx.peekRune(); sz > 0 && isWordContinueRune(r) {
				lx.bumpRune()
				continue
			}
		}
		break
	}

	sp := lx.cursor.SpanFrom(start)
	lex := lx.file.Content[sp.Start:sp.End]

	// Keyword table first: Ident never carries a keyword spelling.
	if k, ok := token.LookupKeyword(string(lex)); ok {
		return token.Token{Kind: k, Span: sp, Text: string(lex)}
	}

	var text string
	if lx.opts.Interner != nil {
		_, text = lx.opts.Interner.InternBytes(lex)
	} else {
		text = string(lex)
	}
	return token.Token{Kind: token.Ident, Span: sp, Text: text}
}
