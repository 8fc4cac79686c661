package lexer

import (
	"unicode"

	"monkey/internal/diag"
	"monkey/internal/source"
	"monkey/internal/token"
)

// Lexer is a pull-based scanner over one source file. It borrows the
// file's content for its whole lifetime and is mutably owned by a single
// caller; it is not safe for concurrent use.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	look   *token.Token // 1-element lookahead buffer
}

// New creates a lexer over file. Setup is constant-time: the cursor
// starts on the first byte, so the first Next() observes the first real
// character.
func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
		look:   nil,
	}
}

// Next returns the next token, advancing past everything it consumed.
// Whitespace is skipped, never surfaced. After end of input every call
// returns the EOF token again.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	lx.skipWhitespace()

	if lx.cursor.EOF() {
		return token.Token{
			Kind: token.EOF,
			Span: lx.emptySpan(),
			Text: "",
		}
	}

	ch := lx.cursor.Peek()
	switch {
	case isLetterByte(ch):
		return lx.scanWord()

	case isDec(ch):
		return lx.scanInt()

	case ch >= utf8RuneSelf:
		// Unicode: a letter starts a word, anything else is Invalid.
		if r, sz := lx.peekRune(); sz > 0 && unicode.IsLetter(r) {
			return lx.scanWord()
		}
		return lx.scanInvalidRune()

	default:
		return lx.scanOperatorOrPunct()
	}
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

// skipWhitespace discards a maximal run of whitespace characters.
// ASCII space/tab/newline/CR take the fast path; other runs are checked
// with the same Unicode rule the rest of the scanner uses.
func (lx *Lexer) skipWhitespace() {
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if isSpaceByte(b) {
			lx.cursor.Bump()
			continue
		}
		if b >= utf8RuneSelf {
			if r, sz := lx.peekRune(); sz > 0 && unicode.IsSpace(r) {
				lx.bumpRune()
				continue
			}
		}
		break
	}
}

// scanInvalidRune consumes exactly one rune that fits no token class.
func (lx *Lexer) scanInvalidRune() token.Token {
	start := lx.cursor.Mark()
	lx.bumpRune()
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnknownChar, sp, "unknown character")
	return token.Token{Kind: token.Invalid, Span: sp, Text: lx.file.Slice(sp)}
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}
