package token

import (
	"monkey/internal/source"
)

// Token represents a single source token with its location.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
	// Value holds the parsed payload for IntLit tokens. It is always
	// non-negative as scanned: a leading minus is a separate Minus token.
	Value int64
}

// IsLiteral reports whether the token is an integer literal.
func (t Token) IsLiteral() bool {
	return t.Kind == IntLit
}

// IsPunctOrOp reports whether the token is a punctuation or operator.
func (t Token) IsPunctOrOp() bool {
	switch t.Kind {
	case Plus, Minus, Star, Slash, Assign, Bang,
		Lt, Gt, LtEq, GtEq, EqEq, BangEq,
		Comma, Semicolon, LParen, RParen, LBrace, RBrace:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is a language keyword.
func (t Token) IsKeyword() bool {
	switch t.Kind {
	case KwFn, KwLet, KwTrue, KwFalse, KwIf, KwElse, KwReturn:
		return true
	default:
		return false
	}
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }
