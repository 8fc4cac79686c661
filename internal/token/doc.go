// Package token defines lexical token kinds for the Monkey language.
// Invariants:
//   - Token.Span matches Text exactly (Start..End byte offsets).
//   - Token.Value is meaningful only when Kind == IntLit.
//   - Ident never carries a keyword spelling; the keyword table is
//     consulted before falling back to Ident.
//   - EOF is sticky: once the lexer emits it, it keeps emitting it.
package token
