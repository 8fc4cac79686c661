package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"monkey/internal/source"
	"monkey/internal/token"
)

// TokenOutput is the JSON shape of one token.
type TokenOutput struct {
	Kind  string      `json:"kind"`
	Text  string      `json:"text,omitempty"`
	Value int64       `json:"value,omitempty"`
	Span  source.Span `json:"span"`
}

// FormatTokensPretty writes tokens in a human-readable aligned format.
func FormatTokensPretty(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	for i, tok := range tokens {
		startPos, endPos := fs.Resolve(tok.Span)

		fmt.Fprintf(w, "%3d: %-10s", i+1, tok.Kind.String())

		if tok.Text != "" {
			fmt.Fprintf(w, " %q", tok.Text)
		}
		if tok.Kind == token.IntLit {
			fmt.Fprintf(w, " = %d", tok.Value)
		}

		fmt.Fprintf(w, " at %d:%d-%d:%d",
			startPos.Line, startPos.Col,
			endPos.Line, endPos.Col)

		fmt.Fprintln(w)

		if tok.Kind == token.EOF {
			break
		}
	}
	return nil
}

// FormatTokensJSON writes tokens as an indented JSON array.
func FormatTokensJSON(w io.Writer, tokens []token.Token) error {
	output := make([]TokenOutput, 0, len(tokens))

	for _, tok := range tokens {
		output = append(output, TokenOutput{
			Kind:  tok.Kind.String(),
			Text:  tok.Text,
			Value: tok.Value,
			Span:  tok.Span,
		})
		if tok.Kind == token.EOF {
			break
		}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// TokenLine renders a single token the way the REPL prints it.
func TokenLine(tok token.Token) string {
	switch tok.Kind {
	case token.Ident:
		return fmt.Sprintf("%s(%q)", tok.Kind, tok.Text)
	case token.IntLit:
		return fmt.Sprintf("%s(%d)", tok.Kind, tok.Value)
	case token.Invalid:
		return fmt.Sprintf("%s(%q)", tok.Kind, tok.Text)
	default:
		return tok.Kind.String()
	}
}
