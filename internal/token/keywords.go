package token

var keywords = map[string]Kind{
	"fn":     KwFn,
	"let":    KwLet,
	"true":   KwTrue,
	"false":  KwFalse,
	"if":     KwIf,
	"else":   KwElse,
	"return": KwReturn,
}

// LookupKeyword returns the keyword kind for ident, if it is a keyword.
// Keywords are case-sensitive: only the lowercase spellings are recognized.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
