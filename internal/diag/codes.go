package diag

import (
	"fmt"
)

// Code identifies a diagnostic kind. Lexical codes live in the 1000 range,
// I/O and cache codes in the 4000 range.
type Code uint16

const (
	// UnknownCode is the zero value for unclassified diagnostics.
	UnknownCode Code = 0

	// Lexical
	LexInfo        Code = 1000
	LexUnknownChar Code = 1001
	LexIntOverflow Code = 1002

	// I/O and cache
	IOInfo         Code = 4000
	IOReadFailed   Code = 4001
	IOCacheCorrupt Code = 4002
)

var codeDescription = map[Code]string{
	UnknownCode:    "unknown diagnostic",
	LexInfo:        "lexer note",
	LexUnknownChar: "unknown character",
	LexIntOverflow: "integer literal out of range",
	IOInfo:         "i/o note",
	IOReadFailed:   "failed to read source file",
	IOCacheCorrupt: "token cache entry is corrupt",
}

// ID returns the stable external identifier, e.g. "LEX1001".
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

// Title returns the short human description of the code.
func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
