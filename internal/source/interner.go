package source

import (
	"slices"
)

// StringID identifies an interned string.
type StringID uint32

// NoStringID is the ID of the empty string.
const NoStringID StringID = 0

// Interner deduplicates strings. The lexer uses it so that every
// occurrence of the same identifier spelling shares one backing string
// instead of allocating a fresh copy per token.
type Interner struct {
	byID  []string
	index map[string]StringID
}

// NewInterner creates an interner seeded with the empty string.
func NewInterner() *Interner {
	return &Interner{
		byID:  []string{""},
		index: map[string]StringID{"": 0},
	}
}

// Intern inserts s and returns its ID, reusing the existing entry if any.
func (i *Interner) Intern(s string) StringID {
	if id, ok := i.index[s]; ok {
		return id
	}
	// Own copy, so the entry does not pin the caller's buffer.
	cpy := string([]byte(s))
	id := StringID(len(i.byID)) // #nosec G115 -- interner never holds 4B strings
	i.byID = append(i.byID, cpy)
	i.index[cpy] = id
	return id
}

// InternBytes interns b and returns both the ID and the canonical string.
func (i *Interner) InternBytes(b []byte) (StringID, string) {
	if id, ok := i.index[string(b)]; ok {
		return id, i.byID[id]
	}
	cpy := string(b)
	id := StringID(len(i.byID)) // #nosec G115
	i.byID = append(i.byID, cpy)
	i.index[cpy] = id
	return id, cpy
}

// Lookup returns the string for id, or ("", false) for an invalid ID.
func (i *Interner) Lookup(id StringID) (string, bool) {
	if !i.Has(id) {
		return "", false
	}
	return i.byID[id], true
}

// Has reports whether id is valid.
func (i *Interner) Has(id StringID) bool {
	return int(id) < len(i.byID)
}

// Len returns the number of interned strings, counting NoStringID.
func (i *Interner) Len() int {
	return len(i.byID)
}

// Snapshot returns a copy of every interned string.
func (i *Interner) Snapshot() []string {
	return slices.Clone(i.byID)
}
