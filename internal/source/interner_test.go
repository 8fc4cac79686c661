package source

import (
	"testing"
)

func TestInternDedupes(t *testing.T) {
	in := NewInterner()

	a := in.Intern("foo")
	b := in.Intern("bar")
	c := in.Intern("foo")

	if a == b {
		t.Error("distinct strings must get distinct IDs")
	}
	if a != c {
		t.Error("equal strings must share an ID")
	}
	if in.Len() != 3 { // "", "foo", "bar"
		t.Errorf("expected 3 entries, got %d", in.Len())
	}
}

func TestInternEmptyString(t *testing.T) {
	in := NewInterner()
	if id := in.Intern(""); id != NoStringID {
		t.Errorf("empty string should map to NoStringID, got %d", id)
	}
}

func TestInternBytes(t *testing.T) {
	in := NewInterner()

	id1, s1 := in.InternBytes([]byte("word"))
	id2, s2 := in.InternBytes([]byte("word"))

	if id1 != id2 {
		t.Error("equal byte content must share an ID")
	}
	if s1 != "word" || s2 != "word" {
		t.Errorf("unexpected canonical strings %q, %q", s1, s2)
	}
}

func TestLookup(t *testing.T) {
	in := NewInterner()
	id := in.Intern("x")

	s, ok := in.Lookup(id)
	if !ok || s != "x" {
		t.Errorf("Lookup(%d) = %q, %v", id, s, ok)
	}
	if _, ok := in.Lookup(StringID(99)); ok {
		t.Error("Lookup of an invalid ID must report !ok")
	}
}
