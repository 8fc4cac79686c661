package lexer

import (
	"testing"

	"monkey/internal/source"
)

// helper to create a file
func createFile(content string) *source.File {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.mky", []byte(content))
	return fs.Get(id)
}

func TestCursorSequentialReading(t *testing.T) {
	file := createFile("a\nb")
	cursor := NewCursor(file)

	for _, want := range []byte{'a', '\n', 'b'} {
		if cursor.EOF() {
			t.Fatalf("unexpected EOF before %q", want)
		}
		if got := cursor.Peek(); got != want {
			t.Errorf("Peek: expected %q, got %q", want, got)
		}
		if got := cursor.Bump(); got != want {
			t.Errorf("Bump: expected %q, got %q", want, got)
		}
	}

	if !cursor.EOF() {
		t.Error("expected EOF at end")
	}
	if cursor.Peek() != 0 {
		t.Error("Peek at EOF should return 0")
	}
	if cursor.Bump() != 0 {
		t.Error("Bump at EOF should return 0")
	}
	// the terminal state is sticky
	off := cursor.Off
	cursor.Bump()
	if cursor.Off != off {
		t.Error("Bump at EOF must not move the cursor")
	}
}

func TestCursorPeek2(t *testing.T) {
	file := createFile("!=")
	cursor := NewCursor(file)

	b0, b1, ok := cursor.Peek2()
	if !ok || b0 != '!' || b1 != '=' {
		t.Fatalf("Peek2: expected ('!', '=', true), got (%q, %q, %v)", b0, b1, ok)
	}
	// Peek2 must not consume
	if cursor.Off != 0 {
		t.Error("Peek2 moved the cursor")
	}

	cursor.Bump()
	if _, _, ok := cursor.Peek2(); ok {
		t.Error("Peek2 with one byte left should report !ok")
	}
}

func TestCursorEat(t *testing.T) {
	file := createFile("ab")
	cursor := NewCursor(file)

	if cursor.Eat('b') {
		t.Error("Eat('b') should fail on 'a'")
	}
	if cursor.Off != 0 {
		t.Error("failed Eat must not advance")
	}
	if !cursor.Eat('a') {
		t.Error("Eat('a') should succeed")
	}
	if cursor.Off != 1 {
		t.Error("successful Eat must advance by one")
	}
}

func TestCursorMarkAndSpan(t *testing.T) {
	file := createFile("hello")
	cursor := NewCursor(file)

	m := cursor.Mark()
	cursor.Bump()
	cursor.Bump()
	cursor.Bump()

	sp := cursor.SpanFrom(m)
	if sp.Start != 0 || sp.End != 3 {
		t.Errorf("expected span 0-3, got %d-%d", sp.Start, sp.End)
	}
	if file.Slice(sp) != "hel" {
		t.Errorf("expected slice %q, got %q", "hel", file.Slice(sp))
	}

	cursor.Reset(m)
	if cursor.Off != 0 {
		t.Error("Reset should restore the marked offset")
	}
}

func TestCursorEmptyFile(t *testing.T) {
	file := createFile("")
	cursor := NewCursor(file)

	if !cursor.EOF() {
		t.Error("empty file should start at EOF")
	}
	if _, _, ok := cursor.Peek2(); ok {
		t.Error("Peek2 on empty file should report !ok")
	}
}
