package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestAddVirtual(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("repl", []byte("let x = 1;"))

	f := fs.Get(id)
	if f.Flags&FileVirtual == 0 {
		t.Error("expected FileVirtual flag")
	}
	if string(f.Content) != "let x = 1;" {
		t.Errorf("unexpected content %q", f.Content)
	}
}

func TestLoadNormalizes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "input.mky")
	raw := append([]byte{0xEF, 0xBB, 0xBF}, []byte("let x = 1;\r\nlet y = 2;\n")...)
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	fs := NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	f := fs.Get(id)
	if f.Flags&FileHadBOM == 0 {
		t.Error("expected FileHadBOM flag")
	}
	if f.Flags&FileNormalizedCRLF == 0 {
		t.Error("expected FileNormalizedCRLF flag")
	}
	if string(f.Content) != "let x = 1;\nlet y = 2;\n" {
		t.Errorf("unexpected normalized content %q", f.Content)
	}
}

func TestLoadMissingFile(t *testing.T) {
	fs := NewFileSet()
	if _, err := fs.Load(filepath.Join(t.TempDir(), "nope.mky")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestResolveMultiLine(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("test.mky", []byte("let x = 1;\nlet y = 2;"))

	// "y" sits at byte 15: line 2, col 5
	span := Span{File: id, Start: 15, End: 16}
	start, end := fs.Resolve(span)

	if (start != LineCol{Line: 2, Col: 5}) {
		t.Errorf("expected start 2:5, got %d:%d", start.Line, start.Col)
	}
	if (end != LineCol{Line: 2, Col: 6}) {
		t.Errorf("expected end 2:6, got %d:%d", end.Line, end.Col)
	}
}

func TestResolveFirstLine(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("test.mky", []byte("abc"))

	start, _ := fs.Resolve(Span{File: id, Start: 0, End: 1})
	if (start != LineCol{Line: 1, Col: 1}) {
		t.Errorf("expected 1:1, got %d:%d", start.Line, start.Col)
	}

	start, _ = fs.Resolve(Span{File: id, Start: 2, End: 3})
	if (start != LineCol{Line: 1, Col: 3}) {
		t.Errorf("expected 1:3, got %d:%d", start.Line, start.Col)
	}
}

func TestGetLine(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("test.mky", []byte("first\nsecond\nthird"))
	f := fs.Get(id)

	cases := map[uint32]string{
		1: "first",
		2: "second",
		3: "third",
		4: "",
		0: "",
	}
	for line, want := range cases {
		if got := f.GetLine(line); got != want {
			t.Errorf("GetLine(%d) = %q, want %q", line, got, want)
		}
	}
}

func TestGetByPath(t *testing.T) {
	fs := NewFileSet()
	fs.AddVirtual("a.mky", []byte("a"))
	id2 := fs.AddVirtual("a.mky", []byte("b"))

	f, ok := fs.GetByPath("a.mky")
	if !ok {
		t.Fatal("expected file to exist")
	}
	// the index tracks the latest version
	if f.ID != id2 {
		t.Errorf("expected latest ID %d, got %d", id2, f.ID)
	}
}

func TestHashDiffersByContent(t *testing.T) {
	fs := NewFileSet()
	a := fs.Get(fs.AddVirtual("a.mky", []byte("let x = 1;")))
	b := fs.Get(fs.AddVirtual("b.mky", []byte("let x = 2;")))
	c := fs.Get(fs.AddVirtual("c.mky", []byte("let x = 1;")))

	if a.Hash == b.Hash {
		t.Error("different content must hash differently")
	}
	if a.Hash != c.Hash {
		t.Error("identical content must hash identically")
	}
}
