package source

import (
	"testing"
)

func TestNormalizeCRLF(t *testing.T) {
	cases := []struct {
		in      string
		out     string
		changed bool
	}{
		{"plain\n", "plain\n", false},
		{"a\r\nb", "a\nb", true},
		{"a\r\nb\r\n", "a\nb\n", true},
		{"lone\rreturn", "lone\rreturn", false},
		{"", "", false},
	}
	for _, c := range cases {
		got, changed := normalizeCRLF([]byte(c.in))
		if string(got) != c.out {
			t.Errorf("normalizeCRLF(%q) = %q, want %q", c.in, got, c.out)
		}
		if changed != c.changed {
			t.Errorf("normalizeCRLF(%q) changed = %v, want %v", c.in, changed, c.changed)
		}
	}
}

func TestRemoveBOM(t *testing.T) {
	withBOM := []byte{0xEF, 0xBB, 0xBF, 'x'}
	got, had := removeBOM(withBOM)
	if !had || string(got) != "x" {
		t.Errorf("removeBOM failed: had=%v got=%q", had, got)
	}

	plain := []byte("x")
	got, had = removeBOM(plain)
	if had || string(got) != "x" {
		t.Errorf("removeBOM on plain input: had=%v got=%q", had, got)
	}
}

func TestNormalizeNFC(t *testing.T) {
	// "é" as 'e' + COMBINING ACUTE ACCENT recomposes to one code point
	decomposed := []byte("é")
	got, changed := normalizeNFC(decomposed)
	if !changed {
		t.Fatal("expected normalization to apply")
	}
	if string(got) != "é" {
		t.Errorf("expected %q, got %q", "é", got)
	}

	got, changed = normalizeNFC([]byte("plain"))
	if changed || string(got) != "plain" {
		t.Errorf("plain ASCII must pass through, changed=%v got=%q", changed, got)
	}
}

func TestToLineCol(t *testing.T) {
	content := []byte("ab\ncd\n\nx")
	idx := buildLineIndex(content)

	cases := []struct {
		off  uint32
		want LineCol
	}{
		{0, LineCol{1, 1}}, // 'a'
		{1, LineCol{1, 2}}, // 'b'
		{2, LineCol{1, 3}}, // '\n' terminating line 1
		{3, LineCol{2, 1}}, // 'c'
		{5, LineCol{2, 3}}, // '\n' terminating line 2
		{6, LineCol{3, 1}}, // empty line's '\n'
		{7, LineCol{4, 1}}, // 'x'
	}
	for _, c := range cases {
		if got := toLineCol(idx, c.off); got != c.want {
			t.Errorf("toLineCol(%d) = %d:%d, want %d:%d",
				c.off, got.Line, got.Col, c.want.Line, c.want.Col)
		}
	}
}

func TestToLineColNoNewlines(t *testing.T) {
	if got := toLineCol(nil, 7); got != (LineCol{1, 8}) {
		t.Errorf("expected 1:8, got %d:%d", got.Line, got.Col)
	}
}
