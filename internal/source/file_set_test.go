package source

import (
	"testing"
)

func TestAddVirtualAndLineIndex(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("frag.io", []byte("a := 1\nb := 2\n"))
	f := fs.Get(id)

	if f.Flags&FileVirtual == 0 {
		t.Fatalf("virtual file must carry FileVirtual flag")
	}
	if got := f.NumLines(); got != 2 {
		t.Fatalf("NumLines = %d, want 2", got)
	}
	if got := f.Line(1); got != "a := 1" {
		t.Fatalf("Line(1) = %q", got)
	}
	if got := f.Line(2); got != "b := 2" {
		t.Fatalf("Line(2) = %q", got)
	}
	if got := f.Line(3); got != "" {
		t.Fatalf("Line(3) = %q, want empty", got)
	}
}

func TestResolveSpan(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("frag.io", []byte("abc\ndef\n"))

	// "def" occupies bytes 4..7
	start, end := fs.Resolve(Span{File: id, Start: 4, End: 7})
	if start.Line != 2 || start.Col != 1 {
		t.Fatalf("start = %+v, want 2:1", start)
	}
	if end.Line != 2 || end.Col != 4 {
		t.Fatalf("end = %+v, want 2:4", end)
	}
}

func TestCRLFNormalization(t *testing.T) {
	content, changed := normalizeCRLF([]byte("a\r\nb\rc"))
	if !changed {
		t.Fatalf("expected CRLF replacement")
	}
	if string(content) != "a\nb\rc" {
		t.Fatalf("got %q, lone \\r must survive", content)
	}

	content, changed = normalizeCRLF([]byte("plain"))
	if changed || string(content) != "plain" {
		t.Fatalf("no-op expected for %q", content)
	}
}

func TestRemoveBOM(t *testing.T) {
	content, had := removeBOM([]byte{0xEF, 0xBB, 0xBF, 'x'})
	if !had || string(content) != "x" {
		t.Fatalf("BOM not stripped: %q", content)
	}
}

func TestGetByPath(t *testing.T) {
	fs := NewFileSet()
	fs.AddVirtual("dir/frag.io", []byte("x"))
	if _, ok := fs.GetByPath("dir/frag.io"); !ok {
		t.Fatalf("expected lookup by path to succeed")
	}
	if _, ok := fs.GetByPath("missing.io"); ok {
		t.Fatalf("expected lookup miss")
	}
}
