package fileio

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	if err := WriteFile(path, "hello\n"); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "hello\n" {
		t.Errorf("unexpected content: %q", got)
	}
}

func TestWriteLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	if err := WriteLines(path, []string{"a", "b", "c"}); err != nil {
		t.Fatalf("WriteLines failed: %v", err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "a\nb\nc\n" {
		t.Errorf("unexpected content: %q", got)
	}
}

func TestWriteTempFile(t *testing.T) {
	path, err := WriteTempFile("recipe contents", "pkg_recipe")
	if err != nil {
		t.Fatalf("WriteTempFile failed: %v", err)
	}
	defer os.Remove(path)

	base := filepath.Base(path)
	if !strings.HasPrefix(base, TempFilePrefix+"pkg_recipe-") {
		t.Errorf("unexpected temp file name: %q", base)
	}
	if !strings.HasSuffix(base, ".out") {
		t.Errorf("expected .out suffix: %q", base)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "recipe contents" {
		t.Errorf("unexpected content: %q", got)
	}
}

func TestWriteTempFile_UniqueNames(t *testing.T) {
	a, err := WriteTempFile("x", "")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(a)
	b, err := WriteTempFile("x", "")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(b)
	if a == b {
		t.Error("temp file names should be unique")
	}
}
