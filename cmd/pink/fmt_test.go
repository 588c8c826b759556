package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mgomes/pinkerton/pink"
)

func TestFmtCommandRequiresPath(t *testing.T) {
	err := fmtCommand(nil)
	if err == nil {
		t.Fatalf("expected path required error")
	}
	if !strings.Contains(err.Error(), "path required") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestFmtCommandCheckDetectsUnformattedFiles(t *testing.T) {
	path := writePinkFile(t, "let x = 1  \nprintln x\t \n")
	err := fmtCommand([]string{"-check", path})
	if err == nil {
		t.Fatalf("expected formatting check failure")
	}
	if !strings.Contains(err.Error(), "need formatting") {
		t.Fatalf("unexpected check error: %v", err)
	}
}

func TestFmtCommandWriteFormatsFileInPlace(t *testing.T) {
	path := writePinkFile(t, "\n\nlet x = 1  \n\n\n\nprintln x\t \n\n")
	if err := fmtCommand([]string{"-w", path}); err != nil {
		t.Fatalf("fmt -w failed: %v", err)
	}

	updated, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read formatted file: %v", err)
	}
	if got := string(updated); got != "let x = 1\n\nprintln x\n" {
		t.Fatalf("unexpected formatted output: %q", got)
	}
}

func TestFmtCommandPrintsFormattedOutput(t *testing.T) {
	path := writePinkFile(t, "println 1  \r\nprintln 2")
	out, err := captureStdout(t, func() error {
		return fmtCommand([]string{path})
	})
	if err != nil {
		t.Fatalf("fmt command failed: %v", err)
	}
	if out != "println 1\nprintln 2\n" {
		t.Fatalf("unexpected stdout output: %q", out)
	}
}

func TestFormatSourceKeepsMultilineStrings(t *testing.T) {
	interp := pink.MustNewInterpreter(pink.Config{})
	source := "let s = \"one  \n\n\n  two\"   \nprintln s\n"

	got, err := formatSource(interp, source)
	if err != nil {
		t.Fatalf("format failed: %v", err)
	}
	if want := "let s = \"one  \n\n\n  two\"\nprintln s\n"; got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestFormatSourceRejectsUnscannableInput(t *testing.T) {
	interp := pink.MustNewInterpreter(pink.Config{})
	if _, err := formatSource(interp, "println \"open"); err == nil {
		t.Fatalf("expected scan error")
	}
}

func TestFmtCommandFormatsDirectories(t *testing.T) {
	root := t.TempDir()
	first := filepath.Join(root, "a.pink")
	second := filepath.Join(root, "nested", "b.pink")
	ignored := filepath.Join(root, "notes.txt")
	if err := os.MkdirAll(filepath.Dir(second), 0o755); err != nil {
		t.Fatalf("mkdir nested: %v", err)
	}
	for path, content := range map[string]string{
		first:   "println 1  \n",
		second:  "println 2\t\n",
		ignored: "trailing  \n",
	} {
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", path, err)
		}
	}

	if err := fmtCommand([]string{"-w", root}); err != nil {
		t.Fatalf("fmt directory failed: %v", err)
	}
	if err := fmtCommand([]string{"-check", root}); err != nil {
		t.Fatalf("expected no formatting diffs after write, got %v", err)
	}
	notes, err := os.ReadFile(ignored)
	if err != nil {
		t.Fatalf("read notes: %v", err)
	}
	if string(notes) != "trailing  \n" {
		t.Fatalf("non-source files must be left alone, got %q", notes)
	}
}

func writePinkFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "script.pink")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write pink file: %v", err)
	}
	return path
}
