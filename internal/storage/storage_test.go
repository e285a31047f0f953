package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gerunddev/scribe/internal/paragraph"
)

func TestForExtension(t *testing.T) {
	tests := []struct {
		ext      string
		expected Format
	}{
		{"txt", Plain},
		{"TXT", Plain},
		{".txt", Plain},
		{"html", Markup},
		{"htm", Markup},
		{"HTML", Markup},
		{"bin", Raw},
		{"", Plain},
		{"pdf", Plain},
		{"org", Plain},
	}

	for _, tt := range tests {
		t.Run("ext_"+tt.ext, func(t *testing.T) {
			if got := ForExtension(tt.ext).Format(); got != tt.expected {
				t.Errorf("ForExtension(%q) = %s, want %s", tt.ext, got, tt.expected)
			}
		})
	}
}

func TestForExtensionCaseInsensitive(t *testing.T) {
	if ForExtension("TXT") != ForExtension("txt") {
		t.Error("extension matching should be case-insensitive")
	}
}

func TestForPath(t *testing.T) {
	if got := ForPath("/tmp/notes.html").Format(); got != Markup {
		t.Errorf("ForPath(.html) = %s, want markup", got)
	}
	if got := ForPath("/tmp/no-extension").Format(); got != Plain {
		t.Errorf("ForPath(no extension) = %s, want plain", got)
	}
}

func TestPlainRoundTrip(t *testing.T) {
	texts := []string{
		"",
		"hello",
		"first\n\nsecond",
		"trailing newline\n",
		"unicode: héllo wörld ☺",
	}

	dir := t.TempDir()
	s := ForExtension("txt")
	for i, text := range texts {
		path := filepath.Join(dir, "doc.txt")
		if err := s.Save(path, text); err != nil {
			t.Fatalf("case %d: save failed: %v", i, err)
		}
		if got := s.Load(path); got != text {
			t.Errorf("case %d: round trip changed text: %q -> %q", i, text, got)
		}
	}
}

func TestRawRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blob.bin")
	s := ForExtension("bin")

	text := "bytes with <tags> that must\n\nnot be transformed"
	if err := s.Save(path, text); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if got := s.Load(path); got != text {
		t.Errorf("raw round trip changed text: %q -> %q", text, got)
	}

	// No markup envelope is ever added.
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "<html>") {
		t.Error("raw save must not wrap content")
	}
}

func TestMarkupSaveWrapsParagraphs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.html")
	s := ForExtension("html")

	if err := s.Save(path, "first\n\nsecond"); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"<html><body>", "<p>first</p>", "<p>second</p>", "</body></html>"} {
		if !strings.Contains(string(data), want) {
			t.Errorf("saved markup missing %q:\n%s", want, data)
		}
	}
}

// The markup cycle is lossy for exact text but keeps the paragraph count.
func TestMarkupRoundTripPreservesParagraphCount(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.html")
	s := ForExtension("html")

	texts := []string{
		"one",
		"first\n\nsecond",
		"a < b & c\n\nd \"quoted\" e\n\nf",
	}
	for _, text := range texts {
		if err := s.Save(path, text); err != nil {
			t.Fatalf("save failed: %v", err)
		}
		got := s.Load(path)
		if paragraph.Count(got) != paragraph.Count(text) {
			t.Errorf("paragraph count changed: %q (%d) -> %q (%d)",
				text, paragraph.Count(text), got, paragraph.Count(got))
		}
	}
}

func TestLoadMissingFileReturnsEmpty(t *testing.T) {
	for _, ext := range []string{"txt", "html", "bin"} {
		s := ForExtension(ext)
		if got := s.Load(filepath.Join(t.TempDir(), "missing."+ext)); got != "" {
			t.Errorf("%s: load of missing file = %q, want empty", ext, got)
		}
	}
}

func TestSaveUnwritablePathFails(t *testing.T) {
	s := ForExtension("txt")
	err := s.Save(filepath.Join(t.TempDir(), "no-such-dir", "doc.txt"), "text")
	if err == nil {
		t.Error("expected error saving into a missing directory")
	}
}

func TestSaveIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.html")
	s := ForExtension("html")

	if err := s.Save(path, "a\n\nb"); err != nil {
		t.Fatal(err)
	}
	first, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Save(path, "a\n\nb"); err != nil {
		t.Fatal(err)
	}
	second, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(first) != string(second) {
		t.Error("repeated save produced different content")
	}
}
