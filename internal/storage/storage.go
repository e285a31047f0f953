// Package storage selects per-format load and save behavior for document
// files. Three formats are supported: plain text, an HTML subset, and raw
// bytes reinterpreted as text. Unknown extensions fall back to plain text.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gerunddev/scribe/internal/markup"
)

// Format identifies how a file's bytes map to document text.
type Format int

const (
	Plain Format = iota
	Markup
	Raw
)

// String returns the format tag name.
func (f Format) String() string {
	switch f {
	case Markup:
		return "markup"
	case Raw:
		return "raw"
	default:
		return "plain"
	}
}

// Strategy is a matched loader/saver pair for one format. Strategies are
// stateless; a zero Strategy behaves as the plain-text pair.
type Strategy struct {
	format Format
}

// Format returns the format this strategy loads and saves.
func (s Strategy) Format() Format {
	return s.format
}

// Load reads the file at path and returns its document text. An unreadable
// path yields empty text, indistinguishable from an empty file.
func (s Strategy) Load(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	switch s.format {
	case Markup:
		return markup.ToPlainText(string(data))
	default:
		return string(data)
	}
}

// Save writes text to path in this strategy's on-disk format. Saving is
// idempotent: repeating a save with the same arguments produces identical
// file content.
func (s Strategy) Save(path, text string) error {
	out := text
	if s.format == Markup {
		out = markup.ToMarkup(text)
	}
	if err := os.WriteFile(path, []byte(out), 0644); err != nil {
		return fmt.Errorf("failed to write %s file: %w", s.format, err)
	}
	return nil
}

// ForExtension returns the strategy for a file extension. Matching is
// case-insensitive and a leading dot is accepted. Unrecognized or empty
// extensions map to the plain-text strategy; there is no error case.
func ForExtension(ext string) Strategy {
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "html", "htm":
		return Strategy{format: Markup}
	case "bin":
		return Strategy{format: Raw}
	default:
		return Strategy{format: Plain}
	}
}

// ForPath returns the strategy for a path, derived from its extension.
func ForPath(path string) Strategy {
	return ForExtension(filepath.Ext(path))
}
