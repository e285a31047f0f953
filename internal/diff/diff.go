// Package diff renders differences between documents as styled terminal
// output. Both sides are compared in their plain-text form, so a .html
// file and a .txt file diff by content rather than by markup.
package diff

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/glamour"
	"github.com/hexops/gotextdiff"
	"github.com/hexops/gotextdiff/myers"
	"github.com/hexops/gotextdiff/span"

	"github.com/gerunddev/scribe/internal/storage"
)

// Unified computes a unified diff between two named texts.
func Unified(oldName, newName, oldText, newText string) string {
	edits := myers.ComputeEdits(span.URIFromPath(oldName), oldText, newText)
	return fmt.Sprint(gotextdiff.ToUnified(oldName, newName, oldText, edits))
}

// Files loads both paths through their format strategies and returns a
// rendered diff of the plain-text forms, old side first.
func Files(oldPath, newPath string) (string, error) {
	oldText := storage.ForPath(oldPath).Load(oldPath)
	newText := storage.ForPath(newPath).Load(newPath)

	unified := Unified(filepath.Base(oldPath), filepath.Base(newPath), oldText, newText)
	return render(unified), nil
}

// Unsaved diffs the on-disk content of path against the given buffer text,
// showing what a save would change.
func Unsaved(path, buffer string) string {
	disk := storage.ForPath(path).Load(path)
	name := filepath.Base(path)
	return render(Unified(name+" (disk)", name+" (buffer)", disk, buffer))
}

// render wraps a unified diff in a markdown diff fence and renders it with
// glamour; rendering problems fall back to the plain fenced diff.
func render(unified string) string {
	diffMarkdown := fmt.Sprintf("```diff\n%s```\n", unified)

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(120),
	)
	if err != nil {
		return diffMarkdown
	}

	rendered, err := renderer.Render(diffMarkdown)
	if err != nil {
		return diffMarkdown
	}

	return rendered
}
