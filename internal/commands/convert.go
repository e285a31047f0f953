package commands

import (
	"fmt"
	"os"

	"github.com/gerunddev/scribe/internal/paragraph"
	"github.com/gerunddev/scribe/internal/storage"
	"github.com/gerunddev/scribe/internal/styles"
)

// Convert transcodes a document: the source is loaded through the strategy
// for its extension and written through the strategy for the destination's
// extension.
func Convert(args []string) {
	errorStyle := styles.ErrorStyle
	successStyle := styles.SuccessStyle
	dimStyle := styles.DimStyle

	if len(args) != 2 {
		fmt.Fprintln(os.Stderr, errorStyle.Render("✗ Usage: scribe convert <src> <dst>"))
		os.Exit(1)
	}
	src, dst := args[0], args[1]

	from := storage.ForPath(src)
	to := storage.ForPath(dst)

	text := from.Load(src)
	if text == "" {
		fmt.Println(dimStyle.Render("  Source is empty or unreadable; writing an empty document"))
	}

	if err := to.Save(dst, text); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("✗ Failed to write destination: "+err.Error()))
		os.Exit(1)
	}

	fmt.Println(successStyle.Render(fmt.Sprintf("✓ Converted %s (%s) → %s (%s)", src, from.Format(), dst, to.Format())))
	fmt.Println(dimStyle.Render(fmt.Sprintf("  %d paragraphs", paragraph.Count(text))))
}
