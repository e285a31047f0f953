package commands

import (
	"fmt"
	"os"

	"github.com/gerunddev/scribe/internal/diff"
	"github.com/gerunddev/scribe/internal/styles"
)

// Diff prints a rendered diff of two documents' plain-text forms.
func Diff(args []string) {
	errorStyle := styles.ErrorStyle

	if len(args) != 2 {
		fmt.Fprintln(os.Stderr, errorStyle.Render("✗ Usage: scribe diff <old> <new>"))
		os.Exit(1)
	}

	rendered, err := diff.Files(args[0], args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("✗ Failed to diff: "+err.Error()))
		os.Exit(1)
	}

	fmt.Print(rendered)
}
