package main

import (
	"fmt"
	"os"

	"github.com/gerunddev/scribe/internal/commands"
	"github.com/gerunddev/scribe/internal/config"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		commands.Edit(nil)
		return
	}

	command := os.Args[1]

	switch command {
	case "edit":
		commands.Edit(os.Args[2:])
	case "convert":
		commands.Convert(os.Args[2:])
	case "diff":
		commands.Diff(os.Args[2:])
	case "version", "-v", "--version":
		fmt.Printf("scribe v%s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		// A bare path opens the editor on that file.
		commands.Edit(os.Args[1:])
	}
}

func printUsage() {
	usage := fmt.Sprintf(`scribe - a minimal paragraph-aware text editor

Usage:
  scribe [path]
  scribe <command> [options]

Commands:
  edit [path]          Open the editor, optionally on a file
  convert <src> <dst>  Transcode a document between formats
  diff <old> <new>     Diff two documents' plain-text forms
  version              Show version information
  help                 Show this help message

Formats (chosen by extension):
  .txt        plain text (default for unknown extensions)
  .html .htm  HTML subset (paragraphs in <p> tags)
  .bin        raw bytes

Examples:
  scribe notes.txt
  scribe convert notes.txt notes.html
  scribe diff draft.html final.txt

Configuration:
  Config file: %s
`, config.ConfigPath())
	fmt.Print(usage)
}
