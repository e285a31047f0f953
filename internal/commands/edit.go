package commands

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gerunddev/scribe/internal/config"
	"github.com/gerunddev/scribe/internal/logger"
	"github.com/gerunddev/scribe/internal/notify"
	"github.com/gerunddev/scribe/internal/session"
	"github.com/gerunddev/scribe/internal/styles"
	"github.com/gerunddev/scribe/internal/tui"
)

// Edit opens the editor, optionally on a file given as the first argument.
func Edit(args []string) {
	errorStyle := styles.ErrorStyle

	cfg, err := config.Load()
	if err != nil {
		fmt.Println(errorStyle.Render("✗ Invalid configuration: " + err.Error()))
		os.Exit(1)
	}

	log, cleanup, err := logger.NewFileLogger(cfg.LogFile)
	if err != nil {
		// The editor stays usable without a log file.
		log = logger.Discard()
	} else {
		defer cleanup()
	}
	log.ConfigLoaded(cfg.LogFile, cfg.AutosaveOnGrowth)

	notifier := &notify.Notifier{}
	sess := session.New(cfg, notifier, log)
	if len(args) > 0 && args[0] != "" {
		sess.Open(args[0])
	}

	m := tui.NewModel(sess, notifier)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Println(errorStyle.Render("✗ Editor error: " + err.Error()))
		os.Exit(1)
	}
}
