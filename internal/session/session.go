// Package session owns the state of a single editing session: the document
// text, the active file reference with its format strategy, and the
// paragraph-count baseline used for change detection. All mutation happens
// on one control flow; the UI layer only ever borrows read access.
package session

import (
	"path/filepath"

	"github.com/google/uuid"

	"github.com/gerunddev/scribe/internal/config"
	"github.com/gerunddev/scribe/internal/logger"
	"github.com/gerunddev/scribe/internal/notify"
	"github.com/gerunddev/scribe/internal/paragraph"
	"github.com/gerunddev/scribe/internal/storage"
)

// PathPicker resolves file paths for open and save-as. A false second
// return cancels the operation with no state change. Implemented by the
// UI layer; tests stub it.
type PathPicker interface {
	ChooseOpenPath() (string, bool)
	ChooseSavePath() (string, bool)
}

// Session orchestrates loading, saving and change detection for one
// document buffer.
type Session struct {
	id       string
	text     string
	path     string
	strategy storage.Strategy
	baseline int

	notifier *notify.Notifier
	picker   PathPicker
	log      *logger.Logger

	autosaveOnGrowth bool
	defaultExt       string
}

// New creates an empty session. A nil notifier gets a private one; a nil
// logger discards everything.
func New(cfg *config.Config, n *notify.Notifier, log *logger.Logger) *Session {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if n == nil {
		n = &notify.Notifier{}
	}
	if log == nil {
		log = logger.Discard()
	}
	s := &Session{
		id:               uuid.NewString()[:8],
		notifier:         n,
		log:              log,
		autosaveOnGrowth: cfg.AutosaveOnGrowth,
		defaultExt:       cfg.DefaultExtension,
	}
	log.SessionStarted(s.id)
	return s
}

// SetPathPicker installs the collaborator used to resolve paths when an
// operation needs one.
func (s *Session) SetPathPicker(p PathPicker) {
	s.picker = p
}

// ID returns the session's log identity.
func (s *Session) ID() string { return s.id }

// Text returns the current document text.
func (s *Session) Text() string { return s.text }

// Path returns the active file path, or "" before any open or save-as.
func (s *Session) Path() string { return s.path }

// HasFile reports whether a file reference is active.
func (s *Session) HasFile() bool { return s.path != "" }

// Format returns the active file's format tag.
func (s *Session) Format() storage.Format { return s.strategy.Format() }

// Baseline returns the paragraph count recorded by the last load or
// change-detection pass.
func (s *Session) Baseline() int { return s.baseline }

// Open replaces the buffer with the content of path, loaded through the
// strategy matching its extension. An unreadable path silently yields an
// empty buffer; the file reference is set either way. The paragraph
// baseline restarts at the loaded content's count.
func (s *Session) Open(path string) {
	s.strategy = storage.ForPath(path)
	s.text = s.strategy.Load(path)
	s.path = path
	s.baseline = paragraph.Count(s.text)

	if s.text == "" {
		s.log.OpenEmpty(s.id, path)
	}
	s.log.FileOpened(s.id, path, s.strategy.Format().String(), s.baseline)
}

// OpenPrompt asks the path picker for a file and opens it. Returns false
// when no picker is installed or the user cancels.
func (s *Session) OpenPrompt() bool {
	if s.picker == nil {
		return false
	}
	path, ok := s.picker.ChooseOpenPath()
	if !ok || path == "" {
		return false
	}
	s.Open(path)
	return true
}

// Save writes the buffer to the active file. Without a file reference the
// path picker resolves one first; cancellation leaves all state untouched
// and returns nil. A successful save fires the auto-save notification; a
// failed one returns the error, fires nothing, and keeps the buffer and
// reference so the user can retry.
func (s *Session) Save() error {
	if s.path == "" {
		if s.picker == nil {
			return nil
		}
		path, ok := s.picker.ChooseSavePath()
		if !ok || path == "" {
			return nil
		}
		return s.SaveAs(path)
	}
	return s.save()
}

// SaveAs sets the file reference to path, resolving the format from its
// extension (the configured default extension is appended when the path
// has none), then saves.
func (s *Session) SaveAs(path string) error {
	if filepath.Ext(path) == "" && s.defaultExt != "" {
		path += "." + s.defaultExt
	}
	s.path = path
	s.strategy = storage.ForPath(path)
	return s.save()
}

func (s *Session) save() error {
	if err := s.strategy.Save(s.path, s.text); err != nil {
		s.log.SaveError(s.id, s.path, err)
		return err
	}
	s.log.FileSaved(s.id, s.path, s.strategy.Format().String())
	s.notifier.AutoSaved(s.path)
	return nil
}

// SetText replaces the buffer and runs change detection against the
// paragraph baseline. Fewer paragraphs fire a deletion notification. More
// paragraphs, with a file active, trigger an implicit save through the
// current strategy and fire the auto-save notification, on every
// paragraph-adding edit (disable with autosave_on_growth in the config).
// A write failure during the implicit save is logged; the notification
// still fires. The baseline always advances to the new count.
func (s *Session) SetText(text string) {
	s.text = text
	count := paragraph.Count(text)

	switch {
	case count < s.baseline:
		deleted := s.baseline - count
		s.log.ParagraphsDeleted(s.id, deleted)
		s.notifier.ParagraphsDeleted(deleted)
	case count > s.baseline:
		if s.path != "" && s.autosaveOnGrowth {
			if err := s.strategy.Save(s.path, text); err != nil {
				s.log.SaveError(s.id, s.path, err)
			} else {
				s.log.AutoSaved(s.id, s.path, count)
			}
			s.notifier.AutoSaved(s.path)
		}
	}
	s.baseline = count
}
