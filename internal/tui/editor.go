package tui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gerunddev/scribe/internal/diff"
	"github.com/gerunddev/scribe/internal/notify"
	"github.com/gerunddev/scribe/internal/session"
	"github.com/gerunddev/scribe/internal/styles"
)

type mode int

const (
	modeEdit mode = iota
	modeOpen
	modeSaveAs
	modeDiff
	modeAlert
)

// alert is a blocking message the user must dismiss.
type alert struct {
	title string
	body  string
}

// alertQueue is shared by pointer across model copies so that observer
// callbacks registered at startup reach the current model.
type alertQueue struct {
	pending []alert
}

func (q *alertQueue) push(a alert) {
	q.pending = append(q.pending, a)
}

func (q *alertQueue) pop() (alert, bool) {
	if len(q.pending) == 0 {
		return alert{}, false
	}
	a := q.pending[0]
	q.pending = q.pending[1:]
	return a, true
}

// Model is the single-window editor: a textarea over a status bar, with
// overlays for opening, saving and notifications.
type Model struct {
	sess   *session.Session
	alerts *alertQueue

	textarea  textarea.Model
	picker    filepicker.Model
	saveInput textinput.Model
	diffView  viewport.Model

	mode    mode
	current alert
	width   int
	height  int
	ready   bool
}

// NewModel builds the editor model and registers the default observer that
// surfaces every notification as a blocking alert.
func NewModel(sess *session.Session, notifier *notify.Notifier) Model {
	ta := textarea.New()
	ta.Placeholder = "Start typing..."
	ta.CharLimit = 0
	ta.ShowLineNumbers = false
	ta.SetValue(sess.Text())
	ta.Focus()

	fp := filepicker.New()
	if wd, err := os.Getwd(); err == nil {
		fp.CurrentDirectory = wd
	}

	ti := textinput.New()
	ti.Placeholder = "path/to/file.txt"
	ti.Prompt = "Save as: "

	queue := &alertQueue{}
	notifier.Subscribe(notify.NewFuncs(
		func(count int) {
			queue.push(alert{
				title: "Paragraphs deleted",
				body:  fmt.Sprintf("Removed paragraphs: %d", count),
			})
		},
		func(path string) {
			queue.push(alert{
				title: "Auto-save",
				body:  fmt.Sprintf("File updated: %s", path),
			})
		},
	))

	return Model{
		sess:      sess,
		alerts:    queue,
		textarea:  ta,
		picker:    fp,
		saveInput: ti,
		diffView:  viewport.New(0, 0),
		mode:      modeEdit,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.textarea.SetWidth(msg.Width)
		m.textarea.SetHeight(msg.Height - 2)
		m.diffView.Width = msg.Width - 4
		m.diffView.Height = msg.Height - 4
		m.picker.Height = msg.Height - 6
		m.ready = true

	case tea.KeyMsg:
		switch m.mode {
		case modeAlert:
			// Blocking: any key dismisses, then show the next queued
			// alert if there is one.
			if next, ok := m.alerts.pop(); ok {
				m.current = next
			} else {
				m.mode = modeEdit
			}
			return m, nil

		case modeOpen:
			if msg.String() == "esc" {
				m.mode = modeEdit
				return m, nil
			}

		case modeSaveAs:
			switch msg.String() {
			case "esc":
				m.mode = modeEdit
				return m, nil
			case "enter":
				path := m.saveInput.Value()
				m.mode = modeEdit
				if path == "" {
					return m, nil
				}
				if err := m.sess.SaveAs(path); err != nil {
					m.alerts.push(alert{title: "Error", body: "Could not save the file: " + err.Error()})
				}
				return m.showAlerts(), nil
			}
			m.saveInput, cmd = m.saveInput.Update(msg)
			return m, cmd

		case modeDiff:
			switch msg.String() {
			case "q", "esc":
				m.mode = modeEdit
				return m, nil
			}
			m.diffView, cmd = m.diffView.Update(msg)
			return m, cmd

		case modeEdit:
			switch msg.String() {
			case "ctrl+q":
				return m, tea.Quit
			case "ctrl+o":
				m.mode = modeOpen
				return m, m.picker.Init()
			case "ctrl+s":
				if !m.sess.HasFile() {
					m.saveInput.SetValue("")
					m.saveInput.Focus()
					m.mode = modeSaveAs
					return m, textinput.Blink
				}
				if err := m.sess.Save(); err != nil {
					m.alerts.push(alert{title: "Error", body: "Could not save the file: " + err.Error()})
				}
				return m.showAlerts(), nil
			case "ctrl+d":
				if m.sess.HasFile() {
					m.diffView.SetContent(diff.Unsaved(m.sess.Path(), m.textarea.Value()))
					m.diffView.GotoTop()
					m.mode = modeDiff
				}
				return m, nil
			}

			m.textarea, cmd = m.textarea.Update(msg)
			if v := m.textarea.Value(); v != m.sess.Text() {
				m.sess.SetText(v)
			}
			return m.showAlerts(), cmd
		}
	}

	// Non-key messages feed whichever component is active.
	switch m.mode {
	case modeOpen:
		m.picker, cmd = m.picker.Update(msg)
		if ok, path := m.picker.DidSelectFile(msg); ok {
			m.sess.Open(path)
			m.textarea.SetValue(m.sess.Text())
			m.mode = modeEdit
		}
		return m, cmd
	case modeSaveAs:
		m.saveInput, cmd = m.saveInput.Update(msg)
		return m, cmd
	case modeEdit:
		m.textarea, cmd = m.textarea.Update(msg)
		return m, cmd
	}

	return m, cmd
}

// showAlerts switches to the blocking alert overlay when notifications are
// queued.
func (m Model) showAlerts() Model {
	if m.mode != modeEdit {
		return m
	}
	if a, ok := m.alerts.pop(); ok {
		m.current = a
		m.mode = modeAlert
	}
	return m
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	switch m.mode {
	case modeOpen:
		title := styles.TitleStyle.Render("Open file")
		help := styles.HelpStyle.Render("enter select • esc cancel")
		return lipgloss.JoinVertical(lipgloss.Left, title, m.picker.View(), help)

	case modeSaveAs:
		box := styles.ModalStyle.Render(
			styles.ModalTitleStyle.Render("Save file") + "\n\n" +
				m.saveInput.View() + "\n\n" +
				styles.HelpStyle.Render("enter save • esc cancel"))
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)

	case modeDiff:
		title := styles.TitleStyle.Render("Unsaved changes")
		help := styles.HelpStyle.Render("↑/↓ scroll • esc back")
		return lipgloss.JoinVertical(lipgloss.Left, title, m.diffView.View(), help)

	case modeAlert:
		box := styles.ModalStyle.Render(
			styles.ModalTitleStyle.Render(m.current.title) + "\n\n" +
				m.current.body + "\n\n" +
				styles.HelpStyle.Render("press any key"))
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)

	default:
		return lipgloss.JoinVertical(lipgloss.Left, m.textarea.View(), m.statusBar())
	}
}

func (m Model) statusBar() string {
	name := "[no file]"
	if m.sess.HasFile() {
		name = m.sess.Path()
	}
	tag := styles.StatusTagStyle.Render(m.sess.Format().String())
	info := fmt.Sprintf(" %s • %d ¶", name, m.sess.Baseline())
	help := styles.HelpStyle.Render("  ctrl+o open  ctrl+s save  ctrl+d diff  ctrl+q quit")

	bar := styles.StatusBarStyle.Width(m.width - lipgloss.Width(tag)).Render(info + help)
	return lipgloss.JoinHorizontal(lipgloss.Top, tag, bar)
}
