package tui

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/zorder/internal/billing"
)

// resetMsg asks the root model to start a new blank form.
type resetMsg struct {
	form billing.Form
}

// confirmModel is the read-only summary shown after a successful submit.
type confirmModel struct {
	form         billing.Form
	record       string
	sessionCount int
	flash        string
}

func newConfirmModel(f billing.Form, sessionCount int) confirmModel {
	return confirmModel{
		form:         f,
		record:       formatRecord(f.State()),
		sessionCount: sessionCount,
	}
}

// formatRecord renders the record as two-space indented JSON.
func formatRecord(s billing.State) string {
	b, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		// State only holds strings
		return fmt.Sprintf("%+v", s)
	}
	return string(b)
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (confirmModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case flashMsg:
		m.flash = ""
		return m, nil
	}

	return m, nil
}

func (m confirmModel) handleKey(msg tea.KeyMsg) (confirmModel, tea.Cmd) {
	if key.Matches(msg, zstyle.KeyQuit) {
		return m, tea.Quit
	}

	switch msg.String() {
	case "r":
		f := m.form
		return m, func() tea.Msg { return resetMsg{form: f} }

	case "t", "ctrl+t":
		m.form.ToggleTheme()
		slog.Debug("theme toggled", "theme", m.form.Theme().String())
		return m, nil

	case "c":
		if err := copyToClipboard(m.record); err != nil {
			m.flash = "copy: " + err.Error()
			return m, clearFlashAfter()
		}
		m.flash = "copied!"
		return m, clearFlashAfter()
	}

	return m, nil
}

func (m confirmModel) View() string {
	title := zstyle.Title.Render("Form Submitted Successfully!")
	s := fmt.Sprintf("\n  %s  %s\n\n", title, themeBadge(m.form.Theme()))

	for _, line := range strings.Split(m.record, "\n") {
		s += "    " + line + "\n"
	}

	s += "\n"
	s += "  " + zstyle.MutedText.Render(fmt.Sprintf("(%d) %s submitted this session",
		m.sessionCount, plural(m.sessionCount, "order", "orders"))) + "\n"
	s += "\n"

	// always reserve a line for flash to prevent layout shift
	if m.flash != "" {
		s += "  " + zstyle.StatusOK.Render(m.flash) + "\n"
	} else {
		s += "\n"
	}

	return s
}
