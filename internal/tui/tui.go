// Package tui implements the root Bubble Tea model for zorder.
package tui

import (
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/zorder/internal/billing"
	"github.com/zarlcorp/zorder/internal/ledger"
	"github.com/zarlcorp/zorder/internal/sample"
)

type viewID int

const (
	viewForm viewID = iota
	viewConfirm
)

// Model is the root TUI model. Exactly one of edit or confirm owns the
// billing form at a time, selected by active.
type Model struct {
	gen    *sample.Generator
	ledger *ledger.Ledger
	now    func() time.Time

	active  viewID
	edit    formModel
	confirm confirmModel

	// terminal dimensions
	width  int
	height int
}

// New creates the root TUI model around a fresh form. gen and led may be nil.
func New(f billing.Form, gen *sample.Generator, led *ledger.Ledger) Model {
	return Model{
		gen:    gen,
		ledger: led,
		now:    time.Now,
		active: viewForm,
		edit:   newFormModel(f, gen),
	}
}

func (m Model) Init() tea.Cmd {
	return m.edit.Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case submittedMsg:
		return m.handleSubmitted(msg.form)

	case resetMsg:
		return m.handleReset(msg.form)
	}

	return m.updateActive(msg)
}

func (m Model) updateActive(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.active {
	case viewForm:
		m.edit, cmd = m.edit.Update(msg)
	case viewConfirm:
		m.confirm, cmd = m.confirm.Update(msg)
	}

	return m, cmd
}

func (m Model) handleSubmitted(f billing.Form) (tea.Model, tea.Cmd) {
	var flash string
	count := 0
	if m.ledger != nil {
		if err := m.ledger.Record(f.State(), m.now()); err != nil {
			slog.Warn("record order", "err", err)
			flash = "ledger: " + err.Error()
		}
		if n, err := m.ledger.Count(); err == nil {
			count = n
		}
	}

	m.confirm = newConfirmModel(f, count)
	m.active = viewConfirm
	if flash != "" {
		m.confirm.flash = flash
		return m, tea.Batch(tea.ClearScreen, clearFlashAfter())
	}
	return m, tea.ClearScreen
}

func (m Model) handleReset(f billing.Form) (tea.Model, tea.Cmd) {
	old := f.Value(billing.FieldTracking)
	f.Reset()
	slog.Debug("form reset", "previous", old, "tracking", f.Value(billing.FieldTracking))

	m.edit = newFormModel(f, m.gen)
	m.active = viewForm
	return m, tea.Batch(m.edit.Init(), tea.ClearScreen)
}

// Form returns the billing form owned by the active view.
func (m Model) Form() billing.Form {
	if m.active == viewConfirm {
		return m.confirm.form
	}
	return m.edit.form
}

// Mode reports whether the widget is editing or showing a submitted order.
func (m Model) Mode() billing.Mode {
	return m.Form().Mode()
}

func (m Model) View() string {
	var content string
	switch m.active {
	case viewForm:
		content = m.edit.View()
	case viewConfirm:
		content = m.confirm.View()
	}

	content = paletteFor(m.Form().Theme()).panel.Render(content)

	header := zstyle.RenderHeader("zorder", viewTitle(m.active), accent)
	sep := zstyle.RenderSeparator(m.width)
	footer := zstyle.RenderFooter(helpFor(m.active))

	return "\n" + header + "\n" + sep + "\n" + content + "\n" + footer + "\n"
}

// viewTitle returns the display title for each view.
func viewTitle(id viewID) string {
	switch id {
	case viewForm:
		return "Order Billing"
	case viewConfirm:
		return "Submitted"
	}
	return ""
}

// helpFor returns keybinding pairs for each view's footer.
func helpFor(id viewID) []zstyle.HelpPair {
	switch id {
	case viewForm:
		return []zstyle.HelpPair{
			{Key: "tab", Desc: "next"},
			{Key: "shift+tab", Desc: "prev"},
			{Key: "enter", Desc: "submit"},
			{Key: "ctrl+g", Desc: "sample"},
			{Key: "ctrl+t", Desc: "theme"},
			{Key: "ctrl+c", Desc: "quit"},
		}
	case viewConfirm:
		return []zstyle.HelpPair{
			{Key: "r", Desc: "reset"},
			{Key: "c", Desc: "copy"},
			{Key: "t", Desc: "theme"},
			{Key: "q", Desc: "quit"},
		}
	}
	return nil
}

// Close cleans up resources. Call after the program exits.
func (m Model) Close() {
	if m.ledger != nil {
		m.ledger.Close()
	}
}
