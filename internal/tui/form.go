package tui

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/zorder/internal/billing"
	"github.com/zarlcorp/zorder/internal/sample"
)

// flashMsg clears the flash after a timeout.
type flashMsg struct{}

// submittedMsg carries a form that passed validation.
type submittedMsg struct {
	form billing.Form
}

// formModel is the edit view. It owns the billing form until a submit
// succeeds.
type formModel struct {
	form     billing.Form
	gen      *sample.Generator
	editable []billing.Field
	inputs   []textinput.Model
	focus    int
	flash    string
}

func newFormModel(f billing.Form, gen *sample.Generator) formModel {
	var editable []billing.Field
	for _, name := range billing.Fields {
		if !name.ReadOnly() {
			editable = append(editable, name)
		}
	}

	inputs := make([]textinput.Model, len(editable))
	for i, name := range editable {
		ti := textinput.New()
		ti.CharLimit = 256
		ti.Width = 40
		ti.Prompt = ""
		if name == billing.FieldAddress2 {
			ti.Placeholder = "optional"
		}
		ti.SetValue(f.Value(name))
		inputs[i] = ti
	}

	m := formModel{
		form:     f,
		gen:      gen,
		editable: editable,
		inputs:   inputs,
	}
	m.inputs[m.focus].Focus()
	return m
}

func (m formModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m formModel) Update(msg tea.Msg) (formModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case flashMsg:
		m.flash = ""
		return m, nil
	}

	return m.updateInput(msg)
}

func (m formModel) handleKey(msg tea.KeyMsg) (formModel, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	if key.Matches(msg, zstyle.KeyTab) || msg.Type == tea.KeyDown {
		return m.moveFocus(1), textinput.Blink
	}

	if msg.Type == tea.KeyShiftTab || msg.Type == tea.KeyUp {
		return m.moveFocus(-1), textinput.Blink
	}

	if key.Matches(msg, zstyle.KeyEnter) {
		return m.submit()
	}

	switch msg.String() {
	case "ctrl+t":
		m.form.ToggleTheme()
		slog.Debug("theme toggled", "theme", m.form.Theme().String())
		return m, nil

	case "ctrl+g":
		return m.fillSample()
	}

	return m.updateInput(msg)
}

func (m formModel) moveFocus(delta int) formModel {
	n := len(m.inputs)
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + delta + n) % n
	m.inputs[m.focus].Focus()
	return m
}

// updateInput feeds msg to the focused input and copies the result into the
// form so derived fields follow every keystroke.
func (m formModel) updateInput(msg tea.Msg) (formModel, tea.Cmd) {
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)

	name := m.editable[m.focus]
	if val := m.inputs[m.focus].Value(); val != m.form.Value(name) {
		if err := m.form.SetField(name, val); err != nil {
			m.flash = err.Error()
			return m, tea.Batch(cmd, clearFlashAfter())
		}
	}
	return m, cmd
}

func (m formModel) fillSample() (formModel, tea.Cmd) {
	if m.gen == nil {
		return m, nil
	}
	if err := m.gen.Fill(&m.form); err != nil {
		m.flash = "fill: " + err.Error()
		return m, clearFlashAfter()
	}
	m.syncInputs()
	m.flash = "filled with sample data"
	return m, clearFlashAfter()
}

// syncInputs copies form values back into the inputs.
func (m *formModel) syncInputs() {
	for i, name := range m.editable {
		m.inputs[i].SetValue(m.form.Value(name))
	}
}

func (m formModel) submit() (formModel, tea.Cmd) {
	errs := m.form.Submit()
	if !errs.Empty() {
		slog.Debug("submit rejected", "fields", len(errs))
		m.flash = fmt.Sprintf("%d %s to fix", len(errs), plural(len(errs), "field", "fields"))
		// focus the first failing field
		for i, name := range m.editable {
			if errs.Has(name) {
				m.inputs[m.focus].Blur()
				m.focus = i
				m.inputs[m.focus].Focus()
				break
			}
		}
		return m, clearFlashAfter()
	}

	f := m.form
	slog.Debug("order submitted", "tracking", f.Value(billing.FieldTracking))
	return m, func() tea.Msg { return submittedMsg{form: f} }
}

// focused returns the field under the cursor.
func (m formModel) focused() billing.Field {
	return m.editable[m.focus]
}

func (m formModel) View() string {
	p := paletteFor(m.form.Theme())
	errs := m.form.Errors()

	title := zstyle.Title.Render("order billing form")
	s := fmt.Sprintf("\n  %s  %s\n\n", title, themeBadge(m.form.Theme()))

	input := 0
	for _, name := range billing.Fields {
		label := name.Label()
		if name.Required() {
			label += " *"
		}
		labelView := p.label.Render(fmt.Sprintf("%-12s", label))

		cursor := "  "
		var value string
		if name.ReadOnly() {
			value = zstyle.MutedText.Render(m.form.Value(name))
		} else {
			if input == m.focus {
				cursor = "> "
			}
			value = p.input.Render(m.inputs[input].View())
			input++
		}

		s += fmt.Sprintf("  %s%s %s\n", cursor, labelView, value)

		if msg, ok := errs[name]; ok {
			s += "  " + strings.Repeat(" ", 15) + zstyle.StatusErr.Render(msg) + "\n"
		}
	}

	s += "\n"

	// always reserve a line for flash to prevent layout shift
	if m.flash != "" {
		s += "  " + zstyle.StatusWarn.Render(m.flash) + "\n"
	} else {
		s += "\n"
	}

	return s
}

func clearFlashAfter() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return flashMsg{}
	})
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

