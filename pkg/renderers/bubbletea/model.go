// Package bubbletea provides an inline-editable field widget for Bubble Tea
// programs. The model shows the current value as styled text; activating it
// swaps in a text input pre-filled with that value, and committing posts the
// edit through the widget. Rejections are shown inline below the input and the
// editor stays open for another attempt.
package bubbletea

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/goliatone/go-editfield/pkg/field"
)

type mode int

const (
	modeViewing mode = iota
	modeEditing
	modeSubmitting
)

// CommitResultMsg reports the outcome of an in-flight commit. The submitted
// value rides along so the widget can be updated on the event loop.
type CommitResultMsg struct {
	Value string
	Err   error
}

// Model is the inline-edit field state. It is intended for embedding in a
// host program, so Update returns the concrete type rather than tea.Model.
type Model struct {
	widget *field.Widget
	input  textinput.Model
	styles Styles
	mode   mode

	// Transport failures; rejections surface through the widget itself.
	transportErr string
}

// Option configures the model.
type Option func(*Model)

// WithStyles overrides the default lipgloss styles.
func WithStyles(styles Styles) Option {
	return func(m *Model) {
		m.styles = styles
	}
}

// WithInputWidth sets the text input width in cells.
func WithInputWidth(width int) Option {
	return func(m *Model) {
		if width > 0 {
			m.input.Width = width
		}
	}
}

// New constructs a model bound to a widget.
func New(widget *field.Widget, options ...Option) (Model, error) {
	if widget == nil {
		return Model{}, errors.New("bubbletea: widget is required")
	}

	input := textinput.New()
	input.Prompt = ""
	input.Placeholder = widget.Placeholder()

	m := Model{
		widget: widget,
		input:  input,
		styles: DefaultStyles(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&m)
	}
	return m, nil
}

// Init implements the Bubble Tea lifecycle.
func (m Model) Init() tea.Cmd {
	return nil
}

// Editing reports whether the editor is open.
func (m Model) Editing() bool {
	return m.mode != modeViewing
}

// Widget exposes the underlying field widget.
func (m Model) Widget() *field.Widget {
	return m.widget
}

// Update handles key input and commit results.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKey(msg)
	case CommitResultMsg:
		return m.updateCommitResult(msg)
	}
	return m, nil
}

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch m.mode {
	case modeViewing:
		if msg.Type == tea.KeyEnter {
			if err := m.widget.Activate(); err != nil {
				// Disabled widgets ignore activation.
				return m, nil
			}
			m.input.SetValue(m.widget.EditorValue())
			m.input.CursorEnd()
			m.input.Focus()
			m.mode = modeEditing
			return m, textinput.Blink
		}
		return m, nil

	case modeEditing:
		switch msg.Type {
		case tea.KeyEsc:
			m.widget.Cancel()
			m.input.Blur()
			m.mode = modeViewing
			m.transportErr = ""
			return m, nil
		case tea.KeyEnter:
			m.mode = modeSubmitting
			m.transportErr = ""
			return m, commitCmd(m.widget, m.input.Value())
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd

	default:
		// Submitting: a second commit before the first resolves is not
		// guarded against upstream; here we simply swallow keys.
		return m, nil
	}
}

func (m Model) updateCommitResult(msg CommitResultMsg) (Model, tea.Cmd) {
	if err := m.widget.Resolve(msg.Value, msg.Err); err == nil {
		m.input.Blur()
		m.mode = modeViewing
		m.transportErr = ""
		return m, nil
	}

	var rej interface{ Rejection() string }
	if !errors.As(msg.Err, &rej) {
		m.transportErr = msg.Err.Error()
	}
	// Editing remains available for another attempt.
	m.mode = modeEditing
	m.input.Focus()
	return m, nil
}

// commitCmd only posts over the network; Bubble Tea runs commands on their
// own goroutines, so the widget is mutated exclusively in updateCommitResult
// back on the event loop.
func commitCmd(widget *field.Widget, value string) tea.Cmd {
	return func() tea.Msg {
		return CommitResultMsg{Value: value, Err: widget.Post(context.Background(), value)}
	}
}

// View renders the field line plus any pending error.
func (m Model) View() string {
	var out string

	if label := m.widget.Label(); label != "" {
		out += m.styles.Label.Render(label) + " "
	}

	switch m.mode {
	case modeViewing:
		display := m.widget.Display()
		if m.widget.Value() == nil || display == m.widget.Placeholder() {
			out += m.styles.Placeholder.Render(display)
		} else {
			out += m.styles.Value.Render(display)
		}
		if m.widget.Disabled() {
			out += " " + m.styles.ReadOnly.Render("(read-only)")
		}
	case modeEditing:
		out += m.input.View()
	case modeSubmitting:
		out += m.input.View() + " " + m.styles.ReadOnly.Render("saving…")
	}

	if inline := m.widget.InlineError(); inline != "" {
		out += "\n" + m.styles.Error.Render(inline)
	}
	if m.transportErr != "" {
		out += "\n" + m.styles.Error.Render(m.transportErr)
	}
	return out
}
