package bubbletea

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-editfield/pkg/envelope"
	"github.com/goliatone/go-editfield/pkg/field"
)

type scriptedSubmitter struct {
	errs  []error
	calls int
}

func (s *scriptedSubmitter) Submit(context.Context, string, map[string]any) error {
	idx := s.calls
	s.calls++
	if idx < len(s.errs) {
		return s.errs[idx]
	}
	return nil
}

type rejected struct{ text string }

func (e *rejected) Error() string     { return e.text }
func (e *rejected) Rejection() string { return e.text }

func newModel(t *testing.T, submitter field.Submitter, options ...field.Option) Model {
	t.Helper()
	builder := envelope.WorksheetCommand{WorksheetUUID: "u1", FieldName: "title"}
	options = append([]field.Option{field.WithSubmitter(submitter)}, options...)
	w, err := field.New("/rest/api/worksheets/command/", builder, options...)
	require.NoError(t, err)
	m, err := New(w)
	require.NoError(t, err)
	return m
}

func keyMsg(t tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: t} }

func typeRunes(m Model, text string) Model {
	for _, r := range text {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func TestEnterOpensEditorSeeded(t *testing.T) {
	m := newModel(t, &scriptedSubmitter{},
		field.WithValue("old"), field.WithCanEdit(true))

	m, _ = m.Update(keyMsg(tea.KeyEnter))

	require.True(t, m.Editing())
	require.Equal(t, "old", m.input.Value())
}

func TestEnterIgnoredWhenDisabled(t *testing.T) {
	m := newModel(t, &scriptedSubmitter{},
		field.WithValue("old"), field.WithCanEdit(false))

	m, _ = m.Update(keyMsg(tea.KeyEnter))

	require.False(t, m.Editing())
	require.Contains(t, m.View(), "read-only")
}

func TestEscCancelsWithoutCommit(t *testing.T) {
	submitter := &scriptedSubmitter{}
	m := newModel(t, submitter, field.WithValue("old"), field.WithCanEdit(true))

	m, _ = m.Update(keyMsg(tea.KeyEnter))
	m = typeRunes(m, "xyz")
	m, _ = m.Update(keyMsg(tea.KeyEsc))

	require.False(t, m.Editing())
	require.Zero(t, submitter.calls)
	require.Equal(t, "old", m.Widget().Value())
}

func TestCommitFlow(t *testing.T) {
	onChange := 0
	submitter := &scriptedSubmitter{}
	m := newModel(t, submitter,
		field.WithValue("old"),
		field.WithCanEdit(true),
		field.WithOnChange(func() { onChange++ }),
	)

	m, _ = m.Update(keyMsg(tea.KeyEnter))
	m = typeRunes(m, "!")
	m, cmd := m.Update(keyMsg(tea.KeyEnter))
	require.NotNil(t, cmd)

	msg := cmd()
	result, ok := msg.(CommitResultMsg)
	require.True(t, ok)
	require.NoError(t, result.Err)

	m, _ = m.Update(result)

	require.False(t, m.Editing())
	require.Equal(t, "old!", m.Widget().Value())
	require.Equal(t, 1, onChange)
	require.Contains(t, m.View(), "old!")
}

func TestRejectionKeepsEditorOpen(t *testing.T) {
	onChange := 0
	submitter := &scriptedSubmitter{errs: []error{&rejected{text: "bad value"}}}
	m := newModel(t, submitter,
		field.WithValue("old"),
		field.WithCanEdit(true),
		field.WithOnChange(func() { onChange++ }),
	)

	m, _ = m.Update(keyMsg(tea.KeyEnter))
	m, cmd := m.Update(keyMsg(tea.KeyEnter))
	msg := cmd()
	result, ok := msg.(CommitResultMsg)
	require.True(t, ok)
	require.Error(t, result.Err)

	m, _ = m.Update(result)

	require.True(t, m.Editing())
	require.Zero(t, onChange)
	require.Equal(t, "old", m.Widget().Value())
	require.Contains(t, m.View(), "bad value")
}

type gatedSubmitter struct {
	started chan struct{}
	release chan struct{}
}

func (s *gatedSubmitter) Submit(context.Context, string, map[string]any) error {
	close(s.started)
	<-s.release
	return nil
}

// Bubble Tea executes commands on their own goroutines while the program
// keeps calling View, so the commit command must not touch widget state.
func TestViewSafeWhileCommitInFlight(t *testing.T) {
	submitter := &gatedSubmitter{
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
	m := newModel(t, submitter, field.WithValue("old"), field.WithCanEdit(true))

	m, _ = m.Update(keyMsg(tea.KeyEnter))
	m = typeRunes(m, "!")
	m, cmd := m.Update(keyMsg(tea.KeyEnter))
	require.NotNil(t, cmd)

	results := make(chan tea.Msg, 1)
	go func() { results <- cmd() }()

	<-submitter.started
	for i := 0; i < 100; i++ {
		_ = m.View()
	}
	close(submitter.release)

	msg := <-results
	result, ok := msg.(CommitResultMsg)
	require.True(t, ok)
	require.NoError(t, result.Err)
	require.Equal(t, "old!", result.Value)

	// Nothing applied until the message reaches the event loop.
	require.Equal(t, "old", m.Widget().Value())
	require.True(t, m.Widget().Open())

	m, _ = m.Update(result)
	require.Equal(t, "old!", m.Widget().Value())
	require.False(t, m.Editing())
}

func TestTransportErrorShown(t *testing.T) {
	submitter := &scriptedSubmitter{errs: []error{errors.New("connection refused")}}
	m := newModel(t, submitter, field.WithValue("old"), field.WithCanEdit(true))

	m, _ = m.Update(keyMsg(tea.KeyEnter))
	m, cmd := m.Update(keyMsg(tea.KeyEnter))
	m, _ = m.Update(cmd())

	require.True(t, m.Editing())
	require.Contains(t, m.View(), "connection refused")
}

func TestViewShowsPlaceholder(t *testing.T) {
	m := newModel(t, &scriptedSubmitter{}, field.WithCanEdit(true), field.WithLabel("Title"))

	view := m.View()
	require.Contains(t, view, "Title")
	require.True(t, strings.Contains(view, "<none>"))
}

func TestNewRequiresWidget(t *testing.T) {
	_, err := New(nil)
	require.Error(t, err)
}
