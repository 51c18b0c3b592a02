// Package tui drives inline field edits from the terminal. The interactive
// flow mirrors the widget lifecycle: display the current value, activate on
// demand, prompt with the value pre-filled, commit, and surface rejections
// inline before offering another attempt.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-editfield/pkg/field"
	"github.com/goliatone/go-editfield/pkg/render"
)

// Editor renders editable fields as plain text and runs interactive edit
// sessions through a PromptDriver.
type Editor struct {
	driver        PromptDriver
	maxAttempts   int
	confirmCommit bool
}

// Option configures the editor.
type Option func(*Editor)

// WithPromptDriver overrides the prompt driver. Defaults to a survey-backed
// driver.
func WithPromptDriver(driver PromptDriver) Option {
	return func(e *Editor) {
		if driver != nil {
			e.driver = driver
		}
	}
}

// WithMaxAttempts caps how many rejected commits a session tolerates before
// giving up. Zero means unlimited.
func WithMaxAttempts(n int) Option {
	return func(e *Editor) {
		if n >= 0 {
			e.maxAttempts = n
		}
	}
}

// WithCommitConfirmation asks for confirmation before each commit. Declining
// returns to the prompt with the entered value as the new default.
func WithCommitConfirmation() Option {
	return func(e *Editor) {
		e.confirmCommit = true
	}
}

// New constructs an editor with defaults plus any overrides.
func New(options ...Option) (*Editor, error) {
	driver, err := newSurveyDriver()
	if err != nil {
		return nil, err
	}

	e := &Editor{driver: driver}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(e)
	}

	if e.driver == nil {
		e.driver, err = newSurveyDriver()
		if err != nil {
			return nil, err
		}
	}
	return e, nil
}

// Name reports the renderer identifier.
func (e *Editor) Name() string {
	return "tui"
}

// ContentType reports the output media type.
func (e *Editor) ContentType() string {
	return "text/plain; charset=utf-8"
}

// Render produces a one-line plain-text view of the widget: label, value, and
// any pending inline error.
func (e *Editor) Render(ctx context.Context, widget *field.Widget, options render.Options) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("tui: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if widget == nil {
		return nil, errors.New("tui: widget is required")
	}

	var b strings.Builder
	if label := widget.Label(); label != "" {
		b.WriteString(label)
		b.WriteString(": ")
	}
	b.WriteString(widget.Display())
	if widget.Disabled() {
		b.WriteString(" (read-only)")
	}
	for _, message := range render.MergeErrors(widget.InlineError(), options.Errors) {
		b.WriteString("\n  ! ")
		b.WriteString(message)
	}
	b.WriteString("\n")
	return []byte(b.String()), nil
}

// Edit runs an interactive session for one widget. It reports true when a
// commit succeeded. Disabled widgets return field.ErrNotEditable without
// prompting. Rejections are shown inline and the prompt reopens until the
// commit succeeds, the attempt cap is reached, or the user aborts. With
// WithCommitConfirmation, each commit is confirmed first; declining reopens
// the prompt pre-filled with the declined value.
func (e *Editor) Edit(ctx context.Context, widget *field.Widget) (bool, error) {
	if ctx == nil {
		return false, errors.New("tui: context is required")
	}
	if widget == nil {
		return false, errors.New("tui: widget is required")
	}
	if e.driver == nil {
		return false, errors.New("tui: prompt driver is nil")
	}
	if widget.Disabled() {
		return false, field.ErrNotEditable
	}

	attempts := 0
	pending := ""
	hasPending := false
	for {
		if err := ctx.Err(); err != nil {
			return false, err
		}
		if err := widget.Activate(); err != nil {
			return false, err
		}

		defaultValue := widget.EditorValue()
		if hasPending {
			defaultValue = pending
		}
		newValue, err := e.driver.Input(ctx, InputConfig{
			Message: promptMessage(widget),
			Default: defaultValue,
		})
		if err != nil {
			return false, err
		}

		if e.confirmCommit {
			confirmed, err := e.driver.Confirm(ctx, ConfirmConfig{
				Message: fmt.Sprintf("Save %q?", newValue),
				Default: true,
			})
			if err != nil {
				return false, err
			}
			if !confirmed {
				pending, hasPending = newValue, true
				continue
			}
		}
		hasPending = false

		err = widget.Commit(ctx, newValue)
		if err == nil {
			return true, nil
		}

		var rej interface{ Rejection() string }
		if !errors.As(err, &rej) {
			return false, err
		}

		if infoErr := e.driver.Info(ctx, "Error: "+rej.Rejection()); infoErr != nil {
			return false, infoErr
		}

		attempts++
		if e.maxAttempts > 0 && attempts >= e.maxAttempts {
			return false, err
		}
	}
}

func promptMessage(widget *field.Widget) string {
	if label := widget.Label(); label != "" {
		return label
	}
	return fmt.Sprintf("New value (%s)", widget.Display())
}
