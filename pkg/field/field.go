package field

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/goliatone/go-editfield/pkg/envelope"
)

// Placeholder is the text displayed when the field value is absent or empty.
const Placeholder = "<none>"

// Submitter posts a shaped request body to the endpoint URL. Satisfied by
// *submit.Submitter.
type Submitter interface {
	Submit(ctx context.Context, url string, body map[string]any) error
}

// rejection is the minimal surface a rejected submission exposes. Matched via
// errors.As so the widget does not depend on a concrete error type.
type rejection interface {
	Rejection() string
}

// Widget is the generic inline-editable field. It wraps one scalar value, an
// endpoint URL, a parameter-shaping strategy, an optional change callback, and
// an edit-permission flag. All state is ephemeral UI state mirroring a value
// owned by the parent and, ultimately, by the backend resource.
type Widget struct {
	url       string
	builder   envelope.Builder
	submitter Submitter

	label       string
	placeholder string
	value       any
	canEdit     bool
	onChange    func()

	open      bool
	editor    string
	inlineErr string
}

// Option configures a widget at construction time.
type Option func(*Widget)

// WithValue seeds the initial displayed value.
func WithValue(value any) Option {
	return func(w *Widget) {
		w.value = value
	}
}

// WithCanEdit sets the edit-permission flag. The widget is disabled exactly
// when the flag is false.
func WithCanEdit(canEdit bool) Option {
	return func(w *Widget) {
		w.canEdit = canEdit
	}
}

// WithOnChange registers a zero-argument callback fired once after every
// successful commit. The callback does not receive the new value; callers
// re-fetch or are told externally.
func WithOnChange(fn func()) Option {
	return func(w *Widget) {
		w.onChange = fn
	}
}

// WithSubmitter overrides the submitter used for commits.
func WithSubmitter(submitter Submitter) Option {
	return func(w *Widget) {
		if submitter != nil {
			w.submitter = submitter
		}
	}
}

// WithLabel sets a human-readable label used by renderers.
func WithLabel(label string) Option {
	return func(w *Widget) {
		w.label = strings.TrimSpace(label)
	}
}

// WithPlaceholder overrides the empty-value placeholder text.
func WithPlaceholder(text string) Option {
	return func(w *Widget) {
		if text != "" {
			w.placeholder = text
		}
	}
}

// New constructs a widget bound to an endpoint URL and a parameter-shaping
// strategy.
func New(url string, builder envelope.Builder, options ...Option) (*Widget, error) {
	if strings.TrimSpace(url) == "" {
		return nil, ErrMissingURL
	}
	if builder == nil {
		return nil, ErrMissingBuilder
	}

	w := &Widget{
		url:         url,
		builder:     builder,
		placeholder: Placeholder,
		canEdit:     true,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(w)
	}
	return w, nil
}

// URL reports the endpoint the widget commits to.
func (w *Widget) URL() string {
	return w.url
}

// Label reports the display label, which may be empty.
func (w *Widget) Label() string {
	return w.label
}

// Value reports the current displayed value.
func (w *Widget) Value() any {
	return w.value
}

// CanEdit reports the edit-permission flag.
func (w *Widget) CanEdit() bool {
	return w.canEdit
}

// Disabled reports whether the widget rejects activation.
func (w *Widget) Disabled() bool {
	return !w.canEdit
}

// Placeholder reports the empty-value placeholder text.
func (w *Widget) Placeholder() string {
	return w.placeholder
}

// Display returns the text shown for the current value, substituting the
// placeholder for absent or empty values.
func (w *Widget) Display() string {
	return displayValue(w.value, w.placeholder)
}

// InlineError returns the error text from the last rejected commit, cleared
// on the next successful one.
func (w *Widget) InlineError() string {
	return w.inlineErr
}

// Open reports whether the editor is active.
func (w *Widget) Open() bool {
	return w.open
}

// EditorValue returns the editor input state seeded by Activate.
func (w *Widget) EditorValue() string {
	return w.editor
}

// Update pushes a new value and permission flag into the widget. It reports
// true only when the value changed; a permission-only change updates the
// disabled state without counting as a re-render. Parents relying on the
// return to refresh their display will miss permission flips, matching the
// historical behavior of this widget.
func (w *Widget) Update(value any, canEdit bool) bool {
	w.canEdit = canEdit
	// DeepEqual rather than ==: values are usually scalars, but an
	// uncomparable dynamic type (a slice, say) must not panic here.
	if reflect.DeepEqual(value, w.value) {
		return false
	}
	// An externally-changed value while the editor is open is re-injected on
	// the next activation, not mid-edit.
	w.value = value
	return true
}

// Activate opens the editor, seeding its input state from the current value.
// The seed happens on every activation so externally-changed values are always
// reflected. Returns ErrNotEditable when the widget is disabled, in which case
// no state changes.
func (w *Widget) Activate() error {
	if w.Disabled() {
		return ErrNotEditable
	}
	w.editor = editorSeed(w.value)
	w.open = true
	return nil
}

// Cancel closes the editor without committing.
func (w *Widget) Cancel() {
	w.open = false
}

// Post shapes the new value through the builder and submits it. It never
// touches widget state, so callers may run it off their event loop and hand
// the outcome to Resolve once back on it.
func (w *Widget) Post(ctx context.Context, newValue any) error {
	body, err := w.builder.Build(envelope.Params{Value: newValue})
	if err != nil {
		return fmt.Errorf("field: build params: %w", err)
	}

	submitter := w.submitter
	if submitter == nil {
		return ErrMissingSubmitter
	}
	return submitter.Submit(ctx, w.url, body)
}

// Resolve applies the outcome of a Post. A rejection stores its text for
// inline display and leaves the value untouched; the change callback is not
// invoked. On success the widget displays the new value, closes the editor,
// and fires the callback once. The error passes through either way.
func (w *Widget) Resolve(newValue any, err error) error {
	if err != nil {
		var rej rejection
		if errors.As(err, &rej) {
			w.inlineErr = rej.Rejection()
		}
		return err
	}

	w.value = newValue
	w.inlineErr = ""
	w.open = false
	if w.onChange != nil {
		w.onChange()
	}
	return nil
}

// Commit submits the new value and applies the outcome in one step, for
// callers that commit synchronously on their own goroutine.
func (w *Widget) Commit(ctx context.Context, newValue any) error {
	return w.Resolve(newValue, w.Post(ctx, newValue))
}

func displayValue(value any, placeholder string) string {
	if value == nil {
		return placeholder
	}
	text := fmt.Sprint(value)
	if text == "" {
		return placeholder
	}
	return text
}

func editorSeed(value any) string {
	if value == nil {
		return ""
	}
	return fmt.Sprint(value)
}
