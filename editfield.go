// Package editfield provides inline-editable field widgets that persist
// single-field edits to a REST backend. The generic widget lives in
// pkg/field; worksheet and bundle specializations live under components/;
// HTML and terminal renderers live under pkg/renderers.
package editfield

import (
	"github.com/goliatone/go-editfield/components/bundle"
	"github.com/goliatone/go-editfield/components/worksheet"
	"github.com/goliatone/go-editfield/pkg/envelope"
	"github.com/goliatone/go-editfield/pkg/field"
	"github.com/goliatone/go-editfield/pkg/render"
	"github.com/goliatone/go-editfield/pkg/renderers/tui"
	"github.com/goliatone/go-editfield/pkg/renderers/vanilla"
	"github.com/goliatone/go-editfield/pkg/submit"
)

// Widget is the generic inline-editable field.
type Widget = field.Widget

// Option configures a widget at construction time.
type Option = field.Option

// Builder shapes request bodies for a backend endpoint.
type Builder = envelope.Builder

// Params carries the committed value handed to a Builder.
type Params = envelope.Params

// RejectionError reports a submission the backend refused.
type RejectionError = submit.RejectionError

// Placeholder is the default empty-value display text.
const Placeholder = field.Placeholder

// Widget options re-exported for callers that only import the root package.
var (
	WithValue       = field.WithValue
	WithCanEdit     = field.WithCanEdit
	WithOnChange    = field.WithOnChange
	WithLabel       = field.WithLabel
	WithPlaceholder = field.WithPlaceholder
	WithSubmitter   = field.WithSubmitter
)

// NewWorksheetField builds a widget editing one field of a worksheet via the
// raw-command endpoint under baseURL.
func NewWorksheetField(baseURL, uuid, fieldName string, options ...Option) (*Widget, error) {
	component := worksheet.New(worksheet.WithBaseURL(baseURL))
	return component.Field(uuid, fieldName, options...)
}

// NewBundleField builds a widget editing one metadata field of a bundle via
// its per-bundle endpoint under baseURL.
func NewBundleField(baseURL, uuid, fieldName string, options ...Option) (*Widget, error) {
	component := bundle.New(bundle.WithBaseURL(baseURL))
	return component.Field(uuid, fieldName, options...)
}

// NewRegistry returns a renderer registry with the built-in HTML and terminal
// renderers registered.
func NewRegistry() (*render.Registry, error) {
	registry := render.NewRegistry()

	html, err := vanilla.New()
	if err != nil {
		return nil, err
	}
	if err := registry.Register(html); err != nil {
		return nil, err
	}

	terminal, err := tui.New()
	if err != nil {
		return nil, err
	}
	if err := registry.Register(terminal); err != nil {
		return nil, err
	}

	return registry, nil
}
