// Package vanilla renders editable-field widgets as framework-free HTML: a
// clickable anchor showing the current value, or a text input when the editor
// is open, with inline error spans.
package vanilla

import (
	"context"
	"errors"
	"fmt"
	"html"
	"sort"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-editfield/pkg/field"
	"github.com/goliatone/go-editfield/pkg/render"
	"github.com/goliatone/go-editfield/pkg/render/template"
	"github.com/goliatone/go-editfield/pkg/render/template/pongo"
)

const (
	editableTemplate = "editable"
	// Theme token consulted for an extra wrapper class.
	classToken = "editfield.class"
)

// Renderer implements render.Renderer producing HTML output.
type Renderer struct {
	templates template.TemplateRenderer
	policy    *bluemonday.Policy
	inputName string
}

// Option configures the renderer.
type Option func(*Renderer)

// WithTemplateRenderer overrides the template engine. When omitted, a pongo2
// engine over the embedded templates is used.
func WithTemplateRenderer(templates template.TemplateRenderer) Option {
	return func(r *Renderer) {
		if templates != nil {
			r.templates = templates
		}
	}
}

// WithSanitizerPolicy overrides the bluemonday policy applied to HTML-format
// values. Defaults to the UGC policy.
func WithSanitizerPolicy(policy *bluemonday.Policy) Option {
	return func(r *Renderer) {
		if policy != nil {
			r.policy = policy
		}
	}
}

// WithInputName overrides the name attribute of the generated input element.
func WithInputName(name string) Option {
	return func(r *Renderer) {
		trimmed := strings.TrimSpace(name)
		if trimmed != "" {
			r.inputName = trimmed
		}
	}
}

// New constructs the renderer with defaults plus any overrides.
func New(options ...Option) (*Renderer, error) {
	r := &Renderer{
		policy:    bluemonday.UGCPolicy(),
		inputName: "value",
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}

	if r.templates == nil {
		engine, err := pongo.New(pongo.WithFS(TemplatesFS()))
		if err != nil {
			return nil, fmt.Errorf("vanilla: build template engine: %w", err)
		}
		r.templates = engine
	}
	return r, nil
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return "vanilla"
}

// ContentType reports the output media type.
func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render produces the widget markup. Values are escaped for text format and
// sanitized for HTML format; error messages are always escaped.
func (r *Renderer) Render(ctx context.Context, widget *field.Widget, options render.Options) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("vanilla: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if widget == nil {
		return nil, errors.New("vanilla: widget is required")
	}

	display := widget.Display()
	empty := widget.Value() == nil || fmt.Sprint(widget.Value()) == ""
	if options.Format == render.FormatHTML && !empty {
		display = r.policy.Sanitize(display)
	} else {
		display = html.EscapeString(display)
	}

	messages := render.MergeErrors(widget.InlineError(), options.Errors)
	escaped := make([]string, 0, len(messages))
	for _, message := range messages {
		escaped = append(escaped, html.EscapeString(message))
	}

	data := map[string]any{
		"url":         html.EscapeString(widget.URL()),
		"name":        html.EscapeString(r.inputName),
		"display":     display,
		"editor":      html.EscapeString(widget.EditorValue()),
		"placeholder": html.EscapeString(widget.Placeholder()),
		"open":        widget.Open(),
		"disabled":    widget.Disabled(),
		"empty":       empty,
		"errors":      escaped,
		"extra_class": html.EscapeString(themeClass(options)),
		"style":       html.EscapeString(themeStyle(options)),
	}

	out, err := r.templates.Render(editableTemplate, data)
	if err != nil {
		return nil, fmt.Errorf("vanilla: render widget: %w", err)
	}
	return []byte(out), nil
}

func themeClass(options render.Options) string {
	if options.Theme == nil {
		return ""
	}
	return strings.TrimSpace(options.Theme.Tokens[classToken])
}

func themeStyle(options render.Options) string {
	if options.Theme == nil || len(options.Theme.CSSVars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(options.Theme.CSSVars))
	for key := range options.Theme.CSSVars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		parts = append(parts, key+": "+options.Theme.CSSVars[key])
	}
	return strings.Join(parts, "; ")
}
