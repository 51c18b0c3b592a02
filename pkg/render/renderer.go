package render

import (
	"context"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-editfield/pkg/field"
)

// Renderer converts an editable-field widget into a byte representation
// (HTML, terminal output, etc.).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, widget *field.Widget, options Options) ([]byte, error)
}

// ValueFormat describes how a renderer should treat the displayed value.
type ValueFormat string

const (
	// FormatText escapes the value for plain-text display.
	FormatText ValueFormat = "text"
	// FormatHTML sanitizes the value and emits it as markup.
	FormatHTML ValueFormat = "html"
)

// Options carries per-render overrides: extra error messages surfaced
// alongside the widget's own inline error, the value format, and an optional
// theme configuration renderers can use for classes and css variables.
type Options struct {
	Format ValueFormat
	Errors []string
	Theme  *theme.RendererConfig
}

// MergeErrors concatenates the widget inline error with option-level errors,
// trimming blanks and dropping duplicates while preserving order.
func MergeErrors(inline string, extras []string) []string {
	combined := make([]string, 0, len(extras)+1)
	if inline != "" {
		combined = append(combined, inline)
	}
	combined = append(combined, extras...)

	seen := make(map[string]struct{}, len(combined))
	out := make([]string, 0, len(combined))
	for _, message := range combined {
		trimmed := strings.TrimSpace(message)
		if trimmed == "" {
			continue
		}
		if _, exists := seen[trimmed]; exists {
			continue
		}
		seen[trimmed] = struct{}{}
		out = append(out, trimmed)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
