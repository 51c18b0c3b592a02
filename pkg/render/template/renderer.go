// Package template defines the rendering contract HTML renderers use to turn
// widget state into markup, decoupling them from a concrete template engine.
package template

// TemplateRenderer renders a named template with the supplied context data.
type TemplateRenderer interface {
	Render(name string, data map[string]any) (string, error)
}
