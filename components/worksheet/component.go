package worksheet

import (
	"strings"

	"github.com/goliatone/go-editfield/pkg/envelope"
	"github.com/goliatone/go-editfield/pkg/field"
	"github.com/goliatone/go-editfield/pkg/submit"
)

// Component builds editable-field widgets for worksheet resources. Edits are
// shaped as raw worksheet commands and posted to a single fixed endpoint.
type Component struct {
	opts Options
}

// New constructs a component with default options plus any overrides.
func New(fns ...OptionFn) *Component {
	return &Component{opts: NewOptions(fns...)}
}

// Options returns a copy of the component configuration.
func (c *Component) Options() Options {
	if c == nil {
		return DefaultOptions()
	}
	return NewOptions(func(o *Options) { *o = c.opts })
}

// EndpointURL reports the full worksheet command endpoint.
func (c *Component) EndpointURL() string {
	opts := c.Options()
	return joinURL(opts.BaseURL, opts.CommandPath)
}

// Field builds a widget editing one named field of the worksheet identified
// by uuid. Additional field options (value, permission, change callback) pass
// through to the widget.
func (c *Component) Field(uuid, fieldName string, fns ...field.Option) (*field.Widget, error) {
	builder := envelope.WorksheetCommand{
		WorksheetUUID: uuid,
		FieldName:     fieldName,
	}
	// Reject bad coordinates at construction rather than first commit.
	if _, err := builder.Build(envelope.Params{}); err != nil {
		return nil, err
	}

	opts := c.Options()
	submitter := submit.New(submit.WithHTTPClient(opts.HTTPClient))
	fns = append([]field.Option{field.WithSubmitter(submitter)}, fns...)
	return field.New(c.EndpointURL(), builder, fns...)
}

func joinURL(baseURL, path string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		path = "/"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if baseURL == "" {
		return path
	}
	return strings.TrimRight(baseURL, "/") + path
}
