package bundle

import (
	"strings"

	"github.com/goliatone/go-editfield/pkg/envelope"
	"github.com/goliatone/go-editfield/pkg/field"
	"github.com/goliatone/go-editfield/pkg/submit"
)

// Component builds editable-field widgets for bundle metadata. Edits are
// shaped as metadata patches posted to a per-bundle endpoint.
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

// EndpointURL reports the per-bundle endpoint, e.g. "/rest/api/bundles/b1/".
func (c *Component) EndpointURL(uuid string) string {
	opts := c.Options()
	base := strings.TrimRight(opts.BasePath, "/")
	if !strings.HasPrefix(base, "/") {
		base = "/" + base
	}
	path := base + "/" + strings.TrimSpace(uuid) + "/"
	if opts.BaseURL == "" {
		return path
	}
	return strings.TrimRight(opts.BaseURL, "/") + path
}

// Field builds a widget editing one metadata field of the bundle identified
// by uuid.
func (c *Component) Field(uuid, fieldName string, fns ...field.Option) (*field.Widget, error) {
	if strings.TrimSpace(uuid) == "" {
		return nil, envelope.ErrMissingUUID
	}

	builder := envelope.BundleMetadata{FieldName: fieldName}
	if _, err := builder.Build(envelope.Params{}); err != nil {
		return nil, err
	}

	opts := c.Options()
	submitter := submit.New(submit.WithHTTPClient(opts.HTTPClient))
	fns = append([]field.Option{field.WithSubmitter(submitter)}, fns...)
	return field.New(c.EndpointURL(uuid), builder, fns...)
}
