package worksheet

import (
	"net/http"
	"strings"
)

// Options configure how worksheet field widgets reach the backend.
type Options struct {
	BaseURL     string
	CommandPath string
	HTTPClient  *http.Client
}

// OptionFn mutates Options.
type OptionFn func(*Options)

// DefaultOptions returns the built-in configuration.
func DefaultOptions() Options {
	return Options{
		CommandPath: "/rest/api/worksheets/command/",
	}
}

// NewOptions builds Options from defaults plus any overrides, re-applying
// defaults for cleared values.
func NewOptions(fns ...OptionFn) Options {
	opts := DefaultOptions()
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		fn(&opts)
	}
	if strings.TrimSpace(opts.CommandPath) == "" {
		opts.CommandPath = "/rest/api/worksheets/command/"
	}
	return opts
}

// WithBaseURL sets the backend origin, e.g. "https://worksheets.example.org".
func WithBaseURL(baseURL string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.BaseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	}
}

// WithCommandPath overrides the worksheet command endpoint path.
func WithCommandPath(path string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.CommandPath = path
	}
}

// WithHTTPClient sets the HTTP client used for commits.
func WithHTTPClient(client *http.Client) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.HTTPClient = client
	}
}
