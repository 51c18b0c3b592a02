package bundle

import (
	"net/http"
	"strings"
)

// Options configure how bundle field widgets reach the backend.
type Options struct {
	BaseURL    string
	BasePath   string
	HTTPClient *http.Client
}

// OptionFn mutates Options.
type OptionFn func(*Options)

// DefaultOptions returns the built-in configuration.
func DefaultOptions() Options {
	return Options{
		BasePath: "/rest/api/bundles",
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
	if strings.TrimSpace(opts.BasePath) == "" {
		opts.BasePath = "/rest/api/bundles"
	}
	return opts
}

// WithBaseURL sets the backend origin.
func WithBaseURL(baseURL string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.BaseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	}
}

// WithBasePath overrides the bundle collection path.
func WithBasePath(path string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.BasePath = path
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
