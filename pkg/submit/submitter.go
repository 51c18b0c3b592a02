package submit

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Submitter posts edit request bodies to a backend endpoint and interprets
// the response using the exception-field convention: any response carrying a
// non-empty "exception" value is a rejection, with that value as the
// user-visible error text. Every other failure propagates untouched.
type Submitter struct {
	client *http.Client
}

// Option configures the submitter.
type Option func(*Submitter)

// WithHTTPClient overrides the HTTP client used for commits. When omitted,
// http.DefaultClient is used.
func WithHTTPClient(client *http.Client) Option {
	return func(s *Submitter) {
		if client != nil {
			s.client = client
		}
	}
}

// New constructs a Submitter with defaults plus any overrides.
func New(options ...Option) *Submitter {
	s := &Submitter{client: http.DefaultClient}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	return s
}

type exceptionPayload struct {
	Exception string `json:"exception"`
}

// Submit serializes body to JSON and posts it to url. A response with a
// non-empty exception field returns a *RejectionError. A non-2xx status
// without an exception field returns a plain error.
func (s *Submitter) Submit(ctx context.Context, url string, body map[string]any) error {
	if ctx == nil {
		return errors.New("submit: context is required")
	}
	if strings.TrimSpace(url) == "" {
		return errors.New("submit: url is required")
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("submit: encode body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("submit: request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	client := s.client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("submit: do request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("submit: read response: %w", err)
	}

	// The rejection convention wins over the status code: backends report
	// field-level failures as 200s carrying an exception value.
	if trimmed := bytes.TrimSpace(raw); len(trimmed) > 0 {
		var parsed exceptionPayload
		if err := json.Unmarshal(trimmed, &parsed); err == nil && parsed.Exception != "" {
			return &RejectionError{Message: parsed.Exception}
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("submit: unexpected status %d", resp.StatusCode)
	}

	return nil
}
