package submit

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSubmit_PostsJSONBody(t *testing.T) {
	var (
		gotBody        map[string]any
		gotContentType string
		gotMethod      string
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotContentType = r.Header.Get("Content-Type")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	s := New(WithHTTPClient(server.Client()))
	body := map[string]any{
		"metadata": map[string]any{"description": "hello"},
	}
	if err := s.Submit(context.Background(), server.URL, body); err != nil {
		t.Fatalf("submit: %v", err)
	}

	if gotMethod != http.MethodPost {
		t.Fatalf("want POST, got %s", gotMethod)
	}
	if gotContentType != "application/json" {
		t.Fatalf("want application/json, got %q", gotContentType)
	}
	if diff := cmp.Diff(body, gotBody); diff != "" {
		t.Fatalf("body mismatch (-want +got):\n%s", diff)
	}
}

func TestSubmit_ExceptionBecomesRejection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"exception":"bad value"}`))
	}))
	defer server.Close()

	err := New(WithHTTPClient(server.Client())).Submit(context.Background(), server.URL, nil)

	var rejection *RejectionError
	if !errors.As(err, &rejection) {
		t.Fatalf("want RejectionError, got %v", err)
	}
	if rejection.Message != "bad value" {
		t.Fatalf("want %q, got %q", "bad value", rejection.Message)
	}
}

func TestSubmit_ExceptionWinsOverStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"exception":"not permitted"}`))
	}))
	defer server.Close()

	err := New(WithHTTPClient(server.Client())).Submit(context.Background(), server.URL, nil)

	var rejection *RejectionError
	if !errors.As(err, &rejection) {
		t.Fatalf("want RejectionError, got %v", err)
	}
	if rejection.Rejection() != "not permitted" {
		t.Fatalf("unexpected rejection text %q", rejection.Rejection())
	}
}

func TestSubmit_EmptyResponseIsSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	if err := New(WithHTTPClient(server.Client())).Submit(context.Background(), server.URL, nil); err != nil {
		t.Fatalf("submit: %v", err)
	}
}

func TestSubmit_UnexpectedStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	err := New(WithHTTPClient(server.Client())).Submit(context.Background(), server.URL, nil)
	if err == nil {
		t.Fatal("expected error")
	}
	var rejection *RejectionError
	if errors.As(err, &rejection) {
		t.Fatalf("plain status failure should not be a rejection: %v", err)
	}
}

func TestSubmit_MissingURL(t *testing.T) {
	if err := New().Submit(context.Background(), "  ", nil); err == nil {
		t.Fatal("expected error for blank url")
	}
}
