package editfield_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"

	editfield "github.com/goliatone/go-editfield"
)

func TestNewWorksheetFieldCommits(t *testing.T) {
	var body map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/rest/api/worksheets/command/" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	widget, err := editfield.NewWorksheetField(server.URL, "0xws", "title",
		editfield.WithValue("old title"),
	)
	if err != nil {
		t.Fatalf("NewWorksheetField: %v", err)
	}

	if err := widget.Activate(); err != nil {
		t.Fatalf("activate: %v", err)
	}
	if err := widget.Commit(context.Background(), "new title"); err != nil {
		t.Fatalf("commit: %v", err)
	}

	want := map[string]any{
		"worksheet_uuid": "0xws",
		"raw_command": map[string]any{
			"k":      "title",
			"v":      "new title",
			"action": "worksheet-edit",
		},
	}
	if diff := cmp.Diff(want, body); diff != "" {
		t.Errorf("request body mismatch (-want +got):\n%s", diff)
	}
}

func TestNewBundleFieldCommits(t *testing.T) {
	var path string
	var body map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	widget, err := editfield.NewBundleField(server.URL, "0xbundle", "description")
	if err != nil {
		t.Fatalf("NewBundleField: %v", err)
	}

	if err := widget.Activate(); err != nil {
		t.Fatalf("activate: %v", err)
	}
	if err := widget.Commit(context.Background(), "trained on v2 data"); err != nil {
		t.Fatalf("commit: %v", err)
	}

	if path != "/rest/api/bundles/0xbundle/" {
		t.Errorf("path = %q, want /rest/api/bundles/0xbundle/", path)
	}
	want := map[string]any{
		"metadata": map[string]any{
			"description": "trained on v2 data",
		},
	}
	if diff := cmp.Diff(want, body); diff != "" {
		t.Errorf("request body mismatch (-want +got):\n%s", diff)
	}
}

func TestNewRegistryHasBuiltins(t *testing.T) {
	registry, err := editfield.NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	for _, name := range []string{"vanilla", "tui"} {
		if _, err := registry.Get(name); err != nil {
			t.Errorf("Get(%q): %v", name, err)
		}
	}
}
