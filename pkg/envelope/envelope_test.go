package envelope

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestWorksheetCommand_Build(t *testing.T) {
	builder := WorksheetCommand{WorksheetUUID: "u1", FieldName: "name"}

	body, err := builder.Build(Params{Value: "y"})
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	want := map[string]any{
		"worksheet_uuid": "u1",
		"raw_command": map[string]any{
			"k":      "name",
			"v":      "y",
			"action": "worksheet-edit",
		},
	}
	if diff := cmp.Diff(want, body); diff != "" {
		t.Fatalf("body mismatch (-want +got):\n%s", diff)
	}
}

func TestWorksheetCommand_MissingConfig(t *testing.T) {
	cases := []struct {
		name    string
		builder WorksheetCommand
		wantErr error
	}{
		{"no uuid", WorksheetCommand{FieldName: "name"}, ErrMissingUUID},
		{"no field", WorksheetCommand{WorksheetUUID: "u1"}, ErrMissingFieldName},
		{"blank uuid", WorksheetCommand{WorksheetUUID: "  ", FieldName: "name"}, ErrMissingUUID},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := tc.builder.Build(Params{Value: "x"}); !errors.Is(err, tc.wantErr) {
				t.Fatalf("want %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestBundleMetadata_Build(t *testing.T) {
	builder := BundleMetadata{FieldName: "description"}

	body, err := builder.Build(Params{Value: "hello"})
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	want := map[string]any{
		"metadata": map[string]any{
			"description": "hello",
		},
	}
	if diff := cmp.Diff(want, body); diff != "" {
		t.Fatalf("body mismatch (-want +got):\n%s", diff)
	}
}

func TestBundleMetadata_MissingFieldName(t *testing.T) {
	if _, err := (BundleMetadata{}).Build(Params{Value: "x"}); !errors.Is(err, ErrMissingFieldName) {
		t.Fatalf("want ErrMissingFieldName, got %v", err)
	}
}

func TestBuilderFunc(t *testing.T) {
	builder := BuilderFunc(func(params Params) (map[string]any, error) {
		return map[string]any{"value": params.Value}, nil
	})
	body, err := builder.Build(Params{Value: 42})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if body["value"] != 42 {
		t.Fatalf("unexpected body: %v", body)
	}
}
