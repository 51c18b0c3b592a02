// Package openapi derives inline-editable field descriptors from an OpenAPI
// document: every POST or PATCH operation with a flat JSON object request body
// yields one descriptor per scalar property, carrying the endpoint path the
// edit should be committed to.
package openapi

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

// Descriptor describes one editable field exposed by an API operation.
type Descriptor struct {
	OperationID string
	Method      string
	Path        string
	Field       string
	Type        string
}

var editMethods = []string{"POST", "PATCH"}

// Descriptors parses raw as an OpenAPI 3 document and extracts editable-field
// descriptors. Operations without a JSON object request body are skipped, as
// are non-scalar properties.
func Descriptors(ctx context.Context, raw []byte) ([]Descriptor, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, errors.New("openapi: document payload is empty")
	}

	loader := &openapi3.Loader{Context: ctx}
	spec, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("openapi: load document: %w", err)
	}
	if spec.Paths == nil || spec.Paths.Len() == 0 {
		return nil, errors.New("openapi: document does not contain any paths")
	}

	var out []Descriptor
	for path, item := range spec.Paths.Map() {
		if item == nil {
			continue
		}
		for _, method := range editMethods {
			operation := item.GetOperation(method)
			if operation == nil {
				continue
			}
			out = append(out, collectFields(method, path, operation)...)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Path != out[j].Path {
			return out[i].Path < out[j].Path
		}
		if out[i].Method != out[j].Method {
			return out[i].Method < out[j].Method
		}
		return out[i].Field < out[j].Field
	})
	return out, nil
}

func collectFields(method, path string, operation *openapi3.Operation) []Descriptor {
	schema := requestSchema(operation.RequestBody)
	if schema == nil {
		return nil
	}
	if !hasType(schema.Type, "object") || len(schema.Properties) == 0 {
		return nil
	}

	var out []Descriptor
	for name, ref := range schema.Properties {
		if ref == nil || ref.Value == nil {
			continue
		}
		fieldType := firstSchemaType(ref.Value.Type)
		if !isScalarType(fieldType) {
			continue
		}
		out = append(out, Descriptor{
			OperationID: operation.OperationID,
			Method:      method,
			Path:        path,
			Field:       name,
			Type:        fieldType,
		})
	}
	return out
}

func requestSchema(requestBody *openapi3.RequestBodyRef) *openapi3.Schema {
	if requestBody == nil || requestBody.Value == nil {
		return nil
	}
	mt, ok := requestBody.Value.Content["application/json"]
	if !ok || mt.Schema == nil {
		return nil
	}
	return mt.Schema.Value
}

func hasType(types *openapi3.Types, want string) bool {
	if types == nil {
		return false
	}
	for _, value := range types.Slice() {
		if value == want {
			return true
		}
	}
	return false
}

func firstSchemaType(types *openapi3.Types) string {
	if types == nil {
		return ""
	}
	values := types.Slice()
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

func isScalarType(value string) bool {
	switch strings.ToLower(value) {
	case "string", "number", "integer", "boolean":
		return true
	}
	return false
}
