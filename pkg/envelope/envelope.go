package envelope

import "strings"

// Params carries the user-committed value handed to a Builder when an edit is
// submitted.
type Params struct {
	Value any
}

// Builder shapes the JSON request body expected by a specific backend
// endpoint. Implementations are pure configuration; they hold no state beyond
// the resource coordinates they were constructed with.
type Builder interface {
	Build(params Params) (map[string]any, error)
}

// BuilderFunc adapts a plain function to the Builder interface.
type BuilderFunc func(params Params) (map[string]any, error)

// Build invokes the wrapped function.
func (f BuilderFunc) Build(params Params) (map[string]any, error) {
	return f(params)
}

// WorksheetEditAction is the command action used for single-field worksheet
// edits.
const WorksheetEditAction = "worksheet-edit"

// WorksheetCommand shapes an edit as a raw worksheet command envelope:
//
//	{"worksheet_uuid": <uuid>, "raw_command": {"k": <field>, "v": <value>, "action": "worksheet-edit"}}
type WorksheetCommand struct {
	WorksheetUUID string
	FieldName     string
}

// Build implements Builder.
func (b WorksheetCommand) Build(params Params) (map[string]any, error) {
	if strings.TrimSpace(b.WorksheetUUID) == "" {
		return nil, ErrMissingUUID
	}
	if strings.TrimSpace(b.FieldName) == "" {
		return nil, ErrMissingFieldName
	}
	return map[string]any{
		"worksheet_uuid": b.WorksheetUUID,
		"raw_command": map[string]any{
			"k":      b.FieldName,
			"v":      params.Value,
			"action": WorksheetEditAction,
		},
	}, nil
}

// BundleMetadata shapes an edit as a bundle metadata patch:
//
//	{"metadata": {<field>: <value>}}
type BundleMetadata struct {
	FieldName string
}

// Build implements Builder.
func (b BundleMetadata) Build(params Params) (map[string]any, error) {
	if strings.TrimSpace(b.FieldName) == "" {
		return nil, ErrMissingFieldName
	}
	return map[string]any{
		"metadata": map[string]any{
			b.FieldName: params.Value,
		},
	}, nil
}
