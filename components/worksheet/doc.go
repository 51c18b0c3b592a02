// Package worksheet configures editable-field widgets that persist edits as
// raw worksheet commands:
//
//	{"worksheet_uuid": <uuid>, "raw_command": {"k": <field>, "v": <value>, "action": "worksheet-edit"}}
//
// The component contributes no state or lifecycle of its own; it fixes the
// endpoint URL and the envelope shape and forwards everything else to the
// generic widget.
package worksheet
