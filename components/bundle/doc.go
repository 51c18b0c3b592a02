// Package bundle configures editable-field widgets that persist edits as
// bundle metadata patches:
//
//	POST /rest/api/bundles/<uuid>/  {"metadata": {<field>: <value>}}
//
// Like its worksheet counterpart, the component is pure configuration: it
// derives the endpoint URL from the bundle uuid and forwards everything else
// to the generic widget.
package bundle
