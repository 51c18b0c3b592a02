// Package fieldset loads declarative editable-field definitions from YAML or
// JSON files so hosts can describe which resource fields are inline-editable
// without hardcoding them.
package fieldset

import "sort"

// Definition describes one inline-editable field of a resource.
type Definition struct {
	Name        string
	Label       string
	Editable    bool
	Placeholder string
}

// Resource groups the editable fields declared for one backend resource kind
// (e.g. "worksheet", "bundle").
type Resource struct {
	Name   string
	Fields []Definition
}

// Field returns the definition with the given name.
func (r Resource) Field(name string) (Definition, bool) {
	for _, def := range r.Fields {
		if def.Name == name {
			return def, true
		}
	}
	return Definition{}, false
}

// Store holds the resources parsed from a definition tree.
type Store struct {
	resources map[string]Resource
}

// Resource returns the declaration for the supplied resource kind.
func (s *Store) Resource(name string) (Resource, bool) {
	if s == nil {
		return Resource{}, false
	}
	res, ok := s.resources[name]
	return res, ok
}

// Empty reports whether the store holds any resources.
func (s *Store) Empty() bool {
	return s == nil || len(s.resources) == 0
}

// Names returns the declared resource kinds in sorted order.
func (s *Store) Names() []string {
	if s == nil {
		return nil
	}
	names := make([]string, 0, len(s.resources))
	for name := range s.resources {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
