package fieldset

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadFS walks the provided filesystem and parses JSON/YAML field-set files.
// When fsys is nil or no definition files are present, the returned store is
// empty.
func LoadFS(fsys fs.FS) (*Store, error) {
	store := &Store{resources: make(map[string]Resource)}
	if fsys == nil {
		return store, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() {
			return nil
		}
		if !isDefinitionFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("fieldset: read %s: %w", path, err)
		}

		doc, err := parseDocument(data, path)
		if err != nil {
			return err
		}

		for rawName, rawResource := range doc.Resources {
			name := strings.TrimSpace(rawName)
			if name == "" {
				return fmt.Errorf("fieldset: file %s declares an empty resource name", path)
			}
			if _, exists := store.resources[name]; exists {
				return fmt.Errorf("fieldset: duplicate resource %q (file %s)", name, path)
			}

			resource, err := normaliseResource(name, rawResource, path)
			if err != nil {
				return err
			}
			store.resources[name] = resource
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return store, nil
}

type documentFile struct {
	Resources map[string]resourceFile `json:"resources" yaml:"resources"`
}

type resourceFile struct {
	Fields []definitionFile `json:"fields" yaml:"fields"`
}

type definitionFile struct {
	Name        string `json:"name" yaml:"name"`
	Label       string `json:"label" yaml:"label"`
	Editable    *bool  `json:"editable" yaml:"editable"`
	Placeholder string `json:"placeholder" yaml:"placeholder"`
}

func parseDocument(data []byte, path string) (documentFile, error) {
	var doc documentFile
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := json.Unmarshal(data, &doc); err != nil {
			return documentFile{}, fmt.Errorf("fieldset: parse %s: %w", path, err)
		}
	default:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return documentFile{}, fmt.Errorf("fieldset: parse %s: %w", path, err)
		}
	}
	return doc, nil
}

func normaliseResource(name string, raw resourceFile, path string) (Resource, error) {
	resource := Resource{Name: name}
	seen := make(map[string]struct{}, len(raw.Fields))
	for _, rawField := range raw.Fields {
		fieldName := strings.TrimSpace(rawField.Name)
		if fieldName == "" {
			return Resource{}, fmt.Errorf("fieldset: resource %q declares a field without a name (file %s)", name, path)
		}
		if _, exists := seen[fieldName]; exists {
			return Resource{}, fmt.Errorf("fieldset: resource %q declares field %q twice (file %s)", name, fieldName, path)
		}
		seen[fieldName] = struct{}{}

		// Fields default to editable; declarations exist to flip them off.
		editable := true
		if rawField.Editable != nil {
			editable = *rawField.Editable
		}

		resource.Fields = append(resource.Fields, Definition{
			Name:        fieldName,
			Label:       strings.TrimSpace(rawField.Label),
			Editable:    editable,
			Placeholder: rawField.Placeholder,
		})
	}
	return resource, nil
}

func isDefinitionFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
		return true
	}
	return false
}
