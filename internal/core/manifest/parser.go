package manifest

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Document is a parsed manifest. Only the fields needed for cross-checking
// deployment inputs are interpreted; the rest is kept as raw values.
type Document struct {
	raw map[string]interface{}
}

// Parse parses manifest YAML into a Document.
// An empty document parses successfully and has no metadata.
// Text that is not valid YAML, or whose top level is not a mapping,
// fails with ErrInvalidYAML.
func Parse(content string) (*Document, error) {
	var v interface{}
	if err := yaml.Unmarshal([]byte(content), &v); err != nil {
		return nil, NewParseError("", fmt.Sprintf("invalid YAML syntax: %v", err), ErrInvalidYAML)
	}
	if v == nil {
		return &Document{}, nil
	}
	dict, ok := asMapping(v)
	if !ok {
		return nil, NewParseError("", fmt.Sprintf("top level must be a mapping, got %T", v), ErrInvalidYAML)
	}
	return &Document{raw: dict}, nil
}

// Metadata returns the metadata section, or false when it is absent, null,
// or not a mapping.
func (d *Document) Metadata() (map[string]interface{}, bool) {
	if d == nil || d.raw == nil {
		return nil, false
	}
	return asMapping(d.raw["metadata"])
}

// asMapping returns v as a string keyed mapping. yaml.v3 decodes a mapping
// with any non-string key as map[interface{}]interface{}; its keys are
// converted with fmt.Sprint.
func asMapping(v interface{}) (map[string]interface{}, bool) {
	switch m := v.(type) {
	case map[string]interface{}:
		return m, m != nil
	case map[interface{}]interface{}:
		if m == nil {
			return nil, false
		}
		out := make(map[string]interface{}, len(m))
		for k, val := range m {
			out[fmt.Sprint(k)] = val
		}
		return out, true
	default:
		return nil, false
	}
}

// Name returns metadata.name.
//
// ErrMissingMetadata is returned when metadata is absent or null.
// ErrMissingName is returned when name is absent, null, empty, or not a string.
func (d *Document) Name() (string, error) {
	md, found := d.Metadata()
	if !found {
		return "", ErrMissingMetadata
	}
	v, found := md["name"]
	if !found || v == nil {
		return "", NewParseError("metadata.name", "name is required", ErrMissingName)
	}
	s, ok := v.(string)
	if !ok {
		return "", NewParseError("metadata.name", fmt.Sprintf("name must be a string, got %T", v), ErrMissingName)
	}
	if s == "" {
		return "", NewParseError("metadata.name", "name is empty", ErrMissingName)
	}
	return s, nil
}
