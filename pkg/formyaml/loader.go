// Package formyaml loads declarative filter form definitions from YAML or
// JSON documents. A document names the form's action, cgi method and fields;
// option lists left empty in the document can be filled in later from row
// data via form.SetField.
package formyaml

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-filterform/pkg/form"
)

// Document mirrors the on-disk form definition.
type Document struct {
	Action        string        `json:"action" yaml:"action"`
	CGIMethod     string        `json:"cgi_method" yaml:"cgi_method"`
	RequestMethod string        `json:"request_method" yaml:"request_method"`
	Fields        []FieldConfig `json:"fields" yaml:"fields"`
}

// FieldConfig describes one field entry. Type is "date" or "select".
type FieldConfig struct {
	Name    string   `json:"name" yaml:"name"`
	Type    string   `json:"type" yaml:"type"`
	Label   string   `json:"label,omitempty" yaml:"label,omitempty"`
	Value   string   `json:"value,omitempty" yaml:"value,omitempty"`
	Options []string `json:"options,omitempty" yaml:"options,omitempty"`
}

// Parse decodes a form definition and builds the FilterForm it describes.
// yaml.v3 accepts JSON input, so both formats share one path.
func Parse(data []byte) (*form.FilterForm, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("formyaml: parse document: %w", err)
	}
	return Build(doc)
}

// Load reads path from fsys and parses it.
func Load(fsys fs.FS, path string) (*form.FilterForm, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("formyaml: read %s: %w", path, err)
	}
	return Parse(data)
}

// Build validates the document and constructs the form. Field names must be
// unique; a select whose explicit value matches none of its options is
// rejected at build time rather than first render.
func Build(doc Document) (*form.FilterForm, error) {
	if strings.TrimSpace(doc.CGIMethod) == "" {
		return nil, errors.New("formyaml: cgi_method is required")
	}
	if len(doc.Fields) == 0 {
		return nil, errors.New("formyaml: at least one field is required")
	}

	seen := make(map[string]struct{}, len(doc.Fields))
	fields := make([]form.Field, 0, len(doc.Fields))
	for i, cfg := range doc.Fields {
		name := strings.TrimSpace(cfg.Name)
		if name == "" {
			return nil, fmt.Errorf("formyaml: field %d: name is required", i)
		}
		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("formyaml: duplicate field name %q", name)
		}
		seen[name] = struct{}{}

		switch strings.ToLower(strings.TrimSpace(cfg.Type)) {
		case "date":
			fields = append(fields, form.NewDateSelector(name, cfg.Label, cfg.Value))
		case "select":
			var value *string
			if cfg.Value != "" {
				v := cfg.Value
				value = &v
			}
			label := cfg.Label
			if label == "" {
				label = name
			}
			sel, err := form.NewSelect(name, label, cfg.Options, value)
			if err != nil {
				return nil, fmt.Errorf("formyaml: field %q: %w", name, err)
			}
			fields = append(fields, sel)
		default:
			return nil, fmt.Errorf("formyaml: field %q: unsupported type %q", name, cfg.Type)
		}
	}

	opts := make([]form.FormOption, 0, 2)
	if doc.Action != "" {
		opts = append(opts, form.WithAction(doc.Action))
	}
	if doc.RequestMethod != "" {
		opts = append(opts, form.WithRequestMethod(doc.RequestMethod))
	}
	return form.New(fields, doc.CGIMethod, opts...), nil
}
