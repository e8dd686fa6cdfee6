package formyaml

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-filterform/pkg/form"
)

const sampleDocument = `
action: /reports/
cgi_method: filter
request_method: POST
fields:
  - name: category
    type: select
    label: Category
    options: [a, b]
    value: b
  - name: start_date
    type: date
    value: "2026-01-01"
`

func TestParseBuildsForm(t *testing.T) {
	f, err := Parse([]byte(sampleDocument))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if f.Action() != "/reports/" || f.RequestMethod() != "POST" || f.CGIMethod() != "filter" {
		t.Fatalf("unexpected form metadata: action=%q method=%q cgi=%q",
			f.Action(), f.RequestMethod(), f.CGIMethod())
	}

	fields := f.Fields()
	if len(fields) != 2 {
		t.Fatalf("expected 2 fields, got %d", len(fields))
	}
	if fields[0].Name() != "category" || fields[1].Name() != "start_date" {
		t.Fatalf("expected document field order, got %q then %q", fields[0].Name(), fields[1].Name())
	}

	if got, _ := f.GetFieldValue("category"); got == nil || *got != "b" {
		t.Fatalf("expected preselected value %q, got %v", "b", got)
	}
	if got, _ := f.GetFieldValue("start_date"); got == nil || *got != "2026-01-01" {
		t.Fatalf("expected document date, got %v", got)
	}
}

func TestParseAcceptsJSON(t *testing.T) {
	doc := `{"cgi_method":"filter","fields":[{"name":"category","type":"select","options":["a"]}]}`

	f, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("parse json: %v", err)
	}
	if got, _ := f.GetFieldValue("category"); got == nil || *got != form.DefaultValue {
		t.Fatalf("expected sentinel selection, got %v", got)
	}
}

func TestParseDerivesLabels(t *testing.T) {
	doc := `
cgi_method: filter
fields:
  - name: start_date
    type: date
    value: "2026-01-01"
  - name: category
    type: select
`
	f, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	date, _ := f.GetField("start_date")
	if date.Label() != "start date" {
		t.Fatalf("expected derived date label, got %q", date.Label())
	}
	sel, _ := f.GetField("category")
	if sel.Label() != "category" {
		t.Fatalf("expected select label to fall back to name, got %q", sel.Label())
	}
}

func TestBuildRejectsBadDocuments(t *testing.T) {
	cases := []struct {
		name    string
		doc     string
		wantErr string
	}{
		{
			name:    "missing cgi_method",
			doc:     "fields:\n  - {name: a, type: date}",
			wantErr: "cgi_method is required",
		},
		{
			name:    "no fields",
			doc:     "cgi_method: filter",
			wantErr: "at least one field",
		},
		{
			name:    "unnamed field",
			doc:     "cgi_method: filter\nfields:\n  - {type: date}",
			wantErr: "name is required",
		},
		{
			name:    "duplicate names",
			doc:     "cgi_method: filter\nfields:\n  - {name: a, type: date}\n  - {name: a, type: date}",
			wantErr: "duplicate field name",
		},
		{
			name:    "unsupported type",
			doc:     "cgi_method: filter\nfields:\n  - {name: a, type: checkbox}",
			wantErr: "unsupported type",
		},
		{
			name:    "select value not among options",
			doc:     "cgi_method: filter\nfields:\n  - {name: a, type: select, options: [x], value: z}",
			wantErr: "failed to select",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.doc))
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestLoadReadsFromFS(t *testing.T) {
	fsys := fstest.MapFS{
		"forms/dashboard.yaml": &fstest.MapFile{Data: []byte(sampleDocument)},
	}

	f, err := Load(fsys, "forms/dashboard.yaml")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if f.CGIMethod() != "filter" {
		t.Fatalf("expected loaded form, got cgi=%q", f.CGIMethod())
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(fstest.MapFS{}, "forms/missing.yaml")
	if err == nil || !strings.Contains(err.Error(), "read forms/missing.yaml") {
		t.Fatalf("expected read error, got %v", err)
	}
}
