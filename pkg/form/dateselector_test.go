package form

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func strPtr(s string) *string { return &s }

func TestNewDateSelectorDefaultsToToday(t *testing.T) {
	before := time.Now().Format(DateLayout)
	field := NewDateSelector("start_date", "", "")
	after := time.Now().Format(DateLayout)

	got := field.Value()
	if got == nil {
		t.Fatal("expected a default value, got nil")
	}
	if *got != before && *got != after {
		t.Fatalf("expected today's date, got %q", *got)
	}
}

func TestNewDateSelectorDerivesLabelFromName(t *testing.T) {
	field := NewDateSelector("start_date", "", "2026-01-01")
	if got := field.Label(); got != "start date" {
		t.Fatalf("expected derived label %q, got %q", "start date", got)
	}

	field = NewDateSelector("start_date", "From", "2026-01-01")
	if got := field.Label(); got != "From" {
		t.Fatalf("expected explicit label to win, got %q", got)
	}
}

func TestDateSelectorSetValueStoresVerbatim(t *testing.T) {
	field := NewDateSelector("start_date", "", "2026-01-01")
	if err := field.SetValue(strPtr("2031-02-03")); err != nil {
		t.Fatalf("set value: %v", err)
	}
	if got := field.Value(); got == nil || *got != "2031-02-03" {
		t.Fatalf("expected stored value %q, got %v", "2031-02-03", got)
	}
}

func TestDateSelectorSetValueNilIsNoop(t *testing.T) {
	field := NewDateSelector("start_date", "", "2026-01-01")
	if err := field.SetValue(nil); err != nil {
		t.Fatalf("nil set value: %v", err)
	}
	if got := field.Value(); got == nil || *got != "2026-01-01" {
		t.Fatalf("expected prior value to survive, got %v", got)
	}
}

func TestDateSelectorSetValueRejectsMalformedInput(t *testing.T) {
	field := NewDateSelector("start_date", "", "2026-01-01")

	for _, input := range []string{"not-a-date", "2026/01/02", "01-02-2026", "2026-13-40", ""} {
		err := field.SetValue(strPtr(input))
		if err == nil {
			t.Fatalf("expected error for input %q", input)
		}
		var validation *ValidationError
		if !errors.As(err, &validation) {
			t.Fatalf("expected *ValidationError for %q, got %T", input, err)
		}
		if validation.Value != input || validation.Layout != DateLayout {
			t.Fatalf("expected error to carry value and layout, got %+v", validation)
		}
		if got := field.Value(); got == nil || *got != "2026-01-01" {
			t.Fatalf("expected prior value after %q, got %v", input, got)
		}
	}
}

func TestDateSelectorRenderMarkup(t *testing.T) {
	field := NewDateSelector("start_date", "", "2026-01-01")

	want := "<input class='date-selector'type='date' name='start_date' value='2026-01-01' id='datepicker'>" +
		`<script>flatpickr(".date-selector", {dateFormat: "Y-m-d"});</script>`
	if got := field.Render(); got != want {
		t.Fatalf("unexpected markup:\nwant %s\ngot  %s", want, got)
	}
}

func TestDateSelectorRenderTracksUpdates(t *testing.T) {
	field := NewDateSelector("start_date", "", "2026-01-01")
	if err := field.SetValue(strPtr("2026-06-30")); err != nil {
		t.Fatalf("set value: %v", err)
	}
	if got := field.Render(); !strings.Contains(got, "value='2026-06-30'") {
		t.Fatalf("expected rendered value to follow update, got:\n%s", got)
	}
}
