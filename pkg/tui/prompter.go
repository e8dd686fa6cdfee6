// Package tui collects filter form values through terminal prompts, for
// driving the same FilterForm from a CLI that the dashboard drives from
// request parameters.
package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/goliatone/go-filterform/pkg/form"
)

// Prompter walks a FilterForm's fields and prompts for each one. The result
// of Collect feeds FilterForm.Update unchanged.
type Prompter struct {
	driver PromptDriver
}

// Option configures a Prompter.
type Option func(*Prompter)

// WithDriver swaps the prompt driver, typically for tests.
func WithDriver(driver PromptDriver) Option {
	return func(p *Prompter) {
		if driver != nil {
			p.driver = driver
		}
	}
}

// NewPrompter builds a prompter backed by the survey driver unless
// overridden.
func NewPrompter(opts ...Option) *Prompter {
	p := &Prompter{driver: NewSurveyDriver()}
	for _, opt := range opts {
		if opt != nil {
			opt(p)
		}
	}
	return p
}

// Collect prompts for every field in form order. Date fields get a validated
// free-text prompt, selects a single-choice prompt over their option values.
// Choosing the sentinel (or leaving a date blank) maps to a nil entry, the
// same "no filter" shape rows.NormalizeParams produces.
func (p *Prompter) Collect(ctx context.Context, f *form.FilterForm) (map[string]*string, error) {
	if f == nil {
		return nil, fmt.Errorf("tui: filter form is required")
	}

	out := make(map[string]*string)
	for _, field := range f.Fields() {
		switch field := field.(type) {
		case *form.DateSelector:
			value, err := p.collectDate(ctx, field)
			if err != nil {
				return nil, err
			}
			out[field.Name()] = value
		case *form.Select:
			value, err := p.collectSelect(ctx, field)
			if err != nil {
				return nil, err
			}
			out[field.Name()] = value
		default:
			return nil, fmt.Errorf("tui: unsupported field type for %q", field.Name())
		}
	}
	return out, nil
}

func (p *Prompter) collectDate(ctx context.Context, field *form.DateSelector) (*string, error) {
	current := ""
	if v := field.Value(); v != nil {
		current = *v
	}
	value, err := p.driver.Input(ctx, InputConfig{
		Message: field.Label(),
		Default: current,
		Help:    "format " + form.DateLayout,
		Validator: func(s string) error {
			if s == "" {
				return nil
			}
			if _, err := time.Parse(form.DateLayout, s); err != nil {
				return fmt.Errorf("expected a %s date", form.DateLayout)
			}
			return nil
		},
	})
	if err != nil {
		return nil, err
	}
	if value == "" {
		return nil, nil
	}
	return &value, nil
}

func (p *Prompter) collectSelect(ctx context.Context, field *form.Select) (*string, error) {
	options := field.Options()
	values := make([]string, 0, len(options))
	defaultIndex := 0
	for i, option := range options {
		values = append(values, option.Value)
		if option.Selected {
			defaultIndex = i
		}
	}

	idx, err := p.driver.Select(ctx, SelectConfig{
		Message:      field.Label(),
		Options:      values,
		DefaultIndex: defaultIndex,
	})
	if err != nil {
		return nil, err
	}
	if idx < 0 || idx >= len(values) || values[idx] == form.DefaultValue {
		return nil, nil
	}
	v := values[idx]
	return &v, nil
}
