// Package tui walks a form field-by-field as terminal prompts, collecting
// the same key-value data a browser would submit. The output plugs straight
// into form.Request, so reconciliation and validation behave identically for
// terminal and HTTP submissions.
package tui

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"slices"

	"github.com/nomadlabs/nomadforms/pkg/fields"
	"github.com/nomadlabs/nomadforms/pkg/form"
)

// Walkthrough prompts for each field of a form in turn.
type Walkthrough struct {
	driver   PromptDriver
	pageSize int
}

// Option configures a walkthrough.
type Option func(*Walkthrough)

// WithPromptDriver overrides the prompt driver, used by tests.
func WithPromptDriver(driver PromptDriver) Option {
	return func(w *Walkthrough) {
		if driver != nil {
			w.driver = driver
		}
	}
}

// WithPageSize bounds how many options a select prompt shows at once.
func WithPageSize(size int) Option {
	return func(w *Walkthrough) {
		if size > 0 {
			w.pageSize = size
		}
	}
}

// New constructs a walkthrough with the survey-backed driver.
func New(options ...Option) *Walkthrough {
	w := &Walkthrough{driver: newSurveyDriver()}
	for _, opt := range options {
		if opt != nil {
			opt(w)
		}
	}
	return w
}

// Run prompts for every field and returns the collected submission data,
// including the form id discriminator. Unchecked booleans and unselected
// choices are left absent, matching what a browser submits for them. Hidden
// and upload fields are skipped; hidden values are carried over from the
// form data directly.
func (w *Walkthrough) Run(ctx context.Context, f *form.Form) (url.Values, error) {
	if ctx == nil {
		return nil, errors.New("tui: context is required")
	}

	values := url.Values{}
	values.Set(fields.ReservedName, f.ID())
	formData := f.FormData()

	for _, field := range f.Fields() {
		switch {
		case field.Type == fields.TypeHidden:
			if v, ok := formData[field.Name]; ok && v != nil {
				values.Set(field.Name, fields.ValueString(v))
			}
		case field.Type == fields.TypeUpload:
			if err := w.driver.Info(ctx, fmt.Sprintf("skipping upload field %q", field.Name)); err != nil {
				return nil, err
			}
		case field.Type.IsSingularBoolean():
			if err := w.promptBoolean(ctx, field, values); err != nil {
				return nil, err
			}
		case multiChoice(field):
			if err := w.promptMulti(ctx, field, values); err != nil {
				return nil, err
			}
		case len(fields.ResolveOptions(field)) > 0:
			if err := w.promptSelect(ctx, field, values); err != nil {
				return nil, err
			}
		case field.Type == fields.TypePassword:
			value, err := w.driver.Password(ctx, InputConfig{Message: prompt(field), Help: field.Description})
			if err != nil {
				return nil, err
			}
			values.Set(field.Name, value)
		case field.Type == fields.TypeTextarea:
			value, err := w.driver.TextArea(ctx, InputConfig{
				Message: prompt(field),
				Default: fields.ValueString(field.EffectiveValue()),
				Help:    field.Description,
			})
			if err != nil {
				return nil, err
			}
			values.Set(field.Name, value)
		default:
			value, err := w.driver.Input(ctx, InputConfig{
				Message: prompt(field),
				Default: fields.ValueString(field.EffectiveValue()),
				Help:    field.Description,
			})
			if err != nil {
				return nil, err
			}
			values.Set(field.Name, value)
		}
	}
	return values, nil
}

func (w *Walkthrough) promptBoolean(ctx context.Context, field fields.Field, values url.Values) error {
	checked, err := w.driver.Confirm(ctx, ConfirmConfig{
		Message: prompt(field),
		Default: field.Checked,
		Help:    field.Description,
	})
	if err != nil {
		return err
	}
	if checked {
		values.Set(field.Name, fields.ValueString(field.EffectiveValue()))
	}
	return nil
}

func (w *Walkthrough) promptSelect(ctx context.Context, field fields.Field, values url.Values) error {
	options := enabledOptions(field)
	if len(options) == 0 {
		return nil
	}
	labels := make([]string, len(options))
	defaultIndex := -1
	current := fields.ValueString(field.EffectiveValue())
	for i, opt := range options {
		labels[i] = opt.Label
		if opt.Value == current {
			defaultIndex = i
		}
	}

	index, err := w.driver.Select(ctx, SelectConfig{
		Message:      prompt(field),
		Options:      labels,
		DefaultIndex: defaultIndex,
		Help:         field.Description,
		PageSize:     w.pageSize,
	})
	if err != nil {
		return err
	}
	if index >= 0 && index < len(options) {
		values.Set(field.Name, options[index].Value)
	}
	return nil
}

func (w *Walkthrough) promptMulti(ctx context.Context, field fields.Field, values url.Values) error {
	options := enabledOptions(field)
	if len(options) == 0 {
		return nil
	}
	labels := make([]string, len(options))
	var defaults []int
	checked := fields.ValueSlice(field.EffectiveValue())
	for i, opt := range options {
		labels[i] = opt.Label
		if slices.Contains(checked, opt.Value) {
			defaults = append(defaults, i)
		}
	}

	indices, err := w.driver.MultiSelect(ctx, SelectConfig{
		Message:  prompt(field),
		Options:  labels,
		Defaults: defaults,
		Help:     field.Description,
		PageSize: w.pageSize,
	})
	if err != nil {
		return err
	}
	for _, index := range indices {
		if index >= 0 && index < len(options) {
			values.Add(field.Name, options[index].Value)
		}
	}
	return nil
}

// enabledOptions drops disabled options, which a real client cannot submit.
func enabledOptions(field fields.Field) fields.Options {
	options := fields.ResolveOptions(field)
	enabled := make(fields.Options, 0, len(options))
	for _, opt := range options {
		if !slices.Contains(field.DisabledOptions, opt.Value) {
			enabled = append(enabled, opt)
		}
	}
	return enabled
}

func multiChoice(field fields.Field) bool {
	switch field.Type {
	case fields.TypeCheckboxes, fields.TypeToggles:
		return true
	case fields.TypeButtonGroup:
		return field.Multiple
	}
	return false
}

func prompt(field fields.Field) string {
	if field.Label != "" {
		return field.Label
	}
	return field.Name
}
