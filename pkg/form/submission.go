package form

import (
	"slices"

	"github.com/nomadlabs/nomadforms/pkg/fields"
)

// submissionEntry is the per-field UI state derived from one submission. It
// lives alongside the normalized field list rather than mutating it, and is
// merged onto the field only at render time.
type submissionEntry struct {
	hasValue bool
	value    any // string or []string
	checked  bool
}

type submissionView map[string]submissionEntry

// reconcile maps raw submitted data onto the field set, producing the flat
// form-data mapping and the per-field submission view. The form id
// discriminator is always carried over first; callers treat a mismatch as
// "not this form" rather than an error.
//
// HTML form semantics drive the shape-specific branches below: unchecked
// boxes, radios and disabled controls submit nothing at all, so an absent
// key means "explicitly unchecked" for boolean shapes and disabled-but-
// checked options must be re-asserted from server-held configuration.
func reconcile(list []fields.Field, req Request) (map[string]any, submissionView) {
	formData := make(map[string]any, len(list)+1)
	view := make(submissionView, len(list))

	if id, ok := req.get(fields.ReservedName); ok {
		formData[fields.ReservedName] = id
	} else {
		formData[fields.ReservedName] = nil
	}

	for i := range list {
		f := &list[i]
		switch {
		case f.Type == fields.TypeCheckboxes, f.Type == fields.TypeToggles,
			f.Type == fields.TypeButtonGroup && f.Multiple:
			values, _ := req.getAll(f.Name)
			if values == nil {
				values = []string{}
			}
			values = assertDisabledChecked(values, f)
			formData[f.Name] = values
			view[f.Name] = submissionEntry{hasValue: true, value: values}

		case f.Type.IsSingularBoolean():
			if req.has(f.Name) {
				value, _ := req.get(f.Name)
				formData[f.Name] = value
				view[f.Name] = submissionEntry{hasValue: true, value: value, checked: true}
			} else {
				view[f.Name] = submissionEntry{}
			}

		case f.Type == fields.TypeRadios, f.Type == fields.TypeButtonGroup:
			value, ok := req.get(f.Name)
			if !ok {
				if disabled := disabledConfiguredValue(f); disabled != "" {
					formData[f.Name] = disabled
					view[f.Name] = submissionEntry{hasValue: true, value: disabled}
					continue
				}
				formData[f.Name] = nil
				view[f.Name] = submissionEntry{}
				continue
			}
			formData[f.Name] = value
			view[f.Name] = submissionEntry{hasValue: true, value: value}

		default:
			if value, ok := req.get(f.Name); ok {
				formData[f.Name] = value
				view[f.Name] = submissionEntry{hasValue: true, value: value}
			} else {
				formData[f.Name] = nil
				view[f.Name] = submissionEntry{}
			}
		}
	}
	return formData, view
}

// assertDisabledChecked forces every disabled-but-checked option back into
// the submitted set. The client cannot submit a value for a disabled
// control, so its checked state only exists server-side.
func assertDisabledChecked(values []string, f *fields.Field) []string {
	for _, opt := range f.DisabledOptions {
		if slices.Contains(f.CheckedOptions, opt) && !slices.Contains(values, opt) {
			values = append(values, opt)
		}
	}
	return values
}

// disabledConfiguredValue reports the field's configured value when that
// value names a disabled option, which a single-select control re-asserts
// when nothing was submitted for it. Only the value counts here, never the
// Default fallback.
func disabledConfiguredValue(f *fields.Field) string {
	original := fields.ValueString(f.Value)
	if original == "" {
		return ""
	}
	if slices.Contains(f.DisabledOptions, original) {
		return original
	}
	return ""
}

// initialFormData derives the pre-submission form data: every field
// contributes its configured value, plus the id discriminator.
func initialFormData(id string, list []fields.Field) map[string]any {
	formData := make(map[string]any, len(list)+1)
	formData[fields.ReservedName] = id
	for i := range list {
		formData[list[i].Name] = list[i].Value
	}
	return formData
}

// mergeSubmission produces the field as it should render after a
// submission: boolean shapes keep their configured value and take the
// checked flag, everything else takes the submitted value so the user does
// not lose input on a failed validation pass.
func mergeSubmission(f fields.Field, view submissionView) fields.Field {
	entry, ok := view[f.Name]
	if !ok {
		return f
	}
	merged := f
	if f.Type.IsSingularBoolean() {
		merged.Checked = entry.checked
		return merged
	}
	if entry.hasValue {
		merged.Value = entry.value
	} else {
		merged.Value = nil
	}
	return merged
}
