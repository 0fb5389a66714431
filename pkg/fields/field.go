package fields

import (
	"fmt"
	"strings"
)

// Choice is one selectable option. Values are always strings: option keys and
// submitted values compare string-equal throughout the engine, so a
// numeric-looking key behaves as its decimal string form.
type Choice struct {
	Value string
	Label string
}

// Options is an ordered option list. Order is render order.
type Options []Choice

// Keys returns the option values in order.
func (o Options) Keys() []string {
	if len(o) == 0 {
		return nil
	}
	keys := make([]string, len(o))
	for i, choice := range o {
		keys[i] = choice.Value
	}
	return keys
}

// Contains reports whether value is one of the option keys.
func (o Options) Contains(value string) bool {
	for _, choice := range o {
		if choice.Value == value {
			return true
		}
	}
	return false
}

// Opt builds a Choice.
func Opt(value, label string) Choice {
	return Choice{Value: value, Label: label}
}

// Field describes one form field. A descriptor is normalized once at form
// construction and treated as immutable afterwards; per-request submission
// state lives in a separate view owned by the form.
type Field struct {
	// Name is the unique key within a form. ReservedName is rejected.
	Name string

	// Type selects the field variant. Must be an addressable Type.
	Type Type

	Label       string
	Description string

	// Text is the inline label next to a checkbox, radio or toggle control.
	Text string

	// Value is the initial/default value. A nil Value is itself valid and
	// means "unset". Holds a string, a []string for multi-value shapes, or
	// nil.
	Value any

	// Default is used when Value is nil at render time.
	Default any

	// Options backs the choice-shaped types that take caller-supplied
	// options. Table-backed types (country, month, ...) ignore it.
	Options Options

	// Multiple switches a button-group from radio to checkbox semantics.
	Multiple bool

	// DisabledOptions lists option values excluded from user change. A
	// disabled control never appears in submitted data, so any
	// disabled-but-checked state is reasserted server-side during
	// reconciliation.
	DisabledOptions []string

	// CheckedOptions lists option values considered checked even when
	// disabled.
	CheckedOptions []string

	// Checked marks a singular boolean control as initially checked.
	Checked bool

	// Validate is the ordered rule specifier list. A specifier is "key" or
	// "key:argument"; the argument may itself contain ':'.
	Validate []string

	// ErrorMessages overrides validator message text per rule key.
	ErrorMessages map[string]string

	// Format selects a type-specific variant: "full"/"short" for country,
	// state, month and weekday, "number" for month, "lower" for weekday,
	// "12"/"24" for hour.
	Format string

	// Separator renders a divider "before" or "after" the field.
	Separator string

	Inline      bool
	HideLabel   bool
	Placeholder string

	// Before and After hold markup emitted inside the field container around
	// the control. Sanitized at form construction.
	Before string
	After  string

	// Attrs carries additional HTML attributes (autofocus, disabled,
	// readonly, size, rows, min, max, ...). Only attributes allowed for the
	// field's type are rendered. The year type reads its range from
	// Attrs["min"] and Attrs["max"].
	Attrs map[string]string
}

// ValueString renders a scalar field value for comparison or markup. Nil
// yields the empty string; slices are not flattened.
func ValueString(v any) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return value
	case []string:
		return strings.Join(value, ",")
	default:
		return fmt.Sprint(value)
	}
}

// ValueSlice coerces a field value to a string slice. A scalar becomes a
// single-element slice, nil becomes nil.
func ValueSlice(v any) []string {
	switch value := v.(type) {
	case nil:
		return nil
	case []string:
		return value
	case string:
		return []string{value}
	default:
		return []string{fmt.Sprint(value)}
	}
}

// IsEmptyValue reports whether v counts as "no value" for the
// validate-if-non-empty policy: nil, the empty string, or an empty slice.
// The string "0" is a value.
func IsEmptyValue(v any) bool {
	switch value := v.(type) {
	case nil:
		return true
	case string:
		return value == ""
	case []string:
		return len(value) == 0
	default:
		return false
	}
}

// EffectiveValue resolves the render value: Value when set, else Default,
// else nil.
func (f Field) EffectiveValue() any {
	if f.Value != nil {
		return f.Value
	}
	if f.Default != nil {
		return f.Default
	}
	return nil
}

// Clone returns a deep copy so normalized descriptors can be handed out
// without aliasing the form's canonical list.
func (f Field) Clone() Field {
	out := f
	if f.Options != nil {
		out.Options = append(Options(nil), f.Options...)
	}
	if f.DisabledOptions != nil {
		out.DisabledOptions = append([]string(nil), f.DisabledOptions...)
	}
	if f.CheckedOptions != nil {
		out.CheckedOptions = append([]string(nil), f.CheckedOptions...)
	}
	if f.Validate != nil {
		out.Validate = append([]string(nil), f.Validate...)
	}
	if f.ErrorMessages != nil {
		out.ErrorMessages = make(map[string]string, len(f.ErrorMessages))
		for k, v := range f.ErrorMessages {
			out.ErrorMessages[k] = v
		}
	}
	if f.Attrs != nil {
		out.Attrs = make(map[string]string, len(f.Attrs))
		for k, v := range f.Attrs {
			out.Attrs[k] = v
		}
	}
	if values, ok := f.Value.([]string); ok {
		out.Value = append([]string(nil), values...)
	}
	return out
}

// ConfigurationError is the fatal construction-time failure: a reserved or
// abstract descriptor, an empty field list, and similar misconfiguration.
// Callers must not render or process a form whose construction returned one.
type ConfigurationError struct {
	Subject string
	Reason  string
}

func (e *ConfigurationError) Error() string {
	if e.Subject == "" {
		return fmt.Sprintf("fields: %s", e.Reason)
	}
	return fmt.Sprintf("fields: %s: %s", e.Subject, e.Reason)
}
