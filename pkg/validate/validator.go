package validate

import "context"

// FieldInput is one entry of a validation ruleset: the submitted value, the
// rules to apply, and the label used when composing messages.
type FieldInput struct {
	Key   string
	Label string
	Value any

	// Rules is the ordered rule specifier list ("key" or "key:argument").
	Rules []string

	// ErrorMessages overrides the generated message per rule key.
	ErrorMessages map[string]string
}

// Ruleset is the transient structure a form assembles per submission. Order
// follows the form's field order so aggregated messages are deterministic.
type Ruleset []FieldInput

// Result reports the outcome of a validation pass.
type Result struct {
	// Errors maps field key to the messages produced for it. Empty when the
	// pass succeeded.
	Errors map[string][]string

	// ordered mirrors Errors in ruleset order for aggregation.
	ordered []string
}

// Valid reports whether the pass produced no errors.
func (r Result) Valid() bool {
	return len(r.Errors) == 0
}

// Messages returns every error message, aggregated in ruleset order.
func (r Result) Messages() []string {
	if len(r.ordered) == 0 {
		return nil
	}
	return append([]string(nil), r.ordered...)
}

func (r *Result) add(key, message string) {
	if r.Errors == nil {
		r.Errors = make(map[string][]string)
	}
	r.Errors[key] = append(r.Errors[key], message)
	r.ordered = append(r.ordered, message)
}

// Validator is the collaborator a form delegates field validation to.
type Validator interface {
	Validate(ctx context.Context, ruleset Ruleset) (Result, error)
}
