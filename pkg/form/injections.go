package form

import (
	"log/slog"

	"github.com/nomadlabs/nomadforms/pkg/fields"
)

// Injection asks for fields to be inserted immediately before or after an
// existing field. Exactly one of Before or After names the anchor.
type Injection struct {
	Fields []fields.Field
	Before string
	After  string
}

// applyInjections merges injection directives into the base field list. All
// directives sharing an anchor side merge into one contiguous block, in
// directive order, inserted adjacent to the anchor. Directives whose anchor
// does not exist in the base list are dropped. Invalid directives (no
// fields, or neither/both anchor sides) are reported through diag and
// skipped. Non-targeted fields keep their relative order.
func applyInjections(base []fields.Field, injections []Injection, diag *slog.Logger) []fields.Field {
	if len(injections) == 0 {
		return base
	}

	before := make(map[string][]fields.Field)
	after := make(map[string][]fields.Field)

	for _, injection := range injections {
		if len(injection.Fields) == 0 {
			diag.Warn("invalid form injection: missing fields")
			continue
		}

		switch {
		case injection.Before != "" && injection.After != "":
			diag.Warn("invalid form injection: both before and after set",
				slog.String("before", injection.Before),
				slog.String("after", injection.After))
		case injection.Before != "":
			before[injection.Before] = append(before[injection.Before], injection.Fields...)
		case injection.After != "":
			after[injection.After] = append(after[injection.After], injection.Fields...)
		default:
			diag.Warn("invalid form injection: missing before or after anchor")
		}
	}

	seen := make(map[string]struct{}, len(base))
	for _, field := range base {
		seen[field.Name] = struct{}{}
	}

	merged := make([]fields.Field, 0, len(base))
	appendNew := func(injected []fields.Field) {
		for _, field := range injected {
			if _, dup := seen[field.Name]; dup {
				diag.Warn("injected field name already present, skipping",
					slog.String("field", field.Name))
				continue
			}
			seen[field.Name] = struct{}{}
			merged = append(merged, field)
		}
	}

	for _, field := range base {
		appendNew(before[field.Name])
		merged = append(merged, field)
		appendNew(after[field.Name])
	}

	return merged
}
