package fields

import (
	"fmt"
	"log/slog"
)

// TruthySentinel is the default value given to singular boolean controls so
// they submit a canonical "1" when checked.
const TruthySentinel = "1"

// Normalize fills per-type defaults on a descriptor and rejects structurally
// invalid ones. Non-fatal problems (a hidden field without a value, a
// choice-shaped field without options) are reported through diag and the
// field proceeds degraded. Fatal problems return a *ConfigurationError.
//
// After a successful pass the descriptor's value is well defined for every
// type: singular boolean controls default to TruthySentinel, everything else
// keeps the caller's value, nil meaning "unset".
func Normalize(f *Field, diag *slog.Logger) error {
	if diag == nil {
		diag = slog.Default()
	}

	if f.Name == ReservedName {
		return &ConfigurationError{
			Subject: f.Name,
			Reason:  fmt.Sprintf("the field name %q is for internal use only", ReservedName),
		}
	}

	if f.Type == TypeInput {
		return &ConfigurationError{
			Subject: f.Name,
			Reason:  "the input field type is an implementation base and cannot be used directly",
		}
	}

	switch f.Type {
	case TypeCheckbox, TypeRadio, TypeToggle:
		if f.Value == nil {
			// Singular boolean controls are typically used as flags.
			f.Value = TruthySentinel
		}
	case TypeHidden:
		if f.Value == nil {
			diag.Warn("hidden field has no value",
				slog.String("field", f.Name))
		}
	case TypeButtonGroup, TypeCheckboxes, TypeRadios, TypeSelect, TypeToggles:
		if len(f.Options) == 0 {
			diag.Warn("missing options for choice field",
				slog.String("field", f.Name),
				slog.String("type", string(f.Type)))
		}
	}

	return nil
}
