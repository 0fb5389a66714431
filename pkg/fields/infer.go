package fields

import (
	"strings"

	"github.com/nomadlabs/nomadforms/pkg/validate"
)

// InferRules appends the validation rules implied by a field's type: a
// choice-set membership rule for choice-shaped types, an email rule for
// email fields and a numeric rule for number-like fields. A rule is only
// appended when the caller has not already specified an equivalent one, which
// also makes repeated calls idempotent.
func InferRules(f *Field) {
	if f.Type.IsChoice() && !validate.HasRule(f.Validate, validate.RuleChoices) {
		// Appended even when the key set is empty: a degraded option-less
		// choice field rejects every non-empty submission.
		keys := validChoiceKeys(*f)
		f.Validate = append(f.Validate, validate.RuleChoices+":"+strings.Join(keys, ","))
	}

	if _, ok := emailTypes[f.Type]; ok && !validate.HasRule(f.Validate, validate.RuleEmail) {
		f.Validate = append(f.Validate, validate.RuleEmail)
	}

	if _, ok := numericTypes[f.Type]; ok && !validate.HasRule(f.Validate, validate.RuleNumeric) {
		f.Validate = append(f.Validate, validate.RuleNumeric)
	}
}

// validChoiceKeys derives the set of values a submission may legally carry
// for a choice-shaped field. Singular boolean controls accept only their own
// configured value; option-backed types accept their option keys; everything
// else resolves against its fixed table, honoring the Format variant.
func validChoiceKeys(f Field) []string {
	if f.Type.IsSingularBoolean() {
		return []string{ValueString(f.Value)}
	}
	return ResolveOptions(f).Keys()
}
