package validate

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	playground "github.com/go-playground/validator/v10"
)

// Playground is the default Validator, built on go-playground/validator for
// the format rules and direct checks for the membership ones. The zero value
// is not usable; construct with NewPlayground.
type Playground struct {
	engine *playground.Validate
}

// NewPlayground constructs the default validator.
func NewPlayground() *Playground {
	return &Playground{
		engine: playground.New(playground.WithRequiredStructEnabled()),
	}
}

// Validate applies each field's rules to its submitted value. Fields are
// checked in ruleset order; every failing rule contributes one message.
// Scalar rules apply to each element of a multi-value submission. Unknown
// rule keys are skipped.
func (p *Playground) Validate(ctx context.Context, ruleset Ruleset) (Result, error) {
	var result Result

	for _, field := range ruleset {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}

		for _, spec := range field.Rules {
			key, argument := ParseRule(spec)

			ok, err := p.check(key, argument, field.Value)
			if err != nil {
				return Result{}, fmt.Errorf("validate: rule %q for field %q: %w", key, field.Key, err)
			}
			if !ok {
				result.add(field.Key, fieldMessage(field, key, argument))
			}
		}
	}

	return result, nil
}

func (p *Playground) check(key, argument string, value any) (bool, error) {
	switch key {
	case RuleRequired:
		return !emptyValue(value), nil
	case RuleEmail:
		return p.eachScalar(value, "email"), nil
	case RuleNumeric:
		return p.eachScalar(value, "numeric"), nil
	case RuleChoices:
		return inChoices(value, argument), nil
	case RuleMin:
		return compareNumeric(value, argument, false), nil
	case RuleMax:
		return compareNumeric(value, argument, true), nil
	case RuleMinLength:
		return p.eachScalar(value, "min="+argument), nil
	case RuleMaxLength:
		return p.eachScalar(value, "max="+argument), nil
	case RuleRegex:
		pattern, err := regexp.Compile(argument)
		if err != nil {
			return false, err
		}
		return matchesPattern(value, pattern), nil
	default:
		return true, nil
	}
}

// eachScalar runs a go-playground tag against every scalar element of the
// value. Nil passes; rules only constrain values that were actually
// submitted (required handles absence).
func (p *Playground) eachScalar(value any, tag string) bool {
	for _, scalar := range scalars(value) {
		if err := p.engine.Var(scalar, tag); err != nil {
			return false
		}
	}
	return true
}

func inChoices(value any, argument string) bool {
	valid := strings.Split(argument, ",")
	set := make(map[string]struct{}, len(valid))
	for _, choice := range valid {
		set[choice] = struct{}{}
	}
	for _, scalar := range scalars(value) {
		if _, ok := set[scalar]; !ok {
			return false
		}
	}
	return true
}

func compareNumeric(value any, argument string, upper bool) bool {
	bound, err := strconv.ParseFloat(argument, 64)
	if err != nil {
		return false
	}
	for _, scalar := range scalars(value) {
		parsed, err := strconv.ParseFloat(scalar, 64)
		if err != nil {
			return false
		}
		if upper && parsed > bound {
			return false
		}
		if !upper && parsed < bound {
			return false
		}
	}
	return true
}

func matchesPattern(value any, pattern *regexp.Regexp) bool {
	for _, scalar := range scalars(value) {
		if !pattern.MatchString(scalar) {
			return false
		}
	}
	return true
}

func scalars(value any) []string {
	switch v := value.(type) {
	case nil:
		return nil
	case string:
		return []string{v}
	case []string:
		return v
	default:
		return []string{fmt.Sprint(v)}
	}
}

func emptyValue(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case []string:
		return len(v) == 0
	default:
		return false
	}
}

func fieldMessage(field FieldInput, key, argument string) string {
	if message, ok := field.ErrorMessages[key]; ok {
		return message
	}

	label := field.Label
	if label == "" {
		label = field.Key
	}

	switch key {
	case RuleRequired:
		return fmt.Sprintf("The %s field is required.", label)
	case RuleEmail:
		return fmt.Sprintf("The %s field must be a valid email address.", label)
	case RuleNumeric:
		return fmt.Sprintf("The %s field must be numeric.", label)
	case RuleChoices:
		return fmt.Sprintf("The %s field must be one of the allowed choices.", label)
	case RuleMin:
		return fmt.Sprintf("The %s field must be at least %s.", label, argument)
	case RuleMax:
		return fmt.Sprintf("The %s field must be at most %s.", label, argument)
	case RuleMinLength:
		return fmt.Sprintf("The %s field must be at least %s characters.", label, argument)
	case RuleMaxLength:
		return fmt.Sprintf("The %s field must be at most %s characters.", label, argument)
	case RuleRegex:
		return fmt.Sprintf("The %s field is not in the expected format.", label)
	default:
		return fmt.Sprintf("The %s field is invalid.", label)
	}
}
