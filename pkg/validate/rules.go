package validate

import "strings"

// Rule keys understood by the default validator. A specifier is "key" or
// "key:argument"; the split happens on the first ':' only so a choices or
// regex argument may itself contain colons.
const (
	RuleRequired  = "required"
	RuleEmail     = "email"
	RuleNumeric   = "numeric"
	RuleChoices   = "choices"
	RuleMin       = "min"
	RuleMax       = "max"
	RuleMinLength = "minlength"
	RuleMaxLength = "maxlength"
	RuleRegex     = "regex"
)

// ParseRule splits a rule specifier into its key and argument. Specifiers
// without an argument return an empty argument.
func ParseRule(spec string) (key, argument string) {
	if idx := strings.Index(spec, ":"); idx > 0 {
		return spec[:idx], spec[idx+1:]
	}
	return spec, ""
}

// HasRule reports whether the specifier list contains the given rule key,
// ignoring arguments.
func HasRule(rules []string, key string) bool {
	for _, spec := range rules {
		if ruleKey, _ := ParseRule(spec); ruleKey == key {
			return true
		}
	}
	return false
}

// RuleArgument returns the argument of the first specifier with the given
// key, and whether the key was present at all.
func RuleArgument(rules []string, key string) (string, bool) {
	for _, spec := range rules {
		if ruleKey, argument := ParseRule(spec); ruleKey == key {
			return argument, true
		}
	}
	return "", false
}
