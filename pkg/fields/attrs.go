package fields

import (
	"fmt"
	"html"
	"sort"
	"strings"

	"github.com/nomadlabs/nomadforms/pkg/validate"
)

// Attributes carries HTML attributes for a tag. Values may be strings,
// bools (true renders as a boolean attribute, false drops it) or a []string
// class list.
type Attributes map[string]any

// Class appends a class name, creating the class list when needed.
func (a Attributes) Class(names ...string) {
	existing, _ := a["class"].([]string)
	a["class"] = append(existing, names...)
}

// HasClass reports whether the class list contains name.
func (a Attributes) HasClass(name string) bool {
	existing, _ := a["class"].([]string)
	for _, class := range existing {
		if class == name {
			return true
		}
	}
	return false
}

// FormatAttributes renders an attribute map as a leading-space separated
// string. Keys are emitted in sorted order for deterministic markup; empty
// and false values are dropped.
func FormatAttributes(attrs Attributes) string {
	if len(attrs) == 0 {
		return ""
	}

	keys := make([]string, 0, len(attrs))
	for key := range attrs {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, key := range keys {
		switch value := attrs[key].(type) {
		case nil:
		case bool:
			if value {
				fmt.Fprintf(&b, ` %s="%s"`, key, key)
			}
		case []string:
			if len(value) > 0 {
				fmt.Fprintf(&b, ` %s="%s"`, key, html.EscapeString(strings.Join(value, " ")))
			}
		case string:
			if value != "" {
				fmt.Fprintf(&b, ` %s="%s"`, key, html.EscapeString(value))
			}
		default:
			fmt.Fprintf(&b, ` %s="%s"`, key, html.EscapeString(fmt.Sprint(value)))
		}
	}
	return b.String()
}

// mapAttributes assembles the rendered attribute set for a control: the
// type's allowed attributes sourced from Attrs, plus constraint attributes
// lifted from the validate rules when present. The id and name attributes are
// emitted by the control renderers themselves.
func mapAttributes(f Field, allowed []string) Attributes {
	attrs := make(Attributes, len(allowed)+2)

	for _, name := range append(append([]string(nil), allowed...), "style") {
		switch name {
		case "required":
			if validate.HasRule(f.Validate, validate.RuleRequired) {
				attrs[name] = true
			} else if raw, ok := f.Attrs[name]; ok {
				attrs[name] = raw
			}
		case "min", "max":
			if argument, ok := validate.RuleArgument(f.Validate, name); ok {
				attrs[name] = argument
			} else if raw, ok := f.Attrs[name]; ok {
				attrs[name] = raw
			}
		case "minlength":
			attrs[name] = ruleOrAttr(f, validate.RuleMinLength, name)
		case "maxlength":
			attrs[name] = ruleOrAttr(f, validate.RuleMaxLength, name)
		case "checked":
			if f.Checked {
				attrs[name] = true
			}
		case "placeholder":
			if f.Placeholder != "" {
				attrs[name] = f.Placeholder
			} else if raw, ok := f.Attrs[name]; ok {
				attrs[name] = raw
			}
		default:
			if raw, ok := f.Attrs[name]; ok {
				attrs[name] = raw
			}
		}
	}

	return attrs
}

func ruleOrAttr(f Field, rule, attr string) any {
	if argument, ok := validate.RuleArgument(f.Validate, rule); ok {
		return argument
	}
	if raw, ok := f.Attrs[attr]; ok {
		return raw
	}
	return nil
}
