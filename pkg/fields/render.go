package fields

import (
	"fmt"
	"html"
	"strings"
)

// RenderField renders a field's full markup: container, label block and
// control. Hidden fields render as a bare input. The descriptor is expected
// to be normalized; an unregistered type returns a *ConfigurationError so
// the caller can report it and render the rest of the form.
func RenderField(f Field) (string, error) {
	if !f.Type.Valid() {
		return "", &ConfigurationError{
			Subject: f.Name,
			Reason:  fmt.Sprintf("invalid field type %q", f.Type),
		}
	}

	control, err := registry[f.Type].render(f)
	if err != nil {
		return "", err
	}

	if f.Type == TypeHidden {
		return control, nil
	}

	var b strings.Builder
	if f.Separator == "before" {
		b.WriteString(`<hr class="nomad-separator" />`)
	}
	b.WriteString(openContainer(f))
	b.WriteString(labelBlock(f))
	b.WriteString(`<div class="nomad-field-container">`)
	b.WriteString(f.Before)
	b.WriteString(control)
	b.WriteString(f.After)
	b.WriteString(`</div>`)
	b.WriteString(`</div>`)
	if f.Separator == "after" {
		b.WriteString(`<hr class="nomad-separator" />`)
	}
	return b.String(), nil
}

func openContainer(f Field) string {
	attrs := Attributes{}
	attrs.Class("nomad-field", string(f.Type)+"-field")
	for _, base := range registry[f.Type].bases {
		attrs.Class(string(base) + "-field")
	}
	if f.Inline {
		attrs.Class("inline")
	}
	return fmt.Sprintf("<div%s>", FormatAttributes(attrs))
}

func labelBlock(f Field) string {
	if f.Label == "" || f.HideLabel {
		return ""
	}

	description := ""
	if f.Description != "" {
		description = fmt.Sprintf(`<div class="nomad-field-description">%s</div>`, f.Description)
	}

	return fmt.Sprintf(`<div class="nomad-field-label"><label for="%s">%s</label>%s</div>`,
		html.EscapeString(f.Name), f.Label, description)
}

func renderInput(f Field) (string, error) {
	inputType := string(f.Type)
	if f.Type == TypeUpload {
		inputType = "file"
	}

	value := ValueString(f.EffectiveValue())
	if f.Type == TypePassword {
		// Never re-echo a password.
		value = ""
	}

	attrs := FormatAttributes(mapAttributes(f, registry[f.Type].attrs))
	return fmt.Sprintf(`<input type="%s" id="%s" name="%s" value="%s"%s />`,
		html.EscapeString(inputType), html.EscapeString(f.Name),
		html.EscapeString(f.Name), html.EscapeString(value), attrs), nil
}

func renderPercentage(f Field) (string, error) {
	mapped := mapAttributes(f, registry[f.Type].attrs)
	if _, ok := mapped["min"]; !ok {
		mapped["min"] = "0"
	}
	if _, ok := mapped["max"]; !ok {
		mapped["max"] = "100"
	}

	attrs := FormatAttributes(mapped)
	return fmt.Sprintf(`<input type="number" id="%s" name="%s" value="%s"%s />%%`,
		html.EscapeString(f.Name), html.EscapeString(f.Name),
		html.EscapeString(ValueString(f.EffectiveValue())), attrs), nil
}

func renderTextarea(f Field) (string, error) {
	attrs := FormatAttributes(mapAttributes(f, registry[f.Type].attrs))
	return fmt.Sprintf(`<textarea id="%s" name="%s"%s>%s</textarea>`,
		html.EscapeString(f.Name), html.EscapeString(f.Name), attrs,
		html.EscapeString(ValueString(f.EffectiveValue()))), nil
}

func renderSelect(f Field) (string, error) {
	attrs := FormatAttributes(mapAttributes(f, registry[f.Type].attrs))

	var b strings.Builder
	fmt.Fprintf(&b, `<select id="%s" name="%s"%s>`,
		html.EscapeString(f.Name), html.EscapeString(f.Name), attrs)
	b.WriteString(`<option></option>`)

	selected := ""
	hasSelection := f.EffectiveValue() != nil
	if hasSelection {
		selected = ValueString(f.EffectiveValue())
	}

	for _, choice := range ResolveOptions(f) {
		marker := ""
		if hasSelection && choice.Value == selected {
			marker = ` selected="selected"`
		}
		fmt.Fprintf(&b, `<option value="%s"%s>%s</option>`,
			html.EscapeString(choice.Value), marker, html.EscapeString(choice.Label))
	}

	b.WriteString(`</select>`)
	return b.String(), nil
}

// renderCheckable renders the singular checkbox, radio and toggle controls.
// The control's value attribute always carries the configured value; whether
// it is checked is the Checked flag's business.
func renderCheckable(f Field) (string, error) {
	inputType := "checkbox"
	if f.Type == TypeRadio {
		inputType = "radio"
	}

	mapped := mapAttributes(f, registry[f.Type].attrs)
	if f.Type == TypeToggle {
		mapped.Class("toggle")
	}
	attrs := FormatAttributes(mapped)

	text := ""
	if f.Text != "" {
		text = fmt.Sprintf(`<label for="%s">%s</label>`, html.EscapeString(f.Name), f.Text)
	}

	return fmt.Sprintf(`<div class="%s-container"><input type="%s" id="%s" name="%s" value="%s"%s />%s</div>`,
		f.Type, inputType, html.EscapeString(f.Name), html.EscapeString(f.Name),
		html.EscapeString(ValueString(f.Value)), attrs, text), nil
}

// renderCheckableGroup renders the checkboxes, radios and toggles option
// groups. Multi-value controls repeat the field name so servers collect the
// submission as a value list.
func renderCheckableGroup(f Field) (string, error) {
	inputType := "checkbox"
	container := "checkbox-container"
	switch f.Type {
	case TypeRadios:
		inputType = "radio"
		container = "radio-container"
	case TypeToggles:
		container = "toggle-container"
	}

	checked := ValueSlice(f.EffectiveValue())

	var b strings.Builder
	for _, choice := range ResolveOptions(f) {
		id := fmt.Sprintf("%s_%s", f.Name, choice.Value)

		inputAttrs := Attributes{}
		labelAttrs := Attributes{}
		if contains(checked, choice.Value) {
			inputAttrs["checked"] = true
		}
		if contains(f.DisabledOptions, choice.Value) {
			inputAttrs["disabled"] = true
			labelAttrs.Class("disabled")
		}
		if f.Type == TypeToggles {
			inputAttrs.Class("toggle")
		}

		fmt.Fprintf(&b, `<div class="%s">`, container)
		fmt.Fprintf(&b, `<input type="%s" id="%s" name="%s" value="%s"%s />`,
			inputType, html.EscapeString(id), html.EscapeString(f.Name),
			html.EscapeString(choice.Value), FormatAttributes(inputAttrs))
		fmt.Fprintf(&b, `<label for="%s"%s>%s</label>`,
			html.EscapeString(id), FormatAttributes(labelAttrs), choice.Label)
		b.WriteString(`</div>`)
	}
	return b.String(), nil
}

func renderButtonGroup(f Field) (string, error) {
	inputType := "radio"
	if f.Multiple {
		inputType = "checkbox"
	}

	checked := ValueSlice(f.EffectiveValue())

	var b strings.Builder
	for _, choice := range ResolveOptions(f) {
		id := fmt.Sprintf("%s_%s", f.Name, choice.Value)

		inputAttrs := Attributes{}
		labelAttrs := Attributes{}
		if contains(checked, choice.Value) {
			inputAttrs["checked"] = true
		}
		if contains(f.DisabledOptions, choice.Value) {
			inputAttrs["disabled"] = true
			labelAttrs.Class("disabled")
		}
		inputAttrs.Class("button-group-item")

		b.WriteString(`<div class="button-group-item-container">`)
		fmt.Fprintf(&b, `<input type="%s" id="%s" name="%s" value="%s"%s />`,
			inputType, html.EscapeString(id), html.EscapeString(f.Name),
			html.EscapeString(choice.Value), FormatAttributes(inputAttrs))
		fmt.Fprintf(&b, `<label for="%s"%s>%s</label>`,
			html.EscapeString(id), FormatAttributes(labelAttrs), choice.Label)
		b.WriteString(`</div>`)
	}
	return b.String(), nil
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}
