package form

import (
	"fmt"
	"html"
	"strings"

	"github.com/nomadlabs/nomadforms/pkg/fields"
)

// Render produces the full form markup: the open tag, hidden discriminator
// and token fields, every field in order, the form actions block and the
// close tag. Render notifications fire in document order; attribute and
// markup filters apply when the form allows modifications.
func (f *Form) Render() (string, error) {
	var b strings.Builder

	f.notify(f.cfg.hooks.BeforeFormOpen)
	open, err := f.renderOpen()
	if err != nil {
		return "", err
	}
	b.WriteString(open)
	f.notify(f.cfg.hooks.AfterFormOpen)

	f.notify(f.cfg.hooks.BeforeFieldsContainer)
	b.WriteString(`<div class="nomad-form-fields">`)
	inner, err := f.RenderFields()
	if err != nil {
		return "", err
	}
	b.WriteString(inner)
	b.WriteString(`</div>`)
	f.notify(f.cfg.hooks.AfterFieldsContainer)

	if f.cfg.submitButton {
		b.WriteString(f.renderActions())
	}

	f.notify(f.cfg.hooks.BeforeFormClose)
	b.WriteString(f.renderClose())
	f.notify(f.cfg.hooks.AfterFormClose)

	return b.String(), nil
}

// RenderFields produces the hidden routing fields plus every visible field,
// without the surrounding form chrome, for callers embedding the fields in
// an externally-managed form tag.
func (f *Form) RenderFields() (string, error) {
	var b strings.Builder

	b.WriteString(hiddenInput(fields.ReservedName, f.id))
	if f.cfg.nonce {
		token, err := f.cfg.nonceProvider.Issue(nonceActionPrefix + f.id)
		if err != nil {
			return "", fmt.Errorf("form: issue nonce for %q: %w", f.id, err)
		}
		b.WriteString(hiddenInput(NonceFieldName, token))
	}
	if f.cfg.allowModifications && f.cfg.hooks.HiddenFields != nil {
		b.WriteString(f.cfg.hooks.HiddenFields(f))
	}

	f.notify(f.cfg.hooks.BeforeFields)
	for _, field := range f.Fields() {
		if f.cfg.allowModifications && f.cfg.hooks.FilterFieldArgs != nil {
			field = f.cfg.hooks.FilterFieldArgs(field, f)
		}
		if f.cfg.allowModifications && f.cfg.hooks.BeforeField != nil {
			f.cfg.hooks.BeforeField(f, field)
		}
		markup, err := fields.RenderField(field)
		if err != nil {
			return "", fmt.Errorf("form: render field %q: %w", field.Name, err)
		}
		b.WriteString(markup)
		if f.cfg.allowModifications && f.cfg.hooks.AfterField != nil {
			f.cfg.hooks.AfterField(f, field)
		}
	}
	f.notify(f.cfg.hooks.AfterFields)

	return b.String(), nil
}

func (f *Form) renderOpen() (string, error) {
	attrs := fields.Attributes{
		"id": f.id,
		"class": []string{
			"nomad-form",
			"labels-" + f.cfg.labelsPosition,
			"labels-align-" + f.cfg.labelsAlignment,
		},
	}
	if f.cfg.labelsSameWidth {
		attrs.Class("labels-same-width")
	}
	if f.cfg.formTag {
		attrs["method"] = f.cfg.method
		if f.cfg.action != "" {
			attrs["action"] = f.cfg.action
		}
		if f.isUpload {
			attrs["enctype"] = "multipart/form-data"
		}
	}
	if f.cfg.allowModifications && f.cfg.hooks.FilterFormOpenAttributes != nil {
		attrs = f.cfg.hooks.FilterFormOpenAttributes(attrs, f)
		if !attrs.HasClass("nomad-form") {
			attrs.Class("nomad-form")
		}
	}

	tag := "form"
	if !f.cfg.formTag {
		tag = "div"
	}
	open := fmt.Sprintf("<%s%s>", tag, fields.FormatAttributes(attrs))
	if f.cfg.allowModifications && f.cfg.hooks.FilterFormOpen != nil {
		open = f.cfg.hooks.FilterFormOpen(open, f)
	}
	return open, nil
}

func (f *Form) renderClose() string {
	closing := "</form>"
	if !f.cfg.formTag {
		closing = "</div>"
	}
	if f.cfg.allowModifications && f.cfg.hooks.FilterFormClose != nil {
		closing = f.cfg.hooks.FilterFormClose(closing, f)
	}
	return closing
}

func (f *Form) renderActions() string {
	var b strings.Builder

	f.notify(f.cfg.hooks.BeforeFormActions)
	b.WriteString(`<div class="nomad-form-actions">`)

	f.notify(f.cfg.hooks.BeforeSubmitButton)
	submit := fields.Attributes{"type": "submit", "class": []string{"nomad-button", "nomad-submit"}}
	if f.cfg.allowModifications && f.cfg.hooks.FilterSubmitAttributes != nil {
		submit = f.cfg.hooks.FilterSubmitAttributes(submit, f)
	}
	fmt.Fprintf(&b, "<button%s>%s</button>",
		fields.FormatAttributes(submit), html.EscapeString(f.cfg.submitText))
	f.notify(f.cfg.hooks.AfterSubmitButton)

	if f.cfg.resetButton {
		reset := fields.Attributes{"type": "reset", "class": []string{"nomad-button", "nomad-reset"}}
		if f.cfg.allowModifications && f.cfg.hooks.FilterResetAttributes != nil {
			reset = f.cfg.hooks.FilterResetAttributes(reset, f)
		}
		fmt.Fprintf(&b, "<button%s>%s</button>",
			fields.FormatAttributes(reset), html.EscapeString(f.cfg.resetText))
	}

	if f.cfg.cancelButton {
		cancel := fields.Attributes{
			"href":  f.cfg.cancelHref,
			"class": []string{"nomad-button", "nomad-cancel"},
		}
		if f.cfg.allowModifications && f.cfg.hooks.FilterCancelAttributes != nil {
			cancel = f.cfg.hooks.FilterCancelAttributes(cancel, f)
		}
		fmt.Fprintf(&b, "<a%s>%s</a>",
			fields.FormatAttributes(cancel), html.EscapeString(f.cfg.cancelText))
	}

	b.WriteString(`</div>`)
	f.notify(f.cfg.hooks.AfterFormActions)

	return b.String()
}

// RenderMessages produces the outcome banner for a processed submission: a
// success banner, or an error banner with the failure messages as a list.
// Unprocessed forms yield no markup.
func (f *Form) RenderMessages() string {
	if !f.processed || f.validity == ValidityUnknown {
		return ""
	}

	if f.validity == ValidityValid {
		message := f.cfg.successMessage
		if f.cfg.allowModifications && f.cfg.hooks.FilterSuccessMessage != nil {
			message = f.cfg.hooks.FilterSuccessMessage(message)
		}
		return fmt.Sprintf(`<div class="nomad-form-message nomad-success">%s</div>`, message)
	}

	banner := f.cfg.errorMessage
	if f.cfg.allowModifications && f.cfg.hooks.FilterErrorMessage != nil {
		banner = f.cfg.hooks.FilterErrorMessage(banner)
	}
	messages := f.Messages()
	if f.cfg.allowModifications && f.cfg.hooks.FilterErrorMessages != nil {
		messages = f.cfg.hooks.FilterErrorMessages(messages)
	}

	var b strings.Builder
	b.WriteString(`<div class="nomad-form-message nomad-error">`)
	b.WriteString(banner)
	b.WriteString(`<ul class="nomad-error-list">`)
	for _, message := range messages {
		fmt.Fprintf(&b, "<li>%s</li>", html.EscapeString(message))
	}
	b.WriteString(`</ul></div>`)
	return b.String()
}

// hiddenInput renders one hidden field through the regular field renderer.
func hiddenInput(name, value string) string {
	markup, _ := fields.RenderField(fields.Field{
		Name:  name,
		Type:  fields.TypeHidden,
		Value: value,
	})
	return markup
}

// notify fires a render notification when modifications are allowed.
func (f *Form) notify(hook func(*Form)) {
	if hook != nil && f.cfg.allowModifications {
		hook(f)
	}
}
