package form_test

import (
	"context"
	"strings"
	"testing"

	"github.com/nomadlabs/nomadforms/pkg/fields"
	"github.com/nomadlabs/nomadforms/pkg/form"
)

func TestRenderFormChrome(t *testing.T) {
	f, err := form.New("contact",
		form.WithAction("/contact"),
		form.WithFields(textField("name")),
		form.WithNonceProvider(stubProvider{}),
		form.WithDiagnostics(discard()),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	markup, err := f.Render()
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	for _, want := range []string{
		`<form`,
		`id="contact"`,
		`action="/contact"`,
		`method="POST"`,
		`class="nomad-form labels-top labels-align-left"`,
		`<input type="hidden" id="nomad_form_id" name="nomad_form_id" value="contact" />`,
		`<input type="hidden" id="nomad_form_nonce" name="nomad_form_nonce" value="tok-nomad_form_contact" />`,
		`<div class="nomad-form-fields">`,
		`<div class="nomad-form-actions">`,
		`<button class="nomad-button nomad-submit" type="submit">Submit</button>`,
		`</form>`,
	} {
		if !strings.Contains(markup, want) {
			t.Fatalf("markup missing %q:\n%s", want, markup)
		}
	}
}

func TestRenderUploadFormIsMultipart(t *testing.T) {
	f, err := form.New("files",
		form.WithFields(fields.Field{Name: "doc", Type: fields.TypeUpload}),
		form.WithDiagnostics(discard()),
		form.WithoutNonce(),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if !f.IsUpload() {
		t.Fatalf("a form with an upload field reports IsUpload")
	}

	markup, err := f.Render()
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(markup, `enctype="multipart/form-data"`) {
		t.Fatalf("expected a multipart enctype:\n%s", markup)
	}
}

func TestRenderWithoutFormTag(t *testing.T) {
	f, err := form.New("embedded",
		form.WithFields(textField("name")),
		form.WithoutFormTag(),
		form.WithoutSubmitButton(),
		form.WithDiagnostics(discard()),
		form.WithoutNonce(),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	markup, err := f.Render()
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	if strings.Contains(markup, "<form") || strings.Contains(markup, "</form>") {
		t.Fatalf("expected no form tag:\n%s", markup)
	}
	if !strings.HasPrefix(markup, "<div") || !strings.HasSuffix(markup, "</div>") {
		t.Fatalf("expected a div wrapper:\n%s", markup)
	}
	if strings.Contains(markup, "nomad-form-actions") {
		t.Fatalf("expected no actions block:\n%s", markup)
	}
	if !strings.Contains(markup, `name="nomad_form_id"`) {
		t.Fatalf("the discriminator field must render even without the form tag:\n%s", markup)
	}
}

func TestRenderActionButtons(t *testing.T) {
	f, err := form.New("actions",
		form.WithFields(textField("name")),
		form.WithResetButton("Clear"),
		form.WithCancelButton("Back", "/home"),
		form.WithSubmitText("Send"),
		form.WithDiagnostics(discard()),
		form.WithoutNonce(),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	markup, err := f.Render()
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	for _, want := range []string{
		`>Send</button>`,
		`<button class="nomad-button nomad-reset" type="reset">Clear</button>`,
		`<a class="nomad-button nomad-cancel" href="/home">Back</a>`,
	} {
		if !strings.Contains(markup, want) {
			t.Fatalf("markup missing %q:\n%s", want, markup)
		}
	}
}

func TestRenderMessages(t *testing.T) {
	f, err := form.New("msgs",
		form.WithFields(fields.Field{Name: "name", Type: fields.TypeText, Label: "Name", Validate: []string{"required"}}),
		form.WithRequest(submission("msgs")),
		form.WithDiagnostics(discard()),
		form.WithoutNonce(),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if got := f.RenderMessages(); got != "" {
		t.Fatalf("no banner before processing, got %s", got)
	}

	if err := f.Process(context.Background()); err != nil {
		t.Fatalf("Process: %v", err)
	}

	markup := f.RenderMessages()
	for _, want := range []string{
		`class="nomad-form-message nomad-error"`,
		`<ul class="nomad-error-list">`,
		`<li>The Name field is required.</li>`,
	} {
		if !strings.Contains(markup, want) {
			t.Fatalf("banner missing %q:\n%s", want, markup)
		}
	}
}

func TestRenderMessagesSuccess(t *testing.T) {
	f, err := form.New("msgs",
		form.WithFields(textField("name")),
		form.WithMessages("Thanks!", ""),
		form.WithRequest(submission("msgs", "name", "x")),
		form.WithDiagnostics(discard()),
		form.WithoutNonce(),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := f.Process(context.Background()); err != nil {
		t.Fatalf("Process: %v", err)
	}

	want := `<div class="nomad-form-message nomad-success">Thanks!</div>`
	if got := f.RenderMessages(); got != want {
		t.Fatalf("banner = %s, want %s", got, want)
	}
}

func TestRenderFiltersApply(t *testing.T) {
	f, err := form.New("filtered",
		form.WithFields(textField("name")),
		form.WithHooks(&form.Hooks{
			FilterFormOpenAttributes: func(attrs fields.Attributes, _ *form.Form) fields.Attributes {
				attrs.Class("custom")
				return attrs
			},
			HiddenFields: func(*form.Form) string {
				return `<input type="hidden" name="extra" value="1" />`
			},
		}),
		form.WithDiagnostics(discard()),
		form.WithoutNonce(),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	markup, err := f.Render()
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(markup, "custom") {
		t.Fatalf("form open attribute filter did not apply:\n%s", markup)
	}
	if !strings.Contains(markup, `name="extra"`) {
		t.Fatalf("hidden fields hook did not apply:\n%s", markup)
	}
}
