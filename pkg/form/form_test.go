package form_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/url"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/nomadlabs/nomadforms/pkg/fields"
	"github.com/nomadlabs/nomadforms/pkg/form"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// stubProvider issues predictable tokens so submissions can carry a valid
// one without real signing.
type stubProvider struct{}

func (stubProvider) Issue(action string) (string, error) { return "tok-" + action, nil }
func (stubProvider) Verify(token, action string) bool    { return token == "tok-"+action }

func submission(id string, pairs ...string) form.Request {
	values := url.Values{}
	values.Set("nomad_form_id", id)
	for i := 0; i+1 < len(pairs); i += 2 {
		values.Add(pairs[i], pairs[i+1])
	}
	return form.Request{Method: "POST", Values: values}
}

func fieldNames(list []fields.Field) []string {
	names := make([]string, 0, len(list))
	for _, f := range list {
		names = append(names, f.Name)
	}
	return names
}

func textField(name string) fields.Field {
	return fields.Field{Name: name, Type: fields.TypeText}
}

func TestNewRequiresIDAndFields(t *testing.T) {
	if _, err := form.New("", form.WithFields(textField("a"))); err == nil {
		t.Fatalf("expected an error for an empty id")
	}
	if _, err := form.New("empty"); err == nil {
		t.Fatalf("expected an error for an empty field list")
	}
}

func TestNewRejectsDuplicateNames(t *testing.T) {
	_, err := form.New("dup",
		form.WithFields(textField("a"), textField("a")),
		form.WithDiagnostics(discard()),
	)
	var cfgErr *fields.ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected a configuration error, got %v", err)
	}
}

func TestNewRejectsReservedFieldName(t *testing.T) {
	_, err := form.New("reserved",
		form.WithFields(textField("nomad_form_id")),
		form.WithDiagnostics(discard()),
	)
	if err == nil {
		t.Fatalf("expected an error for the reserved field name")
	}
}

func TestInjectionOrdering(t *testing.T) {
	f, err := form.New("inj",
		form.WithFields(textField("A"), textField("B"), textField("C")),
		form.WithInjections(
			form.Injection{Fields: []fields.Field{textField("X")}, After: "A"},
			form.Injection{Fields: []fields.Field{textField("Y")}, Before: "C"},
		),
		form.WithDiagnostics(discard()),
		form.WithoutNonce(),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	want := []string{"A", "X", "B", "Y", "C"}
	if diff := cmp.Diff(want, fieldNames(f.Fields())); diff != "" {
		t.Fatalf("field order mismatch (-want +got):\n%s", diff)
	}
}

func TestInjectionUnknownAnchorDropped(t *testing.T) {
	f, err := form.New("inj",
		form.WithFields(textField("A")),
		form.WithInjections(
			form.Injection{Fields: []fields.Field{textField("X")}, After: "missing"},
		),
		form.WithDiagnostics(discard()),
		form.WithoutNonce(),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if diff := cmp.Diff([]string{"A"}, fieldNames(f.Fields())); diff != "" {
		t.Fatalf("field order mismatch (-want +got):\n%s", diff)
	}
}

func TestInitialFormData(t *testing.T) {
	f, err := form.New("initial",
		form.WithFields(
			fields.Field{Name: "name", Type: fields.TypeText, Value: "Ada"},
			textField("email"),
		),
		form.WithDiagnostics(discard()),
		form.WithoutNonce(),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	want := map[string]any{
		"nomad_form_id": "initial",
		"name":          "Ada",
		"email":         nil,
	}
	if diff := cmp.Diff(want, f.FormData()); diff != "" {
		t.Fatalf("form data mismatch (-want +got):\n%s", diff)
	}
}

func TestReconcilePureLookup(t *testing.T) {
	f, err := form.New("lookup",
		form.WithFields(textField("present"), textField("absent")),
		form.WithRequest(submission("lookup", "present", "hello")),
		form.WithDiagnostics(discard()),
		form.WithoutNonce(),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	data := f.FormData()
	if data["present"] != "hello" {
		t.Fatalf("present = %v, want hello", data["present"])
	}
	if value, ok := data["absent"]; !ok || value != nil {
		t.Fatalf("absent = %v (present %v), want nil", value, ok)
	}
}

func TestReconcileCheckbox(t *testing.T) {
	build := func(req form.Request) *form.Form {
		f, err := form.New("boxes",
			form.WithFields(fields.Field{Name: "agree", Type: fields.TypeCheckbox}),
			form.WithRequest(req),
			form.WithDiagnostics(discard()),
			form.WithoutNonce(),
		)
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		return f
	}

	unchecked := build(submission("boxes"))
	if _, ok := unchecked.FormData()["agree"]; ok {
		t.Fatalf("an unchecked box must not appear in form data")
	}
	if unchecked.Fields()[0].Checked {
		t.Fatalf("an unchecked box must not display as checked")
	}

	checked := build(submission("boxes", "agree", "1"))
	if checked.FormData()["agree"] != "1" {
		t.Fatalf("agree = %v, want 1", checked.FormData()["agree"])
	}
	if !checked.Fields()[0].Checked {
		t.Fatalf("a submitted box must display as checked")
	}
}

func TestReconcileDisabledButChecked(t *testing.T) {
	f, err := form.New("days",
		form.WithFields(fields.Field{
			Name: "days",
			Type: fields.TypeCheckboxes,
			Options: fields.Options{
				fields.Opt("a", "A"), fields.Opt("b", "B"), fields.Opt("c", "C"),
			},
			DisabledOptions: []string{"b"},
			CheckedOptions:  []string{"b"},
		}),
		form.WithRequest(submission("days")),
		form.WithDiagnostics(discard()),
		form.WithoutNonce(),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if diff := cmp.Diff([]string{"b"}, f.FormData()["days"]); diff != "" {
		t.Fatalf("form data mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"b"}, f.Fields()[0].Value); diff != "" {
		t.Fatalf("display value mismatch (-want +got):\n%s", diff)
	}
}

func TestReconcileDisabledDefaultNotAsserted(t *testing.T) {
	// Only the configured value re-asserts a disabled option; a Default
	// fallback does not.
	f, err := form.New("plan",
		form.WithFields(fields.Field{
			Name:            "plan",
			Type:            fields.TypeRadios,
			Default:         "legacy",
			Options:         fields.Options{fields.Opt("legacy", "Legacy"), fields.Opt("new", "New")},
			DisabledOptions: []string{"legacy"},
		}),
		form.WithRequest(submission("plan")),
		form.WithDiagnostics(discard()),
		form.WithoutNonce(),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if got := f.FormData()["plan"]; got != nil {
		t.Fatalf("plan = %v, want nil when only the default names a disabled option", got)
	}
}

func TestReconcileRadiosDisabledValue(t *testing.T) {
	f, err := form.New("plan",
		form.WithFields(fields.Field{
			Name:            "plan",
			Type:            fields.TypeRadios,
			Value:           "legacy",
			Options:         fields.Options{fields.Opt("legacy", "Legacy"), fields.Opt("new", "New")},
			DisabledOptions: []string{"legacy"},
		}),
		form.WithRequest(submission("plan")),
		form.WithDiagnostics(discard()),
		form.WithoutNonce(),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if f.FormData()["plan"] != "legacy" {
		t.Fatalf("plan = %v, want the disabled configured value", f.FormData()["plan"])
	}
}

func TestProcessSuccess(t *testing.T) {
	var got map[string]any
	f, err := form.New("contact",
		form.WithFields(
			fields.Field{Name: "name", Type: fields.TypeText, Validate: []string{"required"}},
		),
		form.WithCallback(func(formData map[string]any) { got = formData }),
		form.WithRequest(submission("contact", "name", "Ada")),
		form.WithDiagnostics(discard()),
		form.WithoutNonce(),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if err := f.Process(context.Background()); err != nil {
		t.Fatalf("Process: %v", err)
	}

	if !f.IsProcessed() {
		t.Fatalf("expected the form to report processed")
	}
	if f.Validity() != form.ValidityValid {
		t.Fatalf("validity = %v, want valid", f.Validity())
	}
	if got == nil || got["name"] != "Ada" {
		t.Fatalf("callback data = %v", got)
	}
	if messages := f.Messages(); len(messages) != 0 {
		t.Fatalf("unexpected messages: %v", messages)
	}
}

func TestProcessValidationFailure(t *testing.T) {
	called := false
	f, err := form.New("contact",
		form.WithFields(
			fields.Field{Name: "name", Type: fields.TypeText, Label: "Name", Validate: []string{"required"}},
			textField("note"),
		),
		form.WithCallback(func(map[string]any) { called = true }),
		form.WithRequest(submission("contact", "note", "keep me")),
		form.WithDiagnostics(discard()),
		form.WithoutNonce(),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if err := f.Process(context.Background()); err != nil {
		t.Fatalf("Process: %v", err)
	}

	if f.Validity() != form.ValidityInvalid {
		t.Fatalf("validity = %v, want invalid", f.Validity())
	}
	if called {
		t.Fatalf("callback must not fire on a failed validation")
	}
	want := []string{"The Name field is required."}
	if diff := cmp.Diff(want, f.Messages()); diff != "" {
		t.Fatalf("messages mismatch (-want +got):\n%s", diff)
	}

	// Submitted values survive for redisplay.
	for _, field := range f.Fields() {
		if field.Name == "note" && field.Value != "keep me" {
			t.Fatalf("note = %v, want the submitted value", field.Value)
		}
	}
}

func TestProcessTokenFailure(t *testing.T) {
	called := false
	processHook := false
	errorHook := false
	f, err := form.New("secure",
		form.WithFields(textField("name")),
		form.WithNonceProvider(stubProvider{}),
		form.WithCallback(func(map[string]any) { called = true }),
		form.WithHooks(&form.Hooks{
			Process: func(*form.Form) { processHook = true },
			Error:   func(*form.Form) { errorHook = true },
		}),
		form.WithRequest(submission("secure", "name", "x", "nomad_form_nonce", "garbage")),
		form.WithDiagnostics(discard()),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if err := f.Process(context.Background()); err != nil {
		t.Fatalf("Process: %v", err)
	}

	if !f.IsProcessed() {
		t.Fatalf("a routed submission is processed even when its token fails")
	}
	if !processHook {
		t.Fatalf("the process hook fires even when the token fails")
	}
	if errorHook {
		t.Fatalf("the error hook must not fire on a token failure")
	}
	if f.Validity() != form.ValidityInvalid {
		t.Fatalf("validity = %v, want invalid", f.Validity())
	}
	if called {
		t.Fatalf("callback must not fire on a token failure")
	}
	want := []string{"Invalid form submission. Please try again."}
	if diff := cmp.Diff(want, f.Messages()); diff != "" {
		t.Fatalf("messages mismatch (-want +got):\n%s", diff)
	}
}

func TestProcessValidToken(t *testing.T) {
	f, err := form.New("secure",
		form.WithFields(textField("name")),
		form.WithNonceProvider(stubProvider{}),
		form.WithRequest(submission("secure",
			"name", "x", "nomad_form_nonce", "tok-nomad_form_secure")),
		form.WithDiagnostics(discard()),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if err := f.Process(context.Background()); err != nil {
		t.Fatalf("Process: %v", err)
	}
	if f.Validity() != form.ValidityValid {
		t.Fatalf("validity = %v, want valid; messages %v", f.Validity(), f.Messages())
	}
}

func TestProcessWrongFormID(t *testing.T) {
	f, err := form.New("mine",
		form.WithFields(textField("name")),
		form.WithRequest(submission("another", "name", "x")),
		form.WithDiagnostics(discard()),
		form.WithoutNonce(),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if err := f.Process(context.Background()); err != nil {
		t.Fatalf("Process: %v", err)
	}
	if f.IsProcessed() {
		t.Fatalf("another form's submission must not mark this one processed")
	}
	if f.Validity() != form.ValidityUnknown {
		t.Fatalf("validity = %v, want unknown", f.Validity())
	}
}

func TestProcessWrongMethod(t *testing.T) {
	req := submission("mine", "name", "x")
	req.Method = "GET"

	f, err := form.New("mine",
		form.WithFields(textField("name")),
		form.WithRequest(req),
		form.WithDiagnostics(discard()),
		form.WithoutNonce(),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if err := f.Process(context.Background()); err != nil {
		t.Fatalf("Process: %v", err)
	}
	if f.IsProcessed() {
		t.Fatalf("a wrong-method request must leave the form unprocessed")
	}
	// Without a matching submission the form data stays initial.
	if f.FormData()["name"] != nil {
		t.Fatalf("form data should be initial, got %v", f.FormData())
	}
}

func TestProcessIsIdempotent(t *testing.T) {
	calls := 0
	f, err := form.New("once",
		form.WithFields(textField("name")),
		form.WithCallback(func(map[string]any) { calls++ }),
		form.WithRequest(submission("once", "name", "x")),
		form.WithDiagnostics(discard()),
		form.WithoutNonce(),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	ctx := context.Background()
	if err := f.Process(ctx); err != nil {
		t.Fatalf("Process: %v", err)
	}
	if err := f.Process(ctx); err != nil {
		t.Fatalf("Process: %v", err)
	}
	if calls != 1 {
		t.Fatalf("callback fired %d times, want once", calls)
	}
}

func TestProcessHookFiresLast(t *testing.T) {
	var order []string
	hooks := &form.Hooks{
		Process: func(*form.Form) { order = append(order, "process") },
		Success: func(*form.Form) { order = append(order, "success") },
		Error:   func(*form.Form) { order = append(order, "error") },
	}

	run := func(id string, pairs ...string) {
		t.Helper()
		f, err := form.New(id,
			form.WithFields(fields.Field{Name: "name", Type: fields.TypeText, Validate: []string{"required"}}),
			form.WithHooks(hooks),
			form.WithRequest(submission(id, pairs...)),
			form.WithDiagnostics(discard()),
			form.WithoutNonce(),
		)
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		if err := f.Process(context.Background()); err != nil {
			t.Fatalf("Process: %v", err)
		}
	}

	run("good", "name", "Ada")
	if diff := cmp.Diff([]string{"success", "process"}, order); diff != "" {
		t.Fatalf("hook order mismatch (-want +got):\n%s", diff)
	}

	order = nil
	run("bad")
	if diff := cmp.Diff([]string{"error", "process"}, order); diff != "" {
		t.Fatalf("hook order mismatch (-want +got):\n%s", diff)
	}
}

func TestOptionlessChoiceRejectsSubmission(t *testing.T) {
	f, err := form.New("degraded",
		form.WithFields(fields.Field{Name: "kind", Type: fields.TypeSelect}),
		form.WithRequest(submission("degraded", "kind", "anything-at-all")),
		form.WithDiagnostics(discard()),
		form.WithoutNonce(),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if err := f.Process(context.Background()); err != nil {
		t.Fatalf("Process: %v", err)
	}
	if f.Validity() != form.ValidityInvalid {
		t.Fatalf("an option-less choice field must reject any submitted value")
	}
}

func TestOptionalEmptyFieldIsNotValidated(t *testing.T) {
	build := func(value string) *form.Form {
		f, err := form.New("optional",
			form.WithFields(fields.Field{Name: "email", Type: fields.TypeEmail}),
			form.WithRequest(submission("optional", "email", value)),
			form.WithDiagnostics(discard()),
			form.WithoutNonce(),
		)
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		if err := f.Process(context.Background()); err != nil {
			t.Fatalf("Process: %v", err)
		}
		return f
	}

	if empty := build(""); empty.Validity() != form.ValidityValid {
		t.Fatalf("an optional field submitted empty must not be checked: %v", empty.Messages())
	}
	if garbage := build("not-an-email"); garbage.Validity() != form.ValidityInvalid {
		t.Fatalf("an optional field with a non-empty invalid value must be checked")
	}
}

func TestHooksFilterFields(t *testing.T) {
	hooks := &form.Hooks{
		FilterFields: func(list []fields.Field) []fields.Field {
			return append(list, textField("extra"))
		},
	}

	f, err := form.New("hooked",
		form.WithFields(textField("base")),
		form.WithHooks(hooks),
		form.WithDiagnostics(discard()),
		form.WithoutNonce(),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if diff := cmp.Diff([]string{"base", "extra"}, fieldNames(f.Fields())); diff != "" {
		t.Fatalf("field order mismatch (-want +got):\n%s", diff)
	}

	locked, err := form.New("locked",
		form.WithFields(textField("base")),
		form.WithHooks(hooks),
		form.WithoutModifications(),
		form.WithDiagnostics(discard()),
		form.WithoutNonce(),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if diff := cmp.Diff([]string{"base"}, fieldNames(locked.Fields())); diff != "" {
		t.Fatalf("a locked form must ignore field filters (-want +got):\n%s", diff)
	}
}

func TestHooksFilterIsValid(t *testing.T) {
	f, err := form.New("override",
		form.WithFields(fields.Field{Name: "name", Type: fields.TypeText, Validate: []string{"required"}}),
		form.WithHooks(&form.Hooks{
			FilterIsValid: func(valid bool, _ *form.Form) bool { return true },
		}),
		form.WithRequest(submission("override")),
		form.WithDiagnostics(discard()),
		form.WithoutNonce(),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if err := f.Process(context.Background()); err != nil {
		t.Fatalf("Process: %v", err)
	}
	if f.Validity() != form.ValidityValid {
		t.Fatalf("the is-valid override must win, got %v", f.Validity())
	}
}

func TestHooksInjections(t *testing.T) {
	f, err := form.New("injected",
		form.WithFields(textField("A"), textField("B")),
		form.WithHooks(&form.Hooks{
			Injections: func() []form.Injection {
				return []form.Injection{
					{Fields: []fields.Field{textField("X")}, Before: "B"},
				}
			},
		}),
		form.WithDiagnostics(discard()),
		form.WithoutNonce(),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if diff := cmp.Diff([]string{"A", "X", "B"}, fieldNames(f.Fields())); diff != "" {
		t.Fatalf("field order mismatch (-want +got):\n%s", diff)
	}
}
