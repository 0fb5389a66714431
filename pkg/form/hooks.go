package form

import "github.com/nomadlabs/nomadforms/pkg/fields"

// Hooks is the explicit extension surface replacing the original's ambient
// hook bus. Every member is optional; nil members are skipped. Filters return
// a possibly-modified value the engine continues with, notifications are
// fire-and-forget. Members documented as gated only run when the form allows
// modifications; lifecycle notifications (Process, Success, Error) always
// fire.
type Hooks struct {
	// Init fires when a form starts construction.
	Init func(formID string)

	// FilterFields rewrites the field list before injections apply. Gated.
	FilterFields func([]fields.Field) []fields.Field

	// Injections supplies additional injection directives. Gated.
	Injections func() []Injection

	// FilterFieldArgs rewrites a single field just before it renders. Gated.
	FilterFieldArgs func(fields.Field, *Form) fields.Field

	// FilterIsValid overrides the validator's verdict. Gated.
	FilterIsValid func(valid bool, f *Form) bool

	// Message filters, applied when rendering banners. Gated.
	FilterSuccessMessage func(string) string
	FilterErrorMessage   func(string) string
	FilterErrorMessages  func([]string) []string

	// Attribute and markup filters for the form chrome. Gated.
	FilterFormOpenAttributes func(fields.Attributes, *Form) fields.Attributes
	FilterFormOpen           func(string, *Form) string
	FilterFormClose          func(string, *Form) string
	FilterSubmitAttributes   func(fields.Attributes, *Form) fields.Attributes
	FilterResetAttributes    func(fields.Attributes, *Form) fields.Attributes
	FilterCancelAttributes   func(fields.Attributes, *Form) fields.Attributes

	// HiddenFields returns extra hidden-field markup emitted right after the
	// nonce field. Gated.
	HiddenFields func(*Form) string

	// Render notifications, in document order. Gated.
	BeforeFormOpen        func(*Form)
	AfterFormOpen         func(*Form)
	BeforeFieldsContainer func(*Form)
	BeforeFields          func(*Form)
	BeforeField           func(*Form, fields.Field)
	AfterField            func(*Form, fields.Field)
	AfterFields           func(*Form)
	AfterFieldsContainer  func(*Form)
	BeforeFormActions     func(*Form)
	BeforeSubmitButton    func(*Form)
	AfterSubmitButton     func(*Form)
	AfterFormActions      func(*Form)
	BeforeFormClose       func(*Form)
	AfterFormClose        func(*Form)

	// Lifecycle notifications. Success and Error fire on the matching
	// validation branch; token failure fires neither. Process fires last,
	// after every routed submission regardless of outcome.
	Process func(*Form)
	Success func(*Form)
	Error   func(*Form)
}
