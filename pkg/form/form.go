// Package form assembles field descriptors into a form, renders its markup,
// reconciles submitted request data back onto the fields and drives a
// validation pass before invoking the configured callback.
package form

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/nomadlabs/nomadforms/pkg/fields"
	"github.com/nomadlabs/nomadforms/pkg/nonce"
	"github.com/nomadlabs/nomadforms/pkg/validate"
)

// Validity is the tri-state outcome of a form's request cycle.
type Validity int

const (
	// ValidityUnknown means the form has not been routed a submission yet.
	ValidityUnknown Validity = iota
	// ValidityValid means the submission passed validation.
	ValidityValid
	// ValidityInvalid means token verification or field validation failed.
	ValidityInvalid
)

// Form is the aggregate root: an id, an ordered field list and the request
// cycle state. Instances are constructed fresh per request and are not safe
// for concurrent use.
type Form struct {
	id       string
	cfg      config
	fields   []fields.Field
	formData map[string]any
	view     submissionView
	isUpload bool

	submitted bool
	processed bool
	validity  Validity
	messages  []string
}

// New builds a form from its id and options. Construction runs the full
// preparation pipeline: the Init hook, field-list filtering, injections,
// per-field sanitizing, normalization and rule inference, then derives the
// form data, reconciling against the configured request when its method
// matches.
//
// Misconfiguration that would make the form unusable (empty id or field
// list, reserved or duplicate field names, abstract field types) fails
// construction. Per-field gaps such as a choice field without options are
// reported through the diagnostics logger and render degraded instead.
func New(id string, opts ...Option) (*Form, error) {
	if strings.TrimSpace(id) == "" {
		return nil, &fields.ConfigurationError{Subject: "form", Reason: "id is required"}
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.diag == nil {
		cfg.diag = slog.Default()
	}
	if cfg.validator == nil {
		cfg.validator = validate.NewPlayground()
	}
	if cfg.nonce && cfg.nonceProvider == nil {
		cfg.nonceProvider = nonce.Default()
	}
	if cfg.hooks == nil {
		cfg.hooks = &Hooks{}
	}

	if cfg.hooks.Init != nil {
		cfg.hooks.Init(id)
	}

	list := cloneFields(cfg.fieldList)
	injections := cfg.injections
	if cfg.allowModifications {
		if cfg.hooks.FilterFields != nil {
			list = cfg.hooks.FilterFields(list)
		}
		if cfg.hooks.Injections != nil {
			injections = append(injections, cfg.hooks.Injections()...)
		}
		list = applyInjections(list, injections, cfg.diag)
	}

	if len(list) == 0 {
		return nil, &fields.ConfigurationError{Subject: id, Reason: "form has no fields"}
	}

	f := &Form{
		id:       id,
		cfg:      cfg,
		validity: ValidityUnknown,
	}
	prepared, err := f.prepareFields(list)
	if err != nil {
		return nil, err
	}
	f.fields = prepared

	if cfg.request != nil && strings.EqualFold(cfg.request.Method, cfg.method) {
		f.submitted = true
		f.formData, f.view = reconcile(f.fields, *cfg.request)
	} else {
		f.formData = initialFormData(id, f.fields)
	}
	return f, nil
}

// prepareFields runs the per-field pipeline: sanitize caller markup,
// normalize, infer implicit validation rules, detect uploads and reject
// duplicate names.
func (f *Form) prepareFields(list []fields.Field) ([]fields.Field, error) {
	prepared := make([]fields.Field, 0, len(list))
	seen := make(map[string]struct{}, len(list))

	for _, field := range list {
		if strings.TrimSpace(field.Name) == "" {
			return nil, &fields.ConfigurationError{Subject: f.id, Reason: "field name is required"}
		}
		if _, dup := seen[field.Name]; dup {
			return nil, &fields.ConfigurationError{Subject: field.Name, Reason: "duplicate field name"}
		}
		seen[field.Name] = struct{}{}

		field = sanitizeField(field)
		if err := fields.Normalize(&field, f.cfg.diag); err != nil {
			return nil, err
		}
		fields.InferRules(&field)

		if field.Type == fields.TypeUpload {
			f.isUpload = true
		}
		prepared = append(prepared, field)
	}
	return prepared, nil
}

// Process runs the submission state machine for the current request. It is
// a no-op when the request method does not match, when the submitted form
// id belongs to another form, or when this form already processed the
// request cycle. The validator error is the only error path; validation
// failures are state, not errors.
func (f *Form) Process(ctx context.Context) error {
	if !f.submitted || f.processed {
		return nil
	}
	if id, _ := f.formData[fields.ReservedName].(string); id != f.id {
		return nil
	}
	f.processed = true

	if f.cfg.nonce {
		token, _ := f.cfg.request.get(NonceFieldName)
		if !f.cfg.nonceProvider.Verify(token, nonceActionPrefix+f.id) {
			// Token failure skips validation entirely; only the
			// end-of-cycle Process notification fires.
			f.validity = ValidityInvalid
			f.messages = []string{f.cfg.nonceMessage}
			f.finishProcessing()
			return nil
		}
	}

	result, err := f.cfg.validator.Validate(ctx, f.ruleset())
	if err != nil {
		return fmt.Errorf("form: validate %q: %w", f.id, err)
	}

	valid := result.Valid()
	if f.cfg.allowModifications && f.cfg.hooks.FilterIsValid != nil {
		valid = f.cfg.hooks.FilterIsValid(valid, f)
	}

	if valid {
		f.validity = ValidityValid
		if f.cfg.callback != nil {
			f.cfg.callback(f.FormData())
		}
		if f.cfg.hooks.Success != nil {
			f.cfg.hooks.Success(f)
		}
	} else {
		f.validity = ValidityInvalid
		f.messages = result.Messages()
		if f.cfg.hooks.Error != nil {
			f.cfg.hooks.Error(f)
		}
	}

	f.finishProcessing()
	return nil
}

// finishProcessing fires the Process notification, which runs once at the
// end of every routed submission regardless of its outcome.
func (f *Form) finishProcessing() {
	if f.cfg.hooks.Process != nil {
		f.cfg.hooks.Process(f)
	}
}

// ruleset assembles the validation inputs. A field participates when it
// carries a required rule or its reconciled value is non-empty; optional
// fields submitted empty are never format-checked.
func (f *Form) ruleset() validate.Ruleset {
	ruleset := make(validate.Ruleset, 0, len(f.fields))
	for i := range f.fields {
		field := &f.fields[i]
		if len(field.Validate) == 0 {
			continue
		}
		value := f.formData[field.Name]
		if !validate.HasRule(field.Validate, validate.RuleRequired) && fields.IsEmptyValue(value) {
			continue
		}
		ruleset = append(ruleset, validate.FieldInput{
			Key:           field.Name,
			Label:         fieldLabel(*field),
			Value:         value,
			Rules:         field.Validate,
			ErrorMessages: field.ErrorMessages,
		})
	}
	return ruleset
}

// ID returns the form's id.
func (f *Form) ID() string { return f.id }

// Method returns the submission method the form processes.
func (f *Form) Method() string { return f.cfg.method }

// Action returns the configured action URL.
func (f *Form) Action() string { return f.cfg.action }

// IsUpload reports whether any field is upload-shaped, which forces
// multipart encoding on the form tag.
func (f *Form) IsUpload() bool { return f.isUpload }

// IsProcessed reports whether the current request cycle was routed to this
// form. It stays false for wrong-method and wrong-id requests.
func (f *Form) IsProcessed() bool { return f.processed }

// Validity returns the submission outcome; ValidityUnknown until a routed
// submission has been processed.
func (f *Form) Validity() Validity { return f.validity }

// Messages returns the failure messages from the last processed
// submission: either the token-failure message or the validator's
// aggregated field errors.
func (f *Form) Messages() []string {
	return append([]string(nil), f.messages...)
}

// FormData returns a copy of the reconciled form data, including the
// nomad_form_id discriminator.
func (f *Form) FormData() map[string]any {
	data := make(map[string]any, len(f.formData))
	for k, v := range f.formData {
		data[k] = v
	}
	return data
}

// Fields returns the fields as they should currently display: the
// normalized descriptors with any submitted values and checked state
// merged on.
func (f *Form) Fields() []fields.Field {
	list := make([]fields.Field, 0, len(f.fields))
	for _, field := range f.fields {
		if f.view != nil {
			field = mergeSubmission(field, f.view)
		}
		list = append(list, field.Clone())
	}
	return list
}

func fieldLabel(f fields.Field) string {
	if f.Label != "" {
		return f.Label
	}
	return f.Name
}

func cloneFields(list []fields.Field) []fields.Field {
	cloned := make([]fields.Field, 0, len(list))
	for _, f := range list {
		cloned = append(cloned, f.Clone())
	}
	return cloned
}
