package form

import (
	"log/slog"

	"github.com/nomadlabs/nomadforms/pkg/fields"
	"github.com/nomadlabs/nomadforms/pkg/nonce"
	"github.com/nomadlabs/nomadforms/pkg/validate"
)

// Callback receives the reconciled form data after a successful validation
// pass. The mapping includes the nomad_form_id discriminator.
type Callback func(formData map[string]any)

// Option customises a form's configuration.
type Option func(*config)

type config struct {
	action             string
	method             string
	callback           Callback
	fieldList          []fields.Field
	injections         []Injection
	nonce              bool
	formTag            bool
	submitButton       bool
	submitText         string
	resetButton        bool
	resetText          string
	cancelButton       bool
	cancelText         string
	cancelHref         string
	successMessage     string
	errorMessage       string
	nonceMessage       string
	allowModifications bool
	labelsPosition     string
	labelsAlignment    string
	labelsSameWidth    bool

	hooks         *Hooks
	validator     validate.Validator
	nonceProvider nonce.Provider
	diag          *slog.Logger
	request       *Request
}

func defaultConfig() config {
	return config{
		method:             "POST",
		nonce:              true,
		formTag:            true,
		submitButton:       true,
		submitText:         "Submit",
		resetText:          "Reset",
		cancelText:         "Cancel",
		cancelHref:         "/",
		successMessage:     "Success! Your form has been submitted.",
		errorMessage:       "Sorry, there was a problem submitting your form: ",
		nonceMessage:       "Invalid form submission. Please try again.",
		allowModifications: true,
		labelsPosition:     "top",
		labelsAlignment:    "left",
	}
}

// WithFields supplies the form's field descriptors, in render order.
func WithFields(list ...fields.Field) Option {
	return func(cfg *config) {
		cfg.fieldList = append(cfg.fieldList, list...)
	}
}

// WithCallback registers the function invoked with the reconciled form data
// after a valid submission.
func WithCallback(cb Callback) Option {
	return func(cfg *config) {
		cfg.callback = cb
	}
}

// WithAction sets the form's action URL.
func WithAction(action string) Option {
	return func(cfg *config) {
		cfg.action = action
	}
}

// WithMethod overrides the submission method (default POST). A form only
// processes requests whose method matches.
func WithMethod(method string) Option {
	return func(cfg *config) {
		if method != "" {
			cfg.method = method
		}
	}
}

// WithInjections appends injection directives applied at construction.
func WithInjections(injections ...Injection) Option {
	return func(cfg *config) {
		cfg.injections = append(cfg.injections, injections...)
	}
}

// WithoutNonce disables anti-forgery token emission and verification.
func WithoutNonce() Option {
	return func(cfg *config) {
		cfg.nonce = false
	}
}

// WithNonceProvider injects the token issue/verify capability.
func WithNonceProvider(provider nonce.Provider) Option {
	return func(cfg *config) {
		cfg.nonceProvider = provider
	}
}

// WithValidator injects the field validation collaborator. The default is
// validate.NewPlayground().
func WithValidator(v validate.Validator) Option {
	return func(cfg *config) {
		cfg.validator = v
	}
}

// WithDiagnostics injects the logger used for non-fatal configuration
// warnings. Defaults to slog.Default().
func WithDiagnostics(diag *slog.Logger) Option {
	return func(cfg *config) {
		cfg.diag = diag
	}
}

// WithHooks registers the extension surface.
func WithHooks(h *Hooks) Option {
	return func(cfg *config) {
		cfg.hooks = h
	}
}

// WithRequest provides the submission context for the current request. A
// form constructed without one renders in its initial state.
func WithRequest(r Request) Option {
	return func(cfg *config) {
		req := r
		cfg.request = &req
	}
}

// WithoutModifications locks the form against hook-driven changes: field
// list filters, injections, attribute filters and the is-valid override are
// all skipped.
func WithoutModifications() Option {
	return func(cfg *config) {
		cfg.allowModifications = false
	}
}

// WithoutFormTag renders the form chrome inside a div instead of a form
// tag, for embedding fields in an externally-managed page.
func WithoutFormTag() Option {
	return func(cfg *config) {
		cfg.formTag = false
	}
}

// WithoutSubmitButton suppresses the form actions block.
func WithoutSubmitButton() Option {
	return func(cfg *config) {
		cfg.submitButton = false
	}
}

// WithSubmitText overrides the submit button label.
func WithSubmitText(text string) Option {
	return func(cfg *config) {
		if text != "" {
			cfg.submitText = text
		}
	}
}

// WithResetButton enables the reset button, optionally overriding its label.
func WithResetButton(text string) Option {
	return func(cfg *config) {
		cfg.resetButton = true
		if text != "" {
			cfg.resetText = text
		}
	}
}

// WithCancelButton enables the cancel link with the given label and target.
func WithCancelButton(text, href string) Option {
	return func(cfg *config) {
		cfg.cancelButton = true
		if text != "" {
			cfg.cancelText = text
		}
		if href != "" {
			cfg.cancelHref = href
		}
	}
}

// WithMessages overrides the success and error banner text.
func WithMessages(success, failure string) Option {
	return func(cfg *config) {
		if success != "" {
			cfg.successMessage = success
		}
		if failure != "" {
			cfg.errorMessage = failure
		}
	}
}

// WithNonceMessage overrides the token-failure message.
func WithNonceMessage(message string) Option {
	return func(cfg *config) {
		if message != "" {
			cfg.nonceMessage = message
		}
	}
}

// WithLabels configures label placement ("top" or "inline") and text
// alignment ("left", "center", "right").
func WithLabels(position, alignment string) Option {
	return func(cfg *config) {
		if position != "" {
			cfg.labelsPosition = position
		}
		if alignment != "" {
			cfg.labelsAlignment = alignment
		}
	}
}

// WithSameWidthLabels gives inline labels a shared width.
func WithSameWidthLabels() Option {
	return func(cfg *config) {
		cfg.labelsSameWidth = true
	}
}
