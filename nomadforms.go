// Package nomadforms is the public entry point: it re-exports the form
// engine's core types and adds convenience constructors, including a YAML
// definition loader for declaratively described forms.
package nomadforms

import (
	"github.com/nomadlabs/nomadforms/pkg/fields"
	"github.com/nomadlabs/nomadforms/pkg/form"
)

// Core types, aliased so most callers only import this package.
type (
	Form      = form.Form
	Option    = form.Option
	Hooks     = form.Hooks
	Injection = form.Injection
	Request   = form.Request
	Field     = fields.Field
	Choice    = fields.Choice
	Options   = fields.Options
)

// Commonly used options and helpers, re-exported so simple callers need a
// single import.
var (
	WithFields        = form.WithFields
	WithAction        = form.WithAction
	WithMethod        = form.WithMethod
	WithCallback      = form.WithCallback
	WithRequest       = form.WithRequest
	WithHooks         = form.WithHooks
	WithInjections    = form.WithInjections
	WithoutNonce      = form.WithoutNonce
	WithNonceProvider = form.WithNonceProvider
	WithValidator     = form.WithValidator
	WithDiagnostics   = form.WithDiagnostics
	FromHTTP          = form.FromHTTP
)

// New builds a form from its id and options.
func New(id string, opts ...Option) (*Form, error) {
	return form.New(id, opts...)
}

// Fields builds a form that renders only its fields, without the form tag
// or actions block, for embedding in an externally-managed form. Submission
// routing and processing work the same as for a full form.
func Fields(id string, opts ...Option) (*Form, error) {
	opts = append(opts, form.WithoutFormTag(), form.WithoutSubmitButton())
	return form.New(id, opts...)
}

// Opt builds a choice from a value and its label.
func Opt(value, label string) Choice {
	return fields.Opt(value, label)
}
