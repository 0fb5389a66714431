package form

import (
	"github.com/microcosm-cc/bluemonday"

	"github.com/nomadlabs/nomadforms/pkg/fields"
)

// markupPolicy bounds the HTML callers may embed in field labels,
// descriptions and the before/after markup slots. User-generated-content
// policy: formatting and links survive, scripts and event handlers do not.
var markupPolicy = bluemonday.UGCPolicy()

// sanitizeField scrubs every caller-supplied markup slot on a field. Field
// values are never sanitized here; they are escaped at render time instead.
func sanitizeField(f fields.Field) fields.Field {
	f.Label = markupPolicy.Sanitize(f.Label)
	f.Description = markupPolicy.Sanitize(f.Description)
	f.Text = markupPolicy.Sanitize(f.Text)
	f.Before = markupPolicy.Sanitize(f.Before)
	f.After = markupPolicy.Sanitize(f.After)
	return f
}
