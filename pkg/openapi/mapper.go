// Package openapi derives form field descriptors from an OpenAPI
// operation's request body schema, so a form can be scaffolded from an API
// contract instead of written by hand.
package openapi

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/nomadlabs/nomadforms/pkg/fields"
	"github.com/nomadlabs/nomadforms/pkg/validate"
)

// ErrOperationNotFound reports an operation id absent from the document.
var ErrOperationNotFound = errors.New("openapi: operation not found")

// requestContentTypes are the media types inspected for a request schema,
// in preference order.
var requestContentTypes = []string{
	"application/x-www-form-urlencoded",
	"multipart/form-data",
	"application/json",
}

// LoadDocument parses an OpenAPI 3 document from raw bytes.
func LoadDocument(ctx context.Context, data []byte) (*openapi3.T, error) {
	if len(data) == 0 {
		return nil, errors.New("openapi: document payload is empty")
	}
	loader := &openapi3.Loader{Context: ctx, IsExternalRefsAllowed: false}
	doc, err := loader.LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("openapi: load document: %w", err)
	}
	return doc, nil
}

// FieldsFromOperation maps the request body schema of the operation with the
// given id onto a field descriptor list, one field per top-level property.
// Property names sort alphabetically with required properties first so the
// derived form is deterministic.
func FieldsFromOperation(ctx context.Context, doc *openapi3.T, operationID string) ([]fields.Field, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	operation := findOperation(doc, operationID)
	if operation == nil {
		return nil, fmt.Errorf("openapi: %w: %s", ErrOperationNotFound, operationID)
	}

	schema := requestSchema(operation)
	if schema == nil {
		return nil, fmt.Errorf("openapi: operation %s has no request schema", operationID)
	}

	required := make(map[string]struct{}, len(schema.Required))
	for _, name := range schema.Required {
		required[name] = struct{}{}
	}

	names := make([]string, 0, len(schema.Properties))
	for name := range schema.Properties {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		_, ri := required[names[i]]
		_, rj := required[names[j]]
		if ri != rj {
			return ri
		}
		return names[i] < names[j]
	})

	list := make([]fields.Field, 0, len(names))
	for _, name := range names {
		ref := schema.Properties[name]
		if ref == nil || ref.Value == nil {
			continue
		}
		_, isRequired := required[name]
		list = append(list, mapProperty(name, ref.Value, isRequired))
	}
	if len(list) == 0 {
		return nil, fmt.Errorf("openapi: operation %s request schema has no properties", operationID)
	}
	return list, nil
}

func findOperation(doc *openapi3.T, operationID string) *openapi3.Operation {
	if doc == nil || doc.Paths == nil {
		return nil
	}
	for _, item := range doc.Paths.Map() {
		if item == nil {
			continue
		}
		for _, operation := range item.Operations() {
			if operation != nil && operation.OperationID == operationID {
				return operation
			}
		}
	}
	return nil
}

func requestSchema(operation *openapi3.Operation) *openapi3.Schema {
	if operation.RequestBody == nil || operation.RequestBody.Value == nil {
		return nil
	}
	for _, contentType := range requestContentTypes {
		media := operation.RequestBody.Value.Content.Get(contentType)
		if media != nil && media.Schema != nil && media.Schema.Value != nil {
			return media.Schema.Value
		}
	}
	return nil
}

// mapProperty turns one schema property into a field descriptor, carrying
// constraints over as validation rules.
func mapProperty(name string, schema *openapi3.Schema, required bool) fields.Field {
	field := fields.Field{
		Name:        name,
		Label:       schema.Title,
		Description: schema.Description,
		Type:        fieldType(schema),
	}
	if field.Label == "" {
		field.Label = labelFromName(name)
	}
	if schema.Default != nil {
		field.Value = fields.ValueString(schema.Default)
	}

	switch field.Type {
	case fields.TypeSelect:
		field.Options = enumOptions(schema.Enum)
	case fields.TypeCheckboxes:
		if schema.Items != nil && schema.Items.Value != nil {
			field.Options = enumOptions(schema.Items.Value.Enum)
		}
	case fields.TypeCheckbox:
		field.Value = fields.TruthySentinel
	}

	if required {
		field.Validate = append(field.Validate, validate.RuleRequired)
	}
	field.Validate = append(field.Validate, constraintRules(schema)...)
	return field
}

func fieldType(schema *openapi3.Schema) fields.Type {
	types := schema.Type
	switch {
	case types.Is(openapi3.TypeBoolean):
		return fields.TypeCheckbox
	case types.Is(openapi3.TypeInteger), types.Is(openapi3.TypeNumber):
		return fields.TypeNumber
	case types.Is(openapi3.TypeArray):
		return fields.TypeCheckboxes
	}
	if len(schema.Enum) > 0 {
		return fields.TypeSelect
	}
	switch schema.Format {
	case "email":
		return fields.TypeEmail
	case "password":
		return fields.TypePassword
	case "uri", "url":
		return fields.TypeURL
	case "date", "date-time":
		return fields.TypeDate
	case "binary":
		return fields.TypeUpload
	}
	if schema.Format == "" && schema.MaxLength == nil && strings.Contains(schema.Description, "\n") {
		return fields.TypeTextarea
	}
	return fields.TypeText
}

func constraintRules(schema *openapi3.Schema) []string {
	var rules []string
	if schema.MinLength > 0 {
		rules = append(rules, validate.RuleMinLength+":"+strconv.FormatUint(schema.MinLength, 10))
	}
	if schema.MaxLength != nil {
		rules = append(rules, validate.RuleMaxLength+":"+strconv.FormatUint(*schema.MaxLength, 10))
	}
	if schema.Min != nil {
		rules = append(rules, validate.RuleMin+":"+strconv.FormatFloat(*schema.Min, 'f', -1, 64))
	}
	if schema.Max != nil {
		rules = append(rules, validate.RuleMax+":"+strconv.FormatFloat(*schema.Max, 'f', -1, 64))
	}
	if schema.Pattern != "" {
		rules = append(rules, validate.RuleRegex+":"+schema.Pattern)
	}
	return rules
}

func enumOptions(enum []any) fields.Options {
	options := make(fields.Options, 0, len(enum))
	for _, entry := range enum {
		value := fields.ValueString(entry)
		options = append(options, fields.Opt(value, labelFromName(value)))
	}
	return options
}

// labelFromName produces a human label from a snake_case or kebab-case
// property name.
func labelFromName(name string) string {
	parts := strings.FieldsFunc(name, func(r rune) bool {
		return r == '_' || r == '-'
	})
	for i, part := range parts {
		if part == "" {
			continue
		}
		parts[i] = strings.ToUpper(part[:1]) + part[1:]
	}
	return strings.Join(parts, " ")
}
