package nomadforms

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/nomadlabs/nomadforms/pkg/fields"
	"github.com/nomadlabs/nomadforms/pkg/form"
)

// Definition is a declarative form description parsed from YAML. Field
// order in the document is preserved as render order.
type Definition struct {
	ID      string
	Fields  []fields.Field
	Options []form.Option
}

// Form builds the form the definition describes, with extra options
// appended after the definition's own.
func (d *Definition) Form(extra ...form.Option) (*form.Form, error) {
	opts := make([]form.Option, 0, len(d.Options)+len(extra)+1)
	opts = append(opts, form.WithFields(d.Fields...))
	opts = append(opts, d.Options...)
	opts = append(opts, extra...)
	return form.New(d.ID, opts...)
}

// FromYAML parses a definition document and builds its form in one step.
func FromYAML(data []byte, extra ...form.Option) (*form.Form, error) {
	def, err := ParseDefinition(data)
	if err != nil {
		return nil, err
	}
	return def.Form(extra...)
}

type definitionDoc struct {
	ID             string    `yaml:"id"`
	Action         string    `yaml:"action"`
	Method         string    `yaml:"method"`
	Nonce          *bool     `yaml:"nonce"`
	SubmitText     string    `yaml:"submit_text"`
	ResetText      string    `yaml:"reset_text"`
	CancelText     string    `yaml:"cancel_text"`
	CancelHref     string    `yaml:"cancel_href"`
	SuccessMessage string    `yaml:"success_message"`
	ErrorMessage   string    `yaml:"error_message"`
	NonceMessage   string    `yaml:"nonce_message"`
	Labels         labelsDoc `yaml:"labels"`
	Fields         yaml.Node `yaml:"fields"`
}

type labelsDoc struct {
	Position  string `yaml:"position"`
	Alignment string `yaml:"alignment"`
	SameWidth bool   `yaml:"same_width"`
}

type fieldDoc struct {
	Type            string            `yaml:"type"`
	Label           string            `yaml:"label"`
	Description     string            `yaml:"description"`
	Text            string            `yaml:"text"`
	Value           *string           `yaml:"value"`
	Default         *string           `yaml:"default"`
	Options         yaml.Node         `yaml:"options"`
	Multiple        bool              `yaml:"multiple"`
	DisabledOptions []string          `yaml:"disabled_options"`
	CheckedOptions  []string          `yaml:"checked_options"`
	Checked         bool              `yaml:"checked"`
	Validate        []string          `yaml:"validate"`
	ErrorMessages   map[string]string `yaml:"error_messages"`
	Format          string            `yaml:"format"`
	Separator       string            `yaml:"separator"`
	Inline          bool              `yaml:"inline"`
	HideLabel       bool              `yaml:"hide_label"`
	Placeholder     string            `yaml:"placeholder"`
	Before          string            `yaml:"before"`
	After           string            `yaml:"after"`
	Attrs           map[string]string `yaml:"attrs"`
}

// ParseDefinition parses a YAML form definition. The fields block is a
// mapping of field name to descriptor; mapping order is preserved, which is
// why it decodes through yaml.Node rather than a Go map.
func ParseDefinition(data []byte) (*Definition, error) {
	var doc definitionDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("nomadforms: parse definition: %w", err)
	}
	if doc.ID == "" {
		return nil, fmt.Errorf("nomadforms: definition is missing an id")
	}

	list, err := parseFields(&doc.Fields)
	if err != nil {
		return nil, err
	}

	def := &Definition{ID: doc.ID, Fields: list}
	if doc.Action != "" {
		def.Options = append(def.Options, form.WithAction(doc.Action))
	}
	if doc.Method != "" {
		def.Options = append(def.Options, form.WithMethod(doc.Method))
	}
	if doc.Nonce != nil && !*doc.Nonce {
		def.Options = append(def.Options, form.WithoutNonce())
	}
	if doc.SubmitText != "" {
		def.Options = append(def.Options, form.WithSubmitText(doc.SubmitText))
	}
	if doc.ResetText != "" {
		def.Options = append(def.Options, form.WithResetButton(doc.ResetText))
	}
	if doc.CancelText != "" || doc.CancelHref != "" {
		def.Options = append(def.Options, form.WithCancelButton(doc.CancelText, doc.CancelHref))
	}
	if doc.SuccessMessage != "" || doc.ErrorMessage != "" {
		def.Options = append(def.Options, form.WithMessages(doc.SuccessMessage, doc.ErrorMessage))
	}
	if doc.NonceMessage != "" {
		def.Options = append(def.Options, form.WithNonceMessage(doc.NonceMessage))
	}
	if doc.Labels.Position != "" || doc.Labels.Alignment != "" {
		def.Options = append(def.Options, form.WithLabels(doc.Labels.Position, doc.Labels.Alignment))
	}
	if doc.Labels.SameWidth {
		def.Options = append(def.Options, form.WithSameWidthLabels())
	}
	return def, nil
}

func parseFields(node *yaml.Node) ([]fields.Field, error) {
	if node.Kind == 0 || node.IsZero() {
		return nil, fmt.Errorf("nomadforms: definition has no fields block")
	}
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("nomadforms: fields block must be a mapping, got %s at line %d",
			nodeKind(node.Kind), node.Line)
	}

	list := make([]fields.Field, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		nameNode, specNode := node.Content[i], node.Content[i+1]

		var spec fieldDoc
		if err := specNode.Decode(&spec); err != nil {
			return nil, fmt.Errorf("nomadforms: field %q: %w", nameNode.Value, err)
		}
		field, err := buildField(nameNode.Value, spec)
		if err != nil {
			return nil, err
		}
		list = append(list, field)
	}
	return list, nil
}

func buildField(name string, spec fieldDoc) (fields.Field, error) {
	field := fields.Field{
		Name:            name,
		Type:            fields.Type(spec.Type),
		Label:           spec.Label,
		Description:     spec.Description,
		Text:            spec.Text,
		Multiple:        spec.Multiple,
		DisabledOptions: spec.DisabledOptions,
		CheckedOptions:  spec.CheckedOptions,
		Checked:         spec.Checked,
		Validate:        spec.Validate,
		ErrorMessages:   spec.ErrorMessages,
		Format:          spec.Format,
		Separator:       spec.Separator,
		Inline:          spec.Inline,
		HideLabel:       spec.HideLabel,
		Placeholder:     spec.Placeholder,
		Before:          spec.Before,
		After:           spec.After,
		Attrs:           spec.Attrs,
	}
	if spec.Value != nil {
		field.Value = *spec.Value
	}
	if spec.Default != nil {
		field.Default = *spec.Default
	}

	options, err := parseOptions(&spec.Options, name)
	if err != nil {
		return fields.Field{}, err
	}
	field.Options = options
	return field, nil
}

// parseOptions accepts either a mapping of value to label or a plain
// sequence of values labeled by themselves.
func parseOptions(node *yaml.Node, fieldName string) (fields.Options, error) {
	if node.Kind == 0 || node.IsZero() {
		return nil, nil
	}
	switch node.Kind {
	case yaml.MappingNode:
		options := make(fields.Options, 0, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			options = append(options, fields.Opt(node.Content[i].Value, node.Content[i+1].Value))
		}
		return options, nil
	case yaml.SequenceNode:
		options := make(fields.Options, 0, len(node.Content))
		for _, entry := range node.Content {
			options = append(options, fields.Opt(entry.Value, entry.Value))
		}
		return options, nil
	default:
		return nil, fmt.Errorf("nomadforms: field %q: options must be a mapping or sequence", fieldName)
	}
}

func nodeKind(kind yaml.Kind) string {
	switch kind {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown"
	}
}
