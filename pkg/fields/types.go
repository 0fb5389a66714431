package fields

// Type identifies a form field variant. The set is closed: every addressable
// field type has a constant here and an entry in the component registry.
type Type string

const (
	TypeAmPm                       Type = "am-pm"
	TypeButtonGroup                Type = "button-group"
	TypeCheckbox                   Type = "checkbox"
	TypeCheckboxes                 Type = "checkboxes"
	TypeCountry                    Type = "country"
	TypeDate                       Type = "date"
	TypeDay                        Type = "day"
	TypeEmail                      Type = "email"
	TypeEnableDisableButtonGroup   Type = "enable-disable-button-group"
	TypeEnabledDisabledButtonGroup Type = "enabled-disabled-button-group"
	TypeHidden                     Type = "hidden"
	TypeHour                       Type = "hour"
	TypeMinute                     Type = "minute"
	TypeMonth                      Type = "month"
	TypeNumber                     Type = "number"
	TypeOnOffButtonGroup           Type = "on-off-button-group"
	TypePassword                   Type = "password"
	TypePercentage                 Type = "percentage"
	TypePhone                      Type = "phone"
	TypeRadio                      Type = "radio"
	TypeRadios                     Type = "radios"
	TypeSelect                     Type = "select"
	TypeState                      Type = "state"
	TypeText                       Type = "text"
	TypeTextarea                   Type = "textarea"
	TypeTime                       Type = "time"
	TypeToggle                     Type = "toggle"
	TypeToggles                    Type = "toggles"
	TypeUpload                     Type = "upload"
	TypeURL                        Type = "url"
	TypeWeekday                    Type = "weekday"
	TypeYear                       Type = "year"
	TypeYesNoButtonGroup           Type = "yes-no-button-group"

	// TypeInput is the abstract base the single-value input variants build
	// on. It is not addressable: the normalizer rejects descriptors that use
	// it directly.
	TypeInput Type = "input"

	// TypeFile aliases the upload field.
	TypeFile Type = "upload"
)

// ReservedName is the hidden discriminator every rendered form emits so a
// submission can be routed back to the form instance that produced it.
// Descriptors must not claim it.
const ReservedName = "nomad_form_id"

// choiceTypes are the field types that receive an inferred "choices" rule.
var choiceTypes = map[Type]struct{}{
	TypeAmPm:                       {},
	TypeButtonGroup:                {},
	TypeCheckbox:                   {},
	TypeCheckboxes:                 {},
	TypeCountry:                    {},
	TypeDay:                        {},
	TypeEnableDisableButtonGroup:   {},
	TypeEnabledDisabledButtonGroup: {},
	TypeHour:                       {},
	TypeMinute:                     {},
	TypeMonth:                      {},
	TypeOnOffButtonGroup:           {},
	TypeRadio:                      {},
	TypeRadios:                     {},
	TypeSelect:                     {},
	TypeState:                      {},
	TypeToggle:                     {},
	TypeToggles:                    {},
	TypeWeekday:                    {},
	TypeYesNoButtonGroup:           {},
}

// emailTypes receive an inferred "email" rule.
var emailTypes = map[Type]struct{}{
	TypeEmail: {},
}

// numericTypes receive an inferred "numeric" rule.
var numericTypes = map[Type]struct{}{
	TypeNumber:     {},
	TypePercentage: {},
	TypeYear:       {},
}

// singularBooleanTypes submit nothing at all when unchecked, so reconciliation
// treats an absent key as "explicitly unchecked" rather than missing input.
var singularBooleanTypes = map[Type]struct{}{
	TypeCheckbox: {},
	TypeRadio:    {},
	TypeToggle:   {},
}

// optionBackedTypes require caller-supplied options to be useful. A missing
// options list is reported but non-fatal; the field renders degraded.
var optionBackedTypes = map[Type]struct{}{
	TypeButtonGroup: {},
	TypeCheckboxes:  {},
	TypeRadios:      {},
	TypeSelect:      {},
	TypeToggles:     {},
}

// IsChoice reports whether t gets choice-set membership validation inferred.
func (t Type) IsChoice() bool {
	_, ok := choiceTypes[t]
	return ok
}

// IsSingularBoolean reports whether t is a checkbox-like control whose absence
// from a submission means "unchecked".
func (t Type) IsSingularBoolean() bool {
	_, ok := singularBooleanTypes[t]
	return ok
}

// Valid reports whether t names a registered, addressable field type.
func (t Type) Valid() bool {
	if t == TypeInput {
		return false
	}
	_, ok := registry[t]
	return ok
}
