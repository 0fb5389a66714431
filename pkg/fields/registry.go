package fields

// component describes one field variant: the implementation bases it builds
// on (emitted as extra container classes), the attributes it may render, and
// its control renderer. The registry is the closed dispatch table replacing
// the original's load-on-demand class lookup.
type component struct {
	bases  []Type
	attrs  []string
	render func(Field) (string, error)
}

var (
	inputTextAttrs = []string{
		"autofocus", "disabled", "maxlength", "minlength", "pattern",
		"placeholder", "readonly", "required", "size",
	}
	inputPlainAttrs = []string{
		"autofocus", "disabled", "placeholder", "readonly", "required", "size",
	}
	inputNumberAttrs = []string{
		"autofocus", "disabled", "maxlength", "minlength", "placeholder",
		"readonly", "required", "size", "min", "max",
	}
	inputUploadAttrs = []string{
		"accept", "autofocus", "disabled", "placeholder", "required", "size",
	}
	selectAttrs = []string{
		"autocomplete", "autofocus", "disabled", "multiple", "readonly",
		"required", "size",
	}
	checkableAttrs = []string{
		"autofocus", "disabled", "required", "checked",
	}
	textareaAttrs = []string{
		"autofocus", "cols", "disabled", "maxlength", "minlength",
		"placeholder", "readonly", "required", "rows", "spellcheck", "wrap",
	}
)

// The render functions consult the registry for their own attrs entry, so
// the map is populated in init rather than a composite literal.
var registry map[Type]component

func init() {
	registry = map[Type]component{
		TypeText:     {bases: []Type{TypeInput}, attrs: inputTextAttrs, render: renderInput},
		TypeEmail:    {bases: []Type{TypeInput}, attrs: inputTextAttrs, render: renderInput},
		TypePassword: {bases: []Type{TypeInput}, attrs: inputTextAttrs, render: renderInput},
		TypePhone:    {bases: []Type{TypeInput}, attrs: inputTextAttrs, render: renderInput},
		TypeURL:      {bases: []Type{TypeInput}, attrs: inputTextAttrs, render: renderInput},
		TypeHidden:   {bases: []Type{TypeInput}, attrs: inputPlainAttrs, render: renderInput},
		TypeDate:     {bases: []Type{TypeInput}, attrs: inputPlainAttrs, render: renderInput},
		TypeTime:     {bases: []Type{TypeInput}, attrs: inputPlainAttrs, render: renderInput},
		TypeNumber:   {bases: []Type{TypeInput}, attrs: inputNumberAttrs, render: renderInput},
		TypeUpload:   {bases: []Type{TypeInput}, attrs: inputUploadAttrs, render: renderInput},

		TypePercentage: {bases: []Type{TypeNumber, TypeInput}, attrs: inputNumberAttrs, render: renderPercentage},

		TypeTextarea: {attrs: textareaAttrs, render: renderTextarea},

		TypeSelect:  {attrs: selectAttrs, render: renderSelect},
		TypeAmPm:    {bases: []Type{TypeSelect}, attrs: selectAttrs, render: renderSelect},
		TypeCountry: {bases: []Type{TypeSelect}, attrs: selectAttrs, render: renderSelect},
		TypeDay:     {bases: []Type{TypeSelect}, attrs: selectAttrs, render: renderSelect},
		TypeHour:    {bases: []Type{TypeSelect}, attrs: selectAttrs, render: renderSelect},
		TypeMinute:  {bases: []Type{TypeSelect}, attrs: selectAttrs, render: renderSelect},
		TypeMonth:   {bases: []Type{TypeSelect}, attrs: selectAttrs, render: renderSelect},
		TypeState:   {bases: []Type{TypeSelect}, attrs: selectAttrs, render: renderSelect},
		TypeWeekday: {bases: []Type{TypeSelect}, attrs: selectAttrs, render: renderSelect},
		TypeYear:    {bases: []Type{TypeSelect}, attrs: selectAttrs, render: renderSelect},

		TypeCheckbox: {attrs: checkableAttrs, render: renderCheckable},
		TypeRadio:    {attrs: checkableAttrs, render: renderCheckable},
		TypeToggle:   {attrs: checkableAttrs, render: renderCheckable},

		TypeCheckboxes: {render: renderCheckableGroup},
		TypeRadios:     {render: renderCheckableGroup},
		TypeToggles:    {render: renderCheckableGroup},

		TypeButtonGroup:                {render: renderButtonGroup},
		TypeEnableDisableButtonGroup:   {bases: []Type{TypeButtonGroup}, render: renderButtonGroup},
		TypeEnabledDisabledButtonGroup: {bases: []Type{TypeButtonGroup}, render: renderButtonGroup},
		TypeOnOffButtonGroup:           {bases: []Type{TypeButtonGroup}, render: renderButtonGroup},
		TypeYesNoButtonGroup:           {bases: []Type{TypeButtonGroup}, render: renderButtonGroup},
	}
}
