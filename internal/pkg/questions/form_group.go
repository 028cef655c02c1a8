package questions

import (
	"errors"
	"fmt"

	"github.com/goccy/go-json"
)

var ErrInvalidFormGroup = errors.New("invalid form group")

type FieldType string

const (
	FieldTypeTextarea      FieldType = "textarea"
	FieldTypeRadioGroup    FieldType = "radios"
	FieldTypeCheckboxGroup FieldType = "checkboxes"
	FieldTypeTextInput     FieldType = "textInput"
	FieldTypeFileUpload    FieldType = "fileUpload"
)

// Validatable is implemented by every input field a question can carry.
type Validatable interface {
	Name() string
	SetName(name string)
	Label() string
	Validation() *ValidationRule
	SetValidation(rule *ValidationRule)
}

// FormField is a Validatable restricted to the variants of this package.
type FormField interface {
	Validatable
	FieldType() FieldType
	isFormField()
}

type Label struct {
	Text          string `json:"text"`
	IsPageHeading bool   `json:"isPageHeading,omitempty"`
}

type Legend struct {
	Text          string `json:"text"`
	IsPageHeading bool   `json:"isPageHeading,omitempty"`
}

type Fieldset struct {
	Legend Legend `json:"legend"`
}

type Hint struct {
	Text string `json:"text"`
}

type Option struct {
	Value string `json:"value"`
	Text  string `json:"text"`
	Hint  *Hint  `json:"hint,omitempty"`
}

// LabelledField is the shared shape of single-label inputs.
type LabelledField struct {
	FieldName  string          `json:"name"`
	FieldLabel Label           `json:"label"`
	Hint       *Hint           `json:"hint,omitempty"`
	Rule       *ValidationRule `json:"validation,omitempty"`
}

func (f *LabelledField) Name() string                       { return f.FieldName }
func (f *LabelledField) SetName(name string)                { f.FieldName = name }
func (f *LabelledField) Label() string                      { return f.FieldLabel.Text }
func (f *LabelledField) Validation() *ValidationRule        { return f.Rule }
func (f *LabelledField) SetValidation(rule *ValidationRule) { f.Rule = rule }

// ChoiceGroup is the shared shape of radio and checkbox groups. Its label is
// the fieldset legend.
type ChoiceGroup struct {
	FieldName string          `json:"name"`
	Fieldset  Fieldset        `json:"fieldset"`
	Hint      *Hint           `json:"hint,omitempty"`
	Items     []Option        `json:"items"`
	Rule      *ValidationRule `json:"validation,omitempty"`
}

func (g *ChoiceGroup) Name() string                       { return g.FieldName }
func (g *ChoiceGroup) SetName(name string)                { g.FieldName = name }
func (g *ChoiceGroup) Label() string                      { return g.Fieldset.Legend.Text }
func (g *ChoiceGroup) Validation() *ValidationRule        { return g.Rule }
func (g *ChoiceGroup) SetValidation(rule *ValidationRule) { g.Rule = rule }

func (g *ChoiceGroup) HasOption(value string) bool {
	for _, item := range g.Items {
		if item.Value == value {
			return true
		}
	}
	return false
}

type Textarea struct {
	LabelledField
	Rows int `json:"rows,omitempty"`
}

type TextInput struct {
	LabelledField
	InputType    string `json:"inputType,omitempty"`
	Autocomplete string `json:"autocomplete,omitempty"`
}

type FileUpload struct {
	LabelledField
	Multiple bool     `json:"multiple,omitempty"`
	Accept   []string `json:"accept,omitempty"`
}

type RadioGroup struct {
	ChoiceGroup
}

type CheckboxGroup struct {
	ChoiceGroup
}

func (*Textarea) FieldType() FieldType      { return FieldTypeTextarea }
func (*TextInput) FieldType() FieldType     { return FieldTypeTextInput }
func (*FileUpload) FieldType() FieldType    { return FieldTypeFileUpload }
func (*RadioGroup) FieldType() FieldType    { return FieldTypeRadioGroup }
func (*CheckboxGroup) FieldType() FieldType { return FieldTypeCheckboxGroup }

func (*Textarea) isFormField()      {}
func (*TextInput) isFormField()     {}
func (*FileUpload) isFormField()    {}
func (*RadioGroup) isFormField()    {}
func (*CheckboxGroup) isFormField() {}

// FormGroup carries at most one input field.
type FormGroup struct {
	field FormField
}

func NewFormGroup(field FormField) *FormGroup {
	return &FormGroup{field: field}
}

// Field returns the carried field, or nil for an empty group.
func (g *FormGroup) Field() FormField {
	if g == nil {
		return nil
	}
	return g.field
}

func (g *FormGroup) IsEmpty() bool {
	return g.Field() == nil
}

type formGroupEnvelope struct {
	Textarea      *Textarea      `json:"textarea,omitempty"`
	RadioGroup    *RadioGroup    `json:"radios,omitempty"`
	CheckboxGroup *CheckboxGroup `json:"checkboxes,omitempty"`
	TextInput     *TextInput     `json:"textInput,omitempty"`
	FileUpload    *FileUpload    `json:"fileUpload,omitempty"`
}

func (g FormGroup) MarshalJSON() ([]byte, error) {
	var envelope formGroupEnvelope
	switch f := g.field.(type) {
	case nil:
	case *Textarea:
		envelope.Textarea = f
	case *RadioGroup:
		envelope.RadioGroup = f
	case *CheckboxGroup:
		envelope.CheckboxGroup = f
	case *TextInput:
		envelope.TextInput = f
	case *FileUpload:
		envelope.FileUpload = f
	default:
		return nil, fmt.Errorf("%w: unsupported field %T", ErrInvalidFormGroup, g.field)
	}
	return json.Marshal(envelope)
}

func (g *FormGroup) UnmarshalJSON(data []byte) error {
	var envelope formGroupEnvelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		return err
	}

	var populated []FormField
	if envelope.Textarea != nil {
		populated = append(populated, envelope.Textarea)
	}
	if envelope.RadioGroup != nil {
		populated = append(populated, envelope.RadioGroup)
	}
	if envelope.CheckboxGroup != nil {
		populated = append(populated, envelope.CheckboxGroup)
	}
	if envelope.TextInput != nil {
		populated = append(populated, envelope.TextInput)
	}
	if envelope.FileUpload != nil {
		populated = append(populated, envelope.FileUpload)
	}

	switch len(populated) {
	case 0:
		g.field = nil
	case 1:
		g.field = populated[0]
	default:
		return fmt.Errorf("%w: expected at most one field, got %d", ErrInvalidFormGroup, len(populated))
	}
	return nil
}
