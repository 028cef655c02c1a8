package questions

import (
	"fmt"
	"strings"
)

// QuestionContent is the full display and input payload of one question.
type QuestionContent struct {
	Heading   *string       `json:"heading,omitempty"`
	Body      ContentBlocks `json:"body,omitempty"`
	Help      []HelpItem    `json:"help,omitempty"`
	Sidebar   *Sidebar      `json:"sidebar,omitempty"`
	FormGroup *FormGroup    `json:"formGroup,omitempty"`
}

// ContentBlocks returns every block of the question in display order: the
// body, then each help item's content, then the sidebar body.
func (q QuestionContent) ContentBlocks() []ContentBlock {
	var blocks []ContentBlock
	blocks = append(blocks, q.Body...)
	for _, help := range q.Help {
		blocks = append(blocks, help.Content...)
	}
	if q.Sidebar != nil {
		blocks = append(blocks, q.Sidebar.Body...)
	}
	return blocks
}

// Field returns the question's input field, or nil when it has none.
func (q QuestionContent) Field() FormField {
	return q.FormGroup.Field()
}

// Check reports structural problems a renderer or validator cannot recover
// from: a field without a name or with an unusable rule.
func (q QuestionContent) Check() error {
	field := q.Field()
	if field == nil {
		return nil
	}
	if strings.TrimSpace(field.Name()) == "" {
		return fmt.Errorf("%w: %s field has no name", ErrInvalidFormGroup, field.FieldType())
	}
	if err := field.Validation().Check(); err != nil {
		return fmt.Errorf("%w: field %q: %v", ErrInvalidFormGroup, field.Name(), err)
	}
	return nil
}
