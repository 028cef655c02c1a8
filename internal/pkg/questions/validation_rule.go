package questions

import (
	"fmt"
	"regexp"
)

type Constraint struct {
	Message string `json:"message,omitempty"`
}

type CountConstraint struct {
	Value   int    `json:"value"`
	Message string `json:"message,omitempty"`
}

type PatternConstraint struct {
	Value   string `json:"value"`
	Message string `json:"message,omitempty"`
}

type SizeConstraint struct {
	Value   int64  `json:"value"`
	Message string `json:"message,omitempty"`
}

type TypesConstraint struct {
	Values  []string `json:"values"`
	Message string   `json:"message,omitempty"`
}

// ValidationRule holds the constraints evaluated against one submitted field.
// Constraints are evaluated, and their errors reported, in field order.
type ValidationRule struct {
	Required      *Constraint        `json:"required,omitempty"`
	MinLength     *CountConstraint   `json:"minLength,omitempty"`
	MaxLength     *CountConstraint   `json:"maxLength,omitempty"`
	Pattern       *PatternConstraint `json:"pattern,omitempty"`
	MinSelected   *CountConstraint   `json:"minSelected,omitempty"`
	MaxSelected   *CountConstraint   `json:"maxSelected,omitempty"`
	MaxFileSize   *SizeConstraint    `json:"maxFileSize,omitempty"`
	AcceptedTypes *TypesConstraint   `json:"acceptedTypes,omitempty"`
}

func (r *ValidationRule) IsRequired() bool {
	return r != nil && r.Required != nil
}

// Check reports a rule that can never be satisfied or evaluated.
func (r *ValidationRule) Check() error {
	if r == nil {
		return nil
	}
	if r.MinLength != nil && r.MinLength.Value < 0 {
		return fmt.Errorf("minLength must not be negative")
	}
	if r.MaxLength != nil && r.MaxLength.Value < 0 {
		return fmt.Errorf("maxLength must not be negative")
	}
	if r.MinLength != nil && r.MaxLength != nil && r.MinLength.Value > r.MaxLength.Value {
		return fmt.Errorf("minLength %d exceeds maxLength %d", r.MinLength.Value, r.MaxLength.Value)
	}
	if r.MinSelected != nil && r.MaxSelected != nil && r.MinSelected.Value > r.MaxSelected.Value {
		return fmt.Errorf("minSelected %d exceeds maxSelected %d", r.MinSelected.Value, r.MaxSelected.Value)
	}
	if r.MaxFileSize != nil && r.MaxFileSize.Value <= 0 {
		return fmt.Errorf("maxFileSize must be positive")
	}
	if r.Pattern != nil {
		if _, err := regexp.Compile(r.Pattern.Value); err != nil {
			return fmt.Errorf("pattern: %w", err)
		}
	}
	return nil
}
