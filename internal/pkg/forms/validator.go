package forms

import (
	"path/filepath"
	"recognition-service/internal/pkg/constvars"
	"recognition-service/internal/pkg/dto/responses"
	"recognition-service/internal/pkg/questions"
	"regexp"
	"strings"
	"unicode/utf8"
)

// ValidateQuestion validates the submission against the question's form
// field. A question without a field always validates.
func ValidateQuestion(content questions.QuestionContent, submission Submission) responses.ValidationResponse {
	field := content.Field()
	if field == nil {
		return responses.NewValidationResponse(nil)
	}
	return responses.NewValidationResponse(ValidateField(field, submission))
}

// ValidateField evaluates the field's rule against its submitted value and
// returns one error per failed constraint, in constraint order. A missing
// value on a required field produces a single error and nothing else.
func ValidateField(field questions.FormField, submission Submission) []responses.ValidationErrorItemDto {
	if field == nil {
		return nil
	}
	value := submission[field.Name()]

	checker := fieldChecker{field: field, rule: field.Validation()}
	switch f := field.(type) {
	case *questions.Textarea:
		return checker.text(value)
	case *questions.TextInput:
		return checker.text(value)
	case *questions.RadioGroup:
		return checker.radio(&f.ChoiceGroup, value)
	case *questions.CheckboxGroup:
		return checker.checkbox(&f.ChoiceGroup, value)
	case *questions.FileUpload:
		return checker.file(f, value)
	}
	return nil
}

type fieldChecker struct {
	field  questions.FormField
	rule   *questions.ValidationRule
	errors []responses.ValidationErrorItemDto
}

func (c *fieldChecker) fail(message string) {
	c.errors = append(c.errors, responses.ValidationErrorItemDto{
		Field:   c.field.Name(),
		Message: message,
	})
}

func (c *fieldChecker) label() string {
	if label := strings.TrimSpace(c.field.Label()); label != "" {
		return label
	}
	return c.field.Name()
}

// missing reports whether evaluation should stop because nothing was
// submitted, recording the required error when the rule asks for one.
func (c *fieldChecker) missing(empty bool, requiredFormat string) bool {
	if !empty {
		return false
	}
	if c.rule.IsRequired() {
		c.fail(messageOr(c.rule.Required.Message, requiredFormat, strings.ToLower(c.label())))
	}
	return true
}

func (c fieldChecker) text(value FieldValue) []responses.ValidationErrorItemDto {
	values := value.nonBlank()
	if c.missing(len(values) == 0, defaultRequiredTextMessage) {
		return c.errors
	}
	if c.rule == nil {
		return c.errors
	}

	text := values[0]
	length := utf8.RuneCountInString(text)
	if c.rule.MinLength != nil && length < c.rule.MinLength.Value {
		c.fail(messageOr(c.rule.MinLength.Message, defaultMinLengthMessage, c.label(), c.rule.MinLength.Value))
	}
	if c.rule.MaxLength != nil && length > c.rule.MaxLength.Value {
		c.fail(messageOr(c.rule.MaxLength.Message, defaultMaxLengthMessage, c.label(), c.rule.MaxLength.Value))
	}
	if c.rule.Pattern != nil && !matches(c.rule.Pattern.Value, text) {
		c.fail(messageOr(c.rule.Pattern.Message, defaultPatternMessage, c.label()))
	}
	return c.errors
}

func (c fieldChecker) radio(group *questions.ChoiceGroup, value FieldValue) []responses.ValidationErrorItemDto {
	values := value.nonBlank()
	if c.missing(len(values) == 0, defaultRequiredChoiceMessage) {
		return c.errors
	}

	if len(values) > 1 {
		c.fail(messageOr("", defaultSingleValueMessage, strings.ToLower(c.label())))
	}
	c.options(group, values)
	return c.errors
}

func (c fieldChecker) checkbox(group *questions.ChoiceGroup, value FieldValue) []responses.ValidationErrorItemDto {
	values := value.nonBlank()
	if c.missing(len(values) == 0, defaultRequiredChoiceMessage) {
		return c.errors
	}

	if c.rule != nil {
		if c.rule.MinSelected != nil && len(values) < c.rule.MinSelected.Value {
			c.fail(messageOr(c.rule.MinSelected.Message, defaultMinSelectedMessage, c.rule.MinSelected.Value, strings.ToLower(c.label())))
		}
		if c.rule.MaxSelected != nil && len(values) > c.rule.MaxSelected.Value {
			c.fail(messageOr(c.rule.MaxSelected.Message, defaultMaxSelectedMessage, c.rule.MaxSelected.Value, strings.ToLower(c.label())))
		}
	}
	c.options(group, values)
	return c.errors
}

// options reports a single error when any value is not a declared option.
func (c *fieldChecker) options(group *questions.ChoiceGroup, values []string) {
	for _, value := range values {
		if !group.HasOption(value) {
			c.fail(messageOr("", defaultInvalidOptionMessage, strings.ToLower(c.label())))
			return
		}
	}
}

func (c fieldChecker) file(upload *questions.FileUpload, value FieldValue) []responses.ValidationErrorItemDto {
	if c.missing(len(value.Files) == 0, defaultRequiredFileMessage) {
		return c.errors
	}

	if !upload.Multiple && len(value.Files) > 1 {
		c.fail(messageOr("", defaultSingleFileMessage, strings.ToLower(c.label())))
	}

	maxFileSize := constvars.MaxFileSizeBytes
	var sizeMessage string
	if c.rule != nil && c.rule.MaxFileSize != nil {
		sizeMessage = c.rule.MaxFileSize.Message
		if c.rule.MaxFileSize.Value < maxFileSize {
			maxFileSize = c.rule.MaxFileSize.Value
		}
	}

	var total int64
	tooLarge := false
	for _, file := range value.Files {
		total += file.Size
		if file.Size > maxFileSize {
			tooLarge = true
		}
	}
	if tooLarge {
		c.fail(messageOr(sizeMessage, defaultMaxFileSizeMessage, formatBytes(maxFileSize)))
	}

	accepted := upload.Accept
	var typesMessage string
	if c.rule != nil && c.rule.AcceptedTypes != nil {
		accepted = c.rule.AcceptedTypes.Values
		typesMessage = c.rule.AcceptedTypes.Message
	}
	if len(accepted) > 0 {
		for _, file := range value.Files {
			if !acceptsFile(accepted, file) {
				c.fail(messageOr(typesMessage, defaultAcceptedTypesMessage, strings.Join(accepted, ", ")))
				break
			}
		}
	}

	if total > constvars.MaxTotalSizeBytes {
		c.fail(messageOr("", defaultMaxTotalSizeMessage, formatBytes(constvars.MaxTotalSizeBytes)))
	}
	return c.errors
}

// acceptsFile matches a file against extensions (".pdf") or MIME types
// ("application/pdf", "image/*").
func acceptsFile(accepted []string, file File) bool {
	extension := strings.ToLower(filepath.Ext(file.FileName))
	contentType := strings.ToLower(file.ContentType)
	for _, entry := range accepted {
		entry = strings.ToLower(strings.TrimSpace(entry))
		switch {
		case strings.HasPrefix(entry, "."):
			if extension == entry {
				return true
			}
		case strings.HasSuffix(entry, "/*"):
			if strings.HasPrefix(contentType, strings.TrimSuffix(entry, "*")) {
				return true
			}
		case entry == contentType:
			return true
		}
	}
	return false
}

func matches(pattern, text string) bool {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return false
	}
	return re.MatchString(text)
}
