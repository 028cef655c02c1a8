package forms

import (
	"recognition-service/internal/pkg/dto/requests"
	"strings"
)

type File struct {
	ObjectKey   string
	FileName    string
	Size        int64
	ContentType string
}

// FieldValue is what the user sent for one form field.
type FieldValue struct {
	Values []string
	Files  []File
}

// Submission maps form field names to submitted values.
type Submission map[string]FieldValue

func NewSubmission(request *requests.AnswerSubmission) Submission {
	submission := make(Submission)
	if request == nil {
		return submission
	}

	for name, values := range request.Values {
		value := submission[name]
		value.Values = append(value.Values, values...)
		submission[name] = value
	}
	for name, attachments := range request.Attachments {
		value := submission[name]
		for _, attachment := range attachments {
			value.Files = append(value.Files, File{
				ObjectKey:   attachment.ObjectKey,
				FileName:    attachment.FileName,
				Size:        attachment.Size,
				ContentType: attachment.ContentType,
			})
		}
		submission[name] = value
	}
	return submission
}

// nonBlank returns the values that contain something other than whitespace,
// trimmed.
func (v FieldValue) nonBlank() []string {
	var values []string
	for _, value := range v.Values {
		trimmed := strings.TrimSpace(value)
		if trimmed != "" {
			values = append(values, trimmed)
		}
	}
	return values
}
