package utils

import (
	"fmt"
	"recognition-service/internal/pkg/dto/requests"
	"strings"
)

func cleanWhiteSpaceFromEachStringOfAnArray(input []string) []string {
	sanitizedArray := make([]string, len(input))
	for i, v := range input {
		sanitizedArray[i] = strings.TrimSpace(v)
	}
	return sanitizedArray
}

// SanitizeAnswerSubmission trims submitted values and attachment metadata.
// Field names are trimmed too; values are kept in their submitted order.
// Two field names that trim to the same name are rejected.
func SanitizeAnswerSubmission(input *requests.AnswerSubmission) error {
	if input.Values != nil {
		values := make(map[string][]string, len(input.Values))
		for name, fieldValues := range input.Values {
			trimmed := strings.TrimSpace(name)
			if _, exists := values[trimmed]; exists {
				return fmt.Errorf("field %q is submitted more than once in values", trimmed)
			}
			values[trimmed] = cleanWhiteSpaceFromEachStringOfAnArray(fieldValues)
		}
		input.Values = values
	}

	if input.Attachments != nil {
		attachments := make(map[string][]requests.AttachmentReference, len(input.Attachments))
		for name, references := range input.Attachments {
			trimmed := strings.TrimSpace(name)
			if _, exists := attachments[trimmed]; exists {
				return fmt.Errorf("field %q is submitted more than once in attachments", trimmed)
			}
			sanitized := make([]requests.AttachmentReference, len(references))
			for i, reference := range references {
				reference.ObjectKey = strings.TrimSpace(reference.ObjectKey)
				reference.FileName = strings.TrimSpace(reference.FileName)
				reference.ContentType = strings.ToLower(strings.TrimSpace(reference.ContentType))
				sanitized[i] = reference
			}
			attachments[trimmed] = sanitized
		}
		input.Attachments = attachments
	}
	return nil
}
