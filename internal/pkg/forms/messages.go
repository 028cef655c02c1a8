package forms

import "fmt"

const (
	defaultRequiredTextMessage   = "Enter %s"
	defaultRequiredChoiceMessage = "Select %s"
	defaultRequiredFileMessage   = "Upload %s"
	defaultMinLengthMessage      = "%s must be %d characters or more"
	defaultMaxLengthMessage      = "%s must be %d characters or fewer"
	defaultPatternMessage        = "%s is in the wrong format"
	defaultMinSelectedMessage    = "Select at least %d options for %s"
	defaultMaxSelectedMessage    = "Select no more than %d options for %s"
	defaultMaxFileSizeMessage    = "The selected file must be smaller than %s"
	defaultAcceptedTypesMessage  = "The selected file must be a %s"
	defaultMaxTotalSizeMessage   = "The selected files must be smaller than %s in total"
	defaultInvalidOptionMessage  = "Select a valid option for %s"
	defaultSingleValueMessage    = "Select only one option for %s"
	defaultSingleFileMessage     = "Select only one file for %s"
)

func messageOr(custom, format string, args ...interface{}) string {
	if custom != "" {
		return custom
	}
	return fmt.Sprintf(format, args...)
}

func formatBytes(size int64) string {
	const mebibyte = 1024 * 1024
	if size%mebibyte == 0 {
		return fmt.Sprintf("%dMB", size/mebibyte)
	}
	return fmt.Sprintf("%d bytes", size)
}
