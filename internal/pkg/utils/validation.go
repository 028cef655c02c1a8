package utils

import (
	"recognition-service/internal/pkg/constvars"
	"regexp"

	"github.com/go-playground/validator/v10"
)

var (
	validate       *validator.Validate
	fieldNameRegex = regexp.MustCompile(constvars.RegexFieldName)
)

func init() {
	validate = validator.New()
	validate.RegisterValidation("task_status", validateTaskStatus)
	validate.RegisterValidation("field_name", validateFieldName)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateTaskStatus(fl validator.FieldLevel) bool {
	return constvars.TaskStatus(fl.Field().String()).IsValid()
}

func validateFieldName(fl validator.FieldLevel) bool {
	return fieldNameRegex.MatchString(fl.Field().String())
}
