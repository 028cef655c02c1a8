package responses

import "recognition-service/internal/pkg/constvars"

type ValidationErrorItemDto struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationResponse is the outcome of one validation attempt.
type ValidationResponse struct {
	Message string                   `json:"message,omitempty"`
	Errors  []ValidationErrorItemDto `json:"errors"`
}

// NewValidationResponse copies errs so the response does not share storage
// with the caller.
func NewValidationResponse(errs []ValidationErrorItemDto) ValidationResponse {
	items := make([]ValidationErrorItemDto, len(errs))
	copy(items, errs)

	response := ValidationResponse{Errors: items}
	if len(items) > 0 {
		response.Message = constvars.ErrClientValidationFailed
	}
	return response
}

func (v ValidationResponse) IsValid() bool {
	return len(v.Errors) == 0
}
