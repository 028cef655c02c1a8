package utils

import (
	"context"
	"net/http"
	"recognition-service/internal/pkg/constvars"
	"recognition-service/internal/pkg/exceptions"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

// ParseUUIDParam reads a chi URL param that must hold a UUID.
func ParseUUIDParam(r *http.Request, paramName string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, paramName))
	if err != nil {
		return uuid.Nil, exceptions.ErrURLParamIDValidation(err, paramName)
	}
	return id, nil
}

// DecodeAndValidate reads a JSON body into request and runs the struct
// validator over it.
func DecodeAndValidate(r *http.Request, request interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		return exceptions.ErrCannotParseJSON(err)
	}
	if err := ValidateStruct(request); err != nil {
		return exceptions.ErrInputValidation(err)
	}
	return nil
}

func RequestIDFromContext(ctx context.Context) string {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	return requestID
}
