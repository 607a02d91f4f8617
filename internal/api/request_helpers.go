package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// getPathUUID extracts a UUID from the URL path parameters.
// Returns an error when the parameter is missing or not a valid UUID.
func getPathUUID(r *http.Request, paramName string) (uuid.UUID, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return uuid.Nil, fmt.Errorf("path parameter %q is required", paramName)
	}

	id, err := uuid.Parse(pathParam)
	if err != nil {
		return uuid.Nil, fmt.Errorf("path parameter %q is not a valid ID", paramName)
	}

	return id, nil
}

// validationMessages flattens validator errors into client-facing strings.
// Only field names and rule identifiers are exposed, never values.
func validationMessages(err error) []string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return []string{"invalid request payload"}
	}

	messages := make([]string, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		switch fieldErr.Tag() {
		case "required":
			messages = append(messages, fmt.Sprintf("%s is required", fieldErr.Field()))
		case "min":
			messages = append(messages,
				fmt.Sprintf("%s must be at least %s characters long", fieldErr.Field(), fieldErr.Param()))
		case "max":
			messages = append(messages,
				fmt.Sprintf("%s must be at most %s characters long", fieldErr.Field(), fieldErr.Param()))
		case "alphanum":
			messages = append(messages,
				fmt.Sprintf("%s must contain only letters and digits", fieldErr.Field()))
		case "email":
			messages = append(messages,
				fmt.Sprintf("%s does not appear to be valid", fieldErr.Field()))
		default:
			messages = append(messages, fmt.Sprintf("%s is invalid", fieldErr.Field()))
		}
	}

	return messages
}
