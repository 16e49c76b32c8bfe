package apierrors

import (
	"errors"
	"net/http"

	authProcessor "inapp-server/internal/auth/processor"
	"inapp-server/internal/integrity"
	"inapp-server/internal/store"
)

// MapError converts domain/processor errors to APIErrors.
//
// If the error is already an APIError, it returns it as-is.
// If the error is a known domain error, it maps it to an appropriate APIError.
// If the error is unknown, it returns a sanitized InternalError (500).
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	var (
		notFound   *integrity.NotFoundError
		conflict   *integrity.ConflictError
		validation *integrity.ValidationError
	)

	switch {
	case errors.Is(err, authProcessor.ErrUnauthorized):
		return Unauthorized("Authorization token is missing or invalid")

	case errors.Is(err, authProcessor.ErrInvalidCredentials):
		return &APIError{StatusCode: http.StatusUnauthorized, Code: CodeInvalidCredentials, Message: "Invalid username or password"}

	case errors.As(err, &notFound):
		return NotFound(CodeNotFound, notFound.Error())

	case errors.As(err, &conflict):
		return Conflict(CodeConflict, conflict.Reason)

	case errors.As(err, &validation):
		return BadRequest(CodeInvalidReference, validation.Error())

	case errors.Is(err, store.ErrNotFound):
		return NotFound(CodeNotFound, "Resource not found")

	default:
		return InternalError(err)
	}
}
