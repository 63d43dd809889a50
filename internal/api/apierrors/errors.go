package apierrors

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
)

// Error is the error type returned by route handlers. UserMessage and ID end
// up in the HTTP response; Cause stays in the logs.
type Error struct {
	UserMessage string
	Cause       error
	StatusCode  int
	ID          string
}

func NewError(userMessage string, cause error, statusCode int) *Error {
	return &Error{
		UserMessage: userMessage,
		Cause:       cause,
		StatusCode:  statusCode,
		ID:          uuid.NewString(),
	}
}

func NewBadRequestError(userMessage string) *Error {
	return NewError(userMessage, nil, http.StatusBadRequest)
}

func NewBadRequestErrorWithCause(userMessage string, cause error) *Error {
	return NewError(userMessage, cause, http.StatusBadRequest)
}

func NewRequestUnmarshallError(requestDTO any, cause error) *Error {
	return NewError(fmt.Sprintf("error unmarshalling request body to %T", requestDTO), cause, http.StatusBadRequest)
}

func NewUnauthorizedError(userMessage string) *Error {
	return NewError(userMessage, nil, http.StatusUnauthorized)
}

func NewForbiddenError(userMessage string) *Error {
	return NewError(userMessage, nil, http.StatusForbidden)
}

func NewRecordNotFoundError(missingID string) *Error {
	return NewError(fmt.Sprintf("record %s not found", missingID), nil, http.StatusNotFound)
}

func NewInternalServerError(userMessage string, cause error) *Error {
	return NewError(fmt.Sprintf("internal server error: %s", userMessage), cause, http.StatusInternalServerError)
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return e.UserMessage
	}
	return e.Cause.Error()
}

func (e *Error) LogError(logger *slog.Logger) {
	var cause string
	if e.Cause == nil {
		cause = "none"
	} else {
		cause = e.Cause.Error()
	}
	logger.Error(e.UserMessage,
		slog.Group("error",
			slog.String("id", e.ID),
			slog.Any("cause", cause),
		),
	)
}
