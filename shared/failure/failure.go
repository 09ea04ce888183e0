package failure

import (
	"errors"
	"net/http"
)

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	// Remote marks a message supplied by the remote data service.
	Remote bool `json:"-"`
}

var ErrOperationInProgress = &Failure{Code: http.StatusConflict, Message: "another operation is in progress"}

// Error returns the failure message.
func (e *Failure) Error() string {
	return e.Message
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
	}
}

// InternalError returns a new Failure with code for internal error and message derived from an error interface.
func InternalError(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusInternalServerError,
			Message: err.Error(),
		}
	}

	return nil
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(entityName string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Message: entityName,
	}
}

// Conflict returns a new Failure with code for conflict situations.
func Conflict(message string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Message: message,
	}
}

// Unavailable returns a new Failure for an unreachable or misbehaving remote service.
func Unavailable(message string) error {
	return &Failure{
		Code:    http.StatusBadGateway,
		Message: message,
	}
}

// Remote returns a new Failure carrying the status and message the remote service rejected a request with.
func Remote(code int, message string) error {
	if code < http.StatusBadRequest {
		code = http.StatusBadGateway
	}

	remote := message != ""
	if !remote {
		message = http.StatusText(code)
	}

	return &Failure{
		Code:    code,
		Message: message,
		Remote:  remote,
	}
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// Notice returns the text shown to the user for a failed action: the remote
// service's own message when it sent one, the fallback otherwise.
func Notice(err error, fallback string) string {
	var fail *Failure
	if errors.As(err, &fail) && fail.Remote {
		return fail.Message
	}

	return fallback
}
