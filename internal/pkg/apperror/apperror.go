// Package apperror defines the error kind the HTTP layer knows how to
// render. Modules declare sentinel values with New and return them from
// services; response.Error turns them into status codes.
package apperror

// AppError pairs a user-facing message with the HTTP status it maps to.
type AppError struct {
	Code    int    // HTTP status, e.g. 404, 409
	Message string // safe to show to the client
	Err     error  // underlying cause, kept out of responses
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New declares a sentinel error for a status code and message.
func New(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap attaches a cause to an AppError without exposing it.
func Wrap(err error, code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
