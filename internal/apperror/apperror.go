package apperror

import "github.com/gofiber/fiber/v2"

// Error is a business-rule violation carrying the HTTP status it maps to.
// Usecases return these; handlers translate them at the boundary so no
// raw error ever reaches the transport layer.
type Error struct {
	Code    int
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(code int, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Validation covers missing/malformed input and invalid-state rejections.
func Validation(message string) *Error {
	return New(fiber.StatusBadRequest, message)
}

func Unauthorized(message string) *Error {
	return New(fiber.StatusUnauthorized, message)
}

func Forbidden(message string) *Error {
	return New(fiber.StatusForbidden, message)
}

func NotFound(message string) *Error {
	return New(fiber.StatusNotFound, message)
}

func Conflict(message string) *Error {
	return New(fiber.StatusConflict, message)
}

func Internal(message string, err error) *Error {
	return &Error{Code: fiber.StatusInternalServerError, Message: message, Err: err}
}
