// internal/model/error.go
package model

import "errors"

// Application-level sentinel errors. Handlers map these to HTTP status
// codes in webutil; anything not listed is treated as a server error.
var (
	ErrNotFound       = errors.New("resource not found")
	ErrInvalidInput   = errors.New("invalid input")
	ErrConflict       = errors.New("resource conflict")
	ErrUpstreamAI     = errors.New("ai provider request failed")
	ErrBadGeneration  = errors.New("ai response did not contain a usable plan")
	ErrInternalServer = errors.New("internal server error")
)

// AppError carries an opaque error code and a client-safe message.
// The wrapped sentinel decides the HTTP status; raw upstream error text
// never reaches the client through it.
type AppError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
	err     error
}

func NewAppError(code, message, field string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Field:   field,
		err:     err,
	}
}

func (e *AppError) Error() string {
	if e.err != nil {
		return e.Code + ": " + e.Message + ": " + e.err.Error()
	}
	return e.Code + ": " + e.Message
}

func (e *AppError) Unwrap() error {
	return e.err
}

// APIErrorResponse is the JSON error envelope.
type APIErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}
