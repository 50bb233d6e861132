package rpcerror

import "fmt"

// Error represents a JSON-RPC error object returned to the caller.
// It implements the error interface so translators can return it directly.
type Error struct {
	Code    int    `json:"code"`           // JSON-RPC error code
	Message string `json:"message"`        // Human-readable message
	Data    any    `json:"data,omitempty"` // Optional structured context
}

// New creates an Error with the given code and message.
func New(code int, message string) Error {
	return Error{Code: code, Message: message}
}

// Error implements the error interface.
func (e Error) Error() string {
	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}

// WithMessage returns a copy of the error with a custom message.
func (e Error) WithMessage(message string) Error {
	e.Message = message
	return e
}

// WithData returns a copy of the error with the given data payload.
func (e Error) WithData(data any) Error {
	e.Data = data
	return e
}

// WithError returns a copy of the error with the cause recorded under data.cause.
// Existing map data is copied, never mutated in place.
func (e Error) WithError(err error) Error {
	if err == nil {
		return e
	}
	data := map[string]any{}
	if m, ok := e.Data.(map[string]any); ok {
		for k, v := range m {
			data[k] = v
		}
	}
	data["cause"] = err.Error()
	e.Data = data
	return e
}

// IsServerCode reports whether code falls in the range reserved for
// implementation-defined server errors.
func IsServerCode(code int) bool {
	return code >= CodeServerErrorMin && code <= CodeServerErrorMax
}
