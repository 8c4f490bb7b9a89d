package response

import "net/http"

// DefaultErrorCode is used by Error when no code is given.
const DefaultErrorCode = http.StatusInternalServerError

// Error creates a standardized error envelope.
//
// Parameters:
//   - message: The error message
//   - code: Error code, conventionally the HTTP status; 0 selects 500
//   - opts: Optional fields (WithRequestID, WithFieldErrors, WithStack, WithDetails)
//
// Each option is copied into the envelope only when its value is non-empty.
//
// Example:
//
//	response.Error("Something went wrong", 0)
//	response.Error("User not found", http.StatusNotFound, response.WithRequestID(reqID))
func Error(message string, code int, opts ...Option) ErrorEnvelope {
	if code == 0 {
		code = DefaultErrorCode
	}

	e := ErrorEnvelope{
		Success:   false,
		Message:   message,
		Code:      code,
		Timestamp: timestamp(),
	}
	collect(opts).apply(&e)

	return e
}
