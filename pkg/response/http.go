package response

import "net/http"

// Default messages for the HTTP error helpers.
const (
	DefaultBadRequestMessage         = "Bad request"
	DefaultUnauthorizedMessage       = "Unauthorized"
	DefaultForbiddenMessage          = "Forbidden"
	DefaultNotFoundMessage           = "Resource not found"
	DefaultConflictMessage           = "Resource conflict"
	DefaultValidationMessage         = "Validation failed"
	DefaultInternalServerMessage     = "Internal server error"
	DefaultServiceUnavailableMessage = "Service unavailable"
)

// BadRequest creates a 400 error envelope.
func BadRequest(message string, opts ...Option) ErrorEnvelope {
	return Error(orDefault(message, DefaultBadRequestMessage), http.StatusBadRequest, opts...)
}

// Unauthorized creates a 401 error envelope.
func Unauthorized(message string, opts ...Option) ErrorEnvelope {
	return Error(orDefault(message, DefaultUnauthorizedMessage), http.StatusUnauthorized, opts...)
}

// Forbidden creates a 403 error envelope.
func Forbidden(message string, opts ...Option) ErrorEnvelope {
	return Error(orDefault(message, DefaultForbiddenMessage), http.StatusForbidden, opts...)
}

// NotFound creates a 404 error envelope.
//
// The message is "<resource> not found" when resource is given,
// otherwise "Resource not found".
//
// Example:
//
//	response.NotFound("User") // message: "User not found"
func NotFound(resource string, opts ...Option) ErrorEnvelope {
	message := DefaultNotFoundMessage
	if resource != "" {
		message = resource + " not found"
	}
	return Error(message, http.StatusNotFound, opts...)
}

// Conflict creates a 409 error envelope.
func Conflict(message string, opts ...Option) ErrorEnvelope {
	return Error(orDefault(message, DefaultConflictMessage), http.StatusConflict, opts...)
}

// ValidationError creates a 422 error envelope carrying field-level errors.
//
// errs is attached unchanged; a WithFieldErrors option in opts replaces it.
//
// Example:
//
//	response.ValidationError([]response.FieldError{
//		{Field: "email", Message: "Invalid email format", Code: "INVALID_EMAIL"},
//	}, "")
func ValidationError(errs []FieldError, message string, opts ...Option) ErrorEnvelope {
	all := make([]Option, 0, len(opts)+1)
	all = append(all, WithFieldErrors(errs...))
	all = append(all, opts...)
	return Error(orDefault(message, DefaultValidationMessage), http.StatusUnprocessableEntity, all...)
}

// InternalServerError creates a 500 error envelope.
//
// When cause carries a stack trace (see StackOf) and production is false,
// the stack is attached to the envelope. With production set, no stack is
// ever emitted, including one passed through WithStack.
//
// Example:
//
//	if err := repo.Save(ctx, user); err != nil {
//		c.JSON(http.StatusInternalServerError,
//			response.InternalServerError("Database error", err, cfg.App.IsProduction()))
//	}
func InternalServerError(message string, cause error, production bool, opts ...Option) ErrorEnvelope {
	e := Error(orDefault(message, DefaultInternalServerMessage), http.StatusInternalServerError, opts...)

	switch {
	case production:
		e.Stack = ""
	case cause != nil:
		if stack := StackOf(cause); stack != "" {
			e.Stack = stack
		}
	}

	return e
}

// ServiceUnavailable creates a 503 error envelope.
func ServiceUnavailable(message string, opts ...Option) ErrorEnvelope {
	return Error(orDefault(message, DefaultServiceUnavailableMessage), http.StatusServiceUnavailable, opts...)
}
