// Package response builds standardized API response envelopes.
//
// Every constructor returns a plain record that serializes to one of three
// JSON shapes:
//
//	success:   {"success":true,"message":"...","data":...,"timestamp":"..."}
//	error:     {"success":false,"message":"...","code":404,"timestamp":"..."}
//	paginated: {"success":true,"message":"...","data":[...],"meta":{...},"timestamp":"..."}
//
// Optional fields (requestId, errors, stack, details) are attached through
// functional options and are left out of the JSON entirely when not supplied.
//
// The package performs no I/O and holds no state; setting the HTTP status
// line and writing the body is left to the caller.
//
// Example usage:
//
//	c.JSON(http.StatusOK, response.Success(user, ""))
//	c.JSON(http.StatusNotFound, response.NotFound("User", response.WithRequestID(id)))
package response

import "time"

// TimestampLayout is the ISO-8601 layout used for envelope timestamps.
// It always renders UTC with millisecond precision, e.g. 2024-05-01T10:20:30.123Z.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Envelope is the closed set of response shapes produced by this package.
//
// It is implemented only by SuccessEnvelope, PaginatedEnvelope and ErrorEnvelope.
// IsSuccess is fixed per type, while the serialized "success" field is set by
// the constructors; envelopes built as struct literals are unsupported.
type Envelope interface {
	// IsSuccess reports the envelope's success discriminant.
	IsSuccess() bool

	envelope()
}

// SuccessEnvelope wraps a single successful result.
// Build it with Success, Created or NoContent, which set Success to true.
type SuccessEnvelope[T any] struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Data      T      `json:"data"`
	Timestamp string `json:"timestamp"`
	RequestID string `json:"requestId,omitempty"`
}

// IsSuccess always reports true.
func (SuccessEnvelope[T]) IsSuccess() bool { return true }

func (SuccessEnvelope[T]) envelope() {}

// ErrorEnvelope describes a failed request.
// Build it with Error or one of the status helpers.
type ErrorEnvelope struct {
	Success   bool           `json:"success"`
	Message   string         `json:"message"`
	Code      int            `json:"code,omitempty"`
	Timestamp string         `json:"timestamp"`
	RequestID string         `json:"requestId,omitempty"`
	Errors    []FieldError   `json:"errors,omitempty"`
	Stack     string         `json:"stack,omitempty"`
	Details   map[string]any `json:"details,omitempty"`
}

// IsSuccess always reports false.
func (ErrorEnvelope) IsSuccess() bool { return false }

func (ErrorEnvelope) envelope() {}

// Error returns the envelope message, so an ErrorEnvelope can travel as an error value.
func (e ErrorEnvelope) Error() string { return e.Message }

// PaginatedEnvelope wraps one page of a larger collection.
// Build it with Paginate, which sets Success to true.
type PaginatedEnvelope[T any] struct {
	Success   bool           `json:"success"`
	Message   string         `json:"message"`
	Data      []T            `json:"data"`
	Meta      PaginationMeta `json:"meta"`
	Timestamp string         `json:"timestamp"`
	RequestID string         `json:"requestId,omitempty"`
}

// IsSuccess always reports true.
func (PaginatedEnvelope[T]) IsSuccess() bool { return true }

func (PaginatedEnvelope[T]) envelope() {}

// FieldError is a single validation failure tied to one input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// PaginationMeta describes one page of a larger collection.
//
// The values are supplied by the caller and passed through unchanged;
// TotalPages is never recomputed from Total and PerPage.
type PaginationMeta struct {
	Page       int   `json:"page"`
	PerPage    int   `json:"perPage"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

// timestamp returns the current instant formatted with TimestampLayout.
func timestamp() string {
	return time.Now().UTC().Format(TimestampLayout)
}

// orDefault returns message, or fallback when message is empty.
func orDefault(message, fallback string) string {
	if message == "" {
		return fallback
	}
	return message
}
