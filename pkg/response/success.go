package response

// Default messages for success envelopes.
const (
	DefaultSuccessMessage   = "Success"
	DefaultCreatedMessage   = "Resource created successfully"
	DefaultNoContentMessage = "Resource deleted successfully"
)

// Success creates a standardized success envelope.
//
// Parameters:
//   - data: The response payload; any value is accepted as-is, including nil
//   - message: Success message; empty selects "Success"
//   - opts: Optional fields (only WithRequestID applies)
//
// Example:
//
//	response.Success(user, "")
//	response.Success(user, "User updated", response.WithRequestID(reqID))
func Success[T any](data T, message string, opts ...Option) SuccessEnvelope[T] {
	o := collect(opts)
	return SuccessEnvelope[T]{
		Success:   true,
		Message:   orDefault(message, DefaultSuccessMessage),
		Data:      data,
		Timestamp: timestamp(),
		RequestID: o.requestID,
	}
}

// Created creates a success envelope for resource creation.
//
// The envelope carries no status code; callers pair it with HTTP 201.
func Created[T any](data T, message string, opts ...Option) SuccessEnvelope[T] {
	return Success(data, orDefault(message, DefaultCreatedMessage), opts...)
}

// NoContent creates a success envelope with nil data, typically for deletions.
func NoContent(message string, opts ...Option) SuccessEnvelope[any] {
	return Success[any](nil, orDefault(message, DefaultNoContentMessage), opts...)
}
