package response

import "maps"

// Option attaches an optional field to an envelope.
//
// Options whose field does not exist on the envelope being built are ignored,
// as are empty values: an empty request id, an empty error list or an empty
// details map never produce a key in the output.
type Option func(*options)

type options struct {
	requestID string
	errors    []FieldError
	stack     string
	details   map[string]any
}

// WithRequestID attaches a tracing id to any envelope kind.
func WithRequestID(id string) Option {
	return func(o *options) {
		o.requestID = id
	}
}

// WithFieldErrors attaches a field-level validation list to an error envelope.
// A later WithFieldErrors replaces an earlier one.
func WithFieldErrors(errs ...FieldError) Option {
	return func(o *options) {
		o.errors = errs
	}
}

// WithStack attaches raw stack text to an error envelope.
// The caller decides whether the text is safe to expose.
func WithStack(stack string) Option {
	return func(o *options) {
		o.stack = stack
	}
}

// WithDetails attaches a free-form map of extra context to an error envelope.
func WithDetails(details map[string]any) Option {
	return func(o *options) {
		o.details = details
	}
}

func collect(opts []Option) options {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// apply copies the non-empty options onto e.
func (o options) apply(e *ErrorEnvelope) {
	e.RequestID = o.requestID
	if len(o.errors) > 0 {
		e.Errors = o.errors
	}
	e.Stack = o.stack
	if len(o.details) > 0 {
		e.Details = maps.Clone(o.details)
	}
}
