package response

import (
	"errors"
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

// stackTracer is implemented by errors created or wrapped with github.com/pkg/errors.
type stackTracer interface {
	StackTrace() pkgerrors.StackTrace
}

// StackOf returns the stack text recorded in err's chain, or "" when none exists.
//
// An error carries a stack when it, or any error it wraps, was created with
// github.com/pkg/errors (errors.New, errors.WithStack, errors.Wrap, ...).
// The text is the "%+v" rendering of the first error in the chain holding a stack:
// its message followed by the recorded frames.
func StackOf(err error) string {
	if err == nil {
		return ""
	}

	var st stackTracer
	if !errors.As(err, &st) {
		return ""
	}
	if len(st.StackTrace()) == 0 {
		return ""
	}

	return fmt.Sprintf("%+v", st)
}
