package types

import (
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"net/url"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"cleanresponse/pkg/response"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// UseJSONFieldNames makes gin's validator report fields by their json tag,
// so field errors name "email" rather than "Email".
func UseJSONFieldNames() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterTagNameFunc(jsonFieldName)
}

func jsonFieldName(f reflect.StructField) string {
	for _, key := range []string{"json", "form"} {
		name := strings.SplitN(f.Tag.Get(key), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return f.Name
}

// FieldErrors converts a binding error into field-level errors.
//
// Validator failures become one entry per field; malformed JSON becomes a
// single entry for the offending field, or for "body" when none is known.
// Unparsable numbers from form or query binding are reported against "query".
// It returns nil for a nil error.
func FieldErrors(err error) []response.FieldError {
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		out := make([]response.FieldError, 0, len(validationErrs))
		for _, fe := range validationErrs {
			out = append(out, response.FieldError{
				Field:   fe.Field(),
				Message: validationMessage(fe),
				Code:    strings.ToUpper(fe.Tag()),
			})
		}
		return out
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return []response.FieldError{{
			Field:   typeErr.Field,
			Message: fmt.Sprintf("must be of type %s", typeErr.Type),
			Code:    "INVALID_TYPE",
		}}
	}

	var numErr *strconv.NumError
	if errors.As(err, &numErr) {
		return []response.FieldError{numberError("query")}
	}

	return []response.FieldError{{
		Field:   "body",
		Message: err.Error(),
		Code:    "INVALID_BODY",
	}}
}

// QueryFieldErrors is FieldErrors for query-string binding.
// An unparsable number is attributed to the parameter that carried it.
func QueryFieldErrors(query url.Values, err error) []response.FieldError {
	var numErr *strconv.NumError
	if !errors.As(err, &numErr) {
		return FieldErrors(err)
	}

	for _, key := range slices.Sorted(maps.Keys(query)) {
		if slices.Contains(query[key], numErr.Num) {
			return []response.FieldError{numberError(key)}
		}
	}
	return []response.FieldError{numberError("query")}
}

func numberError(field string) response.FieldError {
	return response.FieldError{
		Field:   field,
		Message: "must be a number",
		Code:    "INVALID_TYPE",
	}
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "email":
		return "must be a valid email"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	}
	return "is invalid"
}
