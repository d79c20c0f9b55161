package validator

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate checks struct tags directly, for callers outside the gin binding
// path. Returns field -> failed tag, nil when valid.
func Validate(v any) map[string]string {
	return fieldErrors(validate.Struct(v))
}

// BindingErrors extracts field-level failures from a gin binding error so
// public endpoints can tell callers which field was rejected. Returns nil for
// errors that are not validation failures (malformed JSON and the like).
func BindingErrors(err error) map[string]string {
	return fieldErrors(err)
}

func fieldErrors(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		out[fe.Field()] = fe.Tag()
	}
	return out
}
