package store

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError reports a rejected create request. When one is returned no
// entity is created and no state is persisted.
type ValidationError struct {
	Message string
	Fields  []string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) > 0 {
		return fmt.Sprintf("%s: %s", e.Message, strings.Join(e.Fields, ", "))
	}
	return e.Message
}

// missingFields builds the "missing information" error for required-field
// checks.
func missingFields(fields []string) *ValidationError {
	return &ValidationError{Message: "missing information", Fields: fields}
}

// AsValidation returns the ValidationError wrapped in err, or nil.
func AsValidation(err error) *ValidationError {
	var v *ValidationError
	if errors.As(err, &v) {
		return v
	}
	return nil
}
