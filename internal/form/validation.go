// internal/form/validation.go
package form

import (
	"strings"

	"github.com/javajoker/dukan-admin/internal/utils"
)

// ValidationError lists the draft fields that block submission.
type ValidationError struct {
	Fields []utils.ValidationError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Message)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

func validateDraft(d interface{}) error {
	err := utils.ValidateStruct(d)
	if err == nil {
		return nil
	}
	if fields := utils.GetValidationErrors(err); len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return err
}
