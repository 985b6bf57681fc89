package task

import (
	"fmt"
	"strings"
)

type ErrorCode string

const (
	ErrCodeRequired    ErrorCode = "required"
	ErrCodeTooLong     ErrorCode = "too_long"
	ErrCodeOutOfRange  ErrorCode = "out_of_range"
	ErrCodeInvalidEnum ErrorCode = "invalid_enum"
)

// ValidationError describes one invalid task field.
type ValidationError struct {
	Field   string
	Value   interface{}
	Code    ErrorCode
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// FieldValidator checks a single aspect of a task.
type FieldValidator interface {
	ValidateField(task *Task) *ValidationError
}

// ValidationErrors collects every failure found for a task.
type ValidationErrors []*ValidationError

func (errs ValidationErrors) Error() string {
	msgs := make([]string, len(errs))
	for i, e := range errs {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "; ")
}

var defaultValidators = []FieldValidator{
	&TitleValidator{},
	&PriorityValidator{},
	&AmountValidator{},
}

// ValidateTask runs all field validators and returns nil when the task is valid.
func ValidateTask(task *Task) error {
	var errs ValidationErrors
	for _, v := range defaultValidators {
		if err := v.ValidateField(task); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}
