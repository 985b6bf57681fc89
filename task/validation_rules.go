package task

import (
	"fmt"
	"strings"
)

// TitleValidator validates task title
type TitleValidator struct{}

func (v *TitleValidator) ValidateField(task *Task) *ValidationError {
	title := strings.TrimSpace(task.Title)

	if title == "" {
		return &ValidationError{
			Field:   "title",
			Value:   task.Title,
			Code:    ErrCodeRequired,
			Message: "title is required",
		}
	}

	const maxTitleLength = 200
	if len(title) > maxTitleLength {
		return &ValidationError{
			Field:   "title",
			Value:   task.Title,
			Code:    ErrCodeTooLong,
			Message: fmt.Sprintf("title exceeds maximum length of %d characters", maxTitleLength),
		}
	}

	return nil
}

// PriorityValidator validates the priority enum
type PriorityValidator struct{}

func (v *PriorityValidator) ValidateField(task *Task) *ValidationError {
	if _, ok := priorities[task.Priority]; ok {
		return nil
	}

	return &ValidationError{
		Field:   "priority",
		Value:   task.Priority,
		Code:    ErrCodeInvalidEnum,
		Message: fmt.Sprintf("invalid priority value: %d", task.Priority),
	}
}

// AmountValidator rejects negative amounts. A missing amount is valid.
type AmountValidator struct{}

func (v *AmountValidator) ValidateField(task *Task) *ValidationError {
	if task.Amount == nil || *task.Amount >= 0 {
		return nil
	}

	return &ValidationError{
		Field:   "amount",
		Value:   *task.Amount,
		Code:    ErrCodeOutOfRange,
		Message: "amount must not be negative",
	}
}

// DescriptionValidator - no validation needed (any string is valid)
// SectionID is not checked here; unknown sections simply fail to resolve.
