package task

import (
	"errors"
	"strings"
	"testing"
)

func amountPtr(v float64) *float64 { return &v }

func TestTitleValidator(t *testing.T) {
	tests := []struct {
		name    string
		task    *Task
		wantErr bool
		errCode ErrorCode
	}{
		{
			name:    "valid title",
			task:    &Task{Title: "Valid Task"},
			wantErr: false,
		},
		{
			name:    "empty title",
			task:    &Task{Title: ""},
			wantErr: true,
			errCode: ErrCodeRequired,
		},
		{
			name:    "whitespace title",
			task:    &Task{Title: "   "},
			wantErr: true,
			errCode: ErrCodeRequired,
		},
		{
			name:    "very long title",
			task:    &Task{Title: strings.Repeat("a", 201)},
			wantErr: true,
			errCode: ErrCodeTooLong,
		},
		{
			name:    "max length title",
			task:    &Task{Title: strings.Repeat("a", 200)},
			wantErr: false,
		},
	}

	validator := &TitleValidator{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateField(tt.task)
			if (err != nil) != tt.wantErr {
				t.Errorf("expected error: %v, got: %v", tt.wantErr, err)
			}
			if err != nil && err.Code != tt.errCode {
				t.Errorf("expected error code: %v, got: %v", tt.errCode, err.Code)
			}
		})
	}
}

func TestPriorityValidator(t *testing.T) {
	tests := []struct {
		name    string
		task    *Task
		wantErr bool
	}{
		{"none", &Task{Priority: PriorityNone}, false},
		{"low", &Task{Priority: PriorityLow}, false},
		{"medium", &Task{Priority: PriorityMedium}, false},
		{"high", &Task{Priority: PriorityHigh}, false},
		{"too high", &Task{Priority: Priority(9)}, true},
		{"negative", &Task{Priority: Priority(-1)}, true},
	}

	validator := &PriorityValidator{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateField(tt.task)
			if (err != nil) != tt.wantErr {
				t.Errorf("expected error: %v, got: %v", tt.wantErr, err)
			}
		})
	}
}

func TestAmountValidator(t *testing.T) {
	tests := []struct {
		name    string
		task    *Task
		wantErr bool
	}{
		{"no amount", &Task{}, false},
		{"zero", &Task{Amount: amountPtr(0)}, false},
		{"positive", &Task{Amount: amountPtr(12.5)}, false},
		{"negative", &Task{Amount: amountPtr(-1)}, true},
	}

	validator := &AmountValidator{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateField(tt.task)
			if (err != nil) != tt.wantErr {
				t.Errorf("expected error: %v, got: %v", tt.wantErr, err)
			}
			if err != nil && err.Code != ErrCodeOutOfRange {
				t.Errorf("expected error code: %v, got: %v", ErrCodeOutOfRange, err.Code)
			}
		})
	}
}

func TestValidateTask(t *testing.T) {
	if err := ValidateTask(&Task{Title: "Pay rent", Amount: amountPtr(1200)}); err != nil {
		t.Fatalf("expected valid task, got %v", err)
	}

	err := ValidateTask(&Task{Title: "", Amount: amountPtr(-5)})
	if err == nil {
		t.Fatal("expected validation errors")
	}

	var errs ValidationErrors
	if !errors.As(err, &errs) {
		t.Fatalf("expected ValidationErrors, got %T", err)
	}
	if len(errs) != 2 {
		t.Fatalf("expected 2 errors, got %d: %v", len(errs), errs)
	}
	if errs[0].Field != "title" || errs[1].Field != "amount" {
		t.Errorf("unexpected fields: %s, %s", errs[0].Field, errs[1].Field)
	}
	if !strings.Contains(err.Error(), "title is required") {
		t.Errorf("error message missing title failure: %q", err.Error())
	}
}
