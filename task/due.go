package task

import (
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

var dueLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseDue parses a due date written as RFC 3339, "yyyy-MM-dd HH:mm" or
// "yyyy-MM-dd". Values without a zone are read in loc.
func ParseDue(value string, loc *time.Location) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range dueLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized due date %q", value)
}

// DueValue decodes an optional due date from YAML front matter.
type DueValue struct {
	t *time.Time
}

func (d *DueValue) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("due date must be a scalar, got kind %d", value.Kind)
	}
	if strings.TrimSpace(value.Value) == "" {
		d.t = nil
		return nil
	}
	t, err := ParseDue(value.Value, time.Local)
	if err != nil {
		return err
	}
	d.t = &t
	return nil
}

func (d DueValue) MarshalYAML() (interface{}, error) {
	if d.t == nil {
		return nil, nil
	}
	return d.t.Format(time.RFC3339), nil
}

// Time returns the decoded due date, or nil when none was given.
func (d DueValue) Time() *time.Time {
	return d.t
}

// IsZero lets omitempty drop an unset due date.
func (d DueValue) IsZero() bool {
	return d.t == nil
}

// NewDueValue wraps t for encoding.
func NewDueValue(t *time.Time) DueValue {
	return DueValue{t: t}
}
