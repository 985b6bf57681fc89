package task

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

type Priority int

const (
	PriorityNone Priority = iota
	PriorityLow
	PriorityMedium
	PriorityHigh
)

type priorityInfo struct {
	label string
	emoji string
}

var priorities = map[Priority]priorityInfo{
	PriorityNone:   {label: "None", emoji: ""},
	PriorityLow:    {label: "Low", emoji: "🔵"},
	PriorityMedium: {label: "Medium", emoji: "🟠"},
	PriorityHigh:   {label: "High", emoji: "🔴"},
}

func normalizePriorityKey(priority string) string {
	return strings.ToLower(strings.TrimSpace(priority))
}

// ParsePriority maps a name or number to a Priority.
func ParsePriority(priority string) (Priority, bool) {
	switch normalizePriorityKey(priority) {
	case "", "none", "0":
		return PriorityNone, true
	case "low", "1":
		return PriorityLow, true
	case "medium", "med", "normal", "2":
		return PriorityMedium, true
	case "high", "urgent", "3":
		return PriorityHigh, true
	default:
		return PriorityNone, false
	}
}

// PriorityLabel returns the display name used for matching and rendering.
func PriorityLabel(p Priority) string {
	if info, ok := priorities[p]; ok {
		return info.label
	}
	return priorities[PriorityNone].label
}

func PriorityEmoji(p Priority) string {
	if info, ok := priorities[p]; ok {
		return info.emoji
	}
	return ""
}

func (p Priority) String() string {
	return PriorityLabel(p)
}

// PriorityValue decodes a priority from YAML given either as a name ("high")
// or as a number (3).
type PriorityValue Priority

func (pv *PriorityValue) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("priority must be a scalar, got kind %d", value.Kind)
	}
	if n, err := strconv.Atoi(strings.TrimSpace(value.Value)); err == nil {
		if n < int(PriorityNone) || n > int(PriorityHigh) {
			return fmt.Errorf("priority %d out of range", n)
		}
		*pv = PriorityValue(n)
		return nil
	}
	p, ok := ParsePriority(value.Value)
	if !ok {
		return fmt.Errorf("unknown priority %q", value.Value)
	}
	*pv = PriorityValue(p)
	return nil
}

func (pv PriorityValue) MarshalYAML() (interface{}, error) {
	return strings.ToLower(PriorityLabel(Priority(pv))), nil
}
