// Package tasks provides the TSV-backed task store and its record codec.
package tasks

import (
	"strings"
	"time"
)

// DateFormat is the calendar-date layout used everywhere a due date is
// rendered or parsed (storage and user input alike).
const DateFormat = "2006-01-02"

// Priority represents the urgency of a task. The constant names double as
// the canonical on-disk representation.
type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
)

// Valid reports whether p is one of the three known priorities.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// PriorityFromInput maps lenient user input ("h", "hi", "high", ...) to a
// Priority. Anything unrecognised, including the empty string, falls back
// to MEDIUM.
func PriorityFromInput(s string) Priority {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "h", "hi", "high":
		return PriorityHigh
	case "l", "lo", "low":
		return PriorityLow
	}
	return PriorityMedium
}

// Task is one unit of work. Due is nil when the task has no due date.
// Tags is duplicate-free and preserves first-insertion order.
type Task struct {
	ID       int
	Title    string
	Due      *time.Time
	Priority Priority
	Done     bool
	Tags     []string
}

// clone returns a deep copy so callers never alias store-owned state.
func (t *Task) clone() Task {
	c := *t
	if t.Due != nil {
		due := *t.Due
		c.Due = &due
	}
	if t.Tags != nil {
		c.Tags = append([]string(nil), t.Tags...)
	}
	return c
}

// NormalizeTags trims each tag, drops empties, and collapses duplicates
// while preserving the order of first appearance.
func NormalizeTags(raw []string) []string {
	var tags []string
	seen := make(map[string]bool, len(raw))
	for _, r := range raw {
		tag := strings.TrimSpace(r)
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		tags = append(tags, tag)
	}
	return tags
}

// ParseTags splits comma-separated user input into a normalized tag list.
// "none" (or blank) means no tags.
func ParseTags(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "none") {
		return nil
	}
	return NormalizeTags(strings.Split(s, ","))
}

// ParseDueInput parses a user-supplied due date. "none" (or blank) clears
// the date and yields nil.
func ParseDueInput(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "none") {
		return nil, nil
	}
	d, err := time.Parse(DateFormat, s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
