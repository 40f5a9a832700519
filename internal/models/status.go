package models

import (
	"fmt"
	"strings"
)

// ProjectStatus is the lane a project belongs to
type ProjectStatus int

const (
	StatusActive ProjectStatus = iota
	StatusFinished
)

// Statuses returns every status in lane display order
func Statuses() []ProjectStatus {
	return []ProjectStatus{StatusActive, StatusFinished}
}

func (s ProjectStatus) String() string {
	switch s {
	case StatusActive:
		return "active"
	case StatusFinished:
		return "finished"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// ParseStatus converts a lane name into a ProjectStatus.
// Matching is case-insensitive; an empty string means active.
func ParseStatus(s string) (ProjectStatus, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "active", "":
		return StatusActive, nil
	case "finished":
		return StatusFinished, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownStatus, s)
	}
}
