// Package models holds the tracker's persisted entities and their enums.
package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/dailytracker/internal/common"
)

const (
	// DateLayout is how due dates are stored and exchanged.
	DateLayout = "2006-01-02"
	// TimeLayout is how appointment times are stored and exchanged.
	TimeLayout = "15:04"
)

type Status string

const (
	StatusPending   Status = "Pending"
	StatusCompleted Status = "Completed"
)

// Toggle returns the opposite status.
func (s Status) Toggle() Status {
	if s == StatusCompleted {
		return StatusPending
	}
	return StatusCompleted
}

// ParseStatus accepts a status name in any letter case.
func ParseStatus(s string) (Status, error) {
	switch {
	case strings.EqualFold(s, string(StatusPending)):
		return StatusPending, nil
	case strings.EqualFold(s, string(StatusCompleted)):
		return StatusCompleted, nil
	}
	return "", fmt.Errorf("%w: unknown status %q", common.ErrorValidation, s)
}

type ItemType string

const (
	TypeTask        ItemType = "Task"
	TypeAppointment ItemType = "Appointment"
)

// ParseItemType accepts a type name in any letter case; "" means Task.
func ParseItemType(s string) (ItemType, error) {
	switch {
	case s == "", strings.EqualFold(s, string(TypeTask)):
		return TypeTask, nil
	case strings.EqualFold(s, string(TypeAppointment)):
		return TypeAppointment, nil
	}
	return "", fmt.Errorf("%w: unknown item type %q", common.ErrorValidation, s)
}

// Item is a task or timed appointment owned by one user.
//
// DueDate is a calendar date: midnight UTC of the due day. Time is set only
// for appointments and is formatted with TimeLayout.
type Item struct {
	ID        int64
	UserID    string
	Title     string
	Category  string
	Status    Status
	DueDate   time.Time
	Type      ItemType
	Time      *string
	CreatedAt time.Time
}

func (i Item) Completed() bool {
	return i.Status == StatusCompleted
}

// NewItem carries the user-supplied fields of an item being added.
type NewItem struct {
	Title    string
	Category string
	DueDate  time.Time
	Type     ItemType
	Time     *string
}

// Date truncates t to its calendar day in UTC, keeping the wall-clock date
// of t's own location.
func Date(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD string into a calendar date.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: bad date %q", common.ErrorValidation, s)
	}
	return d, nil
}

// ParseClock normalizes an "HH:MM" or "HH:MM:SS" string to TimeLayout.
func ParseClock(s string) (string, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{TimeLayout, "15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(TimeLayout), nil
		}
	}
	return "", fmt.Errorf("%w: bad time %q", common.ErrorValidation, s)
}
