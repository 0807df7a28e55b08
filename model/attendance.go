package model

import "time"

type EventType string

const (
	EventCheckin  EventType = "checkin"
	EventCheckout EventType = "checkout"
)

// AttendanceEvent is one raw punch from a device or the UI. Immutable once
// recorded.
type AttendanceEvent struct {
	ID         string    `json:"id"`
	EmployeeID string    `json:"employeeId"`
	Type       EventType `json:"type"`
	Position   string    `json:"position"`
	Timestamp  time.Time `json:"timestamp"`
	Notes      string    `json:"notes,omitempty"`
}
