package model

import "time"

// WorkHistoryEntry assigns one employee to one staffing request for a
// sub-range of the request's dates, at an optional overridden hourly rate.
type WorkHistoryEntry struct {
	ID         string    `json:"id"`
	EmployeeID string    `json:"employeeId"`
	RequestNo  string    `json:"requestNo"`
	FromDate   time.Time `json:"fromDate"`
	ToDate     time.Time `json:"toDate"`
	HourlyRate *float64  `json:"hourlyRate,omitempty"`
}
