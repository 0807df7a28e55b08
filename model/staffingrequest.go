package model

import "time"

// StaffingRequest is a recruitment order for N temporary workers over a
// date range. Owned by the intake process; read-only here.
type StaffingRequest struct {
	ID         string    `json:"id"`
	RequestNo  string    `json:"requestNo"`
	Department string    `json:"department"`
	Status     string    `json:"status"`
	Quantity   int       `json:"quantity"`
	Gender     string    `json:"gender"`
	FromDate   time.Time `json:"fromDate"`
	ToDate     time.Time `json:"toDate"`
	Position   string    `json:"position"`
}
