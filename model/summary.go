package model

import "time"

// ShiftBreakdown carries the per-shift split produced by the fixed
// two-shift rule.
type ShiftBreakdown struct {
	MorningHours   float64 `json:"morningHours"`
	AfternoonHours float64 `json:"afternoonHours"`
}

// DailyHoursResult is the derived worked-hours outcome for one employee on
// one civil day. Never persisted; recomputed on every query.
type DailyHoursResult struct {
	EmployeeID        string          `json:"employeeId"`
	Date              string          `json:"date"` // YYYY-MM-DD
	Position          string          `json:"position"`
	TotalHours        string          `json:"totalHours"`
	TotalHoursNumeric float64         `json:"totalHoursNumeric"`
	Warnings          []string        `json:"warnings"`
	Shifts            *ShiftBreakdown `json:"shifts,omitempty"`
}

// EmployeeHours is one employee line inside a request summary.
type EmployeeHours struct {
	EmployeeID string  `json:"employeeId"`
	FullName   string  `json:"fullName"`
	TotalHours float64 `json:"totalHours"`
}

// RequestHoursSummary is the per-staffing-request rollup consumed by
// billing and compliance reporting. Derived on demand; its numeric total
// always equals the sum of its employee lines.
type RequestHoursSummary struct {
	RequestNo         string          `json:"requestNo"`
	Department        string          `json:"department"`
	Status            string          `json:"status"`
	FromDate          time.Time       `json:"fromDate"`
	ToDate            time.Time       `json:"toDate"`
	TotalEmployees    int             `json:"totalEmployees"`
	TotalHours        string          `json:"totalHours"`
	TotalHoursNumeric float64         `json:"totalHoursNumeric"`
	Employees         []EmployeeHours `json:"employees"`
}
