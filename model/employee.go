package model

// Employee is the identity row for a temp/seasonal worker.
type Employee struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employeeId"`
	FullName   string `json:"fullName"`
	Position   string `json:"position"`
	Status     string `json:"status"`
}

// EmployeeHoursRow is one row of the precomputed total-hours rollup table.
// One employee can appear in multiple rows; consumers must sum, never
// overwrite.
type EmployeeHoursRow struct {
	EmployeeID string  `json:"employeeId"`
	TotalHours float64 `json:"totalHours"`
}
