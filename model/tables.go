package model

// Record-store table names.
const (
	TableAttendanceLogs       = "attendance_logs"
	TableWorkHistory          = "work_history"
	TableRecruitmentRequests  = "recruitment_requests"
	TableEmployees            = "employees"
	TableEmployeeHoursSummary = "employee_hours_summary"
)
