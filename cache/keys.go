package cache

// Cache keys for the derived aggregates. Every key that carries hours data
// is registered here so write paths can sweep them all with one call
// instead of scattering per-key deletes.
const (
	KeyAttendanceLogs     = "attendance:logs"
	KeyEmployeeHours      = "attendance:employee_hours"
	KeyWorkHistoryAll     = "work_history:all"
	KeyEmployeesAll       = "employees:all"
	KeyRecruitmentSummary = "recruitment:hours_summary"
)

var hoursRelatedKeys = []string{
	KeyAttendanceLogs,
	KeyEmployeeHours,
	KeyWorkHistoryAll,
	KeyEmployeesAll,
	KeyRecruitmentSummary,
}

// InvalidateHoursRelated drops every cached aggregate that a WorkHistory or
// Attendance write can affect. Coarse on purpose: the cache has no
// dependency graph between keys and the record store, so correctness beats
// retention here.
func (c *Cache) InvalidateHoursRelated() {
	for _, key := range hoursRelatedKeys {
		c.Delete(key)
	}
}
