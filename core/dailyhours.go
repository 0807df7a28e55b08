package core

import (
	"log/slog"
	"sort"

	"github.com/syduc993/hr-management-system-sub000/model"
	"github.com/syduc993/hr-management-system-sub000/timekit"
	"github.com/syduc993/hr-management-system-sub000/utils"
)

// GroupByEmployeeAndDate buckets events into employeeId -> civil day ->
// events. Rows missing an employee id or a usable timestamp are logged and
// skipped, never fatal.
func GroupByEmployeeAndDate(tn *timekit.Normalizer, logger *slog.Logger, events []model.AttendanceEvent) map[string]map[string][]model.AttendanceEvent {
	usable := utils.Filter(events, func(ev model.AttendanceEvent) bool {
		if ev.EmployeeID == "" || ev.Timestamp.IsZero() {
			logger.Warn("skipping malformed attendance event", "id", ev.ID)
			return false
		}
		return true
	})

	grouped := make(map[string]map[string][]model.AttendanceEvent)
	for employeeID, evs := range utils.GroupBy(usable, func(ev model.AttendanceEvent) string { return ev.EmployeeID }) {
		grouped[employeeID] = utils.GroupBy(evs, func(ev model.AttendanceEvent) string { return tn.DateString(ev.Timestamp) })
	}
	return grouped
}

// ComputeAllEmployeeHours runs the position rule over every employee/day
// combination that has at least one event. Days without punches are never
// synthesized: absence of data is absence of a result, not a zero.
func ComputeAllEmployeeHours(tn *timekit.Normalizer, logger *slog.Logger, events []model.AttendanceEvent) map[string][]model.DailyHoursResult {
	grouped := GroupByEmployeeAndDate(tn, logger, events)
	results := make(map[string][]model.DailyHoursResult, len(grouped))

	for employeeID, byDate := range grouped {
		dates := make([]string, 0, len(byDate))
		for date := range byDate {
			dates = append(dates, date)
		}
		sort.Strings(dates)

		for _, date := range dates {
			dayEvents := byDate[date]
			sort.Slice(dayEvents, func(i, j int) bool {
				return dayEvents[i].Timestamp.Before(dayEvents[j].Timestamp)
			})

			position := dominantPosition(dayEvents)
			calc := CalculateDailyHours(tn, dayEvents, position)

			results[employeeID] = append(results[employeeID], model.DailyHoursResult{
				EmployeeID:        employeeID,
				Date:              date,
				Position:          calc.Position,
				TotalHours:        calc.TotalHours,
				TotalHoursNumeric: calc.TotalHoursNumeric,
				Warnings:          calc.Warnings,
				Shifts:            calc.Shifts,
			})
		}
	}

	return results
}

// dominantPosition picks the position recorded on the day's punches; the
// first non-empty one wins since a device session stamps all punches alike.
func dominantPosition(events []model.AttendanceEvent) string {
	withPosition := utils.Filter(events, func(ev model.AttendanceEvent) bool {
		return ev.Position != ""
	})
	if len(withPosition) == 0 {
		return ""
	}
	return withPosition[0].Position
}
