package communication

import (
	"fmt"
	"sort"
	"strings"

	"github.com/syduc993/hr-management-system-sub000/model"
)

// FormatAnomalyDigest builds the daily message listing every attendance
// warning, grouped per employee. Returns "" when there is nothing to report
// so callers can skip the post entirely.
func FormatAnomalyDigest(hours map[string][]model.DailyHoursResult) string {
	var lines []string

	employeeIDs := make([]string, 0, len(hours))
	for id := range hours {
		employeeIDs = append(employeeIDs, id)
	}
	sort.Strings(employeeIDs)

	for _, id := range employeeIDs {
		for _, day := range hours[id] {
			for _, warning := range day.Warnings {
				lines = append(lines, fmt.Sprintf("• %s (%s): %s", id, day.Date, warning))
			}
		}
	}

	if len(lines) == 0 {
		return ""
	}

	return fmt.Sprintf("*Cảnh báo chấm công (%d)*\n%s", len(lines), strings.Join(lines, "\n"))
}

// FormatSummaryNotice is the short confirmation posted after the hours
// report is generated and archived.
func FormatSummaryNotice(key string, summaries []model.RequestHoursSummary) string {
	total := 0
	for _, sum := range summaries {
		total += sum.TotalEmployees
	}
	return fmt.Sprintf("Đã xuất báo cáo giờ công: %d phiếu, %d nhân viên (%s)", len(summaries), total, key)
}
