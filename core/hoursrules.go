package core

import (
	"fmt"
	"strings"
	"time"

	"github.com/syduc993/hr-management-system-sub000/model"
	"github.com/syduc993/hr-management-system-sub000/timekit"
)

// ShiftCutoverHour splits a Mascot day into morning and afternoon buckets
// (civil time).
const ShiftCutoverHour = 13

// Positions with their own shift-segmentation rule. The position column is
// free text, so dispatch matches the trimmed value case-insensitively.
const (
	PositionMascot = "mascot"
	PositionPG     = "pg"
	PositionPB     = "pb"
)

// HoursResult is the outcome of running one day's punches through the rule
// for the employee's position.
type HoursResult struct {
	TotalHours        string
	TotalHoursNumeric float64
	Warnings          []string
	Position          string
	Shifts            *model.ShiftBreakdown
}

// CalculateDailyHours converts the attendance events of one employee on one
// civil day into a worked duration plus anomaly warnings. Events are
// expected to belong to a single day; the rule applied depends on the
// position.
func CalculateDailyHours(tn *timekit.Normalizer, events []model.AttendanceEvent, position string) HoursResult {
	var res HoursResult
	switch strings.ToLower(strings.TrimSpace(position)) {
	case PositionMascot:
		res = fixedShiftHours(tn, events)
	case PositionPG, PositionPB:
		res = singlePairHours(events)
	default:
		res = simpleHours(events)
	}

	res.Position = position
	res.TotalHours = FormatDuration(res.TotalHoursNumeric)
	if res.Warnings == nil {
		res.Warnings = []string{}
	}
	return res
}

// simpleHours: earliest check-in to latest check-out. Duplicate punches are
// tolerated; a missing side zeroes the day.
func simpleHours(events []model.AttendanceEvent) HoursResult {
	var res HoursResult

	var firstIn, lastOut *time.Time
	for _, ev := range events {
		ts := ev.Timestamp
		switch ev.Type {
		case model.EventCheckin:
			if firstIn == nil || ts.Before(*firstIn) {
				t := ts
				firstIn = &t
			}
		case model.EventCheckout:
			if lastOut == nil || ts.After(*lastOut) {
				t := ts
				lastOut = &t
			}
		}
	}

	if len(events) > 2 {
		res.Warnings = append(res.Warnings, fmt.Sprintf("%d lần chấm công trong ngày", len(events)))
	}
	if firstIn == nil {
		res.Warnings = append(res.Warnings, "Thiếu check-in")
	}
	if lastOut == nil {
		res.Warnings = append(res.Warnings, "Thiếu check-out")
	}
	if firstIn == nil || lastOut == nil {
		return res
	}

	res.TotalHoursNumeric = flooredHours(*firstIn, *lastOut)
	return res
}

// fixedShiftHours: the Mascot role works two fixed shifts, so a valid day
// is exactly four punches, one in/out pair on each side of the 13:00
// cutover. Anything else earns zero hours, no partial credit.
func fixedShiftHours(tn *timekit.Normalizer, events []model.AttendanceEvent) HoursResult {
	var res HoursResult

	if len(events) != 4 {
		res.Warnings = append(res.Warnings,
			fmt.Sprintf("Mascot cần đúng 4 lần chấm công mỗi ngày, ghi nhận %d", len(events)))
		return res
	}

	var morning, afternoon []model.AttendanceEvent
	for _, ev := range events {
		if ev.Timestamp.In(tn.Location()).Hour() < ShiftCutoverHour {
			morning = append(morning, ev)
		} else {
			afternoon = append(afternoon, ev)
		}
	}

	morningHours, ok := shiftPairHours(morning)
	if !ok {
		res.Warnings = append(res.Warnings, "Ca sáng không đủ một cặp check-in/check-out")
	}
	afternoonHours, ok2 := shiftPairHours(afternoon)
	if !ok2 {
		res.Warnings = append(res.Warnings, "Ca chiều không đủ một cặp check-in/check-out")
	}
	if !ok || !ok2 {
		return res
	}

	res.Shifts = &model.ShiftBreakdown{MorningHours: morningHours, AfternoonHours: afternoonHours}
	res.TotalHoursNumeric = morningHours + afternoonHours
	return res
}

// shiftPairHours expects exactly one check-in and one check-out in the
// bucket and returns their floored duration.
func shiftPairHours(events []model.AttendanceEvent) (float64, bool) {
	var in, out *time.Time
	for _, ev := range events {
		ts := ev.Timestamp
		switch ev.Type {
		case model.EventCheckin:
			if in != nil {
				return 0, false
			}
			in = &ts
		case model.EventCheckout:
			if out != nil {
				return 0, false
			}
			out = &ts
		}
	}
	if in == nil || out == nil {
		return 0, false
	}
	return flooredHours(*in, *out), true
}

// singlePairHours: exactly one check-in and one check-out, no tolerance for
// extra punches.
func singlePairHours(events []model.AttendanceEvent) HoursResult {
	var res HoursResult

	var checkins, checkouts []time.Time
	for _, ev := range events {
		switch ev.Type {
		case model.EventCheckin:
			checkins = append(checkins, ev.Timestamp)
		case model.EventCheckout:
			checkouts = append(checkouts, ev.Timestamp)
		}
	}

	if len(checkins) != 1 {
		res.Warnings = append(res.Warnings,
			fmt.Sprintf("Cần đúng 1 lần check-in, ghi nhận %d", len(checkins)))
	}
	if len(checkouts) != 1 {
		res.Warnings = append(res.Warnings,
			fmt.Sprintf("Cần đúng 1 lần check-out, ghi nhận %d", len(checkouts)))
	}
	if len(checkins) != 1 || len(checkouts) != 1 {
		return res
	}

	res.TotalHoursNumeric = flooredHours(checkins[0], checkouts[0])
	return res
}

func flooredHours(in, out time.Time) float64 {
	hours := out.Sub(in).Hours()
	if hours < 0 {
		return 0
	}
	return hours
}
