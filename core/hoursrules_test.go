package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/syduc993/hr-management-system-sub000/model"
	"github.com/syduc993/hr-management-system-sub000/timekit"
)

func punch(t *testing.T, eventType model.EventType, hour, minute int) model.AttendanceEvent {
	t.Helper()
	return model.AttendanceEvent{
		EmployeeID: "NV001",
		Type:       eventType,
		Timestamp:  time.Date(2025, 1, 6, hour, minute, 0, 0, timekit.HoChiMinhTZ),
	}
}

func TestCalculateDailyHoursSimple(t *testing.T) {
	tn := timekit.NewNormalizer(nil)

	events := []model.AttendanceEvent{
		punch(t, model.EventCheckin, 8, 0),
		punch(t, model.EventCheckout, 17, 30),
	}

	res := CalculateDailyHours(tn, events, "Nhân viên bán hàng")
	assert.InDelta(t, 9.5, res.TotalHoursNumeric, 0.001)
	assert.Equal(t, "9 giờ 30 phút", res.TotalHours)
	assert.Empty(t, res.Warnings)
	assert.Nil(t, res.Shifts)
}

func TestCalculateDailyHoursSimpleSpansEarliestToLatest(t *testing.T) {
	tn := timekit.NewNormalizer(nil)

	// Duplicate punches are tolerated but flagged; the span is still
	// earliest check-in to latest check-out.
	events := []model.AttendanceEvent{
		punch(t, model.EventCheckin, 9, 0),
		punch(t, model.EventCheckin, 8, 0),
		punch(t, model.EventCheckout, 12, 0),
		punch(t, model.EventCheckout, 17, 0),
	}

	res := CalculateDailyHours(tn, events, "")
	assert.InDelta(t, 9, res.TotalHoursNumeric, 0.001)
	assert.Contains(t, res.Warnings, "4 lần chấm công trong ngày")
}

func TestCalculateDailyHoursSimpleMissingCheckout(t *testing.T) {
	tn := timekit.NewNormalizer(nil)

	events := []model.AttendanceEvent{punch(t, model.EventCheckin, 8, 0)}

	res := CalculateDailyHours(tn, events, "")
	assert.Zero(t, res.TotalHoursNumeric)
	assert.Equal(t, ZeroDuration, res.TotalHours)
	assert.Contains(t, res.Warnings, "Thiếu check-out")
	assert.NotContains(t, res.Warnings, "Thiếu check-in")
}

func TestCalculateDailyHoursSimpleCheckoutBeforeCheckin(t *testing.T) {
	tn := timekit.NewNormalizer(nil)

	events := []model.AttendanceEvent{
		punch(t, model.EventCheckin, 17, 0),
		punch(t, model.EventCheckout, 8, 0),
	}

	res := CalculateDailyHours(tn, events, "")
	assert.Zero(t, res.TotalHoursNumeric)
}

func TestCalculateDailyHoursMascot(t *testing.T) {
	tn := timekit.NewNormalizer(nil)

	events := []model.AttendanceEvent{
		punch(t, model.EventCheckin, 8, 0),
		punch(t, model.EventCheckout, 12, 0),
		punch(t, model.EventCheckin, 13, 0),
		punch(t, model.EventCheckout, 17, 0),
	}

	res := CalculateDailyHours(tn, events, "Mascot")
	assert.InDelta(t, 8, res.TotalHoursNumeric, 0.001)
	assert.Equal(t, "8 giờ", res.TotalHours)
	assert.Empty(t, res.Warnings)
	if assert.NotNil(t, res.Shifts) {
		assert.InDelta(t, 4, res.Shifts.MorningHours, 0.001)
		assert.InDelta(t, 4, res.Shifts.AfternoonHours, 0.001)
	}
}

func TestCalculateDailyHoursMascotWrongPunchCount(t *testing.T) {
	tn := timekit.NewNormalizer(nil)

	events := []model.AttendanceEvent{
		punch(t, model.EventCheckin, 8, 0),
		punch(t, model.EventCheckout, 12, 0),
		punch(t, model.EventCheckin, 13, 0),
	}

	res := CalculateDailyHours(tn, events, "mascot")
	assert.Zero(t, res.TotalHoursNumeric)
	assert.Contains(t, res.Warnings, "Mascot cần đúng 4 lần chấm công mỗi ngày, ghi nhận 3")
	assert.Nil(t, res.Shifts)
}

func TestCalculateDailyHoursMascotUnbalancedShift(t *testing.T) {
	tn := timekit.NewNormalizer(nil)

	// Four punches but both check-ins land in the morning bucket, so
	// neither shift has a full pair. No partial credit.
	events := []model.AttendanceEvent{
		punch(t, model.EventCheckin, 8, 0),
		punch(t, model.EventCheckin, 9, 0),
		punch(t, model.EventCheckout, 14, 0),
		punch(t, model.EventCheckout, 17, 0),
	}

	res := CalculateDailyHours(tn, events, "Mascot")
	assert.Zero(t, res.TotalHoursNumeric)
	assert.Contains(t, res.Warnings, "Ca sáng không đủ một cặp check-in/check-out")
	assert.Contains(t, res.Warnings, "Ca chiều không đủ một cặp check-in/check-out")
}

func TestCalculateDailyHoursSinglePair(t *testing.T) {
	tn := timekit.NewNormalizer(nil)

	events := []model.AttendanceEvent{
		punch(t, model.EventCheckin, 9, 0),
		punch(t, model.EventCheckout, 16, 30),
	}

	res := CalculateDailyHours(tn, events, "PG")
	assert.InDelta(t, 7.5, res.TotalHoursNumeric, 0.001)
	assert.Equal(t, "7 giờ 30 phút", res.TotalHours)
	assert.Empty(t, res.Warnings)
}

func TestCalculateDailyHoursSinglePairExtraPunches(t *testing.T) {
	tn := timekit.NewNormalizer(nil)

	events := []model.AttendanceEvent{
		punch(t, model.EventCheckin, 9, 0),
		punch(t, model.EventCheckin, 9, 5),
		punch(t, model.EventCheckout, 16, 30),
	}

	res := CalculateDailyHours(tn, events, "pb")
	assert.Zero(t, res.TotalHoursNumeric)
	assert.Contains(t, res.Warnings, "Cần đúng 1 lần check-in, ghi nhận 2")
}

func TestCalculateDailyHoursPositionDispatchIsLenient(t *testing.T) {
	tn := timekit.NewNormalizer(nil)

	events := []model.AttendanceEvent{
		punch(t, model.EventCheckin, 8, 0),
		punch(t, model.EventCheckout, 12, 0),
		punch(t, model.EventCheckin, 13, 0),
		punch(t, model.EventCheckout, 17, 0),
	}

	// Padding and casing on the position must not bypass the fixed-shift
	// rule.
	res := CalculateDailyHours(tn, events, "  MASCOT ")
	assert.NotNil(t, res.Shifts)
	assert.Equal(t, "  MASCOT ", res.Position)
}
