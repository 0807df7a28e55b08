package core

import (
	"fmt"
	"strings"

	basestore "github.com/syduc993/hr-management-system-sub000/basestore/v1"
	"github.com/syduc993/hr-management-system-sub000/model"
	"github.com/syduc993/hr-management-system-sub000/timekit"
)

// Decoding of store rows into domain structs. One bad row must never abort
// an aggregation, so each decoder returns an error the caller logs and
// skips on.

func decodeAttendanceEvent(rec basestore.Record, tn *timekit.Normalizer) (model.AttendanceEvent, error) {
	employeeID := basestore.EmployeeIDField(rec.Fields, "employeeId")
	if employeeID == "" {
		return model.AttendanceEvent{}, fmt.Errorf("record %s: missing employeeId", rec.ID)
	}

	rawTS, ok := rec.Fields["timestamp"]
	if !ok || !tn.IsValidDate(rawTS) {
		return model.AttendanceEvent{}, fmt.Errorf("record %s: missing or invalid timestamp", rec.ID)
	}

	eventType := model.EventType(strings.ToLower(basestore.StringField(rec.Fields, "type")))
	if eventType != model.EventCheckin && eventType != model.EventCheckout {
		return model.AttendanceEvent{}, fmt.Errorf("record %s: unknown event type %q", rec.ID, eventType)
	}

	return model.AttendanceEvent{
		ID:         rec.ID,
		EmployeeID: employeeID,
		Type:       eventType,
		Position:   basestore.StringField(rec.Fields, "position"),
		Timestamp:  tn.ToCivilTime(rawTS),
		Notes:      basestore.StringField(rec.Fields, "notes"),
	}, nil
}

func decodeWorkHistoryEntry(rec basestore.Record, tn *timekit.Normalizer) (model.WorkHistoryEntry, error) {
	employeeID := basestore.EmployeeIDField(rec.Fields, "employeeId")
	requestNo := basestore.StringField(rec.Fields, "requestNo")
	if employeeID == "" || requestNo == "" {
		return model.WorkHistoryEntry{}, fmt.Errorf("record %s: missing employeeId or requestNo", rec.ID)
	}

	fromDate, err := tn.ParseDate(basestore.StringField(rec.Fields, "fromDate"))
	if err != nil {
		return model.WorkHistoryEntry{}, fmt.Errorf("record %s: bad fromDate: %w", rec.ID, err)
	}
	toDate, err := tn.ParseDate(basestore.StringField(rec.Fields, "toDate"))
	if err != nil {
		return model.WorkHistoryEntry{}, fmt.Errorf("record %s: bad toDate: %w", rec.ID, err)
	}

	entry := model.WorkHistoryEntry{
		ID:         rec.ID,
		EmployeeID: employeeID,
		RequestNo:  requestNo,
		FromDate:   fromDate,
		ToDate:     toDate,
	}
	if rate, ok := basestore.NumberField(rec.Fields, "hourlyRate"); ok {
		entry.HourlyRate = &rate
	}
	return entry, nil
}

func decodeStaffingRequest(rec basestore.Record, tn *timekit.Normalizer) (model.StaffingRequest, error) {
	requestNo := basestore.StringField(rec.Fields, "requestNo")
	if requestNo == "" {
		return model.StaffingRequest{}, fmt.Errorf("record %s: missing requestNo", rec.ID)
	}

	fromDate, err := tn.ParseDate(basestore.StringField(rec.Fields, "fromDate"))
	if err != nil {
		return model.StaffingRequest{}, fmt.Errorf("record %s: bad fromDate: %w", rec.ID, err)
	}
	toDate, err := tn.ParseDate(basestore.StringField(rec.Fields, "toDate"))
	if err != nil {
		return model.StaffingRequest{}, fmt.Errorf("record %s: bad toDate: %w", rec.ID, err)
	}

	quantity, _ := basestore.NumberField(rec.Fields, "quantity")

	return model.StaffingRequest{
		ID:         rec.ID,
		RequestNo:  requestNo,
		Department: basestore.StringField(rec.Fields, "department"),
		Status:     basestore.StringField(rec.Fields, "status"),
		Quantity:   int(quantity),
		Gender:     basestore.StringField(rec.Fields, "gender"),
		FromDate:   fromDate,
		ToDate:     toDate,
		Position:   basestore.StringField(rec.Fields, "position"),
	}, nil
}

func decodeEmployee(rec basestore.Record) (model.Employee, error) {
	employeeID := basestore.EmployeeIDField(rec.Fields, "employeeId")
	if employeeID == "" {
		return model.Employee{}, fmt.Errorf("record %s: missing employeeId", rec.ID)
	}
	return model.Employee{
		ID:         rec.ID,
		EmployeeID: employeeID,
		FullName:   basestore.StringField(rec.Fields, "fullName"),
		Position:   basestore.StringField(rec.Fields, "position"),
		Status:     basestore.StringField(rec.Fields, "status"),
	}, nil
}

func decodeEmployeeHoursRow(rec basestore.Record) (model.EmployeeHoursRow, error) {
	employeeID := basestore.EmployeeIDField(rec.Fields, "employeeId")
	if employeeID == "" {
		return model.EmployeeHoursRow{}, fmt.Errorf("record %s: missing employeeId", rec.ID)
	}
	hours, ok := basestore.NumberField(rec.Fields, "totalHours")
	if !ok {
		return model.EmployeeHoursRow{}, fmt.Errorf("record %s: missing totalHours", rec.ID)
	}
	return model.EmployeeHoursRow{EmployeeID: employeeID, TotalHours: hours}, nil
}
