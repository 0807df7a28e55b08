package utils

import (
	"reflect"
	"strings"
	"testing"
)

func TestParseCSV(t *testing.T) {
	csvData := `employeeId,type,timestamp
NV001,checkin,2025-01-06T08:00:00+07:00
NV001,checkout,2025-01-06T17:00:00+07:00`

	reader := strings.NewReader(csvData)

	got, err := ParseCSV(reader)
	if err != nil {
		t.Fatalf("ParseCSV returned error: %v", err)
	}

	want := [][]string{
		{"employeeId", "type", "timestamp"},
		{"NV001", "checkin", "2025-01-06T08:00:00+07:00"},
		{"NV001", "checkout", "2025-01-06T17:00:00+07:00"},
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseCSV returned %+v, want %+v", got, want)
	}
}
