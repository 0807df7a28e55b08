package v1

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeEmployeeIDField(t *testing.T) {
	tests := []struct {
		name string
		raw  any
		want string
	}{
		{"bare string", "NV001", "NV001"},
		{"padded string", "  NV001 ", "NV001"},
		{"text object", map[string]any{"text": "NV002"}, "NV002"},
		{"array of text objects", []any{map[string]any{"text": "NV003"}}, "NV003"},
		{"array of strings", []any{"NV004"}, "NV004"},
		{"empty array", []any{}, ""},
		{"nil", nil, ""},
		{"number", 42.0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DecodeEmployeeIDField(tt.raw))
		})
	}
}

func TestStringField(t *testing.T) {
	fields := map[string]any{
		"name":   " Nguyễn Văn A ",
		"count":  float64(3),
		"active": true,
	}

	assert.Equal(t, "Nguyễn Văn A", StringField(fields, "name"))
	assert.Equal(t, "3", StringField(fields, "count"))
	assert.Equal(t, "true", StringField(fields, "active"))
	assert.Equal(t, "", StringField(fields, "missing"))
}

func TestNumberField(t *testing.T) {
	fields := map[string]any{
		"rate":    25000.5,
		"rateStr": "30000",
		"name":    "abc",
	}

	got, ok := NumberField(fields, "rate")
	assert.True(t, ok)
	assert.Equal(t, 25000.5, got)

	got, ok = NumberField(fields, "rateStr")
	assert.True(t, ok)
	assert.Equal(t, 30000.0, got)

	_, ok = NumberField(fields, "name")
	assert.False(t, ok)

	_, ok = NumberField(fields, "missing")
	assert.False(t, ok)
}
