package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidUUID(t *testing.T) {
	valid := []string{
		"0188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b",
		"0188D0F2-7B8C-7B4A-8A2B-6B8B8B8B8B8B",
	}
	invalid := []string{
		"123e4567-e89b-12d3-a456-426614174000", // not v7
		"0188d0f27b8c7b4a8a2b6b8b8b8b8b8b",     // missing dashes
		"g188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b", // invalid hex
		"",
	}
	for _, uuid := range valid {
		if !IsValidUUID(uuid) {
			t.Errorf("IsValidUUID(%q) = false, want true", uuid)
		}
	}
	for _, uuid := range invalid {
		if IsValidUUID(uuid) {
			t.Errorf("IsValidUUID(%q) = true, want false", uuid)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	_, ok := IsValidDate("2025-03-03")
	assert.True(t, ok)

	for _, bad := range []string{"2025-13-01", "03.03.2025", "", "2025-3-3"} {
		_, ok := IsValidDate(bad)
		assert.False(t, ok, bad)
	}
}

func TestNormalizePhone(t *testing.T) {
	cases := []struct {
		input string
		want  string
		ok    bool
	}{
		{"+996 (507) 31-03-10", "+996507310310", true},
		{"996507310310", "+996507310310", true},
		{"0555 12 34 56", "+0555123456", true},
		{"   ", "", false},
		{"+()-", "", false},
		{"٣٤٥", "", false},
	}
	for _, c := range cases {
		got, ok := NormalizePhone(c.input)
		assert.Equal(t, c.ok, ok, c.input)
		assert.Equal(t, c.want, got, c.input)
	}
}

func TestValidationErrors(t *testing.T) {
	var errs ValidationErrors
	assert.NoError(t, errs.Err())

	errs.Add("employee_id", "employee_id is required")
	errs.Add("date", "date must be YYYY-MM-DD")

	err := errs.Err()
	assert.Error(t, err)
	assert.Equal(t, "employee_id: employee_id is required; date: date must be YYYY-MM-DD", err.Error())
	assert.Equal(t, map[string]string{
		"employee_id": "employee_id is required",
		"date":        "date must be YYYY-MM-DD",
	}, errs.ToMap())
}

func TestValidationErrors_IDs(t *testing.T) {
	const id = "0188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b"

	var errs ValidationErrors
	errs.RequiredID("employee_id", id)
	errs.OptionalID("employee_id", "")
	errs.IDs("ids", []string{id, id})
	assert.NoError(t, errs.Err())

	errs.RequiredID("employee_id", " ")
	errs.RequiredID("work_day_id", "day-1")
	errs.OptionalID("filter", "42")
	errs.IDs("ids", nil)
	errs.IDs("work_day_ids", []string{id, "x", "y"})

	assert.Equal(t, ValidationErrors{
		{Field: "employee_id", Message: "employee_id is required"},
		{Field: "work_day_id", Message: "work_day_id must be a valid id"},
		{Field: "filter", Message: "filter must be a valid id"},
		{Field: "ids", Message: "at least one id is required"},
		{Field: "work_day_ids", Message: "work_day_ids must contain valid ids"},
	}, errs)
}
