package validator

import (
	"regexp"
	"strings"
	"time"
	"unicode"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// Add appends a field error.
func (v *ValidationErrors) Add(field, message string) {
	*v = append(*v, ValidationError{Field: field, Message: message})
}

// Err returns nil when no errors were collected.
func (v ValidationErrors) Err() error {
	if len(v) == 0 {
		return nil
	}
	return v
}

// OptionalDate parses a YYYY-MM-DD value, recording an error under field
// when it is malformed. An empty value yields nil.
func (v *ValidationErrors) OptionalDate(field, value string) *time.Time {
	if value == "" {
		return nil
	}
	d, ok := IsValidDate(value)
	if !ok {
		v.Add(field, field+" must be in YYYY-MM-DD format")
		return nil
	}
	return &d
}

// RequiredID records an error under field when value is empty or not a record id.
func (v *ValidationErrors) RequiredID(field, value string) {
	if IsEmpty(value) {
		v.Add(field, field+" is required")
		return
	}
	v.OptionalID(field, value)
}

// OptionalID records an error under field when a non-empty value is not a record id.
func (v *ValidationErrors) OptionalID(field, value string) {
	if value != "" && !IsValidUUID(value) {
		v.Add(field, field+" must be a valid id")
	}
}

// IDs records a single error under field when values is empty or holds a
// value that is not a record id.
func (v *ValidationErrors) IDs(field string, values []string) {
	if len(values) == 0 {
		v.Add(field, "at least one id is required")
		return
	}
	for _, value := range values {
		if !IsValidUUID(value) {
			v.Add(field, field+" must contain valid ids")
			return
		}
	}
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

// UUIDv7 regex: version 7 (the 15th character must be '7'), all lowercase hex digits.
var uuidv7Regex = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-7[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)

// UUIDv7 validation
func IsValidUUID(uuid string) bool {
	return uuidv7Regex.MatchString(strings.ToLower(uuid))
}

// Date validation
func IsValidDate(dateStr string) (time.Time, bool) {
	date, err := time.Parse("2006-01-02", dateStr)
	return date, err == nil
}

// NormalizePhone keeps the digits of phone and prefixes them with "+".
// It reports false when phone has no digits at all.
func NormalizePhone(phone string) (string, bool) {
	var b strings.Builder
	b.WriteByte('+')
	for _, r := range phone {
		if r <= unicode.MaxASCII && unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	if b.Len() == 1 {
		return "", false
	}
	return b.String(), true
}
