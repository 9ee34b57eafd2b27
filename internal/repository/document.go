package repository

import (
	"fmt"
	"time"
)

// ID renders the store identifier as a string, whatever its native type.
func (d Document) ID() string {
	switch v := d[IDField].(type) {
	case nil:
		return ""
	case string:
		return v
	case interface{ Hex() string }:
		return v.Hex()
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

func (d Document) GetString(key string) string {
	if s, ok := d[key].(string); ok {
		return s
	}
	return ""
}

// GetStringPtr returns nil for a missing or null field.
func (d Document) GetStringPtr(key string) *string {
	s, ok := d[key].(string)
	if !ok {
		return nil
	}
	return &s
}

// GetStrings returns an empty, non-nil slice when the field is missing.
func (d Document) GetStrings(key string) []string {
	switch v := d[key].(type) {
	case []string:
		out := make([]string, len(v))
		copy(out, v)
		return out
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return []string{}
}

func (d Document) GetBool(key string, fallback bool) bool {
	if b, ok := d[key].(bool); ok {
		return b
	}
	return fallback
}

// GetTime understands native times, driver date types and RFC 3339 strings.
func (d Document) GetTime(key string) *time.Time {
	var t time.Time
	switch v := d[key].(type) {
	case time.Time:
		t = v
	case interface{ Time() time.Time }:
		t = v.Time()
	case string:
		parsed, err := time.Parse(time.RFC3339Nano, v)
		if err != nil {
			return nil
		}
		t = parsed
	default:
		return nil
	}
	t = t.UTC()
	return &t
}

// FormatTimestamp is the string form every timestamp takes in API responses.
func FormatTimestamp(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func optional(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}
