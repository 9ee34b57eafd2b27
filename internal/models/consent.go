package models

import (
	"bytes"
	"encoding/json"
	"strings"
)

// FieldError is a request body field that could not be decoded.
type FieldError struct {
	Field string
	Msg   string
	Type  string
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Msg
}

var (
	truthy = map[string]bool{"true": true, "t": true, "yes": true, "y": true, "on": true, "1": true}
	falsy  = map[string]bool{"false": true, "f": true, "no": true, "n": true, "off": true, "0": true}
)

// ConsentFlag is the inquiry consent checkbox. It accepts JSON booleans, 0/1 and the
// usual form strings ("yes", "on", "off", ...). Null is rejected.
type ConsentFlag struct {
	Value bool
	// Set is false when the field was absent from the body.
	Set bool
}

func (c *ConsentFlag) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return &FieldError{Field: "consent", Msg: "Input should be a valid boolean", Type: "bool_type"}
	}

	var token string
	switch data[0] {
	case '"':
		if err := json.Unmarshal(data, &token); err != nil {
			return err
		}
		token = strings.ToLower(token)
	case '{', '[':
		return &FieldError{Field: "consent", Msg: "Input should be a valid boolean", Type: "bool_type"}
	default:
		token = string(data)
		// 1.0 and 0.0 count as 1 and 0
		if f, err := json.Number(token).Float64(); err == nil {
			switch f {
			case 1:
				token = "1"
			case 0:
				token = "0"
			}
		}
	}

	switch {
	case truthy[token]:
		c.Value, c.Set = true, true
	case falsy[token]:
		c.Value, c.Set = false, true
	default:
		return &FieldError{
			Field: "consent",
			Msg:   "Input should be a valid boolean, unable to interpret input",
			Type:  "bool_parsing",
		}
	}
	return nil
}
