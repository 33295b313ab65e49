// Package validate coerces raw request payloads against declared field
// constraints before anything reaches business logic. A payload may be a
// single object or an array of objects; every element is validated
// independently and all violation messages are reported together.
package validate

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"
)

// ErrNoShape signals a missing or empty shape declaration. This is a
// programming mistake, not caller input, and maps to an internal error.
var ErrNoShape = errors.New("No validation schema provided")

// Check inspects one decoded JSON value and returns violation messages.
// Absent fields are passed as nil so each constraint reports its own message.
type Check func(field string, value any) []string

// Field declares the constraints for a single payload field.
type Field struct {
	Name string
	// Optional skips all checks when the field is absent or null.
	Optional bool
	// When, when set, skips the field entirely unless the predicate holds
	// for the element being validated (conditional requirement).
	When func(obj map[string]any) bool
	Checks []Check
}

// Shape is the declared form of a request payload.
type Shape struct {
	Name   string
	Fields []Field
}

// Element validates one decoded object and returns every violation.
func (s Shape) Element(obj map[string]any) []string {
	var msgs []string
	for _, f := range s.Fields {
		if f.When != nil && !f.When(obj) {
			continue
		}
		v, present := obj[f.Name]
		if (!present || v == nil) && f.Optional {
			continue
		}
		for _, check := range f.Checks {
			msgs = append(msgs, check(f.Name, v)...)
		}
	}
	return msgs
}

// Payload validates body against shape and decodes each element into T.
// batch reports whether the body was an array. On constraint violations the
// collected messages are returned; err is reserved for the defensive
// missing-shape path.
func Payload[T any](body []byte, shape Shape) (items []T, batch bool, violations []string, err error) {
	if len(shape.Fields) == 0 {
		return nil, false, nil, ErrNoShape
	}

	trimmed := bytes.TrimLeft(body, " \t\r\n")
	elems := []json.RawMessage{json.RawMessage(body)}
	if len(trimmed) > 0 && trimmed[0] == '[' {
		batch = true
		elems = nil
		if uerr := json.Unmarshal(body, &elems); uerr != nil {
			return nil, true, []string{"payload must be a JSON array of objects"}, nil
		}
	}

	for _, raw := range elems {
		var obj map[string]any
		if uerr := json.Unmarshal(raw, &obj); uerr != nil {
			violations = append(violations, "payload must be a JSON object")
			continue
		}
		violations = append(violations, shape.Element(obj)...)
	}
	if len(violations) > 0 {
		return nil, batch, violations, nil
	}

	items = make([]T, 0, len(elems))
	for _, raw := range elems {
		var item T
		if uerr := json.Unmarshal(raw, &item); uerr != nil {
			return nil, batch, []string{"payload must match the declared schema"}, nil
		}
		items = append(items, item)
	}
	return items, batch, nil, nil
}

// One is Payload for endpoints that only accept a single object, e.g.
// partial updates.
func One[T any](body []byte, shape Shape) (item T, violations []string, err error) {
	items, batch, violations, err := Payload[T](body, shape)
	if err != nil || violations != nil {
		return item, violations, err
	}
	if batch {
		return item, []string{"payload must be a single object"}, nil
	}
	return items[0], nil, nil
}

// ---------- checks ----------

func IsString(field string, v any) []string {
	if _, ok := v.(string); !ok {
		return []string{fmt.Sprintf("%s must be a string", field)}
	}
	return nil
}

func NotEmpty(field string, v any) []string {
	if s, ok := v.(string); ok && strings.TrimSpace(s) != "" {
		return nil
	}
	return []string{fmt.Sprintf("%s should not be empty", field)}
}

// IsInt accepts JSON numbers without a fractional part.
func IsInt(field string, v any) []string {
	if f, ok := v.(float64); ok && f == math.Trunc(f) {
		return nil
	}
	return []string{fmt.Sprintf("%s must be an integer number", field)}
}

func IsBool(field string, v any) []string {
	if _, ok := v.(bool); !ok {
		return []string{fmt.Sprintf("%s must be a boolean value", field)}
	}
	return nil
}

func IsEnum(values ...string) Check {
	return func(field string, v any) []string {
		if s, ok := v.(string); ok {
			for _, want := range values {
				if s == want {
					return nil
				}
			}
		}
		return []string{fmt.Sprintf("%s must be one of the following values: %s",
			field, strings.Join(values, ", "))}
	}
}

func IsUUID(field string, v any) []string {
	if s, ok := v.(string); ok {
		if err := uuid.Validate(s); err == nil {
			return nil
		}
	}
	return []string{fmt.Sprintf("%s must be a UUID", field)}
}

func IsUUIDList(field string, v any) []string {
	list, ok := v.([]any)
	if !ok {
		return []string{fmt.Sprintf("each value in %s must be a UUID", field)}
	}
	for _, item := range list {
		s, ok := item.(string)
		if !ok {
			return []string{fmt.Sprintf("each value in %s must be a UUID", field)}
		}
		if err := uuid.Validate(s); err != nil {
			return []string{fmt.Sprintf("each value in %s must be a UUID", field)}
		}
	}
	return nil
}

// IsUnicode requires a single pictographic grapheme, see IsPictographic.
func IsUnicode(field string, v any) []string {
	if s, ok := v.(string); ok && IsPictographic(s) {
		return nil
	}
	return []string{fmt.Sprintf("%s must be a valid unicode character", field)}
}
