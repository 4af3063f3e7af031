package crm

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Optional is a request field that remembers whether it was sent at all.
// A field sent as JSON null has Set=true and Null=true.
type Optional[T any] struct {
	Set   bool
	Null  bool
	Value T
}

// Some returns a present, non-null field.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Value: v}
}

// Null returns a field that was sent as JSON null.
func Null[T any]() Optional[T] {
	return Optional[T]{Set: true, Null: true}
}

// UnmarshalJSON is invoked for JSON null as well, which is what lets Null be recorded.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		var zero T
		o.Null = true
		o.Value = zero
		return nil
	}
	o.Null = false
	return json.Unmarshal(data, &o.Value)
}

// MarshalJSON renders the value, or null when absent or null.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Present() {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}

// Present reports a sent, non-null value.
func (o Optional[T]) Present() bool {
	return o.Set && !o.Null
}

// Or returns the value when present, fallback otherwise.
func (o Optional[T]) Or(fallback T) T {
	if o.Present() {
		return o.Value
	}
	return fallback
}

// Text returns the trimmed string for a present field, or fallback.
func Text(o Optional[string], fallback string) string {
	if !o.Present() {
		return fallback
	}
	return strings.TrimSpace(o.Value)
}

// Required returns the trimmed value of a mandatory field, or an invalid-input error naming it.
// Blank values count as missing.
func Required(field string, o Optional[string]) (string, error) {
	if !o.Present() {
		return "", Invalidf("%s is required", field)
	}
	v := strings.TrimSpace(o.Value)
	if v == "" {
		return "", Invalidf("%s is required", field)
	}
	return v, nil
}

// MergeRequired applies an update to a mandatory field: absent keeps current,
// null or blank is rejected.
func MergeRequired(field string, o Optional[string], current string) (string, error) {
	if !o.Set {
		return current, nil
	}
	return Required(field, o)
}

// Merge applies an update to a text field: absent keeps current, null resets to fallback.
func Merge(o Optional[string], current, fallback string) string {
	switch {
	case !o.Set:
		return current
	case o.Null:
		return fallback
	default:
		return strings.TrimSpace(o.Value)
	}
}

// DateText is a date field as sent by the client. Any JSON value is accepted:
// false, zero and empty arrays or objects read as blank, other non-strings keep
// their raw text and fail to parse later.
type DateText string

// UnmarshalJSON never fails, so a malformed date cannot reject a request.
func (d *DateText) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		*d = DateText(data)
		return nil
	}
	switch x := v.(type) {
	case string:
		*d = DateText(x)
	case bool:
		if x {
			*d = DateText(data)
		} else {
			*d = ""
		}
	case float64:
		if x == 0 {
			*d = ""
		} else {
			*d = DateText(data)
		}
	case []any:
		*d = blankUnless(len(x) > 0, data)
	case map[string]any:
		*d = blankUnless(len(x) > 0, data)
	default:
		*d = DateText(data)
	}
	return nil
}

func blankUnless(filled bool, data []byte) DateText {
	if filled {
		return DateText(data)
	}
	return ""
}

// Blank reports an empty date field, which callers treat like an absent one.
func (d DateText) Blank() bool {
	return strings.TrimSpace(string(d)) == ""
}
