package crm

import (
	"strings"
	"time"
)

// Wire formats for rendered timestamps.
const (
	DateTimeLayout = "2006-01-02 15:04"
	DateLayout     = "2006-01-02"
)

// Accepted input layouts: one ISO-8601 family, date only or date plus time with
// either 'T' or a space, optional seconds and fraction. Offsets are handled
// separately in ParseTimestamp.
var inputLayouts = []string{
	"2006-01-02",
	"2006-01-02T15:04",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04",
	"2006-01-02 15:04:05.999999999",
}

var offsetLayouts = []string{
	"2006-01-02T15:04Z07:00",
	time.RFC3339Nano,
	"2006-01-02 15:04Z07:00",
	"2006-01-02 15:04:05.999999999Z07:00",
}

// ParseTimestamp parses an ISO-8601-like value. Values without an offset are
// taken as UTC; values with one are converted to UTC.
func ParseTimestamp(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range inputLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), true
		}
	}
	for _, layout := range offsetLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// Now is the timestamp source for created_at and date defaults.
func Now() time.Time {
	return time.Now().UTC()
}

// DateTime renders as "YYYY-MM-DD HH:MM" in JSON.
type DateTime struct {
	time.Time
}

// NewDateTime wraps t.
func NewDateTime(t time.Time) DateTime {
	return DateTime{Time: t.UTC()}
}

// MarshalJSON implements json.Marshaler.
func (t DateTime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.UTC().Format(DateTimeLayout) + `"`), nil
}

// String implements fmt.Stringer with the wire format.
func (t DateTime) String() string {
	return t.UTC().Format(DateTimeLayout)
}

// Date renders as "YYYY-MM-DD" in JSON; use *Date for nullable columns.
type Date struct {
	time.Time
}

// NewDate wraps t; a nil t yields nil so the field serializes as null.
func NewDate(t *time.Time) *Date {
	if t == nil {
		return nil
	}
	return &Date{Time: t.UTC()}
}

// MarshalJSON implements json.Marshaler.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.UTC().Format(DateLayout) + `"`), nil
}

// String implements fmt.Stringer with the wire format.
func (d Date) String() string {
	return d.UTC().Format(DateLayout)
}
