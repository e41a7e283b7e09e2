package entities

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

var ErrInvalidTimestamp = errors.New("invalid timestamp")

// Timestamp is an instant persisted as epoch milliseconds.
//
// Input is lenient: JSON numbers and digit strings are read as milliseconds,
// "YYYY-MM-DD" as UTC midnight, RFC3339 strings as-is. Output is always
// milliseconds (null for the zero value).
type Timestamp struct {
	time.Time
}

func NewTimestamp(t time.Time) Timestamp {
	if t.IsZero() {
		return Timestamp{}
	}
	return Timestamp{Time: time.UnixMilli(t.UnixMilli()).UTC()}
}

func TimestampFromMillis(ms int64) Timestamp {
	return Timestamp{Time: time.UnixMilli(ms).UTC()}
}

func (t Timestamp) Millis() int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixMilli()
}

// Date formats the calendar day (UTC), empty for the zero value.
func (t Timestamp) Date() string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(dateLayout)
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatInt(t.UnixMilli(), 10)), nil
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*t = Timestamp{}
		return nil
	}

	var raw any
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return err
	}
	parsed, ok := ParseTimestamp(raw)
	if !ok {
		return ErrInvalidTimestamp
	}
	*t = parsed
	return nil
}

// ParseTimestamp coerces a loosely typed value into a Timestamp.
// The boolean is false when v cannot be read as an instant.
func ParseTimestamp(v any) (Timestamp, bool) {
	switch x := v.(type) {
	case Timestamp:
		return x, true
	case time.Time:
		return NewTimestamp(x), true
	case json.Number:
		return parseTimestampString(x.String())
	case float64:
		return TimestampFromMillis(int64(x)), true
	case int64:
		return TimestampFromMillis(x), true
	case int:
		return TimestampFromMillis(int64(x)), true
	case string:
		return parseTimestampString(x)
	}
	return Timestamp{}, false
}

func parseTimestampString(s string) (Timestamp, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Timestamp{}, false
	}
	if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
		return TimestampFromMillis(ms), true
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return TimestampFromMillis(int64(f)), true
	}
	if d, err := time.Parse(dateLayout, s); err == nil {
		return NewTimestamp(d), true
	}
	if ts, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return NewTimestamp(ts), true
	}
	return Timestamp{}, false
}

// StartOfDay truncates t to 00:00 of its calendar day in loc.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}
