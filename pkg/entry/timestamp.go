package entry

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// LayoutDay is the ISO calendar-day layout used for entry dates.
const LayoutDay = "2006-01-02"

func ParseTime(v string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, v)
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}

// Timestamp serializes as an RFC3339 string.
type Timestamp struct {
	time.Time
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte(`""`), nil
	}
	return []byte(fmt.Sprintf("%q", FormatTime(t.Time))), nil
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	var timestamp string
	if err := json.Unmarshal(b, &timestamp); err != nil {
		return err
	}
	if timestamp == "" {
		t.Time = time.Time{}
		return nil
	}
	var err error
	t.Time, err = ParseTime(timestamp)
	return err
}

func (t Timestamp) String() string {
	return t.UTC().Format(time.RFC3339)
}

func FormatTime(v time.Time) string {
	return v.UTC().Format(time.RFC3339Nano)
}

// Day is a calendar day in YYYY-MM-DD form.
type Day string

// ParseDay validates raw as a calendar day. It also accepts a full RFC3339
// timestamp and truncates it to its date.
func ParseDay(raw string) (Day, error) {
	raw = strings.TrimSpace(raw)
	if t, err := time.Parse(LayoutDay, raw); err == nil {
		return DayOf(t), nil
	}
	if t, err := ParseTime(raw); err == nil {
		return DayOf(t), nil
	}
	return "", fmt.Errorf("%w: invalid date %q, expected YYYY-MM-DD", ErrValidation, raw)
}

// DayOf returns the calendar day of t in t's location.
func DayOf(t time.Time) Day {
	return Day(t.Format(LayoutDay))
}

// Today returns the current local calendar day.
func Today() Day {
	return DayOf(time.Now())
}

func (d Day) IsZero() bool {
	return d == ""
}

// Time returns midnight UTC of the day.
func (d Day) Time() (time.Time, error) {
	return time.Parse(LayoutDay, string(d))
}

func (d Day) String() string {
	return string(d)
}
