package intents

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/telekom/voice-skill-sdk/internal/isoduration"
)

// ToBool converts an ON_OFF entity value to a boolean. Accepted values are
// on/off, true/false, yes/no and 0/1, case insensitive.
func ToBool(value string) (bool, error) {
	switch strings.ToLower(value) {
	case "on", "true", "yes", "1":
		return true, nil
	case "off", "false", "no", "0":
		return false, nil
	}
	return false, ErrEntityValue.Msg(fmt.Sprintf("%q is not a proper on/off value", value))
}

// ToInt converts an entity value to an integer.
func ToInt(value string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, ErrEntityValue.Msg(fmt.Sprintf("%q is not an integer", value))
	}
	return n, nil
}

// ToFloat converts an entity value to a float.
func ToFloat(value string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0, ErrEntityValue.Msg(fmt.Sprintf("%q is not a number", value))
	}
	return f, nil
}

// datetimeLayouts are tried in order when parsing date/time entity values.
var datetimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"15:04:05",
	"15:04",
}

// ToDatetime converts an entity value to a point in time.
func ToDatetime(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range datetimeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrEntityValue.Msg(fmt.Sprintf("%q is not a date/time value", value))
}

// ToDate converts an entity value to a date, midnight UTC.
func ToDate(value string) (time.Time, error) {
	t, err := ToDatetime(value)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location()), nil
}

// ToTimeOfDay converts an entity value to a clock time on the zero date.
func ToTimeOfDay(value string) (time.Time, error) {
	t, err := ToDatetime(value)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(0, 1, 1, t.Hour(), t.Minute(), t.Second(), 0, t.Location()), nil
}

// ToDuration converts an ISO-8601 duration entity value to a time.Duration.
func ToDuration(value string) (time.Duration, error) {
	d, err := isoduration.Parse(strings.TrimSpace(value))
	if err != nil {
		return 0, ErrEntityValue.Msg(fmt.Sprintf("%q is not an ISO-8601 duration", value))
	}
	return d, nil
}

// TimeRange is a date/time range entity: "begin/end" with either side open.
type TimeRange struct {
	Begin time.Time
	End   time.Time
}

// ToTimeRange converts a "begin/end" entity value to a TimeRange. An empty
// side leaves the range open at that end.
func ToTimeRange(value string) (TimeRange, error) {
	begin, end, found := strings.Cut(value, "/")
	if !found {
		return TimeRange{}, ErrEntityValue.Msg(fmt.Sprintf("%q is not a time range", value))
	}
	var tr TimeRange
	var err error
	if begin != "" {
		if tr.Begin, err = ToDatetime(begin); err != nil {
			return TimeRange{}, err
		}
	}
	if end != "" {
		if tr.End, err = ToDatetime(end); err != nil {
			return TimeRange{}, err
		}
	}
	return tr, nil
}

// Contains reports whether a point in time falls within the range.
// Open ends match everything on their side.
func (tr TimeRange) Contains(t time.Time) bool {
	if !tr.Begin.IsZero() && t.Before(tr.Begin) {
		return false
	}
	if !tr.End.IsZero() && t.After(tr.End) {
		return false
	}
	return true
}

// Rank converts a GENERIC_ORDER entity value to an index: "min" is 0,
// "max" is -1, "prec" is -2, ordinals are zero-based ("1" is 0).
func Rank(value string) (int, error) {
	switch value {
	case "min":
		return 0, nil
	case "max":
		return -1, nil
	case "prec":
		return -2, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, ErrEntityValue.Msg(fmt.Sprintf("%q is not an order value", value))
	}
	return n - 1, nil
}
