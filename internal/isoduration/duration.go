// Package isoduration converts between time.Duration and the ISO-8601
// duration strings the client task API uses for execution offsets.
// Only the time designators relevant to scheduling are supported: days,
// hours, minutes and seconds with an optional fraction.
package isoduration

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/telekom/voice-skill-sdk/internal/common/apperrors"
)

// ErrInvalidDuration is returned when a string is not a valid ISO-8601 duration.
var ErrInvalidDuration = apperrors.New("invalid ISO-8601 duration")

// Parse converts an ISO-8601 duration string like "P1DT2H30M" or "PT10.5S"
// into a time.Duration. Negative durations and calendar designators (years,
// months, weeks) are not supported.
func Parse(s string) (time.Duration, error) {
	orig := s
	if !strings.HasPrefix(s, "P") {
		return 0, ErrInvalidDuration.Msg("missing P designator: " + orig)
	}
	s = s[1:]
	if s == "" {
		return 0, ErrInvalidDuration.Msg("empty duration: " + orig)
	}

	datePart := s
	timePart := ""
	if i := strings.IndexByte(s, 'T'); i >= 0 {
		datePart, timePart = s[:i], s[i+1:]
		if timePart == "" {
			return 0, ErrInvalidDuration.Msg("empty time part: " + orig)
		}
	}

	var total time.Duration
	if datePart != "" {
		n, rest, err := number(datePart)
		if err != nil || rest != "D" {
			return 0, ErrInvalidDuration.Msg("bad date part: " + orig)
		}
		total += time.Duration(n * float64(24*time.Hour))
	}

	units := []struct {
		designator byte
		unit       time.Duration
	}{
		{'H', time.Hour},
		{'M', time.Minute},
		{'S', time.Second},
	}
	for _, u := range units {
		if timePart == "" {
			break
		}
		n, rest, err := number(timePart)
		if err != nil {
			return 0, ErrInvalidDuration.Msg("bad time part: " + orig)
		}
		if rest == "" || rest[0] != u.designator {
			continue
		}
		total += time.Duration(n * float64(u.unit))
		timePart = rest[1:]
	}
	if timePart != "" {
		return 0, ErrInvalidDuration.Msg("trailing input: " + orig)
	}
	return total, nil
}

// number splits a leading decimal number off s and returns it with the rest.
func number(s string) (float64, string, error) {
	i := 0
	for i < len(s) && (s[i] >= '0' && s[i] <= '9' || s[i] == '.') {
		i++
	}
	if i == 0 {
		return 0, s, fmt.Errorf("no digits")
	}
	n, err := strconv.ParseFloat(s[:i], 64)
	if err != nil {
		return 0, s, err
	}
	return n, s[i:], nil
}

// Format converts a time.Duration into an ISO-8601 duration string.
// Negative durations are clamped to "PT0S".
func Format(d time.Duration) string {
	if d <= 0 {
		return "PT0S"
	}
	var b strings.Builder
	b.WriteByte('P')
	if days := d / (24 * time.Hour); days > 0 {
		fmt.Fprintf(&b, "%dD", days)
		d -= days * 24 * time.Hour
	}
	if d == 0 {
		return b.String()
	}
	b.WriteByte('T')
	if h := d / time.Hour; h > 0 {
		fmt.Fprintf(&b, "%dH", h)
		d -= h * time.Hour
	}
	if m := d / time.Minute; m > 0 {
		fmt.Fprintf(&b, "%dM", m)
		d -= m * time.Minute
	}
	if d > 0 {
		secs := float64(d) / float64(time.Second)
		b.WriteString(strconv.FormatFloat(secs, 'f', -1, 64))
		b.WriteByte('S')
	}
	return b.String()
}
