package isoduration

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want time.Duration
	}{
		{"PT0S", 0},
		{"PT10S", 10 * time.Second},
		{"PT10.5S", 10*time.Second + 500*time.Millisecond},
		{"PT5M", 5 * time.Minute},
		{"PT1H30M", 90 * time.Minute},
		{"P1D", 24 * time.Hour},
		{"P1DT2H30M", 26*time.Hour + 30*time.Minute},
		{"PT1H30M15S", time.Hour + 30*time.Minute + 15*time.Second},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			got, err := Parse(c.in)
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestParseInvalid(t *testing.T) {
	for _, in := range []string{"", "P", "PT", "10S", "PT5X", "P1W", "PTxS", "P1DT"} {
		t.Run(in, func(t *testing.T) {
			_, err := Parse(in)
			assert.ErrorIs(t, err, ErrInvalidDuration)
		})
	}
}

func TestFormat(t *testing.T) {
	cases := []struct {
		in   time.Duration
		want string
	}{
		{0, "PT0S"},
		{-time.Second, "PT0S"},
		{10 * time.Second, "PT10S"},
		{10*time.Second + 500*time.Millisecond, "PT10.5S"},
		{5 * time.Minute, "PT5M"},
		{90 * time.Minute, "PT1H30M"},
		{24 * time.Hour, "P1D"},
		{26*time.Hour + 30*time.Minute, "P1DT2H30M"},
	}
	for _, c := range cases {
		t.Run(c.want, func(t *testing.T) {
			assert.Equal(t, c.want, Format(c.in))
		})
	}
}

func TestRoundTrip(t *testing.T) {
	for _, d := range []time.Duration{time.Second, 42 * time.Minute, 25 * time.Hour} {
		got, err := Parse(Format(d))
		require.NoError(t, err)
		assert.Equal(t, d, got)
	}
}
