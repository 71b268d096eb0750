package intents

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToBool(t *testing.T) {
	for _, value := range []string{"on", "ON", "true", "yes", "1"} {
		b, err := ToBool(value)
		require.NoError(t, err, value)
		assert.True(t, b, value)
	}
	for _, value := range []string{"off", "Off", "false", "no", "0"} {
		b, err := ToBool(value)
		require.NoError(t, err, value)
		assert.False(t, b, value)
	}
	_, err := ToBool("maybe")
	assert.ErrorIs(t, err, ErrEntityValue)
}

func TestToIntToFloat(t *testing.T) {
	n, err := ToInt(" 42 ")
	require.NoError(t, err)
	assert.Equal(t, 42, n)

	_, err = ToInt("forty-two")
	assert.ErrorIs(t, err, ErrEntityValue)

	f, err := ToFloat("2.5")
	require.NoError(t, err)
	assert.Equal(t, 2.5, f)

	_, err = ToFloat("a lot")
	assert.ErrorIs(t, err, ErrEntityValue)
}

func TestToDatetime(t *testing.T) {
	tm, err := ToDatetime("2106-12-31T12:30:00")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2106, 12, 31, 12, 30, 0, 0, time.UTC), tm)

	tm, err = ToDatetime("2106-12-31")
	require.NoError(t, err)
	assert.Equal(t, 2106, tm.Year())

	_, err = ToDatetime("next tuesday")
	assert.ErrorIs(t, err, ErrEntityValue)
}

func TestToDateAndTimeOfDay(t *testing.T) {
	d, err := ToDate("2106-12-31T12:30:00")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2106, 12, 31, 0, 0, 0, 0, time.UTC), d)

	tod, err := ToTimeOfDay("12:30")
	require.NoError(t, err)
	assert.Equal(t, 12, tod.Hour())
	assert.Equal(t, 30, tod.Minute())
}

func TestToDuration(t *testing.T) {
	d, err := ToDuration("PT10M")
	require.NoError(t, err)
	assert.Equal(t, 10*time.Minute, d)

	d, err = ToDuration("P1DT1H")
	require.NoError(t, err)
	assert.Equal(t, 25*time.Hour, d)

	_, err = ToDuration("ten minutes")
	assert.ErrorIs(t, err, ErrEntityValue)
}

func TestToTimeRange(t *testing.T) {
	tr, err := ToTimeRange("2106-12-30T12:00:00/2106-12-31T12:00:00")
	require.NoError(t, err)
	assert.True(t, tr.Contains(time.Date(2106, 12, 31, 0, 0, 0, 0, time.UTC)))
	assert.False(t, tr.Contains(time.Date(2107, 1, 1, 0, 0, 0, 0, time.UTC)))

	tr, err = ToTimeRange("2106-12-30T12:00:00/")
	require.NoError(t, err)
	assert.True(t, tr.End.IsZero())
	assert.True(t, tr.Contains(time.Date(2200, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.False(t, tr.Contains(time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)))

	tr, err = ToTimeRange("/2106-12-31T12:00:00")
	require.NoError(t, err)
	assert.True(t, tr.Begin.IsZero())
	assert.True(t, tr.Contains(time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)))

	_, err = ToTimeRange("2106-12-31T12:00:00")
	assert.ErrorIs(t, err, ErrEntityValue)

	_, err = ToTimeRange("then/now")
	assert.ErrorIs(t, err, ErrEntityValue)
}

func TestRank(t *testing.T) {
	tests := []struct {
		value string
		want  int
	}{
		{"min", 0},
		{"max", -1},
		{"prec", -2},
		{"1", 0},
		{"5", 4},
	}
	for _, tt := range tests {
		got, err := Rank(tt.value)
		require.NoError(t, err, tt.value)
		assert.Equal(t, tt.want, got, tt.value)
	}

	_, err := Rank("first")
	assert.ErrorIs(t, err, ErrEntityValue)
}
