//go:build unit

package booking_test

import (
	"testing"

	"villanest/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNightlySpan(t *testing.T) {
	start := booking.NewDate(2030, 6, 10)

	s, err := booking.NewNightlySpan(start, start.AddDays(3))
	require.NoError(t, err)
	assert.True(t, s.IsNightly())
	assert.Equal(t, 3, s.Units())

	_, err = booking.NewNightlySpan(start, start)
	assert.ErrorIs(t, err, booking.ErrIncompleteBooking)

	_, err = booking.NewNightlySpan(start, start.AddDays(-1))
	assert.ErrorIs(t, err, booking.ErrIncompleteBooking)

	_, err = booking.NewNightlySpan(booking.Date{}, start)
	assert.ErrorIs(t, err, booking.ErrIncompleteBooking)
}

func TestNewHourlySpan(t *testing.T) {
	date := booking.NewDate(2030, 6, 10)

	s, err := booking.NewHourlySpan(date, 14, 17)
	require.NoError(t, err)
	assert.True(t, s.IsHourly())
	assert.Equal(t, 3, s.Units())
	assert.Equal(t, date, s.End())

	whole, err := booking.NewHourlySpan(date, 0, 24)
	require.NoError(t, err)
	assert.Equal(t, 24, whole.Units())

	_, err = booking.NewHourlySpan(date, 17, 14)
	assert.ErrorIs(t, err, booking.ErrIncompleteBooking)

	_, err = booking.NewHourlySpan(date, 14, 14)
	assert.ErrorIs(t, err, booking.ErrIncompleteBooking)

	_, err = booking.NewHourlySpan(date, 20, 25)
	assert.ErrorIs(t, err, booking.ErrInvalidHour)
}

func TestParseHour(t *testing.T) {
	tests := []struct {
		in    string
		want  int
		valid bool
	}{
		{in: "00:00", want: 0, valid: true},
		{in: "14:00", want: 14, valid: true},
		{in: "24:00", want: 24, valid: true},
		{in: " 09:00 ", want: 9, valid: true},
		{in: "14:30", valid: false},
		{in: "9:00", valid: false},
		{in: "25:00", valid: false},
		{in: "ab:00", valid: false},
		{in: "", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := booking.ParseHour(tt.in)
			if !tt.valid {
				assert.ErrorIs(t, err, booking.ErrInvalidHour)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	assert.Equal(t, "09:00", booking.FormatHour(9))
}

func TestParseDate(t *testing.T) {
	d, err := booking.ParseDate("2030-02-28")
	require.NoError(t, err)
	assert.Equal(t, booking.NewDate(2030, 2, 28), d)
	assert.Equal(t, "2030-03-01", d.AddDays(1).String())

	_, err = booking.ParseDate("2030-02-30")
	assert.ErrorIs(t, err, booking.ErrInvalidDate)

	_, err = booking.ParseDate("28/02/2030")
	assert.ErrorIs(t, err, booking.ErrInvalidDate)
}
