package booking

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	firstHour = 0
	lastHour  = 24
)

// Span is the calendar footprint of a booking.
// Nightly: start..end are check-in and check-out days.
// Hourly: start == end, with the occupied slots [startHour, endHour).
type Span struct {
	kind      Type
	start     Date
	end       Date
	startHour int
	endHour   int
}

func NewNightlySpan(start, end Date) (Span, error) {
	if start.IsZero() || end.IsZero() || !end.After(start) {
		return Span{}, ErrIncompleteBooking
	}
	return Span{kind: TypeNightly, start: start, end: end}, nil
}

func NewHourlySpan(date Date, startHour, endHour int) (Span, error) {
	if date.IsZero() {
		return Span{}, ErrIncompleteBooking
	}
	if startHour < firstHour || endHour > lastHour {
		return Span{}, ErrInvalidHour
	}
	if endHour <= startHour {
		return Span{}, ErrIncompleteBooking
	}
	return Span{kind: TypeHourly, start: date, end: date, startHour: startHour, endHour: endHour}, nil
}

// ReconstructSpan rebuilds a stored span without re-validating it.
func ReconstructSpan(kind Type, start, end Date, startHour, endHour int) Span {
	return Span{kind: kind, start: start, end: end, startHour: startHour, endHour: endHour}
}

func (s Span) Type() Type      { return s.kind }
func (s Span) Start() Date     { return s.start }
func (s Span) End() Date       { return s.end }
func (s Span) StartHour() int  { return s.startHour }
func (s Span) EndHour() int    { return s.endHour }
func (s Span) IsHourly() bool  { return s.kind == TypeHourly }
func (s Span) IsNightly() bool { return s.kind == TypeNightly }

// Units is the billable duration: nights for nightly, hours for hourly.
func (s Span) Units() int {
	if s.IsHourly() {
		return s.endHour - s.startHour
	}
	return s.start.DaysUntil(s.end)
}

// ParseHour accepts "HH:00" only; bookings are made in whole hours.
func ParseHour(s string) (int, error) {
	hh, mm, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok || len(hh) != 2 || mm != "00" {
		return 0, ErrInvalidHour
	}
	h, err := strconv.Atoi(hh)
	if err != nil || h < firstHour || h > lastHour {
		return 0, ErrInvalidHour
	}
	return h, nil
}

func FormatHour(h int) string {
	return fmt.Sprintf("%02d:00", h)
}
