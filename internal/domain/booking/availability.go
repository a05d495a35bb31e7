package booking

import "sort"

type OverlapPolicy int

const (
	// ClosedInterval treats both boundary days as occupied, so a stay that
	// starts on another stay's check-out day conflicts with it.
	ClosedInterval OverlapPolicy = iota
	// SameDayTurnover frees the check-out day for the next arrival.
	SameDayTurnover
)

func PolicyFor(sameDayTurnover bool) OverlapPolicy {
	if sameDayTurnover {
		return SameDayTurnover
	}
	return ClosedInterval
}

const (
	DefaultMaxNights = 90

	// BlockedDatesHorizon bounds how far ahead BlockedDates reports.
	BlockedDatesHorizon = 730
)

// Checker decides whether a requested span can be admitted next to the
// confirmed spans already held for the same villa.
type Checker struct {
	policy    OverlapPolicy
	maxNights int
}

func NewChecker(policy OverlapPolicy) Checker {
	return Checker{policy: policy, maxNights: DefaultMaxNights}
}

// WithMaxNights returns a copy of c capping nightly stays at n nights.
// A non-positive n keeps the current cap.
func (c Checker) WithMaxNights(n int) Checker {
	if n > 0 {
		c.maxNights = n
	}
	return c
}

func (c Checker) Policy() OverlapPolicy { return c.policy }
func (c Checker) MaxNights() int        { return c.maxNights }

// CheckLength rejects nightly spans longer than the configured cap.
func (c Checker) CheckLength(s Span) error {
	if s.IsNightly() && s.Units() > c.maxNights {
		return ErrStayTooLong
	}
	return nil
}

func (c Checker) Check(req Span, existing []Span) error {
	if err := c.CheckLength(req); err != nil {
		return err
	}
	if c.Conflicts(req, existing) {
		return ErrUnavailable
	}
	return nil
}

func (c Checker) Conflicts(req Span, existing []Span) bool {
	for _, ex := range existing {
		if c.conflict(req, ex) {
			return true
		}
	}
	return false
}

func (c Checker) conflict(a, b Span) bool {
	if a.IsHourly() && b.IsHourly() {
		return a.start.Equal(b.start) && a.startHour < b.endHour && b.startHour < a.endHour
	}
	return c.daysOverlap(a, b)
}

func (c Checker) daysOverlap(a, b Span) bool {
	aStart, aEnd := c.dayBounds(a)
	bStart, bEnd := c.dayBounds(b)
	if c.policy == SameDayTurnover {
		return aStart.Before(bEnd) && bStart.Before(aEnd)
	}
	return !aStart.After(bEnd) && !bStart.After(aEnd)
}

// dayBounds returns the occupied days as [start, end] under ClosedInterval
// and as [start, end) under SameDayTurnover.
func (c Checker) dayBounds(s Span) (Date, Date) {
	if c.policy == SameDayTurnover && s.IsHourly() {
		return s.start, s.start.AddDays(1)
	}
	return s.start, s.end
}

// BookedHours lists the hour slots held by hourly spans on date, ascending.
func BookedHours(existing []Span, date Date) []int {
	taken := make(map[int]struct{})
	for _, ex := range existing {
		if !ex.IsHourly() || !ex.start.Equal(date) {
			continue
		}
		for h := ex.startHour; h < ex.endHour; h++ {
			taken[h] = struct{}{}
		}
	}
	hours := make([]int, 0, len(taken))
	for h := range taken {
		hours = append(hours, h)
	}
	sort.Ints(hours)
	return hours
}

// BlockedDates lists the days covered by nightly spans, from the given day
// up to BlockedDatesHorizon days ahead.
func (c Checker) BlockedDates(existing []Span, from Date) []Date {
	horizon := from.AddDays(BlockedDatesHorizon - 1)
	seen := make(map[Date]struct{})
	for _, ex := range existing {
		if !ex.IsNightly() {
			continue
		}
		first, last := ex.start, ex.end
		if c.policy == SameDayTurnover {
			last = ex.end.AddDays(-1)
		}
		if first.Before(from) {
			first = from
		}
		if last.After(horizon) {
			last = horizon
		}
		for d := first; !d.After(last); d = d.AddDays(1) {
			seen[d] = struct{}{}
		}
	}
	dates := make([]Date, 0, len(seen))
	for d := range seen {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates
}
