package queries

//go:generate mockgen -source=availability.go -destination=../../../tests/mock/queries/availability.go -package=queriesmock

import (
	"context"

	"villanest/internal/domain/booking"
	"villanest/internal/pkg/clock"
	"villanest/internal/usecase/shared"

	"github.com/google/uuid"
)

type QuoteInput struct {
	Span   booking.Span
	Stay   booking.StayType
	Guests int
	Rooms  int
}

type AvailabilityQueries interface {
	// GetAvailability lists blocked days from today on, and the booked hours
	// on date when one is given.
	GetAvailability(ctx context.Context, villaID uuid.UUID, date *booking.Date) (*AvailabilityView, error)
	Quote(ctx context.Context, villaID uuid.UUID, in QuoteInput) (*QuoteView, error)
}

type availabilityQueriesImpl struct {
	villas   VillaQueries
	bookings BookingReadStore
	policy   shared.BookingPolicy
	clock    clock.Clock
}

func NewAvailabilityQueries(villas VillaQueries, bookings BookingReadStore, policy shared.BookingPolicy, clk clock.Clock) AvailabilityQueries {
	return &availabilityQueriesImpl{villas: villas, bookings: bookings, policy: policy, clock: clk}
}

func (q *availabilityQueriesImpl) GetAvailability(ctx context.Context, villaID uuid.UUID, date *booking.Date) (*AvailabilityView, error) {
	if _, err := q.villas.GetByID(ctx, villaID, false); err != nil {
		return nil, err
	}

	spans, err := q.bookings.ConfirmedSpans(ctx, villaID)
	if err != nil {
		return nil, err
	}

	today := booking.DateOf(q.clock.Now())
	view := &AvailabilityView{
		VillaID:      villaID,
		BlockedDates: q.policy.Checker.BlockedDates(spans, today),
		BookedHours:  []int{},
	}
	if date != nil {
		view.Date = date
		view.BookedHours = booking.BookedHours(spans, *date)
	}
	return view, nil
}

func (q *availabilityQueriesImpl) Quote(ctx context.Context, villaID uuid.UUID, in QuoteInput) (*QuoteView, error) {
	if err := q.policy.Checker.CheckLength(in.Span); err != nil {
		return nil, err
	}
	v, err := q.villas.GetByID(ctx, villaID, false)
	if err != nil {
		return nil, err
	}

	rate := booking.RateFor(in.Span.Type(), v.PricePerNight, v.PriceHourly, q.policy.DefaultHourlyRate)
	quote, err := booking.QuoteSpan(in.Span, rate, in.Stay, in.Guests, in.Rooms)
	if err != nil {
		return nil, err
	}

	return &QuoteView{
		BookingType: in.Span.Type().String(),
		StayType:    in.Stay.String(),
		Units:       quote.Units,
		Rate:        quote.Rate,
		Multiplier:  quote.Multiplier,
		BasePrice:   quote.Base,
		TaxAmount:   quote.Tax,
		TotalPrice:  quote.Total,
	}, nil
}
