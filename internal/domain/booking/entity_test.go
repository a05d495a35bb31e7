//go:build unit

package booking_test

import (
	"testing"
	"time"

	"villanest/internal/domain/booking"
	"villanest/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBooking(t *testing.T) {
	now := time.Date(2030, 6, 1, 10, 0, 0, 0, time.UTC)
	today := booking.DateOf(now)

	params := func(mutate func(*booking.NewParams)) booking.NewParams {
		span, err := booking.NewNightlySpan(today.AddDays(5), today.AddDays(8))
		require.NoError(t, err)
		quote, err := booking.QuoteSpan(span, 10000, booking.StayWholeProperty, 2, 1)
		require.NoError(t, err)
		p := booking.NewParams{
			VillaID: uuid.New(),
			UserID:  uuid.New(),
			Guest:   booking.Guest{Name: "Asha Rao", Email: "guest@example.com"},
			Span:    span,
			Stay:    booking.StayWholeProperty,
			Guests:  2,
			Rooms:   1,
			Quote:   quote,
			Method:  booking.PaymentCard,
		}
		if mutate != nil {
			mutate(&p)
		}
		return p
	}

	t.Run("confirmed with paid card payment", func(t *testing.T) {
		b, err := booking.NewBooking(params(nil), today, now)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, b.ID())
		assert.Equal(t, booking.StatusConfirmed, b.Status())
		assert.Equal(t, int64(35400), b.Quote().Total)
		assert.Equal(t, int64(35400), b.Payment().Amount)
		assert.Equal(t, booking.PaymentSucceeded, b.Payment().Status)
		assert.Equal(t, booking.CurrencyINR, b.Payment().Currency)
		require.NotNil(t, b.Payment().PaidAt)
		assert.Equal(t, now, *b.Payment().PaidAt)
		assert.Equal(t, now, b.CreatedAt())
	})

	t.Run("starting today is allowed", func(t *testing.T) {
		p := params(func(p *booking.NewParams) {
			span, err := booking.NewHourlySpan(today, 18, 20)
			require.NoError(t, err)
			p.Span = span
		})
		_, err := booking.NewBooking(p, today, now)
		assert.NoError(t, err)
	})

	t.Run("past start rejected", func(t *testing.T) {
		p := params(func(p *booking.NewParams) {
			span, err := booking.NewNightlySpan(today.AddDays(-1), today.AddDays(1))
			require.NoError(t, err)
			p.Span = span
		})
		_, err := booking.NewBooking(p, today, now)
		assert.ErrorIs(t, err, booking.ErrPastDate)
	})

	t.Run("zero guests rejected", func(t *testing.T) {
		_, err := booking.NewBooking(params(func(p *booking.NewParams) { p.Guests = 0 }), today, now)
		assert.ErrorIs(t, err, booking.ErrInvalidGuestCount)
	})

	t.Run("unpriced quote rejected", func(t *testing.T) {
		_, err := booking.NewBooking(params(func(p *booking.NewParams) { p.Quote = booking.Quote{} }), today, now)
		assert.ErrorIs(t, err, booking.ErrInvalidRate)
	})
}

func TestNewPayment(t *testing.T) {
	now := time.Date(2030, 6, 1, 10, 0, 0, 0, time.UTC)

	cod := booking.NewPayment(booking.PaymentCOD, 5310, now)
	assert.Equal(t, booking.PaymentPending, cod.Status)
	assert.Nil(t, cod.PaidAt)
	assert.Equal(t, int64(5310), cod.Amount)

	upi := booking.NewPayment(booking.PaymentUPI, 5310, now)
	assert.Equal(t, booking.PaymentSucceeded, upi.Status)
	require.NotNil(t, upi.PaidAt)
	assert.Regexp(t, `^TXN_\d+$`, upi.TransactionID)
}

func TestEffectiveStatus(t *testing.T) {
	today := booking.NewDate(2030, 6, 10)

	tests := []struct {
		name   string
		stored booking.Status
		end    booking.Date
		want   booking.Status
	}{
		{name: "ended yesterday reads completed", stored: booking.StatusConfirmed, end: today.AddDays(-1), want: booking.StatusCompleted},
		{name: "ends today stays confirmed", stored: booking.StatusConfirmed, end: today, want: booking.StatusConfirmed},
		{name: "future stays confirmed", stored: booking.StatusConfirmed, end: today.AddDays(3), want: booking.StatusConfirmed},
		{name: "cancelled is never completed", stored: booking.StatusCancelled, end: today.AddDays(-5), want: booking.StatusCancelled},
		{name: "completed stays completed", stored: booking.StatusCompleted, end: today.AddDays(-5), want: booking.StatusCompleted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, booking.EffectiveStatus(tt.stored, tt.end, today))
		})
	}
}

func TestBooking_Transitions(t *testing.T) {
	now := time.Now()
	today := booking.DateOf(now)

	t.Run("cancel confirmed", func(t *testing.T) {
		b := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, b.Cancel(today, now))
		assert.Equal(t, booking.StatusCancelled, b.Status())
		assert.Equal(t, now, b.UpdatedAt())
	})

	t.Run("cancel twice", func(t *testing.T) {
		b := builder.NewBookingBuilder().WithStatus(booking.StatusCancelled).BuildDomain()
		assert.ErrorIs(t, b.Cancel(today, now), booking.ErrInvalidTransition)
	})

	t.Run("cancel a stay that already ended", func(t *testing.T) {
		b := builder.NewBookingBuilder().WithNights(today.AddDays(-4), 2).BuildDomain()
		assert.Equal(t, booking.StatusCompleted, b.EffectiveStatus(today))
		assert.ErrorIs(t, b.Cancel(today, now), booking.ErrInvalidTransition)
	})

	t.Run("complete confirmed", func(t *testing.T) {
		b := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, b.Complete(today, now))
		assert.Equal(t, booking.StatusCompleted, b.Status())
	})

	t.Run("complete cancelled", func(t *testing.T) {
		b := builder.NewBookingBuilder().WithStatus(booking.StatusCancelled).BuildDomain()
		assert.ErrorIs(t, b.Complete(today, now), booking.ErrInvalidTransition)
	})
}

func TestNewGuest(t *testing.T) {
	g, err := booking.NewGuest("  Asha Rao ", " Guest@Example.COM ")
	require.NoError(t, err)
	assert.Equal(t, booking.Guest{Name: "Asha Rao", Email: "guest@example.com"}, g)

	_, err = booking.NewGuest("", "guest@example.com")
	assert.ErrorIs(t, err, booking.ErrInvalidGuest)

	_, err = booking.NewGuest("Asha", "not-an-email")
	assert.ErrorIs(t, err, booking.ErrInvalidGuest)
}
