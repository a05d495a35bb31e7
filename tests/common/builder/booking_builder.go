//go:build unit || e2e

package builder

import (
	"time"

	"villanest/internal/domain/booking"
	reqdto "villanest/internal/handler/dto/request"
	sqlc "villanest/internal/infra/sqlc/generated"
	"villanest/internal/usecase/commands"
	"villanest/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// BookingBuilder defaults to a three-night whole-property stay at 10000/night,
// starting thirty days from now.
type BookingBuilder struct {
	ID            uuid.UUID
	VillaID       uuid.UUID
	VillaName     string
	UserID        uuid.UUID
	GuestName     string
	GuestEmail    string
	Type          booking.Type
	StartDate     booking.Date
	EndDate       booking.Date
	StartHour     int
	EndHour       int
	Stay          booking.StayType
	Guests        int
	Rooms         int
	Status        booking.Status
	PaymentMethod booking.PaymentMethod
	Rate          int64
	CreatedAt     time.Time
}

func NewBookingBuilder() *BookingBuilder {
	start := booking.DateOf(time.Now()).AddDays(30)
	return &BookingBuilder{
		ID:            uuid.New(),
		VillaID:       uuid.New(),
		VillaName:     "Casa Azul",
		UserID:        uuid.New(),
		GuestName:     "Asha Rao",
		GuestEmail:    "guest@example.com",
		Type:          booking.TypeNightly,
		StartDate:     start,
		EndDate:       start.AddDays(3),
		Stay:          booking.StayWholeProperty,
		Guests:        2,
		Rooms:         1,
		Status:        booking.StatusConfirmed,
		PaymentMethod: booking.PaymentMockTest,
		Rate:          10000,
		CreatedAt:     time.Now(),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BookingBuilder) BuildSpan() booking.Span {
	return booking.ReconstructSpan(b.Type, b.StartDate, b.EndDate, b.StartHour, b.EndHour)
}

func (b *BookingBuilder) BuildQuote() booking.Quote {
	quote, err := booking.QuoteSpan(b.BuildSpan(), b.Rate, b.Stay, b.Guests, b.Rooms)
	if err != nil {
		panic(err)
	}
	return quote
}

func (b *BookingBuilder) BuildDomain() *booking.Booking {
	quote := b.BuildQuote()
	return booking.Reconstruct(booking.ReconstructParams{
		ID:        b.ID,
		VillaID:   b.VillaID,
		UserID:    b.UserID,
		Guest:     booking.Guest{Name: b.GuestName, Email: b.GuestEmail},
		Span:      b.BuildSpan(),
		Stay:      b.Stay,
		Guests:    b.Guests,
		Rooms:     b.Rooms,
		Status:    b.Status,
		Quote:     quote,
		Payment:   booking.NewPayment(b.PaymentMethod, quote.Total, b.CreatedAt),
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.CreatedAt,
	})
}

func (b *BookingBuilder) BuildInput() commands.CreateBookingInput {
	return commands.CreateBookingInput{
		VillaID:    b.VillaID,
		Span:       b.BuildSpan(),
		Stay:       b.Stay,
		Guests:     b.Guests,
		Rooms:      b.Rooms,
		GuestName:  b.GuestName,
		GuestEmail: b.GuestEmail,
		Method:     b.PaymentMethod,
	}
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	req := reqdto.CreateBookingRequest{
		VillaID: b.VillaID,
		SpanRequest: reqdto.SpanRequest{
			BookingType: b.Type.String(),
			StartDate:   b.StartDate.String(),
		},
		OccupancyRequest: reqdto.OccupancyRequest{
			StayType: b.Stay.String(),
			Guests:   b.Guests,
			Rooms:    b.Rooms,
		},
		GuestName:     b.GuestName,
		GuestEmail:    b.GuestEmail,
		PaymentMethod: b.PaymentMethod.String(),
	}
	if b.Type == booking.TypeHourly {
		req.StartTime = booking.FormatHour(b.StartHour)
		req.EndTime = booking.FormatHour(b.EndHour)
	} else {
		req.EndDate = b.EndDate.String()
	}
	return req
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	quote := b.BuildQuote()
	payment := booking.NewPayment(b.PaymentMethod, quote.Total, b.CreatedAt)
	v := &queries.BookingView{
		ID:          b.ID,
		VillaID:     b.VillaID,
		VillaName:   b.VillaName,
		UserID:      b.UserID,
		GuestName:   b.GuestName,
		GuestEmail:  b.GuestEmail,
		BookingType: b.Type.String(),
		StartDate:   b.StartDate,
		EndDate:     b.EndDate,
		StayType:    b.Stay.String(),
		Guests:      int32(b.Guests),
		Rooms:       int32(b.Rooms),
		Status:      b.Status,
		BasePrice:   quote.Base,
		TaxAmount:   quote.Tax,
		TotalPrice:  quote.Total,
		Payment: queries.PaymentView{
			Method:        payment.Method.String(),
			TransactionID: payment.TransactionID,
			Amount:        payment.Amount,
			Currency:      payment.Currency,
			Status:        payment.Status.String(),
			PaidAt:        payment.PaidAt,
		},
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.CreatedAt,
	}
	if b.Type == booking.TypeHourly {
		start, end := b.StartHour, b.EndHour
		v.StartHour, v.EndHour = &start, &end
	}
	return v
}

func (b *BookingBuilder) BuildInfra() sqlc.GetBookingViewByIDRow {
	view := b.BuildView()
	row := sqlc.GetBookingViewByIDRow{
		ID:                   view.ID,
		VillaID:              view.VillaID,
		UserID:               view.UserID,
		GuestName:            view.GuestName,
		GuestEmail:           view.GuestEmail,
		BookingType:          view.BookingType,
		StartDate:            pgtype.Date{Time: b.StartDate.Time(), Valid: true},
		EndDate:              pgtype.Date{Time: b.EndDate.Time(), Valid: true},
		StayType:             view.StayType,
		Guests:               view.Guests,
		Rooms:                view.Rooms,
		Status:               view.Status.String(),
		BasePrice:            view.BasePrice,
		TaxAmount:            view.TaxAmount,
		TotalPrice:           view.TotalPrice,
		PaymentMethod:        view.Payment.Method,
		PaymentTransactionID: view.Payment.TransactionID,
		PaymentAmount:        view.Payment.Amount,
		PaymentCurrency:      view.Payment.Currency,
		PaymentStatus:        view.Payment.Status,
		CreatedAt:            pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
		UpdatedAt:            pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
		VillaName:            view.VillaName,
	}
	if view.Payment.PaidAt != nil {
		row.PaidAt = pgtype.Timestamptz{Time: *view.Payment.PaidAt, Valid: true}
	}
	if b.Type == booking.TypeHourly {
		row.StartHour = pgtype.Int2{Int16: int16(b.StartHour), Valid: true}
		row.EndHour = pgtype.Int2{Int16: int16(b.EndHour), Valid: true}
	}
	return row
}

// Fluent builder methods
func (b *BookingBuilder) WithVillaID(id uuid.UUID) *BookingBuilder {
	b.VillaID = id
	return b
}

func (b *BookingBuilder) WithUserID(id uuid.UUID) *BookingBuilder {
	b.UserID = id
	return b
}

func (b *BookingBuilder) WithNights(start booking.Date, nights int) *BookingBuilder {
	b.Type = booking.TypeNightly
	b.StartDate = start
	b.EndDate = start.AddDays(nights)
	b.StartHour, b.EndHour = 0, 0
	return b
}

func (b *BookingBuilder) WithHours(date booking.Date, from, to int) *BookingBuilder {
	b.Type = booking.TypeHourly
	b.StartDate = date
	b.EndDate = date
	b.StartHour, b.EndHour = from, to
	return b
}

func (b *BookingBuilder) WithStatus(status booking.Status) *BookingBuilder {
	b.Status = status
	return b
}

func (b *BookingBuilder) WithStay(stay booking.StayType, guests, rooms int) *BookingBuilder {
	b.Stay = stay
	b.Guests = guests
	b.Rooms = rooms
	return b
}

func (b *BookingBuilder) WithPaymentMethod(method booking.PaymentMethod) *BookingBuilder {
	b.PaymentMethod = method
	return b
}

func (b *BookingBuilder) WithRate(rate int64) *BookingBuilder {
	b.Rate = rate
	return b
}
