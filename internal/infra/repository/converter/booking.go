package converter

import (
	"villanest/internal/domain/booking"
	sqlc "villanest/internal/infra/sqlc/generated"
	"villanest/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

func BookingToCreateParams(b *booking.Booking) sqlc.CreateBookingParams {
	span := b.Span()
	quote := b.Quote()
	payment := b.Payment()
	startHour, endHour := HoursToPgtype(span)

	return sqlc.CreateBookingParams{
		ID:                   b.ID(),
		VillaID:              b.VillaID(),
		UserID:               b.UserID(),
		GuestName:            b.Guest().Name,
		GuestEmail:           b.Guest().Email,
		BookingType:          span.Type().String(),
		StartDate:            DateToPgtype(span.Start()),
		EndDate:              DateToPgtype(span.End()),
		StartHour:            startHour,
		EndHour:              endHour,
		StayType:             b.Stay().String(),
		Guests:               pgconv.IntToInt32(b.Guests()),
		Rooms:                pgconv.IntToInt32(b.Rooms()),
		Status:               b.Status().String(),
		BasePrice:            quote.Base,
		TaxAmount:            quote.Tax,
		TotalPrice:           quote.Total,
		PaymentMethod:        payment.Method.String(),
		PaymentTransactionID: payment.TransactionID,
		PaymentAmount:        payment.Amount,
		PaymentCurrency:      payment.Currency,
		PaymentStatus:        string(payment.Status),
		PaidAt:               timePtrToPgtype(payment),
		CreatedAt:            pgconv.TimeToPgtype(b.CreatedAt()),
	}
}

func BookingFromRow(row sqlc.Bookings) (*booking.Booking, error) {
	kind, err := booking.ParseType(row.BookingType)
	if err != nil {
		return nil, err
	}
	status, err := booking.ParseStatus(row.Status)
	if err != nil {
		return nil, err
	}
	stay, err := booking.ParseStayType(row.StayType)
	if err != nil {
		return nil, err
	}
	method, err := booking.ParsePaymentMethod(row.PaymentMethod)
	if err != nil {
		return nil, err
	}

	guests := int(row.Guests)
	rooms := int(row.Rooms)
	span := SpanFromColumns(kind, row.StartDate, row.EndDate, row.StartHour, row.EndHour)

	return booking.Reconstruct(booking.ReconstructParams{
		ID:      row.ID,
		VillaID: row.VillaID,
		UserID:  row.UserID,
		Guest:   booking.Guest{Name: row.GuestName, Email: row.GuestEmail},
		Span:    span,
		Stay:    stay,
		Guests:  guests,
		Rooms:   rooms,
		Status:  status,
		Quote: booking.Quote{
			Units: span.Units(),
			Base:  row.BasePrice,
			Tax:   row.TaxAmount,
			Total: row.TotalPrice,
		},
		Payment: booking.Payment{
			Method:        method,
			TransactionID: row.PaymentTransactionID,
			Amount:        row.PaymentAmount,
			Currency:      row.PaymentCurrency,
			Status:        booking.PaymentStatus(row.PaymentStatus),
			PaidAt:        pgconv.TimePtrFromPgtype(row.PaidAt),
		},
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt: pgconv.TimeFromPgtype(row.UpdatedAt),
	}), nil
}

func SpanFromColumns(kind booking.Type, start, end pgtype.Date, startHour, endHour pgtype.Int2) booking.Span {
	sh, eh := 0, 0
	if startHour.Valid {
		sh = int(startHour.Int16)
	}
	if endHour.Valid {
		eh = int(endHour.Int16)
	}
	return booking.ReconstructSpan(kind, DateFromPgtype(start), DateFromPgtype(end), sh, eh)
}

// HoursToPgtype yields NULL hours for nightly spans.
func HoursToPgtype(span booking.Span) (pgtype.Int2, pgtype.Int2) {
	if !span.IsHourly() {
		return pgtype.Int2{}, pgtype.Int2{}
	}
	sh, eh := span.StartHour(), span.EndHour()
	return pgconv.IntPtrToInt2(&sh), pgconv.IntPtrToInt2(&eh)
}

func DateToPgtype(d booking.Date) pgtype.Date {
	if d.IsZero() {
		return pgtype.Date{}
	}
	return pgconv.DateToPgtype(d.Time())
}

func DateFromPgtype(d pgtype.Date) booking.Date {
	if !d.Valid {
		return booking.Date{}
	}
	return booking.DateOf(pgconv.DateFromPgtype(d))
}

func timePtrToPgtype(p booking.Payment) pgtype.Timestamptz {
	if p.PaidAt == nil {
		return pgtype.Timestamptz{}
	}
	return pgconv.TimeToPgtype(*p.PaidAt)
}
