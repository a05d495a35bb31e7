package repository

import (
	"context"

	"villanest/internal/domain/booking"
	"villanest/internal/infra"
	"villanest/internal/infra/repository/converter"
	sqlc "villanest/internal/infra/sqlc/generated"
	"villanest/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type BookingWriteQueries interface {
	LockVillaForBooking(ctx context.Context, db sqlc.DBTX, villaKey string) error
	ListConfirmedBookingSpansByVilla(ctx context.Context, db sqlc.DBTX, villaID uuid.UUID) ([]sqlc.ListConfirmedBookingSpansByVillaRow, error)
	CreateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingParams) (uuid.UUID, error)
	GetBookingForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Bookings, error)
	UpdateBookingStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateBookingStatusParams) (int64, error)
	CompleteEndedBookings(ctx context.Context, db sqlc.DBTX, arg sqlc.CompleteEndedBookingsParams) (int64, error)
}

type BookingRepository struct {
	queries BookingWriteQueries
	db      sqlc.DBTX
}

func NewBookingRepository(queries BookingWriteQueries, db sqlc.DBTX) *BookingRepository {
	return &BookingRepository{
		queries: queries,
		db:      db,
	}
}

func (r *BookingRepository) LockVilla(ctx context.Context, tx sqlc.DBTX, villaID uuid.UUID) error {
	if err := r.queries.LockVillaForBooking(ctx, tx, villaID.String()); err != nil {
		return infra.WrapRepoErr("failed to lock villa for booking", err)
	}
	return nil
}

func (r *BookingRepository) ConfirmedSpans(ctx context.Context, tx sqlc.DBTX, villaID uuid.UUID) ([]booking.Span, error) {
	rows, err := r.queries.ListConfirmedBookingSpansByVilla(ctx, tx, villaID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list confirmed bookings", err)
	}
	spans := make([]booking.Span, 0, len(rows))
	for _, row := range rows {
		kind, err := booking.ParseType(row.BookingType)
		if err != nil {
			return nil, infra.WrapRepoErr("stored booking has unknown type", err, infra.KindDBFailure)
		}
		spans = append(spans, converter.SpanFromColumns(kind, row.StartDate, row.EndDate, row.StartHour, row.EndHour))
	}
	return spans, nil
}

func (r *BookingRepository) Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) (uuid.UUID, error) {
	id, err := r.queries.CreateBooking(ctx, tx, converter.BookingToCreateParams(b))
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create booking", err)
	}
	return id, nil
}

func (r *BookingRepository) FindForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*booking.Booking, error) {
	row, err := r.queries.GetBookingForUpdate(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get booking", err)
	}
	b, err := converter.BookingFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("stored booking is malformed", err, infra.KindDBFailure)
	}
	return b, nil
}

// UpdateStatus writes the booking's status only if the stored one still equals from.
func (r *BookingRepository) UpdateStatus(ctx context.Context, tx sqlc.DBTX, b *booking.Booking, from booking.Status) error {
	n, err := r.queries.UpdateBookingStatus(ctx, tx, sqlc.UpdateBookingStatusParams{
		ToStatus:   b.Status().String(),
		UpdatedAt:  pgconv.TimeToPgtype(b.UpdatedAt()),
		ID:         b.ID(),
		FromStatus: from.String(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("booking status changed concurrently", nil, infra.KindNotFound)
	}
	return nil
}

// CompleteEnded persists lazy completion. A nil userID covers every user.
func (r *BookingRepository) CompleteEnded(ctx context.Context, tx sqlc.DBTX, today booking.Date, userID *uuid.UUID) (int64, error) {
	n, err := r.queries.CompleteEndedBookings(ctx, tx, sqlc.CompleteEndedBookingsParams{
		Today:  converter.DateToPgtype(today),
		UserID: pgconv.UUIDPtrToPgtype(userID),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to complete ended bookings", err)
	}
	return n, nil
}
