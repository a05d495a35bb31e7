package readstore

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/readstore/booking.go -package=readstoremock

import (
	"context"
	"time"

	"villanest/internal/domain/booking"
	"villanest/internal/infra"
	"villanest/internal/infra/repository/converter"
	sqlc "villanest/internal/infra/sqlc/generated"
	"villanest/internal/pkg/pgconv"
	"villanest/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingViewQueries interface {
	GetBookingViewByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetBookingViewByIDRow, error)
	ListBookingViewsByUserFirstPage(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingViewsByUserFirstPageParams) ([]sqlc.ListBookingViewsByUserFirstPageRow, error)
	ListBookingViewsByUserKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingViewsByUserKeysetParams) ([]sqlc.ListBookingViewsByUserKeysetRow, error)
	ListBookingViews(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingViewsParams) ([]sqlc.ListBookingViewsRow, error)
	ListConfirmedBookingSpansByVilla(ctx context.Context, db sqlc.DBTX, villaID uuid.UUID) ([]sqlc.ListConfirmedBookingSpansByVillaRow, error)
	HasCompletedStay(ctx context.Context, db sqlc.DBTX, arg sqlc.HasCompletedStayParams) (bool, error)
}

type BookingReadStore struct {
	queries BookingViewQueries
	db      sqlc.DBTX
}

func NewBookingReadStore(queries BookingViewQueries, db sqlc.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row, err := r.queries.GetBookingViewByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get booking view by id", err)
	}
	return toBookingView(row), nil
}

func (r *BookingReadStore) FindByUserFirstPage(ctx context.Context, userID uuid.UUID, limit int32) ([]*queries.BookingView, error) {
	rows, err := r.queries.ListBookingViewsByUserFirstPage(ctx, r.db, sqlc.ListBookingViewsByUserFirstPageParams{
		UserID: userID,
		Limit:  limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings first page by user", err)
	}
	views := make([]*queries.BookingView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toBookingView(sqlc.GetBookingViewByIDRow(row)))
	}
	return views, nil
}

func (r *BookingReadStore) FindByUserKeyset(ctx context.Context, userID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.BookingView, error) {
	rows, err := r.queries.ListBookingViewsByUserKeyset(ctx, r.db, sqlc.ListBookingViewsByUserKeysetParams{
		UserID:    userID,
		CreatedAt: pgconv.TimeToPgtype(lastCreatedAt),
		ID:        lastID,
		Lim:       limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings keyset by user", err)
	}
	views := make([]*queries.BookingView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toBookingView(sqlc.GetBookingViewByIDRow(row)))
	}
	return views, nil
}

func (r *BookingReadStore) List(ctx context.Context, filter queries.BookingFilter, page queries.Page) ([]*queries.BookingView, error) {
	params := sqlc.ListBookingViewsParams{
		VillaID: pgconv.UUIDPtrToPgtype(filter.VillaID),
		Lim:     pgconv.IntToInt32(page.Limit),
		Off:     pgconv.IntToInt32(page.Offset),
	}
	if filter.Status != nil {
		params.Status = pgtype.Text{String: filter.Status.String(), Valid: true}
	}

	rows, err := r.queries.ListBookingViews(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	views := make([]*queries.BookingView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toBookingView(sqlc.GetBookingViewByIDRow(row)))
	}
	return views, nil
}

func (r *BookingReadStore) ConfirmedSpans(ctx context.Context, villaID uuid.UUID) ([]booking.Span, error) {
	rows, err := r.queries.ListConfirmedBookingSpansByVilla(ctx, r.db, villaID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list confirmed booking spans", err)
	}
	spans := make([]booking.Span, 0, len(rows))
	for _, row := range rows {
		spans = append(spans, converter.SpanFromColumns(booking.Type(row.BookingType), row.StartDate, row.EndDate, row.StartHour, row.EndHour))
	}
	return spans, nil
}

// HasCompletedStay reports whether the user holds a non-cancelled booking of
// the villa whose last day is before today.
func (r *BookingReadStore) HasCompletedStay(ctx context.Context, villaID, userID uuid.UUID, today booking.Date) (bool, error) {
	ok, err := r.queries.HasCompletedStay(ctx, r.db, sqlc.HasCompletedStayParams{
		VillaID: villaID,
		UserID:  userID,
		Today:   converter.DateToPgtype(today),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to check completed stay", err)
	}
	return ok, nil
}

func toBookingView(row sqlc.GetBookingViewByIDRow) *queries.BookingView {
	return &queries.BookingView{
		ID:            row.ID,
		VillaID:       row.VillaID,
		VillaName:     row.VillaName,
		VillaLocation: row.VillaLocation,
		VillaImage:    row.VillaImage,
		UserID:        row.UserID,
		GuestName:     row.GuestName,
		GuestEmail:    row.GuestEmail,
		BookingType:   row.BookingType,
		StartDate:     converter.DateFromPgtype(row.StartDate),
		EndDate:       converter.DateFromPgtype(row.EndDate),
		StartHour:     pgconv.IntPtrFromInt2(row.StartHour),
		EndHour:       pgconv.IntPtrFromInt2(row.EndHour),
		StayType:      row.StayType,
		Guests:        row.Guests,
		Rooms:         row.Rooms,
		Status:        booking.Status(row.Status),
		BasePrice:     row.BasePrice,
		TaxAmount:     row.TaxAmount,
		TotalPrice:    row.TotalPrice,
		Payment: queries.PaymentView{
			Method:        row.PaymentMethod,
			TransactionID: row.PaymentTransactionID,
			Amount:        row.PaymentAmount,
			Currency:      row.PaymentCurrency,
			Status:        row.PaymentStatus,
			PaidAt:        pgconv.TimePtrFromPgtype(row.PaidAt),
		},
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt: pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
