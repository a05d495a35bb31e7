package readstore

//go:generate mockgen -source=analytics.go -destination=../../../tests/mock/readstore/analytics.go -package=readstoremock

import (
	"context"
	"time"

	"villanest/internal/infra"
	"villanest/internal/infra/repository/converter"
	sqlc "villanest/internal/infra/sqlc/generated"
	"villanest/internal/pkg/pgconv"
	"villanest/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type AnalyticsViewQueries interface {
	GetBookingTotals(ctx context.Context, db sqlc.DBTX) (sqlc.GetBookingTotalsRow, error)
	ListRevenueByDay(ctx context.Context, db sqlc.DBTX, arg sqlc.ListRevenueByDayParams) ([]sqlc.ListRevenueByDayRow, error)
	ListTopVillasByBookings(ctx context.Context, db sqlc.DBTX, limit int32) ([]sqlc.ListTopVillasByBookingsRow, error)
	GetPlatformRating(ctx context.Context, db sqlc.DBTX) (pgtype.Numeric, error)
}

type AnalyticsReadStore struct {
	queries AnalyticsViewQueries
	db      sqlc.DBTX
}

func NewAnalyticsReadStore(queries AnalyticsViewQueries, db sqlc.DBTX) *AnalyticsReadStore {
	return &AnalyticsReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *AnalyticsReadStore) Totals(ctx context.Context) (queries.BookingTotals, error) {
	row, err := r.queries.GetBookingTotals(ctx, r.db)
	if err != nil {
		return queries.BookingTotals{}, infra.WrapRepoErr("failed to get booking totals", err)
	}
	return queries.BookingTotals{Bookings: row.TotalBookings, Revenue: row.TotalRevenue}, nil
}

func (r *AnalyticsReadStore) RevenueByDay(ctx context.Context, tz string, since time.Time) ([]queries.DailyRevenue, error) {
	rows, err := r.queries.ListRevenueByDay(ctx, r.db, sqlc.ListRevenueByDayParams{
		Tz:    tz,
		Since: pgconv.TimeToPgtype(since),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list revenue by day", err)
	}
	out := make([]queries.DailyRevenue, 0, len(rows))
	for _, row := range rows {
		out = append(out, queries.DailyRevenue{
			Day:      converter.DateFromPgtype(row.Day),
			Bookings: row.Bookings,
			Revenue:  row.Revenue,
		})
	}
	return out, nil
}

func (r *AnalyticsReadStore) TopVillas(ctx context.Context, limit int32) ([]queries.TopVilla, error) {
	rows, err := r.queries.ListTopVillasByBookings(ctx, r.db, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list top villas", err)
	}
	out := make([]queries.TopVilla, 0, len(rows))
	for _, row := range rows {
		out = append(out, queries.TopVilla{
			VillaID:  row.ID,
			Name:     row.Name,
			Bookings: row.Bookings,
			Revenue:  row.Revenue,
		})
	}
	return out, nil
}

func (r *AnalyticsReadStore) PlatformRating(ctx context.Context) (*float64, error) {
	n, err := r.queries.GetPlatformRating(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get platform rating", err)
	}
	rating, err := pgconv.Float64PtrFromNumeric(n)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode platform rating", err)
	}
	return rating, nil
}
