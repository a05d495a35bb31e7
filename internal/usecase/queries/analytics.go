package queries

//go:generate mockgen -source=analytics.go -destination=../../../tests/mock/queries/analytics.go -package=queriesmock

import (
	"context"
	"time"

	"villanest/internal/pkg/clock"
)

const (
	DefaultRevenueDays = 30
	MaxRevenueDays     = 365
	TopVillasLimit     = 5
)

type BookingTotals struct {
	Bookings int64
	Revenue  int64
}

type AnalyticsReadStore interface {
	Totals(ctx context.Context) (BookingTotals, error)
	RevenueByDay(ctx context.Context, tz string, since time.Time) ([]DailyRevenue, error)
	TopVillas(ctx context.Context, limit int32) ([]TopVilla, error)
	PlatformRating(ctx context.Context) (*float64, error)
}

type AnalyticsQueries interface {
	// Get aggregates non-cancelled bookings. days bounds the revenue series.
	Get(ctx context.Context, days int) (*AnalyticsView, error)
}

type analyticsQueriesImpl struct {
	readStore AnalyticsReadStore
	clock     clock.Clock
}

func NewAnalyticsQueries(readStore AnalyticsReadStore, clk clock.Clock) AnalyticsQueries {
	return &analyticsQueriesImpl{readStore: readStore, clock: clk}
}

func (q *analyticsQueriesImpl) Get(ctx context.Context, days int) (*AnalyticsView, error) {
	if days <= 0 {
		days = DefaultRevenueDays
	}
	if days > MaxRevenueDays {
		days = MaxRevenueDays
	}

	totals, err := q.readStore.Totals(ctx)
	if err != nil {
		return nil, err
	}

	loc := q.clock.Location()
	now := q.clock.Now().In(loc)
	since := time.Date(now.Year(), now.Month(), now.Day()-(days-1), 0, 0, 0, 0, loc)
	revenue, err := q.readStore.RevenueByDay(ctx, loc.String(), since)
	if err != nil {
		return nil, err
	}

	top, err := q.readStore.TopVillas(ctx, TopVillasLimit)
	if err != nil {
		return nil, err
	}

	rating, err := q.readStore.PlatformRating(ctx)
	if err != nil {
		return nil, err
	}

	return &AnalyticsView{
		TotalBookings:  totals.Bookings,
		TotalRevenue:   totals.Revenue,
		RevenueByDay:   revenue,
		TopVillas:      top,
		PlatformRating: rating,
	}, nil
}
