//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"villanest/internal/pkg/clock"
	"villanest/internal/usecase/queries"
	queriesmock "villanest/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAnalyticsQueries_Get(t *testing.T) {
	ctx := context.Background()
	ist := time.FixedZone("IST", 5*60*60+30*60)
	now := time.Date(2030, 6, 15, 1, 0, 0, 0, ist)

	tests := []struct {
		name      string
		days      int
		wantSince time.Time
	}{
		{name: "defaults to thirty days", days: 0, wantSince: time.Date(2030, 5, 17, 0, 0, 0, 0, ist)},
		{name: "single day starts at local midnight", days: 1, wantSince: time.Date(2030, 6, 15, 0, 0, 0, 0, ist)},
		{name: "capped at a year", days: 1000, wantSince: time.Date(2029, 6, 16, 0, 0, 0, 0, ist)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := queriesmock.NewMockAnalyticsReadStore(ctrl)
			rating := 4.3

			store.EXPECT().Totals(gomock.Any()).Return(queries.BookingTotals{Bookings: 12, Revenue: 424800}, nil)
			store.EXPECT().RevenueByDay(gomock.Any(), "IST", gomock.Any()).
				DoAndReturn(func(_ context.Context, _ string, since time.Time) ([]queries.DailyRevenue, error) {
					assert.True(t, tt.wantSince.Equal(since), "since = %s", since)
					return []queries.DailyRevenue{}, nil
				})
			store.EXPECT().TopVillas(gomock.Any(), int32(queries.TopVillasLimit)).Return([]queries.TopVilla{}, nil)
			store.EXPECT().PlatformRating(gomock.Any()).Return(&rating, nil)

			got, err := queries.NewAnalyticsQueries(store, clock.NewMockClock(now)).Get(ctx, tt.days)
			require.NoError(t, err)
			assert.Equal(t, int64(12), got.TotalBookings)
			assert.Equal(t, int64(424800), got.TotalRevenue)
			assert.InDelta(t, 4.3, *got.PlatformRating, 1e-9)
		})
	}

	t.Run("store failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockAnalyticsReadStore(ctrl)

		store.EXPECT().Totals(gomock.Any()).Return(queries.BookingTotals{}, errDBConnectionLost)

		_, err := queries.NewAnalyticsQueries(store, clock.NewMockClock(now)).Get(ctx, 7)
		assert.ErrorIs(t, err, errDBConnectionLost)
	})
}
