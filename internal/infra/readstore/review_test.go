//go:build unit

package readstore_test

import (
	"context"
	"testing"
	"time"

	"villanest/internal/infra"
	"villanest/internal/infra/readstore"
	sqlc "villanest/internal/infra/sqlc/generated"
	"villanest/internal/usecase/queries"
	readstoremock "villanest/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// =============================================================================
// FindByID Tests
// =============================================================================

func TestReviewReadStore_FindByID(t *testing.T) {
	ctx := context.Background()
	reviewID := uuid.New()

	testCases := []struct {
		name          string
		setupMock     func(*readstoremock.MockReviewViewQueries, uuid.UUID)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: review found",
			setupMock: func(mock *readstoremock.MockReviewViewQueries, id uuid.UUID) {
				expectedRow := sqlc.GetReviewViewByIDRow{
					ID:        id,
					VillaID:   uuid.New(),
					UserID:    uuid.New(),
					UserName:  "Asha Rao",
					Rating:    5,
					Comment:   "Great stay!",
					IsVisible: true,
					CreatedAt: pgtype.Timestamptz{Time: time.Now(), Valid: true},
					UpdatedAt: pgtype.Timestamptz{Time: time.Now(), Valid: true},
					VillaName: "Casa Azul",
				}
				mock.EXPECT().GetReviewViewByID(ctx, gomock.Any(), id).Return(expectedRow, nil)
			},
			expectedError: false,
		},
		{
			name: "error: review not found",
			setupMock: func(mock *readstoremock.MockReviewViewQueries, id uuid.UUID) {
				mock.EXPECT().GetReviewViewByID(ctx, gomock.Any(), id).Return(sqlc.GetReviewViewByIDRow{}, pgx.ErrNoRows)
			},
			expectedError: true,
			expectKind:    infra.KindNotFound,
		},
		{
			name: "error: database error",
			setupMock: func(mock *readstoremock.MockReviewViewQueries, id uuid.UUID) {
				mock.EXPECT().GetReviewViewByID(ctx, gomock.Any(), id).Return(sqlc.GetReviewViewByIDRow{}, errDBConnectionLost)
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := readstoremock.NewMockReviewViewQueries(ctrl)
			mockDB := &mockDBTX{}
			store := readstore.NewReviewReadStore(mockQueries, mockDB)

			tc.setupMock(mockQueries, reviewID)

			result, actualError := store.FindByID(ctx, reviewID)

			if tc.expectedError {
				require.Error(t, actualError)
				if tc.expectKind != "" {
					assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, actualError, actualError)
				}
				assert.Nil(t, result, "result should be nil when error occurs")
			} else {
				assert.NoError(t, actualError)
				require.NotNil(t, result)
				assert.Equal(t, reviewID, result.ID)
				assert.Equal(t, "Casa Azul", result.VillaName)
				assert.True(t, result.IsVisible)
			}
		})
	}
}

// =============================================================================
// FindVisibleByVilla Tests
// =============================================================================

func TestReviewReadStore_FindVisibleByVillaFirstPage(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	villaID := uuid.New()
	newer := time.Date(2030, 6, 2, 9, 0, 0, 0, time.UTC)
	older := time.Date(2030, 6, 1, 9, 0, 0, 0, time.UTC)

	mockQueries := readstoremock.NewMockReviewViewQueries(ctrl)
	mockQueries.EXPECT().
		ListVisibleReviewsByVillaFirstPage(ctx, gomock.Any(), sqlc.ListVisibleReviewsByVillaFirstPageParams{VillaID: villaID, Limit: 11}).
		Return([]sqlc.ListVisibleReviewsByVillaFirstPageRow{
			{ID: uuid.New(), UserName: "Asha Rao", Rating: 5, Comment: "Loved it", CreatedAt: pgtype.Timestamptz{Time: newer, Valid: true}},
			{ID: uuid.New(), UserName: "Vikram Das", Rating: 3, Comment: "Decent", CreatedAt: pgtype.Timestamptz{Time: older, Valid: true}},
		}, nil)

	store := readstore.NewReviewReadStore(mockQueries, &mockDBTX{})

	results, err := store.FindVisibleByVillaFirstPage(ctx, villaID, 11)

	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "Asha Rao", results[0].UserName)
	assert.Equal(t, int16(5), results[0].Rating)
	assert.True(t, results[0].CreatedAt.Equal(newer))
	assert.True(t, results[1].CreatedAt.Equal(older))
}

func TestReviewReadStore_FindVisibleByVillaKeyset(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	villaID, lastID := uuid.New(), uuid.New()
	lastCreatedAt := time.Date(2030, 6, 1, 9, 0, 0, 0, time.UTC)

	mockQueries := readstoremock.NewMockReviewViewQueries(ctrl)
	mockQueries.EXPECT().
		ListVisibleReviewsByVillaKeyset(ctx, gomock.Any(), sqlc.ListVisibleReviewsByVillaKeysetParams{
			VillaID:   villaID,
			CreatedAt: pgtype.Timestamptz{Time: lastCreatedAt, Valid: true},
			ID:        lastID,
			Lim:       11,
		}).
		Return(nil, errDBConnectionLost)

	store := readstore.NewReviewReadStore(mockQueries, &mockDBTX{})

	results, err := store.FindVisibleByVillaKeyset(ctx, villaID, lastCreatedAt, lastID, 11)

	assert.Nil(t, results)
	assert.True(t, infra.IsKind(err, infra.KindDBFailure))
}

// =============================================================================
// List Tests
// =============================================================================

func TestReviewReadStore_List(t *testing.T) {
	ctx := context.Background()
	hidden := false
	villaID := uuid.New()

	testCases := []struct {
		name   string
		filter queries.ReviewFilter
		want   sqlc.ListReviewViewsParams
	}{
		{
			name:   "all reviews",
			filter: queries.ReviewFilter{},
			want:   sqlc.ListReviewViewsParams{Lim: 20},
		},
		{
			name:   "hidden reviews of one villa",
			filter: queries.ReviewFilter{Visible: &hidden, VillaID: &villaID},
			want: sqlc.ListReviewViewsParams{
				Visible: pgtype.Bool{Bool: false, Valid: true},
				VillaID: pgtype.UUID{Bytes: villaID, Valid: true},
				Lim:     20,
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := readstoremock.NewMockReviewViewQueries(ctrl)
			mockQueries.EXPECT().ListReviewViews(ctx, gomock.Any(), tc.want).Return([]sqlc.ListReviewViewsRow{}, nil)

			store := readstore.NewReviewReadStore(mockQueries, &mockDBTX{})

			results, err := store.List(ctx, tc.filter, queries.Page{Limit: 20})

			require.NoError(t, err)
			assert.Empty(t, results)
		})
	}
}
