//go:build unit

package repository

import (
	"context"
	"testing"
	"time"

	"villanest/internal/infra"
	sqlc "villanest/internal/infra/sqlc/generated"
	"villanest/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockReviewWriteQueries struct {
	mock.Mock
}

func (m *MockReviewWriteQueries) CreateReview(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReviewParams) (uuid.UUID, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockReviewWriteQueries) GetReviewForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Reviews, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.Reviews), args.Error(1)
}

func (m *MockReviewWriteQueries) UpdateReviewVisibility(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateReviewVisibilityParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

type MockRatingWriteQueries struct {
	mock.Mock
}

func (m *MockRatingWriteQueries) LockVillaForRating(ctx context.Context, db sqlc.DBTX, villaID uuid.UUID) error {
	args := m.Called(ctx, db, villaID)
	return args.Error(0)
}

func (m *MockRatingWriteQueries) ListVisibleRatingsByVilla(ctx context.Context, db sqlc.DBTX, villaID uuid.UUID) ([]int16, error) {
	args := m.Called(ctx, db, villaID)
	return args.Get(0).([]int16), args.Error(1)
}

func (m *MockRatingWriteQueries) UpdateVillaRating(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateVillaRatingParams) error {
	args := m.Called(ctx, db, arg)
	return args.Error(0)
}

func reviewRow(rating int16) sqlc.Reviews {
	at := pgconv.TimeToPgtype(time.Date(2030, 6, 15, 9, 0, 0, 0, time.UTC))
	return sqlc.Reviews{
		ID:        uuid.New(),
		VillaID:   uuid.New(),
		UserID:    uuid.New(),
		UserName:  "Asha Rao",
		Rating:    rating,
		Comment:   "Lovely pool and quiet nights",
		IsVisible: true,
		CreatedAt: at,
		UpdatedAt: at,
	}
}

func TestReviewFindForUpdate(t *testing.T) {
	row := reviewRow(4)

	tests := []struct {
		name      string
		row       sqlc.Reviews
		mockError error
		wantKind  infra.RepositoryErrorKind
	}{
		{
			name: "success",
			row:  row,
		},
		{
			name:      "not found",
			mockError: pgx.ErrNoRows,
			wantKind:  infra.KindNotFound,
		},
		{
			name:      "database error",
			mockError: assert.AnError,
			wantKind:  infra.KindDBFailure,
		},
		{
			name:     "stored rating out of range",
			row:      reviewRow(9),
			wantKind: infra.KindDBFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockReviewWriteQueries)
			mockQueries.On("GetReviewForUpdate", mock.Anything, mock.Anything, mock.AnythingOfType("uuid.UUID")).
				Return(tt.row, tt.mockError)

			db := new(MockDBTX)
			repo := NewReviewRepository(mockQueries, db)

			rev, err := repo.FindForUpdate(context.Background(), db, tt.row.ID)

			if tt.wantKind != "" {
				assert.Error(t, err)
				assert.True(t, infra.IsKind(err, tt.wantKind))
				assert.Nil(t, rev)
			} else {
				require.NoError(t, err)
				assert.Equal(t, row.ID, rev.ID())
				assert.Equal(t, 4, rev.Rating().Value())
				assert.True(t, rev.IsVisible())
			}

			mockQueries.AssertExpectations(t)
		})
	}
}

func TestReviewUpdateVisibility(t *testing.T) {
	row := reviewRow(5)

	tests := []struct {
		name      string
		affected  int64
		mockError error
		wantKind  infra.RepositoryErrorKind
	}{
		{
			name:     "success",
			affected: 1,
		},
		{
			name:     "row vanished",
			affected: 0,
			wantKind: infra.KindNotFound,
		},
		{
			name:      "database error",
			mockError: assert.AnError,
			wantKind:  infra.KindDBFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockReviewWriteQueries)
			mockQueries.On("GetReviewForUpdate", mock.Anything, mock.Anything, row.ID).Return(row, nil)
			mockQueries.On("UpdateReviewVisibility", mock.Anything, mock.Anything, mock.MatchedBy(func(arg sqlc.UpdateReviewVisibilityParams) bool {
				return arg.ID == row.ID && !arg.IsVisible
			})).Return(tt.affected, tt.mockError)

			db := new(MockDBTX)
			repo := NewReviewRepository(mockQueries, db)

			rev, err := repo.FindForUpdate(context.Background(), db, row.ID)
			require.NoError(t, err)
			rev.SetVisibility(false, time.Date(2030, 6, 16, 9, 0, 0, 0, time.UTC))

			err = repo.UpdateVisibility(context.Background(), db, rev)

			if tt.wantKind != "" {
				assert.Error(t, err)
				assert.True(t, infra.IsKind(err, tt.wantKind))
			} else {
				assert.NoError(t, err)
			}

			mockQueries.AssertExpectations(t)
		})
	}
}

func TestRatingRecalculate(t *testing.T) {
	villaID := uuid.New()

	tests := []struct {
		name        string
		ratings     []int16
		wantCount   int
		wantTenths  *int64
		wantNumeric bool
	}{
		{
			name:        "averages visible ratings",
			ratings:     []int16{4, 5},
			wantCount:   2,
			wantTenths:  int64Ptr(45),
			wantNumeric: true,
		},
		{
			name:        "rounds to one decimal",
			ratings:     []int16{5, 4, 4},
			wantCount:   3,
			wantTenths:  int64Ptr(43),
			wantNumeric: true,
		},
		{
			name:      "no visible ratings clears the average",
			ratings:   []int16{},
			wantCount: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls []string
			mockQueries := new(MockRatingWriteQueries)
			mockQueries.On("LockVillaForRating", mock.Anything, mock.Anything, villaID).
				Run(func(mock.Arguments) { calls = append(calls, "lock") }).Return(nil)
			mockQueries.On("ListVisibleRatingsByVilla", mock.Anything, mock.Anything, villaID).
				Run(func(mock.Arguments) { calls = append(calls, "list") }).Return(tt.ratings, nil)
			mockQueries.On("UpdateVillaRating", mock.Anything, mock.Anything, mock.MatchedBy(func(arg sqlc.UpdateVillaRatingParams) bool {
				return arg.ID == villaID &&
					arg.ReviewsCount == int32(tt.wantCount) &&
					arg.AvgRating.Valid == tt.wantNumeric
			})).Return(nil)

			db := new(MockDBTX)
			repo := NewRatingRepository(mockQueries, db)

			summary, err := repo.Recalculate(context.Background(), db, villaID)

			require.NoError(t, err)
			assert.Equal(t, tt.wantCount, summary.Count)
			assert.Equal(t, tt.wantTenths, summary.AverageTenths)
			assert.Equal(t, []string{"lock", "list"}, calls, "villa row is locked before ratings are read")
			mockQueries.AssertExpectations(t)
		})
	}
}

func TestRatingRecalculateListFailure(t *testing.T) {
	villaID := uuid.New()
	mockQueries := new(MockRatingWriteQueries)
	mockQueries.On("LockVillaForRating", mock.Anything, mock.Anything, villaID).Return(nil)
	mockQueries.On("ListVisibleRatingsByVilla", mock.Anything, mock.Anything, villaID).Return([]int16(nil), assert.AnError)

	db := new(MockDBTX)
	repo := NewRatingRepository(mockQueries, db)

	_, err := repo.Recalculate(context.Background(), db, villaID)

	assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	mockQueries.AssertNotCalled(t, "UpdateVillaRating", mock.Anything, mock.Anything, mock.Anything)
}

func TestRatingRecalculateLockFailure(t *testing.T) {
	villaID := uuid.New()
	mockQueries := new(MockRatingWriteQueries)
	mockQueries.On("LockVillaForRating", mock.Anything, mock.Anything, villaID).Return(assert.AnError)

	db := new(MockDBTX)
	repo := NewRatingRepository(mockQueries, db)

	_, err := repo.Recalculate(context.Background(), db, villaID)

	assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	mockQueries.AssertNotCalled(t, "ListVisibleRatingsByVilla", mock.Anything, mock.Anything, mock.Anything)
}

func int64Ptr(v int64) *int64 { return &v }
