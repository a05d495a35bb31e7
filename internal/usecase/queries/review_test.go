//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"villanest/internal/usecase/queries"
	"villanest/tests/common/builder"
	queriesmock "villanest/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestReviewQueries_ListByVilla(t *testing.T) {
	ctx := context.Background()
	villaID := uuid.New()
	base := time.Date(2030, 6, 15, 10, 0, 0, 0, time.UTC)

	items := []*queries.ReviewListItem{
		builder.NewReviewBuilder().WithVillaID(villaID).WithCreatedAt(base).BuildListItem(),
		builder.NewReviewBuilder().WithVillaID(villaID).WithCreatedAt(base.Add(-time.Hour)).BuildListItem(),
	}

	t.Run("single page has no cursor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockReviewReadStore(ctrl)

		store.EXPECT().FindVisibleByVillaFirstPage(gomock.Any(), villaID, int32(queries.DefaultListLimit+1)).Return(items, nil)

		got, next, err := queries.NewReviewQueries(store).ListByVilla(ctx, villaID, nil, 0)
		require.NoError(t, err)
		assert.Len(t, got, 2)
		assert.Nil(t, next)
	})

	t.Run("page boundary yields a cursor for the last returned item", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockReviewReadStore(ctrl)

		store.EXPECT().FindVisibleByVillaFirstPage(gomock.Any(), villaID, int32(2)).Return(items, nil)
		store.EXPECT().FindVisibleByVillaKeyset(gomock.Any(), villaID, gomock.Any(), items[0].ID, int32(2)).
			Return(items[1:], nil)

		q := queries.NewReviewQueries(store)
		first, next, err := q.ListByVilla(ctx, villaID, nil, 1)
		require.NoError(t, err)
		require.Len(t, first, 1)
		require.NotNil(t, next)

		second, next, err := q.ListByVilla(ctx, villaID, next, 1)
		require.NoError(t, err)
		assert.Equal(t, items[1].ID, second[0].ID)
		assert.Nil(t, next)
	})

	t.Run("malformed cursor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockReviewReadStore(ctrl)

		_, _, err := queries.NewReviewQueries(store).ListByVilla(ctx, villaID, &queries.Cursor{After: "bogus"}, 10)
		assert.ErrorIs(t, err, queries.ErrInvalidCursor)
	})
}

func TestReviewQueries_GetByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockReviewReadStore(ctrl)
	id := uuid.New()

	store.EXPECT().FindByID(gomock.Any(), id).Return(nil, errNotFound)

	_, err := queries.NewReviewQueries(store).GetByID(context.Background(), id)
	assert.ErrorIs(t, err, queries.ErrReviewNotFound)
}

func TestUserQueries_GetCurrentUser(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		view    *queries.UserView
		findErr error
		wantErr error
	}{
		{name: "active user", view: builder.NewUserBuilder().BuildView()},
		{name: "inactive user", view: builder.NewUserBuilder().AsInactive().BuildView(), wantErr: queries.ErrUserInactive},
		{name: "unknown user", findErr: errNotFound, wantErr: queries.ErrUserNotFound},
		{name: "store failure", findErr: errDBConnectionLost, wantErr: errDBConnectionLost},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := queriesmock.NewMockUserReadStore(ctrl)
			id := uuid.New()

			store.EXPECT().FindByID(gomock.Any(), id).Return(tt.view, tt.findErr)

			got, err := queries.NewUserQueries(store).GetCurrentUser(ctx, id)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.view.Email, got.Email)
		})
	}
}
