//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"villanest/internal/pkg/clock"
	"villanest/internal/usecase/commands"
	"villanest/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestFavoriteCommands_Toggle(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	userID := uuid.New()

	t.Run("adds when absent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newTxMocks(ctrl)
		villaID := uuid.New()

		m.expectWithin()
		m.favorites.EXPECT().Remove(gomock.Any(), m.db, userID, villaID).Return(false, nil)
		m.reads.EXPECT().VillaByID(gomock.Any(), villaID).Return(builder.NewVillaBuilder().WithID(villaID).BuildSnapshot(), nil)
		m.favorites.EXPECT().Add(gomock.Any(), m.db, userID, villaID, now).Return(true, nil)

		favorited, err := commands.NewFavoriteCommands(m.uow, clock.NewMockClock(now)).Toggle(ctx, userID, villaID)
		require.NoError(t, err)
		assert.True(t, favorited)
	})

	t.Run("removes when present", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newTxMocks(ctrl)
		villaID := uuid.New()

		m.expectWithin()
		m.favorites.EXPECT().Remove(gomock.Any(), m.db, userID, villaID).Return(true, nil)

		favorited, err := commands.NewFavoriteCommands(m.uow, clock.NewMockClock(now)).Toggle(ctx, userID, villaID)
		require.NoError(t, err)
		assert.False(t, favorited)
	})

	t.Run("inactive villa cannot be favorited", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newTxMocks(ctrl)
		villaID := uuid.New()

		m.expectWithin()
		m.favorites.EXPECT().Remove(gomock.Any(), m.db, userID, villaID).Return(false, nil)
		m.reads.EXPECT().VillaByID(gomock.Any(), villaID).Return(builder.NewVillaBuilder().AsInactive().BuildSnapshot(), nil)

		_, err := commands.NewFavoriteCommands(m.uow, clock.NewMockClock(now)).Toggle(ctx, userID, villaID)
		assert.ErrorIs(t, err, commands.ErrVillaNotFound)
	})
}
