//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"villanest/internal/domain/villa"
	"villanest/internal/pkg/clock"
	"villanest/internal/usecase/commands"
	"villanest/tests/common/builder"
	queriesmock "villanest/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestVillaCommands(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	t.Run("create", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newTxMocks(ctrl)
		cache := queriesmock.NewMockVillaCache(ctrl)
		id := uuid.New()

		m.expectWithin()
		m.villas.EXPECT().Create(gomock.Any(), m.db, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, v *villa.Villa) (uuid.UUID, error) {
				assert.Equal(t, []string{"pool", "wifi"}, v.Amenities())
				return id, nil
			})

		cmds := commands.NewVillaCommands(m.uow, cache, clock.NewMockClock(now))
		result, err := cmds.Create(ctx, builder.NewVillaBuilder().WithAmenities("pool", " wifi", "Pool").BuildParams())
		require.NoError(t, err)
		assert.Equal(t, id, result.VillaID)
	})

	t.Run("create rejects invalid params without a transaction", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newTxMocks(ctrl)
		cache := queriesmock.NewMockVillaCache(ctrl)

		cmds := commands.NewVillaCommands(m.uow, cache, clock.NewMockClock(now))
		_, err := cmds.Create(ctx, builder.NewVillaBuilder().WithPricePerNight(0).BuildParams())
		assert.ErrorIs(t, err, villa.ErrInvalidPrice)
	})

	t.Run("update invalidates the cached view", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newTxMocks(ctrl)
		cache := queriesmock.NewMockVillaCache(ctrl)
		existing, err := builder.NewVillaBuilder().BuildDomain()
		require.NoError(t, err)

		m.expectWithin()
		m.villas.EXPECT().FindByID(gomock.Any(), m.db, existing.ID()).Return(existing, nil)
		m.villas.EXPECT().Update(gomock.Any(), m.db, existing).Return(nil)
		cache.EXPECT().Invalidate(gomock.Any(), existing.ID())

		cmds := commands.NewVillaCommands(m.uow, cache, clock.NewMockClock(now))
		err = cmds.Update(ctx, existing.ID(), builder.NewVillaBuilder().WithName("Casa Verde").BuildParams())
		require.NoError(t, err)
		assert.Equal(t, "Casa Verde", existing.Name())
	})

	t.Run("deactivate unknown villa", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newTxMocks(ctrl)
		cache := queriesmock.NewMockVillaCache(ctrl)
		id := uuid.New()

		m.expectWithin()
		m.villas.EXPECT().FindByID(gomock.Any(), m.db, id).Return(nil, errNotFound)

		cmds := commands.NewVillaCommands(m.uow, cache, clock.NewMockClock(now))
		assert.ErrorIs(t, cmds.Deactivate(ctx, id), commands.ErrVillaNotFound)
	})

	t.Run("deactivate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newTxMocks(ctrl)
		cache := queriesmock.NewMockVillaCache(ctrl)
		existing, err := builder.NewVillaBuilder().BuildDomain()
		require.NoError(t, err)

		m.expectWithin()
		m.villas.EXPECT().FindByID(gomock.Any(), m.db, existing.ID()).Return(existing, nil)
		m.villas.EXPECT().Deactivate(gomock.Any(), m.db, existing).Return(nil)
		cache.EXPECT().Invalidate(gomock.Any(), existing.ID())

		cmds := commands.NewVillaCommands(m.uow, cache, clock.NewMockClock(now))
		require.NoError(t, cmds.Deactivate(ctx, existing.ID()))
		assert.False(t, existing.IsActive())
	})
}
