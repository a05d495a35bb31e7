package commands

//go:generate mockgen -source=favorite.go -destination=../../../tests/mock/commands/favorite.go -package=commandsmock

import (
	"context"

	"villanest/internal/infra"
	"villanest/internal/pkg/clock"
	"villanest/internal/usecase/shared"

	"github.com/google/uuid"
)

type FavoriteCommands interface {
	// Toggle flips the villa's membership in the user's favorites and
	// reports the new state.
	Toggle(ctx context.Context, userID, villaID uuid.UUID) (bool, error)
}

type favoriteCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewFavoriteCommands(uow shared.UnitOfWork, clk clock.Clock) FavoriteCommands {
	return &favoriteCommandsImpl{uow: uow, clock: clk}
}

func (c *favoriteCommandsImpl) Toggle(ctx context.Context, userID, villaID uuid.UUID) (bool, error) {
	var favorited bool
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		removed, err := tx.Favorites().Remove(ctx, tx.DB(), userID, villaID)
		if err != nil {
			return err
		}
		if removed {
			favorited = false
			return nil
		}

		villa, err := tx.Reads().VillaByID(ctx, villaID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrVillaNotFound
			}
			return err
		}
		if !villa.IsActive {
			return ErrVillaNotFound
		}

		if _, err := tx.Favorites().Add(ctx, tx.DB(), userID, villaID, c.clock.Now()); err != nil {
			return err
		}
		favorited = true
		return nil
	})
	return favorited, err
}
