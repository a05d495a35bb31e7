package commands

//go:generate mockgen -source=villa.go -destination=../../../tests/mock/commands/villa.go -package=commandsmock

import (
	"context"
	"log/slog"

	"villanest/internal/domain/villa"
	"villanest/internal/infra"
	"villanest/internal/pkg/clock"
	"villanest/internal/usecase/queries"
	"villanest/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateVillaResult struct {
	VillaID uuid.UUID
}

type VillaCommands interface {
	Create(ctx context.Context, p villa.Params) (*CreateVillaResult, error)
	Update(ctx context.Context, id uuid.UUID, p villa.Params) error
	// Deactivate hides the villa from the public catalog. Bookings are kept.
	Deactivate(ctx context.Context, id uuid.UUID) error
}

type villaCommandsImpl struct {
	uow   shared.UnitOfWork
	cache queries.VillaCache
	clock clock.Clock
}

func NewVillaCommands(uow shared.UnitOfWork, cache queries.VillaCache, clk clock.Clock) VillaCommands {
	return &villaCommandsImpl{uow: uow, cache: cache, clock: clk}
}

func (c *villaCommandsImpl) Create(ctx context.Context, p villa.Params) (*CreateVillaResult, error) {
	v, err := villa.NewVilla(p, c.clock.Now())
	if err != nil {
		return nil, err
	}

	var id uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		created, err := tx.Villas().Create(ctx, tx.DB(), v)
		if err != nil {
			return err
		}
		id = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("villa created", "villa_id", id.String(), "name", v.Name())
	return &CreateVillaResult{VillaID: id}, nil
}

func (c *villaCommandsImpl) Update(ctx context.Context, id uuid.UUID, p villa.Params) error {
	err := c.modify(ctx, id, func(v *villa.Villa, tx shared.Tx) error {
		if err := v.Update(p, c.clock.Now()); err != nil {
			return err
		}
		return tx.Villas().Update(ctx, tx.DB(), v)
	})
	if err != nil {
		return err
	}
	c.cache.Invalidate(ctx, id)
	return nil
}

func (c *villaCommandsImpl) Deactivate(ctx context.Context, id uuid.UUID) error {
	err := c.modify(ctx, id, func(v *villa.Villa, tx shared.Tx) error {
		v.Deactivate(c.clock.Now())
		return tx.Villas().Deactivate(ctx, tx.DB(), v)
	})
	if err != nil {
		return err
	}
	slog.Info("villa deactivated", "villa_id", id.String())
	c.cache.Invalidate(ctx, id)
	return nil
}

func (c *villaCommandsImpl) modify(ctx context.Context, id uuid.UUID, fn func(v *villa.Villa, tx shared.Tx) error) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		v, err := tx.Villas().FindByID(ctx, tx.DB(), id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrVillaNotFound
			}
			return err
		}
		return fn(v, tx)
	})
}
