package repository

import (
	"context"

	"villanest/internal/domain/villa"
	"villanest/internal/infra"
	"villanest/internal/infra/repository/converter"
	sqlc "villanest/internal/infra/sqlc/generated"
	"villanest/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type VillaWriteQueries interface {
	CreateVilla(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateVillaParams) (uuid.UUID, error)
	UpdateVilla(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateVillaParams) (int64, error)
	DeactivateVilla(ctx context.Context, db sqlc.DBTX, arg sqlc.DeactivateVillaParams) (int64, error)
	GetVillaByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Villas, error)
}

type VillaRepository struct {
	queries VillaWriteQueries
	db      sqlc.DBTX
}

func NewVillaRepository(queries VillaWriteQueries, db sqlc.DBTX) *VillaRepository {
	return &VillaRepository{
		queries: queries,
		db:      db,
	}
}

func (r *VillaRepository) Create(ctx context.Context, tx sqlc.DBTX, v *villa.Villa) (uuid.UUID, error) {
	params, err := converter.VillaToCreateParams(v)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to encode villa", err, infra.KindDBFailure)
	}
	id, err := r.queries.CreateVilla(ctx, tx, params)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create villa", err)
	}
	return id, nil
}

func (r *VillaRepository) Update(ctx context.Context, tx sqlc.DBTX, v *villa.Villa) error {
	params, err := converter.VillaToUpdateParams(v)
	if err != nil {
		return infra.WrapRepoErr("failed to encode villa", err, infra.KindDBFailure)
	}
	n, err := r.queries.UpdateVilla(ctx, tx, params)
	if err != nil {
		return infra.WrapRepoErr("failed to update villa", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("villa not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *VillaRepository) Deactivate(ctx context.Context, tx sqlc.DBTX, v *villa.Villa) error {
	n, err := r.queries.DeactivateVilla(ctx, tx, sqlc.DeactivateVillaParams{
		ID:        v.ID(),
		UpdatedAt: pgconv.TimeToPgtype(v.UpdatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to deactivate villa", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("villa not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *VillaRepository) FindByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*villa.Villa, error) {
	row, err := r.queries.GetVillaByID(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("villa not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get villa", err)
	}
	v, err := converter.VillaFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("stored villa is malformed", err, infra.KindDBFailure)
	}
	return v, nil
}
