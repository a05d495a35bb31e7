package repository

import (
	"context"
	"time"

	"villanest/internal/infra"
	sqlc "villanest/internal/infra/sqlc/generated"
	"villanest/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type FavoriteWriteQueries interface {
	InsertFavorite(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertFavoriteParams) (int64, error)
	DeleteFavorite(ctx context.Context, db sqlc.DBTX, arg sqlc.DeleteFavoriteParams) (int64, error)
}

type FavoriteRepository struct {
	queries FavoriteWriteQueries
	db      sqlc.DBTX
}

func NewFavoriteRepository(queries FavoriteWriteQueries, db sqlc.DBTX) *FavoriteRepository {
	return &FavoriteRepository{queries: queries, db: db}
}

// Add reports whether a new favorite was stored.
func (r *FavoriteRepository) Add(ctx context.Context, tx sqlc.DBTX, userID, villaID uuid.UUID, at time.Time) (bool, error) {
	n, err := r.queries.InsertFavorite(ctx, tx, sqlc.InsertFavoriteParams{
		UserID:    userID,
		VillaID:   villaID,
		CreatedAt: pgconv.TimeToPgtype(at),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to add favorite", err)
	}
	return n > 0, nil
}

// Remove reports whether a favorite existed.
func (r *FavoriteRepository) Remove(ctx context.Context, tx sqlc.DBTX, userID, villaID uuid.UUID) (bool, error) {
	n, err := r.queries.DeleteFavorite(ctx, tx, sqlc.DeleteFavoriteParams{UserID: userID, VillaID: villaID})
	if err != nil {
		return false, infra.WrapRepoErr("failed to remove favorite", err)
	}
	return n > 0, nil
}
