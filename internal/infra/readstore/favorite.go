package readstore

//go:generate mockgen -source=favorite.go -destination=../../../tests/mock/readstore/favorite.go -package=readstoremock

import (
	"context"

	"villanest/internal/infra"
	sqlc "villanest/internal/infra/sqlc/generated"
	"villanest/internal/pkg/pgconv"
	"villanest/internal/usecase/queries"

	"github.com/google/uuid"
)

type FavoriteViewQueries interface {
	ListFavoriteVillas(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) ([]sqlc.ListFavoriteVillasRow, error)
	ListFavoriteVillaIDs(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) ([]uuid.UUID, error)
}

type FavoriteReadStore struct {
	queries FavoriteViewQueries
	db      sqlc.DBTX
}

func NewFavoriteReadStore(queries FavoriteViewQueries, db sqlc.DBTX) *FavoriteReadStore {
	return &FavoriteReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *FavoriteReadStore) ListVillas(ctx context.Context, userID uuid.UUID) ([]*queries.FavoriteVillaView, error) {
	rows, err := r.queries.ListFavoriteVillas(ctx, r.db, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list favorite villas", err)
	}

	views := make([]*queries.FavoriteVillaView, 0, len(rows))
	for _, row := range rows {
		v, err := toVillaView(sqlc.Villas{
			ID:            row.ID,
			Name:          row.Name,
			Type:          row.Type,
			Description:   row.Description,
			Location:      row.Location,
			PricePerNight: row.PricePerNight,
			PriceHourly:   row.PriceHourly,
			Amenities:     row.Amenities,
			MainImage:     row.MainImage,
			Media:         row.Media,
			Latitude:      row.Latitude,
			Longitude:     row.Longitude,
			SearchText:    row.SearchText,
			AvgRating:     row.AvgRating,
			ReviewsCount:  row.ReviewsCount,
			IsActive:      row.IsActive,
			CreatedAt:     row.CreatedAt,
			UpdatedAt:     row.UpdatedAt,
		})
		if err != nil {
			return nil, err
		}
		views = append(views, &queries.FavoriteVillaView{
			VillaView:   *v,
			FavoritedAt: pgconv.TimeFromPgtype(row.FavoritedAt),
		})
	}
	return views, nil
}

func (r *FavoriteReadStore) ListVillaIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	ids, err := r.queries.ListFavoriteVillaIDs(ctx, r.db, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list favorite villa ids", err)
	}
	return ids, nil
}
