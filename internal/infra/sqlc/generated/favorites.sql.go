package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const deleteFavorite = `-- name: DeleteFavorite :execrows
DELETE FROM favorites
WHERE user_id = $1 AND villa_id = $2
`

type DeleteFavoriteParams struct {
	UserID  uuid.UUID `json:"user_id"`
	VillaID uuid.UUID `json:"villa_id"`
}

func (q *Queries) DeleteFavorite(ctx context.Context, db DBTX, arg DeleteFavoriteParams) (int64, error) {
	result, err := db.Exec(ctx, deleteFavorite, arg.UserID, arg.VillaID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const insertFavorite = `-- name: InsertFavorite :execrows
INSERT INTO favorites (user_id, villa_id, created_at)
VALUES ($1, $2, $3)
ON CONFLICT (user_id, villa_id) DO NOTHING
`

type InsertFavoriteParams struct {
	UserID    uuid.UUID          `json:"user_id"`
	VillaID   uuid.UUID          `json:"villa_id"`
	CreatedAt pgtype.Timestamptz `json:"created_at"`
}

func (q *Queries) InsertFavorite(ctx context.Context, db DBTX, arg InsertFavoriteParams) (int64, error) {
	result, err := db.Exec(ctx, insertFavorite, arg.UserID, arg.VillaID, arg.CreatedAt)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const listFavoriteVillaIDs = `-- name: ListFavoriteVillaIDs :many
SELECT villa_id FROM favorites
WHERE user_id = $1
ORDER BY created_at DESC
`

func (q *Queries) ListFavoriteVillaIDs(ctx context.Context, db DBTX, userID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := db.Query(ctx, listFavoriteVillaIDs, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []uuid.UUID{}
	for rows.Next() {
		var villa_id uuid.UUID
		if err := rows.Scan(&villa_id); err != nil {
			return nil, err
		}
		items = append(items, villa_id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const listFavoriteVillas = `-- name: ListFavoriteVillas :many
SELECT v.id, v.name, v.type, v.description, v.location, v.price_per_night, v.price_hourly, v.amenities, v.main_image, v.media, v.latitude, v.longitude, v.search_text, v.avg_rating, v.reviews_count, v.is_active, v.created_at, v.updated_at, f.created_at AS favorited_at
FROM favorites f
JOIN villas v ON v.id = f.villa_id
WHERE f.user_id = $1 AND v.is_active
ORDER BY f.created_at DESC
`

type ListFavoriteVillasRow struct {
	ID            uuid.UUID          `json:"id"`
	Name          string             `json:"name"`
	Type          string             `json:"type"`
	Description   string             `json:"description"`
	Location      string             `json:"location"`
	PricePerNight int64              `json:"price_per_night"`
	PriceHourly   pgtype.Int8        `json:"price_hourly"`
	Amenities     []string           `json:"amenities"`
	MainImage     string             `json:"main_image"`
	Media         []byte             `json:"media"`
	Latitude      pgtype.Float8      `json:"latitude"`
	Longitude     pgtype.Float8      `json:"longitude"`
	SearchText    string             `json:"search_text"`
	AvgRating     pgtype.Numeric     `json:"avg_rating"`
	ReviewsCount  int32              `json:"reviews_count"`
	IsActive      bool               `json:"is_active"`
	CreatedAt     pgtype.Timestamptz `json:"created_at"`
	UpdatedAt     pgtype.Timestamptz `json:"updated_at"`
	FavoritedAt   pgtype.Timestamptz `json:"favorited_at"`
}

func (q *Queries) ListFavoriteVillas(ctx context.Context, db DBTX, userID uuid.UUID) ([]ListFavoriteVillasRow, error) {
	rows, err := db.Query(ctx, listFavoriteVillas, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []ListFavoriteVillasRow{}
	for rows.Next() {
		var i ListFavoriteVillasRow
		if err := rows.Scan(
			&i.ID,
			&i.Name,
			&i.Type,
			&i.Description,
			&i.Location,
			&i.PricePerNight,
			&i.PriceHourly,
			&i.Amenities,
			&i.MainImage,
			&i.Media,
			&i.Latitude,
			&i.Longitude,
			&i.SearchText,
			&i.AvgRating,
			&i.ReviewsCount,
			&i.IsActive,
			&i.CreatedAt,
			&i.UpdatedAt,
			&i.FavoritedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
