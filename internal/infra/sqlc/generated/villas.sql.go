package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const createVilla = `-- name: CreateVilla :one
INSERT INTO villas (
    id, name, type, description, location, price_per_night, price_hourly,
    amenities, main_image, media, latitude, longitude, search_text,
    is_active, created_at, updated_at
) VALUES (
    $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $15
)
RETURNING id
`

type CreateVillaParams struct {
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
	IsActive      bool               `json:"is_active"`
	CreatedAt     pgtype.Timestamptz `json:"created_at"`
}

func (q *Queries) CreateVilla(ctx context.Context, db DBTX, arg CreateVillaParams) (uuid.UUID, error) {
	row := db.QueryRow(ctx, createVilla,
		arg.ID,
		arg.Name,
		arg.Type,
		arg.Description,
		arg.Location,
		arg.PricePerNight,
		arg.PriceHourly,
		arg.Amenities,
		arg.MainImage,
		arg.Media,
		arg.Latitude,
		arg.Longitude,
		arg.SearchText,
		arg.IsActive,
		arg.CreatedAt,
	)
	var id uuid.UUID
	err := row.Scan(&id)
	return id, err
}

const deactivateVilla = `-- name: DeactivateVilla :execrows
UPDATE villas
SET is_active = false, updated_at = $2
WHERE id = $1
`

type DeactivateVillaParams struct {
	ID        uuid.UUID          `json:"id"`
	UpdatedAt pgtype.Timestamptz `json:"updated_at"`
}

func (q *Queries) DeactivateVilla(ctx context.Context, db DBTX, arg DeactivateVillaParams) (int64, error) {
	result, err := db.Exec(ctx, deactivateVilla, arg.ID, arg.UpdatedAt)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const getVillaByID = `-- name: GetVillaByID :one
SELECT id, name, type, description, location, price_per_night, price_hourly, amenities, main_image, media, latitude, longitude, search_text, avg_rating, reviews_count, is_active, created_at, updated_at FROM villas
WHERE id = $1
`

func (q *Queries) GetVillaByID(ctx context.Context, db DBTX, id uuid.UUID) (Villas, error) {
	row := db.QueryRow(ctx, getVillaByID, id)
	var i Villas
	err := row.Scan(
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
	)
	return i, err
}

const listVillas = `-- name: ListVillas :many
SELECT id, name, type, description, location, price_per_night, price_hourly, amenities, main_image, media, latitude, longitude, search_text, avg_rating, reviews_count, is_active, created_at, updated_at FROM villas
WHERE (NOT $1::boolean OR is_active)
  AND ($2::text IS NULL OR search_text LIKE '%' || $2::text || '%')
  AND ($3::text IS NULL OR lower(type) = lower($3::text))
  AND ($4::text IS NULL OR location = $4::text)
  AND ($5::bigint IS NULL OR price_per_night >= $5::bigint)
  AND ($6::bigint IS NULL OR price_per_night <= $6::bigint)
  AND ($7::text[] IS NULL OR amenities @> $7::text[])
ORDER BY
    CASE WHEN $8::text = 'price' THEN price_per_night END ASC,
    avg_rating DESC NULLS LAST,
    created_at DESC,
    id DESC
LIMIT $9 OFFSET $10
`

type ListVillasParams struct {
	OnlyActive bool        `json:"only_active"`
	Search     pgtype.Text `json:"search"`
	Type       pgtype.Text `json:"type"`
	Location   pgtype.Text `json:"location"`
	MinPrice   pgtype.Int8 `json:"min_price"`
	MaxPrice   pgtype.Int8 `json:"max_price"`
	Amenities  []string    `json:"amenities"`
	SortBy     string      `json:"sort_by"`
	Lim        int32       `json:"lim"`
	Off        int32       `json:"off"`
}

func (q *Queries) ListVillas(ctx context.Context, db DBTX, arg ListVillasParams) ([]Villas, error) {
	rows, err := db.Query(ctx, listVillas,
		arg.OnlyActive,
		arg.Search,
		arg.Type,
		arg.Location,
		arg.MinPrice,
		arg.MaxPrice,
		arg.Amenities,
		arg.SortBy,
		arg.Lim,
		arg.Off,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Villas{}
	for rows.Next() {
		var i Villas
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

const listVisibleRatingsByVilla = `-- name: ListVisibleRatingsByVilla :many
SELECT rating FROM reviews
WHERE villa_id = $1 AND is_visible
`

func (q *Queries) ListVisibleRatingsByVilla(ctx context.Context, db DBTX, villaID uuid.UUID) ([]int16, error) {
	rows, err := db.Query(ctx, listVisibleRatingsByVilla, villaID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []int16{}
	for rows.Next() {
		var rating int16
		if err := rows.Scan(&rating); err != nil {
			return nil, err
		}
		items = append(items, rating)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const lockVillaForRating = `-- name: LockVillaForRating :exec
SELECT 1 FROM villas WHERE id = $1 FOR NO KEY UPDATE
`

func (q *Queries) LockVillaForRating(ctx context.Context, db DBTX, id uuid.UUID) error {
	_, err := db.Exec(ctx, lockVillaForRating, id)
	return err
}

const updateVilla = `-- name: UpdateVilla :execrows
UPDATE villas
SET name = $2,
    type = $3,
    description = $4,
    location = $5,
    price_per_night = $6,
    price_hourly = $7,
    amenities = $8,
    main_image = $9,
    media = $10,
    latitude = $11,
    longitude = $12,
    search_text = $13,
    updated_at = $14
WHERE id = $1
`

type UpdateVillaParams struct {
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
	UpdatedAt     pgtype.Timestamptz `json:"updated_at"`
}

func (q *Queries) UpdateVilla(ctx context.Context, db DBTX, arg UpdateVillaParams) (int64, error) {
	result, err := db.Exec(ctx, updateVilla,
		arg.ID,
		arg.Name,
		arg.Type,
		arg.Description,
		arg.Location,
		arg.PricePerNight,
		arg.PriceHourly,
		arg.Amenities,
		arg.MainImage,
		arg.Media,
		arg.Latitude,
		arg.Longitude,
		arg.SearchText,
		arg.UpdatedAt,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const updateVillaRating = `-- name: UpdateVillaRating :exec
UPDATE villas
SET avg_rating = $2, reviews_count = $3
WHERE id = $1
`

type UpdateVillaRatingParams struct {
	ID           uuid.UUID      `json:"id"`
	AvgRating    pgtype.Numeric `json:"avg_rating"`
	ReviewsCount int32          `json:"reviews_count"`
}

func (q *Queries) UpdateVillaRating(ctx context.Context, db DBTX, arg UpdateVillaRatingParams) error {
	_, err := db.Exec(ctx, updateVillaRating, arg.ID, arg.AvgRating, arg.ReviewsCount)
	return err
}
