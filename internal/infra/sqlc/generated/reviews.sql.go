package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const createReview = `-- name: CreateReview :one
INSERT INTO reviews (id, villa_id, user_id, user_name, rating, comment, is_visible, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
RETURNING id
`

type CreateReviewParams struct {
	ID        uuid.UUID          `json:"id"`
	VillaID   uuid.UUID          `json:"villa_id"`
	UserID    uuid.UUID          `json:"user_id"`
	UserName  string             `json:"user_name"`
	Rating    int16              `json:"rating"`
	Comment   string             `json:"comment"`
	IsVisible bool               `json:"is_visible"`
	CreatedAt pgtype.Timestamptz `json:"created_at"`
}

func (q *Queries) CreateReview(ctx context.Context, db DBTX, arg CreateReviewParams) (uuid.UUID, error) {
	row := db.QueryRow(ctx, createReview,
		arg.ID,
		arg.VillaID,
		arg.UserID,
		arg.UserName,
		arg.Rating,
		arg.Comment,
		arg.IsVisible,
		arg.CreatedAt,
	)
	var id uuid.UUID
	err := row.Scan(&id)
	return id, err
}

const getReviewForUpdate = `-- name: GetReviewForUpdate :one
SELECT id, villa_id, user_id, user_name, rating, comment, is_visible, created_at, updated_at FROM reviews
WHERE id = $1
FOR UPDATE
`

func (q *Queries) GetReviewForUpdate(ctx context.Context, db DBTX, id uuid.UUID) (Reviews, error) {
	row := db.QueryRow(ctx, getReviewForUpdate, id)
	var i Reviews
	err := row.Scan(
		&i.ID,
		&i.VillaID,
		&i.UserID,
		&i.UserName,
		&i.Rating,
		&i.Comment,
		&i.IsVisible,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const getReviewViewByID = `-- name: GetReviewViewByID :one
SELECT r.id, r.villa_id, r.user_id, r.user_name, r.rating, r.comment, r.is_visible, r.created_at, r.updated_at, v.name AS villa_name
FROM reviews r
JOIN villas v ON v.id = r.villa_id
WHERE r.id = $1
`

type GetReviewViewByIDRow struct {
	ID        uuid.UUID          `json:"id"`
	VillaID   uuid.UUID          `json:"villa_id"`
	UserID    uuid.UUID          `json:"user_id"`
	UserName  string             `json:"user_name"`
	Rating    int16              `json:"rating"`
	Comment   string             `json:"comment"`
	IsVisible bool               `json:"is_visible"`
	CreatedAt pgtype.Timestamptz `json:"created_at"`
	UpdatedAt pgtype.Timestamptz `json:"updated_at"`
	VillaName string             `json:"villa_name"`
}

func (q *Queries) GetReviewViewByID(ctx context.Context, db DBTX, id uuid.UUID) (GetReviewViewByIDRow, error) {
	row := db.QueryRow(ctx, getReviewViewByID, id)
	var i GetReviewViewByIDRow
	err := row.Scan(
		&i.ID,
		&i.VillaID,
		&i.UserID,
		&i.UserName,
		&i.Rating,
		&i.Comment,
		&i.IsVisible,
		&i.CreatedAt,
		&i.UpdatedAt,
		&i.VillaName,
	)
	return i, err
}

const listReviewViews = `-- name: ListReviewViews :many
SELECT r.id, r.villa_id, r.user_id, r.user_name, r.rating, r.comment, r.is_visible, r.created_at, r.updated_at, v.name AS villa_name
FROM reviews r
JOIN villas v ON v.id = r.villa_id
WHERE ($1::boolean IS NULL OR r.is_visible = $1::boolean)
  AND ($2::uuid IS NULL OR r.villa_id = $2::uuid)
ORDER BY r.created_at DESC, r.id DESC
LIMIT $3 OFFSET $4
`

type ListReviewViewsParams struct {
	Visible pgtype.Bool `json:"visible"`
	VillaID pgtype.UUID `json:"villa_id"`
	Lim     int32       `json:"lim"`
	Off     int32       `json:"off"`
}

type ListReviewViewsRow struct {
	ID        uuid.UUID          `json:"id"`
	VillaID   uuid.UUID          `json:"villa_id"`
	UserID    uuid.UUID          `json:"user_id"`
	UserName  string             `json:"user_name"`
	Rating    int16              `json:"rating"`
	Comment   string             `json:"comment"`
	IsVisible bool               `json:"is_visible"`
	CreatedAt pgtype.Timestamptz `json:"created_at"`
	UpdatedAt pgtype.Timestamptz `json:"updated_at"`
	VillaName string             `json:"villa_name"`
}

func (q *Queries) ListReviewViews(ctx context.Context, db DBTX, arg ListReviewViewsParams) ([]ListReviewViewsRow, error) {
	rows, err := db.Query(ctx, listReviewViews,
		arg.Visible,
		arg.VillaID,
		arg.Lim,
		arg.Off,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []ListReviewViewsRow{}
	for rows.Next() {
		var i ListReviewViewsRow
		if err := rows.Scan(
			&i.ID,
			&i.VillaID,
			&i.UserID,
			&i.UserName,
			&i.Rating,
			&i.Comment,
			&i.IsVisible,
			&i.CreatedAt,
			&i.UpdatedAt,
			&i.VillaName,
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

const listVisibleReviewsByVillaFirstPage = `-- name: ListVisibleReviewsByVillaFirstPage :many
SELECT id, user_name, rating, comment, created_at
FROM reviews
WHERE villa_id = $1 AND is_visible
ORDER BY created_at DESC, id DESC
LIMIT $2
`

type ListVisibleReviewsByVillaFirstPageParams struct {
	VillaID uuid.UUID `json:"villa_id"`
	Limit   int32     `json:"limit"`
}

type ListVisibleReviewsByVillaFirstPageRow struct {
	ID        uuid.UUID          `json:"id"`
	UserName  string             `json:"user_name"`
	Rating    int16              `json:"rating"`
	Comment   string             `json:"comment"`
	CreatedAt pgtype.Timestamptz `json:"created_at"`
}

func (q *Queries) ListVisibleReviewsByVillaFirstPage(ctx context.Context, db DBTX, arg ListVisibleReviewsByVillaFirstPageParams) ([]ListVisibleReviewsByVillaFirstPageRow, error) {
	rows, err := db.Query(ctx, listVisibleReviewsByVillaFirstPage, arg.VillaID, arg.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []ListVisibleReviewsByVillaFirstPageRow{}
	for rows.Next() {
		var i ListVisibleReviewsByVillaFirstPageRow
		if err := rows.Scan(
			&i.ID,
			&i.UserName,
			&i.Rating,
			&i.Comment,
			&i.CreatedAt,
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

const listVisibleReviewsByVillaKeyset = `-- name: ListVisibleReviewsByVillaKeyset :many
SELECT id, user_name, rating, comment, created_at
FROM reviews
WHERE villa_id = $1 AND is_visible
  AND (created_at, id) < ($2::timestamptz, $3::uuid)
ORDER BY created_at DESC, id DESC
LIMIT $4
`

type ListVisibleReviewsByVillaKeysetParams struct {
	VillaID   uuid.UUID          `json:"villa_id"`
	CreatedAt pgtype.Timestamptz `json:"created_at"`
	ID        uuid.UUID          `json:"id"`
	Lim       int32              `json:"lim"`
}

type ListVisibleReviewsByVillaKeysetRow struct {
	ID        uuid.UUID          `json:"id"`
	UserName  string             `json:"user_name"`
	Rating    int16              `json:"rating"`
	Comment   string             `json:"comment"`
	CreatedAt pgtype.Timestamptz `json:"created_at"`
}

func (q *Queries) ListVisibleReviewsByVillaKeyset(ctx context.Context, db DBTX, arg ListVisibleReviewsByVillaKeysetParams) ([]ListVisibleReviewsByVillaKeysetRow, error) {
	rows, err := db.Query(ctx, listVisibleReviewsByVillaKeyset,
		arg.VillaID,
		arg.CreatedAt,
		arg.ID,
		arg.Lim,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []ListVisibleReviewsByVillaKeysetRow{}
	for rows.Next() {
		var i ListVisibleReviewsByVillaKeysetRow
		if err := rows.Scan(
			&i.ID,
			&i.UserName,
			&i.Rating,
			&i.Comment,
			&i.CreatedAt,
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

const updateReviewVisibility = `-- name: UpdateReviewVisibility :execrows
UPDATE reviews
SET is_visible = $2, updated_at = $3
WHERE id = $1
`

type UpdateReviewVisibilityParams struct {
	ID        uuid.UUID          `json:"id"`
	IsVisible bool               `json:"is_visible"`
	UpdatedAt pgtype.Timestamptz `json:"updated_at"`
}

func (q *Queries) UpdateReviewVisibility(ctx context.Context, db DBTX, arg UpdateReviewVisibilityParams) (int64, error) {
	result, err := db.Exec(ctx, updateReviewVisibility, arg.ID, arg.IsVisible, arg.UpdatedAt)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
