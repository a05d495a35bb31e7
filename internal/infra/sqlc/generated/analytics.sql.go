package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const getBookingTotals = `-- name: GetBookingTotals :one
SELECT COUNT(*)::bigint AS total_bookings,
       COALESCE(SUM(total_price), 0)::bigint AS total_revenue
FROM bookings
WHERE status <> 'cancelled'
`

type GetBookingTotalsRow struct {
	TotalBookings int64 `json:"total_bookings"`
	TotalRevenue  int64 `json:"total_revenue"`
}

func (q *Queries) GetBookingTotals(ctx context.Context, db DBTX) (GetBookingTotalsRow, error) {
	row := db.QueryRow(ctx, getBookingTotals)
	var i GetBookingTotalsRow
	err := row.Scan(
		&i.TotalBookings,
		&i.TotalRevenue,
	)
	return i, err
}

const getPlatformRating = `-- name: GetPlatformRating :one
SELECT ROUND(AVG(avg_rating), 1)::numeric AS platform_rating
FROM villas
WHERE avg_rating > 0
`

func (q *Queries) GetPlatformRating(ctx context.Context, db DBTX) (pgtype.Numeric, error) {
	row := db.QueryRow(ctx, getPlatformRating)
	var platform_rating pgtype.Numeric
	err := row.Scan(&platform_rating)
	return platform_rating, err
}

const listRevenueByDay = `-- name: ListRevenueByDay :many
SELECT (created_at AT TIME ZONE $1::text)::date AS day,
       COUNT(*)::bigint AS bookings,
       COALESCE(SUM(total_price), 0)::bigint AS revenue
FROM bookings
WHERE status <> 'cancelled'
  AND created_at >= $2::timestamptz
GROUP BY day
ORDER BY day
`

type ListRevenueByDayParams struct {
	Tz    string             `json:"tz"`
	Since pgtype.Timestamptz `json:"since"`
}

type ListRevenueByDayRow struct {
	Day      pgtype.Date `json:"day"`
	Bookings int64       `json:"bookings"`
	Revenue  int64       `json:"revenue"`
}

func (q *Queries) ListRevenueByDay(ctx context.Context, db DBTX, arg ListRevenueByDayParams) ([]ListRevenueByDayRow, error) {
	rows, err := db.Query(ctx, listRevenueByDay, arg.Tz, arg.Since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []ListRevenueByDayRow{}
	for rows.Next() {
		var i ListRevenueByDayRow
		if err := rows.Scan(
			&i.Day,
			&i.Bookings,
			&i.Revenue,
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

const listTopVillasByBookings = `-- name: ListTopVillasByBookings :many
SELECT v.id, v.name,
       COUNT(b.id)::bigint AS bookings,
       COALESCE(SUM(b.total_price), 0)::bigint AS revenue
FROM villas v
LEFT JOIN bookings b ON b.villa_id = v.id AND b.status <> 'cancelled'
GROUP BY v.id, v.name
ORDER BY bookings DESC, v.name
LIMIT $1
`

type ListTopVillasByBookingsRow struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Bookings int64     `json:"bookings"`
	Revenue  int64     `json:"revenue"`
}

func (q *Queries) ListTopVillasByBookings(ctx context.Context, db DBTX, limit int32) ([]ListTopVillasByBookingsRow, error) {
	rows, err := db.Query(ctx, listTopVillasByBookings, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []ListTopVillasByBookingsRow{}
	for rows.Next() {
		var i ListTopVillasByBookingsRow
		if err := rows.Scan(
			&i.ID,
			&i.Name,
			&i.Bookings,
			&i.Revenue,
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
