package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const completeEndedBookings = `-- name: CompleteEndedBookings :execrows
UPDATE bookings
SET status = 'completed', updated_at = now()
WHERE status = 'confirmed'
  AND end_date < $1::date
  AND ($2::uuid IS NULL OR user_id = $2::uuid)
`

type CompleteEndedBookingsParams struct {
	Today  pgtype.Date `json:"today"`
	UserID pgtype.UUID `json:"user_id"`
}

func (q *Queries) CompleteEndedBookings(ctx context.Context, db DBTX, arg CompleteEndedBookingsParams) (int64, error) {
	result, err := db.Exec(ctx, completeEndedBookings, arg.Today, arg.UserID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const createBooking = `-- name: CreateBooking :one
INSERT INTO bookings (
    id, villa_id, user_id, guest_name, guest_email, booking_type,
    start_date, end_date, start_hour, end_hour, stay_type, guests, rooms, status,
    base_price, tax_amount, total_price,
    payment_method, payment_transaction_id, payment_amount, payment_currency, payment_status, paid_at,
    created_at, updated_at
) VALUES (
    $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
    $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $24
)
RETURNING id
`

type CreateBookingParams struct {
	ID                   uuid.UUID          `json:"id"`
	VillaID              uuid.UUID          `json:"villa_id"`
	UserID               uuid.UUID          `json:"user_id"`
	GuestName            string             `json:"guest_name"`
	GuestEmail           string             `json:"guest_email"`
	BookingType          string             `json:"booking_type"`
	StartDate            pgtype.Date        `json:"start_date"`
	EndDate              pgtype.Date        `json:"end_date"`
	StartHour            pgtype.Int2        `json:"start_hour"`
	EndHour              pgtype.Int2        `json:"end_hour"`
	StayType             string             `json:"stay_type"`
	Guests               int32              `json:"guests"`
	Rooms                int32              `json:"rooms"`
	Status               string             `json:"status"`
	BasePrice            int64              `json:"base_price"`
	TaxAmount            int64              `json:"tax_amount"`
	TotalPrice           int64              `json:"total_price"`
	PaymentMethod        string             `json:"payment_method"`
	PaymentTransactionID string             `json:"payment_transaction_id"`
	PaymentAmount        int64              `json:"payment_amount"`
	PaymentCurrency      string             `json:"payment_currency"`
	PaymentStatus        string             `json:"payment_status"`
	PaidAt               pgtype.Timestamptz `json:"paid_at"`
	CreatedAt            pgtype.Timestamptz `json:"created_at"`
}

func (q *Queries) CreateBooking(ctx context.Context, db DBTX, arg CreateBookingParams) (uuid.UUID, error) {
	row := db.QueryRow(ctx, createBooking,
		arg.ID,
		arg.VillaID,
		arg.UserID,
		arg.GuestName,
		arg.GuestEmail,
		arg.BookingType,
		arg.StartDate,
		arg.EndDate,
		arg.StartHour,
		arg.EndHour,
		arg.StayType,
		arg.Guests,
		arg.Rooms,
		arg.Status,
		arg.BasePrice,
		arg.TaxAmount,
		arg.TotalPrice,
		arg.PaymentMethod,
		arg.PaymentTransactionID,
		arg.PaymentAmount,
		arg.PaymentCurrency,
		arg.PaymentStatus,
		arg.PaidAt,
		arg.CreatedAt,
	)
	var id uuid.UUID
	err := row.Scan(&id)
	return id, err
}

const getBookingForUpdate = `-- name: GetBookingForUpdate :one
SELECT id, villa_id, user_id, guest_name, guest_email, booking_type, start_date, end_date, start_hour, end_hour, stay_type, guests, rooms, status, base_price, tax_amount, total_price, payment_method, payment_transaction_id, payment_amount, payment_currency, payment_status, paid_at, created_at, updated_at FROM bookings
WHERE id = $1
FOR UPDATE
`

func (q *Queries) GetBookingForUpdate(ctx context.Context, db DBTX, id uuid.UUID) (Bookings, error) {
	row := db.QueryRow(ctx, getBookingForUpdate, id)
	var i Bookings
	err := row.Scan(
		&i.ID,
		&i.VillaID,
		&i.UserID,
		&i.GuestName,
		&i.GuestEmail,
		&i.BookingType,
		&i.StartDate,
		&i.EndDate,
		&i.StartHour,
		&i.EndHour,
		&i.StayType,
		&i.Guests,
		&i.Rooms,
		&i.Status,
		&i.BasePrice,
		&i.TaxAmount,
		&i.TotalPrice,
		&i.PaymentMethod,
		&i.PaymentTransactionID,
		&i.PaymentAmount,
		&i.PaymentCurrency,
		&i.PaymentStatus,
		&i.PaidAt,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const getBookingViewByID = `-- name: GetBookingViewByID :one
SELECT b.id, b.villa_id, b.user_id, b.guest_name, b.guest_email, b.booking_type, b.start_date, b.end_date, b.start_hour, b.end_hour, b.stay_type, b.guests, b.rooms, b.status, b.base_price, b.tax_amount, b.total_price, b.payment_method, b.payment_transaction_id, b.payment_amount, b.payment_currency, b.payment_status, b.paid_at, b.created_at, b.updated_at, v.name AS villa_name, v.location AS villa_location, v.main_image AS villa_image
FROM bookings b
JOIN villas v ON v.id = b.villa_id
WHERE b.id = $1
`

type GetBookingViewByIDRow struct {
	ID                   uuid.UUID          `json:"id"`
	VillaID              uuid.UUID          `json:"villa_id"`
	UserID               uuid.UUID          `json:"user_id"`
	GuestName            string             `json:"guest_name"`
	GuestEmail           string             `json:"guest_email"`
	BookingType          string             `json:"booking_type"`
	StartDate            pgtype.Date        `json:"start_date"`
	EndDate              pgtype.Date        `json:"end_date"`
	StartHour            pgtype.Int2        `json:"start_hour"`
	EndHour              pgtype.Int2        `json:"end_hour"`
	StayType             string             `json:"stay_type"`
	Guests               int32              `json:"guests"`
	Rooms                int32              `json:"rooms"`
	Status               string             `json:"status"`
	BasePrice            int64              `json:"base_price"`
	TaxAmount            int64              `json:"tax_amount"`
	TotalPrice           int64              `json:"total_price"`
	PaymentMethod        string             `json:"payment_method"`
	PaymentTransactionID string             `json:"payment_transaction_id"`
	PaymentAmount        int64              `json:"payment_amount"`
	PaymentCurrency      string             `json:"payment_currency"`
	PaymentStatus        string             `json:"payment_status"`
	PaidAt               pgtype.Timestamptz `json:"paid_at"`
	CreatedAt            pgtype.Timestamptz `json:"created_at"`
	UpdatedAt            pgtype.Timestamptz `json:"updated_at"`
	VillaName            string             `json:"villa_name"`
	VillaLocation        string             `json:"villa_location"`
	VillaImage           string             `json:"villa_image"`
}

func (q *Queries) GetBookingViewByID(ctx context.Context, db DBTX, id uuid.UUID) (GetBookingViewByIDRow, error) {
	row := db.QueryRow(ctx, getBookingViewByID, id)
	var i GetBookingViewByIDRow
	err := row.Scan(
		&i.ID,
		&i.VillaID,
		&i.UserID,
		&i.GuestName,
		&i.GuestEmail,
		&i.BookingType,
		&i.StartDate,
		&i.EndDate,
		&i.StartHour,
		&i.EndHour,
		&i.StayType,
		&i.Guests,
		&i.Rooms,
		&i.Status,
		&i.BasePrice,
		&i.TaxAmount,
		&i.TotalPrice,
		&i.PaymentMethod,
		&i.PaymentTransactionID,
		&i.PaymentAmount,
		&i.PaymentCurrency,
		&i.PaymentStatus,
		&i.PaidAt,
		&i.CreatedAt,
		&i.UpdatedAt,
		&i.VillaName,
		&i.VillaLocation,
		&i.VillaImage,
	)
	return i, err
}

const hasCompletedStay = `-- name: HasCompletedStay :one
SELECT EXISTS (
    SELECT 1 FROM bookings
    WHERE villa_id = $1
      AND user_id = $2
      AND (status = 'completed' OR (status = 'confirmed' AND end_date < $3::date))
) AS eligible
`

type HasCompletedStayParams struct {
	VillaID uuid.UUID   `json:"villa_id"`
	UserID  uuid.UUID   `json:"user_id"`
	Today   pgtype.Date `json:"today"`
}

func (q *Queries) HasCompletedStay(ctx context.Context, db DBTX, arg HasCompletedStayParams) (bool, error) {
	row := db.QueryRow(ctx, hasCompletedStay, arg.VillaID, arg.UserID, arg.Today)
	var eligible bool
	err := row.Scan(&eligible)
	return eligible, err
}

const listBookingViews = `-- name: ListBookingViews :many
SELECT b.id, b.villa_id, b.user_id, b.guest_name, b.guest_email, b.booking_type, b.start_date, b.end_date, b.start_hour, b.end_hour, b.stay_type, b.guests, b.rooms, b.status, b.base_price, b.tax_amount, b.total_price, b.payment_method, b.payment_transaction_id, b.payment_amount, b.payment_currency, b.payment_status, b.paid_at, b.created_at, b.updated_at, v.name AS villa_name, v.location AS villa_location, v.main_image AS villa_image
FROM bookings b
JOIN villas v ON v.id = b.villa_id
WHERE ($1::text IS NULL OR b.status = $1::text)
  AND ($2::uuid IS NULL OR b.villa_id = $2::uuid)
ORDER BY b.created_at DESC, b.id DESC
LIMIT $3 OFFSET $4
`

type ListBookingViewsParams struct {
	Status  pgtype.Text `json:"status"`
	VillaID pgtype.UUID `json:"villa_id"`
	Lim     int32       `json:"lim"`
	Off     int32       `json:"off"`
}

type ListBookingViewsRow struct {
	ID                   uuid.UUID          `json:"id"`
	VillaID              uuid.UUID          `json:"villa_id"`
	UserID               uuid.UUID          `json:"user_id"`
	GuestName            string             `json:"guest_name"`
	GuestEmail           string             `json:"guest_email"`
	BookingType          string             `json:"booking_type"`
	StartDate            pgtype.Date        `json:"start_date"`
	EndDate              pgtype.Date        `json:"end_date"`
	StartHour            pgtype.Int2        `json:"start_hour"`
	EndHour              pgtype.Int2        `json:"end_hour"`
	StayType             string             `json:"stay_type"`
	Guests               int32              `json:"guests"`
	Rooms                int32              `json:"rooms"`
	Status               string             `json:"status"`
	BasePrice            int64              `json:"base_price"`
	TaxAmount            int64              `json:"tax_amount"`
	TotalPrice           int64              `json:"total_price"`
	PaymentMethod        string             `json:"payment_method"`
	PaymentTransactionID string             `json:"payment_transaction_id"`
	PaymentAmount        int64              `json:"payment_amount"`
	PaymentCurrency      string             `json:"payment_currency"`
	PaymentStatus        string             `json:"payment_status"`
	PaidAt               pgtype.Timestamptz `json:"paid_at"`
	CreatedAt            pgtype.Timestamptz `json:"created_at"`
	UpdatedAt            pgtype.Timestamptz `json:"updated_at"`
	VillaName            string             `json:"villa_name"`
	VillaLocation        string             `json:"villa_location"`
	VillaImage           string             `json:"villa_image"`
}

func (q *Queries) ListBookingViews(ctx context.Context, db DBTX, arg ListBookingViewsParams) ([]ListBookingViewsRow, error) {
	rows, err := db.Query(ctx, listBookingViews,
		arg.Status,
		arg.VillaID,
		arg.Lim,
		arg.Off,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []ListBookingViewsRow{}
	for rows.Next() {
		var i ListBookingViewsRow
		if err := rows.Scan(
			&i.ID,
			&i.VillaID,
			&i.UserID,
			&i.GuestName,
			&i.GuestEmail,
			&i.BookingType,
			&i.StartDate,
			&i.EndDate,
			&i.StartHour,
			&i.EndHour,
			&i.StayType,
			&i.Guests,
			&i.Rooms,
			&i.Status,
			&i.BasePrice,
			&i.TaxAmount,
			&i.TotalPrice,
			&i.PaymentMethod,
			&i.PaymentTransactionID,
			&i.PaymentAmount,
			&i.PaymentCurrency,
			&i.PaymentStatus,
			&i.PaidAt,
			&i.CreatedAt,
			&i.UpdatedAt,
			&i.VillaName,
			&i.VillaLocation,
			&i.VillaImage,
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

const listBookingViewsByUserFirstPage = `-- name: ListBookingViewsByUserFirstPage :many
SELECT b.id, b.villa_id, b.user_id, b.guest_name, b.guest_email, b.booking_type, b.start_date, b.end_date, b.start_hour, b.end_hour, b.stay_type, b.guests, b.rooms, b.status, b.base_price, b.tax_amount, b.total_price, b.payment_method, b.payment_transaction_id, b.payment_amount, b.payment_currency, b.payment_status, b.paid_at, b.created_at, b.updated_at, v.name AS villa_name, v.location AS villa_location, v.main_image AS villa_image
FROM bookings b
JOIN villas v ON v.id = b.villa_id
WHERE b.user_id = $1
ORDER BY b.created_at DESC, b.id DESC
LIMIT $2
`

type ListBookingViewsByUserFirstPageParams struct {
	UserID uuid.UUID `json:"user_id"`
	Limit  int32     `json:"limit"`
}

type ListBookingViewsByUserFirstPageRow struct {
	ID                   uuid.UUID          `json:"id"`
	VillaID              uuid.UUID          `json:"villa_id"`
	UserID               uuid.UUID          `json:"user_id"`
	GuestName            string             `json:"guest_name"`
	GuestEmail           string             `json:"guest_email"`
	BookingType          string             `json:"booking_type"`
	StartDate            pgtype.Date        `json:"start_date"`
	EndDate              pgtype.Date        `json:"end_date"`
	StartHour            pgtype.Int2        `json:"start_hour"`
	EndHour              pgtype.Int2        `json:"end_hour"`
	StayType             string             `json:"stay_type"`
	Guests               int32              `json:"guests"`
	Rooms                int32              `json:"rooms"`
	Status               string             `json:"status"`
	BasePrice            int64              `json:"base_price"`
	TaxAmount            int64              `json:"tax_amount"`
	TotalPrice           int64              `json:"total_price"`
	PaymentMethod        string             `json:"payment_method"`
	PaymentTransactionID string             `json:"payment_transaction_id"`
	PaymentAmount        int64              `json:"payment_amount"`
	PaymentCurrency      string             `json:"payment_currency"`
	PaymentStatus        string             `json:"payment_status"`
	PaidAt               pgtype.Timestamptz `json:"paid_at"`
	CreatedAt            pgtype.Timestamptz `json:"created_at"`
	UpdatedAt            pgtype.Timestamptz `json:"updated_at"`
	VillaName            string             `json:"villa_name"`
	VillaLocation        string             `json:"villa_location"`
	VillaImage           string             `json:"villa_image"`
}

func (q *Queries) ListBookingViewsByUserFirstPage(ctx context.Context, db DBTX, arg ListBookingViewsByUserFirstPageParams) ([]ListBookingViewsByUserFirstPageRow, error) {
	rows, err := db.Query(ctx, listBookingViewsByUserFirstPage, arg.UserID, arg.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []ListBookingViewsByUserFirstPageRow{}
	for rows.Next() {
		var i ListBookingViewsByUserFirstPageRow
		if err := rows.Scan(
			&i.ID,
			&i.VillaID,
			&i.UserID,
			&i.GuestName,
			&i.GuestEmail,
			&i.BookingType,
			&i.StartDate,
			&i.EndDate,
			&i.StartHour,
			&i.EndHour,
			&i.StayType,
			&i.Guests,
			&i.Rooms,
			&i.Status,
			&i.BasePrice,
			&i.TaxAmount,
			&i.TotalPrice,
			&i.PaymentMethod,
			&i.PaymentTransactionID,
			&i.PaymentAmount,
			&i.PaymentCurrency,
			&i.PaymentStatus,
			&i.PaidAt,
			&i.CreatedAt,
			&i.UpdatedAt,
			&i.VillaName,
			&i.VillaLocation,
			&i.VillaImage,
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

const listBookingViewsByUserKeyset = `-- name: ListBookingViewsByUserKeyset :many
SELECT b.id, b.villa_id, b.user_id, b.guest_name, b.guest_email, b.booking_type, b.start_date, b.end_date, b.start_hour, b.end_hour, b.stay_type, b.guests, b.rooms, b.status, b.base_price, b.tax_amount, b.total_price, b.payment_method, b.payment_transaction_id, b.payment_amount, b.payment_currency, b.payment_status, b.paid_at, b.created_at, b.updated_at, v.name AS villa_name, v.location AS villa_location, v.main_image AS villa_image
FROM bookings b
JOIN villas v ON v.id = b.villa_id
WHERE b.user_id = $1
  AND (b.created_at, b.id) < ($2::timestamptz, $3::uuid)
ORDER BY b.created_at DESC, b.id DESC
LIMIT $4
`

type ListBookingViewsByUserKeysetParams struct {
	UserID    uuid.UUID          `json:"user_id"`
	CreatedAt pgtype.Timestamptz `json:"created_at"`
	ID        uuid.UUID          `json:"id"`
	Lim       int32              `json:"lim"`
}

type ListBookingViewsByUserKeysetRow struct {
	ID                   uuid.UUID          `json:"id"`
	VillaID              uuid.UUID          `json:"villa_id"`
	UserID               uuid.UUID          `json:"user_id"`
	GuestName            string             `json:"guest_name"`
	GuestEmail           string             `json:"guest_email"`
	BookingType          string             `json:"booking_type"`
	StartDate            pgtype.Date        `json:"start_date"`
	EndDate              pgtype.Date        `json:"end_date"`
	StartHour            pgtype.Int2        `json:"start_hour"`
	EndHour              pgtype.Int2        `json:"end_hour"`
	StayType             string             `json:"stay_type"`
	Guests               int32              `json:"guests"`
	Rooms                int32              `json:"rooms"`
	Status               string             `json:"status"`
	BasePrice            int64              `json:"base_price"`
	TaxAmount            int64              `json:"tax_amount"`
	TotalPrice           int64              `json:"total_price"`
	PaymentMethod        string             `json:"payment_method"`
	PaymentTransactionID string             `json:"payment_transaction_id"`
	PaymentAmount        int64              `json:"payment_amount"`
	PaymentCurrency      string             `json:"payment_currency"`
	PaymentStatus        string             `json:"payment_status"`
	PaidAt               pgtype.Timestamptz `json:"paid_at"`
	CreatedAt            pgtype.Timestamptz `json:"created_at"`
	UpdatedAt            pgtype.Timestamptz `json:"updated_at"`
	VillaName            string             `json:"villa_name"`
	VillaLocation        string             `json:"villa_location"`
	VillaImage           string             `json:"villa_image"`
}

func (q *Queries) ListBookingViewsByUserKeyset(ctx context.Context, db DBTX, arg ListBookingViewsByUserKeysetParams) ([]ListBookingViewsByUserKeysetRow, error) {
	rows, err := db.Query(ctx, listBookingViewsByUserKeyset,
		arg.UserID,
		arg.CreatedAt,
		arg.ID,
		arg.Lim,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []ListBookingViewsByUserKeysetRow{}
	for rows.Next() {
		var i ListBookingViewsByUserKeysetRow
		if err := rows.Scan(
			&i.ID,
			&i.VillaID,
			&i.UserID,
			&i.GuestName,
			&i.GuestEmail,
			&i.BookingType,
			&i.StartDate,
			&i.EndDate,
			&i.StartHour,
			&i.EndHour,
			&i.StayType,
			&i.Guests,
			&i.Rooms,
			&i.Status,
			&i.BasePrice,
			&i.TaxAmount,
			&i.TotalPrice,
			&i.PaymentMethod,
			&i.PaymentTransactionID,
			&i.PaymentAmount,
			&i.PaymentCurrency,
			&i.PaymentStatus,
			&i.PaidAt,
			&i.CreatedAt,
			&i.UpdatedAt,
			&i.VillaName,
			&i.VillaLocation,
			&i.VillaImage,
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

const listConfirmedBookingSpansByVilla = `-- name: ListConfirmedBookingSpansByVilla :many
SELECT booking_type, start_date, end_date, start_hour, end_hour
FROM bookings
WHERE villa_id = $1 AND status = 'confirmed'
`

type ListConfirmedBookingSpansByVillaRow struct {
	BookingType string      `json:"booking_type"`
	StartDate   pgtype.Date `json:"start_date"`
	EndDate     pgtype.Date `json:"end_date"`
	StartHour   pgtype.Int2 `json:"start_hour"`
	EndHour     pgtype.Int2 `json:"end_hour"`
}

func (q *Queries) ListConfirmedBookingSpansByVilla(ctx context.Context, db DBTX, villaID uuid.UUID) ([]ListConfirmedBookingSpansByVillaRow, error) {
	rows, err := db.Query(ctx, listConfirmedBookingSpansByVilla, villaID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []ListConfirmedBookingSpansByVillaRow{}
	for rows.Next() {
		var i ListConfirmedBookingSpansByVillaRow
		if err := rows.Scan(
			&i.BookingType,
			&i.StartDate,
			&i.EndDate,
			&i.StartHour,
			&i.EndHour,
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

const lockVillaForBooking = `-- name: LockVillaForBooking :exec
SELECT pg_advisory_xact_lock(hashtextextended($1::text, 0))
`

func (q *Queries) LockVillaForBooking(ctx context.Context, db DBTX, villaKey string) error {
	_, err := db.Exec(ctx, lockVillaForBooking, villaKey)
	return err
}

const updateBookingStatus = `-- name: UpdateBookingStatus :execrows
UPDATE bookings
SET status = $1, updated_at = $2
WHERE id = $3 AND status = $4
`

type UpdateBookingStatusParams struct {
	ToStatus   string             `json:"to_status"`
	UpdatedAt  pgtype.Timestamptz `json:"updated_at"`
	ID         uuid.UUID          `json:"id"`
	FromStatus string             `json:"from_status"`
}

func (q *Queries) UpdateBookingStatus(ctx context.Context, db DBTX, arg UpdateBookingStatusParams) (int64, error) {
	result, err := db.Exec(ctx, updateBookingStatus,
		arg.ToStatus,
		arg.UpdatedAt,
		arg.ID,
		arg.FromStatus,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
