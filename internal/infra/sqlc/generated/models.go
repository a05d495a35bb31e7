package sqlc

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type Bookings struct {
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
}

type Favorites struct {
	UserID    uuid.UUID          `json:"user_id"`
	VillaID   uuid.UUID          `json:"villa_id"`
	CreatedAt pgtype.Timestamptz `json:"created_at"`
}

type NotificationJobs struct {
	ID        uuid.UUID          `json:"id"`
	Kind      string             `json:"kind"`
	Topic     string             `json:"topic"`
	Payload   []byte             `json:"payload"`
	RunAt     pgtype.Timestamptz `json:"run_at"`
	Attempts  int32              `json:"attempts"`
	Status    string             `json:"status"`
	LastError pgtype.Text        `json:"last_error"`
	CreatedAt pgtype.Timestamptz `json:"created_at"`
	UpdatedAt pgtype.Timestamptz `json:"updated_at"`
}

type Reviews struct {
	ID        uuid.UUID          `json:"id"`
	VillaID   uuid.UUID          `json:"villa_id"`
	UserID    uuid.UUID          `json:"user_id"`
	UserName  string             `json:"user_name"`
	Rating    int16              `json:"rating"`
	Comment   string             `json:"comment"`
	IsVisible bool               `json:"is_visible"`
	CreatedAt pgtype.Timestamptz `json:"created_at"`
	UpdatedAt pgtype.Timestamptz `json:"updated_at"`
}

type Users struct {
	ID           uuid.UUID          `json:"id"`
	Email        string             `json:"email"`
	DisplayName  string             `json:"display_name"`
	PasswordHash string             `json:"password_hash"`
	Role         string             `json:"role"`
	IsActive     bool               `json:"is_active"`
	LastLogin    pgtype.Timestamptz `json:"last_login"`
	CreatedAt    pgtype.Timestamptz `json:"created_at"`
	UpdatedAt    pgtype.Timestamptz `json:"updated_at"`
}

type Villas struct {
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
}
