package queries

import (
	"time"

	"villanest/internal/domain/booking"

	"github.com/google/uuid"
)

type UserView struct {
	ID          uuid.UUID  `json:"id"`
	Email       string     `json:"email"`
	DisplayName string     `json:"display_name"`
	Role        string     `json:"role"`
	IsActive    bool       `json:"is_active"`
	LastLogin   *time.Time `json:"last_login,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

type MediaView struct {
	Type string `json:"type"`
	URL  string `json:"url"`
}

type CoordinatesView struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type VillaView struct {
	ID            uuid.UUID        `json:"id"`
	Name          string           `json:"name"`
	Type          string           `json:"type"`
	Description   string           `json:"description"`
	Location      string           `json:"location"`
	PricePerNight int64            `json:"price_per_night"`
	PriceHourly   *int64           `json:"price_hourly,omitempty"`
	Amenities     []string         `json:"amenities"`
	MainImage     string           `json:"main_image"`
	Media         []MediaView      `json:"media"`
	Coordinates   *CoordinatesView `json:"coordinates,omitempty"`
	AvgRating     *float64         `json:"avg_rating,omitempty"`
	ReviewsCount  int32            `json:"reviews_count"`
	IsActive      bool             `json:"is_active"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

type PaymentView struct {
	Method        string     `json:"method"`
	TransactionID string     `json:"transaction_id"`
	Amount        int64      `json:"amount"`
	Currency      string     `json:"currency"`
	Status        string     `json:"status"`
	PaidAt        *time.Time `json:"paid_at,omitempty"`
}

// BookingView carries the stored status; queries replace it with the
// effective one before returning.
type BookingView struct {
	ID            uuid.UUID      `json:"id"`
	VillaID       uuid.UUID      `json:"villa_id"`
	VillaName     string         `json:"villa_name"`
	VillaLocation string         `json:"villa_location"`
	VillaImage    string         `json:"villa_image"`
	UserID        uuid.UUID      `json:"user_id"`
	GuestName     string         `json:"guest_name"`
	GuestEmail    string         `json:"guest_email"`
	BookingType   string         `json:"booking_type"`
	StartDate     booking.Date   `json:"start_date"`
	EndDate       booking.Date   `json:"end_date"`
	StartHour     *int           `json:"start_hour,omitempty"`
	EndHour       *int           `json:"end_hour,omitempty"`
	StayType      string         `json:"stay_type"`
	Guests        int32          `json:"guests"`
	Rooms         int32          `json:"rooms"`
	Status        booking.Status `json:"status"`
	BasePrice     int64          `json:"base_price"`
	TaxAmount     int64          `json:"tax_amount"`
	TotalPrice    int64          `json:"total_price"`
	Payment       PaymentView    `json:"payment"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

type ReviewView struct {
	ID        uuid.UUID `json:"id"`
	VillaID   uuid.UUID `json:"villa_id"`
	VillaName string    `json:"villa_name"`
	UserID    uuid.UUID `json:"user_id"`
	UserName  string    `json:"user_name"`
	Rating    int16     `json:"rating"`
	Comment   string    `json:"comment"`
	IsVisible bool      `json:"is_visible"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ReviewListItem struct {
	ID        uuid.UUID `json:"id"`
	UserName  string    `json:"user_name"`
	Rating    int16     `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

type AvailabilityView struct {
	VillaID      uuid.UUID      `json:"villa_id"`
	BlockedDates []booking.Date `json:"blocked_dates"`
	Date         *booking.Date  `json:"date,omitempty"`
	BookedHours  []int          `json:"booked_hours"`
}

type QuoteView struct {
	BookingType string `json:"booking_type"`
	StayType    string `json:"stay_type"`
	Units       int    `json:"units"`
	Rate        int64  `json:"rate"`
	Multiplier  int    `json:"multiplier"`
	BasePrice   int64  `json:"base_price"`
	TaxAmount   int64  `json:"tax_amount"`
	TotalPrice  int64  `json:"total_price"`
}

type DailyRevenue struct {
	Day      booking.Date `json:"day"`
	Bookings int64        `json:"bookings"`
	Revenue  int64        `json:"revenue"`
}

type TopVilla struct {
	VillaID  uuid.UUID `json:"villa_id"`
	Name     string    `json:"name"`
	Bookings int64     `json:"bookings"`
	Revenue  int64     `json:"revenue"`
}

type AnalyticsView struct {
	TotalBookings  int64          `json:"total_bookings"`
	TotalRevenue   int64          `json:"total_revenue"`
	RevenueByDay   []DailyRevenue `json:"revenue_by_day"`
	TopVillas      []TopVilla     `json:"top_villas"`
	PlatformRating *float64       `json:"platform_rating,omitempty"`
}

type FavoriteVillaView struct {
	VillaView
	FavoritedAt time.Time `json:"favorited_at"`
}
