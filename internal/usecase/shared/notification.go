package shared

const (
	NotificationKindEmail = "email"
	TopicBookingConfirmed = "booking_confirmed"
)

// BookingConfirmation is the outbox payload of a booking_confirmed job.
type BookingConfirmation struct {
	BookingID     string `json:"booking_id"`
	GuestName     string `json:"guest_name"`
	GuestEmail    string `json:"guest_email"`
	VillaName     string `json:"villa_name"`
	VillaLocation string `json:"villa_location"`
	BookingType   string `json:"booking_type"`
	StartDate     string `json:"start_date"`
	EndDate       string `json:"end_date"`
	StartTime     string `json:"start_time,omitempty"`
	EndTime       string `json:"end_time,omitempty"`
	StayType      string `json:"stay_type"`
	Guests        int    `json:"guests"`
	Rooms         int    `json:"rooms"`
	BasePrice     int64  `json:"base_price"`
	TaxAmount     int64  `json:"tax_amount"`
	TotalPrice    int64  `json:"total_price"`
	Currency      string `json:"currency"`
	PaymentMethod string `json:"payment_method"`
	PaymentStatus string `json:"payment_status"`
	TransactionID string `json:"transaction_id"`
	Status        string `json:"status"`
}
