package response

import (
	"villanest/internal/domain/booking"
	"villanest/internal/usecase/queries"
)

type PaymentResponse struct {
	Method        string `json:"method"`
	TransactionID string `json:"transaction_id"`
	Amount        int64  `json:"amount"`
	Currency      string `json:"currency"`
	Status        string `json:"status"`
	PaidAt        *int64 `json:"paid_at,omitempty"`
}

type BookingResponse struct {
	ID            string          `json:"id"`
	VillaID       string          `json:"villa_id"`
	VillaName     string          `json:"villa_name"`
	VillaLocation string          `json:"villa_location"`
	VillaImage    string          `json:"villa_image,omitempty"`
	UserID        string          `json:"user_id"`
	GuestName     string          `json:"guest_name"`
	GuestEmail    string          `json:"guest_email"`
	BookingType   string          `json:"booking_type"`
	StartDate     string          `json:"start_date"`
	EndDate       string          `json:"end_date"`
	StartTime     string          `json:"start_time,omitempty"`
	EndTime       string          `json:"end_time,omitempty"`
	StayType      string          `json:"stay_type"`
	Guests        int32           `json:"guests"`
	Rooms         int32           `json:"rooms"`
	Status        string          `json:"status"`
	BasePrice     int64           `json:"base_price"`
	TaxAmount     int64           `json:"tax_amount"`
	TotalPrice    int64           `json:"total_price"`
	Payment       PaymentResponse `json:"payment"`
	CreatedAt     int64           `json:"created_at"`
	UpdatedAt     int64           `json:"updated_at"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	res := &BookingResponse{
		ID:            v.ID.String(),
		VillaID:       v.VillaID.String(),
		VillaName:     v.VillaName,
		VillaLocation: v.VillaLocation,
		VillaImage:    v.VillaImage,
		UserID:        v.UserID.String(),
		GuestName:     v.GuestName,
		GuestEmail:    v.GuestEmail,
		BookingType:   v.BookingType,
		StartDate:     v.StartDate.String(),
		EndDate:       v.EndDate.String(),
		StayType:      v.StayType,
		Guests:        v.Guests,
		Rooms:         v.Rooms,
		Status:        v.Status.String(),
		BasePrice:     v.BasePrice,
		TaxAmount:     v.TaxAmount,
		TotalPrice:    v.TotalPrice,
		Payment: PaymentResponse{
			Method:        v.Payment.Method,
			TransactionID: v.Payment.TransactionID,
			Amount:        v.Payment.Amount,
			Currency:      v.Payment.Currency,
			Status:        v.Payment.Status,
		},
		CreatedAt: v.CreatedAt.Unix(),
		UpdatedAt: v.UpdatedAt.Unix(),
	}
	if v.StartHour != nil {
		res.StartTime = booking.FormatHour(*v.StartHour)
	}
	if v.EndHour != nil {
		res.EndTime = booking.FormatHour(*v.EndHour)
	}
	if v.Payment.PaidAt != nil {
		paidAt := v.Payment.PaidAt.Unix()
		res.Payment.PaidAt = &paidAt
	}
	return res
}

func FromBookingList(views []*queries.BookingView) []*BookingResponse {
	res := make([]*BookingResponse, len(views))
	for i, v := range views {
		res[i] = FromBookingView(v)
	}
	return res
}

type BookingListResponse struct {
	Bookings   []*BookingResponse `json:"bookings"`
	NextCursor string             `json:"next_cursor,omitempty"`
}

type CreateBookingResponse struct {
	BookingID string        `json:"booking_id"`
	Status    string        `json:"status"`
	Quote     QuoteResponse `json:"quote"`
}

func FromBookingQuote(q booking.Quote, kind booking.Type, stay booking.StayType) QuoteResponse {
	return QuoteResponse{
		BookingType: kind.String(),
		StayType:    stay.String(),
		Units:       q.Units,
		Rate:        q.Rate,
		Multiplier:  q.Multiplier,
		BasePrice:   q.Base,
		TaxAmount:   q.Tax,
		TotalPrice:  q.Total,
		Currency:    booking.CurrencyINR,
	}
}
