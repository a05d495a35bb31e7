package request

import (
	"villanest/internal/domain/booking"
	"villanest/internal/usecase/commands"
	"villanest/internal/usecase/queries"

	"github.com/google/uuid"
)

// SpanRequest is the calendar part shared by quotes and bookings.
// Nightly stays use start_date/end_date; hourly visits use start_date with
// start_time/end_time.
type SpanRequest struct {
	BookingType string `json:"booking_type" binding:"omitempty,oneof=nightly hourly"`
	StartDate   string `json:"start_date" binding:"required,isodate"`
	EndDate     string `json:"end_date" binding:"omitempty,isodate"`
	StartTime   string `json:"start_time" binding:"omitempty,hourtime"`
	EndTime     string `json:"end_time" binding:"omitempty,hourtime"`
}

func (r SpanRequest) kind() (booking.Type, error) {
	if r.BookingType == "" {
		if r.StartTime != "" || r.EndTime != "" {
			return booking.TypeHourly, nil
		}
		return booking.TypeNightly, nil
	}
	return booking.ParseType(r.BookingType)
}

func (r SpanRequest) ToSpan() (booking.Span, error) {
	kind, err := r.kind()
	if err != nil {
		return booking.Span{}, err
	}
	start, err := booking.ParseDate(r.StartDate)
	if err != nil {
		return booking.Span{}, err
	}

	if kind == booking.TypeHourly {
		if r.StartTime == "" || r.EndTime == "" {
			return booking.Span{}, booking.ErrIncompleteBooking
		}
		from, err := booking.ParseHour(r.StartTime)
		if err != nil {
			return booking.Span{}, err
		}
		to, err := booking.ParseHour(r.EndTime)
		if err != nil {
			return booking.Span{}, err
		}
		return booking.NewHourlySpan(start, from, to)
	}

	if r.EndDate == "" {
		return booking.Span{}, booking.ErrIncompleteBooking
	}
	end, err := booking.ParseDate(r.EndDate)
	if err != nil {
		return booking.Span{}, err
	}
	return booking.NewNightlySpan(start, end)
}

type OccupancyRequest struct {
	StayType string `json:"stay_type" binding:"omitempty,oneof=whole_property per_guest per_room"`
	Guests   int    `json:"guests" binding:"omitempty,min=1,max=100"`
	Rooms    int    `json:"rooms" binding:"omitempty,min=1,max=50"`
}

func (r OccupancyRequest) normalize() (booking.StayType, int, int, error) {
	stay, err := booking.ParseStayType(r.StayType)
	if err != nil {
		return "", 0, 0, err
	}
	guests, rooms := r.Guests, r.Rooms
	if guests == 0 {
		guests = 1
	}
	if rooms == 0 {
		rooms = 1
	}
	return stay, guests, rooms, nil
}

type QuoteRequest struct {
	SpanRequest
	OccupancyRequest
}

func (r *QuoteRequest) ToInput() (queries.QuoteInput, error) {
	span, err := r.ToSpan()
	if err != nil {
		return queries.QuoteInput{}, err
	}
	stay, guests, rooms, err := r.normalize()
	if err != nil {
		return queries.QuoteInput{}, err
	}
	return queries.QuoteInput{Span: span, Stay: stay, Guests: guests, Rooms: rooms}, nil
}

type CreateBookingRequest struct {
	VillaID uuid.UUID `json:"villa_id" binding:"required"`
	SpanRequest
	OccupancyRequest
	GuestName     string `json:"guest_name" binding:"omitempty,max=100"`
	GuestEmail    string `json:"guest_email" binding:"omitempty,email"`
	PaymentMethod string `json:"payment_method" binding:"omitempty,oneof=mock_test upi card cod"`
}

func (r *CreateBookingRequest) ToInput() (commands.CreateBookingInput, error) {
	span, err := r.ToSpan()
	if err != nil {
		return commands.CreateBookingInput{}, err
	}
	stay, guests, rooms, err := r.normalize()
	if err != nil {
		return commands.CreateBookingInput{}, err
	}
	method, err := booking.ParsePaymentMethod(r.PaymentMethod)
	if err != nil {
		return commands.CreateBookingInput{}, err
	}
	return commands.CreateBookingInput{
		VillaID:    r.VillaID,
		Span:       span,
		Stay:       stay,
		Guests:     guests,
		Rooms:      rooms,
		GuestName:  r.GuestName,
		GuestEmail: r.GuestEmail,
		Method:     method,
	}, nil
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=confirmed completed cancelled"`
}

func (r *UpdateBookingStatusRequest) ToDomain() (booking.Status, error) {
	return booking.ParseStatus(r.Status)
}

// BookingListQuery binds the admin booking filter.
type BookingListQuery struct {
	Status  string `form:"status" binding:"omitempty,oneof=confirmed completed cancelled"`
	VillaID string `form:"villa_id" binding:"omitempty,uuid"`
	Limit   int    `form:"limit" binding:"omitempty,min=1,max=100"`
	Offset  int    `form:"offset" binding:"omitempty,min=0"`
}

func (q *BookingListQuery) ToFilter() (queries.BookingFilter, queries.Page, error) {
	var filter queries.BookingFilter
	if q.Status != "" {
		status, err := booking.ParseStatus(q.Status)
		if err != nil {
			return filter, queries.Page{}, err
		}
		filter.Status = &status
	}
	if q.VillaID != "" {
		id, err := uuid.Parse(q.VillaID)
		if err != nil {
			return filter, queries.Page{}, err
		}
		filter.VillaID = &id
	}
	return filter, queries.Page{Limit: q.Limit, Offset: q.Offset}, nil
}
