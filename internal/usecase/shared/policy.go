package shared

import (
	"villanest/internal/domain/booking"
	"villanest/internal/pkg/config"
)

// BookingPolicy holds the configurable parts of admission and pricing.
type BookingPolicy struct {
	Checker           booking.Checker
	DefaultHourlyRate int64
}

func NewBookingPolicy(cfg config.Config) BookingPolicy {
	rate := cfg.Booking.DefaultHourlyRate
	if rate <= 0 {
		rate = booking.DefaultHourlyRate
	}
	return BookingPolicy{
		Checker:           booking.NewChecker(booking.PolicyFor(cfg.Booking.SameDayTurnover)).WithMaxNights(cfg.Booking.MaxNights),
		DefaultHourlyRate: rate,
	}
}
