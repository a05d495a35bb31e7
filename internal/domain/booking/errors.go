package booking

import "villanest/internal/pkg/errs"

var (
	ErrIncompleteBooking    = errs.New("booking range is incomplete")
	ErrStayTooLong          = errs.New("stay exceeds the maximum number of nights")
	ErrPastDate             = errs.New("booking cannot start in the past")
	ErrInvalidDate          = errs.New("invalid date, expected YYYY-MM-DD")
	ErrInvalidHour          = errs.New("invalid hour, expected HH:00 between 00:00 and 24:00")
	ErrInvalidBookingType   = errs.New("invalid booking type")
	ErrInvalidStayType      = errs.New("invalid stay type")
	ErrInvalidPaymentMethod = errs.New("invalid payment method")
	ErrInvalidGuestCount    = errs.New("guests and rooms must be at least 1")
	ErrInvalidGuest         = errs.New("guest name and email are required")
	ErrInvalidRate          = errs.New("rate must be positive")
	ErrUnavailable          = errs.New("requested dates or hours are not available")
	ErrInvalidTransition    = errs.New("booking status transition not allowed")
)
