package booking

type Type string

const (
	TypeNightly Type = "nightly"
	TypeHourly  Type = "hourly"
)

func (t Type) String() string { return string(t) }

func ParseType(s string) (Type, error) {
	switch Type(s) {
	case TypeNightly, TypeHourly:
		return Type(s), nil
	default:
		return "", ErrInvalidBookingType
	}
}

type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string { return string(s) }

func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusConfirmed, StatusCompleted, StatusCancelled:
		return Status(s), nil
	default:
		return "", ErrInvalidTransition
	}
}

// StayType decides the price multiplier.
type StayType string

const (
	StayWholeProperty StayType = "whole_property"
	StayPerGuest      StayType = "per_guest"
	StayPerRoom       StayType = "per_room"
)

func (s StayType) String() string { return string(s) }

func ParseStayType(s string) (StayType, error) {
	switch StayType(s) {
	case "":
		return StayWholeProperty, nil
	case StayWholeProperty, StayPerGuest, StayPerRoom:
		return StayType(s), nil
	default:
		return "", ErrInvalidStayType
	}
}

type PaymentMethod string

const (
	PaymentMockTest PaymentMethod = "mock_test"
	PaymentUPI      PaymentMethod = "upi"
	PaymentCard     PaymentMethod = "card"
	PaymentCOD      PaymentMethod = "cod"
)

func (m PaymentMethod) String() string { return string(m) }

func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch PaymentMethod(s) {
	case "":
		return PaymentMockTest, nil
	case PaymentMockTest, PaymentUPI, PaymentCard, PaymentCOD:
		return PaymentMethod(s), nil
	default:
		return "", ErrInvalidPaymentMethod
	}
}

type PaymentStatus string

const (
	PaymentSucceeded PaymentStatus = "success"
	PaymentPending   PaymentStatus = "pending"
)

func (s PaymentStatus) String() string { return string(s) }
