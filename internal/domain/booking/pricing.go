package booking

// TaxPercent is the GST surcharge applied on top of the base price.
const TaxPercent = 18

// DefaultHourlyRate applies to villas without an hourly price.
const DefaultHourlyRate int64 = 1500

// Quote is the full price breakdown in whole rupees. Total always includes tax.
type Quote struct {
	Rate       int64
	Units      int
	Multiplier int
	Base       int64
	Tax        int64
	Total      int64
}

// NewQuote prices units (nights or hours) of a stay.
// Total is round(base * 1.18), half-up, in integer arithmetic.
func NewQuote(rate int64, units int, stay StayType, guests, rooms int) (Quote, error) {
	if rate <= 0 {
		return Quote{}, ErrInvalidRate
	}
	if units <= 0 {
		return Quote{}, ErrIncompleteBooking
	}
	mult, err := multiplier(stay, guests, rooms)
	if err != nil {
		return Quote{}, err
	}

	base := rate * int64(units) * int64(mult)
	total := (base*(100+TaxPercent) + 50) / 100
	return Quote{
		Rate:       rate,
		Units:      units,
		Multiplier: mult,
		Base:       base,
		Tax:        total - base,
		Total:      total,
	}, nil
}

func multiplier(stay StayType, guests, rooms int) (int, error) {
	if guests < 1 || rooms < 1 {
		return 0, ErrInvalidGuestCount
	}
	switch stay {
	case StayWholeProperty:
		return 1, nil
	case StayPerGuest:
		return guests, nil
	case StayPerRoom:
		return rooms, nil
	default:
		return 0, ErrInvalidStayType
	}
}

// RateFor picks the villa's rate for the booking type.
func RateFor(kind Type, pricePerNight int64, priceHourly *int64, defaultHourly int64) int64 {
	if kind == TypeHourly {
		if priceHourly != nil && *priceHourly > 0 {
			return *priceHourly
		}
		if defaultHourly > 0 {
			return defaultHourly
		}
		return DefaultHourlyRate
	}
	return pricePerNight
}

// QuoteSpan prices a validated span.
func QuoteSpan(span Span, rate int64, stay StayType, guests, rooms int) (Quote, error) {
	return NewQuote(rate, span.Units(), stay, guests, rooms)
}
