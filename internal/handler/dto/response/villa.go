package response

import (
	"villanest/internal/domain/booking"
	"villanest/internal/usecase/queries"
)

type MediaResponse struct {
	Type string `json:"type"`
	URL  string `json:"url"`
}

type CoordinatesResponse struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type VillaResponse struct {
	ID            string               `json:"id"`
	Name          string               `json:"name"`
	Type          string               `json:"type"`
	Description   string               `json:"description"`
	Location      string               `json:"location"`
	PricePerNight int64                `json:"price_per_night"`
	PriceHourly   *int64               `json:"price_hourly,omitempty"`
	Amenities     []string             `json:"amenities"`
	MainImage     string               `json:"main_image"`
	Media         []MediaResponse      `json:"media"`
	Coordinates   *CoordinatesResponse `json:"coordinates,omitempty"`
	AvgRating     *float64             `json:"avg_rating"`
	ReviewsCount  int32                `json:"reviews_count"`
	IsActive      bool                 `json:"is_active"`
	CreatedAt     int64                `json:"created_at"`
	UpdatedAt     int64                `json:"updated_at"`
}

func FromVillaView(v *queries.VillaView) (*VillaResponse, error) {
	res := &VillaResponse{}
	if err := copyInto(res, v); err != nil {
		return nil, err
	}
	if res.Amenities == nil {
		res.Amenities = []string{}
	}
	if res.Media == nil {
		res.Media = []MediaResponse{}
	}
	return res, nil
}

func FromVillaList(views []*queries.VillaView) ([]*VillaResponse, error) {
	res := make([]*VillaResponse, len(views))
	for i, v := range views {
		item, err := FromVillaView(v)
		if err != nil {
			return nil, err
		}
		res[i] = item
	}
	return res, nil
}

type FavoriteVillaResponse struct {
	VillaResponse
	FavoritedAt int64 `json:"favorited_at"`
}

func FromFavoriteList(views []*queries.FavoriteVillaView) ([]*FavoriteVillaResponse, error) {
	res := make([]*FavoriteVillaResponse, len(views))
	for i, v := range views {
		villa, err := FromVillaView(&v.VillaView)
		if err != nil {
			return nil, err
		}
		res[i] = &FavoriteVillaResponse{VillaResponse: *villa, FavoritedAt: v.FavoritedAt.Unix()}
	}
	return res, nil
}

type FavoriteToggleResponse struct {
	VillaID   string `json:"villa_id"`
	Favorited bool   `json:"favorited"`
}

type AvailabilityResponse struct {
	VillaID      string   `json:"villa_id"`
	BlockedDates []string `json:"blocked_dates"`
	Date         string   `json:"date,omitempty"`
	BookedHours  []string `json:"booked_hours"`
}

func FromAvailabilityView(v *queries.AvailabilityView) *AvailabilityResponse {
	res := &AvailabilityResponse{
		VillaID:      v.VillaID.String(),
		BlockedDates: make([]string, len(v.BlockedDates)),
		BookedHours:  make([]string, len(v.BookedHours)),
	}
	for i, d := range v.BlockedDates {
		res.BlockedDates[i] = d.String()
	}
	for i, h := range v.BookedHours {
		res.BookedHours[i] = booking.FormatHour(h)
	}
	if v.Date != nil {
		res.Date = v.Date.String()
	}
	return res
}

type QuoteResponse struct {
	BookingType string `json:"booking_type"`
	StayType    string `json:"stay_type"`
	Units       int    `json:"units"`
	Rate        int64  `json:"rate"`
	Multiplier  int    `json:"multiplier"`
	BasePrice   int64  `json:"base_price"`
	TaxAmount   int64  `json:"tax_amount"`
	TotalPrice  int64  `json:"total_price"`
	Currency    string `json:"currency"`
}

func FromQuoteView(v *queries.QuoteView) *QuoteResponse {
	return &QuoteResponse{
		BookingType: v.BookingType,
		StayType:    v.StayType,
		Units:       v.Units,
		Rate:        v.Rate,
		Multiplier:  v.Multiplier,
		BasePrice:   v.BasePrice,
		TaxAmount:   v.TaxAmount,
		TotalPrice:  v.TotalPrice,
		Currency:    booking.CurrencyINR,
	}
}
