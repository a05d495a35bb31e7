package response

import (
	"villanest/internal/usecase/queries"
)

type DailyRevenueResponse struct {
	Day      string `json:"day"`
	Bookings int64  `json:"bookings"`
	Revenue  int64  `json:"revenue"`
}

type TopVillaResponse struct {
	VillaID  string `json:"villa_id"`
	Name     string `json:"name"`
	Bookings int64  `json:"bookings"`
	Revenue  int64  `json:"revenue"`
}

type AnalyticsResponse struct {
	TotalBookings  int64                  `json:"total_bookings"`
	TotalRevenue   int64                  `json:"total_revenue"`
	RevenueByDay   []DailyRevenueResponse `json:"revenue_by_day"`
	TopVillas      []TopVillaResponse     `json:"top_villas"`
	PlatformRating *float64               `json:"platform_rating"`
}

func FromAnalyticsView(v *queries.AnalyticsView) (*AnalyticsResponse, error) {
	res := &AnalyticsResponse{}
	if err := copyInto(res, v); err != nil {
		return nil, err
	}
	if res.RevenueByDay == nil {
		res.RevenueByDay = []DailyRevenueResponse{}
	}
	if res.TopVillas == nil {
		res.TopVillas = []TopVillaResponse{}
	}
	return res, nil
}
