package request

import (
	"strings"

	"villanest/internal/domain/villa"
	"villanest/internal/pkg/patch"
	"villanest/internal/usecase/queries"
)

type MediaRequest struct {
	Type string `json:"type" binding:"required,oneof=image video"`
	URL  string `json:"url" binding:"required,url"`
}

type CoordinatesRequest struct {
	Lat float64 `json:"lat" binding:"min=-90,max=90"`
	Lng float64 `json:"lng" binding:"min=-180,max=180"`
}

type VillaRequest struct {
	Name          string              `json:"name" binding:"required,max=200"`
	Type          string              `json:"type" binding:"omitempty,max=50"`
	Description   string              `json:"description" binding:"omitempty,max=5000"`
	Location      string              `json:"location" binding:"required,max=200"`
	PricePerNight int64               `json:"price_per_night" binding:"required,gt=0"`
	PriceHourly   *int64              `json:"price_hourly" binding:"omitempty,gt=0"`
	Amenities     []string            `json:"amenities" binding:"omitempty,max=100,dive,max=100"`
	MainImage     string              `json:"main_image" binding:"omitempty,url"`
	Media         []MediaRequest      `json:"media" binding:"omitempty,max=50,dive"`
	Coordinates   *CoordinatesRequest `json:"coordinates"`
}

func (r *VillaRequest) ToParams() (villa.Params, error) {
	media := make([]villa.Media, 0, len(r.Media))
	for _, m := range r.Media {
		item, err := villa.NewMedia(m.Type, m.URL)
		if err != nil {
			return villa.Params{}, err
		}
		media = append(media, item)
	}

	var coords *villa.Coordinates
	if r.Coordinates != nil {
		c, err := villa.NewCoordinates(r.Coordinates.Lat, r.Coordinates.Lng)
		if err != nil {
			return villa.Params{}, err
		}
		coords = &c
	}

	return villa.Params{
		Name:          r.Name,
		Type:          r.Type,
		Description:   r.Description,
		Location:      r.Location,
		PricePerNight: r.PricePerNight,
		PriceHourly:   r.PriceHourly,
		Amenities:     villa.NormalizeAmenities(r.Amenities),
		MainImage:     r.MainImage,
		Media:         media,
		Coordinates:   coords,
	}, nil
}

// UpdateVillaRequest is a partial update: absent fields keep their stored
// value, an empty amenities or media list clears it.
type UpdateVillaRequest struct {
	Name          *string             `json:"name" binding:"omitempty,min=1,max=200"`
	Type          *string             `json:"type" binding:"omitempty,max=50"`
	Description   *string             `json:"description" binding:"omitempty,max=5000"`
	Location      *string             `json:"location" binding:"omitempty,min=1,max=200"`
	PricePerNight *int64              `json:"price_per_night" binding:"omitempty,gt=0"`
	PriceHourly   *int64              `json:"price_hourly" binding:"omitempty,gt=0"`
	Amenities     []string            `json:"amenities" binding:"omitempty,max=100,dive,max=100"`
	MainImage     *string             `json:"main_image" binding:"omitempty,url"`
	Media         []MediaRequest      `json:"media" binding:"omitempty,max=50,dive"`
	Coordinates   *CoordinatesRequest `json:"coordinates"`
}

func (r *UpdateVillaRequest) ToParams(existing *queries.VillaView) (villa.Params, error) {
	full := VillaRequest{
		Name:          patch.Coalesce(r.Name, existing.Name),
		Type:          patch.Coalesce(r.Type, existing.Type),
		Description:   patch.Coalesce(r.Description, existing.Description),
		Location:      patch.Coalesce(r.Location, existing.Location),
		PricePerNight: patch.Coalesce(r.PricePerNight, existing.PricePerNight),
		PriceHourly:   existing.PriceHourly,
		Amenities:     patch.CoalesceSlice(r.Amenities, existing.Amenities),
		MainImage:     patch.Coalesce(r.MainImage, existing.MainImage),
		Media:         patch.CoalesceSlice(r.Media, mediaRequests(existing.Media)),
		Coordinates:   r.Coordinates,
	}
	if r.PriceHourly != nil {
		full.PriceHourly = r.PriceHourly
	}
	if full.Coordinates == nil && existing.Coordinates != nil {
		full.Coordinates = &CoordinatesRequest{Lat: existing.Coordinates.Lat, Lng: existing.Coordinates.Lng}
	}
	return full.ToParams()
}

func mediaRequests(views []queries.MediaView) []MediaRequest {
	out := make([]MediaRequest, len(views))
	for i, m := range views {
		out[i] = MediaRequest{Type: m.Type, URL: m.URL}
	}
	return out
}

// VillaListQuery binds the public catalog filter. Amenities come either
// repeated (?amenities=pool&amenities=wifi) or comma separated.
type VillaListQuery struct {
	Search    string   `form:"search" binding:"omitempty,max=200"`
	Type      string   `form:"type" binding:"omitempty,max=50"`
	Location  string   `form:"location" binding:"omitempty,max=200"`
	MinPrice  *int64   `form:"min_price" binding:"omitempty,min=0"`
	MaxPrice  *int64   `form:"max_price" binding:"omitempty,min=0"`
	Amenities []string `form:"amenities"`
	SortBy    string   `form:"sort" binding:"omitempty,oneof=rating price"`
	Limit     int      `form:"limit" binding:"omitempty,min=1,max=100"`
	Offset    int      `form:"offset" binding:"omitempty,min=0"`
}

func (q *VillaListQuery) ToFilter() (queries.VillaFilter, queries.Page) {
	amenities := make([]string, 0, len(q.Amenities))
	for _, a := range q.Amenities {
		amenities = append(amenities, villa.SplitAmenities(a)...)
	}
	return queries.VillaFilter{
		Search:    strings.TrimSpace(q.Search),
		Type:      strings.TrimSpace(q.Type),
		Location:  strings.TrimSpace(q.Location),
		MinPrice:  q.MinPrice,
		MaxPrice:  q.MaxPrice,
		Amenities: villa.NormalizeAmenities(amenities),
		SortBy:    q.SortBy,
	}, queries.Page{Limit: q.Limit, Offset: q.Offset}
}

type AvailabilityQuery struct {
	Date string `form:"date" binding:"omitempty,isodate"`
}

type CursorQuery struct {
	After string `form:"after"`
	Limit int    `form:"limit" binding:"omitempty,min=1,max=100"`
}

func (q *CursorQuery) ToCursor() *queries.Cursor {
	if q.After == "" {
		return nil
	}
	return &queries.Cursor{After: q.After}
}

type AnalyticsQuery struct {
	Days int `form:"days" binding:"omitempty,min=1,max=365"`
}
