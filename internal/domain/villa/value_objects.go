package villa

import "strings"

type MediaType string

const (
	MediaImage MediaType = "image"
	MediaVideo MediaType = "video"
)

type Media struct {
	Type MediaType `json:"type"`
	URL  string    `json:"url"`
}

func NewMedia(kind, url string) (Media, error) {
	url = strings.TrimSpace(url)
	switch MediaType(kind) {
	case MediaImage, MediaVideo:
	default:
		return Media{}, ErrInvalidMedia
	}
	if url == "" {
		return Media{}, ErrInvalidMedia
	}
	return Media{Type: MediaType(kind), URL: url}, nil
}

type Coordinates struct {
	Lat float64
	Lng float64
}

func NewCoordinates(lat, lng float64) (Coordinates, error) {
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return Coordinates{}, ErrInvalidLocation
	}
	return Coordinates{Lat: lat, Lng: lng}, nil
}

// NormalizeAmenities trims and lower-cases entries, dropping empties and
// duplicates in first occurrence order. Stored amenities and catalog filters
// both go through it, so containment matching is case-insensitive.
func NormalizeAmenities(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, a := range in {
		a = strings.ToLower(strings.TrimSpace(a))
		if a == "" {
			continue
		}
		if _, dup := seen[a]; dup {
			continue
		}
		seen[a] = struct{}{}
		out = append(out, a)
	}
	return out
}

// SplitAmenities accepts the comma separated form used by the admin console.
func SplitAmenities(s string) []string {
	return NormalizeAmenities(strings.Split(s, ","))
}
