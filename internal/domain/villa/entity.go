package villa

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Villa struct {
	id            uuid.UUID
	name          string
	kind          string
	description   string
	location      string
	pricePerNight int64
	priceHourly   *int64
	amenities     []string
	mainImage     string
	media         []Media
	coordinates   *Coordinates
	isActive      bool
	createdAt     time.Time
	updatedAt     time.Time
}

// Params carries the admin-editable fields of a villa.
type Params struct {
	Name          string
	Type          string
	Description   string
	Location      string
	PricePerNight int64
	PriceHourly   *int64
	Amenities     []string
	MainImage     string
	Media         []Media
	Coordinates   *Coordinates
}

func (p Params) normalize() (Params, error) {
	p.Name = strings.TrimSpace(p.Name)
	p.Type = strings.TrimSpace(p.Type)
	p.Description = strings.TrimSpace(p.Description)
	p.Location = strings.TrimSpace(p.Location)
	p.MainImage = strings.TrimSpace(p.MainImage)
	p.Amenities = NormalizeAmenities(p.Amenities)

	if p.Name == "" {
		return Params{}, ErrEmptyName
	}
	if p.Location == "" {
		return Params{}, ErrEmptyLocation
	}
	if p.PricePerNight <= 0 {
		return Params{}, ErrInvalidPrice
	}
	if p.PriceHourly != nil && *p.PriceHourly <= 0 {
		return Params{}, ErrInvalidHourly
	}
	if p.Type == "" {
		p.Type = "villa"
	}
	if p.Media == nil {
		p.Media = []Media{}
	}
	return p, nil
}

func NewVilla(p Params, now time.Time) (*Villa, error) {
	p, err := p.normalize()
	if err != nil {
		return nil, err
	}
	v := &Villa{
		id:        uuid.New(),
		isActive:  true,
		createdAt: now,
	}
	v.apply(p, now)
	return v, nil
}

func ReconstructVilla(id uuid.UUID, p Params, isActive bool, createdAt, updatedAt time.Time) *Villa {
	v := &Villa{
		id:        id,
		isActive:  isActive,
		createdAt: createdAt,
	}
	v.apply(p, updatedAt)
	return v
}

// Update replaces every editable field; the rating fields are owned by
// review aggregation and are never touched here.
func (v *Villa) Update(p Params, now time.Time) error {
	p, err := p.normalize()
	if err != nil {
		return err
	}
	v.apply(p, now)
	return nil
}

func (v *Villa) Deactivate(now time.Time) {
	v.isActive = false
	v.updatedAt = now
}

func (v *Villa) apply(p Params, now time.Time) {
	v.name = p.Name
	v.kind = p.Type
	v.description = p.Description
	v.location = p.Location
	v.pricePerNight = p.PricePerNight
	v.priceHourly = p.PriceHourly
	v.amenities = p.Amenities
	v.mainImage = p.MainImage
	v.media = p.Media
	v.coordinates = p.Coordinates
	v.updatedAt = now
}

func (v *Villa) ID() uuid.UUID             { return v.id }
func (v *Villa) Name() string              { return v.name }
func (v *Villa) Type() string              { return v.kind }
func (v *Villa) Description() string       { return v.description }
func (v *Villa) Location() string          { return v.location }
func (v *Villa) PricePerNight() int64      { return v.pricePerNight }
func (v *Villa) PriceHourly() *int64       { return v.priceHourly }
func (v *Villa) Amenities() []string       { return v.amenities }
func (v *Villa) MainImage() string         { return v.mainImage }
func (v *Villa) Media() []Media            { return v.media }
func (v *Villa) Coordinates() *Coordinates { return v.coordinates }
func (v *Villa) IsActive() bool            { return v.isActive }
func (v *Villa) CreatedAt() time.Time      { return v.createdAt }
func (v *Villa) UpdatedAt() time.Time      { return v.updatedAt }
