//go:build unit || e2e

package builder

import (
	"time"

	"villanest/internal/domain/villa"
	reqdto "villanest/internal/handler/dto/request"
	sqlc "villanest/internal/infra/sqlc/generated"
	"villanest/internal/usecase/queries"
	"villanest/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type VillaBuilder struct {
	ID            uuid.UUID
	Name          string
	Type          string
	Description   string
	Location      string
	PricePerNight int64
	PriceHourly   *int64
	Amenities     []string
	MainImage     string
	IsActive      bool
	CreatedAt     time.Time
}

func NewVillaBuilder() *VillaBuilder {
	return &VillaBuilder{
		ID:            uuid.New(),
		Name:          "Casa Azul",
		Type:          "villa",
		Description:   "Sea-facing villa with a private pool",
		Location:      "Goa",
		PricePerNight: 10000,
		Amenities:     []string{"pool", "wifi"},
		MainImage:     "https://img.example.com/casa-azul.jpg",
		IsActive:      true,
		CreatedAt:     time.Now(),
	}
}

func (v *VillaBuilder) With(mutate func(*VillaBuilder)) *VillaBuilder {
	mutate(v)
	return v
}

// Build methods
func (v *VillaBuilder) BuildParams() villa.Params {
	return villa.Params{
		Name:          v.Name,
		Type:          v.Type,
		Description:   v.Description,
		Location:      v.Location,
		PricePerNight: v.PricePerNight,
		PriceHourly:   v.PriceHourly,
		Amenities:     append([]string(nil), v.Amenities...),
		MainImage:     v.MainImage,
	}
}

func (v *VillaBuilder) BuildDomain() (*villa.Villa, error) {
	return villa.NewVilla(v.BuildParams(), v.CreatedAt)
}

func (v *VillaBuilder) BuildView() *queries.VillaView {
	return &queries.VillaView{
		ID:            v.ID,
		Name:          v.Name,
		Type:          v.Type,
		Description:   v.Description,
		Location:      v.Location,
		PricePerNight: v.PricePerNight,
		PriceHourly:   v.PriceHourly,
		Amenities:     append([]string(nil), v.Amenities...),
		MainImage:     v.MainImage,
		Media:         []queries.MediaView{},
		IsActive:      v.IsActive,
		CreatedAt:     v.CreatedAt,
		UpdatedAt:     v.CreatedAt,
	}
}

func (v *VillaBuilder) BuildSnapshot() *shared.VillaSnapshot {
	return &shared.VillaSnapshot{
		ID:            v.ID,
		Name:          v.Name,
		Location:      v.Location,
		PricePerNight: v.PricePerNight,
		PriceHourly:   v.PriceHourly,
		IsActive:      v.IsActive,
	}
}

func (v *VillaBuilder) BuildInfra() sqlc.Villas {
	hourly := pgtype.Int8{}
	if v.PriceHourly != nil {
		hourly = pgtype.Int8{Int64: *v.PriceHourly, Valid: true}
	}
	return sqlc.Villas{
		ID:            v.ID,
		Name:          v.Name,
		Type:          v.Type,
		Description:   v.Description,
		Location:      v.Location,
		PricePerNight: v.PricePerNight,
		PriceHourly:   hourly,
		Amenities:     append([]string(nil), v.Amenities...),
		MainImage:     v.MainImage,
		Media:         []byte("[]"),
		IsActive:      v.IsActive,
		CreatedAt:     pgtype.Timestamptz{Time: v.CreatedAt, Valid: true},
		UpdatedAt:     pgtype.Timestamptz{Time: v.CreatedAt, Valid: true},
	}
}

func (v *VillaBuilder) BuildRequestDTO() reqdto.VillaRequest {
	return reqdto.VillaRequest{
		Name:          v.Name,
		Type:          v.Type,
		Description:   v.Description,
		Location:      v.Location,
		PricePerNight: v.PricePerNight,
		PriceHourly:   v.PriceHourly,
		Amenities:     append([]string(nil), v.Amenities...),
		MainImage:     v.MainImage,
	}
}

// Fluent builder methods
func (v *VillaBuilder) WithID(id uuid.UUID) *VillaBuilder {
	v.ID = id
	return v
}

func (v *VillaBuilder) WithName(name string) *VillaBuilder {
	v.Name = name
	return v
}

func (v *VillaBuilder) WithLocation(location string) *VillaBuilder {
	v.Location = location
	return v
}

func (v *VillaBuilder) WithPricePerNight(price int64) *VillaBuilder {
	v.PricePerNight = price
	return v
}

func (v *VillaBuilder) WithPriceHourly(price int64) *VillaBuilder {
	v.PriceHourly = &price
	return v
}

func (v *VillaBuilder) WithAmenities(amenities ...string) *VillaBuilder {
	v.Amenities = amenities
	return v
}

func (v *VillaBuilder) AsInactive() *VillaBuilder {
	v.IsActive = false
	return v
}
