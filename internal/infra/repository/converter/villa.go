package converter

import (
	"encoding/json"
	"strings"

	"villanest/internal/domain/villa"
	sqlc "villanest/internal/infra/sqlc/generated"
	"villanest/internal/pkg/pgconv"
	"villanest/internal/pkg/textnorm"

	"github.com/jackc/pgx/v5/pgtype"
)

func VillaToCreateParams(v *villa.Villa) (sqlc.CreateVillaParams, error) {
	media, err := json.Marshal(v.Media())
	if err != nil {
		return sqlc.CreateVillaParams{}, err
	}
	lat, lng := coordinatesToPgtype(v.Coordinates())
	return sqlc.CreateVillaParams{
		ID:            v.ID(),
		Name:          v.Name(),
		Type:          v.Type(),
		Description:   v.Description(),
		Location:      v.Location(),
		PricePerNight: v.PricePerNight(),
		PriceHourly:   pgconv.Int64PtrToPgtype(v.PriceHourly()),
		Amenities:     amenitiesOrEmpty(v.Amenities()),
		MainImage:     v.MainImage(),
		Media:         media,
		Latitude:      lat,
		Longitude:     lng,
		SearchText:    SearchText(v),
		IsActive:      v.IsActive(),
		CreatedAt:     pgconv.TimeToPgtype(v.CreatedAt()),
	}, nil
}

func VillaToUpdateParams(v *villa.Villa) (sqlc.UpdateVillaParams, error) {
	media, err := json.Marshal(v.Media())
	if err != nil {
		return sqlc.UpdateVillaParams{}, err
	}
	lat, lng := coordinatesToPgtype(v.Coordinates())
	return sqlc.UpdateVillaParams{
		ID:            v.ID(),
		Name:          v.Name(),
		Type:          v.Type(),
		Description:   v.Description(),
		Location:      v.Location(),
		PricePerNight: v.PricePerNight(),
		PriceHourly:   pgconv.Int64PtrToPgtype(v.PriceHourly()),
		Amenities:     amenitiesOrEmpty(v.Amenities()),
		MainImage:     v.MainImage(),
		Media:         media,
		Latitude:      lat,
		Longitude:     lng,
		SearchText:    SearchText(v),
		UpdatedAt:     pgconv.TimeToPgtype(v.UpdatedAt()),
	}, nil
}

func VillaFromRow(row sqlc.Villas) (*villa.Villa, error) {
	media, err := MediaFromJSON(row.Media)
	if err != nil {
		return nil, err
	}
	p := villa.Params{
		Name:          row.Name,
		Type:          row.Type,
		Description:   row.Description,
		Location:      row.Location,
		PricePerNight: row.PricePerNight,
		PriceHourly:   pgconv.Int64PtrFromPgtype(row.PriceHourly),
		Amenities:     row.Amenities,
		MainImage:     row.MainImage,
		Media:         media,
		Coordinates:   CoordinatesFromPgtype(row.Latitude, row.Longitude),
	}
	return villa.ReconstructVilla(row.ID, p, row.IsActive,
		pgconv.TimeFromPgtype(row.CreatedAt), pgconv.TimeFromPgtype(row.UpdatedAt)), nil
}

// SearchText is the folded haystack matched by the catalog search.
func SearchText(v *villa.Villa) string {
	parts := []string{v.Name(), v.Location(), v.Description(), v.Type()}
	parts = append(parts, v.Amenities()...)
	return textnorm.Fold(strings.Join(parts, " "))
}

func MediaFromJSON(raw []byte) ([]villa.Media, error) {
	media := []villa.Media{}
	if len(raw) == 0 {
		return media, nil
	}
	if err := json.Unmarshal(raw, &media); err != nil {
		return nil, err
	}
	return media, nil
}

func CoordinatesFromPgtype(lat, lng pgtype.Float8) *villa.Coordinates {
	if !lat.Valid || !lng.Valid {
		return nil
	}
	return &villa.Coordinates{Lat: lat.Float64, Lng: lng.Float64}
}

func coordinatesToPgtype(c *villa.Coordinates) (pgtype.Float8, pgtype.Float8) {
	if c == nil {
		return pgtype.Float8{}, pgtype.Float8{}
	}
	return pgtype.Float8{Float64: c.Lat, Valid: true}, pgtype.Float8{Float64: c.Lng, Valid: true}
}

func amenitiesOrEmpty(a []string) []string {
	if a == nil {
		return []string{}
	}
	return a
}
