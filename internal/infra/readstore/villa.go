package readstore

//go:generate mockgen -source=villa.go -destination=../../../tests/mock/readstore/villa.go -package=readstoremock

import (
	"context"
	"strings"

	"villanest/internal/infra"
	"villanest/internal/infra/repository/converter"
	sqlc "villanest/internal/infra/sqlc/generated"
	"villanest/internal/pkg/pgconv"
	"villanest/internal/usecase/queries"

	"github.com/google/uuid"
)

type VillaViewQueries interface {
	GetVillaByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Villas, error)
	ListVillas(ctx context.Context, db sqlc.DBTX, arg sqlc.ListVillasParams) ([]sqlc.Villas, error)
}

type VillaReadStore struct {
	queries VillaViewQueries
	db      sqlc.DBTX
}

func NewVillaReadStore(queries VillaViewQueries, db sqlc.DBTX) *VillaReadStore {
	return &VillaReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *VillaReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.VillaView, error) {
	row, err := r.queries.GetVillaByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("villa not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get villa by id", err)
	}
	return toVillaView(row)
}

func (r *VillaReadStore) List(ctx context.Context, filter queries.VillaFilter, page queries.Page) ([]*queries.VillaView, error) {
	params := sqlc.ListVillasParams{
		OnlyActive: !filter.IncludeInactive,
		Search:     pgconv.TextOrNull(escapeLike(filter.Search)),
		Type:       pgconv.TextOrNull(filter.Type),
		Location:   pgconv.TextOrNull(filter.Location),
		MinPrice:   pgconv.Int64PtrToPgtype(filter.MinPrice),
		MaxPrice:   pgconv.Int64PtrToPgtype(filter.MaxPrice),
		Amenities:  amenitiesOrNil(filter.Amenities),
		SortBy:     filter.SortBy,
		Lim:        pgconv.IntToInt32(page.Limit),
		Off:        pgconv.IntToInt32(page.Offset),
	}

	rows, err := r.queries.ListVillas(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list villas", err)
	}

	views := make([]*queries.VillaView, 0, len(rows))
	for _, row := range rows {
		v, err := toVillaView(row)
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, nil
}

func toVillaView(row sqlc.Villas) (*queries.VillaView, error) {
	media, err := converter.MediaFromJSON(row.Media)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode villa media", err)
	}
	rating, err := pgconv.Float64PtrFromNumeric(row.AvgRating)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode villa rating", err)
	}

	view := &queries.VillaView{
		ID:            row.ID,
		Name:          row.Name,
		Type:          row.Type,
		Description:   row.Description,
		Location:      row.Location,
		PricePerNight: row.PricePerNight,
		PriceHourly:   pgconv.Int64PtrFromPgtype(row.PriceHourly),
		Amenities:     row.Amenities,
		MainImage:     row.MainImage,
		Media:         make([]queries.MediaView, 0, len(media)),
		AvgRating:     rating,
		ReviewsCount:  row.ReviewsCount,
		IsActive:      row.IsActive,
		CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:     pgconv.TimeFromPgtype(row.UpdatedAt),
	}
	if view.Amenities == nil {
		view.Amenities = []string{}
	}
	for _, m := range media {
		view.Media = append(view.Media, queries.MediaView{Type: string(m.Type), URL: m.URL})
	}
	if c := converter.CoordinatesFromPgtype(row.Latitude, row.Longitude); c != nil {
		view.Coordinates = &queries.CoordinatesView{Lat: c.Lat, Lng: c.Lng}
	}
	return view, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func amenitiesOrNil(a []string) []string {
	if len(a) == 0 {
		return nil
	}
	return a
}

