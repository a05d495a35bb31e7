package queries

//go:generate mockgen -source=villa.go -destination=../../../tests/mock/queries/villa.go -package=queriesmock

import (
	"context"
	"strings"

	"villanest/internal/infra"
	"villanest/internal/pkg/errs"
	"villanest/internal/pkg/textnorm"

	"github.com/google/uuid"
)

var ErrVillaNotFound = errs.New("villa not found")

const (
	SortByRating = "rating"
	SortByPrice  = "price"
)

// VillaFilter narrows the catalog. Zero values mean "no constraint".
type VillaFilter struct {
	Search          string
	Type            string
	Location        string
	MinPrice        *int64
	MaxPrice        *int64
	Amenities       []string
	SortBy          string
	IncludeInactive bool
}

type VillaReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*VillaView, error)
	List(ctx context.Context, filter VillaFilter, page Page) ([]*VillaView, error)
}

// CacheVersion is the invalidation generation a cache miss observed.
type CacheVersion int64

// VillaCache is a read-through cache of villa detail views. Implementations
// must treat every failure as a miss.
type VillaCache interface {
	// Get returns the cached view, or on a miss the version to fill with.
	Get(ctx context.Context, id uuid.UUID) (*VillaView, CacheVersion, bool)
	// Set stores v unless the villa was invalidated after version was read.
	Set(ctx context.Context, v *VillaView, version CacheVersion)
	Invalidate(ctx context.Context, id uuid.UUID)
}

type VillaQueries interface {
	List(ctx context.Context, filter VillaFilter, page Page) ([]*VillaView, error)
	GetByID(ctx context.Context, id uuid.UUID, includeInactive bool) (*VillaView, error)
}

type villaQueriesImpl struct {
	readStore VillaReadStore
	cache     VillaCache
}

func NewVillaQueries(readStore VillaReadStore, cache VillaCache) VillaQueries {
	return &villaQueriesImpl{readStore: readStore, cache: cache}
}

func (q *villaQueriesImpl) List(ctx context.Context, filter VillaFilter, page Page) ([]*VillaView, error) {
	filter.Search = textnorm.Fold(filter.Search)
	filter.Type = strings.TrimSpace(filter.Type)
	filter.Location = strings.TrimSpace(filter.Location)
	if filter.SortBy != SortByPrice {
		filter.SortBy = SortByRating
	}
	return q.readStore.List(ctx, filter, page.normalize())
}

func (q *villaQueriesImpl) GetByID(ctx context.Context, id uuid.UUID, includeInactive bool) (*VillaView, error) {
	v, version, ok := q.cache.Get(ctx, id)
	if !ok {
		var err error
		v, err = q.readStore.FindByID(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, ErrVillaNotFound
			}
			return nil, err
		}
		q.cache.Set(ctx, v, version)
	}

	if !v.IsActive && !includeInactive {
		return nil, ErrVillaNotFound
	}
	return v, nil
}
