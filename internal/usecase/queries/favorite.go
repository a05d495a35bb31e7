package queries

//go:generate mockgen -source=favorite.go -destination=../../../tests/mock/queries/favorite.go -package=queriesmock

import (
	"context"

	"github.com/google/uuid"
)

type FavoriteReadStore interface {
	ListVillas(ctx context.Context, userID uuid.UUID) ([]*FavoriteVillaView, error)
	ListVillaIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}

type FavoriteQueries interface {
	ListVillas(ctx context.Context, userID uuid.UUID) ([]*FavoriteVillaView, error)
	ListVillaIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}

type favoriteQueriesImpl struct {
	readStore FavoriteReadStore
}

func NewFavoriteQueries(readStore FavoriteReadStore) FavoriteQueries {
	return &favoriteQueriesImpl{readStore: readStore}
}

func (q *favoriteQueriesImpl) ListVillas(ctx context.Context, userID uuid.UUID) ([]*FavoriteVillaView, error) {
	return q.readStore.ListVillas(ctx, userID)
}

func (q *favoriteQueriesImpl) ListVillaIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	return q.readStore.ListVillaIDs(ctx, userID)
}
