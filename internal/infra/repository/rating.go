package repository

import (
	"context"

	"villanest/internal/domain/review"
	"villanest/internal/infra"
	sqlc "villanest/internal/infra/sqlc/generated"
	"villanest/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type RatingWriteQueries interface {
	LockVillaForRating(ctx context.Context, db sqlc.DBTX, villaID uuid.UUID) error
	ListVisibleRatingsByVilla(ctx context.Context, db sqlc.DBTX, villaID uuid.UUID) ([]int16, error)
	UpdateVillaRating(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateVillaRatingParams) error
}

type RatingRepository struct {
	queries RatingWriteQueries
	db      sqlc.DBTX
}

func NewRatingRepository(queries RatingWriteQueries, db sqlc.DBTX) *RatingRepository {
	return &RatingRepository{queries: queries, db: db}
}

// Recalculate locks the villa row before reading, so concurrent recalculations
// for one villa run one after another and each sees the reviews committed by
// the previous one.
func (r *RatingRepository) Recalculate(ctx context.Context, tx sqlc.DBTX, villaID uuid.UUID) (review.Summary, error) {
	if err := r.queries.LockVillaForRating(ctx, tx, villaID); err != nil {
		return review.Summary{}, infra.WrapRepoErr("failed to lock villa for rating", err)
	}

	rows, err := r.queries.ListVisibleRatingsByVilla(ctx, tx, villaID)
	if err != nil {
		return review.Summary{}, infra.WrapRepoErr("failed to list visible ratings", err)
	}
	ratings := make([]int, len(rows))
	for i, v := range rows {
		ratings[i] = int(v)
	}

	summary := review.Summarize(ratings)
	err = r.queries.UpdateVillaRating(ctx, tx, sqlc.UpdateVillaRatingParams{
		ID:           villaID,
		AvgRating:    pgconv.TenthsToNumeric(summary.AverageTenths),
		ReviewsCount: pgconv.IntToInt32(summary.Count),
	})
	if err != nil {
		return review.Summary{}, infra.WrapRepoErr("failed to update villa rating", err)
	}
	return summary, nil
}
