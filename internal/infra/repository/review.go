package repository

import (
	"context"

	"villanest/internal/domain/review"
	"villanest/internal/infra"
	"villanest/internal/infra/repository/converter"
	sqlc "villanest/internal/infra/sqlc/generated"
	"villanest/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ReviewWriteQueries interface {
	CreateReview(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReviewParams) (uuid.UUID, error)
	GetReviewForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Reviews, error)
	UpdateReviewVisibility(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateReviewVisibilityParams) (int64, error)
}

type ReviewRepository struct {
	queries ReviewWriteQueries
	db      sqlc.DBTX
}

func NewReviewRepository(queries ReviewWriteQueries, db sqlc.DBTX) *ReviewRepository {
	return &ReviewRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ReviewRepository) Create(ctx context.Context, tx sqlc.DBTX, rev *review.Review) (uuid.UUID, error) {
	params := converter.ReviewToCreateParams(rev)
	id, err := r.queries.CreateReview(ctx, tx, params)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create review", err)
	}
	return id, nil
}

func (r *ReviewRepository) FindForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*review.Review, error) {
	row, err := r.queries.GetReviewForUpdate(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("review not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get review", err)
	}
	rev, err := converter.ReviewFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("stored review is malformed", err, infra.KindDBFailure)
	}
	return rev, nil
}

func (r *ReviewRepository) UpdateVisibility(ctx context.Context, tx sqlc.DBTX, rev *review.Review) error {
	n, err := r.queries.UpdateReviewVisibility(ctx, tx, sqlc.UpdateReviewVisibilityParams{
		ID:        rev.ID(),
		IsVisible: rev.IsVisible(),
		UpdatedAt: pgconv.TimeToPgtype(rev.UpdatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update review visibility", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("review not found", nil, infra.KindNotFound)
	}
	return nil
}
