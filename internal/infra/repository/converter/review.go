package converter

import (
	"villanest/internal/domain/review"
	sqlc "villanest/internal/infra/sqlc/generated"
	"villanest/internal/pkg/pgconv"
)

func ReviewToCreateParams(r *review.Review) sqlc.CreateReviewParams {
	return sqlc.CreateReviewParams{
		ID:        r.ID(),
		VillaID:   r.VillaID(),
		UserID:    r.UserID(),
		UserName:  r.UserName(),
		Rating:    int16(r.Rating().Value()), // #nosec G115 -- rating is 1..5
		Comment:   r.Comment().String(),
		IsVisible: r.IsVisible(),
		CreatedAt: pgconv.TimeToPgtype(r.CreatedAt()),
	}
}

func ReviewFromRow(row sqlc.Reviews) (*review.Review, error) {
	rating, err := review.NewRating(int(row.Rating))
	if err != nil {
		return nil, err
	}
	comment, err := review.NewComment(row.Comment)
	if err != nil {
		return nil, err
	}
	return review.ReconstructReview(row.ID, row.VillaID, row.UserID, row.UserName, rating, comment, row.IsVisible,
		pgconv.TimeFromPgtype(row.CreatedAt), pgconv.TimeFromPgtype(row.UpdatedAt)), nil
}
