package request

import (
	"villanest/internal/usecase/commands"
	"villanest/internal/usecase/queries"

	"github.com/google/uuid"
)

type CreateReviewRequest struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment" binding:"required,max=1000"`
}

func (r *CreateReviewRequest) ToCommand(villaID uuid.UUID) commands.CreateReviewRequest {
	return commands.CreateReviewRequest{
		VillaID: villaID,
		Rating:  r.Rating,
		Comment: r.Comment,
	}
}

type ReviewVisibilityRequest struct {
	IsVisible *bool `json:"is_visible" binding:"required"`
}

type ReviewListQuery struct {
	Visible *bool  `form:"visible"`
	VillaID string `form:"villa_id" binding:"omitempty,uuid"`
	Limit   int    `form:"limit" binding:"omitempty,min=1,max=100"`
	Offset  int    `form:"offset" binding:"omitempty,min=0"`
}

func (q *ReviewListQuery) ToFilter() (queries.ReviewFilter, queries.Page, error) {
	filter := queries.ReviewFilter{Visible: q.Visible}
	if q.VillaID != "" {
		id, err := uuid.Parse(q.VillaID)
		if err != nil {
			return filter, queries.Page{}, err
		}
		filter.VillaID = &id
	}
	return filter, queries.Page{Limit: q.Limit, Offset: q.Offset}, nil
}
