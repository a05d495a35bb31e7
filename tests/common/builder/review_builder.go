//go:build unit || e2e

package builder

import (
	"time"

	domreview "villanest/internal/domain/review"
	reqdto "villanest/internal/handler/dto/request"
	"villanest/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReviewBuilder struct {
	VillaID   uuid.UUID
	VillaName string
	UserID    uuid.UUID
	UserName  string
	Rating    int
	Comment   string
	Visible   bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewReviewBuilder() *ReviewBuilder {
	now := time.Now()
	return &ReviewBuilder{
		VillaID:   uuid.New(),
		VillaName: "Casa Azul",
		UserID:    uuid.New(),
		UserName:  "Asha Rao",
		Rating:    5,
		Comment:   "Excellent stay!",
		Visible:   true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (r *ReviewBuilder) With(mutate func(*ReviewBuilder)) *ReviewBuilder {
	mutate(r)
	return r
}

// Build methods
func (r *ReviewBuilder) BuildDomain() (*domreview.Review, error) {
	return domreview.NewReview(r.VillaID, r.UserID, r.UserName, r.Rating, r.Comment, r.CreatedAt)
}

func (r *ReviewBuilder) BuildCreateRequestDTO() reqdto.CreateReviewRequest {
	return reqdto.CreateReviewRequest{
		Rating:  r.Rating,
		Comment: r.Comment,
	}
}

func (r *ReviewBuilder) BuildView() *queries.ReviewView {
	return &queries.ReviewView{
		ID:        uuid.New(),
		VillaID:   r.VillaID,
		VillaName: r.VillaName,
		UserID:    r.UserID,
		UserName:  r.UserName,
		Rating:    int16(r.Rating),
		Comment:   r.Comment,
		IsVisible: r.Visible,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func (r *ReviewBuilder) BuildListItem() *queries.ReviewListItem {
	return &queries.ReviewListItem{
		ID:        uuid.New(),
		UserName:  r.UserName,
		Rating:    int16(r.Rating),
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt,
	}
}

// Fluent builder methods
func (r *ReviewBuilder) WithVillaID(villaID uuid.UUID) *ReviewBuilder {
	r.VillaID = villaID
	return r
}

func (r *ReviewBuilder) WithUserID(userID uuid.UUID) *ReviewBuilder {
	r.UserID = userID
	return r
}

func (r *ReviewBuilder) WithUserName(name string) *ReviewBuilder {
	r.UserName = name
	return r
}

func (r *ReviewBuilder) WithRating(rating int) *ReviewBuilder {
	r.Rating = rating
	return r
}

func (r *ReviewBuilder) WithComment(comment string) *ReviewBuilder {
	r.Comment = comment
	return r
}

func (r *ReviewBuilder) WithCreatedAt(createdAt time.Time) *ReviewBuilder {
	r.CreatedAt = createdAt
	r.UpdatedAt = createdAt
	return r
}

func (r *ReviewBuilder) AsHidden() *ReviewBuilder {
	r.Visible = false
	return r
}
