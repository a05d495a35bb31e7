package response

import (
	domreview "villanest/internal/domain/review"
	"villanest/internal/usecase/queries"
)

type ReviewResponse struct {
	ID        string `json:"id"`
	VillaID   string `json:"villa_id"`
	VillaName string `json:"villa_name"`
	UserID    string `json:"user_id"`
	UserName  string `json:"user_name"`
	Rating    int16  `json:"rating"`
	Comment   string `json:"comment"`
	IsVisible bool   `json:"is_visible"`
	CreatedAt int64  `json:"created_at"`
	UpdatedAt int64  `json:"updated_at"`
}

func FromReviewView(v *queries.ReviewView) *ReviewResponse {
	return &ReviewResponse{
		ID:        v.ID.String(),
		VillaID:   v.VillaID.String(),
		VillaName: v.VillaName,
		UserID:    v.UserID.String(),
		UserName:  v.UserName,
		Rating:    v.Rating,
		Comment:   v.Comment,
		IsVisible: v.IsVisible,
		CreatedAt: v.CreatedAt.Unix(),
		UpdatedAt: v.UpdatedAt.Unix(),
	}
}

func FromReviewViews(views []*queries.ReviewView) []*ReviewResponse {
	res := make([]*ReviewResponse, len(views))
	for i, v := range views {
		res[i] = FromReviewView(v)
	}
	return res
}

type ReviewListItemResponse struct {
	ID        string `json:"id"`
	UserName  string `json:"user_name"`
	Rating    int16  `json:"rating"`
	Comment   string `json:"comment"`
	CreatedAt int64  `json:"created_at"`
}

func FromReviewList(items []*queries.ReviewListItem) []*ReviewListItemResponse {
	res := make([]*ReviewListItemResponse, len(items))
	for i, it := range items {
		res[i] = &ReviewListItemResponse{
			ID:        it.ID.String(),
			UserName:  it.UserName,
			Rating:    it.Rating,
			Comment:   it.Comment,
			CreatedAt: it.CreatedAt.Unix(),
		}
	}
	return res
}

type ReviewListResponse struct {
	Reviews    []*ReviewListItemResponse `json:"reviews"`
	NextCursor string                    `json:"next_cursor,omitempty"`
}

// RatingSummaryResponse is the villa aggregate after a review write.
type RatingSummaryResponse struct {
	AvgRating    *float64 `json:"avg_rating"`
	ReviewsCount int      `json:"reviews_count"`
}

func FromSummary(s domreview.Summary) RatingSummaryResponse {
	return RatingSummaryResponse{AvgRating: s.Average(), ReviewsCount: s.Count}
}

type CreateReviewResponse struct {
	ReviewID string                `json:"review_id"`
	Rating   RatingSummaryResponse `json:"rating"`
}
