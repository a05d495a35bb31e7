//go:build e2e

package review_test

import (
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"testing"
	"time"

	"villanest/internal/domain/user"
	"villanest/internal/handler/dto/request"
	"villanest/internal/handler/dto/response"
	"villanest/tests/common/authtest"
	"villanest/tests/common/dbtest"
	"villanest/tests/common/httptest"
	"villanest/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type ReviewSuite struct {
	e2e.SharedSuite
}

func TestReviewSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(ReviewSuite))
}

func (s *ReviewSuite) reviewsURL(villaID uuid.UUID) string {
	return fmt.Sprintf("/api/villas/%s/reviews", villaID)
}

// guestWithPastStay creates a guest who finished a stay at the villa last month.
func (s *ReviewSuite) guestWithPastStay(email string, villaID uuid.UUID) string {
	userID := dbtest.CreateTestUser(s.T(), s.DB, email, string(user.RoleUser))
	end := time.Now().UTC().AddDate(0, -1, 0)
	dbtest.CreatePastBooking(s.T(), s.DB, villaID, userID, end.AddDate(0, 0, -2), end)
	return authtest.LoginUser(s.T(), s.Router, email, dbtest.TestPassword)
}

func (s *ReviewSuite) TestConcurrentReviews() {
	s.Run("simultaneous reviews all count towards the rating", func() {
		villaID := dbtest.CreateTestVilla(s.T(), s.DB, dbtest.DefaultVilla())

		ratings := []int{5, 4, 3, 5, 4, 3}
		tokens := make([]string, len(ratings))
		for i := range ratings {
			tokens[i] = s.guestWithPastStay(fmt.Sprintf("reviewer%d@example.com", i), villaID)
		}

		var (
			wg    sync.WaitGroup
			start = make(chan struct{})
			codes = make([]int, len(ratings))
		)
		for i, rating := range ratings {
			wg.Add(1)
			go func(i, rating int) {
				defer wg.Done()
				<-start
				w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, s.reviewsURL(villaID),
					request.CreateReviewRequest{Rating: rating, Comment: "Stayed here"}, tokens[i])
				codes[i] = w.Code
			}(i, rating)
		}
		close(start)
		wg.Wait()

		for _, code := range codes {
			s.Equal(http.StatusCreated, code, "codes: %v", codes)
		}

		var (
			avg   float64
			count int
		)
		err := s.DB.QueryRow(s.T().Context(),
			"SELECT avg_rating::float8, reviews_count FROM villas WHERE id = $1", villaID).Scan(&avg, &count)
		s.Require().NoError(err)
		s.Equal(len(ratings), count)
		s.InDelta(4.0, avg, 1e-9)
	})
}

func (s *ReviewSuite) TestCreateReview() {
	s.Run("guest with a completed stay can review", func() {
		villaID := dbtest.CreateTestVilla(s.T(), s.DB, dbtest.DefaultVilla())
		token := s.guestWithPastStay("stayed@example.com", villaID)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, s.reviewsURL(villaID),
			request.CreateReviewRequest{Rating: 4, Comment: "Lovely pool"}, token)

		var resp response.CreateReviewResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &resp)
		s.NotEmpty(resp.ReviewID)
		s.Equal(1, resp.Rating.ReviewsCount)
		s.Require().NotNil(resp.Rating.AvgRating)
		s.InDelta(4.0, *resp.Rating.AvgRating, 1e-9)
	})

	s.Run("guest without a stay is forbidden", func() {
		villaID := dbtest.CreateTestVilla(s.T(), s.DB, dbtest.DefaultVilla())
		token := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "never@example.com", string(user.RoleUser))

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, s.reviewsURL(villaID),
			request.CreateReviewRequest{Rating: 5, Comment: "Looks nice"}, token)

		httptest.AssertErrorResponse(s.T(), w, http.StatusForbidden, "")
	})

	s.Run("second review of the same villa conflicts", func() {
		villaID := dbtest.CreateTestVilla(s.T(), s.DB, dbtest.DefaultVilla())
		token := s.guestWithPastStay("twice@example.com", villaID)

		body := request.CreateReviewRequest{Rating: 5, Comment: "Great"}
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, s.reviewsURL(villaID), body, token)
		s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, s.reviewsURL(villaID), body, token)
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "")
	})

	s.Run("rating out of range", func() {
		villaID := dbtest.CreateTestVilla(s.T(), s.DB, dbtest.DefaultVilla())
		token := s.guestWithPastStay("range@example.com", villaID)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, s.reviewsURL(villaID),
			request.CreateReviewRequest{Rating: 6, Comment: "Too good"}, token)

		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request")
	})

	s.Run("unknown villa", func() {
		token := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "lost@example.com", string(user.RoleUser))

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, s.reviewsURL(uuid.New()),
			request.CreateReviewRequest{Rating: 3, Comment: "Where?"}, token)

		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "")
	})

	s.Run("anonymous is unauthorized", func() {
		villaID := dbtest.CreateTestVilla(s.T(), s.DB, dbtest.DefaultVilla())

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, s.reviewsURL(villaID),
			request.CreateReviewRequest{Rating: 3, Comment: "Hi"}, "")

		s.Equal(http.StatusUnauthorized, w.Code)
	})
}

func (s *ReviewSuite) TestRatingAggregation() {
	s.Run("villa rating follows its visible reviews", func() {
		villaID := dbtest.CreateTestVilla(s.T(), s.DB, dbtest.DefaultVilla())

		for i, rating := range []int{5, 4, 4} {
			token := s.guestWithPastStay(fmt.Sprintf("agg%d@example.com", i), villaID)
			w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, s.reviewsURL(villaID),
				request.CreateReviewRequest{Rating: rating, Comment: "Stayed here"}, token)
			s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
		}

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/villas/"+villaID.String(), nil, "")
		var villa response.VillaResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &villa)
		s.Equal(int32(3), villa.ReviewsCount)
		s.Require().NotNil(villa.AvgRating)
		s.InDelta(4.3, *villa.AvgRating, 1e-9)
	})

	s.Run("hiding a review recalculates the rating", func() {
		villaID := dbtest.CreateTestVilla(s.T(), s.DB, dbtest.DefaultVilla())
		admin := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "admin@example.com", string(user.RoleAdmin))

		var reviewIDs []string
		for i, rating := range []int{5, 1} {
			token := s.guestWithPastStay(fmt.Sprintf("hide%d@example.com", i), villaID)
			w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, s.reviewsURL(villaID),
				request.CreateReviewRequest{Rating: rating, Comment: "Opinion"}, token)
			var created response.CreateReviewResponse
			httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &created)
			reviewIDs = append(reviewIDs, created.ReviewID)
		}

		hidden := false
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPatch,
			"/api/admin/reviews/"+reviewIDs[1]+"/visibility",
			request.ReviewVisibilityRequest{IsVisible: &hidden}, admin)

		var summary response.RatingSummaryResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &summary)
		s.Equal(1, summary.ReviewsCount)
		s.Require().NotNil(summary.AvgRating)
		s.InDelta(5.0, *summary.AvgRating, 1e-9)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, s.reviewsURL(villaID), nil, "")
		var list response.ReviewListResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &list)
		s.Require().Len(list.Reviews, 1)
		s.Equal(reviewIDs[0], list.Reviews[0].ID)
	})
}

func (s *ReviewSuite) TestListVillaReviews() {
	s.Run("newest first with cursor paging", func() {
		villaID := dbtest.CreateTestVilla(s.T(), s.DB, dbtest.DefaultVilla())

		for i := range 3 {
			token := s.guestWithPastStay(fmt.Sprintf("page%d@example.com", i), villaID)
			w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, s.reviewsURL(villaID),
				request.CreateReviewRequest{Rating: 3 + i%3, Comment: fmt.Sprintf("Review %d", i)}, token)
			s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
		}

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, s.reviewsURL(villaID)+"?limit=2", nil, "")
		var first response.ReviewListResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &first)
		s.Require().Len(first.Reviews, 2)
		s.Equal("Review 2", first.Reviews[0].Comment)
		s.Require().NotEmpty(first.NextCursor)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet,
			s.reviewsURL(villaID)+"?limit=2&after="+url.QueryEscape(first.NextCursor), nil, "")
		var second response.ReviewListResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &second)
		s.Require().Len(second.Reviews, 1)
		s.Equal("Review 0", second.Reviews[0].Comment)
		s.Empty(second.NextCursor)
	})

	s.Run("villa without reviews", func() {
		villaID := dbtest.CreateTestVilla(s.T(), s.DB, dbtest.DefaultVilla())

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, s.reviewsURL(villaID), nil, "")
		var list response.ReviewListResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &list)
		s.Empty(list.Reviews)
	})
}
