//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	domreview "villanest/internal/domain/review"
	"villanest/internal/domain/user"
	"villanest/internal/handler/api"
	resdto "villanest/internal/handler/dto/response"
	"villanest/internal/usecase/commands"
	"villanest/internal/usecase/queries"
	"villanest/tests/common/builder"
	"villanest/tests/common/httptest"
	"villanest/tests/common/testutil"
	commandsmock "villanest/tests/mock/commands"
	queriesmock "villanest/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReviewHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReviewCommands
	mockQueries  *queriesmock.MockReviewQueries
	userID       uuid.UUID
	role         user.Role
	villaID      uuid.UUID
}

func (s *ReviewHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReviewCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReviewQueries(s.mockCtrl)
	s.userID = uuid.New()
	s.role = user.RoleUser
	s.villaID = uuid.New()
	handler := api.NewReviewHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/villas/:id/reviews", fakeAuth(&s.userID, &s.role), handler.Create)
	s.router.GET("/villas/:id/reviews", handler.ListByVilla)
}

func (s *ReviewHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReviewHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReviewHandlerTestSuite))
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *ReviewHandlerTestSuite) TestCreate() {
	url := "/villas/" + s.villaID.String() + "/reviews"

	reqBody := builder.NewReviewBuilder().BuildCreateRequestDTO()
	avg := int64(45)
	expectedResult := &commands.CreateReviewResult{
		ReviewID: uuid.New(),
		Summary:  domreview.Summary{Count: 2, AverageTenths: &avg},
	}

	s.Run("success: returns 201 with the refreshed rating", func() {
		s.mockCommands.EXPECT().
			CreateReview(gomock.Any(), commands.CreateReviewRequest{VillaID: s.villaID, Rating: reqBody.Rating, Comment: reqBody.Comment}, s.userID).
			Return(expectedResult, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, bearerToken)

		var body resdto.CreateReviewResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(expectedResult.ReviewID.String(), body.ReviewID)
		s.Equal(2, body.Rating.ReviewsCount)
		s.Require().NotNil(body.Rating.AvgRating)
		s.InDelta(4.5, *body.Rating.AvgRating, 1e-9)
	})

	bound := []testCase{
		{name: "rating boundary OK (1)", mutate: testutil.Field("rating", 1), expectCode: http.StatusCreated},
		{name: "rating boundary OK (5)", mutate: testutil.Field("rating", 5), expectCode: http.StatusCreated},
		{name: "rating boundary invalid (0)", mutate: testutil.Field("rating", 0), expectCode: http.StatusBadRequest},
		{name: "rating boundary invalid (6)", mutate: testutil.Field("rating", 6), expectCode: http.StatusBadRequest},
		{name: "comment length OK (1000 chars)", mutate: testutil.Field("comment", strings.Repeat("a", 1000)), expectCode: http.StatusCreated},
		{name: "comment length invalid (1001 chars)", mutate: testutil.Field("comment", strings.Repeat("a", 1001)), expectCode: http.StatusBadRequest},
	}

	missing := []testCase{
		{name: "missing field: rating (required)", mutate: testutil.Field("rating", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: comment (required)", mutate: testutil.Field("comment", nil), expectCode: http.StatusBadRequest},
		{name: "empty comment", mutate: testutil.Field("comment", ""), expectCode: http.StatusBadRequest},
	}

	s.Run("error: 400 Bad Request on validation errors", func() {
		for _, group := range [][]testCase{bound, missing} {
			for _, tc := range group {
				s.Run(tc.name, func() {
					requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
					if tc.expectCode == http.StatusCreated {
						s.mockCommands.EXPECT().CreateReview(gomock.Any(), gomock.Any(), s.userID).Return(expectedResult, nil)
					}
					rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, bearerToken)
					if tc.expectCode == http.StatusCreated {
						httptest.AssertSuccessResponse(s.T(), rec, tc.expectCode, nil)
					} else {
						httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
					}
				})
			}
		}
	})

	s.Run("error: 400 on malformed villa id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/villas/abc/reviews", reqBody, bearerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{name: "no completed stay", commandsError: domreview.ErrStayNotCompleted, expectedStatus: http.StatusForbidden, expectedMsg: domreview.ErrStayNotCompleted.Error()},
			{name: "already reviewed", commandsError: commands.ErrDuplicateReview, expectedStatus: http.StatusConflict, expectedMsg: commands.ErrDuplicateReview.Error()},
			{name: "unknown villa", commandsError: commands.ErrVillaNotFound, expectedStatus: http.StatusNotFound, expectedMsg: "villa not found"},
			{name: "internal server error", commandsError: errors.New("database error"), expectedStatus: http.StatusInternalServerError, expectedMsg: "Internal server error"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreateReview(gomock.Any(), gomock.Any(), s.userID).Return(nil, tc.commandsError)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, bearerToken)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestListByVilla
// ================================================================================

func (s *ReviewHandlerTestSuite) TestListByVilla() {
	url := "/villas/" + s.villaID.String() + "/reviews"
	items := []*queries.ReviewListItem{
		builder.NewReviewBuilder().WithVillaID(s.villaID).BuildListItem(),
		builder.NewReviewBuilder().WithVillaID(s.villaID).WithRating(3).BuildListItem(),
	}

	s.Run("success: public listing with next cursor", func() {
		s.mockQueries.EXPECT().ListByVilla(gomock.Any(), s.villaID, (*queries.Cursor)(nil), 2).
			Return(items, &queries.Cursor{After: "next"}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?limit=2", nil, "")
		var body resdto.ReviewListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body.Reviews, 2)
		s.Equal("next", body.NextCursor)
	})

	s.Run("error: 400 on invalid cursor", func() {
		s.mockQueries.EXPECT().ListByVilla(gomock.Any(), s.villaID, &queries.Cursor{After: "bad"}, 0).
			Return(nil, nil, queries.ErrInvalidCursor)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?after=bad", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "invalid cursor")
	})
}
