//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"villanest/internal/domain/booking"
	"villanest/internal/domain/user"
	"villanest/internal/handler/api"
	resdto "villanest/internal/handler/dto/response"
	"villanest/internal/handler/validation"
	"villanest/internal/usecase/queries"
	"villanest/tests/common/builder"
	"villanest/tests/common/httptest"
	commandsmock "villanest/tests/mock/commands"
	queriesmock "villanest/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type VillaHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockCtrl         *gomock.Controller
	mockVillas       *queriesmock.MockVillaQueries
	mockAvailability *queriesmock.MockAvailabilityQueries
	mockFavCommands  *commandsmock.MockFavoriteCommands
	mockFavQueries   *queriesmock.MockFavoriteQueries
	userID           uuid.UUID
	role             user.Role
}

func (s *VillaHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.Require().NoError(validation.Register())
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockVillas = queriesmock.NewMockVillaQueries(s.mockCtrl)
	s.mockAvailability = queriesmock.NewMockAvailabilityQueries(s.mockCtrl)
	s.mockFavCommands = commandsmock.NewMockFavoriteCommands(s.mockCtrl)
	s.mockFavQueries = queriesmock.NewMockFavoriteQueries(s.mockCtrl)
	s.userID = uuid.New()
	s.role = user.RoleUser

	villas := api.NewVillaHandler(s.mockVillas, s.mockAvailability)
	favorites := api.NewFavoriteHandler(s.mockFavCommands, s.mockFavQueries)
	auth := fakeAuth(&s.userID, &s.role)

	s.router.GET("/villas", villas.List)
	s.router.GET("/villas/:id", villas.Get)
	s.router.GET("/admin-view/villas/:id", auth, villas.Get)
	s.router.GET("/villas/:id/availability", villas.Availability)
	s.router.POST("/villas/:id/quote", villas.Quote)
	s.router.GET("/favorites", auth, favorites.List)
	s.router.POST("/favorites/:villaId", auth, favorites.Toggle)
}

func (s *VillaHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestVillaHandlerSuite(t *testing.T) {
	suite.Run(t, new(VillaHandlerTestSuite))
}

func (s *VillaHandlerTestSuite) TestList() {
	s.Run("success: binds filters and splits comma separated amenities", func() {
		s.mockVillas.EXPECT().List(gomock.Any(), gomock.Any(), queries.Page{Limit: 10, Offset: 20}).
			DoAndReturn(func(_ context.Context, f queries.VillaFilter, _ queries.Page) ([]*queries.VillaView, error) {
				s.Equal([]string{"pool", "wifi", "gym"}, f.Amenities)
				s.Equal(queries.SortByPrice, f.SortBy)
				s.Require().NotNil(f.MaxPrice)
				s.Equal(int64(20000), *f.MaxPrice)
				return []*queries.VillaView{builder.NewVillaBuilder().BuildView()}, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/villas?amenities=pool,wifi&amenities=gym&sort=price&max_price=20000&limit=10&offset=20", nil, "")
		var body []resdto.VillaResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 1)
	})

	s.Run("error: 400 on unknown sort", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/villas?sort=newest", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

func (s *VillaHandlerTestSuite) TestGet() {
	view := builder.NewVillaBuilder().BuildView()

	s.Run("success: public caller never sees inactive villas", func() {
		s.mockVillas.EXPECT().GetByID(gomock.Any(), view.ID, false).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/villas/"+view.ID.String(), nil, "")
		var body resdto.VillaResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.Name, body.Name)
	})

	s.Run("success: admin may read inactive villas", func() {
		s.role = user.RoleAdmin
		defer func() { s.role = user.RoleUser }()
		s.mockVillas.EXPECT().GetByID(gomock.Any(), view.ID, true).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin-view/villas/"+view.ID.String(), nil, bearerToken)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 404 for unknown villa", func() {
		s.mockVillas.EXPECT().GetByID(gomock.Any(), view.ID, false).Return(nil, queries.ErrVillaNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/villas/"+view.ID.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "villa not found")
	})
}

func (s *VillaHandlerTestSuite) TestAvailability() {
	villaID := uuid.New()
	date := booking.NewDate(2030, time.June, 20)

	s.Run("success: formats dates and hour slots", func() {
		s.mockAvailability.EXPECT().GetAvailability(gomock.Any(), villaID, &date).Return(&queries.AvailabilityView{
			VillaID:      villaID,
			BlockedDates: []booking.Date{booking.NewDate(2030, time.June, 21)},
			Date:         &date,
			BookedHours:  []int{9, 10},
		}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/villas/"+villaID.String()+"/availability?date=2030-06-20", nil, "")
		var body resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal([]string{"2030-06-21"}, body.BlockedDates)
		s.Equal([]string{"09:00", "10:00"}, body.BookedHours)
		s.Equal("2030-06-20", body.Date)
	})

	s.Run("error: 400 on malformed date", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/villas/"+villaID.String()+"/availability?date=20-06-2030", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

func (s *VillaHandlerTestSuite) TestQuote() {
	villaID := uuid.New()
	url := "/villas/" + villaID.String() + "/quote"

	s.Run("success: prices an hourly visit", func() {
		s.mockAvailability.EXPECT().Quote(gomock.Any(), villaID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, in queries.QuoteInput) (*queries.QuoteView, error) {
				s.True(in.Span.IsHourly())
				s.Equal(booking.StayWholeProperty, in.Stay)
				s.Equal(1, in.Guests)
				return &queries.QuoteView{BookingType: "hourly", StayType: "whole_property", Units: 3, Rate: 1500, Multiplier: 1, BasePrice: 4500, TaxAmount: 810, TotalPrice: 5310}, nil
			})

		req := map[string]any{"start_date": "2030-06-20", "start_time": "10:00", "end_time": "13:00"}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, req, "")
		var body resdto.QuoteResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(int64(5310), body.TotalPrice)
		s.Equal("INR", body.Currency)
	})

	s.Run("error: 400 when hourly end is not after start", func() {
		req := map[string]any{"start_date": "2030-06-20", "start_time": "13:00", "end_time": "13:00"}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, req, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

func (s *VillaHandlerTestSuite) TestFavorites() {
	villaID := uuid.New()

	s.Run("success: toggle reports the new state", func() {
		s.mockFavCommands.EXPECT().Toggle(gomock.Any(), s.userID, villaID).Return(true, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/favorites/"+villaID.String(), nil, bearerToken)
		var body resdto.FavoriteToggleResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.Favorited)
		s.Equal(villaID.String(), body.VillaID)
	})

	s.Run("error: 404 when the villa is gone", func() {
		s.mockFavCommands.EXPECT().Toggle(gomock.Any(), s.userID, villaID).Return(false, queries.ErrVillaNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/favorites/"+villaID.String(), nil, bearerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "villa not found")
	})

	s.Run("success: lists favorite villas", func() {
		s.mockFavQueries.EXPECT().ListVillas(gomock.Any(), s.userID).Return([]*queries.FavoriteVillaView{
			{VillaView: *builder.NewVillaBuilder().BuildView(), FavoritedAt: time.Now()},
		}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/favorites", nil, bearerToken)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})
}
