package api

import (
	"net/http"

	"villanest/internal/domain/booking"
	"villanest/internal/domain/user"
	reqdto "villanest/internal/handler/dto/request"
	resdto "villanest/internal/handler/dto/response"
	"villanest/internal/handler/middleware"
	"villanest/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type VillaHandler struct {
	villas       queries.VillaQueries
	availability queries.AvailabilityQueries
}

func NewVillaHandler(villas queries.VillaQueries, availability queries.AvailabilityQueries) *VillaHandler {
	return &VillaHandler{villas: villas, availability: availability}
}

// @Summary List villas
// @Description Browse active villas with search, filters and sorting
// @Tags villas
// @Produce json
// @Param search query string false "Free-text search"
// @Param type query string false "Villa type"
// @Param location query string false "Exact location"
// @Param min_price query int false "Minimum nightly price"
// @Param max_price query int false "Maximum nightly price"
// @Param amenities query []string false "Required amenities"
// @Param sort query string false "rating or price"
// @Param limit query int false "Page size"
// @Param offset query int false "Offset"
// @Success 200 {array} resdto.VillaResponse
// @Failure 400 {object} httperr.Response
// @Router /villas [get]
func (h *VillaHandler) List(c *gin.Context) {
	var q reqdto.VillaListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		abortWithBindError(c, err)
		return
	}

	filter, page := q.ToFilter()
	views, err := h.villas.List(c.Request.Context(), filter, page)
	if err != nil {
		abortWithUseCaseError(c, err, "list villas")
		return
	}
	res, err := resdto.FromVillaList(views)
	if err != nil {
		abortWithUseCaseError(c, err, "map villas")
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Get villa
// @Description Villa detail; inactive villas are visible to admins only
// @Tags villas
// @Produce json
// @Param id path string true "Villa ID"
// @Success 200 {object} resdto.VillaResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /villas/{id} [get]
func (h *VillaHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	role, _ := middleware.GetUserRole(c)
	view, err := h.villas.GetByID(c.Request.Context(), id, role == user.RoleAdmin)
	if err != nil {
		abortWithUseCaseError(c, err, "get villa")
		return
	}
	res, err := resdto.FromVillaView(view)
	if err != nil {
		abortWithUseCaseError(c, err, "map villa")
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Villa availability
// @Description Blocked nightly dates from today, plus booked hours for the given date
// @Tags villas
// @Produce json
// @Param id path string true "Villa ID"
// @Param date query string false "Date (YYYY-MM-DD) for hourly slots"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /villas/{id}/availability [get]
func (h *VillaHandler) Availability(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var q reqdto.AvailabilityQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		abortWithBindError(c, err)
		return
	}

	var date *booking.Date
	if q.Date != "" {
		d, err := booking.ParseDate(q.Date)
		if err != nil {
			abortWithUseCaseError(c, err, "parse date")
			return
		}
		date = &d
	}

	view, err := h.availability.GetAvailability(c.Request.Context(), id, date)
	if err != nil {
		abortWithUseCaseError(c, err, "get availability")
		return
	}
	c.JSON(http.StatusOK, resdto.FromAvailabilityView(view))
}

// @Summary Price quote
// @Description Price a stay without booking it
// @Tags villas
// @Accept json
// @Produce json
// @Param id path string true "Villa ID"
// @Param request body reqdto.QuoteRequest true "Quote request"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /villas/{id}/quote [post]
func (h *VillaHandler) Quote(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req reqdto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}
	in, err := req.ToInput()
	if err != nil {
		abortWithUseCaseError(c, err, "quote")
		return
	}

	view, err := h.availability.Quote(c.Request.Context(), id, in)
	if err != nil {
		abortWithUseCaseError(c, err, "quote")
		return
	}
	c.JSON(http.StatusOK, resdto.FromQuoteView(view))
}
