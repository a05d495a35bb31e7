package api

import (
	"net/http"

	reqdto "villanest/internal/handler/dto/request"
	resdto "villanest/internal/handler/dto/response"
	"villanest/internal/usecase/commands"
	"villanest/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AdminHandler serves the admin console. Routes are mounted behind
// RequireRoleAtLeast(admin).
type AdminHandler struct {
	villaCmds   commands.VillaCommands
	bookingCmds commands.BookingCommands
	reviewCmds  commands.ReviewCommands
	villas      queries.VillaQueries
	bookings    queries.BookingQueries
	reviews     queries.ReviewQueries
	analytics   queries.AnalyticsQueries
}

func NewAdminHandler(
	villaCmds commands.VillaCommands,
	bookingCmds commands.BookingCommands,
	reviewCmds commands.ReviewCommands,
	villas queries.VillaQueries,
	bookings queries.BookingQueries,
	reviews queries.ReviewQueries,
	analytics queries.AnalyticsQueries,
) *AdminHandler {
	return &AdminHandler{
		villaCmds:   villaCmds,
		bookingCmds: bookingCmds,
		reviewCmds:  reviewCmds,
		villas:      villas,
		bookings:    bookings,
		reviews:     reviews,
		analytics:   analytics,
	}
}

// @Summary Create villa
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.VillaRequest true "Villa"
// @Success 201 {object} resdto.VillaResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /admin/villas [post]
func (h *AdminHandler) CreateVilla(c *gin.Context) {
	var req reqdto.VillaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}
	params, err := req.ToParams()
	if err != nil {
		abortWithUseCaseError(c, err, "create villa")
		return
	}

	ctx := c.Request.Context()
	result, err := h.villaCmds.Create(ctx, params)
	if err != nil {
		abortWithUseCaseError(c, err, "create villa")
		return
	}
	h.respondVilla(c, http.StatusCreated, result.VillaID)
}

// @Summary Update villa
// @Description Partial update; omitted fields keep their value
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Villa ID"
// @Param request body reqdto.UpdateVillaRequest true "Villa fields"
// @Success 200 {object} resdto.VillaResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/villas/{id} [put]
func (h *AdminHandler) UpdateVilla(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdateVillaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}

	ctx := c.Request.Context()
	existing, err := h.villas.GetByID(ctx, id, true)
	if err != nil {
		abortWithUseCaseError(c, err, "update villa")
		return
	}
	params, err := req.ToParams(existing)
	if err != nil {
		abortWithUseCaseError(c, err, "update villa")
		return
	}
	if err := h.villaCmds.Update(ctx, id, params); err != nil {
		abortWithUseCaseError(c, err, "update villa")
		return
	}
	h.respondVilla(c, http.StatusOK, id)
}

// @Summary Deactivate villa
// @Description Hides the villa from the catalog; bookings are kept
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Villa ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /admin/villas/{id} [delete]
func (h *AdminHandler) DeactivateVilla(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.villaCmds.Deactivate(c.Request.Context(), id); err != nil {
		abortWithUseCaseError(c, err, "deactivate villa")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AdminHandler) respondVilla(c *gin.Context, status int, id uuid.UUID) {
	view, err := h.villas.GetByID(c.Request.Context(), id, true)
	if err != nil {
		abortWithUseCaseError(c, err, "load villa")
		return
	}
	res, err := resdto.FromVillaView(view)
	if err != nil {
		abortWithUseCaseError(c, err, "map villa")
		return
	}
	c.JSON(status, res)
}

// @Summary List bookings
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param status query string false "confirmed, completed or cancelled"
// @Param villa_id query string false "Villa ID"
// @Param limit query int false "Page size"
// @Param offset query int false "Offset"
// @Success 200 {array} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Router /admin/bookings [get]
func (h *AdminHandler) ListBookings(c *gin.Context) {
	var q reqdto.BookingListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		abortWithBindError(c, err)
		return
	}
	filter, page, err := q.ToFilter()
	if err != nil {
		abortWithBindError(c, err)
		return
	}

	views, err := h.bookings.ListAll(c.Request.Context(), filter, page)
	if err != nil {
		abortWithUseCaseError(c, err, "list bookings")
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingList(views))
}

// @Summary Set booking status
// @Description Only confirmed bookings can move, to completed or cancelled
// @Tags admin
// @Accept json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.UpdateBookingStatusRequest true "Target status"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/bookings/{id}/status [patch]
func (h *AdminHandler) SetBookingStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}
	status, err := req.ToDomain()
	if err != nil {
		abortWithUseCaseError(c, err, "set booking status")
		return
	}
	if err := h.bookingCmds.SetStatus(c.Request.Context(), id, status); err != nil {
		abortWithUseCaseError(c, err, "set booking status")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List reviews
// @Description All reviews including hidden ones
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param visible query bool false "Filter by visibility"
// @Param villa_id query string false "Villa ID"
// @Param limit query int false "Page size"
// @Param offset query int false "Offset"
// @Success 200 {array} resdto.ReviewResponse
// @Failure 400 {object} httperr.Response
// @Router /admin/reviews [get]
func (h *AdminHandler) ListReviews(c *gin.Context) {
	var q reqdto.ReviewListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		abortWithBindError(c, err)
		return
	}
	filter, page, err := q.ToFilter()
	if err != nil {
		abortWithBindError(c, err)
		return
	}

	views, err := h.reviews.ListForAdmin(c.Request.Context(), filter, page)
	if err != nil {
		abortWithUseCaseError(c, err, "list reviews")
		return
	}
	c.JSON(http.StatusOK, resdto.FromReviewViews(views))
}

// @Summary Set review visibility
// @Description Hidden reviews drop out of the villa rating
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Review ID"
// @Param request body reqdto.ReviewVisibilityRequest true "Visibility"
// @Success 200 {object} resdto.RatingSummaryResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/reviews/{id}/visibility [patch]
func (h *AdminHandler) SetReviewVisibility(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req reqdto.ReviewVisibilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}

	summary, err := h.reviewCmds.SetVisibility(c.Request.Context(), id, *req.IsVisible)
	if err != nil {
		abortWithUseCaseError(c, err, "set review visibility")
		return
	}
	c.JSON(http.StatusOK, resdto.FromSummary(summary))
}

// @Summary Analytics
// @Description Booking and revenue totals, daily revenue, top villas, platform rating
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param days query int false "Revenue window in days (default 30)"
// @Success 200 {object} resdto.AnalyticsResponse
// @Failure 400 {object} httperr.Response
// @Router /admin/analytics [get]
func (h *AdminHandler) Analytics(c *gin.Context) {
	var q reqdto.AnalyticsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		abortWithBindError(c, err)
		return
	}

	view, err := h.analytics.Get(c.Request.Context(), q.Days)
	if err != nil {
		abortWithUseCaseError(c, err, "analytics")
		return
	}
	res, err := resdto.FromAnalyticsView(view)
	if err != nil {
		abortWithUseCaseError(c, err, "map analytics")
		return
	}
	c.JSON(http.StatusOK, res)
}
