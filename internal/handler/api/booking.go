package api

import (
	"net/http"

	reqdto "villanest/internal/handler/dto/request"
	resdto "villanest/internal/handler/dto/response"
	"villanest/internal/handler/httperr"
	"villanest/internal/handler/middleware"
	"villanest/internal/usecase/commands"
	"villanest/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

// @Summary Create booking
// @Description Book a villa for nights or for hours on one day
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}
	in, err := req.ToInput()
	if err != nil {
		abortWithUseCaseError(c, err, "create booking")
		return
	}

	ctx := c.Request.Context()
	result, err := h.cmds.Create(ctx, userID, in)
	if err != nil {
		abortWithUseCaseError(c, err, "create booking")
		return
	}

	role, _ := middleware.GetUserRole(c)
	view, err := h.q.GetByID(ctx, userID, role, result.BookingID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load booking", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromBookingView(view))
}

// @Summary List my bookings
// @Description The caller's bookings, newest first, cursor paginated
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param after query string false "Cursor from the previous page"
// @Param limit query int false "Page size"
// @Success 200 {object} resdto.BookingListResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /bookings [get]
func (h *BookingHandler) ListMine(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var q reqdto.CursorQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		abortWithBindError(c, err)
		return
	}

	views, next, err := h.q.ListByUser(c.Request.Context(), userID, q.ToCursor(), q.Limit)
	if err != nil {
		abortWithUseCaseError(c, err, "list bookings")
		return
	}
	res := resdto.BookingListResponse{Bookings: resdto.FromBookingList(views)}
	if next != nil {
		res.NextCursor = next.After
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Get booking
// @Description Owners and admins only
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	role, _ := middleware.GetUserRole(c)
	view, err := h.q.GetByID(c.Request.Context(), userID, role, id)
	if err != nil {
		abortWithUseCaseError(c, err, "get booking")
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Cancel booking
// @Description Cancel a confirmed booking; completed and cancelled bookings are final
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings/{id}/cancel [post]
func (h *BookingHandler) Cancel(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	role, _ := middleware.GetUserRole(c)
	if err := h.cmds.Cancel(ctx, userID, role, id); err != nil {
		abortWithUseCaseError(c, err, "cancel booking")
		return
	}
	view, err := h.q.GetByID(ctx, userID, role, id)
	if err != nil {
		abortWithUseCaseError(c, err, "get booking")
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}
