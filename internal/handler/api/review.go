package api

import (
	"net/http"

	reqdto "villanest/internal/handler/dto/request"
	resdto "villanest/internal/handler/dto/response"
	"villanest/internal/usecase/commands"
	"villanest/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	cmds commands.ReviewCommands
	q    queries.ReviewQueries
}

func NewReviewHandler(cmds commands.ReviewCommands, q queries.ReviewQueries) *ReviewHandler {
	return &ReviewHandler{cmds: cmds, q: q}
}

// @Summary Create review
// @Description Review a villa after a completed stay
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Villa ID"
// @Param request body reqdto.CreateReviewRequest true "Create review request"
// @Success 201 {object} resdto.CreateReviewResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /villas/{id}/reviews [post]
func (h *ReviewHandler) Create(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	villaID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req reqdto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}

	result, err := h.cmds.CreateReview(c.Request.Context(), req.ToCommand(villaID), userID)
	if err != nil {
		abortWithUseCaseError(c, err, "create review")
		return
	}
	c.JSON(http.StatusCreated, resdto.CreateReviewResponse{
		ReviewID: result.ReviewID.String(),
		Rating:   resdto.FromSummary(result.Summary),
	})
}

// @Summary List villa reviews
// @Description Visible reviews for a villa, newest first, cursor paginated
// @Tags reviews
// @Produce json
// @Param id path string true "Villa ID"
// @Param after query string false "Cursor from the previous page"
// @Param limit query int false "Page size"
// @Success 200 {object} resdto.ReviewListResponse
// @Failure 400 {object} httperr.Response
// @Router /villas/{id}/reviews [get]
func (h *ReviewHandler) ListByVilla(c *gin.Context) {
	villaID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var q reqdto.CursorQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		abortWithBindError(c, err)
		return
	}

	items, next, err := h.q.ListByVilla(c.Request.Context(), villaID, q.ToCursor(), q.Limit)
	if err != nil {
		abortWithUseCaseError(c, err, "list reviews")
		return
	}
	res := resdto.ReviewListResponse{Reviews: resdto.FromReviewList(items)}
	if next != nil {
		res.NextCursor = next.After
	}
	c.JSON(http.StatusOK, res)
}
