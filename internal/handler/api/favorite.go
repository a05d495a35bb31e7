package api

import (
	"net/http"

	resdto "villanest/internal/handler/dto/response"
	"villanest/internal/usecase/commands"
	"villanest/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type FavoriteHandler struct {
	cmds commands.FavoriteCommands
	q    queries.FavoriteQueries
}

func NewFavoriteHandler(cmds commands.FavoriteCommands, q queries.FavoriteQueries) *FavoriteHandler {
	return &FavoriteHandler{cmds: cmds, q: q}
}

// @Summary List favorites
// @Tags favorites
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.FavoriteVillaResponse
// @Failure 401 {object} httperr.Response
// @Router /favorites [get]
func (h *FavoriteHandler) List(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	views, err := h.q.ListVillas(c.Request.Context(), userID)
	if err != nil {
		abortWithUseCaseError(c, err, "list favorites")
		return
	}
	res, err := resdto.FromFavoriteList(views)
	if err != nil {
		abortWithUseCaseError(c, err, "map favorites")
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Toggle favorite
// @Description Adds the villa to favorites, or removes it if already there
// @Tags favorites
// @Produce json
// @Security BearerAuth
// @Param villaId path string true "Villa ID"
// @Success 200 {object} resdto.FavoriteToggleResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /favorites/{villaId}/toggle [post]
func (h *FavoriteHandler) Toggle(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	villaID, ok := parseIDParam(c, "villaId")
	if !ok {
		return
	}

	favorited, err := h.cmds.Toggle(c.Request.Context(), userID, villaID)
	if err != nil {
		abortWithUseCaseError(c, err, "toggle favorite")
		return
	}
	c.JSON(http.StatusOK, resdto.FavoriteToggleResponse{VillaID: villaID.String(), Favorited: favorited})
}
