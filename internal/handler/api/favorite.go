package api

import (
	"net/http"

	resdto "rentalhub/internal/handler/dto/response"
	"rentalhub/internal/handler/httperr"
	"rentalhub/internal/usecase/commands"
	"rentalhub/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type FavoriteHandler struct {
	cmds commands.FavoriteCommands
	q    queries.ListingQueries
}

func NewFavoriteHandler(cmds commands.FavoriteCommands, q queries.ListingQueries) *FavoriteHandler {
	return &FavoriteHandler{cmds: cmds, q: q}
}

// @Summary List favorites
// @Description Listings the caller marked as favorite, most recently favorited first
// @Tags favorites
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ListingResponse
// @Failure 401 {object} httperr.Response
// @Router /api/favorites [get]
func (h *FavoriteHandler) List(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	rows, err := h.q.Favorites(c.Request.Context(), principal)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromListingViews(rows))
}

// @Summary Add favorite
// @Tags favorites
// @Security BearerAuth
// @Param listingId path string true "Listing ID"
// @Success 204 "No Content"
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/favorites/{listingId} [post]
func (h *FavoriteHandler) Add(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "listingId")
	if !ok {
		return
	}
	if err := h.cmds.Add(c.Request.Context(), principal, id); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Remove favorite
// @Tags favorites
// @Security BearerAuth
// @Param listingId path string true "Listing ID"
// @Success 204 "No Content"
// @Failure 401 {object} httperr.Response
// @Router /api/favorites/{listingId} [delete]
func (h *FavoriteHandler) Remove(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "listingId")
	if !ok {
		return
	}
	if err := h.cmds.Remove(c.Request.Context(), principal, id); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
