package api

import (
	"net/http"

	reqdto "rentalhub/internal/handler/dto/request"
	resdto "rentalhub/internal/handler/dto/response"
	"rentalhub/internal/handler/httperr"
	"rentalhub/internal/usecase/commands"
	"rentalhub/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ListingHandler struct {
	cmds         commands.ListingCommands
	q            queries.ListingQueries
	availability queries.AvailabilityQueries
}

func NewListingHandler(
	cmds commands.ListingCommands,
	q queries.ListingQueries,
	availability queries.AvailabilityQueries,
) *ListingHandler {
	return &ListingHandler{cmds: cmds, q: q, availability: availability}
}

// @Summary Search listings
// @Description Filter listings by attributes. With both startDate and endDate, listings booked on any day of that window are excluded.
// @Tags listings
// @Produce json
// @Param userId query string false "Owner ID"
// @Param category query string false "Category"
// @Param roomCount query int false "Minimum rooms"
// @Param guestCount query int false "Minimum guests"
// @Param bathroomCount query int false "Minimum bathrooms"
// @Param locationValue query string false "Location code"
// @Param minPrice query int false "Minimum nightly price"
// @Param maxPrice query int false "Maximum nightly price"
// @Param startDate query string false "First day of stay (YYYY-MM-DD)"
// @Param endDate query string false "Last day of stay (YYYY-MM-DD)"
// @Param cursor query string false "Cursor from a previous page"
// @Param limit query int false "Page size (default 50, max 200)"
// @Success 200 {object} resdto.ListingPageResponse
// @Failure 400 {object} httperr.Response
// @Router /api/listings [get]
func (h *ListingHandler) Search(c *gin.Context) {
	var query reqdto.SearchListingsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	filters, err := query.ToFilters()
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	page, err := query.ToPage()
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	rows, next, err := h.q.Search(c.Request.Context(), filters, page)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromListingPage(rows, next))
}

// @Summary Create listing
// @Description Publish a listing owned by the caller
// @Tags listings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateListingRequest true "Listing"
// @Success 201 {object} resdto.ListingResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/listings [post]
func (h *ListingHandler) Create(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	var req reqdto.CreateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	l, err := h.cmds.Create(c.Request.Context(), principal, req.ToInput())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Header("Location", "/api/listings/"+l.ID().String())
	c.JSON(http.StatusCreated, resdto.FromListing(l))
}

// @Summary Get listing
// @Tags listings
// @Produce json
// @Param id path string true "Listing ID"
// @Success 200 {object} resdto.ListingDetailResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/listings/{id} [get]
func (h *ListingHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	v, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromListingDetail(v))
}

// @Summary Delete listing
// @Description Owner only. Deletes the listing's reservations as well.
// @Tags listings
// @Security BearerAuth
// @Param id path string true "Listing ID"
// @Success 204 "No Content"
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/listings/{id} [delete]
func (h *ListingHandler) Delete(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), principal, id); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Listing availability
// @Description Every booked day of the listing, ascending
// @Tags listings
// @Produce json
// @Param id path string true "Listing ID"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 404 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/listings/{id}/availability [get]
func (h *ListingHandler) Availability(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	v, err := h.availability.GetAvailability(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAvailability(v))
}

// @Summary Price quote
// @Description Nights and total price for a stay; availability is not checked
// @Tags listings
// @Produce json
// @Param id path string true "Listing ID"
// @Param startDate query string true "First day (YYYY-MM-DD)"
// @Param endDate query string true "Last day (YYYY-MM-DD)"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/listings/{id}/quote [get]
func (h *ListingHandler) Quote(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var query reqdto.QuoteQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	start, end, err := query.Dates()
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	v, err := h.availability.Quote(c.Request.Context(), id, start, end)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromQuote(v))
}
