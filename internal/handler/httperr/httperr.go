package httperr

import (
	"net/http"

	"rentalhub/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

type mapping struct {
	kind   error
	status int
	msg    string
}

// first match wins
var mappings = []mapping{
	{errs.ErrInvalidDateRange, http.StatusBadRequest, "Invalid date range"},
	{errs.ErrMissingFields, http.StatusBadRequest, "Missing required fields"},
	{errs.ErrDomainValidation, http.StatusBadRequest, "Invalid request"},
	{errs.ErrListingNotFound, http.StatusNotFound, "Listing not found"},
	{errs.ErrReservationNotFound, http.StatusNotFound, "Reservation not found"},
	{errs.ErrUserNotFound, http.StatusNotFound, "User not found"},
	{errs.ErrDateConflict, http.StatusConflict, "Dates are already reserved"},
	{errs.ErrNotAuthorized, http.StatusForbidden, "Not authorized"},
	{errs.ErrStorage, http.StatusServiceUnavailable, "Storage unavailable"},
}

// StatusOf maps an error kind to its HTTP status and public message.
// Unclassified errors are internal.
func StatusOf(err error) (int, string) {
	for _, m := range mappings {
		if errs.Is(err, m.kind) {
			return m.status, m.msg
		}
	}
	return http.StatusInternalServerError, "Internal error"
}

// Abort renders err with the status of its kind.
func Abort(c *gin.Context, err error) {
	status, msg := StatusOf(err)
	AbortWithError(c, status, err, msg, nil)
}
