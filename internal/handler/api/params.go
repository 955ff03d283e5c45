package api

import (
	"errors"
	"net/http"

	"rentalhub/internal/domain/auth"
	"rentalhub/internal/handler/httperr"
	"rentalhub/internal/handler/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var errUnauthenticated = errors.New("request is not authenticated")

// requirePrincipal aborts with 401 when RequireAuth did not run or resolved nobody.
func requirePrincipal(c *gin.Context) (auth.Principal, bool) {
	p, ok := middleware.GetPrincipal(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return auth.Principal{}, false
	}
	return p, true
}

func pathID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return uuid.Nil, false
	}
	return id, true
}
