//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	"testing"

	"rentalhub/internal/domain/auth"
	"rentalhub/internal/handler/middleware"
	"rentalhub/tests/common/httptest"
	usecasemock "rentalhub/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newAuthRouter(t *testing.T, validator *usecasemock.MockTokenValidator, optional bool) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	m := middleware.NewAuthMiddleware(validator)
	mw := m.RequireAuth()
	if optional {
		mw = m.OptionalAuth()
	}
	r := gin.New()
	r.GET("/whoami", mw, func(c *gin.Context) {
		p, ok := middleware.GetPrincipal(c)
		if !ok {
			c.JSON(http.StatusOK, gin.H{"user": ""})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user": p.UserID.String()})
	})
	return r
}

func TestRequireAuth(t *testing.T) {
	userID := uuid.New()

	t.Run("valid token sets principal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		validator := usecasemock.NewMockTokenValidator(ctrl)
		validator.EXPECT().ValidateToken("good").Return(auth.Principal{UserID: userID}, nil).Times(1)

		rec := httptest.PerformRequest(t, newAuthRouter(t, validator, false), http.MethodGet, "/whoami", nil, "good")

		var body map[string]string
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
		assert.Equal(t, userID.String(), body["user"])
	})

	t.Run("missing token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		validator := usecasemock.NewMockTokenValidator(ctrl)

		rec := httptest.PerformRequest(t, newAuthRouter(t, validator, false), http.MethodGet, "/whoami", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Access token required")
	})

	t.Run("invalid token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		validator := usecasemock.NewMockTokenValidator(ctrl)
		validator.EXPECT().ValidateToken("bad").Return(auth.Principal{}, errors.New("invalid token")).Times(1)

		rec := httptest.PerformRequest(t, newAuthRouter(t, validator, false), http.MethodGet, "/whoami", nil, "bad")
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Invalid or expired token")
	})
}

func TestOptionalAuth(t *testing.T) {
	t.Run("anonymous passes through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		validator := usecasemock.NewMockTokenValidator(ctrl)

		rec := httptest.PerformRequest(t, newAuthRouter(t, validator, true), http.MethodGet, "/whoami", nil, "")

		var body map[string]string
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
		assert.Empty(t, body["user"])
	})

	t.Run("invalid token is ignored", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		validator := usecasemock.NewMockTokenValidator(ctrl)
		validator.EXPECT().ValidateToken("bad").Return(auth.Principal{}, errors.New("expired")).Times(1)

		rec := httptest.PerformRequest(t, newAuthRouter(t, validator, true), http.MethodGet, "/whoami", nil, "bad")

		var body map[string]string
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
		assert.Empty(t, body["user"])
	})
}
