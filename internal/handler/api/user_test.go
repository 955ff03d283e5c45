//go:build unit

package api_test

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"rentalhub/internal/domain/auth"
	"rentalhub/internal/handler/api"
	"rentalhub/internal/pkg/errs"
	"rentalhub/internal/usecase/commands"
	"rentalhub/internal/usecase/queries"
	"rentalhub/tests/common/builder"
	"rentalhub/tests/common/httptest"
	"rentalhub/tests/common/testutil"
	commandsmock "rentalhub/tests/mock/commands"
	queriesmock "rentalhub/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type UserHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockCtrl         *gomock.Controller
	mockUserCommands *commandsmock.MockUserCommands
	mockUserQueries  *queriesmock.MockUserQueries
	mockFavCommands  *commandsmock.MockFavoriteCommands
	mockListingQuery *queriesmock.MockListingQueries
	userID           uuid.UUID
	principal        auth.Principal
}

func (s *UserHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockUserCommands = commandsmock.NewMockUserCommands(s.mockCtrl)
	s.mockUserQueries = queriesmock.NewMockUserQueries(s.mockCtrl)
	s.mockFavCommands = commandsmock.NewMockFavoriteCommands(s.mockCtrl)
	s.mockListingQuery = queriesmock.NewMockListingQueries(s.mockCtrl)
	s.userID = uuid.New()
	s.principal = auth.Principal{UserID: s.userID}

	users := api.NewUserHandler(s.mockUserCommands, s.mockUserQueries)
	favorites := api.NewFavoriteHandler(s.mockFavCommands, s.mockListingQuery)

	authed := s.router.Group("/api", fakeAuth(s.userID))
	authed.POST("/users", users.Register)
	authed.GET("/users/me", users.Me)
	authed.PATCH("/users/me", users.UpdateMe)
	authed.GET("/favorites", favorites.List)
	authed.POST("/favorites/:listingId", favorites.Add)
	authed.DELETE("/favorites/:listingId", favorites.Remove)
}

func (s *UserHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestUserHandlerSuite(t *testing.T) {
	suite.Run(t, new(UserHandlerTestSuite))
}

// ================================================================================
// Users
// ================================================================================

func (s *UserHandlerTestSuite) TestRegister() {
	b := builder.NewUserBuilder().WithID(s.userID)
	reqBody := b.BuildDTO()
	u, err := b.BuildDomain(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	s.Require().NoError(err)

	s.Run("success: returns the profile", func() {
		s.mockUserCommands.EXPECT().
			Register(gomock.Any(), s.principal, commands.RegisterUserInput{Name: b.Name, Email: b.Email}).
			Return(u, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/users", reqBody, "bearer-token")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(s.userID.String(), body["id"])
		s.Equal(b.Name, body["name"])
		s.Equal(*b.Email, body["email"])
	})

	s.Run("error: 400 on malformed email", func() {
		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("email", "not-an-email"))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/users", body, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 400 on name too long", func() {
		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("name", strings.Repeat("n", 101)))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/users", body, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 400 when the email belongs to someone else", func() {
		s.mockUserCommands.EXPECT().Register(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrDomainValidation).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/users", reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

func (s *UserHandlerTestSuite) TestMe() {
	view := builder.NewUserBuilder().WithID(s.userID).BuildReadModel()

	s.Run("success", func() {
		s.mockUserQueries.EXPECT().Me(gomock.Any(), s.principal).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/users/me", nil, "bearer-token")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.Name, body["name"])
	})

	s.Run("error: 404 before registration", func() {
		s.mockUserQueries.EXPECT().Me(gomock.Any(), s.principal).Return(nil, errs.ErrUserNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/users/me", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "User not found")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/users/me", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

func (s *UserHandlerTestSuite) TestUpdateMe() {
	name := "Renamed"
	u, err := builder.NewUserBuilder().WithID(s.userID).WithName(name).BuildDomain(time.Now())
	s.Require().NoError(err)

	s.Run("success: only given fields are patched", func() {
		s.mockUserCommands.EXPECT().
			UpdateProfile(gomock.Any(), s.principal, commands.UpdateProfileInput{Name: &name}).
			Return(u, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/api/users/me", map[string]any{"name": name}, "bearer-token")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(name, body["name"])
	})
}

// ================================================================================
// Favorites
// ================================================================================

func (s *UserHandlerTestSuite) TestFavorites() {
	listingID := uuid.New()
	url := "/api/favorites/" + listingID.String()

	s.Run("list", func() {
		view := builder.NewListingBuilder().WithID(listingID).BuildReadModel()
		s.mockListingQuery.EXPECT().Favorites(gomock.Any(), s.principal).
			Return([]*queries.ListingView{view}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/favorites", nil, "bearer-token")

		var body []map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 1)
		s.Equal(listingID.String(), body[0]["id"])
	})

	s.Run("add", func() {
		s.mockFavCommands.EXPECT().Add(gomock.Any(), s.principal, listingID).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("add: 404 on unknown listing", func() {
		s.mockFavCommands.EXPECT().Add(gomock.Any(), s.principal, listingID).Return(errs.ErrListingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Listing not found")
	})

	s.Run("remove", func() {
		s.mockFavCommands.EXPECT().Remove(gomock.Any(), s.principal, listingID).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/favorites/abc", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})
}
