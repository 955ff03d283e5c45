//go:build unit

package api_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"rentalhub/internal/domain/auth"
	"rentalhub/internal/domain/reservation"
	"rentalhub/internal/handler/api"
	"rentalhub/internal/handler/middleware"
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

// fakeAuth stands in for RequireAuth: any bearer token resolves to userID.
func fakeAuth(userID uuid.UUID) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		middleware.SetPrincipal(c, auth.Principal{UserID: userID})
		c.Next()
	}
}

type ReservationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReservationCommands
	mockQueries  *queriesmock.MockReservationQueries
	handler      *api.ReservationHandler
	userID       uuid.UUID
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.handler = api.NewReservationHandler(s.mockCommands, s.mockQueries)
	s.userID = uuid.New()

	authMiddleware := fakeAuth(s.userID)
	s.router.POST("/api/reservations", authMiddleware, s.handler.Submit)
	s.router.DELETE("/api/reservations/:id", authMiddleware, s.handler.Cancel)
	s.router.GET("/api/reservations", s.handler.List)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

// ================================================================================
// TestSubmit
// ================================================================================

func (s *ReservationHandlerTestSuite) TestSubmit() {
	url := "/api/reservations"
	b := builder.NewReservationBuilder().WithUser(s.userID)
	reqBody := b.BuildDTO()
	created := b.BuildDomain()

	s.Run("success: returns 201 with the admitted reservation", func() {
		s.mockCommands.EXPECT().
			Submit(gomock.Any(), auth.Principal{UserID: s.userID}, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ auth.Principal, in commands.SubmitReservationInput) (*reservation.Reservation, error) {
				s.Equal(b.ListingID, in.ListingID)
				s.True(in.StartDate.Equal(b.StartDate))
				s.True(in.EndDate.Equal(b.EndDate))
				s.Equal(b.TotalPrice, in.TotalPrice)
				return created, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(created.ID().String(), body["id"])
		s.Equal(float64(b.TotalPrice), body["totalPrice"])
		httptest.AssertCreatedAt(s.T(), rec, "/api/reservations", created.ID())
	})

	s.Run("success: accepts RFC 3339 timestamps", func() {
		body := testutil.DtoMap(s.T(), reqBody,
			testutil.Field("startDate", "2024-06-01T00:00:00.000Z"),
			testutil.Field("endDate", "2024-06-03T00:00:00Z"),
		)
		s.mockCommands.EXPECT().
			Submit(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ auth.Principal, in commands.SubmitReservationInput) (*reservation.Reservation, error) {
				s.True(in.StartDate.Equal(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)))
				return created, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("missing fields are forwarded for ordered validation", func() {
		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("startDate", nil), testutil.Field("listingId", nil))
		s.mockCommands.EXPECT().
			Submit(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ auth.Principal, in commands.SubmitReservationInput) (*reservation.Reservation, error) {
				s.True(in.StartDate.IsZero())
				s.Equal(uuid.Nil, in.ListingID)
				return nil, errs.ErrMissingFields
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Missing required fields")
	})

	s.Run("error: 400 on unparseable input without calling the usecase", func() {
		cases := []struct {
			name   string
			mutate func(map[string]any)
		}{
			{name: "bad start date", mutate: testutil.Field("startDate", "June 1st")},
			{name: "bad end date", mutate: testutil.Field("endDate", "2024-13-40")},
			{name: "bad listing id", mutate: testutil.Field("listingId", "not-a-uuid")},
			{name: "price as string", mutate: testutil.Field("totalPrice", "200")},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{"inverted range", errs.ErrInvalidDateRange, http.StatusBadRequest, "Invalid date range"},
			{"missing fields", errs.ErrMissingFields, http.StatusBadRequest, "Missing required fields"},
			{"unknown listing", errs.Mark(errors.New("no rows"), errs.ErrListingNotFound), http.StatusNotFound, "Listing not found"},
			{"dates taken", errs.ErrDateConflict, http.StatusConflict, "Dates are already reserved"},
			{"not registered", errs.ErrUserNotFound, http.StatusNotFound, "User not found"},
			{"lock timeout", errs.Mark(errors.New("canceling statement due to lock timeout"), errs.ErrStorage), http.StatusServiceUnavailable, "Storage unavailable"},
			{"unclassified", errors.New("boom"), http.StatusInternalServerError, "Internal error"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Submit(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestCancel
// ================================================================================

func (s *ReservationHandlerTestSuite) TestCancel() {
	id := uuid.New()
	url := "/api/reservations/" + id.String()

	s.Run("success: returns 204", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), auth.Principal{UserID: s.userID}, id).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/api/reservations/xyz", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: 403 when caller is neither guest nor owner", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), gomock.Any(), id).Return(errs.ErrNotAuthorized).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Not authorized")
	})

	s.Run("error: 404 on unknown reservation", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), gomock.Any(), id).Return(errs.ErrReservationNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Reservation not found")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

// ================================================================================
// TestList
// ================================================================================

func (s *ReservationHandlerTestSuite) TestList() {
	listingID := uuid.New()
	view := builder.NewReservationBuilder().WithListing(listingID).BuildReadModel()

	s.Run("success: filters by listing", func() {
		s.mockQueries.EXPECT().
			List(gomock.Any(), queries.ReservationFilter{ListingID: &listingID}).
			Return([]*queries.ReservationView{view}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/reservations?listingId="+listingID.String(), nil, "")

		var body []map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 1)
		s.Equal(view.ID.String(), body[0]["id"])
		s.Equal(listingID.String(), body[0]["listingId"])
		s.Contains(body[0], "listing")
	})

	s.Run("success: empty result renders an empty array", func() {
		authorID := uuid.New()
		s.mockQueries.EXPECT().
			List(gomock.Any(), queries.ReservationFilter{AuthorID: &authorID}).
			Return([]*queries.ReservationView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/reservations?authorId="+authorID.String(), nil, "")
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`[]`, rec.Body.String())
	})

	s.Run("error: 400 without any filter", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), queries.ReservationFilter{}).Return(nil, errs.ErrMissingFields).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/reservations", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Missing required fields")
	})

	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/reservations?userId=nope", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}
