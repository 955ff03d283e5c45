//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"rentalhub/internal/domain/auth"
	"rentalhub/internal/domain/listing"
	"rentalhub/internal/handler/api"
	reqdto "rentalhub/internal/handler/dto/request"
	"rentalhub/internal/pkg/errs"
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

type ListingHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockCtrl         *gomock.Controller
	mockCommands     *commandsmock.MockListingCommands
	mockQueries      *queriesmock.MockListingQueries
	mockAvailability *queriesmock.MockAvailabilityQueries
	handler          *api.ListingHandler
	userID           uuid.UUID
}

func (s *ListingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockListingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockListingQueries(s.mockCtrl)
	s.mockAvailability = queriesmock.NewMockAvailabilityQueries(s.mockCtrl)
	s.handler = api.NewListingHandler(s.mockCommands, s.mockQueries, s.mockAvailability)
	s.userID = uuid.New()

	authMiddleware := fakeAuth(s.userID)
	s.router.GET("/api/listings", s.handler.Search)
	s.router.POST("/api/listings", authMiddleware, s.handler.Create)
	s.router.GET("/api/listings/:id", s.handler.Get)
	s.router.DELETE("/api/listings/:id", authMiddleware, s.handler.Delete)
	s.router.GET("/api/listings/:id/availability", s.handler.Availability)
	s.router.GET("/api/listings/:id/quote", s.handler.Quote)
}

func (s *ListingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestListingHandlerSuite(t *testing.T) {
	suite.Run(t, new(ListingHandlerTestSuite))
}

type testCaseListing struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestSearch
// ================================================================================

func (s *ListingHandlerTestSuite) TestSearch() {
	view := builder.NewListingBuilder().BuildReadModel()

	s.Run("success: query parameters become typed filters", func() {
		s.mockQueries.EXPECT().
			Search(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, f listing.SearchFilters, page queries.Page) ([]*queries.ListingView, *string, error) {
				s.Require().NotNil(f.Category)
				s.Equal("Beach", *f.Category)
				s.Require().NotNil(f.GuestCount)
				s.Equal(3, *f.GuestCount)
				s.Require().NotNil(f.MaxPrice)
				s.Equal(int64(150), *f.MaxPrice)
				s.Require().NotNil(f.StartDate)
				s.True(f.StartDate.Equal(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)))
				s.Require().NotNil(f.EndDate)
				s.Nil(f.RoomCount)
				s.Nil(f.UserID)
				s.Equal(reqdto.DefaultSearchLimit, page.Limit)
				s.False(page.HasCursor())
				return []*queries.ListingView{view}, nil, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/api/listings?category=Beach&guestCount=3&maxPrice=150&startDate=2024-06-01&endDate=2024-06-05", nil, "")

		var body struct {
			Items      []map[string]any `json:"items"`
			NextCursor *string          `json:"nextCursor"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body.Items, 1)
		s.Equal(view.ID.String(), body.Items[0]["id"])
		s.Nil(body.NextCursor)
	})

	s.Run("success: cursor and limit are passed through", func() {
		after := builder.NewListingBuilder().BuildReadModel()
		cursor := queries.EncodeAfterCursor(after.CreatedAt, after.ID)
		next := "next-page"

		s.mockQueries.EXPECT().
			Search(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ listing.SearchFilters, page queries.Page) ([]*queries.ListingView, *string, error) {
				s.Equal(1, page.Limit)
				s.Equal(after.ID, page.AfterID)
				return []*queries.ListingView{view}, &next, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/listings?limit=1&cursor="+cursor, nil, "")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(next, body["nextCursor"])
	})

	s.Run("error: 400 on inverted window", func() {
		s.mockQueries.EXPECT().Search(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, nil, errs.ErrInvalidDateRange).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/listings?startDate=2024-06-05&endDate=2024-06-01", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid date range")
	})

	s.Run("error: 400 before querying", func() {
		for _, path := range []string{
			"/api/listings?cursor=garbage",
			"/api/listings?startDate=tomorrow",
			"/api/listings?userId=me",
			"/api/listings?roomCount=many",
			"/api/listings?roomCount=4294967297",
			"/api/listings?limit=1000",
		} {
			s.Run(path, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, path, nil, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: 503 on storage failure", func() {
		s.mockQueries.EXPECT().Search(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, nil, errs.ErrStorage).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/listings", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusServiceUnavailable, "Storage unavailable")
	})
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *ListingHandlerTestSuite) TestCreate() {
	url := "/api/listings"
	b := builder.NewListingBuilder().WithOwner(s.userID)
	reqBody := b.BuildDTO()
	created := b.BuildDomain()

	bound := []testCaseListing{
		{name: "price boundary OK (1)", mutate: testutil.Field("price", 1), expectCode: http.StatusCreated},
		{name: "price boundary invalid (0)", mutate: testutil.Field("price", 0), expectCode: http.StatusBadRequest},
		{name: "roomCount invalid (0)", mutate: testutil.Field("roomCount", 0), expectCode: http.StatusBadRequest},
		{name: "negative guestCount", mutate: testutil.Field("guestCount", -1), expectCode: http.StatusBadRequest},
		{name: "bathroomCount beyond int32", mutate: testutil.Field("bathroomCount", 4294967297), expectCode: http.StatusBadRequest},
	}
	missing := []testCaseListing{
		{name: "missing field: title", mutate: testutil.Field("title", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: category", mutate: testutil.Field("category", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: locationValue", mutate: testutil.Field("locationValue", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: imageSrc", mutate: testutil.Field("imageSrc", nil), expectCode: http.StatusBadRequest},
	}

	s.Run("success: returns 201 with Location", func() {
		s.mockCommands.EXPECT().
			Create(gomock.Any(), auth.Principal{UserID: s.userID}, b.BuildInput()).
			Return(created, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(created.ID().String(), body["id"])
		s.Equal(s.userID.String(), body["userId"])
		httptest.AssertCreatedAt(s.T(), rec, "/api/listings", created.ID())
	})

	s.Run("validation", func() {
		for _, group := range [][]testCaseListing{bound, missing} {
			for _, tc := range group {
				s.Run(tc.name, func() {
					if tc.expectCode == http.StatusCreated {
						s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
							Return(created, nil).Times(1)
					}
					body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
					rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
					if tc.expectCode == http.StatusCreated {
						httptest.AssertSuccessResponse(s.T(), rec, tc.expectCode, nil)
					} else {
						httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
					}
				})
			}
		}
	})

	s.Run("error: 404 when the caller has no profile", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrUserNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "User not found")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

// ================================================================================
// TestGet / TestDelete
// ================================================================================

func (s *ListingHandlerTestSuite) TestGet() {
	b := builder.NewListingBuilder()
	detail := b.BuildDetail("Host")

	s.Run("success: includes owner summary", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), b.ID).Return(detail, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/listings/"+b.ID.String(), nil, "")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(b.ID.String(), body["id"])
		s.Equal(b.Title, body["title"])
		owner, ok := body["owner"].(map[string]any)
		s.Require().True(ok)
		s.Equal("Host", owner["name"])
	})

	s.Run("error: 404 on unknown listing", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).Return(nil, errs.ErrListingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/listings/"+id.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Listing not found")
	})
}

func (s *ListingHandlerTestSuite) TestDelete() {
	id := uuid.New()
	url := "/api/listings/" + id.String()

	s.Run("success: returns 204", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), auth.Principal{UserID: s.userID}, id).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 403 for someone else's listing", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), gomock.Any(), id).Return(errs.ErrNotAuthorized).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Not authorized")
	})
}

// ================================================================================
// TestAvailability / TestQuote
// ================================================================================

func (s *ListingHandlerTestSuite) TestAvailability() {
	id := uuid.New()
	url := "/api/listings/" + id.String() + "/availability"

	s.Run("success: days rendered as YYYY-MM-DD", func() {
		view := &queries.AvailabilityView{
			ListingID: id,
			DisabledDays: []time.Time{
				time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
				time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC),
			},
		}
		s.mockAvailability.EXPECT().GetAvailability(gomock.Any(), id).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var body struct {
			DisabledDays []string `json:"disabledDays"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal([]string{"2024-06-01", "2024-06-02"}, body.DisabledDays)
	})

	s.Run("success: no bookings renders an empty list", func() {
		s.mockAvailability.EXPECT().GetAvailability(gomock.Any(), id).
			Return(&queries.AvailabilityView{ListingID: id}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), `"disabledDays":[]`)
	})

	s.Run("error: 404 on unknown listing", func() {
		s.mockAvailability.EXPECT().GetAvailability(gomock.Any(), id).Return(nil, errs.ErrListingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Listing not found")
	})
}

func (s *ListingHandlerTestSuite) TestQuote() {
	id := uuid.New()
	base := "/api/listings/" + id.String() + "/quote"

	s.Run("success: nights and total", func() {
		s.mockAvailability.EXPECT().
			Quote(gomock.Any(), id, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), time.Date(2024, 6, 4, 0, 0, 0, 0, time.UTC)).
			Return(&queries.QuoteView{ListingID: id, Nights: 3, TotalPrice: 300}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, base+"?startDate=2024-06-01&endDate=2024-06-04", nil, "")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(float64(3), body["nights"])
		s.Equal(float64(300), body["totalPrice"])
	})

	s.Run("error: maps usecase errors", func() {
		cases := []struct {
			name   string
			err    error
			status int
		}{
			{"missing dates", errs.ErrMissingFields, http.StatusBadRequest},
			{"inverted", errs.ErrInvalidDateRange, http.StatusBadRequest},
			{"unknown listing", errs.ErrListingNotFound, http.StatusNotFound},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockAvailability.EXPECT().Quote(gomock.Any(), id, gomock.Any(), gomock.Any()).Return(nil, tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, base+"?startDate=2024-06-04&endDate=2024-06-01", nil, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.status, "")
			})
		}
	})
}
