//go:build e2e

package reservation_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	nethttptest "net/http/httptest"
	"sync"
	"testing"

	"rentalhub/internal/handler/dto/response"
	"rentalhub/tests/common/authtest"
	"rentalhub/tests/common/builder"
	"rentalhub/tests/common/dbtest"
	"rentalhub/tests/common/httptest"
	"rentalhub/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	reservationsURL = "/api/reservations"
	availabilityURL = "/api/listings/%s/availability"
)

type ReservationSuite struct {
	e2e.SharedSuite
	jwt *authtest.JWTHelper
}

func (s *ReservationSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwt = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *ReservationSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestReservationSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(ReservationSuite))
}

// =============================================================================
// TestSubmitReservation - admission control
// =============================================================================

func (s *ReservationSuite) TestSubmitReservation() {
	s.Run("Normal case: free dates are admitted", func() {
		t := s.T()

		ownerID := dbtest.CreateTestUser(t, s.DB, "Host")
		guestID := dbtest.CreateTestUser(t, s.DB, "Guest")
		listingID := dbtest.CreateTestListing(t, s.DB, ownerID, "Seaside cabin", 100)
		token := s.jwt.GenerateToken(t, guestID)

		reqBody := builder.NewReservationBuilder().
			WithListing(listingID).
			WithDates("2030-07-01", "2030-07-03").
			WithTotalPrice(300).
			BuildDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, reqBody, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var actual response.ReservationResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &actual))

		expected := response.ReservationResponse{
			ListingID:  listingID,
			UserID:     guestID,
			TotalPrice: 300,
		}
		opts := []cmp.Option{
			cmpopts.IgnoreFields(response.ReservationResponse{}, "ID", "StartDate", "EndDate", "CreatedAt"),
		}
		if diff := cmp.Diff(expected, actual, opts...); diff != "" {
			t.Errorf("reservation response mismatch (-want +got):\n%s", diff)
		}
		require.Equal(t, "2030-07-01", actual.StartDate.Format("2006-01-02"))
		require.Equal(t, "2030-07-03", actual.EndDate.Format("2006-01-02"))
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "reservations"))
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "notification_jobs"))
	})

	s.Run("Error case: a shared boundary day conflicts", func() {
		t := s.T()

		ownerID := dbtest.CreateTestUser(t, s.DB, "Host")
		guestID := dbtest.CreateTestUser(t, s.DB, "Guest")
		listingID := dbtest.CreateTestListing(t, s.DB, ownerID, "Mountain hut", 80)
		dbtest.CreateTestReservation(t, s.DB, guestID, listingID, "2030-08-01", "2030-08-05", 400)
		token := s.jwt.GenerateToken(t, guestID)

		reqBody := builder.NewReservationBuilder().
			WithListing(listingID).
			WithDates("2030-08-05", "2030-08-07").
			BuildDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, reqBody, token)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "Dates are already reserved")
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "reservations"))
	})

	s.Run("Error case: inverted range is rejected before anything else", func() {
		t := s.T()

		guestID := dbtest.CreateTestUser(t, s.DB, "Guest")
		token := s.jwt.GenerateToken(t, guestID)

		body := map[string]any{
			"listingId": "",
			"startDate": "2030-09-10",
			"endDate":   "2030-09-01",
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, body, token)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid date range")
	})

	s.Run("Error case: unknown listing", func() {
		t := s.T()

		guestID := dbtest.CreateTestUser(t, s.DB, "Guest")
		token := s.jwt.GenerateToken(t, guestID)

		reqBody := builder.NewReservationBuilder().WithListing(uuid.New()).BuildDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, reqBody, token)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Listing not found")
	})

	s.Run("Error case: expired token", func() {
		t := s.T()

		guestID := dbtest.CreateTestUser(t, s.DB, "Guest")
		token := s.jwt.CreateExpiredToken(t, guestID)

		reqBody := builder.NewReservationBuilder().BuildDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, reqBody, token)
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Invalid or expired token")
	})
}

// =============================================================================
// TestConcurrentAdmission - overlapping submissions race for the same days
// =============================================================================

func (s *ReservationSuite) TestConcurrentAdmission() {
	s.Run("Only one of many overlapping submissions is admitted", func() {
		t := s.T()
		const workers = 8

		ownerID := dbtest.CreateTestUser(t, s.DB, "Host")
		listingID := dbtest.CreateTestListing(t, s.DB, ownerID, "Busy loft", 120)

		bodies := make([][]byte, workers)
		tokens := make([]string, workers)
		for i := range workers {
			guestID := dbtest.CreateTestUser(t, s.DB, fmt.Sprintf("Guest %d", i))
			tokens[i] = s.jwt.GenerateToken(t, guestID)
			// every range covers 2030-10-05
			start := fmt.Sprintf("2030-10-%02d", 1+i%4)
			dto := builder.NewReservationBuilder().
				WithListing(listingID).
				WithDates(start, "2030-10-06").
				BuildDTO()
			b, err := json.Marshal(dto)
			require.NoError(t, err)
			bodies[i] = b
		}

		codes := make([]int, workers)
		var wg sync.WaitGroup
		for i := range workers {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				req := nethttptest.NewRequest(http.MethodPost, reservationsURL, bytes.NewReader(bodies[i]))
				req.Header.Set("Content-Type", "application/json")
				req.Header.Set("Authorization", "Bearer "+tokens[i])
				w := nethttptest.NewRecorder()
				s.Router.ServeHTTP(w, req)
				codes[i] = w.Code
			}(i)
		}
		wg.Wait()

		var created, conflicted int
		for _, code := range codes {
			switch code {
			case http.StatusCreated:
				created++
			case http.StatusConflict:
				conflicted++
			}
		}
		require.Equal(t, 1, created, "codes: %v", codes)
		require.Equal(t, workers-1, conflicted, "codes: %v", codes)
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "reservations"))
	})
}

// =============================================================================
// TestAvailability - disabled days reflect admitted reservations
// =============================================================================

func (s *ReservationSuite) TestAvailability() {
	s.Run("Normal case: booked days are listed inclusively and in order", func() {
		t := s.T()

		ownerID := dbtest.CreateTestUser(t, s.DB, "Host")
		guestID := dbtest.CreateTestUser(t, s.DB, "Guest")
		listingID := dbtest.CreateTestListing(t, s.DB, ownerID, "City flat", 90)
		dbtest.CreateTestReservation(t, s.DB, guestID, listingID, "2030-11-10", "2030-11-11", 180)
		dbtest.CreateTestReservation(t, s.DB, guestID, listingID, "2030-11-01", "2030-11-03", 270)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(availabilityURL, listingID), nil, "")

		var actual response.AvailabilityResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &actual)

		expected := []string{"2030-11-01", "2030-11-02", "2030-11-03", "2030-11-10", "2030-11-11"}
		if diff := cmp.Diff(expected, actual.DisabledDays); diff != "" {
			t.Errorf("disabled days mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("Normal case: a listing without reservations has no disabled days", func() {
		t := s.T()

		ownerID := dbtest.CreateTestUser(t, s.DB, "Host")
		listingID := dbtest.CreateTestListing(t, s.DB, ownerID, "Empty barn", 50)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(availabilityURL, listingID), nil, "")

		var actual response.AvailabilityResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &actual)
		require.NotNil(t, actual.DisabledDays)
		require.Empty(t, actual.DisabledDays)
	})
}

// =============================================================================
// TestCancelReservation - guest or owner may cancel
// =============================================================================

func (s *ReservationSuite) TestCancelReservation() {
	s.Run("Normal case: owner cancels and the days free up", func() {
		t := s.T()

		ownerID := dbtest.CreateTestUser(t, s.DB, "Host")
		guestID := dbtest.CreateTestUser(t, s.DB, "Guest")
		listingID := dbtest.CreateTestListing(t, s.DB, ownerID, "Lake house", 150)
		reservationID := dbtest.CreateTestReservation(t, s.DB, guestID, listingID, "2030-12-01", "2030-12-02", 300)

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, reservationsURL+"/"+reservationID.String(), nil, s.jwt.GenerateToken(t, ownerID))
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
		require.Equal(t, 0, dbtest.CountRows(t, s.DB, "reservations"))

		reqBody := builder.NewReservationBuilder().
			WithListing(listingID).
			WithDates("2030-12-01", "2030-12-02").
			WithTotalPrice(300).
			BuildDTO()
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, reqBody, s.jwt.GenerateToken(t, guestID))
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	})

	s.Run("Error case: a stranger cannot cancel", func() {
		t := s.T()

		ownerID := dbtest.CreateTestUser(t, s.DB, "Host")
		guestID := dbtest.CreateTestUser(t, s.DB, "Guest")
		strangerID := dbtest.CreateTestUser(t, s.DB, "Stranger")
		listingID := dbtest.CreateTestListing(t, s.DB, ownerID, "Desert dome", 70)
		reservationID := dbtest.CreateTestReservation(t, s.DB, guestID, listingID, "2031-01-01", "2031-01-02", 140)

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, reservationsURL+"/"+reservationID.String(), nil, s.jwt.GenerateToken(t, strangerID))
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "Not authorized")
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "reservations"))
	})
}
