//go:build e2e

package reservation_test

import (
	"fmt"
	"net/http"
	"net/url"
	"testing"
	"time"

	resdto "lunchly/internal/handler/dto/response"
	"lunchly/tests/common/dbtest"
	"lunchly/tests/common/httptest"
	"lunchly/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	editURL     = "/api/reservations/%d/edit"
	customerURL = "/api/customers/%d"
)

type ReservationSuite struct {
	e2e.SharedSuite
}

func TestReservationSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(ReservationSuite))
}

// =============================================================================
// Edit form
// =============================================================================

func (s *ReservationSuite) TestEditForm() {
	s.Run("Normal case: returns the reservation together with its customer", func() {
		t := s.T()
		customerID := dbtest.CreateTestCustomer(t, s.DB, "Ada", "Lovelace")
		id := dbtest.CreateTestReservation(t, s.DB, customerID, 3, time.Date(2024, 3, 1, 18, 30, 0, 0, time.UTC))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(editURL, id), nil)

		var form resdto.ReservationFormResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &form)

		require.Equal(t, fmt.Sprintf(editURL, id), form.Action)
		require.Equal(t, "Ada Lovelace", form.Customer.FullName)
		require.NotNil(t, form.Reservation)

		startAt, err := time.Parse(time.RFC3339, form.Reservation.StartAt)
		require.NoError(t, err)
		require.True(t, startAt.Equal(time.Date(2024, 3, 1, 18, 30, 0, 0, time.UTC)))

		expected := resdto.ReservationResponse{ID: id, CustomerID: customerID, NumGuests: 3, StartAt: form.Reservation.StartAt}
		if diff := cmp.Diff(expected, *form.Reservation); diff != "" {
			t.Errorf("reservation mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("Error case: unknown reservation", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, fmt.Sprintf(editURL, 9999), nil)
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Reservation not found")
	})

	s.Run("Error case: malformed id", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/reservations/abc/edit", nil)
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid reservation ID format")
	})
}

// =============================================================================
// Update
// =============================================================================

func (s *ReservationSuite) TestUpdate() {
	s.Run("Normal case: reschedules and redirects to the owning customer", func() {
		t := s.T()
		customerID := dbtest.CreateTestCustomer(t, s.DB, "Ada", "Lovelace")
		id := dbtest.CreateTestReservation(t, s.DB, customerID, 2, time.Date(2024, 3, 1, 18, 30, 0, 0, time.UTC))
		otherID := dbtest.CreateTestReservation(t, s.DB, customerID, 5, time.Date(2024, 4, 1, 12, 0, 0, 0, time.UTC))

		w := httptest.PerformFormRequest(t, s.Router, http.MethodPost, fmt.Sprintf(editURL, id), url.Values{
			"numGuests": {"6"},
			"startAt":   {"2024-03-02T19:00:00Z"},
			"notes":     {"birthday"},
		})
		httptest.AssertRedirect(t, w, fmt.Sprintf(customerURL, customerID))

		dw := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(customerURL, customerID), nil)
		var detail resdto.CustomerDetailResponse
		httptest.AssertSuccessResponse(t, dw, http.StatusOK, &detail)
		require.Len(t, detail.Reservations, 2)

		updated, other := detail.Reservations[0], detail.Reservations[1]
		require.Equal(t, id, updated.ID)
		require.Equal(t, 6, updated.NumGuests)
		require.Equal(t, "birthday", updated.Notes)
		startAt, err := time.Parse(time.RFC3339, updated.StartAt)
		require.NoError(t, err)
		require.True(t, startAt.Equal(time.Date(2024, 3, 2, 19, 0, 0, 0, time.UTC)))

		require.Equal(t, otherID, other.ID)
		require.Equal(t, 5, other.NumGuests)
	})

	s.Run("Error case: unknown reservation", func() {
		w := httptest.PerformFormRequest(s.T(), s.Router, http.MethodPost, fmt.Sprintf(editURL, 9999), url.Values{
			"numGuests": {"2"},
			"startAt":   {"2024-03-02T19:00:00Z"},
		})
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Reservation not found")
	})

	s.Run("Error case: unparseable start time", func() {
		t := s.T()
		customerID := dbtest.CreateTestCustomer(t, s.DB, "Ada", "Lovelace")
		id := dbtest.CreateTestReservation(t, s.DB, customerID, 2, time.Date(2024, 3, 1, 18, 30, 0, 0, time.UTC))

		w := httptest.PerformFormRequest(t, s.Router, http.MethodPost, fmt.Sprintf(editURL, id), url.Values{
			"numGuests": {"2"},
			"startAt":   {"next tuesday"},
		})
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid start time")
	})

	s.Run("Error case: zero guests", func() {
		t := s.T()
		customerID := dbtest.CreateTestCustomer(t, s.DB, "Ada", "Lovelace")
		id := dbtest.CreateTestReservation(t, s.DB, customerID, 2, time.Date(2024, 3, 1, 18, 30, 0, 0, time.UTC))

		w := httptest.PerformFormRequest(t, s.Router, http.MethodPost, fmt.Sprintf(editURL, id), url.Values{
			"numGuests": {"0"},
		})
		httptest.AssertErrorResponse(t, w, http.StatusUnprocessableEntity, "Domain validation failed")
	})
}
