//go:build e2e

package customer_test

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"

	resdto "lunchly/internal/handler/dto/response"
	"lunchly/tests/common/dbtest"
	"lunchly/tests/common/httptest"
	"lunchly/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	customersURL   = "/api/customers"
	customerURL    = "/api/customers/%d"
	searchURL      = "/api/customers/search?term=%s"
	bestURL        = "/api/customers/best"
	reservationURL = "/api/customers/%d/reservations"
)

type CustomerSuite struct {
	e2e.SharedSuite
}

func TestCustomerSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(CustomerSuite))
}

func (s *CustomerSuite) getList(path string) resdto.CustomerListResponse {
	t := s.T()
	w := httptest.PerformRequest(t, s.Router, http.MethodGet, path, nil)
	require.Equal(t, http.StatusOK, w.Code, "Response: %s", w.Body.String())

	var body resdto.CustomerListResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &body))
	return body
}

func fullNames(l resdto.CustomerListResponse) []string {
	out := make([]string, 0, len(l.Customers))
	for _, c := range l.Customers {
		out = append(out, c.FullName)
	}
	return out
}

// =============================================================================
// Create / detail / update
// =============================================================================

func (s *CustomerSuite) TestCreateCustomer() {
	s.Run("Normal case: form post creates a customer and redirects to it", func() {
		t := s.T()

		form := url.Values{
			"firstName":  {"Ada"},
			"middleName": {""},
			"lastName":   {"Lovelace"},
			"phone":      {"555-0100"},
			"notes":      {""},
		}
		w := httptest.PerformFormRequest(t, s.Router, http.MethodPost, customersURL, form)
		require.Equal(t, http.StatusSeeOther, w.Code, "Response: %s", w.Body.String())

		location := w.Header().Get("Location")
		require.True(t, strings.HasPrefix(location, customersURL+"/"), "unexpected Location %q", location)

		dw := httptest.PerformRequest(t, s.Router, http.MethodGet, location, nil)
		require.Equal(t, http.StatusOK, dw.Code)

		var detail resdto.CustomerDetailResponse
		require.NoError(t, httptest.DecodeResponseBody(t, dw.Body, &detail))

		expected := resdto.CustomerResponse{
			FirstName: "Ada",
			LastName:  "Lovelace",
			FullName:  "Ada Lovelace",
			Phone:     "555-0100",
		}
		if diff := cmp.Diff(expected, detail.Customer, cmpopts.IgnoreFields(resdto.CustomerResponse{}, "ID")); diff != "" {
			t.Errorf("customer mismatch (-want +got):\n%s", diff)
		}
		require.Equal(t, location, fmt.Sprintf(customerURL, detail.Customer.ID))
		require.Empty(t, detail.Reservations)

		var middleIsNull bool
		err := s.DB.QueryRow(context.Background(),
			"SELECT middle_name IS NULL FROM customers WHERE id = $1", detail.Customer.ID).Scan(&middleIsNull)
		require.NoError(t, err)
		require.True(t, middleIsNull, "empty optional fields are stored as NULL")
	})

	s.Run("Error case: missing last name", func() {
		t := s.T()

		w := httptest.PerformFormRequest(t, s.Router, http.MethodPost, customersURL, url.Values{"firstName": {"Ada"}})
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid request")
		require.Equal(t, 0, dbtest.CountRows(t, s.DB, "customers"))
	})
}

func (s *CustomerSuite) TestGetCustomer() {
	s.Run("Normal case: reservations ordered by start time", func() {
		t := s.T()
		id := dbtest.CreateTestCustomer(t, s.DB, "Grace", "Hopper")
		later := dbtest.CreateTestReservation(t, s.DB, id, 2, time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))
		earlier := dbtest.CreateTestReservation(t, s.DB, id, 4, time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(customerURL, id), nil)
		require.Equal(t, http.StatusOK, w.Code)

		var detail resdto.CustomerDetailResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &detail))
		require.Len(t, detail.Reservations, 2)
		require.Equal(t, earlier, detail.Reservations[0].ID)
		require.Equal(t, later, detail.Reservations[1].ID)
	})

	s.Run("Error case: unknown customer", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, fmt.Sprintf(customerURL, 9999), nil)
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Customer not found")
	})
}

func (s *CustomerSuite) TestUpdateCustomer() {
	s.Run("Normal case: only the target row changes", func() {
		t := s.T()
		target := dbtest.CreateTestCustomer(t, s.DB, "Ada", "Lovelace")
		other := dbtest.CreateTestCustomer(t, s.DB, "Charles", "Babbage")

		form := url.Values{
			"firstName":  {"Ada"},
			"middleName": {"Byron"},
			"lastName":   {"King"},
			"phone":      {""},
			"notes":      {"countess"},
		}
		w := httptest.PerformFormRequest(t, s.Router, http.MethodPost, fmt.Sprintf(customerURL, target)+"/edit", form)
		httptest.AssertRedirect(t, w, fmt.Sprintf(customerURL, target))

		var updated, untouched resdto.CustomerDetailResponse
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(customerURL, target), nil)
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &updated))
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(customerURL, other), nil)
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &untouched))

		require.Equal(t, "Ada Byron King", updated.Customer.FullName)
		require.Equal(t, "countess", updated.Customer.Notes)
		require.Equal(t, "Charles Babbage", untouched.Customer.FullName)
		require.Equal(t, "", untouched.Customer.Notes)
	})

	s.Run("Error case: unknown customer", func() {
		w := httptest.PerformFormRequest(s.T(), s.Router, http.MethodPost, fmt.Sprintf(customerURL, 9999)+"/edit",
			url.Values{"firstName": {"A"}, "lastName": {"B"}})
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Customer not found")
	})

	s.Run("Error case: blank first name is rejected", func() {
		t := s.T()
		id := dbtest.CreateTestCustomer(t, s.DB, "Ada", "Lovelace")

		w := httptest.PerformFormRequest(t, s.Router, http.MethodPost, fmt.Sprintf(customerURL, id)+"/edit",
			url.Values{"firstName": {"  "}, "lastName": {"Lovelace"}})
		httptest.AssertErrorResponse(t, w, http.StatusUnprocessableEntity, "Domain validation failed")
	})
}

// =============================================================================
// Lists
// =============================================================================

func (s *CustomerSuite) TestListCustomers() {
	s.Run("Normal case: ordered by last then first name with the latest reservation", func() {
		t := s.T()
		lovelace := dbtest.CreateTestCustomer(t, s.DB, "Ada", "Lovelace")
		dbtest.CreateTestCustomer(t, s.DB, "Charles", "Babbage")
		dbtest.CreateTestCustomer(t, s.DB, "Annabella", "Babbage")

		dbtest.CreateTestReservation(t, s.DB, lovelace, 2, time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
		latest := dbtest.CreateTestReservation(t, s.DB, lovelace, 3, time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))

		list := s.getList(customersURL)

		require.Equal(t, "Customers", list.Heading)
		require.Equal(t, []string{"Annabella Babbage", "Charles Babbage", "Ada Lovelace"}, fullNames(list))
		require.Nil(t, list.Customers[0].RecentReservation)
		require.NotNil(t, list.Customers[2].RecentReservation)
		require.Equal(t, latest, list.Customers[2].RecentReservation.ID)

		startAt, err := time.Parse(time.RFC3339, list.Customers[2].RecentReservation.StartAt)
		require.NoError(t, err)
		require.True(t, startAt.Equal(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)))
	})
}

func (s *CustomerSuite) TestSearchCustomers() {
	seed := func(t *testing.T) {
		dbtest.CreateTestCustomer(t, s.DB, "Ada", "Lovelace")
		dbtest.CreateTestCustomer(t, s.DB, "Grace", "Hopper")
		_, err := s.DB.Exec(context.Background(),
			"INSERT INTO customers (first_name, middle_name, last_name) VALUES ('Augusta', 'Ada', 'King')")
		require.NoError(t, err)
	}

	s.Run("Normal case: empty term returns the same customers as the list", func() {
		seed(s.T())

		all := s.getList(customersURL)
		found := s.getList(fmt.Sprintf(searchURL, ""))

		require.Equal(s.T(), "Search results for: ", found.Heading)
		require.Equal(s.T(), fullNames(all), fullNames(found))
	})

	s.Run("Normal case: case-insensitive match on any name part", func() {
		seed(s.T())

		found := s.getList(fmt.Sprintf(searchURL, "ADA"))

		require.Equal(s.T(), "ADA", found.Term)
		require.Equal(s.T(), []string{"Augusta Ada King", "Ada Lovelace"}, fullNames(found))
	})

	s.Run("Normal case: LIKE wildcards match literally", func() {
		seed(s.T())

		found := s.getList(fmt.Sprintf(searchURL, url.QueryEscape("%")))
		require.Empty(s.T(), found.Customers)
	})
}

func (s *CustomerSuite) TestBestCustomers() {
	s.Run("Normal case: top ten by reservation count, customers without reservations excluded", func() {
		t := s.T()
		start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

		// customer i gets i reservations; "Zero" gets none
		var ids []int64
		for i := 1; i <= 12; i++ {
			id := dbtest.CreateTestCustomer(t, s.DB, fmt.Sprintf("C%02d", i), "Guest")
			for j := 0; j < i; j++ {
				dbtest.CreateTestReservation(t, s.DB, id, 2, start.AddDate(0, 0, j))
			}
			ids = append(ids, id)
		}
		dbtest.CreateTestCustomer(t, s.DB, "Zero", "Visits")

		best := s.getList(bestURL)

		require.Equal(t, "Best Customers!", best.Heading)
		require.Len(t, best.Customers, 10)
		for i, c := range best.Customers {
			require.Equal(t, ids[11-i], c.ID, "position %d", i)
			require.NotEqual(t, "Zero Visits", c.FullName)
		}
	})

	s.Run("Normal case: nobody has reservations", func() {
		dbtest.CreateTestCustomer(s.T(), s.DB, "Ada", "Lovelace")

		best := s.getList(bestURL)
		require.Empty(s.T(), best.Customers)
	})
}

// =============================================================================
// Add reservation
// =============================================================================

func (s *CustomerSuite) TestAddReservation() {
	s.Run("Normal case: reservation appears on the customer's detail page", func() {
		t := s.T()
		id := dbtest.CreateTestCustomer(t, s.DB, "Ada", "Lovelace")

		w := httptest.PerformFormRequest(t, s.Router, http.MethodPost, fmt.Sprintf(reservationURL, id), url.Values{
			"numGuests": {"4"},
			"startAt":   {"2024-03-01T18:30:00Z"},
			"notes":     {"window"},
		})
		httptest.AssertRedirect(t, w, fmt.Sprintf(customerURL, id))

		dw := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(customerURL, id), nil)
		var detail resdto.CustomerDetailResponse
		require.NoError(t, httptest.DecodeResponseBody(t, dw.Body, &detail))
		require.Len(t, detail.Reservations, 1)
		require.Equal(t, 4, detail.Reservations[0].NumGuests)
		require.Equal(t, "window", detail.Reservations[0].Notes)
		require.Equal(t, id, detail.Reservations[0].CustomerID)
	})

	s.Run("Error case: unknown customer", func() {
		w := httptest.PerformFormRequest(s.T(), s.Router, http.MethodPost, fmt.Sprintf(reservationURL, 9999), url.Values{
			"numGuests": {"2"},
			"startAt":   {"2024-03-01T18:30:00Z"},
		})
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Customer not found")
		require.Equal(s.T(), 0, dbtest.CountRows(s.T(), s.DB, "reservations"))
	})

	s.Run("Error case: zero guests", func() {
		t := s.T()
		id := dbtest.CreateTestCustomer(t, s.DB, "Ada", "Lovelace")

		w := httptest.PerformFormRequest(t, s.Router, http.MethodPost, fmt.Sprintf(reservationURL, id), url.Values{
			"numGuests": {"0"},
			"startAt":   {"2024-03-01T18:30:00Z"},
		})
		httptest.AssertErrorResponse(t, w, http.StatusUnprocessableEntity, "Domain validation failed")
	})
}
