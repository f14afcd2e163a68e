package queries

import (
	"time"

	"lunchly/internal/domain/customer"
	"lunchly/internal/domain/reservation"
)

const (
	HeadingCustomers     = "Customers"
	HeadingBestCustomers = "Best Customers!"
	searchHeadingPrefix  = "Search results for: "
)

type CustomerView struct {
	ID         int64  `json:"id"`
	FirstName  string `json:"first_name"`
	MiddleName string `json:"middle_name"`
	LastName   string `json:"last_name"`
	FullName   string `json:"full_name"`
	Phone      string `json:"phone"`
	Notes      string `json:"notes"`
}

type ReservationView struct {
	ID         int64     `json:"id"`
	CustomerID int64     `json:"customer_id"`
	NumGuests  int       `json:"num_guests"`
	StartAt    time.Time `json:"start_at"`
	Notes      string    `json:"notes"`
}

// CustomerListItem pairs a customer with its latest reservation, if any.
type CustomerListItem struct {
	Customer          CustomerView     `json:"customer"`
	RecentReservation *ReservationView `json:"recent_reservation,omitempty"`
}

type CustomerList struct {
	Heading   string              `json:"heading"`
	Term      string              `json:"term,omitempty"`
	Customers []*CustomerListItem `json:"customers"`
}

type CustomerDetail struct {
	Customer     CustomerView       `json:"customer"`
	Reservations []*ReservationView `json:"reservations"`
}

type ReservationEdit struct {
	Reservation ReservationView `json:"reservation"`
	Customer    CustomerView    `json:"customer"`
}

func NewCustomerView(c *customer.Customer) CustomerView {
	return CustomerView{
		ID:         c.ID(),
		FirstName:  c.FirstName(),
		MiddleName: c.MiddleName(),
		LastName:   c.LastName(),
		FullName:   c.FullName(),
		Phone:      c.Phone(),
		Notes:      c.Notes(),
	}
}

func NewReservationView(r *reservation.Reservation) *ReservationView {
	return &ReservationView{
		ID:         r.ID(),
		CustomerID: r.CustomerID(),
		NumGuests:  r.NumGuests(),
		StartAt:    r.StartAt(),
		Notes:      r.Notes(),
	}
}
