package response

import (
	"lunchly/internal/usecase/queries"
)

type CustomerResponse struct {
	ID         int64  `json:"id"`
	FirstName  string `json:"first_name"`
	MiddleName string `json:"middle_name"`
	LastName   string `json:"last_name"`
	FullName   string `json:"full_name"`
	Phone      string `json:"phone"`
	Notes      string `json:"notes"`
}

func FromCustomerView(v queries.CustomerView) CustomerResponse {
	return CustomerResponse{
		ID:         v.ID,
		FirstName:  v.FirstName,
		MiddleName: v.MiddleName,
		LastName:   v.LastName,
		FullName:   v.FullName,
		Phone:      v.Phone,
		Notes:      v.Notes,
	}
}

type CustomerListItemResponse struct {
	CustomerResponse
	RecentReservation *ReservationResponse `json:"recent_reservation"`
}

type CustomerListResponse struct {
	Heading   string                      `json:"heading"`
	Term      string                      `json:"term,omitempty"`
	Customers []*CustomerListItemResponse `json:"customers"`
}

func FromCustomerList(l *queries.CustomerList) *CustomerListResponse {
	res := &CustomerListResponse{
		Heading:   l.Heading,
		Term:      l.Term,
		Customers: make([]*CustomerListItemResponse, len(l.Customers)),
	}
	for i, it := range l.Customers {
		item := &CustomerListItemResponse{CustomerResponse: FromCustomerView(it.Customer)}
		if it.RecentReservation != nil {
			item.RecentReservation = FromReservationView(it.RecentReservation)
		}
		res.Customers[i] = item
	}
	return res
}

type CustomerDetailResponse struct {
	Customer     CustomerResponse       `json:"customer"`
	Reservations []*ReservationResponse `json:"reservations"`
}

func FromCustomerDetail(d *queries.CustomerDetail) *CustomerDetailResponse {
	res := &CustomerDetailResponse{
		Customer:     FromCustomerView(d.Customer),
		Reservations: make([]*ReservationResponse, len(d.Reservations)),
	}
	for i, r := range d.Reservations {
		res.Reservations[i] = FromReservationView(r)
	}
	return res
}

// CustomerFormResponse carries what an add or edit form needs.
type CustomerFormResponse struct {
	Action   string           `json:"action"`
	Customer CustomerResponse `json:"customer"`
}
