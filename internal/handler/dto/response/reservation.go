package response

import (
	"time"

	"lunchly/internal/usecase/queries"
)

type ReservationResponse struct {
	ID         int64  `json:"id"`
	CustomerID int64  `json:"customer_id"`
	NumGuests  int    `json:"num_guests"`
	StartAt    string `json:"start_at"`
	Notes      string `json:"notes"`
}

func FromReservationView(v *queries.ReservationView) *ReservationResponse {
	return &ReservationResponse{
		ID:         v.ID,
		CustomerID: v.CustomerID,
		NumGuests:  v.NumGuests,
		StartAt:    v.StartAt.Format(time.RFC3339),
		Notes:      v.Notes,
	}
}

type ReservationFormResponse struct {
	Action      string               `json:"action"`
	Reservation *ReservationResponse `json:"reservation"`
	Customer    CustomerResponse     `json:"customer"`
}

func FromReservationEdit(action string, e *queries.ReservationEdit) *ReservationFormResponse {
	return &ReservationFormResponse{
		Action:      action,
		Reservation: FromReservationView(&e.Reservation),
		Customer:    FromCustomerView(e.Customer),
	}
}
