package commands

import (
	"context"
	"time"

	"lunchly/internal/domain/customer"
	"lunchly/internal/domain/reservation"
)

type CustomerStore interface {
	FindByID(ctx context.Context, id int64) (*customer.Customer, error)
	Save(ctx context.Context, c *customer.Customer) error
}

type ReservationStore interface {
	FindByID(ctx context.Context, id int64) (*reservation.Reservation, error)
	Save(ctx context.Context, r *reservation.Reservation) error
}

type CustomerInput struct {
	FirstName  string
	MiddleName string
	LastName   string
	Phone      string
	Notes      string
}

// CustomerPatch leaves nil fields unchanged. An HTML form posts every field,
// which makes the update a full replacement.
type CustomerPatch struct {
	FirstName  *string
	MiddleName *string
	LastName   *string
	Phone      *string
	Notes      *string
}

type ReservationInput struct {
	NumGuests int
	StartAt   time.Time
	Notes     string
}

type ReservationPatch struct {
	NumGuests *int
	StartAt   *time.Time
	Notes     *string
}
