package reservation

import (
	"strings"
	"time"

	"lunchly/internal/domain/identity"
)

type Reservation struct {
	identity   identity.Identity
	customerID int64
	numGuests  NumGuests
	startAt    StartAt
	notes      string
}

func New(customerID int64, numGuests int, startAt time.Time, notes string) (*Reservation, error) {
	if customerID <= 0 {
		return nil, ErrCustomerRequired
	}
	r := &Reservation{identity: identity.Unsaved{}, customerID: customerID}
	if err := r.Reschedule(numGuests, startAt, notes); err != nil {
		return nil, err
	}
	return r, nil
}

func Reconstruct(id, customerID int64, numGuests int, startAt time.Time, notes string) *Reservation {
	return &Reservation{
		identity:   identity.Saved{ID: id},
		customerID: customerID,
		numGuests:  NumGuests(numGuests),
		startAt:    StartAt{value: startAt},
		notes:      notes,
	}
}

func (r *Reservation) Identity() identity.Identity { return r.identity }
func (r *Reservation) CustomerID() int64           { return r.customerID }
func (r *Reservation) NumGuests() int              { return r.numGuests.Int() }
func (r *Reservation) StartAt() time.Time          { return r.startAt.Time() }
func (r *Reservation) Notes() string               { return r.notes }

func (r *Reservation) ID() int64 {
	id, _ := identity.IDOf(r.identity)
	return id
}

func (r *Reservation) IsSaved() bool {
	_, ok := identity.IDOf(r.identity)
	return ok
}

// Reschedule changes guests, start time and notes. The owning customer never changes.
func (r *Reservation) Reschedule(numGuests int, startAt time.Time, notes string) error {
	n, err := NewNumGuests(numGuests)
	if err != nil {
		return err
	}
	s, err := NewStartAt(startAt)
	if err != nil {
		return err
	}
	r.numGuests = n
	r.startAt = s
	r.notes = strings.TrimSpace(notes)
	return nil
}

func (r *Reservation) AssignID(id int64) error {
	if r.IsSaved() {
		return ErrAlreadySaved
	}
	r.identity = identity.Saved{ID: id}
	return nil
}
