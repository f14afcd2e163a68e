package queries

import (
	"context"

	"lunchly/internal/domain/reservation"
	"lunchly/internal/infra"
	"lunchly/internal/pkg/errs"
)

type ReservationReadStore interface {
	FindByID(ctx context.Context, id int64) (*reservation.Reservation, error)
}

type ReservationQueries interface {
	GetForEdit(ctx context.Context, id int64) (*ReservationEdit, error)
}

type reservationQueriesImpl struct {
	reservations ReservationReadStore
	customers    CustomerReadStore
}

func NewReservationQueries(reservations ReservationReadStore, customers CustomerReadStore) ReservationQueries {
	return &reservationQueriesImpl{reservations: reservations, customers: customers}
}

// GetForEdit loads a reservation together with the customer it belongs to.
func (q *reservationQueriesImpl) GetForEdit(ctx context.Context, id int64) (*ReservationEdit, error) {
	r, err := q.reservations.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrReservationNotFound)
		}
		return nil, err
	}

	c, err := q.customers.FindByID(ctx, r.CustomerID())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrCustomerNotFound)
		}
		return nil, err
	}

	return &ReservationEdit{
		Reservation: *NewReservationView(r),
		Customer:    NewCustomerView(c),
	}, nil
}
