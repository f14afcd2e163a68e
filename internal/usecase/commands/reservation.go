package commands

import (
	"context"

	"lunchly/internal/domain/reservation"
	"lunchly/internal/infra"
	"lunchly/internal/pkg/errs"
	"lunchly/internal/pkg/ptr"
)

type ReservationCommands interface {
	Create(ctx context.Context, customerID int64, in ReservationInput) (int64, error)
	// Update returns the id of the customer owning the reservation.
	Update(ctx context.Context, id int64, p ReservationPatch) (int64, error)
}

type reservationCommandsImpl struct {
	store ReservationStore
}

func NewReservationCommands(store ReservationStore) ReservationCommands {
	return &reservationCommandsImpl{store: store}
}

// Create relies on the foreign key to reject unknown customers.
func (uc *reservationCommandsImpl) Create(ctx context.Context, customerID int64, in ReservationInput) (int64, error) {
	r, err := reservation.New(customerID, in.NumGuests, in.StartAt, in.Notes)
	if err != nil {
		return 0, errs.Mark(err, errs.ErrDomainValidation)
	}
	if err := uc.store.Save(ctx, r); err != nil {
		return 0, markCustomerNotFound(err)
	}
	return r.ID(), nil
}

func (uc *reservationCommandsImpl) Update(ctx context.Context, id int64, p ReservationPatch) (int64, error) {
	r, err := uc.store.FindByID(ctx, id)
	if err != nil {
		return 0, markReservationNotFound(err)
	}

	numGuests := ptr.ValueOr(p.NumGuests, r.NumGuests())
	startAt := ptr.ValueOr(p.StartAt, r.StartAt())
	notes := ptr.ValueOr(p.Notes, r.Notes())
	if err := r.Reschedule(numGuests, startAt, notes); err != nil {
		return 0, errs.Mark(err, errs.ErrDomainValidation)
	}

	if err := uc.store.Save(ctx, r); err != nil {
		return 0, markReservationNotFound(err)
	}
	return r.CustomerID(), nil
}

func markReservationNotFound(err error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, errs.ErrReservationNotFound)
	}
	return err
}
