package repository

import (
	"context"

	"lunchly/internal/domain/identity"
	"lunchly/internal/domain/reservation"
	"lunchly/internal/infra"
	"lunchly/internal/infra/query"
	"lunchly/internal/infra/repository/converter"
	"lunchly/internal/pkg/errs"
	"lunchly/internal/pkg/pgconv"
)

type ReservationQueries interface {
	GetReservationByID(ctx context.Context, db query.DBTX, id int64) (query.Reservations, error)
	ListReservationsByCustomerID(ctx context.Context, db query.DBTX, customerID int64) ([]query.Reservations, error)
	CreateReservation(ctx context.Context, db query.DBTX, arg query.CreateReservationParams) (int64, error)
	UpdateReservation(ctx context.Context, db query.DBTX, arg query.UpdateReservationParams) error
}

type ReservationRepository struct {
	queries ReservationQueries
	db      query.DBTX
}

func NewReservationRepository(queries ReservationQueries, db query.DBTX) *ReservationRepository {
	return &ReservationRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationRepository) FindByID(ctx context.Context, id int64) (*reservation.Reservation, error) {
	row, err := r.queries.GetReservationByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}
	return converter.ReservationFromRow(row), nil
}

// FindByCustomerID lists the customer's reservations by start time, oldest first.
func (r *ReservationRepository) FindByCustomerID(ctx context.Context, customerID int64) ([]*reservation.Reservation, error) {
	rows, err := r.queries.ListReservationsByCustomerID(ctx, r.db, customerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations by customer", err)
	}
	return converter.ReservationsFromRows(rows), nil
}

// Save inserts an unsaved reservation and assigns its id, or updates a saved one.
func (r *ReservationRepository) Save(ctx context.Context, res *reservation.Reservation) error {
	switch id := res.Identity().(type) {
	case identity.Unsaved:
		newID, err := r.queries.CreateReservation(ctx, r.db, converter.ReservationToCreateParams(res))
		if err != nil {
			return infra.WrapRepoErr("failed to create reservation", err)
		}
		return res.AssignID(newID)
	case identity.Saved:
		if err := r.queries.UpdateReservation(ctx, r.db, converter.ReservationToUpdateParams(id.ID, res)); err != nil {
			if pgconv.IsNoRows(err) {
				return infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
			}
			return infra.WrapRepoErr("failed to update reservation", err)
		}
		return nil
	default:
		return errs.New("reservation has an unknown identity")
	}
}
