package readstore

import (
	"context"

	"lunchly/internal/domain/reservation"
	"lunchly/internal/infra"
	"lunchly/internal/infra/query"
	"lunchly/internal/infra/repository/converter"
)

type RecentReservationFinder interface {
	RecentReservation(ctx context.Context, customerID int64) (*reservation.Reservation, bool, error)
}

type LatestReservationQueries interface {
	ListLatestReservationsByCustomerIDs(ctx context.Context, db query.DBTX, customerIDs []int64) ([]query.Reservations, error)
}

// PerRowRecentReservationStore looks customers up one at a time, in order.
type PerRowRecentReservationStore struct {
	finder RecentReservationFinder
}

func NewPerRowRecentReservationStore(finder RecentReservationFinder) *PerRowRecentReservationStore {
	return &PerRowRecentReservationStore{finder: finder}
}

// LoadRecent returns the latest reservation keyed by customer id.
// Customers without reservations have no entry.
func (s *PerRowRecentReservationStore) LoadRecent(ctx context.Context, customerIDs []int64) (map[int64]*reservation.Reservation, error) {
	out := make(map[int64]*reservation.Reservation, len(customerIDs))
	for _, id := range customerIDs {
		res, found, err := s.finder.RecentReservation(ctx, id)
		if err != nil {
			return nil, err
		}
		if found {
			out[id] = res
		}
	}
	return out, nil
}

// BatchRecentReservationStore resolves every customer with a single query.
type BatchRecentReservationStore struct {
	queries LatestReservationQueries
	db      query.DBTX
}

func NewBatchRecentReservationStore(queries LatestReservationQueries, db query.DBTX) *BatchRecentReservationStore {
	return &BatchRecentReservationStore{
		queries: queries,
		db:      db,
	}
}

func (s *BatchRecentReservationStore) LoadRecent(ctx context.Context, customerIDs []int64) (map[int64]*reservation.Reservation, error) {
	out := make(map[int64]*reservation.Reservation, len(customerIDs))
	if len(customerIDs) == 0 {
		return out, nil
	}

	rows, err := s.queries.ListLatestReservationsByCustomerIDs(ctx, s.db, customerIDs)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load recent reservations", err)
	}
	for _, row := range rows {
		out[row.CustomerID] = converter.ReservationFromRow(row)
	}
	return out, nil
}
