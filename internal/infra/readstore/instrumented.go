package readstore

import (
	"context"

	"lunchly/internal/domain/reservation"
)

type RecentReservationLoader interface {
	LoadRecent(ctx context.Context, customerIDs []int64) (map[int64]*reservation.Reservation, error)
}

type QueryRecorder interface {
	RecordRecentReservationQueries(strategy string, n int)
}

// InstrumentedRecentReservationStore counts the queries a loader issues.
type InstrumentedRecentReservationStore struct {
	inner    RecentReservationLoader
	strategy string
	batched  bool
	recorder QueryRecorder
}

func NewInstrumentedRecentReservationStore(inner RecentReservationLoader, strategy string, batched bool, recorder QueryRecorder) *InstrumentedRecentReservationStore {
	return &InstrumentedRecentReservationStore{
		inner:    inner,
		strategy: strategy,
		batched:  batched,
		recorder: recorder,
	}
}

func (s *InstrumentedRecentReservationStore) LoadRecent(ctx context.Context, customerIDs []int64) (map[int64]*reservation.Reservation, error) {
	n := len(customerIDs)
	if s.batched && n > 0 {
		n = 1
	}
	s.recorder.RecordRecentReservationQueries(s.strategy, n)
	return s.inner.LoadRecent(ctx, customerIDs)
}
