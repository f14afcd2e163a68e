package queries

import (
	"context"

	"lunchly/internal/domain/customer"
	"lunchly/internal/domain/reservation"
	"lunchly/internal/infra"
	"lunchly/internal/pkg/errs"
)

type CustomerReadStore interface {
	FindAll(ctx context.Context) ([]*customer.Customer, error)
	FindByID(ctx context.Context, id int64) (*customer.Customer, error)
	Search(ctx context.Context, term string) ([]*customer.Customer, error)
	TopTen(ctx context.Context) ([]*customer.Customer, error)
	Reservations(ctx context.Context, customerID int64) ([]*reservation.Reservation, error)
}

// RecentReservationLoader resolves the latest reservation of each given customer.
// Customers without reservations are absent from the result.
type RecentReservationLoader interface {
	LoadRecent(ctx context.Context, customerIDs []int64) (map[int64]*reservation.Reservation, error)
}

type CustomerQueries interface {
	List(ctx context.Context) (*CustomerList, error)
	Search(ctx context.Context, term string) (*CustomerList, error)
	Best(ctx context.Context) (*CustomerList, error)
	GetByID(ctx context.Context, id int64) (*CustomerView, error)
	GetDetail(ctx context.Context, id int64) (*CustomerDetail, error)
}

type customerQueriesImpl struct {
	store  CustomerReadStore
	recent RecentReservationLoader
}

func NewCustomerQueries(store CustomerReadStore, recent RecentReservationLoader) CustomerQueries {
	return &customerQueriesImpl{store: store, recent: recent}
}

func (q *customerQueriesImpl) List(ctx context.Context) (*CustomerList, error) {
	customers, err := q.store.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return q.buildList(ctx, HeadingCustomers, "", customers)
}

func (q *customerQueriesImpl) Search(ctx context.Context, term string) (*CustomerList, error) {
	customers, err := q.store.Search(ctx, term)
	if err != nil {
		return nil, err
	}
	return q.buildList(ctx, searchHeadingPrefix+term, term, customers)
}

func (q *customerQueriesImpl) Best(ctx context.Context) (*CustomerList, error) {
	customers, err := q.store.TopTen(ctx)
	if err != nil {
		return nil, err
	}
	return q.buildList(ctx, HeadingBestCustomers, "", customers)
}

func (q *customerQueriesImpl) GetByID(ctx context.Context, id int64) (*CustomerView, error) {
	c, err := q.findCustomer(ctx, id)
	if err != nil {
		return nil, err
	}
	view := NewCustomerView(c)
	return &view, nil
}

func (q *customerQueriesImpl) GetDetail(ctx context.Context, id int64) (*CustomerDetail, error) {
	c, err := q.findCustomer(ctx, id)
	if err != nil {
		return nil, err
	}
	reservations, err := q.store.Reservations(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &CustomerDetail{
		Customer:     NewCustomerView(c),
		Reservations: make([]*ReservationView, 0, len(reservations)),
	}
	for _, r := range reservations {
		detail.Reservations = append(detail.Reservations, NewReservationView(r))
	}
	return detail, nil
}

func (q *customerQueriesImpl) findCustomer(ctx context.Context, id int64) (*customer.Customer, error) {
	c, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrCustomerNotFound)
		}
		return nil, err
	}
	return c, nil
}

// buildList keeps the store's ordering and attaches each customer's latest reservation.
func (q *customerQueriesImpl) buildList(ctx context.Context, heading, term string, customers []*customer.Customer) (*CustomerList, error) {
	ids := make([]int64, 0, len(customers))
	for _, c := range customers {
		ids = append(ids, c.ID())
	}

	recent, err := q.recent.LoadRecent(ctx, ids)
	if err != nil {
		return nil, err
	}

	list := &CustomerList{
		Heading:   heading,
		Term:      term,
		Customers: make([]*CustomerListItem, 0, len(customers)),
	}
	for _, c := range customers {
		item := &CustomerListItem{Customer: NewCustomerView(c)}
		if r, ok := recent[c.ID()]; ok {
			item.RecentReservation = NewReservationView(r)
		}
		list.Customers = append(list.Customers, item)
	}
	return list, nil
}
