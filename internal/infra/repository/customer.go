package repository

import (
	"context"
	"strings"

	"lunchly/internal/domain/customer"
	"lunchly/internal/domain/identity"
	"lunchly/internal/domain/reservation"
	"lunchly/internal/infra"
	"lunchly/internal/infra/query"
	"lunchly/internal/infra/repository/converter"
	"lunchly/internal/pkg/errs"
	"lunchly/internal/pkg/pgconv"
)

const topCustomersLimit = 10

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

type CustomerQueries interface {
	ListCustomers(ctx context.Context, db query.DBTX) ([]query.Customers, error)
	GetCustomerByID(ctx context.Context, db query.DBTX, id int64) (query.Customers, error)
	SearchCustomers(ctx context.Context, db query.DBTX, pattern string) ([]query.Customers, error)
	ListTopCustomers(ctx context.Context, db query.DBTX, limit int32) ([]query.Customers, error)
	GetLatestReservationByCustomerID(ctx context.Context, db query.DBTX, customerID int64) (query.Reservations, error)
	CreateCustomer(ctx context.Context, db query.DBTX, arg query.CreateCustomerParams) (int64, error)
	UpdateCustomer(ctx context.Context, db query.DBTX, arg query.UpdateCustomerParams) error
}

type ReservationFinder interface {
	FindByCustomerID(ctx context.Context, customerID int64) ([]*reservation.Reservation, error)
}

type CustomerRepository struct {
	queries      CustomerQueries
	db           query.DBTX
	reservations ReservationFinder
}

func NewCustomerRepository(queries CustomerQueries, db query.DBTX, reservations ReservationFinder) *CustomerRepository {
	return &CustomerRepository{
		queries:      queries,
		db:           db,
		reservations: reservations,
	}
}

// FindAll lists every customer ordered by last name, then first name.
func (r *CustomerRepository) FindAll(ctx context.Context) ([]*customer.Customer, error) {
	rows, err := r.queries.ListCustomers(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list customers", err)
	}
	return converter.CustomersFromRows(rows), nil
}

func (r *CustomerRepository) FindByID(ctx context.Context, id int64) (*customer.Customer, error) {
	row, err := r.queries.GetCustomerByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("customer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find customer by ID", err)
	}
	return converter.CustomerFromRow(row), nil
}

// Search matches term as a case-insensitive substring of any name part.
// An empty term matches every customer.
func (r *CustomerRepository) Search(ctx context.Context, term string) ([]*customer.Customer, error) {
	rows, err := r.queries.SearchCustomers(ctx, r.db, SearchPattern(term))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search customers", err)
	}
	return converter.CustomersFromRows(rows), nil
}

// TopTen returns up to ten customers with the most reservations, most first.
// Customers without reservations never appear.
func (r *CustomerRepository) TopTen(ctx context.Context) ([]*customer.Customer, error) {
	rows, err := r.queries.ListTopCustomers(ctx, r.db, topCustomersLimit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list top customers", err)
	}
	return converter.CustomersFromRows(rows), nil
}

// RecentReservation returns the reservation with the latest start time.
// found is false, with a nil error, when the customer has none.
func (r *CustomerRepository) RecentReservation(ctx context.Context, customerID int64) (res *reservation.Reservation, found bool, err error) {
	row, err := r.queries.GetLatestReservationByCustomerID(ctx, r.db, customerID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, false, nil
		}
		return nil, false, infra.WrapRepoErr("failed to find recent reservation", err)
	}
	return converter.ReservationFromRow(row), true, nil
}

func (r *CustomerRepository) Reservations(ctx context.Context, customerID int64) ([]*reservation.Reservation, error) {
	return r.reservations.FindByCustomerID(ctx, customerID)
}

// Save inserts an unsaved customer and assigns its id, or updates a saved one.
// Concurrent updates to the same row are last-writer-wins.
func (r *CustomerRepository) Save(ctx context.Context, c *customer.Customer) error {
	switch id := c.Identity().(type) {
	case identity.Unsaved:
		newID, err := r.queries.CreateCustomer(ctx, r.db, converter.CustomerToCreateParams(c))
		if err != nil {
			return infra.WrapRepoErr("failed to create customer", err)
		}
		return c.AssignID(newID)
	case identity.Saved:
		if err := r.queries.UpdateCustomer(ctx, r.db, converter.CustomerToUpdateParams(id.ID, c)); err != nil {
			if pgconv.IsNoRows(err) {
				return infra.WrapRepoErr("customer not found", err, infra.KindNotFound)
			}
			return infra.WrapRepoErr("failed to update customer", err)
		}
		return nil
	default:
		return errs.New("customer has an unknown identity")
	}
}

// SearchPattern wraps term in wildcards. LIKE metacharacters inside term match literally.
func SearchPattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}
