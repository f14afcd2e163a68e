package query

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const customerColumns = `id, first_name, middle_name, last_name, phone, notes`

func scanCustomer(row pgx.Row) (Customers, error) {
	var i Customers
	err := row.Scan(
		&i.ID,
		&i.FirstName,
		&i.MiddleName,
		&i.LastName,
		&i.Phone,
		&i.Notes,
	)
	return i, err
}

func collectCustomers(rows pgx.Rows, err error) ([]Customers, error) {
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Customers{}
	for rows.Next() {
		i, err := scanCustomer(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const listCustomers = `SELECT ` + customerColumns + `
FROM customers
ORDER BY last_name, first_name
`

func (q *Queries) ListCustomers(ctx context.Context, db DBTX) ([]Customers, error) {
	return collectCustomers(db.Query(ctx, listCustomers))
}

const getCustomerByID = `SELECT ` + customerColumns + `
FROM customers
WHERE id = $1
`

func (q *Queries) GetCustomerByID(ctx context.Context, db DBTX, id int64) (Customers, error) {
	return scanCustomer(db.QueryRow(ctx, getCustomerByID, id))
}

const searchCustomers = `SELECT ` + customerColumns + `
FROM customers
WHERE first_name ILIKE $1
   OR middle_name ILIKE $1
   OR last_name ILIKE $1
ORDER BY last_name, first_name
`

// SearchCustomers expects an ILIKE pattern, wildcards included.
func (q *Queries) SearchCustomers(ctx context.Context, db DBTX, pattern string) ([]Customers, error) {
	return collectCustomers(db.Query(ctx, searchCustomers, pattern))
}

const listTopCustomers = `SELECT c.id, c.first_name, c.middle_name, c.last_name, c.phone, c.notes
FROM customers c
JOIN reservations r ON r.customer_id = c.id
GROUP BY c.id
ORDER BY count(r.id) DESC, c.last_name, c.first_name, c.id
LIMIT $1
`

func (q *Queries) ListTopCustomers(ctx context.Context, db DBTX, limit int32) ([]Customers, error) {
	return collectCustomers(db.Query(ctx, listTopCustomers, limit))
}

const createCustomer = `INSERT INTO customers (first_name, middle_name, last_name, phone, notes)
VALUES ($1, $2, $3, $4, $5)
RETURNING id
`

type CreateCustomerParams struct {
	FirstName  string
	MiddleName pgtype.Text
	LastName   string
	Phone      pgtype.Text
	Notes      pgtype.Text
}

func (q *Queries) CreateCustomer(ctx context.Context, db DBTX, arg CreateCustomerParams) (int64, error) {
	row := db.QueryRow(ctx, createCustomer,
		arg.FirstName,
		arg.MiddleName,
		arg.LastName,
		arg.Phone,
		arg.Notes,
	)
	var id int64
	err := row.Scan(&id)
	return id, err
}

const updateCustomer = `UPDATE customers
SET first_name = $2,
    middle_name = $3,
    last_name = $4,
    phone = $5,
    notes = $6
WHERE id = $1
`

type UpdateCustomerParams struct {
	ID         int64
	FirstName  string
	MiddleName pgtype.Text
	LastName   string
	Phone      pgtype.Text
	Notes      pgtype.Text
}

// UpdateCustomer returns pgx.ErrNoRows when no row has the given id.
func (q *Queries) UpdateCustomer(ctx context.Context, db DBTX, arg UpdateCustomerParams) error {
	tag, err := db.Exec(ctx, updateCustomer,
		arg.ID,
		arg.FirstName,
		arg.MiddleName,
		arg.LastName,
		arg.Phone,
		arg.Notes,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
