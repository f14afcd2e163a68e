package query

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const reservationColumns = `id, customer_id, num_guests, start_at, notes`

func scanReservation(row pgx.Row) (Reservations, error) {
	var i Reservations
	err := row.Scan(
		&i.ID,
		&i.CustomerID,
		&i.NumGuests,
		&i.StartAt,
		&i.Notes,
	)
	return i, err
}

func collectReservations(rows pgx.Rows, err error) ([]Reservations, error) {
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Reservations{}
	for rows.Next() {
		i, err := scanReservation(rows)
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

const getReservationByID = `SELECT ` + reservationColumns + `
FROM reservations
WHERE id = $1
`

func (q *Queries) GetReservationByID(ctx context.Context, db DBTX, id int64) (Reservations, error) {
	return scanReservation(db.QueryRow(ctx, getReservationByID, id))
}

const listReservationsByCustomerID = `SELECT ` + reservationColumns + `
FROM reservations
WHERE customer_id = $1
ORDER BY start_at, id
`

func (q *Queries) ListReservationsByCustomerID(ctx context.Context, db DBTX, customerID int64) ([]Reservations, error) {
	return collectReservations(db.Query(ctx, listReservationsByCustomerID, customerID))
}

const getLatestReservationByCustomerID = `SELECT ` + reservationColumns + `
FROM reservations
WHERE customer_id = $1
ORDER BY start_at DESC, id DESC
LIMIT 1
`

// GetLatestReservationByCustomerID returns pgx.ErrNoRows when the customer has no reservations.
func (q *Queries) GetLatestReservationByCustomerID(ctx context.Context, db DBTX, customerID int64) (Reservations, error) {
	return scanReservation(db.QueryRow(ctx, getLatestReservationByCustomerID, customerID))
}

const listLatestReservationsByCustomerIDs = `SELECT DISTINCT ON (customer_id) ` + reservationColumns + `
FROM reservations
WHERE customer_id = ANY($1::bigint[])
ORDER BY customer_id, start_at DESC, id DESC
`

// ListLatestReservationsByCustomerIDs returns at most one row per customer.
func (q *Queries) ListLatestReservationsByCustomerIDs(ctx context.Context, db DBTX, customerIDs []int64) ([]Reservations, error) {
	return collectReservations(db.Query(ctx, listLatestReservationsByCustomerIDs, customerIDs))
}

const createReservation = `INSERT INTO reservations (customer_id, num_guests, start_at, notes)
VALUES ($1, $2, $3, $4)
RETURNING id
`

type CreateReservationParams struct {
	CustomerID int64
	NumGuests  int32
	StartAt    pgtype.Timestamptz
	Notes      pgtype.Text
}

func (q *Queries) CreateReservation(ctx context.Context, db DBTX, arg CreateReservationParams) (int64, error) {
	row := db.QueryRow(ctx, createReservation,
		arg.CustomerID,
		arg.NumGuests,
		arg.StartAt,
		arg.Notes,
	)
	var id int64
	err := row.Scan(&id)
	return id, err
}

const updateReservation = `UPDATE reservations
SET num_guests = $2,
    start_at = $3,
    notes = $4
WHERE id = $1
`

type UpdateReservationParams struct {
	ID        int64
	NumGuests int32
	StartAt   pgtype.Timestamptz
	Notes     pgtype.Text
}

// UpdateReservation never touches customer_id. It returns pgx.ErrNoRows for an unknown id.
func (q *Queries) UpdateReservation(ctx context.Context, db DBTX, arg UpdateReservationParams) error {
	tag, err := db.Exec(ctx, updateReservation,
		arg.ID,
		arg.NumGuests,
		arg.StartAt,
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
