package query

import (
	"github.com/jackc/pgx/v5/pgtype"
)

type Customers struct {
	ID         int64
	FirstName  string
	MiddleName pgtype.Text
	LastName   string
	Phone      pgtype.Text
	Notes      pgtype.Text
}

type Reservations struct {
	ID         int64
	CustomerID int64
	NumGuests  int32
	StartAt    pgtype.Timestamptz
	Notes      pgtype.Text
}
