package converter

import (
	"lunchly/internal/domain/customer"
	"lunchly/internal/infra/query"
	"lunchly/internal/pkg/pgconv"
)

func CustomerFromRow(row query.Customers) *customer.Customer {
	return customer.Reconstruct(row.ID, customer.Fields{
		FirstName:  row.FirstName,
		MiddleName: pgconv.StringFromPgtype(row.MiddleName),
		LastName:   row.LastName,
		Phone:      pgconv.StringFromPgtype(row.Phone),
		Notes:      pgconv.StringFromPgtype(row.Notes),
	})
}

func CustomersFromRows(rows []query.Customers) []*customer.Customer {
	out := make([]*customer.Customer, 0, len(rows))
	for _, row := range rows {
		out = append(out, CustomerFromRow(row))
	}
	return out
}

func CustomerToCreateParams(c *customer.Customer) query.CreateCustomerParams {
	return query.CreateCustomerParams{
		FirstName:  c.FirstName(),
		MiddleName: pgconv.NullableText(c.MiddleName()),
		LastName:   c.LastName(),
		Phone:      pgconv.NullableText(c.Phone()),
		Notes:      pgconv.NullableText(c.Notes()),
	}
}

func CustomerToUpdateParams(id int64, c *customer.Customer) query.UpdateCustomerParams {
	return query.UpdateCustomerParams{
		ID:         id,
		FirstName:  c.FirstName(),
		MiddleName: pgconv.NullableText(c.MiddleName()),
		LastName:   c.LastName(),
		Phone:      pgconv.NullableText(c.Phone()),
		Notes:      pgconv.NullableText(c.Notes()),
	}
}
