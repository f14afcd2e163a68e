//go:build unit || e2e

package builder

import (
	"lunchly/internal/domain/customer"
	"lunchly/internal/handler/dto/request"
	"lunchly/internal/infra/query"
	"lunchly/internal/pkg/pgconv"
	"lunchly/internal/usecase/queries"
)

type CustomerBuilder struct {
	id         int64
	firstName  string
	middleName string
	lastName   string
	phone      string
	notes      string
}

func NewCustomerBuilder() *CustomerBuilder {
	return &CustomerBuilder{
		id:        1,
		firstName: "Ada",
		lastName:  "Lovelace",
		phone:     "555-0100",
	}
}

func (b *CustomerBuilder) WithID(id int64) *CustomerBuilder {
	b.id = id
	return b
}

func (b *CustomerBuilder) WithFirstName(name string) *CustomerBuilder {
	b.firstName = name
	return b
}

func (b *CustomerBuilder) WithMiddleName(name string) *CustomerBuilder {
	b.middleName = name
	return b
}

func (b *CustomerBuilder) WithLastName(name string) *CustomerBuilder {
	b.lastName = name
	return b
}

func (b *CustomerBuilder) WithPhone(phone string) *CustomerBuilder {
	b.phone = phone
	return b
}

func (b *CustomerBuilder) WithNotes(notes string) *CustomerBuilder {
	b.notes = notes
	return b
}

func (b *CustomerBuilder) fields() customer.Fields {
	return customer.Fields{
		FirstName:  b.firstName,
		MiddleName: b.middleName,
		LastName:   b.lastName,
		Phone:      b.phone,
		Notes:      b.notes,
	}
}

// BuildDomain returns a saved customer carrying the builder's id.
func (b *CustomerBuilder) BuildDomain() *customer.Customer {
	return customer.Reconstruct(b.id, b.fields())
}

// BuildNew runs the builder's fields through validation and returns an unsaved customer.
func (b *CustomerBuilder) BuildNew() (*customer.Customer, error) {
	return customer.New(b.fields())
}

func (b *CustomerBuilder) BuildInfra() query.Customers {
	return query.Customers{
		ID:         b.id,
		FirstName:  b.firstName,
		MiddleName: pgconv.NullableText(b.middleName),
		LastName:   b.lastName,
		Phone:      pgconv.NullableText(b.phone),
		Notes:      pgconv.NullableText(b.notes),
	}
}

func (b *CustomerBuilder) BuildView() queries.CustomerView {
	return queries.NewCustomerView(b.BuildDomain())
}

func (b *CustomerBuilder) BuildCreateRequest() request.CreateCustomerRequest {
	return request.CreateCustomerRequest{
		FirstName:  b.firstName,
		MiddleName: b.middleName,
		LastName:   b.lastName,
		Phone:      b.phone,
		Notes:      b.notes,
	}
}
