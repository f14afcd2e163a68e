//go:build unit || e2e

package builder

import (
	"time"

	"lunchly/internal/domain/reservation"
	"lunchly/internal/handler/dto/request"
	"lunchly/internal/infra/query"
	"lunchly/internal/pkg/pgconv"
	"lunchly/internal/usecase/queries"
)

type ReservationBuilder struct {
	id         int64
	customerID int64
	numGuests  int
	startAt    time.Time
	notes      string
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		id:         1,
		customerID: 1,
		numGuests:  2,
		startAt:    time.Date(2024, 3, 1, 18, 30, 0, 0, time.UTC),
	}
}

func (b *ReservationBuilder) WithID(id int64) *ReservationBuilder {
	b.id = id
	return b
}

func (b *ReservationBuilder) WithCustomerID(id int64) *ReservationBuilder {
	b.customerID = id
	return b
}

func (b *ReservationBuilder) WithNumGuests(n int) *ReservationBuilder {
	b.numGuests = n
	return b
}

func (b *ReservationBuilder) WithStartAt(t time.Time) *ReservationBuilder {
	b.startAt = t
	return b
}

func (b *ReservationBuilder) WithNotes(notes string) *ReservationBuilder {
	b.notes = notes
	return b
}

func (b *ReservationBuilder) BuildDomain() *reservation.Reservation {
	return reservation.Reconstruct(b.id, b.customerID, b.numGuests, b.startAt, b.notes)
}

func (b *ReservationBuilder) BuildNew() (*reservation.Reservation, error) {
	return reservation.New(b.customerID, b.numGuests, b.startAt, b.notes)
}

func (b *ReservationBuilder) BuildInfra() query.Reservations {
	return query.Reservations{
		ID:         b.id,
		CustomerID: b.customerID,
		NumGuests:  int32(b.numGuests),
		StartAt:    pgconv.TimeToPgtype(b.startAt),
		Notes:      pgconv.NullableText(b.notes),
	}
}

func (b *ReservationBuilder) BuildView() *queries.ReservationView {
	return queries.NewReservationView(b.BuildDomain())
}

func (b *ReservationBuilder) BuildCreateRequest() request.CreateReservationRequest {
	return request.CreateReservationRequest{
		NumGuests: b.numGuests,
		StartAt:   b.startAt.Format(time.RFC3339),
		Notes:     b.notes,
	}
}
