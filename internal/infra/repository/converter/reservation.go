package converter

import (
	"fmt"
	"math"

	"lunchly/internal/domain/reservation"
	"lunchly/internal/infra/query"
	"lunchly/internal/pkg/pgconv"
)

func ReservationFromRow(row query.Reservations) *reservation.Reservation {
	return reservation.Reconstruct(
		row.ID,
		row.CustomerID,
		int(row.NumGuests),
		pgconv.TimeFromPgtype(row.StartAt),
		pgconv.StringFromPgtype(row.Notes),
	)
}

func ReservationsFromRows(rows []query.Reservations) []*reservation.Reservation {
	out := make([]*reservation.Reservation, 0, len(rows))
	for _, row := range rows {
		out = append(out, ReservationFromRow(row))
	}
	return out
}

func numGuestsToInt32(n int) int32 {
	if n > math.MaxInt32 {
		panic(fmt.Sprintf("num guests out of int32 range: %d", n))
	}
	return int32(n)
}

func ReservationToCreateParams(r *reservation.Reservation) query.CreateReservationParams {
	return query.CreateReservationParams{
		CustomerID: r.CustomerID(),
		NumGuests:  numGuestsToInt32(r.NumGuests()),
		StartAt:    pgconv.TimeToPgtype(r.StartAt()),
		Notes:      pgconv.NullableText(r.Notes()),
	}
}

func ReservationToUpdateParams(id int64, r *reservation.Reservation) query.UpdateReservationParams {
	return query.UpdateReservationParams{
		ID:        id,
		NumGuests: numGuestsToInt32(r.NumGuests()),
		StartAt:   pgconv.TimeToPgtype(r.StartAt()),
		Notes:     pgconv.NullableText(r.Notes()),
	}
}
