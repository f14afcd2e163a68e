//go:build unit

package reservation_test

import (
	"math"
	"testing"
	"time"

	"lunchly/internal/domain/reservation"
	"lunchly/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.ReservationBuilder)
	errIs  error
}

func TestReservation(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewReservationBuilder().WithNotes("  birthday ").BuildNew()
		require.NoError(t, err)

		assert.False(t, actual.IsSaved())
		assert.Equal(t, int64(1), actual.CustomerID())
		assert.Equal(t, 2, actual.NumGuests())
		assert.Equal(t, time.Date(2024, 3, 1, 18, 30, 0, 0, time.UTC), actual.StartAt())
		assert.Equal(t, "birthday", actual.Notes())
	})

	t.Run("validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "no customer",
				mutate: func(b *builder.ReservationBuilder) { b.WithCustomerID(0) },
				errIs:  reservation.ErrCustomerRequired,
			},
			{
				name:   "zero guests",
				mutate: func(b *builder.ReservationBuilder) { b.WithNumGuests(0) },
				errIs:  reservation.ErrInvalidNumGuests,
			},
			{
				name:   "negative guests",
				mutate: func(b *builder.ReservationBuilder) { b.WithNumGuests(-3) },
				errIs:  reservation.ErrInvalidNumGuests,
			},
			{
				name:   "guests beyond storage range",
				mutate: func(b *builder.ReservationBuilder) { b.WithNumGuests(math.MaxInt32 + 1) },
				errIs:  reservation.ErrInvalidNumGuests,
			},
			{
				name:   "single guest",
				mutate: func(b *builder.ReservationBuilder) { b.WithNumGuests(1) },
			},
			{
				name:   "missing start time",
				mutate: func(b *builder.ReservationBuilder) { b.WithStartAt(time.Time{}) },
				errIs:  reservation.ErrStartAtRequired,
			},
		})
	})
}

func TestReservation_Reschedule(t *testing.T) {
	t.Run("changes guests, time and notes but not the customer", func(t *testing.T) {
		r := builder.NewReservationBuilder().WithID(5).WithCustomerID(9).BuildDomain()
		newStart := time.Date(2024, 4, 2, 12, 0, 0, 0, time.UTC)

		require.NoError(t, r.Reschedule(6, newStart, "terrace"))

		assert.Equal(t, int64(5), r.ID())
		assert.Equal(t, int64(9), r.CustomerID())
		assert.Equal(t, 6, r.NumGuests())
		assert.Equal(t, newStart, r.StartAt())
		assert.Equal(t, "terrace", r.Notes())
	})

	t.Run("invalid input leaves the reservation unchanged", func(t *testing.T) {
		r := builder.NewReservationBuilder().BuildDomain()
		before := r.StartAt()

		err := r.Reschedule(4, time.Time{}, "")
		require.ErrorIs(t, err, reservation.ErrStartAtRequired)

		assert.Equal(t, 2, r.NumGuests())
		assert.Equal(t, before, r.StartAt())
	})
}

func TestReservation_AssignID(t *testing.T) {
	r, err := builder.NewReservationBuilder().BuildNew()
	require.NoError(t, err)

	require.NoError(t, r.AssignID(11))
	assert.Equal(t, int64(11), r.ID())

	require.ErrorIs(t, r.AssignID(12), reservation.ErrAlreadySaved)
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewReservationBuilder()
			if tc.mutate != nil {
				tc.mutate(b)
			}
			actual, err := b.BuildNew()

			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				assert.Nil(t, actual)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, actual)
		})
	}
}
