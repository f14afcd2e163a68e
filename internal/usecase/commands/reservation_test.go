//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"lunchly/internal/domain/reservation"
	"lunchly/internal/infra"
	"lunchly/internal/pkg/errs"
	"lunchly/internal/pkg/ptr"
	"lunchly/internal/usecase/commands"
	"lunchly/tests/common/builder"
	commandsmock "lunchly/tests/mock/commands"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestReservationCommands_Create(t *testing.T) {
	ctx := context.Background()
	startAt := time.Date(2024, 3, 1, 18, 0, 0, 0, time.UTC)

	t.Run("正常系: 顧客に紐づく予約を作成する", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := commandsmock.NewMockReservationStore(ctrl)
		store.EXPECT().Save(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, r *reservation.Reservation) error {
			assert.Equal(t, int64(3), r.CustomerID())
			assert.Equal(t, 4, r.NumGuests())
			assert.Equal(t, startAt, r.StartAt())
			return r.AssignID(50)
		})

		id, err := commands.NewReservationCommands(store).Create(ctx, 3, commands.ReservationInput{
			NumGuests: 4,
			StartAt:   startAt,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(50), id)
	})

	t.Run("異常系: 人数0はバリデーションエラー", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := commandsmock.NewMockReservationStore(ctrl)

		_, err := commands.NewReservationCommands(store).Create(ctx, 3, commands.ReservationInput{StartAt: startAt})
		assert.True(t, errs.Is(err, errs.ErrDomainValidation))
		assert.ErrorIs(t, err, reservation.ErrInvalidNumGuests)
	})

	t.Run("異常系: 存在しない顧客は外部キー違反から404相当になる", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := commandsmock.NewMockReservationStore(ctrl)
		fk := &pgconn.PgError{Code: "23503"}
		store.EXPECT().Save(ctx, gomock.Any()).Return(infra.WrapRepoErr("failed to create reservation", fk))

		_, err := commands.NewReservationCommands(store).Create(ctx, 9999, commands.ReservationInput{NumGuests: 2, StartAt: startAt})
		assert.True(t, errs.Is(err, errs.ErrCustomerNotFound))
	})
}

func TestReservationCommands_Update(t *testing.T) {
	ctx := context.Background()
	newStart := time.Date(2024, 5, 5, 19, 0, 0, 0, time.UTC)

	t.Run("正常系: 予約を変更し所有顧客のIDを返す", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := commandsmock.NewMockReservationStore(ctrl)
		existing := builder.NewReservationBuilder().WithID(8).WithCustomerID(3).WithNotes("old").BuildDomain()

		store.EXPECT().FindByID(ctx, int64(8)).Return(existing, nil)
		store.EXPECT().Save(ctx, existing).Return(nil)

		customerID, err := commands.NewReservationCommands(store).Update(ctx, 8, commands.ReservationPatch{
			StartAt: ptr.To(newStart),
			Notes:   ptr.To("window"),
		})
		require.NoError(t, err)
		assert.Equal(t, int64(3), customerID)
		assert.Equal(t, 2, existing.NumGuests())
		assert.Equal(t, newStart, existing.StartAt())
		assert.Equal(t, "window", existing.Notes())
	})

	t.Run("異常系: 予約が存在しない", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := commandsmock.NewMockReservationStore(ctrl)
		store.EXPECT().FindByID(ctx, int64(9999)).Return(nil, infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound))

		_, err := commands.NewReservationCommands(store).Update(ctx, 9999, commands.ReservationPatch{})
		assert.True(t, errs.Is(err, errs.ErrReservationNotFound))
	})

	t.Run("異常系: 人数が負ならバリデーションエラー", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := commandsmock.NewMockReservationStore(ctrl)
		existing := builder.NewReservationBuilder().WithID(8).BuildDomain()
		store.EXPECT().FindByID(ctx, int64(8)).Return(existing, nil)

		_, err := commands.NewReservationCommands(store).Update(ctx, 8, commands.ReservationPatch{NumGuests: ptr.To(-1)})
		assert.True(t, errs.Is(err, errs.ErrDomainValidation))
	})
}
