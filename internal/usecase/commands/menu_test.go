//go:build unit

package commands_test

import (
	"context"
	"testing"

	"canteen-coupon/internal/domain/menu"
	"canteen-coupon/internal/infra"
	"canteen-coupon/internal/pkg/errs"
	"canteen-coupon/internal/usecase/commands"
	"canteen-coupon/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// =============================================================================
// PublishMenu Tests
// =============================================================================

func TestMenuCommands_PublishMenu(t *testing.T) {
	ctx := context.Background()

	t.Run("success: lock, deactivate, version, insert in order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newTxMocks(ctrl)
		uc := commands.NewMenuCommands(m.uow)

		rows := builder.NewMenuBuilder().BuildRows()
		rows = append(rows, menu.Row{Line: 99, Day: "Funday", MealType: "Lunch", Description: "x", Price: "10"})

		gomock.InOrder(
			m.menu.EXPECT().LockPublication(gomock.Any(), m.db).Return(nil),
			m.menu.EXPECT().DeactivateAll(gomock.Any(), m.db).Return(int64(21), nil),
			m.menu.EXPECT().NextVersion(gomock.Any(), m.db).Return(int32(2), nil),
			m.menu.EXPECT().InsertBatch(gomock.Any(), m.db, int32(2), gomock.Any()).
				DoAndReturn(func(_ context.Context, _ any, _ int32, b *menu.Batch) (int64, error) {
					return int64(b.Len()), nil
				}),
		)

		res, err := uc.PublishMenu(ctx, rows)
		require.NoError(t, err)
		assert.Equal(t, int32(2), res.Version)
		assert.Equal(t, int64(21), res.Count)
		assert.Equal(t, int64(21), res.Deactivated)
		require.Len(t, res.Rejected, 1)
		assert.Equal(t, 99, res.Rejected[0].Row.Line)
	})

	t.Run("success: superseded duplicate row is reported as rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newTxMocks(ctrl)
		uc := commands.NewMenuCommands(m.uow)

		rows := []menu.Row{
			{Line: 2, Day: "Monday", MealType: "Lunch", Description: "Dal rice", Price: "60"},
			{Line: 3, Day: "Monday", MealType: "Lunch", Description: "Veg biryani", Price: "80"},
		}

		m.menu.EXPECT().LockPublication(gomock.Any(), m.db).Return(nil)
		m.menu.EXPECT().DeactivateAll(gomock.Any(), m.db).Return(int64(0), nil)
		m.menu.EXPECT().NextVersion(gomock.Any(), m.db).Return(int32(1), nil)
		m.menu.EXPECT().InsertBatch(gomock.Any(), m.db, int32(1), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, _ int32, b *menu.Batch) (int64, error) {
				require.Equal(t, 1, b.Len())
				return int64(b.Len()), nil
			})

		res, err := uc.PublishMenu(ctx, rows)
		require.NoError(t, err)
		assert.Equal(t, int64(1), res.Count)
		require.Len(t, res.Rejected, 1)
		assert.Equal(t, 2, res.Rejected[0].Row.Line)
		assert.ErrorIs(t, res.Rejected[0].Reason, menu.ErrDuplicateSlot)
	})

	t.Run("error: no valid rows leaves the menu untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newTxMocks(ctrl)
		uc := commands.NewMenuCommands(m.uow)

		_, err := uc.PublishMenu(ctx, []menu.Row{{Line: 2, Day: "Monday", MealType: "Lunch", Description: "", Price: "abc"}})
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrValidation))
		assert.True(t, errs.Is(err, menu.ErrNoValidItems))
	})

	t.Run("error: insert failure rolls back as transaction failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newTxMocks(ctrl)
		uc := commands.NewMenuCommands(m.uow)

		m.menu.EXPECT().LockPublication(gomock.Any(), m.db).Return(nil)
		m.menu.EXPECT().DeactivateAll(gomock.Any(), m.db).Return(int64(0), nil)
		m.menu.EXPECT().NextVersion(gomock.Any(), m.db).Return(int32(1), nil)
		m.menu.EXPECT().InsertBatch(gomock.Any(), m.db, int32(1), gomock.Any()).
			Return(int64(0), infra.WrapRepoErr("failed to insert menu items", errs.New("copy aborted")))

		_, err := uc.PublishMenu(ctx, builder.NewMenuBuilder().BuildRows())
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrTransactionFailure))
	})
}
