//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"canteen-coupon/internal/domain/coupon"
	"canteen-coupon/internal/domain/menu"
	"canteen-coupon/internal/pkg/errs"
	"canteen-coupon/internal/usecase/queries"
	"canteen-coupon/tests/common/builder"
	queriesmock "canteen-coupon/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestOrderQueries_GetReceipt(t *testing.T) {
	ctx := context.Background()
	orderID := uuid.New()
	wed := time.Date(2026, time.October, 14, 0, 0, 0, 0, time.UTC)
	thu := wed.AddDate(0, 0, 1)

	lunch := func(id int64, status coupon.Status) *queries.CouponView {
		return builder.NewCouponBuilder().With(func(b *builder.CouponBuilder) {
			b.ID = id
			b.OrderID = orderID
			b.Status = status
		}).BuildView()
	}
	dinner := builder.NewCouponBuilder().With(func(b *builder.CouponBuilder) {
		b.ID = 3
		b.OrderID = orderID
		b.MealDate = thu
		b.Day = menu.Thursday
		b.MealType = menu.Dinner
		b.Price = decimal.RequireFromString("70.00")
	}).BuildView()

	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockCouponReadStore(ctrl)
	q := queries.NewOrderQueries(store)

	store.EXPECT().FindByOrder(ctx, orderID).Return([]*queries.CouponView{
		dinner, lunch(1, coupon.StatusActive), lunch(2, coupon.StatusUsed),
	}, nil)

	receipt, err := q.GetReceipt(ctx, orderID)
	require.NoError(t, err)

	assert.Equal(t, orderID, receipt.OrderID)
	assert.Equal(t, "Asha Rao", receipt.CustomerName)
	assert.True(t, receipt.Total.Equal(decimal.NewFromInt(190)))
	require.Len(t, receipt.Lines, 2)
	assert.Equal(t, "Lunch", receipt.Lines[0].MealType)
	assert.Equal(t, 2, receipt.Lines[0].Quantity)
	assert.True(t, receipt.Lines[0].LineTotal.Equal(decimal.NewFromInt(120)))
	assert.Equal(t, "Dinner", receipt.Lines[1].MealType)
	assert.Len(t, receipt.Coupons, 3)
}

func TestOrderQueries_GetReceipt_UnknownOrder(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockCouponReadStore(ctrl)
	q := queries.NewOrderQueries(store)

	orderID := uuid.New()
	store.EXPECT().FindByOrder(ctx, orderID).Return([]*queries.CouponView{}, nil)

	_, err := q.GetReceipt(ctx, orderID)
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.ErrNotFound))
	assert.True(t, errs.Is(err, queries.ErrOrderNotFound))
}
