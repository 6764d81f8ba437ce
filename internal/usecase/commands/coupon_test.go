//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"canteen-coupon/internal/domain/coupon"
	"canteen-coupon/internal/infra"
	"canteen-coupon/internal/pkg/clock"
	"canteen-coupon/internal/pkg/errs"
	"canteen-coupon/internal/usecase/commands"
	"canteen-coupon/tests/common/builder"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// =============================================================================
// Redeem Tests
// =============================================================================

func TestCouponCommands_Redeem(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, time.October, 14, 12, 40, 0, 0, ist)
	noActiveRow := infra.WrapRepoErr("no Active coupon to update", pgx.ErrNoRows, infra.KindNotFound)

	testCases := []struct {
		name           string
		setupMock      func(*txMocks)
		wantErr        error
		wantTransition bool
	}{
		{
			name: "success: active coupon redeemed",
			setupMock: func(m *txMocks) {
				used := builder.NewCouponBuilder().With(func(b *builder.CouponBuilder) {
					b.ID = 11
					b.Status = coupon.StatusUsed
					b.RedeemedAt = &now
				}).BuildSnapshot()
				m.coupons.EXPECT().TransitionCoupon(gomock.Any(), m.db, int64(11), coupon.Redemption, now).Return(used, nil)
			},
		},
		{
			name: "error: coupon does not exist",
			setupMock: func(m *txMocks) {
				m.coupons.EXPECT().TransitionCoupon(gomock.Any(), m.db, int64(11), coupon.Redemption, now).Return(nil, noActiveRow)
				m.reads.EXPECT().CouponByID(gomock.Any(), int64(11)).
					Return(nil, infra.WrapRepoErr("coupon not found", pgx.ErrNoRows, infra.KindNotFound))
			},
			wantErr: errs.ErrNotFound,
		},
		{
			name: "error: already used",
			setupMock: func(m *txMocks) {
				m.coupons.EXPECT().TransitionCoupon(gomock.Any(), m.db, int64(11), coupon.Redemption, now).Return(nil, noActiveRow)
				m.reads.EXPECT().CouponByID(gomock.Any(), int64(11)).Return(builder.NewCouponBuilder().With(func(b *builder.CouponBuilder) {
					b.ID = 11
					b.Status = coupon.StatusUsed
				}).BuildSnapshot(), nil)
			},
			wantErr:        errs.ErrConflict,
			wantTransition: true,
		},
		{
			name: "error: still pending",
			setupMock: func(m *txMocks) {
				m.coupons.EXPECT().TransitionCoupon(gomock.Any(), m.db, int64(11), coupon.Redemption, now).Return(nil, noActiveRow)
				m.reads.EXPECT().CouponByID(gomock.Any(), int64(11)).Return(builder.NewCouponBuilder().With(func(b *builder.CouponBuilder) {
					b.ID = 11
					b.Status = coupon.StatusPending
				}).BuildSnapshot(), nil)
			},
			wantErr:        errs.ErrConflict,
			wantTransition: true,
		},
		{
			name: "error: storage failure",
			setupMock: func(m *txMocks) {
				m.coupons.EXPECT().TransitionCoupon(gomock.Any(), m.db, int64(11), coupon.Redemption, now).
					Return(nil, infra.WrapRepoErr("failed to redeem coupon", errs.New("connection reset")))
			},
			wantErr: errs.ErrTransactionFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			m := newTxMocks(ctrl)
			uc := commands.NewCouponCommands(m.uow, clock.NewMockClock(now))
			tc.setupMock(m)

			res, err := uc.Redeem(ctx, 11)

			if tc.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errs.Is(err, tc.wantErr), "got %v", err)
				assert.Equal(t, tc.wantTransition, errs.Is(err, coupon.ErrInvalidTransition))
				assert.Nil(t, res)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(11), res.CouponID)
			assert.Equal(t, "Lunch", res.MealType)
			assert.True(t, res.RedeemedAt.Equal(now))
		})
	}
}
