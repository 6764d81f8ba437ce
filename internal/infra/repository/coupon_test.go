//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"canteen-coupon/internal/domain/coupon"
	"canteen-coupon/internal/infra"
	"canteen-coupon/internal/infra/repository"
	sqlc "canteen-coupon/internal/infra/sqlc/generated"
	"canteen-coupon/tests/common/builder"
	repositorymock "canteen-coupon/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var errDBConnectionLost = errors.New("database connection lost")

// =============================================================================
// CreateBatch Tests
// =============================================================================

func TestCouponRepository_CreateBatch(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockCouponWriteQueries, sqlc.DBTX)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: every coupon copied as Pending",
			setupMock: func(mock *repositorymock.MockCouponWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().InsertCoupons(ctx, tx, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ sqlc.DBTX, params []sqlc.InsertCouponsParams) (int64, error) {
						for _, p := range params {
							assert.Equal(t, "Pending", p.Status)
							assert.Equal(t, "Lunch", p.MealType)
							assert.Equal(t, "60", p.Price.String())
						}
						return int64(len(params)), nil
					})
			},
		},
		{
			name: "error: short copy",
			setupMock: func(mock *repositorymock.MockCouponWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().InsertCoupons(ctx, tx, gomock.Any()).Return(int64(1), nil)
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
		{
			name: "error: check constraint rejects row",
			setupMock: func(mock *repositorymock.MockCouponWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().InsertCoupons(ctx, tx, gomock.Any()).
					Return(int64(0), &pgconn.PgError{Code: "23514", Message: "violates check constraint"})
			},
			expectedError: true,
			expectKind:    infra.KindCheckViolated,
		},
		{
			name: "error: database error occurs",
			setupMock: func(mock *repositorymock.MockCouponWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().InsertCoupons(ctx, tx, gomock.Any()).Return(int64(0), errDBConnectionLost)
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockCouponWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewCouponRepository(mockQueries, mockDB)

			pending := builder.NewCouponBuilder().With(func(b *builder.CouponBuilder) {
				b.Status = coupon.StatusPending
			})
			coupons := []*coupon.Coupon{pending.BuildDomain(), pending.BuildDomain(), pending.BuildDomain()}

			tc.setupMock(mockQueries, mockDB)

			n, actualError := repo.CreateBatch(ctx, mockDB, coupons)

			if tc.expectedError {
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, actualError)
				assert.Zero(t, n)
			} else {
				require.NoError(t, actualError)
				assert.Equal(t, int64(3), n)
			}
		})
	}
}

// =============================================================================
// TransitionOrder Tests
// =============================================================================

func TestCouponRepository_TransitionOrder(t *testing.T) {
	ctx := context.Background()
	orderID := uuid.New()
	at := time.Date(2026, time.October, 14, 9, 0, 0, 0, time.UTC)

	t.Run("success: source status guards the update", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockCouponWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewCouponRepository(mockQueries, mockDB)

		mockQueries.EXPECT().TransitionOrderCoupons(ctx, mockDB, sqlc.TransitionOrderCouponsParams{
			ToStatus:   "Active",
			UpdatedAt:  timestamptz(at),
			OrderID:    orderID,
			FromStatus: "Pending",
		}).Return(int64(2), nil)

		n, err := repo.TransitionOrder(ctx, mockDB, orderID, coupon.Activation, at)
		require.NoError(t, err)
		assert.Equal(t, int64(2), n)
	})

	t.Run("error: transition outside the table never reaches the database", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockCouponWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewCouponRepository(mockQueries, mockDB)

		_, err := repo.TransitionOrder(ctx, mockDB, orderID, coupon.Transition{}, at)
		require.Error(t, err)
		assert.ErrorIs(t, err, coupon.ErrInvalidTransition)
	})

	t.Run("error: database error occurs", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockCouponWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewCouponRepository(mockQueries, mockDB)

		mockQueries.EXPECT().TransitionOrderCoupons(ctx, mockDB, gomock.Any()).Return(int64(0), errDBConnectionLost)

		_, err := repo.TransitionOrder(ctx, mockDB, orderID, coupon.Activation, at)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

// =============================================================================
// TransitionCoupon Tests
// =============================================================================

func TestCouponRepository_TransitionCoupon(t *testing.T) {
	ctx := context.Background()
	at := time.Date(2026, time.October, 14, 12, 5, 0, 0, time.UTC)

	testCases := []struct {
		name          string
		transition    coupon.Transition
		setupMock     func(*repositorymock.MockCouponWriteQueries, sqlc.DBTX)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name:       "success: redemption stamps redeemed_at",
			transition: coupon.Redemption,
			setupMock: func(mock *repositorymock.MockCouponWriteQueries, tx sqlc.DBTX) {
				row := builder.NewCouponBuilder().With(func(b *builder.CouponBuilder) {
					b.ID = 42
					b.Status = coupon.StatusUsed
					b.RedeemedAt = &at
				}).BuildInfra()
				mock.EXPECT().TransitionCoupon(ctx, tx, sqlc.TransitionCouponParams{
					ToStatus:   "Used",
					RedeemedAt: timestamptz(at),
					UpdatedAt:  timestamptz(at),
					ID:         42,
					FromStatus: "Active",
				}).Return(row, nil)
			},
		},
		{
			name:       "success: expiry leaves redeemed_at untouched",
			transition: coupon.Expiry,
			setupMock: func(mock *repositorymock.MockCouponWriteQueries, tx sqlc.DBTX) {
				row := builder.NewCouponBuilder().With(func(b *builder.CouponBuilder) {
					b.ID = 42
					b.Status = coupon.StatusExpired
				}).BuildInfra()
				mock.EXPECT().TransitionCoupon(ctx, tx, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.TransitionCouponParams) (sqlc.Coupons, error) {
						assert.False(t, arg.RedeemedAt.Valid)
						assert.Equal(t, "Active", arg.FromStatus)
						assert.Equal(t, "Expired", arg.ToStatus)
						return row, nil
					})
			},
		},
		{
			name:       "error: no coupon in the source status",
			transition: coupon.Redemption,
			setupMock: func(mock *repositorymock.MockCouponWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().TransitionCoupon(ctx, tx, gomock.Any()).Return(sqlc.Coupons{}, pgx.ErrNoRows)
			},
			expectedError: true,
			expectKind:    infra.KindNotFound,
		},
		{
			name:       "error: database error occurs",
			transition: coupon.Redemption,
			setupMock: func(mock *repositorymock.MockCouponWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().TransitionCoupon(ctx, tx, gomock.Any()).Return(sqlc.Coupons{}, errDBConnectionLost)
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockCouponWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewCouponRepository(mockQueries, mockDB)

			tc.setupMock(mockQueries, mockDB)

			snap, actualError := repo.TransitionCoupon(ctx, mockDB, 42, tc.transition, at)

			if tc.expectedError {
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, actualError)
				assert.Nil(t, snap)
			} else {
				require.NoError(t, actualError)
				assert.Equal(t, int64(42), snap.ID)
				assert.Equal(t, tc.transition.To().String(), snap.Status)
			}
		})
	}

	t.Run("error: zero transition is rejected before the update", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockCouponWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewCouponRepository(mockQueries, mockDB)

		_, err := repo.TransitionCoupon(ctx, mockDB, 42, coupon.Transition{}, at)
		assert.ErrorIs(t, err, coupon.ErrInvalidTransition)
	})
}

// =============================================================================
// TransitionStale Tests
// =============================================================================

func TestCouponRepository_TransitionStale(t *testing.T) {
	ctx := context.Background()
	today := time.Date(2026, time.October, 15, 0, 0, 0, 0, time.UTC)
	at := today.Add(2 * time.Hour)

	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockCouponWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewCouponRepository(mockQueries, mockDB)

	mockQueries.EXPECT().TransitionStaleCoupons(ctx, mockDB, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.TransitionStaleCouponsParams) (int64, error) {
			assert.Equal(t, "Active", arg.FromStatus)
			assert.Equal(t, "Expired", arg.ToStatus)
			assert.True(t, arg.Before.Valid)
			assert.True(t, arg.Before.Time.Equal(today))
			return 5, nil
		})

	n, err := repo.TransitionStale(ctx, mockDB, today, coupon.Expiry, at)
	require.NoError(t, err)
	assert.Equal(t, int64(5), n)
}
