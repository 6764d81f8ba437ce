//go:build unit

package readstore_test

import (
	"context"
	"testing"
	"time"

	"canteen-coupon/internal/domain/menu"
	"canteen-coupon/internal/infra"
	"canteen-coupon/internal/infra/readstore"
	sqlc "canteen-coupon/internal/infra/sqlc/generated"
	"canteen-coupon/tests/common/builder"
	readstoremock "canteen-coupon/tests/mock/readstore"

	"github.com/google/go-cmp/cmp"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// =============================================================================
// ListActive Tests
// =============================================================================

func TestMenuReadStore_ListActive(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		setupMock     func(*readstoremock.MockMenuViewQueries, *builder.MenuBuilder)
		expectedLen   int
		expectedError bool
	}{
		{
			name: "success: full week",
			setupMock: func(mock *readstoremock.MockMenuViewQueries, b *builder.MenuBuilder) {
				mock.EXPECT().ListActiveMenuItems(ctx, gomock.Any()).Return(b.BuildInfra(), nil)
			},
			expectedLen: 21,
		},
		{
			name: "success: nothing published yet",
			setupMock: func(mock *readstoremock.MockMenuViewQueries, _ *builder.MenuBuilder) {
				mock.EXPECT().ListActiveMenuItems(ctx, gomock.Any()).Return([]sqlc.MenuItems{}, nil)
			},
			expectedLen: 0,
		},
		{
			name: "error: database connection error",
			setupMock: func(mock *readstoremock.MockMenuViewQueries, _ *builder.MenuBuilder) {
				mock.EXPECT().ListActiveMenuItems(ctx, gomock.Any()).Return(nil, errDBConnectionLost)
			},
			expectedError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := readstoremock.NewMockMenuViewQueries(ctrl)
			store := readstore.NewMenuReadStore(mockQueries, &mockDBTX{})
			b := builder.NewMenuBuilder().With(func(b *builder.MenuBuilder) {
				b.CreatedAt = time.Date(2026, time.October, 12, 8, 0, 0, 0, time.UTC)
			})

			tc.setupMock(mockQueries, b)

			views, err := store.ListActive(ctx)

			if tc.expectedError {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
				return
			}
			require.NoError(t, err)
			assert.Len(t, views, tc.expectedLen)
			if tc.expectedLen > 0 {
				if diff := cmp.Diff(b.BuildViews(), views); diff != "" {
					t.Errorf("menu views mismatch (-want +got):\n%s", diff)
				}
			}
		})
	}
}

// =============================================================================
// ListHistory Tests
// =============================================================================

func TestMenuReadStore_ListHistory(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := readstoremock.NewMockMenuViewQueries(ctrl)
	store := readstore.NewMenuReadStore(mockQueries, &mockDBTX{})

	created := time.Date(2026, time.October, 1, 8, 0, 0, 0, time.UTC)
	mockQueries.EXPECT().ListMenuItemHistory(ctx, gomock.Any(), sqlc.ListMenuItemHistoryParams{
		DayOfWeek: "Monday",
		MealType:  "Lunch",
	}).Return([]sqlc.MenuItems{
		{ID: 30, DayOfWeek: "Monday", MealType: "Lunch", Version: 2, Description: "Rajma rice", Price: decimal.RequireFromString("65.00"), IsActive: true, CreatedAt: pgtype.Timestamptz{Time: created, Valid: true}},
		{ID: 9, DayOfWeek: "Monday", MealType: "Lunch", Version: 1, Description: "Dal rice", Price: decimal.RequireFromString("60.00"), IsActive: false, CreatedAt: pgtype.Timestamptz{Time: created.AddDate(0, 0, -7), Valid: true}},
	}, nil)

	views, err := store.ListHistory(ctx, menu.Monday.String(), menu.Lunch.String())
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, int32(2), views[0].Version)
	assert.True(t, views[0].IsActive)
	assert.False(t, views[1].IsActive)
	assert.Equal(t, "60", views[1].Price.String())
}

// =============================================================================
// ListActivePrices Tests
// =============================================================================

func TestMenuReadStore_ListActivePrices(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := readstoremock.NewMockMenuViewQueries(ctrl)
	store := readstore.NewMenuReadStore(mockQueries, &mockDBTX{})

	mockQueries.EXPECT().ListActiveMenuPrices(ctx, gomock.Any()).Return([]sqlc.ListActiveMenuPricesRow{
		{DayOfWeek: "Wednesday", MealType: "Lunch", Price: decimal.RequireFromString("60.00")},
	}, nil)

	prices, err := store.ListActivePrices(ctx)
	require.NoError(t, err)
	require.Len(t, prices, 1)
	assert.Equal(t, "Wednesday", prices[0].Day)
	assert.Equal(t, "Lunch", prices[0].MealType)
	assert.True(t, prices[0].Price.Equal(decimal.NewFromInt(60)))
}

// =============================================================================
// Test Helpers
// =============================================================================

func pgDate(t time.Time) pgtype.Date {
	return pgtype.Date{Time: t, Valid: true}
}

type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}

func (m *mockDBTX) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
