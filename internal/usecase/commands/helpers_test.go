//go:build unit

package commands_test

import (
	"context"
	"time"

	"canteen-coupon/internal/usecase/shared"
	sharedmock "canteen-coupon/tests/mock/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/mock/gomock"
)

var ist = time.FixedZone("IST", 5*3600+1800)

type txMocks struct {
	uow     *sharedmock.MockUnitOfWork
	tx      *sharedmock.MockTx
	coupons *sharedmock.MockCouponRepository
	menu    *sharedmock.MockMenuRepository
	reads   *sharedmock.MockCommandReads
	db      *stubDBTX
}

// newTxMocks wires a unit of work whose Within runs fn once against a
// mocked Tx. Accessors may be called any number of times.
func newTxMocks(ctrl *gomock.Controller) *txMocks {
	m := &txMocks{
		uow:     sharedmock.NewMockUnitOfWork(ctrl),
		tx:      sharedmock.NewMockTx(ctrl),
		coupons: sharedmock.NewMockCouponRepository(ctrl),
		menu:    sharedmock.NewMockMenuRepository(ctrl),
		reads:   sharedmock.NewMockCommandReads(ctrl),
		db:      &stubDBTX{},
	}
	m.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, m.tx)
		}).AnyTimes()
	m.tx.EXPECT().Coupons().Return(m.coupons).AnyTimes()
	m.tx.EXPECT().Menu().Return(m.menu).AnyTimes()
	m.tx.EXPECT().Reads().Return(m.reads).AnyTimes()
	m.tx.EXPECT().DB().Return(m.db).AnyTimes()
	return m
}

type stubDBTX struct{}

func (s *stubDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (s *stubDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (s *stubDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}

func (s *stubDBTX) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
