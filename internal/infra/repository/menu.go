package repository

import (
	"context"

	"canteen-coupon/internal/domain/menu"
	"canteen-coupon/internal/infra"
	"canteen-coupon/internal/infra/repository/converter"
	sqlc "canteen-coupon/internal/infra/sqlc/generated"
	"canteen-coupon/internal/pkg/errs"
)

type MenuWriteQueries interface {
	LockMenuPublication(ctx context.Context, db sqlc.DBTX) error
	DeactivateActiveMenuItems(ctx context.Context, db sqlc.DBTX) (int64, error)
	NextMenuVersion(ctx context.Context, db sqlc.DBTX) (int32, error)
	InsertMenuItems(ctx context.Context, db sqlc.DBTX, arg []sqlc.InsertMenuItemsParams) (int64, error)
}

type MenuRepository struct {
	queries MenuWriteQueries
	db      sqlc.DBTX
}

func NewMenuRepository(queries MenuWriteQueries, db sqlc.DBTX) *MenuRepository {
	return &MenuRepository{
		queries: queries,
		db:      db,
	}
}

func (r *MenuRepository) LockPublication(ctx context.Context, tx sqlc.DBTX) error {
	if err := r.queries.LockMenuPublication(ctx, tx); err != nil {
		return infra.WrapRepoErr("failed to lock menu publication", err)
	}
	return nil
}

func (r *MenuRepository) DeactivateAll(ctx context.Context, tx sqlc.DBTX) (int64, error) {
	n, err := r.queries.DeactivateActiveMenuItems(ctx, tx)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to deactivate menu items", err)
	}
	return n, nil
}

func (r *MenuRepository) NextVersion(ctx context.Context, tx sqlc.DBTX) (int32, error) {
	v, err := r.queries.NextMenuVersion(ctx, tx)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to allocate menu version", err)
	}
	return v, nil
}

func (r *MenuRepository) InsertBatch(ctx context.Context, tx sqlc.DBTX, version int32, batch *menu.Batch) (int64, error) {
	params := converter.MenuBatchToInsertParams(version, batch)
	n, err := r.queries.InsertMenuItems(ctx, tx, params)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to insert menu items", err)
	}
	if n != int64(len(params)) {
		return 0, infra.WrapRepoErr("failed to insert menu items", errs.Newf("copied %d of %d rows", n, len(params)))
	}
	return n, nil
}
