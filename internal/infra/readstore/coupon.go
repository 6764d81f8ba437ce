package readstore

import (
	"context"
	"time"

	"canteen-coupon/internal/infra"
	sqlc "canteen-coupon/internal/infra/sqlc/generated"
	"canteen-coupon/internal/pkg/pgconv"
	"canteen-coupon/internal/usecase/queries"

	"github.com/google/uuid"
)

type CouponViewQueries interface {
	GetCouponByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Coupons, error)
	ListCouponsByOrder(ctx context.Context, db sqlc.DBTX, orderID uuid.UUID) ([]sqlc.Coupons, error)
	CountCouponsByOrder(ctx context.Context, db sqlc.DBTX, orderID uuid.UUID) (int64, error)
	CountCouponsByMealAndStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.CountCouponsByMealAndStatusParams) ([]sqlc.CountCouponsByMealAndStatusRow, error)
	SearchCoupons(ctx context.Context, db sqlc.DBTX, arg sqlc.SearchCouponsParams) ([]sqlc.Coupons, error)
}

type CouponReadStore struct {
	queries CouponViewQueries
	db      sqlc.DBTX
}

func NewCouponReadStore(queries CouponViewQueries, db sqlc.DBTX) *CouponReadStore {
	return &CouponReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *CouponReadStore) FindByID(ctx context.Context, id int64) (*queries.CouponView, error) {
	row, err := r.queries.GetCouponByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("coupon not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find coupon by ID", err)
	}
	return toCouponView(row), nil
}

func (r *CouponReadStore) FindByOrder(ctx context.Context, orderID uuid.UUID) ([]*queries.CouponView, error) {
	rows, err := r.queries.ListCouponsByOrder(ctx, r.db, orderID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list coupons by order", err)
	}
	return toCouponViews(rows), nil
}

func (r *CouponReadStore) CountByOrder(ctx context.Context, orderID uuid.UUID) (int64, error) {
	n, err := r.queries.CountCouponsByOrder(ctx, r.db, orderID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count coupons by order", err)
	}
	return n, nil
}

func (r *CouponReadStore) CountByMealAndStatus(ctx context.Context, mealDate time.Time, statuses []string) ([]queries.StatusCount, error) {
	rows, err := r.queries.CountCouponsByMealAndStatus(ctx, r.db, sqlc.CountCouponsByMealAndStatusParams{
		MealDate: pgconv.DateToPgtype(mealDate),
		Statuses: statuses,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to count coupons by meal and status", err)
	}

	result := make([]queries.StatusCount, len(rows))
	for i, row := range rows {
		result[i] = queries.StatusCount{
			MealType: row.MealType,
			Status:   row.Status,
			Count:    row.Total,
		}
	}
	return result, nil
}

func (r *CouponReadStore) Search(ctx context.Context, params queries.CouponSearch) ([]*queries.CouponView, error) {
	rows, err := r.queries.SearchCoupons(ctx, r.db, sqlc.SearchCouponsParams{
		Search:        pgconv.StringPtrToPgtype(params.Search),
		OrderID:       pgconv.UUIDPtrToPgtype(params.OrderID),
		CustomerName:  pgconv.StringPtrToPgtype(params.Name),
		CustomerEmail: pgconv.StringPtrToPgtype(params.Email),
		CustomerPhone: pgconv.StringPtrToPgtype(params.Phone),
		MealType:      pgconv.StringPtrToPgtype(params.MealType),
		Status:        pgconv.StringPtrToPgtype(params.Status),
		MealDate:      pgconv.DatePtrToPgtype(params.Date),
		RowLimit:      params.Limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search coupons", err)
	}
	return toCouponViews(rows), nil
}

func toCouponViews(rows []sqlc.Coupons) []*queries.CouponView {
	result := make([]*queries.CouponView, len(rows))
	for i, row := range rows {
		result[i] = toCouponView(row)
	}
	return result
}

func toCouponView(row sqlc.Coupons) *queries.CouponView {
	return &queries.CouponView{
		ID:            row.ID,
		OrderID:       row.OrderID,
		MealDate:      pgconv.DateFromPgtype(row.MealDate),
		Day:           row.DayOfWeek,
		MealType:      row.MealType,
		Price:         row.Price,
		CustomerName:  row.CustomerName,
		CustomerEmail: row.CustomerEmail,
		CustomerPhone: row.CustomerPhone,
		OrderType:     row.OrderType,
		Status:        row.Status,
		CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:     pgconv.TimeFromPgtype(row.UpdatedAt),
		RedeemedAt:    pgconv.TimePtrFromPgtype(row.RedeemedAt),
	}
}
