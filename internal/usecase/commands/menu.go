package commands

import (
	"context"
	"log/slog"

	"canteen-coupon/internal/domain/menu"
	"canteen-coupon/internal/pkg/errs"
	"canteen-coupon/internal/pkg/metrics"
	"canteen-coupon/internal/usecase/shared"
)

type PublishMenuResult struct {
	Version     int32
	Count       int64
	Deactivated int64
	Rejected    []menu.RejectedRow
}

type MenuCommands interface {
	PublishMenu(ctx context.Context, rows []menu.Row) (*PublishMenuResult, error)
}

type menuCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewMenuCommands(uow shared.UnitOfWork) MenuCommands {
	return &menuCommandsImpl{uow: uow}
}

// PublishMenu replaces the active menu with the valid rows in one
// transaction. Nothing is written unless at least one row is valid.
func (uc *menuCommandsImpl) PublishMenu(ctx context.Context, rows []menu.Row) (*PublishMenuResult, error) {
	batch, err := menu.NewBatch(rows)
	if err != nil {
		metrics.RecordMenuPublication(metrics.ResultRejected)
		return nil, errs.Mark(err, errs.ErrValidation)
	}
	for _, r := range batch.Rejected() {
		slog.Warn("menu row skipped", "line", r.Row.Line, "day", r.Row.Day, "meal_type", r.Row.MealType, "reason", r.Reason.Error())
	}

	result := &PublishMenuResult{Rejected: batch.Rejected()}
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		repo := tx.Menu()
		if derr := repo.LockPublication(ctx, tx.DB()); derr != nil {
			return derr
		}
		deactivated, derr := repo.DeactivateAll(ctx, tx.DB())
		if derr != nil {
			return derr
		}
		version, derr := repo.NextVersion(ctx, tx.DB())
		if derr != nil {
			return derr
		}
		count, derr := repo.InsertBatch(ctx, tx.DB(), version, batch)
		if derr != nil {
			return derr
		}
		result.Version = version
		result.Count = count
		result.Deactivated = deactivated
		return nil
	})
	if err != nil {
		metrics.RecordMenuPublication(metrics.ResultFailure)
		return nil, txFailure(err)
	}

	metrics.RecordMenuPublication(metrics.ResultSuccess)
	slog.Info("menu published",
		"version", result.Version,
		"items", result.Count,
		"deactivated", result.Deactivated,
		"skipped_rows", len(result.Rejected))
	return result, nil
}
