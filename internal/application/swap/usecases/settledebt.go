package usecases

import (
	"context"
	"time"

	"escala/internal/domain/swap"
	"escala/internal/shared/errors"
	"escala/internal/shared/logger"
)

type SettleDebtCommand struct {
	DebtID string
}

type SettleDebtResult struct {
	DebtID string
	Status string
	PaidAt string
}

// SettleDebtUseCase marks a swap-originated debt as repaid.
type SettleDebtUseCase struct {
	debtRepo swap.DebtRepository
	logger   logger.Interface
}

func NewSettleDebtUseCase(debtRepo swap.DebtRepository, logger logger.Interface) *SettleDebtUseCase {
	return &SettleDebtUseCase{
		debtRepo: debtRepo,
		logger:   logger,
	}
}

func (uc *SettleDebtUseCase) Execute(ctx context.Context, cmd SettleDebtCommand) (*SettleDebtResult, error) {
	uc.logger.Infow("executing settle debt use case", "debt_id", cmd.DebtID)

	if len(cmd.DebtID) == 0 {
		return nil, errors.NewValidationError("debt ID is required")
	}

	d, err := uc.debtRepo.GetByID(ctx, cmd.DebtID)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, errors.NewNotFoundError("debt not found", cmd.DebtID)
	}

	if err := d.Settle(); err != nil {
		return nil, err
	}
	if err := uc.debtRepo.Update(ctx, d); err != nil {
		uc.logger.Errorw("failed to update debt", "debt_id", d.ID(), "error", err)
		return nil, err
	}

	uc.logger.Infow("debt settled", "debt_id", d.ID())

	result := &SettleDebtResult{
		DebtID: d.ID(),
		Status: string(d.Status()),
	}
	if d.PaidAt() != nil {
		result.PaidAt = d.PaidAt().UTC().Format(time.RFC3339)
	}
	return result, nil
}
