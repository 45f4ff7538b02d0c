package usecases

import (
	"context"

	"escala/internal/domain/roster"
	"escala/internal/shared/biztime"
	"escala/internal/shared/errors"
	"escala/internal/shared/logger"
)

type PublishPeriodCommand struct {
	StartDate string
	EndDate   string
}

type PublishPeriodResult struct {
	PublishedDates []string
}

// PublishPeriodUseCase moves every draft day in the range to published.
// Already-published days are left alone. Publishing opens the days to swap
// requests; it changes nothing else.
type PublishPeriodUseCase struct {
	dayRepo   roster.DayRepository
	txManager TransactionManager
	logger    logger.Interface
}

func NewPublishPeriodUseCase(
	dayRepo roster.DayRepository,
	txManager TransactionManager,
	logger logger.Interface,
) *PublishPeriodUseCase {
	return &PublishPeriodUseCase{
		dayRepo:   dayRepo,
		txManager: txManager,
		logger:    logger,
	}
}

func (uc *PublishPeriodUseCase) Execute(ctx context.Context, cmd PublishPeriodCommand) (*PublishPeriodResult, error) {
	uc.logger.Infow("executing publish period use case",
		"start", cmd.StartDate, "end", cmd.EndDate)

	start, err := biztime.ParseDate(cmd.StartDate)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	end, err := biztime.ParseDate(cmd.EndDate)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if end.Before(start) {
		return nil, errors.NewValidationError("end date cannot precede start date")
	}

	result := &PublishPeriodResult{}
	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		days, err := uc.dayRepo.ListRange(txCtx, start, end)
		if err != nil {
			return err
		}
		for _, day := range days {
			if day.IsPublished() {
				continue
			}
			if err := day.Publish(); err != nil {
				return errors.NewInvalidStateError(err.Error())
			}
			if err := uc.dayRepo.Update(txCtx, day); err != nil {
				return err
			}
			result.PublishedDates = append(result.PublishedDates,
				biztime.FormatDate(day.Date()))
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to publish period",
			"start", cmd.StartDate, "end", cmd.EndDate, "error", err)
		return nil, err
	}

	uc.logger.Infow("period published", "days", len(result.PublishedDates))
	return result, nil
}
