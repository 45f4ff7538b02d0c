package usecases

import (
	"context"
	"time"

	vo "escala/internal/domain/roster/valueobjects"
	"escala/internal/shared/biztime"
	"escala/internal/shared/errors"
	"escala/internal/shared/logger"
)

type GeneratePeriodCommand struct {
	StartDate string
	EndDate   string
	// Holidays are extra dates (YYYY-MM-DD) that run the heightened routine
	// on top of weekends.
	Holidays []string
}

type GeneratePeriodResult struct {
	Days []GenerateDayResult
}

// GeneratePeriodUseCase generates every day in a date range, picking the
// routine per day: weekends and listed holidays run the heightened routine,
// weekdays the normal one. Each day is its own transaction, so an unfillable
// day aborts itself without undoing the days already generated.
type GeneratePeriodUseCase struct {
	generateDay GenerateDayExecutor
	logger      logger.Interface
}

func NewGeneratePeriodUseCase(
	generateDay GenerateDayExecutor,
	logger logger.Interface,
) *GeneratePeriodUseCase {
	return &GeneratePeriodUseCase{
		generateDay: generateDay,
		logger:      logger,
	}
}

func (uc *GeneratePeriodUseCase) Execute(ctx context.Context, cmd GeneratePeriodCommand) (*GeneratePeriodResult, error) {
	uc.logger.Infow("executing generate period use case",
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

	holidays := make(map[string]bool, len(cmd.Holidays))
	for _, h := range cmd.Holidays {
		d, err := biztime.ParseDate(h)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		holidays[biztime.FormatDate(d)] = true
	}

	result := &GeneratePeriodResult{}
	for date := start; !date.After(end); date = date.AddDate(0, 0, 1) {
		dayResult, err := uc.generateDay.Execute(ctx, GenerateDayCommand{
			Date:    biztime.FormatDate(date),
			Routine: uc.routineFor(date, holidays).String(),
		})
		if err != nil {
			return nil, err
		}
		result.Days = append(result.Days, *dayResult)
	}

	uc.logger.Infow("period generated",
		"start", cmd.StartDate, "end", cmd.EndDate, "days", len(result.Days))
	return result, nil
}

func (uc *GeneratePeriodUseCase) routineFor(date time.Time, holidays map[string]bool) vo.RoutineType {
	if holidays[biztime.FormatDate(date)] {
		return vo.RoutineHeightened
	}
	switch date.Weekday() {
	case time.Saturday, time.Sunday:
		return vo.RoutineHeightened
	}
	return vo.RoutineNormal
}
