package usecases

import "context"

// TransactionManager runs a function inside a storage transaction. Satisfied
// by db.TransactionManager.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type AssignUserExecutor interface {
	Execute(ctx context.Context, cmd AssignUserCommand) (*AssignUserResult, error)
}

type UnassignUserExecutor interface {
	Execute(ctx context.Context, cmd UnassignUserCommand) (*UnassignUserResult, error)
}

type GenerateDayExecutor interface {
	Execute(ctx context.Context, cmd GenerateDayCommand) (*GenerateDayResult, error)
}

type GeneratePeriodExecutor interface {
	Execute(ctx context.Context, cmd GeneratePeriodCommand) (*GeneratePeriodResult, error)
}

type PublishPeriodExecutor interface {
	Execute(ctx context.Context, cmd PublishPeriodCommand) (*PublishPeriodResult, error)
}
