package usecases

import "context"

// TransactionManager runs a function inside a storage transaction. Satisfied
// by db.TransactionManager.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type RequestSwapExecutor interface {
	Execute(ctx context.Context, cmd RequestSwapCommand) (*RequestSwapResult, error)
}

type ApproveSwapExecutor interface {
	Execute(ctx context.Context, cmd ApproveSwapCommand) (*ApproveSwapResult, error)
}

type RejectSwapExecutor interface {
	Execute(ctx context.Context, cmd RejectSwapCommand) (*RejectSwapResult, error)
}

type SettleDebtExecutor interface {
	Execute(ctx context.Context, cmd SettleDebtCommand) (*SettleDebtResult, error)
}
