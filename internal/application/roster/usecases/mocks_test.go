package usecases

import (
	"context"
	"time"

	"escala/internal/domain/roster"
	"escala/internal/domain/scheduling"
	"escala/internal/domain/user"
	"escala/internal/shared/logger"
)

type mockUserRepository struct {
	GetByIDFunc func(ctx context.Context, id string) (*user.User, error)
	ListFunc    func(ctx context.Context) ([]*user.User, error)
	SaveFunc    func(ctx context.Context, u *user.User) error
	UpdateFunc  func(ctx context.Context, u *user.User) error
	DeleteFunc  func(ctx context.Context, id string) error
}

func (m *mockUserRepository) GetByID(ctx context.Context, id string) (*user.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepository) List(ctx context.Context) ([]*user.User, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockUserRepository) Save(ctx context.Context, u *user.User) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

type mockRoleGrantRepository struct {
	ListByUserFunc    func(ctx context.Context, userID string) (user.RoleSet, error)
	SavePermanentFunc func(ctx context.Context, grant user.RoleGrant) error
	SaveTemporaryFunc func(ctx context.Context, grant user.RoleGrant) error
}

func (m *mockRoleGrantRepository) ListByUser(ctx context.Context, userID string) (user.RoleSet, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockRoleGrantRepository) SavePermanent(ctx context.Context, grant user.RoleGrant) error {
	if m.SavePermanentFunc != nil {
		return m.SavePermanentFunc(ctx, grant)
	}
	return nil
}

func (m *mockRoleGrantRepository) SaveTemporary(ctx context.Context, grant user.RoleGrant) error {
	if m.SaveTemporaryFunc != nil {
		return m.SaveTemporaryFunc(ctx, grant)
	}
	return nil
}

type mockPostRepository struct {
	GetByIDFunc func(ctx context.Context, id uint) (*roster.Post, error)
	ListFunc    func(ctx context.Context) ([]*roster.Post, error)
	SaveFunc    func(ctx context.Context, p *roster.Post) error
}

func (m *mockPostRepository) GetByID(ctx context.Context, id uint) (*roster.Post, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockPostRepository) List(ctx context.Context) ([]*roster.Post, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockPostRepository) Save(ctx context.Context, p *roster.Post) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, p)
	}
	return nil
}

type mockDayRepository struct {
	GetByDateFunc    func(ctx context.Context, date time.Time) (*roster.RosterDay, error)
	SaveIfAbsentFunc func(ctx context.Context, d *roster.RosterDay) (bool, error)
	UpdateFunc       func(ctx context.Context, d *roster.RosterDay) error
	ListRangeFunc    func(ctx context.Context, start, end time.Time) ([]*roster.RosterDay, error)
}

func (m *mockDayRepository) GetByDate(ctx context.Context, date time.Time) (*roster.RosterDay, error) {
	if m.GetByDateFunc != nil {
		return m.GetByDateFunc(ctx, date)
	}
	return nil, nil
}

func (m *mockDayRepository) SaveIfAbsent(ctx context.Context, d *roster.RosterDay) (bool, error) {
	if m.SaveIfAbsentFunc != nil {
		return m.SaveIfAbsentFunc(ctx, d)
	}
	return true, nil
}

func (m *mockDayRepository) Update(ctx context.Context, d *roster.RosterDay) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, d)
	}
	return nil
}

func (m *mockDayRepository) ListRange(ctx context.Context, start, end time.Time) ([]*roster.RosterDay, error) {
	if m.ListRangeFunc != nil {
		return m.ListRangeFunc(ctx, start, end)
	}
	return nil, nil
}

type mockAllocationRepository struct {
	GetByIDFunc           func(ctx context.Context, id string) (*roster.Allocation, error)
	FindByUserAndDateFunc func(ctx context.Context, userID string, date time.Time) (*roster.Allocation, error)
	ListByDateFunc        func(ctx context.Context, date time.Time) ([]*roster.Allocation, error)
	ExistsInRangeFunc     func(ctx context.Context, userID string, start, end time.Time) (bool, error)
	SaveFunc              func(ctx context.Context, a *roster.Allocation) error
	UpdateUserFunc        func(ctx context.Context, a *roster.Allocation) error
	DeleteFunc            func(ctx context.Context, id string) error
}

func (m *mockAllocationRepository) GetByID(ctx context.Context, id string) (*roster.Allocation, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockAllocationRepository) FindByUserAndDate(ctx context.Context, userID string, date time.Time) (*roster.Allocation, error) {
	if m.FindByUserAndDateFunc != nil {
		return m.FindByUserAndDateFunc(ctx, userID, date)
	}
	return nil, nil
}

func (m *mockAllocationRepository) ListByDate(ctx context.Context, date time.Time) ([]*roster.Allocation, error) {
	if m.ListByDateFunc != nil {
		return m.ListByDateFunc(ctx, date)
	}
	return nil, nil
}

func (m *mockAllocationRepository) ExistsInRange(ctx context.Context, userID string, start, end time.Time) (bool, error) {
	if m.ExistsInRangeFunc != nil {
		return m.ExistsInRangeFunc(ctx, userID, start, end)
	}
	return false, nil
}

func (m *mockAllocationRepository) Save(ctx context.Context, a *roster.Allocation) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, a)
	}
	return nil
}

func (m *mockAllocationRepository) UpdateUser(ctx context.Context, a *roster.Allocation) error {
	if m.UpdateUserFunc != nil {
		return m.UpdateUserFunc(ctx, a)
	}
	return nil
}

func (m *mockAllocationRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

type mockUnavailabilityRepository struct {
	ListByUserFunc   func(ctx context.Context, userID string) ([]*roster.UnavailabilityWindow, error)
	ListCoveringFunc func(ctx context.Context, date time.Time) ([]*roster.UnavailabilityWindow, error)
	SaveFunc         func(ctx context.Context, w *roster.UnavailabilityWindow) error
}

func (m *mockUnavailabilityRepository) ListByUser(ctx context.Context, userID string) ([]*roster.UnavailabilityWindow, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockUnavailabilityRepository) ListCovering(ctx context.Context, date time.Time) ([]*roster.UnavailabilityWindow, error) {
	if m.ListCoveringFunc != nil {
		return m.ListCoveringFunc(ctx, date)
	}
	return nil, nil
}

func (m *mockUnavailabilityRepository) Save(ctx context.Context, w *roster.UnavailabilityWindow) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, w)
	}
	return nil
}

type mockPresenceProvider struct {
	StatusForFunc func(ctx context.Context, userID string) (scheduling.PresenceStatus, error)
}

func (m *mockPresenceProvider) StatusFor(ctx context.Context, userID string) (scheduling.PresenceStatus, error) {
	if m.StatusForFunc != nil {
		return m.StatusForFunc(ctx, userID)
	}
	return scheduling.PresenceStatus{}, nil
}

type mockTransactionManager struct {
	RunInTransactionFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *mockTransactionManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunInTransactionFunc != nil {
		return m.RunInTransactionFunc(ctx, fn)
	}
	return fn(ctx)
}

type mockGenerateDayExecutor struct {
	ExecuteFunc func(ctx context.Context, cmd GenerateDayCommand) (*GenerateDayResult, error)
}

func (m *mockGenerateDayExecutor) Execute(ctx context.Context, cmd GenerateDayCommand) (*GenerateDayResult, error) {
	if m.ExecuteFunc != nil {
		return m.ExecuteFunc(ctx, cmd)
	}
	return &GenerateDayResult{Date: cmd.Date, Routine: cmd.Routine}, nil
}

func testLogger() logger.Interface {
	return logger.NewLogger()
}
