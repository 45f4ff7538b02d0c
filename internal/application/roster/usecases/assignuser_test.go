package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"escala/internal/domain/roster"
	rostervo "escala/internal/domain/roster/valueobjects"
	"escala/internal/domain/user"
	uservo "escala/internal/domain/user/valueobjects"
	"escala/internal/shared/errors"
)

func fixtureUser(t *testing.T, id string, year int64, gender uservo.Gender, rn, punish int64) *user.User {
	t.Helper()
	now := time.Now().UTC()
	u, err := user.ReconstructUser(id, "User "+id, "Alfa", year, "Marinha", gender,
		rn, 0, punish, 1, now, now)
	require.NoError(t, err)
	return u
}

func fixturePost(t *testing.T, id uint, name string, years []int64) *roster.Post {
	t.Helper()
	p, err := roster.ReconstructPost(id, name, rostervo.RestrictionNone, years, false, "")
	require.NoError(t, err)
	return p
}

func fixtureDay(t *testing.T, date string, routine rostervo.RoutineType) *roster.RosterDay {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", date)
	require.NoError(t, err)
	d, err := roster.NewRosterDay(parsed, routine)
	require.NoError(t, err)
	return d
}

func newAssignUserUseCase(
	userRepo *mockUserRepository,
	postRepo *mockPostRepository,
	dayRepo *mockDayRepository,
	allocRepo *mockAllocationRepository,
) *AssignUserUseCase {
	return NewAssignUserUseCase(
		userRepo,
		&mockRoleGrantRepository{},
		postRepo,
		dayRepo,
		allocRepo,
		&mockUnavailabilityRepository{},
		&mockPresenceProvider{},
		&mockTransactionManager{},
		1,
		testLogger(),
	)
}

func TestAssignUserSuccess(t *testing.T) {
	u := fixtureUser(t, "101", 2, uservo.GenderMale, 3, 0)
	post := fixturePost(t, 7, "Vigia", []int64{2})
	day := fixtureDay(t, "2025-10-22", rostervo.RoutineNormal)

	var saved *roster.Allocation
	var updatedUser *user.User

	userRepo := &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, id string) (*user.User, error) { return u, nil },
		UpdateFunc: func(ctx context.Context, u *user.User) error {
			updatedUser = u
			return nil
		},
	}
	allocRepo := &mockAllocationRepository{
		SaveFunc: func(ctx context.Context, a *roster.Allocation) error {
			saved = a
			return nil
		},
	}
	uc := newAssignUserUseCase(userRepo,
		&mockPostRepository{GetByIDFunc: func(ctx context.Context, id uint) (*roster.Post, error) { return post, nil }},
		&mockDayRepository{GetByDateFunc: func(ctx context.Context, date time.Time) (*roster.RosterDay, error) { return day, nil }},
		allocRepo)

	result, err := uc.Execute(context.Background(), AssignUserCommand{
		UserID: "101", PostID: 7, Date: "2025-10-22",
	})

	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, "101", saved.UserID())
	assert.Equal(t, uint(7), saved.PostID())
	assert.False(t, saved.IsPunishment())
	assert.Empty(t, result.Tag)
	require.NotNil(t, updatedUser)
	assert.Equal(t, int64(4), updatedUser.NormalCount())
}

func TestAssignUserCohortMismatch(t *testing.T) {
	// post restricted to cohort 2, candidate from cohort 1
	u := fixtureUser(t, "101", 1, uservo.GenderMale, 0, 0)
	post := fixturePost(t, 7, "Vigia", []int64{2})
	day := fixtureDay(t, "2025-10-22", rostervo.RoutineNormal)

	uc := newAssignUserUseCase(
		&mockUserRepository{GetByIDFunc: func(ctx context.Context, id string) (*user.User, error) { return u, nil }},
		&mockPostRepository{GetByIDFunc: func(ctx context.Context, id uint) (*roster.Post, error) { return post, nil }},
		&mockDayRepository{GetByDateFunc: func(ctx context.Context, date time.Time) (*roster.RosterDay, error) { return day, nil }},
		&mockAllocationRepository{
			SaveFunc: func(ctx context.Context, a *roster.Allocation) error {
				t.Fatal("save must not be called for an ineligible user")
				return nil
			},
		})

	_, err := uc.Execute(context.Background(), AssignUserCommand{
		UserID: "101", PostID: 7, Date: "2025-10-22",
	})

	require.Error(t, err)
	assert.True(t, errors.IsIneligibleError(err))
	appErr := errors.GetAppError(err)
	require.NotEmpty(t, appErr.Reasons)
	assert.Contains(t, appErr.Reasons[0], "cohort mismatch")
}

func TestAssignUserDuplicateDateConflict(t *testing.T) {
	u := fixtureUser(t, "101", 2, uservo.GenderMale, 0, 0)
	post := fixturePost(t, 7, "Vigia", []int64{2})
	day := fixtureDay(t, "2025-10-22", rostervo.RoutineNormal)

	uc := newAssignUserUseCase(
		&mockUserRepository{GetByIDFunc: func(ctx context.Context, id string) (*user.User, error) { return u, nil }},
		&mockPostRepository{GetByIDFunc: func(ctx context.Context, id uint) (*roster.Post, error) { return post, nil }},
		&mockDayRepository{GetByDateFunc: func(ctx context.Context, date time.Time) (*roster.RosterDay, error) { return day, nil }},
		&mockAllocationRepository{
			SaveFunc: func(ctx context.Context, a *roster.Allocation) error {
				return errors.NewConflictError("allocation already exists for user and date")
			},
		})

	_, err := uc.Execute(context.Background(), AssignUserCommand{
		UserID: "101", PostID: 7, Date: "2025-10-22",
	})

	require.Error(t, err)
	assert.True(t, errors.IsConflictError(err))
}

func TestAssignUserRestIntervalBlocks(t *testing.T) {
	u := fixtureUser(t, "101", 2, uservo.GenderMale, 0, 0)
	post := fixturePost(t, 7, "Vigia", []int64{2})
	day := fixtureDay(t, "2025-10-22", rostervo.RoutineNormal)

	uc := newAssignUserUseCase(
		&mockUserRepository{GetByIDFunc: func(ctx context.Context, id string) (*user.User, error) { return u, nil }},
		&mockPostRepository{GetByIDFunc: func(ctx context.Context, id uint) (*roster.Post, error) { return post, nil }},
		&mockDayRepository{GetByDateFunc: func(ctx context.Context, date time.Time) (*roster.RosterDay, error) { return day, nil }},
		&mockAllocationRepository{
			ExistsInRangeFunc: func(ctx context.Context, userID string, start, end time.Time) (bool, error) {
				return true, nil
			},
		})

	_, err := uc.Execute(context.Background(), AssignUserCommand{
		UserID: "101", PostID: 7, Date: "2025-10-22",
	})

	require.Error(t, err)
	assert.True(t, errors.IsIneligibleError(err))
}

func TestAssignUserDayNotFound(t *testing.T) {
	uc := newAssignUserUseCase(
		&mockUserRepository{},
		&mockPostRepository{},
		&mockDayRepository{},
		&mockAllocationRepository{})

	_, err := uc.Execute(context.Background(), AssignUserCommand{
		UserID: "101", PostID: 7, Date: "2025-10-22",
	})

	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestAssignUserPunishmentRequiresBalance(t *testing.T) {
	u := fixtureUser(t, "101", 2, uservo.GenderMale, 0, 0)
	post := fixturePost(t, 7, "Vigia", []int64{2})
	day := fixtureDay(t, "2025-10-22", rostervo.RoutineNormal)

	uc := newAssignUserUseCase(
		&mockUserRepository{GetByIDFunc: func(ctx context.Context, id string) (*user.User, error) { return u, nil }},
		&mockPostRepository{GetByIDFunc: func(ctx context.Context, id uint) (*roster.Post, error) { return post, nil }},
		&mockDayRepository{GetByDateFunc: func(ctx context.Context, date time.Time) (*roster.RosterDay, error) { return day, nil }},
		&mockAllocationRepository{})

	_, err := uc.Execute(context.Background(), AssignUserCommand{
		UserID: "101", PostID: 7, Date: "2025-10-22", IsPunishment: true,
	})

	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestAssignUserPunishmentPaysBalance(t *testing.T) {
	u := fixtureUser(t, "101", 2, uservo.GenderMale, 3, 2)
	post := fixturePost(t, 7, "Vigia", []int64{2})
	day := fixtureDay(t, "2025-10-22", rostervo.RoutineNormal)

	uc := newAssignUserUseCase(
		&mockUserRepository{GetByIDFunc: func(ctx context.Context, id string) (*user.User, error) { return u, nil }},
		&mockPostRepository{GetByIDFunc: func(ctx context.Context, id uint) (*roster.Post, error) { return post, nil }},
		&mockDayRepository{GetByDateFunc: func(ctx context.Context, date time.Time) (*roster.RosterDay, error) { return day, nil }},
		&mockAllocationRepository{})

	result, err := uc.Execute(context.Background(), AssignUserCommand{
		UserID: "101", PostID: 7, Date: "2025-10-22", IsPunishment: true,
	})

	require.NoError(t, err)
	assert.True(t, result.IsPunishment)
	assert.Equal(t, int64(1), u.PunishmentBalance())
	// punishment service never counts toward the routine counters
	assert.Equal(t, int64(3), u.NormalCount())
}

func TestAssignUserValidation(t *testing.T) {
	uc := newAssignUserUseCase(
		&mockUserRepository{}, &mockPostRepository{},
		&mockDayRepository{}, &mockAllocationRepository{})

	tests := []struct {
		name string
		cmd  AssignUserCommand
	}{
		{"missing user", AssignUserCommand{PostID: 7, Date: "2025-10-22"}},
		{"missing post", AssignUserCommand{UserID: "101", Date: "2025-10-22"}},
		{"missing date", AssignUserCommand{UserID: "101", PostID: 7}},
		{"bad date", AssignUserCommand{UserID: "101", PostID: 7, Date: "22/10/2025"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.cmd)
			require.Error(t, err)
			assert.True(t, errors.IsValidationError(err))
		})
	}
}
