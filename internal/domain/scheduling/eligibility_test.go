package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"escala/internal/domain/roster"
	rostervo "escala/internal/domain/roster/valueobjects"
	"escala/internal/domain/user"
	uservo "escala/internal/domain/user/valueobjects"
)

func testUser(t *testing.T, id string, year int64, gender uservo.Gender) *user.User {
	t.Helper()
	u, err := reconstructTestUser(id, year, gender, 0, 0, 0)
	require.NoError(t, err)
	return u
}

// reconstructTestUser builds a user with explicit counters for ranking tests.
func reconstructTestUser(id string, year int64, gender uservo.Gender, rn, rd, punish int64) (*user.User, error) {
	now := time.Now().UTC()
	return user.ReconstructUser(id, "User "+id, "Alfa", year, "Marinha", gender, rn, rd, punish, 1, now, now)
}

func testPost(t *testing.T, restriction rostervo.GenderRestriction, years []int64, requiredRole string) *roster.Post {
	t.Helper()
	p, err := roster.ReconstructPost(7, "Vigia da Ponte", restriction, years, false, requiredRole)
	require.NoError(t, err)
	return p
}

func dutyDate() time.Time {
	return time.Date(2025, 10, 22, 0, 0, 0, 0, time.UTC)
}

func TestCheckAllRulesPass(t *testing.T) {
	r := NewResolver()
	res := r.Check(CheckInput{
		User: testUser(t, "101", 2, uservo.GenderMale),
		Post: testPost(t, rostervo.RestrictionNone, []int64{2}, ""),
		Date: dutyDate(),
	})

	assert.True(t, res.Eligible)
	assert.Empty(t, res.Reasons)
}

func TestCheckGenderRestriction(t *testing.T) {
	r := NewResolver()
	res := r.Check(CheckInput{
		User: testUser(t, "101", 2, uservo.GenderMale),
		Post: testPost(t, rostervo.RestrictionFemale, []int64{2}, ""),
		Date: dutyDate(),
	})

	require.False(t, res.Eligible)
	assert.Equal(t, ReasonGenderRestricted, res.Reasons[0].Code)
}

func TestCheckCohortMismatch(t *testing.T) {
	r := NewResolver()
	res := r.Check(CheckInput{
		User: testUser(t, "101", 1, uservo.GenderMale),
		Post: testPost(t, rostervo.RestrictionNone, []int64{2}, ""),
		Date: dutyDate(),
	})

	require.False(t, res.Eligible)
	assert.Equal(t, ReasonCohortMismatch, res.Reasons[0].Code)
	assert.Contains(t, res.Reasons[0].Message, "cohort mismatch")
}

func TestCheckRequiredRole(t *testing.T) {
	r := NewResolver()
	u := testUser(t, "101", 2, uservo.GenderMale)
	post := testPost(t, rostervo.RestrictionNone, []int64{2}, "rancheiro")

	res := r.Check(CheckInput{User: u, Post: post, Date: dutyDate()})
	require.False(t, res.Eligible)
	assert.Equal(t, ReasonMissingRole, res.Reasons[0].Code)

	permanent, err := user.NewPermanentRoleGrant("101", "Rancheiro")
	require.NoError(t, err)
	res = r.Check(CheckInput{
		User:  u,
		Post:  post,
		Date:  dutyDate(),
		Roles: user.RoleSet{permanent},
	})
	assert.True(t, res.Eligible)
}

func TestCheckTemporaryRoleWindow(t *testing.T) {
	r := NewResolver()
	u := testUser(t, "101", 2, uservo.GenderMale)
	post := testPost(t, rostervo.RestrictionNone, []int64{2}, "adal")

	active, err := user.NewTemporaryRoleGrant("101", "adal",
		dutyDate().Add(-48*time.Hour), dutyDate().Add(48*time.Hour))
	require.NoError(t, err)

	expired, err := user.NewTemporaryRoleGrant("101", "adal",
		dutyDate().Add(-96*time.Hour), dutyDate().Add(-72*time.Hour))
	require.NoError(t, err)

	res := r.Check(CheckInput{User: u, Post: post, Date: dutyDate(), Roles: user.RoleSet{active}})
	assert.True(t, res.Eligible)

	res = r.Check(CheckInput{User: u, Post: post, Date: dutyDate(), Roles: user.RoleSet{expired}})
	assert.False(t, res.Eligible)
}

func TestCheckUnavailability(t *testing.T) {
	r := NewResolver()
	w, err := roster.NewUnavailabilityWindow("101",
		dutyDate().Add(-24*time.Hour), dutyDate().Add(24*time.Hour), "baixa médica")
	require.NoError(t, err)

	res := r.Check(CheckInput{
		User:           testUser(t, "101", 2, uservo.GenderMale),
		Post:           testPost(t, rostervo.RestrictionNone, []int64{2}, ""),
		Date:           dutyDate(),
		Unavailability: []*roster.UnavailabilityWindow{w},
	})

	require.False(t, res.Eligible)
	assert.Equal(t, ReasonUnavailable, res.Reasons[0].Code)
	assert.Contains(t, res.Reasons[0].Message, "unavailable")
}

func TestCheckOnePerDay(t *testing.T) {
	r := NewResolver()
	existing, err := roster.NewAllocation("101", 9, dutyDate(), false, "")
	require.NoError(t, err)

	in := CheckInput{
		User:               testUser(t, "101", 2, uservo.GenderMale),
		Post:               testPost(t, rostervo.RestrictionNone, []int64{2}, ""),
		Date:               dutyDate(),
		ExistingAllocation: existing,
	}

	res := r.Check(in)
	require.False(t, res.Eligible)
	assert.Equal(t, ReasonAlreadyAllocated, res.Reasons[0].Code)

	// revalidating the allocation being moved by a swap is not a conflict
	in.RevalidatedAllocationID = existing.ID()
	res = r.Check(in)
	assert.True(t, res.Eligible)
}

func TestCheckPresence(t *testing.T) {
	r := NewResolver()
	exit := dutyDate().Add(-2 * time.Hour)
	ret := dutyDate().Add(-1 * time.Hour)

	out := r.Check(CheckInput{
		User:     testUser(t, "101", 2, uservo.GenderMale),
		Post:     testPost(t, rostervo.RestrictionNone, []int64{2}, ""),
		Date:     dutyDate(),
		Presence: PresenceStatus{LastExit: &exit},
	})
	require.False(t, out.Eligible)
	assert.Equal(t, ReasonCurrentlyOut, out.Reasons[0].Code)

	returned := r.Check(CheckInput{
		User:     testUser(t, "101", 2, uservo.GenderMale),
		Post:     testPost(t, rostervo.RestrictionNone, []int64{2}, ""),
		Date:     dutyDate(),
		Presence: PresenceStatus{LastExit: &exit, LastReturn: &ret},
	})
	assert.True(t, returned.Eligible)
}

func TestCheckCollectsAllFailures(t *testing.T) {
	r := NewResolver()
	exit := dutyDate().Add(-time.Hour)
	w, err := roster.NewUnavailabilityWindow("101", dutyDate(), dutyDate(), "dispensa")
	require.NoError(t, err)

	res := r.Check(CheckInput{
		User:           testUser(t, "101", 1, uservo.GenderFemale),
		Post:           testPost(t, rostervo.RestrictionMale, []int64{2}, "comal"),
		Date:           dutyDate(),
		Unavailability: []*roster.UnavailabilityWindow{w},
		Presence:       PresenceStatus{LastExit: &exit},
	})

	require.False(t, res.Eligible)
	codes := make(map[ReasonCode]bool)
	for _, reason := range res.Reasons {
		codes[reason.Code] = true
	}
	assert.True(t, codes[ReasonGenderRestricted])
	assert.True(t, codes[ReasonCohortMismatch])
	assert.True(t, codes[ReasonMissingRole])
	assert.True(t, codes[ReasonUnavailable])
	assert.True(t, codes[ReasonCurrentlyOut])
	assert.Len(t, res.ReasonMessages(), 5)
}

func TestCheckIsDeterministic(t *testing.T) {
	r := NewResolver()
	in := CheckInput{
		User: testUser(t, "101", 1, uservo.GenderMale),
		Post: testPost(t, rostervo.RestrictionNone, []int64{2}, ""),
		Date: dutyDate(),
	}

	first := r.Check(in)
	second := r.Check(in)
	assert.Equal(t, first, second)
}

func TestPresenceStatusIsOut(t *testing.T) {
	now := time.Now().UTC()
	earlier := now.Add(-time.Hour)

	assert.False(t, PresenceStatus{}.IsOut())
	assert.True(t, PresenceStatus{LastExit: &now}.IsOut())
	assert.True(t, PresenceStatus{LastExit: &now, LastReturn: &earlier}.IsOut())
	assert.False(t, PresenceStatus{LastExit: &earlier, LastReturn: &now}.IsOut())
}
