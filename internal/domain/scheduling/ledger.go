package scheduling

import (
	"fmt"
	"sort"

	vo "escala/internal/domain/roster/valueobjects"
	"escala/internal/domain/swap"
	"escala/internal/domain/user"
)

// FairnessLedger owns every mutation of workload counters and punishment
// balances, and the policy for swap-originated debt. No other component may
// write those fields.
type FairnessLedger struct{}

func NewFairnessLedger() *FairnessLedger {
	return &FairnessLedger{}
}

// RecordAssignment updates the user after a confirmed allocation. Punishment
// slots pay one unit of owed punishment and stay invisible to the routine
// counters; normal slots increment the counter matching the day's routine.
// Counters never decrease here.
func (l *FairnessLedger) RecordAssignment(u *user.User, routine vo.RoutineType, isPunishment bool) error {
	if isPunishment {
		if err := u.PayPunishment(); err != nil {
			return fmt.Errorf("record punishment assignment: %w", err)
		}
		return nil
	}
	if routine.IsHeightened() {
		u.AddHeightenedService()
	} else {
		u.AddNormalService()
	}
	return nil
}

// ReverseAssignment undoes the counter effect of a removed allocation.
// Punishment slots are not reversed: the paid balance stands until an
// external disciplinary decision says otherwise.
func (l *FairnessLedger) ReverseAssignment(u *user.User, routine vo.RoutineType, isPunishment bool) error {
	if isPunishment {
		return nil
	}
	if routine.IsHeightened() {
		return u.RemoveHeightenedService()
	}
	return u.RemoveNormalService()
}

// TransferOnSwap moves the fairness weight of a duty from the requester to
// the substitute when a swap is approved. Normal slots move the routine
// counter with the duty; punishment slots move nothing, because punishment
// service never counted toward fairness in the first place.
func (l *FairnessLedger) TransferOnSwap(requester, substitute *user.User, routine vo.RoutineType, isPunishment bool) error {
	if isPunishment {
		return nil
	}
	if routine.IsHeightened() {
		if err := requester.RemoveHeightenedService(); err != nil {
			return fmt.Errorf("transfer on swap: %w", err)
		}
		substitute.AddHeightenedService()
		return nil
	}
	if err := requester.RemoveNormalService(); err != nil {
		return fmt.Errorf("transfer on swap: %w", err)
	}
	substitute.AddNormalService()
	return nil
}

// DebtOnSwap applies the debt policy for an approved swap: normal slots
// leave the requester owing the substitute one service; punishment slots
// leave no obligation (the punishment debt travels with the physical duty
// and the requester stays cleared). Returns nil when no debt arises.
func (l *FairnessLedger) DebtOnSwap(s *swap.Swap, isPunishment bool) (*swap.Debt, error) {
	if isPunishment {
		return nil, nil
	}
	return swap.NewDebt(s.RequesterID(), s.SubstituteID(), s.ID())
}

// RankCandidates orders eligible users for automatic allocation: users owing
// punishment first (balance descending), then the routine-weighted counter
// ascending to balance load, then user ID ascending for determinism. The
// input slice is not modified.
func (l *FairnessLedger) RankCandidates(candidates []*user.User, routine vo.RoutineType) []*user.User {
	ranked := make([]*user.User, len(candidates))
	copy(ranked, candidates)

	counter := func(u *user.User) int64 {
		if routine.IsHeightened() {
			return u.HeightenedCount()
		}
		return u.NormalCount()
	}

	sort.Slice(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.PunishmentBalance() != b.PunishmentBalance() {
			return a.PunishmentBalance() > b.PunishmentBalance()
		}
		if counter(a) != counter(b) {
			return counter(a) < counter(b)
		}
		return a.ID() < b.ID()
	})

	return ranked
}
