package employee

import "time"

// BaseAllocation is the yearly entitlement every ledger rolls over onto.
const BaseAllocation = 30

// RemainingLeaveDays is the pure balance accessor. It never reconciles and can
// be negative once the ledger is overdrawn.
func (e *Employee) RemainingLeaveDays() int {
	return e.AnnualLeaveDays - e.LeaveDaysTaken
}

func (e *Employee) Overdrawn() bool {
	return e.LeaveDaysTaken > e.AnnualLeaveDays
}

// Ledger applies the balance rules against a clock.
type Ledger struct {
	base int
	now  func() time.Time
}

func NewLedger(base int, now func() time.Time) Ledger {
	if base <= 0 {
		base = BaseAllocation
	}
	if now == nil {
		now = time.Now
	}
	return Ledger{base: base, now: now}
}

func (l Ledger) Base() int { return l.base }

func (l Ledger) CurrentYear() int { return l.now().Year() }

// Open initialises the ledger of a newly created employee.
func (l Ledger) Open(e *Employee) {
	e.AnnualLeaveDays = l.base
	e.LeaveDaysTaken = 0
	e.LastResetYear = l.CurrentYear()
}

// Reconcile rolls unused days into a fresh allocation when the ledger was last
// reset in an earlier year. A second call in the same year is a no-op.
// It reports whether e was changed.
func (l Ledger) Reconcile(e *Employee) bool {
	year := l.CurrentYear()
	if e.LastResetYear >= year {
		return false
	}

	unused := e.AnnualLeaveDays - e.LeaveDaysTaken
	if unused < 0 {
		unused = 0
	}

	e.AnnualLeaveDays = l.base + unused
	e.LeaveDaysTaken = 0
	e.LastResetYear = year
	return true
}

// Debit consumes days. No balance check happens here; callers apply the overdraft policy.
func (l Ledger) Debit(e *Employee, days int) {
	e.LeaveDaysTaken += days
}

// Reset restores the standard allocation with no carryover.
func (l Ledger) Reset(e *Employee) {
	e.AnnualLeaveDays = l.base
	e.LeaveDaysTaken = 0
}
