package supervisor

import supervisorerrors "go-leaveflow/internal/supervisor/errors"

// Resolve picks the single supervisor of a department. Candidates are the
// supervisors registered for that department.
func Resolve(candidates []Supervisor) (*Supervisor, error) {
	switch len(candidates) {
	case 0:
		return nil, supervisorerrors.ErrSupervisorNotFound
	case 1:
		return &candidates[0], nil
	default:
		return nil, supervisorerrors.ErrAmbiguousSupervisor
	}
}

// First returns the earliest registered candidate, or nil.
func First(candidates []Supervisor) *Supervisor {
	if len(candidates) == 0 {
		return nil
	}
	return &candidates[0]
}
