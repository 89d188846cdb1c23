package leave

import (
	"strings"

	leaveerrors "go-leaveflow/internal/leave/errors"
)

const (
	StatusPending            = "Pending"
	StatusSupervisorApproved = "Supervisor Approved"
	StatusSupervisorRejected = "Supervisor Rejected"
	StatusHRApproved         = "HR Approved"
	StatusHRRejected         = "HR Rejected"
)

// Stage is the reviewer acting on a request.
type Stage string

const (
	StageSupervisor Stage = "supervisor"
	StageHR         Stage = "hr"
)

type Action string

const (
	ActionApprove Action = "approve"
	ActionReject  Action = "reject"
)

type transitionKey struct {
	stage  Stage
	from   string
	action Action
}

var transitions = map[transitionKey]string{
	{StageSupervisor, StatusPending, ActionApprove}:    StatusSupervisorApproved,
	{StageSupervisor, StatusPending, ActionReject}:     StatusSupervisorRejected,
	{StageHR, StatusSupervisorApproved, ActionApprove}: StatusHRApproved,
	{StageHR, StatusSupervisorApproved, ActionReject}:  StatusHRRejected,
}

// ParseAction accepts approve or reject, ignoring case and surrounding space.
func ParseAction(raw string) (Action, error) {
	switch Action(strings.ToLower(strings.TrimSpace(raw))) {
	case ActionApprove:
		return ActionApprove, nil
	case ActionReject:
		return ActionReject, nil
	default:
		return "", leaveerrors.ErrInvalidAction
	}
}

// Next returns the status reached when stage applies action to a request in
// status from.
func Next(stage Stage, from string, action Action) (string, error) {
	to, ok := transitions[transitionKey{stage, from, action}]
	if !ok {
		return "", leaveerrors.ErrInvalidStatusTransition
	}
	return to, nil
}

// Reachable lists the statuses one step away from status, across all stages.
func Reachable(status string) []string {
	var out []string
	for k, to := range transitions {
		if k.from == status {
			out = append(out, to)
		}
	}
	return out
}

func IsTerminal(status string) bool {
	switch status {
	case StatusSupervisorRejected, StatusHRApproved, StatusHRRejected:
		return true
	default:
		return false
	}
}

func IsValidStatus(status string) bool {
	switch status {
	case StatusPending, StatusSupervisorApproved, StatusSupervisorRejected, StatusHRApproved, StatusHRRejected:
		return true
	default:
		return false
	}
}
