package leave_test

import (
	"sort"
	"testing"
	"time"

	"go-leaveflow/internal/leave"
	leaveerrors "go-leaveflow/internal/leave/errors"

	"github.com/stretchr/testify/assert"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		name       string
		start, end string
		want       int
	}{
		{"inclusive range", "2024-03-01", "2024-03-03", 3},
		{"single day", "2024-03-01", "2024-03-01", 1},
		{"leap february", "2024-02-28", "2024-03-01", 3},
		{"across year", "2024-12-30", "2025-01-02", 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, leave.DaysBetween(date(tt.start), date(tt.end)))
		})
	}

	l := leave.LeaveRequest{StartDate: date("2024-06-01"), EndDate: date("2024-06-05")}
	assert.Equal(t, 5, l.DaysRequested())
}

func TestParseAction(t *testing.T) {
	a, err := leave.ParseAction(" Approve ")
	assert.NoError(t, err)
	assert.Equal(t, leave.ActionApprove, a)

	a, err = leave.ParseAction("reject")
	assert.NoError(t, err)
	assert.Equal(t, leave.ActionReject, a)

	for _, raw := range []string{"", "approved", "deny", "rejected"} {
		_, err := leave.ParseAction(raw)
		assert.ErrorIs(t, err, leaveerrors.ErrInvalidAction, raw)
	}
}

func TestNext(t *testing.T) {
	tests := []struct {
		stage  leave.Stage
		from   string
		action leave.Action
		want   string
	}{
		{leave.StageSupervisor, leave.StatusPending, leave.ActionApprove, leave.StatusSupervisorApproved},
		{leave.StageSupervisor, leave.StatusPending, leave.ActionReject, leave.StatusSupervisorRejected},
		{leave.StageHR, leave.StatusSupervisorApproved, leave.ActionApprove, leave.StatusHRApproved},
		{leave.StageHR, leave.StatusSupervisorApproved, leave.ActionReject, leave.StatusHRRejected},
	}
	for _, tt := range tests {
		got, err := leave.Next(tt.stage, tt.from, tt.action)
		assert.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	invalid := []struct {
		stage leave.Stage
		from  string
	}{
		{leave.StageHR, leave.StatusPending},
		{leave.StageSupervisor, leave.StatusSupervisorApproved},
		{leave.StageHR, leave.StatusSupervisorRejected},
		{leave.StageHR, leave.StatusHRApproved},
		{leave.StageSupervisor, leave.StatusHRRejected},
	}
	for _, tt := range invalid {
		for _, a := range []leave.Action{leave.ActionApprove, leave.ActionReject} {
			_, err := leave.Next(tt.stage, tt.from, a)
			assert.ErrorIs(t, err, leaveerrors.ErrInvalidStatusTransition, "%s %s %s", tt.stage, tt.from, a)
		}
	}
}

func TestReachable(t *testing.T) {
	sorted := func(s []string) []string {
		sort.Strings(s)
		return s
	}

	assert.Equal(t,
		[]string{leave.StatusSupervisorApproved, leave.StatusSupervisorRejected},
		sorted(leave.Reachable(leave.StatusPending)),
	)
	assert.Equal(t,
		[]string{leave.StatusHRApproved, leave.StatusHRRejected},
		sorted(leave.Reachable(leave.StatusSupervisorApproved)),
	)

	for _, s := range []string{leave.StatusSupervisorRejected, leave.StatusHRApproved, leave.StatusHRRejected} {
		assert.Empty(t, leave.Reachable(s))
		assert.True(t, leave.IsTerminal(s))
	}
	assert.False(t, leave.IsTerminal(leave.StatusPending))
	assert.False(t, leave.IsValidStatus("Cancelled"))
}
