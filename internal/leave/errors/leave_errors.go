package leaveerrors

import (
	"net/http"

	"go-leaveflow/internal/shared/apperror"
)

var (
	ErrInvalidLeaveID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid leave request id",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"start_date must be before or equal end_date",
		http.StatusBadRequest,
	)
	ErrInvalidAction = apperror.New(
		apperror.CodeInvalidInput,
		"action must be either approve or reject",
		http.StatusBadRequest,
	)
	ErrLeaveNotFound = apperror.New(
		apperror.CodeNotFound,
		"leave request not found",
		http.StatusNotFound,
	)
	ErrInvalidStatusTransition = apperror.New(
		apperror.CodeInvalidState,
		"leave request cannot be decided in its current status",
		http.StatusConflict,
	)
	ErrConcurrentDecision = apperror.New(
		apperror.CodeConflict,
		"leave request was decided concurrently, reload and retry",
		http.StatusConflict,
	)
	ErrNotAssignedSupervisor = apperror.New(
		apperror.CodeForbidden,
		"you are not a supervisor for this leave request",
		http.StatusForbidden,
	)
	ErrInsufficientBalance = apperror.New(
		apperror.CodeInsufficientBalance,
		"approving this request would overdraw the employee's leave balance",
		http.StatusConflict,
	)
)
