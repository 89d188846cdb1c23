package supervisorerrors

import (
	"go-leaveflow/internal/shared/apperror"
	"net/http"
)

var (
	ErrSupervisorNotFound = apperror.New(
		apperror.CodeSupervisorNotFound,
		"No supervisor is registered for this department",
		http.StatusNotFound,
	)
	ErrAmbiguousSupervisor = apperror.New(
		apperror.CodeAmbiguousSupervisor,
		"More than one supervisor is registered for this department",
		http.StatusConflict,
	)
	ErrSupervisorAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"This employee is already registered as a supervisor",
		http.StatusConflict,
	)
	ErrInvalidSupervisorID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid supervisor ID",
		http.StatusBadRequest,
	)
	ErrNotSupervisor = apperror.New(
		apperror.CodeForbidden,
		"You are not registered as a supervisor",
		http.StatusForbidden,
	)
)
