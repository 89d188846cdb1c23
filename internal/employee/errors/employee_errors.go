package employeeerrors

import (
	"go-leaveflow/internal/shared/apperror"
	"net/http"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrEmployeeAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"An employee profile already exists for this user",
		http.StatusConflict,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee ID",
		http.StatusBadRequest,
	)
	ErrInvalidRole = apperror.New(
		apperror.CodeInvalidInput,
		"Role must be one of EMPLOYEE, SUPERVISOR, HR",
		http.StatusBadRequest,
	)
	ErrEmptyResetSelection = apperror.New(
		apperror.CodeInvalidInput,
		"employee_ids must not be empty unless all is true",
		http.StatusBadRequest,
	)
	ErrConcurrentModification = apperror.New(
		apperror.CodeConflict,
		"Leave balance was modified concurrently, please retry",
		http.StatusConflict,
	)
)
