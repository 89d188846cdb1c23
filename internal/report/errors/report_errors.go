package reporterrors

import (
	"net/http"

	"go-leaveflow/internal/shared/apperror"
)

var (
	ErrInvalidReportDate = apperror.New(
		apperror.CodeInvalidInput,
		"date must be formatted as YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrEmptySummary = apperror.New(
		apperror.CodeInvalidInput,
		"summary must not be empty",
		http.StatusBadRequest,
	)
)
