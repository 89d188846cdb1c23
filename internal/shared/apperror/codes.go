package apperror

const (
	// Client errors (4xx)
	CodeInvalidInput = "INVALID_INPUT"
	CodeValidation   = "VALIDATION_ERROR"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeForbidden    = "FORBIDDEN"
	CodeNotFound     = "NOT_FOUND"
	CodeConflict     = "CONFLICT"
	CodeInvalidState = "INVALID_STATE"

	// Leave workflow
	CodeInsufficientBalance = "INSUFFICIENT_BALANCE"
	CodeSupervisorNotFound  = "SUPERVISOR_NOT_FOUND"
	CodeAmbiguousSupervisor = "AMBIGUOUS_SUPERVISOR"

	// Server errors (5xx)
	CodeInternalError      = "INTERNAL_ERROR"
	CodeServiceUnavailable = "SERVICE_UNAVAILABLE"
)
