package employee

type UpdateRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=EMPLOYEE SUPERVISOR HR"`
}

// ResetBalancesRequest names the ledgers to reset. Resetting everyone needs
// All set explicitly; an empty selection is rejected.
type ResetBalancesRequest struct {
	EmployeeIDs []string `json:"employee_ids" binding:"omitempty,dive,uuid"`
	All         bool     `json:"all"`
}

type ResetBalancesResponse struct {
	Reset          int64 `json:"reset"`
	BaseAllocation int   `json:"base_allocation"`
}

type BalanceResponse struct {
	EmployeeID         string `json:"employee_id"`
	AnnualLeaveDays    int    `json:"annual_leave_days"`
	LeaveDaysTaken     int    `json:"leave_days_taken"`
	RemainingLeaveDays int    `json:"remaining_leave_days"`
	LastResetYear      int    `json:"last_reset_year"`
	Overdrawn          bool   `json:"overdrawn"`
	Reconciled         bool   `json:"reconciled"`
}

type EmployeeResponse struct {
	ID         string          `json:"id"`
	UserID     string          `json:"user_id"`
	FullName   string          `json:"full_name"`
	Email      string          `json:"email,omitempty"`
	Department string          `json:"department"`
	Position   string          `json:"position,omitempty"`
	Role       string          `json:"role"`
	Balance    BalanceResponse `json:"balance"`
}
