package leave

type CreateLeaveRequest struct {
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
	Reason    string `json:"reason" binding:"required,max=2000"`
}

// DecisionRequest is shared by the supervisor and HR review endpoints.
// Action is validated by the service so an unknown value maps to INVALID_INPUT.
type DecisionRequest struct {
	Action  string `json:"action" binding:"required"`
	Comment string `json:"comment" binding:"max=2000"`
}

type BalanceSnapshot struct {
	AnnualLeaveDays    int  `json:"annual_leave_days"`
	LeaveDaysTaken     int  `json:"leave_days_taken"`
	RemainingLeaveDays int  `json:"remaining_leave_days"`
	Overdrawn          bool `json:"overdrawn"`
}

type LeaveResponse struct {
	ID                string           `json:"id"`
	EmployeeID        string           `json:"employee_id"`
	EmployeeName      string           `json:"employee_name,omitempty"`
	Department        string           `json:"department,omitempty"`
	SupervisorID      string           `json:"supervisor_id"`
	SupervisorName    string           `json:"supervisor_name,omitempty"`
	StartDate         string           `json:"start_date"`
	EndDate           string           `json:"end_date"`
	DaysRequested     int              `json:"leave_days_requested"`
	Reason            string           `json:"reason"`
	SupervisorComment string           `json:"supervisor_comment"`
	HRComment         string           `json:"hr_comment"`
	Status            string           `json:"status"`
	DateRequested     string           `json:"date_requested"`
	Balance           *BalanceSnapshot `json:"balance,omitempty"`
}

type SupervisorDashboardResponse struct {
	SupervisorID string          `json:"supervisor_id"`
	Department   string          `json:"department"`
	Pending      []LeaveResponse `json:"pending"`
	Requests     []LeaveResponse `json:"department_requests"`
}
