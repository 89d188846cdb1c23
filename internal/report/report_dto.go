package report

type SubmitReportRequest struct {
	Summary string `json:"summary" binding:"required,max=5000"`
}

type ReportResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name,omitempty"`
	SupervisorID *string `json:"supervisor_id"`
	Date         string  `json:"date"`
	Summary      string  `json:"summary"`
	SubmittedAt  string  `json:"submitted_at"`
}
