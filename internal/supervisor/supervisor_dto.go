package supervisor

type CreateSupervisorRequest struct {
	EmployeeID string `json:"employee_id" binding:"required,uuid"`
	// Defaults to the employee's own department.
	Department string `json:"department" binding:"omitempty,max=100"`
}

type SupervisorResponse struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	FullName   string `json:"full_name"`
	Email      string `json:"email,omitempty"`
	Department string `json:"department"`
}
