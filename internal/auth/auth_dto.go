package auth

type SignupRequest struct {
	Username   string `json:"username" binding:"required,max=150"`
	Password   string `json:"password" binding:"required,min=8"`
	FirstName  string `json:"first_name" binding:"required,max=150"`
	LastName   string `json:"last_name" binding:"max=150"`
	Email      string `json:"email" binding:"omitempty,email"`
	Department string `json:"department" binding:"required,max=100"`
	Position   string `json:"position" binding:"max=100"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type SetStaffRequest struct {
	IsStaff *bool `json:"is_staff" binding:"required"`
}

// HRAdminSeed describes the HR account created at startup.
type HRAdminSeed struct {
	Username   string
	Password   string
	Email      string
	Department string
}

type AuthResponse struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	Username   string `json:"username"`
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	Department string `json:"department"`
	Role       string `json:"role"`
	IsStaff    bool   `json:"is_staff"`
}
