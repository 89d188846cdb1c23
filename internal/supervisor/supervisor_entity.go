package supervisor

import (
	"time"

	"go-leaveflow/internal/employee"

	"github.com/google/uuid"
)

// Supervisor marks an employee as the approver for a department.
type Supervisor struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Department string    `gorm:"type:varchar(100);not null;index"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`

	Employee *employee.Employee `gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE"`
}

func (s Supervisor) FullName() string {
	if s.Employee == nil {
		return ""
	}
	return s.Employee.FullName
}

func (s Supervisor) Email() string {
	if s.Employee == nil {
		return ""
	}
	return s.Employee.Email
}
