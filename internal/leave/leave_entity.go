package leave

import (
	"time"

	"go-leaveflow/internal/employee"
	"go-leaveflow/internal/supervisor"

	"github.com/google/uuid"
)

type LeaveRequest struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID   uuid.UUID `gorm:"type:uuid;not null;index:idx_leave_requests_employee"`
	SupervisorID uuid.UUID `gorm:"type:uuid;not null;index:idx_leave_requests_supervisor_status"`

	StartDate time.Time `gorm:"type:date;not null"`
	EndDate   time.Time `gorm:"type:date;not null"`
	Reason    string    `gorm:"type:text;not null"`

	SupervisorComment string    `gorm:"type:text;not null;default:''"`
	HRComment         string    `gorm:"type:text;not null;default:''"`
	Status            string    `gorm:"type:varchar(30);not null;default:'Pending';index:idx_leave_requests_supervisor_status;index:idx_leave_requests_status"`
	DateRequested     time.Time `gorm:"type:date;not null"`

	CreatedAt time.Time
	UpdatedAt time.Time

	Employee   *employee.Employee     `gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE"`
	Supervisor *supervisor.Supervisor `gorm:"foreignKey:SupervisorID;constraint:OnDelete:CASCADE"`
}

func (LeaveRequest) TableName() string { return "leave_requests" }

// DaysBetween counts calendar days from start to end, both inclusive.
func DaysBetween(start, end time.Time) int {
	s := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	e := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	return int(e.Sub(s).Hours()/24) + 1
}

func (l LeaveRequest) DaysRequested() int {
	return DaysBetween(l.StartDate, l.EndDate)
}

func (l LeaveRequest) employeeName() string {
	if l.Employee == nil {
		return ""
	}
	return l.Employee.FullName
}

func (l LeaveRequest) department() string {
	if l.Employee == nil {
		return ""
	}
	return l.Employee.Department
}
