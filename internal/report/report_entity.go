package report

import (
	"time"

	"go-leaveflow/internal/employee"
	"go-leaveflow/internal/supervisor"

	"github.com/google/uuid"
)

// DailyReport is an append-only free-text status update.
type DailyReport struct {
	ID           uuid.UUID  `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID   uuid.UUID  `gorm:"column:employee_id;type:uuid;not null;index"`
	SupervisorID *uuid.UUID `gorm:"column:supervisor_id;type:uuid;index:idx_daily_reports_supervisor_date"`
	Date         time.Time  `gorm:"column:date;type:date;not null;index:idx_daily_reports_supervisor_date"`
	Summary      string     `gorm:"column:summary;type:text;not null"`
	SubmittedAt  time.Time  `gorm:"column:submitted_at;type:timestamptz;not null"`

	Employee   *employee.Employee     `gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE"`
	Supervisor *supervisor.Supervisor `gorm:"foreignKey:SupervisorID;constraint:OnDelete:SET NULL"`
}

func (DailyReport) TableName() string {
	return "daily_reports"
}
