package employee

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleEmployee   = "EMPLOYEE"
	RoleSupervisor = "SUPERVISOR"
	RoleHR         = "HR"
)

// Employee is the worker profile created at signup. It carries the leave ledger.
type Employee struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	FullName   string    `gorm:"type:varchar(255);not null"`
	Email      string    `gorm:"type:varchar(255)"`
	Department string    `gorm:"type:varchar(100);not null;index"`
	Position   string    `gorm:"type:varchar(100)"`
	Role       string    `gorm:"type:varchar(20);not null;default:'EMPLOYEE';index"`

	AnnualLeaveDays int `gorm:"not null;default:30"`
	LeaveDaysTaken  int `gorm:"not null;default:0"`
	LastResetYear   int `gorm:"not null"`
	Version         int `gorm:"not null;default:1"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func IsValidRole(role string) bool {
	switch role {
	case RoleEmployee, RoleSupervisor, RoleHR:
		return true
	default:
		return false
	}
}
