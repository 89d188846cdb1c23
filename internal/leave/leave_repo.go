package leave

import (
	"context"
	"database/sql"

	leaveerrors "go-leaveflow/internal/leave/errors"
	"go-leaveflow/internal/shared/dbtx"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=leave_repo.go -destination=mock/leave_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, l *LeaveRequest) error
	FindByID(ctx context.Context, id string) (*LeaveRequest, error)
	FindByIDForUpdate(ctx context.Context, id string) (*LeaveRequest, error)
	UpdateDecision(ctx context.Context, id, from, to, commentColumn, comment string) error
	FindByEmployee(ctx context.Context, employeeID string) ([]LeaveRequest, error)
	FindPendingBySupervisor(ctx context.Context, supervisorID string) ([]LeaveRequest, error)
	FindByDepartment(ctx context.Context, department string) ([]LeaveRequest, error)
	FindByStatus(ctx context.Context, status string) ([]LeaveRequest, error)
}

const (
	commentSupervisor = "supervisor_comment"
	commentHR         = "hr_comment"
)

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) conn(ctx context.Context) *gorm.DB {
	return dbtx.Bind(r.db, r.tx).WithContext(ctx)
}

func (r *repository) withRelations(ctx context.Context) *gorm.DB {
	return r.conn(ctx).
		Preload("Employee").
		Preload("Supervisor.Employee")
}

func (r *repository) Create(ctx context.Context, l *LeaveRequest) error {
	return r.conn(ctx).Omit(clause.Associations).Create(l).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*LeaveRequest, error) {
	var l LeaveRequest
	err := r.withRelations(ctx).First(&l, "id = ?", id).Error
	return &l, err
}

func (r *repository) FindByIDForUpdate(ctx context.Context, id string) (*LeaveRequest, error) {
	var l LeaveRequest
	err := r.conn(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&l, "id = ?", id).Error
	return &l, err
}

// UpdateDecision moves a request from one status to the next and records the
// reviewer comment. It fails if the request is no longer in status from.
func (r *repository) UpdateDecision(ctx context.Context, id, from, to, commentColumn, comment string) error {
	switch commentColumn {
	case commentSupervisor, commentHR:
	default:
		return gorm.ErrInvalidField
	}

	res := r.conn(ctx).
		Model(&LeaveRequest{}).
		Where("id = ? AND status = ?", id, from).
		Updates(map[string]any{
			"status":      to,
			commentColumn: comment,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return leaveerrors.ErrConcurrentDecision
	}
	return nil
}

func (r *repository) FindByEmployee(ctx context.Context, employeeID string) ([]LeaveRequest, error) {
	var leaves []LeaveRequest
	err := r.withRelations(ctx).
		Where("employee_id = ?", employeeID).
		Order("date_requested DESC, created_at DESC").
		Find(&leaves).Error
	return leaves, err
}

func (r *repository) FindPendingBySupervisor(ctx context.Context, supervisorID string) ([]LeaveRequest, error) {
	var leaves []LeaveRequest
	err := r.withRelations(ctx).
		Where("supervisor_id = ? AND status = ?", supervisorID, StatusPending).
		Order("date_requested DESC, created_at DESC").
		Find(&leaves).Error
	return leaves, err
}

func (r *repository) FindByDepartment(ctx context.Context, department string) ([]LeaveRequest, error) {
	var leaves []LeaveRequest
	err := r.withRelations(ctx).
		Joins("JOIN employees ON employees.id = leave_requests.employee_id").
		Where("employees.department = ?", department).
		Order("leave_requests.date_requested DESC, leave_requests.created_at DESC").
		Find(&leaves).Error
	return leaves, err
}

func (r *repository) FindByStatus(ctx context.Context, status string) ([]LeaveRequest, error) {
	var leaves []LeaveRequest
	err := r.withRelations(ctx).
		Where("status = ?", status).
		Order("date_requested DESC, created_at DESC").
		Find(&leaves).Error
	return leaves, err
}
