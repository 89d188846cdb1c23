package employee

import (
	"context"
	"database/sql"

	employeeerrors "go-leaveflow/internal/employee/errors"
	"go-leaveflow/internal/shared/dbtx"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, e *Employee) error
	FindByID(ctx context.Context, id string) (*Employee, error)
	FindByIDForUpdate(ctx context.Context, id string) (*Employee, error)
	FindByUserID(ctx context.Context, userID string) (*Employee, error)
	FindAll(ctx context.Context) ([]Employee, error)
	FindByRole(ctx context.Context, role string) ([]Employee, error)
	SaveLedger(ctx context.Context, e *Employee) error
	UpdateRole(ctx context.Context, id, role string) error
	ResetLedgers(ctx context.Context, ids []string, base int) (int64, error)
}

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

func (r *repository) Create(ctx context.Context, e *Employee) error {
	return r.conn(ctx).Create(e).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Employee, error) {
	var e Employee
	err := r.conn(ctx).First(&e, "id = ?", id).Error
	return &e, err
}

func (r *repository) FindByIDForUpdate(ctx context.Context, id string) (*Employee, error) {
	var e Employee
	err := r.conn(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&e, "id = ?", id).Error
	return &e, err
}

func (r *repository) FindByUserID(ctx context.Context, userID string) (*Employee, error) {
	var e Employee
	err := r.conn(ctx).First(&e, "user_id = ?", userID).Error
	return &e, err
}

func (r *repository) FindAll(ctx context.Context) ([]Employee, error) {
	var employees []Employee
	err := r.conn(ctx).Order("full_name ASC").Find(&employees).Error
	return employees, err
}

func (r *repository) FindByRole(ctx context.Context, role string) ([]Employee, error) {
	var employees []Employee
	err := r.conn(ctx).
		Where("role = ?", role).
		Order("created_at ASC").
		Find(&employees).Error
	return employees, err
}

// SaveLedger writes the ledger columns only if nobody else did since e was read.
func (r *repository) SaveLedger(ctx context.Context, e *Employee) error {
	res := r.conn(ctx).
		Model(&Employee{}).
		Where("id = ? AND version = ?", e.ID, e.Version).
		Updates(map[string]any{
			"annual_leave_days": e.AnnualLeaveDays,
			"leave_days_taken":  e.LeaveDaysTaken,
			"last_reset_year":   e.LastResetYear,
			"version":           e.Version + 1,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return employeeerrors.ErrConcurrentModification
	}
	e.Version++
	return nil
}

func (r *repository) UpdateRole(ctx context.Context, id, role string) error {
	res := r.conn(ctx).
		Model(&Employee{}).
		Where("id = ?", id).
		Update("role", role)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) ResetLedgers(ctx context.Context, ids []string, base int) (int64, error) {
	q := r.conn(ctx).Model(&Employee{})
	if len(ids) > 0 {
		q = q.Where("id IN ?", ids)
	} else {
		q = q.Where("1 = 1")
	}

	res := q.Updates(map[string]any{
		"annual_leave_days": base,
		"leave_days_taken":  0,
		"version":           gorm.Expr("version + 1"),
	})
	return res.RowsAffected, res.Error
}
