package supervisor

import (
	"context"
	"database/sql"

	"go-leaveflow/internal/shared/dbtx"

	"gorm.io/gorm"
)

//go:generate mockgen -source=supervisor_repo.go -destination=mock/supervisor_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, s *Supervisor) error
	FindByID(ctx context.Context, id string) (*Supervisor, error)
	FindByEmployeeID(ctx context.Context, employeeID string) (*Supervisor, error)
	FindByDepartment(ctx context.Context, department string) ([]Supervisor, error)
	FindAll(ctx context.Context) ([]Supervisor, error)
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{
		db: r.db,
		tx: tx,
	}
}

func (r *repository) conn(ctx context.Context) *gorm.DB {
	return dbtx.Bind(r.db, r.tx).WithContext(ctx)
}

func (r *repository) Create(ctx context.Context, s *Supervisor) error {
	return r.conn(ctx).Create(s).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Supervisor, error) {
	var s Supervisor
	err := r.conn(ctx).
		Preload("Employee").
		First(&s, "id = ?", id).Error
	return &s, err
}

func (r *repository) FindByEmployeeID(ctx context.Context, employeeID string) (*Supervisor, error) {
	var s Supervisor
	err := r.conn(ctx).
		Preload("Employee").
		First(&s, "employee_id = ?", employeeID).Error
	return &s, err
}

// FindByDepartment returns the department's supervisors, oldest registration first.
func (r *repository) FindByDepartment(ctx context.Context, department string) ([]Supervisor, error) {
	var sups []Supervisor
	err := r.conn(ctx).
		Preload("Employee").
		Where("department = ?", department).
		Order("created_at ASC").
		Find(&sups).Error
	return sups, err
}

func (r *repository) FindAll(ctx context.Context) ([]Supervisor, error) {
	var sups []Supervisor
	err := r.conn(ctx).
		Preload("Employee").
		Order("department ASC, created_at ASC").
		Find(&sups).Error
	return sups, err
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res := r.conn(ctx).Delete(&Supervisor{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
