package report

import (
	"context"
	"database/sql"
	"time"

	"go-leaveflow/internal/shared/dbtx"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, r *DailyReport) error
	FindBySupervisorAndDate(ctx context.Context, supervisorID string, date time.Time) ([]DailyReport, error)
	FindByEmployee(ctx context.Context, employeeID string) ([]DailyReport, error)
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

func (r *repository) Create(ctx context.Context, rep *DailyReport) error {
	return r.conn(ctx).Omit(clause.Associations).Create(rep).Error
}

func (r *repository) FindBySupervisorAndDate(ctx context.Context, supervisorID string, date time.Time) ([]DailyReport, error) {
	var rows []DailyReport
	err := r.conn(ctx).
		Preload("Employee").
		Where("supervisor_id = ?", supervisorID).
		Where("date = ?", date.Format("2006-01-02")).
		Order("submitted_at DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindByEmployee(ctx context.Context, employeeID string) ([]DailyReport, error) {
	var rows []DailyReport
	err := r.conn(ctx).
		Where("employee_id = ?", employeeID).
		Order("submitted_at DESC").
		Find(&rows).Error
	return rows, err
}
