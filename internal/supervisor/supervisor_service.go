package supervisor

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"go-leaveflow/internal/employee"
	employeeerrors "go-leaveflow/internal/employee/errors"
	"go-leaveflow/internal/shared/contextutil"
	supervisorerrors "go-leaveflow/internal/supervisor/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=supervisor_service.go -destination=mock/supervisor_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateSupervisorRequest) (SupervisorResponse, error)
	GetAll(ctx context.Context) ([]SupervisorResponse, error)
	Delete(ctx context.Context, id string) error
	GetByEmployeeID(ctx context.Context, employeeID string) (*Supervisor, error)
	ResolveForDepartment(ctx context.Context, department string) (*Supervisor, error)
	FirstForDepartment(ctx context.Context, department string) (*Supervisor, error)
}

type service struct {
	db           *sql.DB
	repo         Repository
	employeeRepo employee.Repository
	logger       *zap.Logger
}

func NewService(db *sql.DB, repo Repository, employeeRepo employee.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("supervisor.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("supervisor.service")
	}
	return &service{db: db, repo: repo, employeeRepo: employeeRepo, logger: l}
}

// Create registers an employee as a department supervisor and promotes a
// plain employee to the SUPERVISOR role in the same transaction.
func (s *service) Create(ctx context.Context, req CreateSupervisorRequest) (SupervisorResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("create supervisor requested", zap.String("employee_id", req.EmployeeID))

	if _, err := uuid.Parse(req.EmployeeID); err != nil {
		return SupervisorResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("create supervisor begin tx failed", zap.Error(err))
		return SupervisorResponse{}, err
	}
	defer tx.Rollback()

	etx := s.employeeRepo.WithTx(tx)
	emp, err := etx.FindByIDForUpdate(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return SupervisorResponse{}, employeeerrors.ErrEmployeeNotFound
		}
		return SupervisorResponse{}, err
	}

	dept := strings.TrimSpace(req.Department)
	if dept == "" {
		dept = emp.Department
	}

	sup := &Supervisor{
		ID:         uuid.New(),
		EmployeeID: emp.ID,
		Department: dept,
	}
	if err := s.repo.WithTx(tx).Create(ctx, sup); err != nil {
		log.Warn("create supervisor failed", zap.String("employee_id", req.EmployeeID), zap.Error(err))
		return SupervisorResponse{}, mapRepositoryError(err)
	}

	if emp.Role == employee.RoleEmployee {
		if err := etx.UpdateRole(ctx, emp.ID.String(), employee.RoleSupervisor); err != nil {
			log.Error("promote supervisor failed", zap.Error(err))
			return SupervisorResponse{}, err
		}
		emp.Role = employee.RoleSupervisor
	}

	if err := tx.Commit(); err != nil {
		log.Error("create supervisor commit failed", zap.Error(err))
		return SupervisorResponse{}, err
	}

	sup.Employee = emp
	log.Info("create supervisor success",
		zap.String("supervisor_id", sup.ID.String()),
		zap.String("department", dept),
	)
	return mapToResponse(*sup), nil
}

func (s *service) GetAll(ctx context.Context) ([]SupervisorResponse, error) {
	sups, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all supervisors failed", zap.Error(err))
		return nil, err
	}
	return mapToListResponse(sups), nil
}

// Delete removes the directory entry. Pending leave requests routed to this
// supervisor are removed by the database cascade.
func (s *service) Delete(ctx context.Context, id string) error {
	log := contextutil.GetLogger(ctx, s.logger)

	if _, err := uuid.Parse(id); err != nil {
		return supervisorerrors.ErrInvalidSupervisorID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	sup, err := qtx.FindByID(ctx, id)
	if err != nil {
		return mapRepositoryError(err)
	}

	if err := qtx.Delete(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	if sup.Employee != nil && sup.Employee.Role == employee.RoleSupervisor {
		if err := s.employeeRepo.WithTx(tx).UpdateRole(ctx, sup.EmployeeID.String(), employee.RoleEmployee); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	log.Info("delete supervisor success", zap.String("supervisor_id", id))
	return nil
}

func (s *service) GetByEmployeeID(ctx context.Context, employeeID string) (*Supervisor, error) {
	sup, err := s.repo.FindByEmployeeID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, supervisorerrors.ErrNotSupervisor
		}
		return nil, mapRepositoryError(err)
	}
	return sup, nil
}

func (s *service) ResolveForDepartment(ctx context.Context, department string) (*Supervisor, error) {
	sups, err := s.repo.FindByDepartment(ctx, department)
	if err != nil {
		return nil, err
	}

	sup, err := Resolve(sups)
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Warn("resolve supervisor failed",
			zap.String("department", department),
			zap.Int("candidates", len(sups)),
			zap.Error(err),
		)
		return nil, err
	}
	return sup, nil
}

func (s *service) FirstForDepartment(ctx context.Context, department string) (*Supervisor, error) {
	sups, err := s.repo.FindByDepartment(ctx, department)
	if err != nil {
		return nil, err
	}
	return First(sups), nil
}

func mapToResponse(s Supervisor) SupervisorResponse {
	return SupervisorResponse{
		ID:         s.ID.String(),
		EmployeeID: s.EmployeeID.String(),
		FullName:   s.FullName(),
		Email:      s.Email(),
		Department: s.Department,
	}
}

func mapToListResponse(sups []Supervisor) []SupervisorResponse {
	res := make([]SupervisorResponse, len(sups))
	for i, s := range sups {
		res[i] = mapToResponse(s)
	}
	return res
}
