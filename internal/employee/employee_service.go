package employee

import (
	"context"
	"database/sql"
	"errors"

	employeeerrors "go-leaveflow/internal/employee/errors"
	"go-leaveflow/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const maxReconcileAttempts = 2

type Service interface {
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	GetAll(ctx context.Context) ([]EmployeeResponse, error)
	Reconcile(ctx context.Context, id string) (BalanceResponse, error)
	UpdateRole(ctx context.Context, id string, req UpdateRoleRequest) (EmployeeResponse, error)
	ResetBalances(ctx context.Context, req ResetBalancesRequest) (ResetBalancesResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	ledger Ledger
	hrPool *HRPool
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, ledger Ledger, hrPool *HRPool, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{db: db, repo: repo, ledger: ledger, hrPool: hrPool, logger: l}
}

// GetByID reconciles the ledger first, so the balance in the response is
// always the current year's.
func (s *service) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("get employee requested", zap.String("employee_id", id))

	e, reconciled, err := s.reconcile(ctx, id)
	if err != nil {
		return EmployeeResponse{}, err
	}
	return mapToResponse(*e, reconciled), nil
}

// GetAll reconciles every row whose ledger is from an earlier year, so the
// listed balances match what GetByID would return.
func (s *service) GetAll(ctx context.Context) ([]EmployeeResponse, error) {
	employees, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all employees failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	resp := make([]EmployeeResponse, len(employees))
	for i, e := range employees {
		next := e
		if !s.ledger.Reconcile(&next) {
			resp[i] = mapToResponse(e, false)
			continue
		}

		fresh, reconciled, err := s.reconcile(ctx, e.ID.String())
		if err != nil {
			return nil, err
		}
		resp[i] = mapToResponse(*fresh, reconciled)
	}
	return resp, nil
}

func (s *service) Reconcile(ctx context.Context, id string) (BalanceResponse, error) {
	e, reconciled, err := s.reconcile(ctx, id)
	if err != nil {
		return BalanceResponse{}, err
	}
	return mapToBalance(*e, reconciled), nil
}

func (s *service) reconcile(ctx context.Context, id string) (*Employee, bool, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, false, employeeerrors.ErrInvalidEmployeeID
	}

	log := contextutil.GetLogger(ctx, s.logger)
	for attempt := 1; ; attempt++ {
		e, changed, err := s.reconcileOnce(ctx, id)
		if errors.Is(err, employeeerrors.ErrConcurrentModification) && attempt < maxReconcileAttempts {
			log.Warn("reconcile ledger conflict, retrying",
				zap.String("employee_id", id),
				zap.Int("attempt", attempt),
			)
			continue
		}
		return e, changed, err
	}
}

func (s *service) reconcileOnce(ctx context.Context, id string) (*Employee, bool, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("reconcile ledger begin tx failed", zap.Error(err))
		return nil, false, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	e, err := qtx.FindByID(ctx, id)
	if err != nil {
		return nil, false, mapRepositoryError(err)
	}

	changed := s.ledger.Reconcile(e)
	if changed {
		if err := qtx.SaveLedger(ctx, e); err != nil {
			return nil, false, mapRepositoryError(err)
		}
	}

	if err := tx.Commit(); err != nil {
		log.Error("reconcile ledger commit failed", zap.Error(err))
		return nil, false, err
	}

	if changed {
		log.Info("leave ledger rolled over",
			zap.String("employee_id", id),
			zap.Int("year", e.LastResetYear),
			zap.Int("annual_leave_days", e.AnnualLeaveDays),
		)
	}
	return e, changed, nil
}

func (s *service) UpdateRole(ctx context.Context, id string, req UpdateRoleRequest) (EmployeeResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("update role requested", zap.String("employee_id", id), zap.String("role", req.Role))

	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}
	if !IsValidRole(req.Role) {
		return EmployeeResponse{}, employeeerrors.ErrInvalidRole
	}

	if err := s.repo.UpdateRole(ctx, id, req.Role); err != nil {
		log.Warn("update role failed", zap.String("employee_id", id), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	if s.hrPool != nil {
		s.hrPool.Invalidate(ctx)
	}

	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	log.Info("update role success", zap.String("employee_id", id), zap.String("role", req.Role))
	return mapToResponse(*e, false), nil
}

func (s *service) ResetBalances(ctx context.Context, req ResetBalancesRequest) (ResetBalancesResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("reset balances requested", zap.Int("employee_count", len(req.EmployeeIDs)), zap.Bool("all", req.All))

	ids := req.EmployeeIDs
	if req.All {
		ids = nil
	} else if len(ids) == 0 {
		return ResetBalancesResponse{}, employeeerrors.ErrEmptyResetSelection
	}

	for _, id := range ids {
		if _, err := uuid.Parse(id); err != nil {
			return ResetBalancesResponse{}, employeeerrors.ErrInvalidEmployeeID
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("reset balances begin tx failed", zap.Error(err))
		return ResetBalancesResponse{}, err
	}
	defer tx.Rollback()

	n, err := s.repo.WithTx(tx).ResetLedgers(ctx, ids, s.ledger.Base())
	if err != nil {
		log.Error("reset balances persist failed", zap.Error(err))
		return ResetBalancesResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		log.Error("reset balances commit failed", zap.Error(err))
		return ResetBalancesResponse{}, err
	}

	log.Info("reset balances success", zap.Int64("reset", n))
	return ResetBalancesResponse{Reset: n, BaseAllocation: s.ledger.Base()}, nil
}

func mapToBalance(e Employee, reconciled bool) BalanceResponse {
	return BalanceResponse{
		EmployeeID:         e.ID.String(),
		AnnualLeaveDays:    e.AnnualLeaveDays,
		LeaveDaysTaken:     e.LeaveDaysTaken,
		RemainingLeaveDays: e.RemainingLeaveDays(),
		LastResetYear:      e.LastResetYear,
		Overdrawn:          e.Overdrawn(),
		Reconciled:         reconciled,
	}
}

func mapToResponse(e Employee, reconciled bool) EmployeeResponse {
	return EmployeeResponse{
		ID:         e.ID.String(),
		UserID:     e.UserID.String(),
		FullName:   e.FullName,
		Email:      e.Email,
		Department: e.Department,
		Position:   e.Position,
		Role:       e.Role,
		Balance:    mapToBalance(e, reconciled),
	}
}
