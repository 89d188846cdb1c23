package leave

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"go-leaveflow/internal/config"
	"go-leaveflow/internal/employee"
	employeeerrors "go-leaveflow/internal/employee/errors"
	leaveerrors "go-leaveflow/internal/leave/errors"
	"go-leaveflow/internal/metrics"
	"go-leaveflow/internal/notification"
	"go-leaveflow/internal/shared/contextutil"
	"go-leaveflow/internal/supervisor"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

//go:generate mockgen -source=leave_service.go -destination=mock/leave_service_mock.go -package=mock
type Service interface {
	Submit(ctx context.Context, employeeID string, req CreateLeaveRequest) (LeaveResponse, error)
	ListMine(ctx context.Context, employeeID string) ([]LeaveResponse, error)
	SupervisorDashboard(ctx context.Context, employeeID string) (SupervisorDashboardResponse, error)
	SupervisorDecide(ctx context.Context, employeeID, leaveID string, req DecisionRequest) (LeaveResponse, error)
	ListForHR(ctx context.Context) ([]LeaveResponse, error)
	HRDecide(ctx context.Context, leaveID string, req DecisionRequest) (LeaveResponse, error)
	ExportApprovedPDF(ctx context.Context) ([]byte, error)
}

// HRDirectory lists the addresses notified once a supervisor approves.
type HRDirectory interface {
	Emails(ctx context.Context) ([]string, error)
}

type Deps struct {
	DB              *sql.DB
	Repo            Repository
	EmployeeRepo    employee.Repository
	Supervisors     supervisor.Service
	Ledger          employee.Ledger
	HRPool          HRDirectory
	Publisher       notification.Publisher
	OverdraftPolicy string
	Now             func() time.Time
}

type service struct {
	db           *sql.DB
	repo         Repository
	employeeRepo employee.Repository
	supervisors  supervisor.Service
	ledger       employee.Ledger
	hrPool       HRDirectory
	publisher    notification.Publisher
	overdraft    string
	now          func() time.Time
	logger       *zap.Logger
}

func NewService(d Deps, logger ...*zap.Logger) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	now := d.Now
	if now == nil {
		now = time.Now
	}
	policy := d.OverdraftPolicy
	if policy == "" {
		policy = config.OverdraftAllow
	}
	return &service{
		db:           d.DB,
		repo:         d.Repo,
		employeeRepo: d.EmployeeRepo,
		supervisors:  d.Supervisors,
		ledger:       d.Ledger,
		hrPool:       d.HRPool,
		publisher:    d.Publisher,
		overdraft:    policy,
		now:          now,
		logger:       l,
	}
}

func (s *service) Submit(ctx context.Context, employeeID string, req CreateLeaveRequest) (LeaveResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("submit leave requested",
		zap.String("employee_id", employeeID),
		zap.String("start_date", req.StartDate),
		zap.String("end_date", req.EndDate),
	)

	empUUID, err := uuid.Parse(employeeID)
	if err != nil {
		return LeaveResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	start, end, err := parseDateRange(req.StartDate, req.EndDate)
	if err != nil {
		log.Warn("submit leave validation failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	emp, err := s.employeeRepo.FindByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, employeeerrors.ErrEmployeeNotFound
		}
		return LeaveResponse{}, err
	}

	sup, err := s.supervisors.ResolveForDepartment(ctx, emp.Department)
	if err != nil {
		return LeaveResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("submit leave begin tx failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	l := &LeaveRequest{
		ID:            uuid.New(),
		EmployeeID:    empUUID,
		SupervisorID:  sup.ID,
		StartDate:     start,
		EndDate:       end,
		Reason:        strings.TrimSpace(req.Reason),
		Status:        StatusPending,
		DateRequested: s.today(),
	}
	if err := s.repo.WithTx(tx).Create(ctx, l); err != nil {
		log.Error("submit leave create failed", zap.Error(err))
		return LeaveResponse{}, mapRepositoryError(err)
	}
	l.Employee = emp
	l.Supervisor = sup

	if err := s.publisher.Publish(ctx, tx, notification.BuildSubmission(details(l))); err != nil {
		log.Error("submit leave notification failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		log.Error("submit leave commit failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	metrics.LeaveTransitionsTotal.WithLabelValues("", StatusPending).Inc()
	log.Info("submit leave success",
		zap.String("leave_id", l.ID.String()),
		zap.String("supervisor_id", sup.ID.String()),
		zap.Int("days", l.DaysRequested()),
	)
	return mapToResponse(*l), nil
}

func (s *service) ListMine(ctx context.Context, employeeID string) ([]LeaveResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, employeeerrors.ErrInvalidEmployeeID
	}

	leaves, err := s.repo.FindByEmployee(ctx, employeeID)
	if err != nil {
		s.logger.Error("list own leaves failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(leaves), nil
}

func (s *service) SupervisorDashboard(ctx context.Context, employeeID string) (SupervisorDashboardResponse, error) {
	sup, err := s.supervisors.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return SupervisorDashboardResponse{}, err
	}

	pending, err := s.repo.FindPendingBySupervisor(ctx, sup.ID.String())
	if err != nil {
		return SupervisorDashboardResponse{}, mapRepositoryError(err)
	}
	dept, err := s.repo.FindByDepartment(ctx, sup.Department)
	if err != nil {
		return SupervisorDashboardResponse{}, mapRepositoryError(err)
	}

	return SupervisorDashboardResponse{
		SupervisorID: sup.ID.String(),
		Department:   sup.Department,
		Pending:      mapToListResponse(pending),
		Requests:     mapToListResponse(dept),
	}, nil
}

// SupervisorDecide applies the first review step. The action is parsed before
// anything is read or written, so an unknown action leaves the request untouched.
func (s *service) SupervisorDecide(ctx context.Context, employeeID, leaveID string, req DecisionRequest) (LeaveResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	action, err := ParseAction(req.Action)
	if err != nil {
		return LeaveResponse{}, err
	}
	if _, err := uuid.Parse(leaveID); err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidLeaveID
	}

	sup, err := s.supervisors.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return LeaveResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("supervisor decision begin tx failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	l, err := s.loadLocked(ctx, qtx, leaveID)
	if err != nil {
		return LeaveResponse{}, err
	}

	if !canSupervise(sup, l) {
		log.Warn("supervisor decision forbidden",
			zap.String("leave_id", leaveID),
			zap.String("supervisor_id", sup.ID.String()),
		)
		return LeaveResponse{}, leaveerrors.ErrNotAssignedSupervisor
	}

	from := l.Status
	to, err := Next(StageSupervisor, from, action)
	if err != nil {
		return LeaveResponse{}, err
	}

	comment := strings.TrimSpace(req.Comment)
	if err := qtx.UpdateDecision(ctx, leaveID, from, to, commentSupervisor, comment); err != nil {
		return LeaveResponse{}, mapRepositoryError(err)
	}
	l.Status = to
	l.SupervisorComment = comment

	var msg *notification.Message
	if action == ActionApprove {
		hrEmails, err := s.hrPool.Emails(ctx)
		if err != nil {
			log.Error("load hr pool failed", zap.Error(err))
			return LeaveResponse{}, err
		}
		msg = notification.BuildSupervisorApproved(details(l), hrEmails)
	} else {
		msg = notification.BuildSupervisorRejected(details(l))
	}
	if err := s.publisher.Publish(ctx, tx, msg); err != nil {
		log.Error("supervisor decision notification failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		log.Error("supervisor decision commit failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	metrics.LeaveTransitionsTotal.WithLabelValues(from, to).Inc()
	log.Info("supervisor decision success",
		zap.String("leave_id", leaveID),
		zap.String("from", from),
		zap.String("to", to),
	)
	return mapToResponse(*l), nil
}

func (s *service) ListForHR(ctx context.Context) ([]LeaveResponse, error) {
	leaves, err := s.repo.FindByStatus(ctx, StatusSupervisorApproved)
	if err != nil {
		s.logger.Error("list hr leaves failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(leaves), nil
}

// HRDecide applies the final review step. Approval debits the employee ledger
// in the same transaction that records the status change.
func (s *service) HRDecide(ctx context.Context, leaveID string, req DecisionRequest) (LeaveResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	action, err := ParseAction(req.Action)
	if err != nil {
		return LeaveResponse{}, err
	}
	if _, err := uuid.Parse(leaveID); err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidLeaveID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("hr decision begin tx failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	l, err := s.loadLocked(ctx, qtx, leaveID)
	if err != nil {
		return LeaveResponse{}, err
	}

	from := l.Status
	to, err := Next(StageHR, from, action)
	if err != nil {
		return LeaveResponse{}, err
	}

	comment := strings.TrimSpace(req.Comment)
	if err := qtx.UpdateDecision(ctx, leaveID, from, to, commentHR, comment); err != nil {
		return LeaveResponse{}, mapRepositoryError(err)
	}
	l.Status = to
	l.HRComment = comment

	var balance *BalanceSnapshot
	if to == StatusHRApproved {
		emp, err := s.debit(ctx, tx, l)
		if err != nil {
			return LeaveResponse{}, err
		}
		l.Employee = emp
		balance = &BalanceSnapshot{
			AnnualLeaveDays:    emp.AnnualLeaveDays,
			LeaveDaysTaken:     emp.LeaveDaysTaken,
			RemainingLeaveDays: emp.RemainingLeaveDays(),
			Overdrawn:          emp.Overdrawn(),
		}
	}

	if err := s.publisher.Publish(ctx, tx, notification.BuildHRDecision(details(l))); err != nil {
		log.Error("hr decision notification failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		log.Error("hr decision commit failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	metrics.LeaveTransitionsTotal.WithLabelValues(from, to).Inc()
	log.Info("hr decision success",
		zap.String("leave_id", leaveID),
		zap.String("from", from),
		zap.String("to", to),
	)

	resp := mapToResponse(*l)
	resp.Balance = balance
	return resp, nil
}

// debit locks the employee row, rolls the ledger into the current year and
// consumes the requested days under the configured overdraft policy.
func (s *service) debit(ctx context.Context, tx *sql.Tx, l *LeaveRequest) (*employee.Employee, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	etx := s.employeeRepo.WithTx(tx)

	emp, err := etx.FindByIDForUpdate(ctx, l.EmployeeID.String())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, employeeerrors.ErrEmployeeNotFound
		}
		return nil, err
	}

	s.ledger.Reconcile(emp)

	days := l.DaysRequested()
	if s.overdraft == config.OverdraftReject && emp.RemainingLeaveDays() < days {
		log.Warn("hr approval rejected by overdraft policy",
			zap.String("employee_id", emp.ID.String()),
			zap.Int("remaining", emp.RemainingLeaveDays()),
			zap.Int("requested", days),
		)
		return nil, leaveerrors.ErrInsufficientBalance
	}

	s.ledger.Debit(emp, days)
	if err := etx.SaveLedger(ctx, emp); err != nil {
		log.Warn("hr approval ledger save failed", zap.String("employee_id", emp.ID.String()), zap.Error(err))
		return nil, err
	}

	if emp.Overdrawn() {
		log.Warn("leave balance overdrawn",
			zap.String("employee_id", emp.ID.String()),
			zap.Int("annual_leave_days", emp.AnnualLeaveDays),
			zap.Int("leave_days_taken", emp.LeaveDaysTaken),
		)
	}
	return emp, nil
}

func (s *service) ExportApprovedPDF(ctx context.Context) ([]byte, error) {
	leaves, err := s.repo.FindByStatus(ctx, StatusHRApproved)
	if err != nil {
		s.logger.Error("export approved leaves failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	doc, err := RenderApprovedPDF(leaves)
	if err != nil {
		s.logger.Error("render approved leaves pdf failed", zap.Error(err))
		return nil, err
	}
	contextutil.GetLogger(ctx, s.logger).Info("export approved leaves success", zap.Int("rows", len(leaves)))
	return doc, nil
}

// loadLocked takes the row lock first, then reads the request with its
// employee and supervisor for authorization and rendering.
func (s *service) loadLocked(ctx context.Context, qtx Repository, id string) (*LeaveRequest, error) {
	if _, err := qtx.FindByIDForUpdate(ctx, id); err != nil {
		return nil, mapRepositoryError(err)
	}
	l, err := qtx.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return l, nil
}

func (s *service) today() time.Time {
	n := s.now()
	return time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, time.UTC)
}

func canSupervise(sup *supervisor.Supervisor, l *LeaveRequest) bool {
	if l.SupervisorID == sup.ID {
		return true
	}
	return l.Employee != nil && l.Employee.Department == sup.Department
}

func parseDateRange(rawStart, rawEnd string) (time.Time, time.Time, error) {
	start, err := time.Parse(dateLayout, strings.TrimSpace(rawStart))
	if err != nil {
		return time.Time{}, time.Time{}, leaveerrors.ErrInvalidDateFormat
	}
	end, err := time.Parse(dateLayout, strings.TrimSpace(rawEnd))
	if err != nil {
		return time.Time{}, time.Time{}, leaveerrors.ErrInvalidDateFormat
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, leaveerrors.ErrInvalidDateRange
	}
	return start, end, nil
}

func details(l *LeaveRequest) notification.LeaveDetails {
	d := notification.LeaveDetails{
		LeaveID:   l.ID.String(),
		StartDate: l.StartDate,
		EndDate:   l.EndDate,
		Reason:    l.Reason,
		Status:    l.Status,
	}
	if l.Employee != nil {
		d.EmployeeName = l.Employee.FullName
		d.EmployeeEmail = l.Employee.Email
	}
	if l.Supervisor != nil {
		d.SupervisorName = l.Supervisor.FullName()
		d.SupervisorEmail = l.Supervisor.Email()
	}
	return d
}

func mapToResponse(l LeaveRequest) LeaveResponse {
	resp := LeaveResponse{
		ID:                l.ID.String(),
		EmployeeID:        l.EmployeeID.String(),
		EmployeeName:      l.employeeName(),
		Department:        l.department(),
		SupervisorID:      l.SupervisorID.String(),
		StartDate:         l.StartDate.Format(dateLayout),
		EndDate:           l.EndDate.Format(dateLayout),
		DaysRequested:     l.DaysRequested(),
		Reason:            l.Reason,
		SupervisorComment: l.SupervisorComment,
		HRComment:         l.HRComment,
		Status:            l.Status,
		DateRequested:     l.DateRequested.Format(dateLayout),
	}
	if l.Supervisor != nil {
		resp.SupervisorName = l.Supervisor.FullName()
	}
	return resp
}

func mapToListResponse(leaves []LeaveRequest) []LeaveResponse {
	res := make([]LeaveResponse, len(leaves))
	for i, l := range leaves {
		res[i] = mapToResponse(l)
	}
	return res
}
