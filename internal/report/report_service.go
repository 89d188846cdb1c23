package report

import (
	"context"
	"errors"
	"strings"
	"time"

	"go-leaveflow/internal/employee"
	employeeerrors "go-leaveflow/internal/employee/errors"
	reporterrors "go-leaveflow/internal/report/errors"
	"go-leaveflow/internal/shared/contextutil"
	"go-leaveflow/internal/supervisor"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

type Service interface {
	Submit(ctx context.Context, employeeID string, req SubmitReportRequest) (ReportResponse, error)
	ListMine(ctx context.Context, employeeID string) ([]ReportResponse, error)
	ListForSupervisor(ctx context.Context, employeeID, rawDate string) ([]ReportResponse, error)
}

type service struct {
	repo         Repository
	employeeRepo employee.Repository
	supervisors  supervisor.Service
	now          func() time.Time
	logger       *zap.Logger
}

func NewService(repo Repository, employeeRepo employee.Repository, supervisors supervisor.Service, now func() time.Time, logger ...*zap.Logger) Service {
	l := zap.L().Named("report.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("report.service")
	}
	if now == nil {
		now = time.Now
	}
	return &service{repo: repo, employeeRepo: employeeRepo, supervisors: supervisors, now: now, logger: l}
}

// Submit stores a report for today. The supervisor is the earliest one
// registered for the employee's department, or none.
func (s *service) Submit(ctx context.Context, employeeID string, req SubmitReportRequest) (ReportResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	empUUID, err := uuid.Parse(employeeID)
	if err != nil {
		return ReportResponse{}, employeeerrors.ErrInvalidEmployeeID
	}
	summary := strings.TrimSpace(req.Summary)
	if summary == "" {
		return ReportResponse{}, reporterrors.ErrEmptySummary
	}

	emp, err := s.employeeRepo.FindByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ReportResponse{}, employeeerrors.ErrEmployeeNotFound
		}
		return ReportResponse{}, err
	}

	sup, err := s.supervisors.FirstForDepartment(ctx, emp.Department)
	if err != nil {
		return ReportResponse{}, err
	}

	now := s.now().UTC()
	row := &DailyReport{
		ID:          uuid.New(),
		EmployeeID:  empUUID,
		Date:        time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC),
		Summary:     summary,
		SubmittedAt: now,
	}
	if sup != nil {
		id := sup.ID
		row.SupervisorID = &id
	} else {
		log.Warn("daily report has no supervisor", zap.String("department", emp.Department))
	}

	if err := s.repo.Create(ctx, row); err != nil {
		log.Error("submit daily report failed", zap.Error(err))
		return ReportResponse{}, err
	}
	row.Employee = emp

	log.Info("submit daily report success", zap.String("report_id", row.ID.String()))
	return mapToResponse(*row), nil
}

func (s *service) ListMine(ctx context.Context, employeeID string) ([]ReportResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, employeeerrors.ErrInvalidEmployeeID
	}
	rows, err := s.repo.FindByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(rows), nil
}

// ListForSupervisor returns the reports routed to the caller on one date,
// today when rawDate is empty.
func (s *service) ListForSupervisor(ctx context.Context, employeeID, rawDate string) ([]ReportResponse, error) {
	day := s.now().UTC()
	if rawDate = strings.TrimSpace(rawDate); rawDate != "" {
		parsed, err := time.Parse(dateLayout, rawDate)
		if err != nil {
			return nil, reporterrors.ErrInvalidReportDate
		}
		day = parsed
	}

	sup, err := s.supervisors.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.FindBySupervisorAndDate(ctx, sup.ID.String(), day)
	if err != nil {
		s.logger.Error("list daily reports failed", zap.Error(err))
		return nil, err
	}
	return mapToListResponse(rows), nil
}

func mapToResponse(r DailyReport) ReportResponse {
	resp := ReportResponse{
		ID:          r.ID.String(),
		EmployeeID:  r.EmployeeID.String(),
		Date:        r.Date.Format(dateLayout),
		Summary:     r.Summary,
		SubmittedAt: r.SubmittedAt.Format(time.RFC3339),
	}
	if r.Employee != nil {
		resp.EmployeeName = r.Employee.FullName
	}
	if r.SupervisorID != nil {
		v := r.SupervisorID.String()
		resp.SupervisorID = &v
	}
	return resp
}

func mapToListResponse(rows []DailyReport) []ReportResponse {
	res := make([]ReportResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r)
	}
	return res
}
