package leave_test

import (
	"context"
	"database/sql"
	"errors"
	"sync"
	"testing"
	"time"

	"go-leaveflow/internal/config"
	"go-leaveflow/internal/employee"
	employeeerrors "go-leaveflow/internal/employee/errors"
	employeeMock "go-leaveflow/internal/employee/mock"
	"go-leaveflow/internal/leave"
	leaveerrors "go-leaveflow/internal/leave/errors"
	leaveMock "go-leaveflow/internal/leave/mock"
	"go-leaveflow/internal/notification"
	"go-leaveflow/internal/supervisor"
	supervisorerrors "go-leaveflow/internal/supervisor/errors"
	supervisorMock "go-leaveflow/internal/supervisor/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type recordingPublisher struct {
	mu   sync.Mutex
	msgs []notification.Message
	err  error
}

func (p *recordingPublisher) Publish(_ context.Context, _ *sql.Tx, msg *notification.Message) error {
	if p.err != nil {
		return p.err
	}
	if msg == nil {
		return nil
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.msgs = append(p.msgs, *msg)
	return nil
}

type fakeHRPool struct {
	emails []string
	err    error
}

func (f fakeHRPool) Emails(context.Context) ([]string, error) { return f.emails, f.err }

type serviceDeps struct {
	db           *sql.DB
	sqlMock      sqlmock.Sqlmock
	service      leave.Service
	repo         *leaveMock.MockRepository
	employeeRepo *employeeMock.MockRepository
	supervisors  *supervisorMock.MockService
	publisher    *recordingPublisher
}

var fixedNow = time.Date(2024, 5, 20, 9, 0, 0, 0, time.UTC)

func setupServiceTest(t *testing.T, policy string) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, _ := sqlmock.New()
	repo := leaveMock.NewMockRepository(ctrl)
	employeeRepo := employeeMock.NewMockRepository(ctrl)
	supervisors := supervisorMock.NewMockService(ctrl)
	pub := &recordingPublisher{}
	clock := func() time.Time { return fixedNow }

	svc := leave.NewService(leave.Deps{
		DB:              db,
		Repo:            repo,
		EmployeeRepo:    employeeRepo,
		Supervisors:     supervisors,
		Ledger:          employee.NewLedger(employee.BaseAllocation, clock),
		HRPool:          fakeHRPool{emails: []string{"hana@example.com", "omar@example.com"}},
		Publisher:       pub,
		OverdraftPolicy: policy,
		Now:             clock,
	})

	return &serviceDeps{
		db:           db,
		sqlMock:      sqlMock,
		service:      svc,
		repo:         repo,
		employeeRepo: employeeRepo,
		supervisors:  supervisors,
		publisher:    pub,
	}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

type fixture struct {
	emp *employee.Employee
	sup *supervisor.Supervisor
	req *leave.LeaveRequest
}

func newFixture(status string) fixture {
	emp := &employee.Employee{
		ID:              uuid.New(),
		FullName:        "Ana Lima",
		Email:           "ana@example.com",
		Department:      "IT",
		Role:            employee.RoleEmployee,
		AnnualLeaveDays: 30,
		LeaveDaysTaken:  10,
		LastResetYear:   2024,
		Version:         3,
	}
	supEmp := &employee.Employee{ID: uuid.New(), FullName: "Sam Reyes", Email: "sam@example.com", Department: "IT"}
	sup := &supervisor.Supervisor{ID: uuid.New(), EmployeeID: supEmp.ID, Department: "IT", Employee: supEmp}
	req := &leave.LeaveRequest{
		ID:            uuid.New(),
		EmployeeID:    emp.ID,
		SupervisorID:  sup.ID,
		StartDate:     date("2024-06-01"),
		EndDate:       date("2024-06-05"),
		Reason:        "Family trip",
		Status:        status,
		DateRequested: date("2024-05-20"),
		Employee:      emp,
		Supervisor:    sup,
	}
	return fixture{emp: emp, sup: sup, req: req}
}

func (d *serviceDeps) expectLoad(ctx context.Context, l *leave.LeaveRequest) {
	d.repo.EXPECT().WithTx(gomock.Any()).Return(d.repo)
	d.repo.EXPECT().FindByIDForUpdate(ctx, l.ID.String()).Return(&leave.LeaveRequest{ID: l.ID, Status: l.Status}, nil)
	d.repo.EXPECT().FindByID(ctx, l.ID.String()).Return(l, nil)
}

func TestLeaveService_Submit(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t, config.OverdraftAllow)
		defer deps.db.Close()
		f := newFixture(leave.StatusPending)

		deps.employeeRepo.EXPECT().FindByID(ctx, f.emp.ID.String()).Return(f.emp, nil)
		deps.supervisors.EXPECT().ResolveForDepartment(ctx, "IT").Return(f.sup, nil)
		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, l *leave.LeaveRequest) error {
				assert.Equal(t, leave.StatusPending, l.Status)
				assert.Equal(t, f.sup.ID, l.SupervisorID)
				assert.Equal(t, "2024-05-20", l.DateRequested.Format("2006-01-02"))
				return nil
			})

		resp, err := deps.service.Submit(ctx, f.emp.ID.String(), leave.CreateLeaveRequest{
			StartDate: "2024-03-01",
			EndDate:   "2024-03-03",
			Reason:    "  Medical appointment ",
		})

		assert.NoError(t, err)
		assert.Equal(t, 3, resp.DaysRequested)
		assert.Equal(t, "Medical appointment", resp.Reason)
		assert.Equal(t, "Sam Reyes", resp.SupervisorName)
		if assert.Len(t, deps.publisher.msgs, 1) {
			assert.Equal(t, notification.KindSubmission, deps.publisher.msgs[0].Kind)
			assert.Equal(t, []string{"sam@example.com"}, deps.publisher.msgs[0].To)
		}
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("end before start", func(t *testing.T) {
		deps := setupServiceTest(t, config.OverdraftAllow)
		defer deps.db.Close()

		_, err := deps.service.Submit(ctx, uuid.NewString(), leave.CreateLeaveRequest{
			StartDate: "2024-03-03",
			EndDate:   "2024-03-01",
			Reason:    "x",
		})
		assert.ErrorIs(t, err, leaveerrors.ErrInvalidDateRange)
	})

	t.Run("bad date format", func(t *testing.T) {
		deps := setupServiceTest(t, config.OverdraftAllow)
		defer deps.db.Close()

		_, err := deps.service.Submit(ctx, uuid.NewString(), leave.CreateLeaveRequest{
			StartDate: "03/01/2024",
			EndDate:   "2024-03-01",
			Reason:    "x",
		})
		assert.ErrorIs(t, err, leaveerrors.ErrInvalidDateFormat)
	})

	t.Run("ambiguous supervisor creates nothing", func(t *testing.T) {
		deps := setupServiceTest(t, config.OverdraftAllow)
		defer deps.db.Close()
		f := newFixture(leave.StatusPending)

		deps.employeeRepo.EXPECT().FindByID(ctx, f.emp.ID.String()).Return(f.emp, nil)
		deps.supervisors.EXPECT().ResolveForDepartment(ctx, "IT").Return(nil, supervisorerrors.ErrAmbiguousSupervisor)

		_, err := deps.service.Submit(ctx, f.emp.ID.String(), leave.CreateLeaveRequest{
			StartDate: "2024-03-01",
			EndDate:   "2024-03-03",
			Reason:    "x",
		})
		assert.ErrorIs(t, err, supervisorerrors.ErrAmbiguousSupervisor)
		assert.Empty(t, deps.publisher.msgs)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("unknown employee", func(t *testing.T) {
		deps := setupServiceTest(t, config.OverdraftAllow)
		defer deps.db.Close()

		id := uuid.NewString()
		deps.employeeRepo.EXPECT().FindByID(ctx, id).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Submit(ctx, id, leave.CreateLeaveRequest{StartDate: "2024-03-01", EndDate: "2024-03-01", Reason: "x"})
		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})
}

func TestLeaveService_SupervisorDecide(t *testing.T) {
	ctx := context.Background()

	t.Run("approve notifies hr pool", func(t *testing.T) {
		deps := setupServiceTest(t, config.OverdraftAllow)
		defer deps.db.Close()
		f := newFixture(leave.StatusPending)

		deps.supervisors.EXPECT().GetByEmployeeID(ctx, f.sup.EmployeeID.String()).Return(f.sup, nil)
		expectTx(t, deps.sqlMock, true)
		deps.expectLoad(ctx, f.req)
		deps.repo.EXPECT().
			UpdateDecision(ctx, f.req.ID.String(), leave.StatusPending, leave.StatusSupervisorApproved, "supervisor_comment", "enjoy").
			Return(nil)

		resp, err := deps.service.SupervisorDecide(ctx, f.sup.EmployeeID.String(), f.req.ID.String(),
			leave.DecisionRequest{Action: "approve", Comment: " enjoy "})

		assert.NoError(t, err)
		assert.Equal(t, leave.StatusSupervisorApproved, resp.Status)
		assert.Equal(t, "enjoy", resp.SupervisorComment)
		if assert.Len(t, deps.publisher.msgs, 1) {
			assert.Equal(t, notification.KindSupervisorApproved, deps.publisher.msgs[0].Kind)
			assert.Equal(t, []string{"hana@example.com", "omar@example.com"}, deps.publisher.msgs[0].To)
		}
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("reject notifies employee and leaves ledger alone", func(t *testing.T) {
		deps := setupServiceTest(t, config.OverdraftAllow)
		defer deps.db.Close()
		f := newFixture(leave.StatusPending)

		deps.supervisors.EXPECT().GetByEmployeeID(ctx, gomock.Any()).Return(f.sup, nil)
		expectTx(t, deps.sqlMock, true)
		deps.expectLoad(ctx, f.req)
		deps.repo.EXPECT().
			UpdateDecision(ctx, f.req.ID.String(), leave.StatusPending, leave.StatusSupervisorRejected, "supervisor_comment", "").
			Return(nil)
		deps.employeeRepo.EXPECT().SaveLedger(gomock.Any(), gomock.Any()).Times(0)

		resp, err := deps.service.SupervisorDecide(ctx, f.sup.EmployeeID.String(), f.req.ID.String(),
			leave.DecisionRequest{Action: "reject"})

		assert.NoError(t, err)
		assert.Equal(t, leave.StatusSupervisorRejected, resp.Status)
		if assert.Len(t, deps.publisher.msgs, 1) {
			assert.Equal(t, notification.KindSupervisorRejected, deps.publisher.msgs[0].Kind)
			assert.Equal(t, []string{"ana@example.com"}, deps.publisher.msgs[0].To)
		}
	})

	t.Run("unknown action touches nothing", func(t *testing.T) {
		deps := setupServiceTest(t, config.OverdraftAllow)
		defer deps.db.Close()

		_, err := deps.service.SupervisorDecide(ctx, uuid.NewString(), uuid.NewString(),
			leave.DecisionRequest{Action: "maybe", Comment: "hmm"})

		assert.ErrorIs(t, err, leaveerrors.ErrInvalidAction)
		assert.Empty(t, deps.publisher.msgs)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("already decided", func(t *testing.T) {
		deps := setupServiceTest(t, config.OverdraftAllow)
		defer deps.db.Close()
		f := newFixture(leave.StatusSupervisorRejected)

		deps.supervisors.EXPECT().GetByEmployeeID(ctx, gomock.Any()).Return(f.sup, nil)
		expectTx(t, deps.sqlMock, false)
		deps.expectLoad(ctx, f.req)

		_, err := deps.service.SupervisorDecide(ctx, f.sup.EmployeeID.String(), f.req.ID.String(),
			leave.DecisionRequest{Action: "approve"})

		assert.ErrorIs(t, err, leaveerrors.ErrInvalidStatusTransition)
		assert.Empty(t, deps.publisher.msgs)
	})

	t.Run("other department is forbidden", func(t *testing.T) {
		deps := setupServiceTest(t, config.OverdraftAllow)
		defer deps.db.Close()
		f := newFixture(leave.StatusPending)
		other := &supervisor.Supervisor{ID: uuid.New(), EmployeeID: uuid.New(), Department: "Finance"}

		deps.supervisors.EXPECT().GetByEmployeeID(ctx, other.EmployeeID.String()).Return(other, nil)
		expectTx(t, deps.sqlMock, false)
		deps.expectLoad(ctx, f.req)

		_, err := deps.service.SupervisorDecide(ctx, other.EmployeeID.String(), f.req.ID.String(),
			leave.DecisionRequest{Action: "approve"})

		assert.ErrorIs(t, err, leaveerrors.ErrNotAssignedSupervisor)
	})

	t.Run("same department supervisor may decide", func(t *testing.T) {
		deps := setupServiceTest(t, config.OverdraftAllow)
		defer deps.db.Close()
		f := newFixture(leave.StatusPending)
		peer := &supervisor.Supervisor{ID: uuid.New(), EmployeeID: uuid.New(), Department: "IT"}

		deps.supervisors.EXPECT().GetByEmployeeID(ctx, peer.EmployeeID.String()).Return(peer, nil)
		expectTx(t, deps.sqlMock, true)
		deps.expectLoad(ctx, f.req)
		deps.repo.EXPECT().UpdateDecision(ctx, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		_, err := deps.service.SupervisorDecide(ctx, peer.EmployeeID.String(), f.req.ID.String(),
			leave.DecisionRequest{Action: "reject"})
		assert.NoError(t, err)
	})

	t.Run("lost race", func(t *testing.T) {
		deps := setupServiceTest(t, config.OverdraftAllow)
		defer deps.db.Close()
		f := newFixture(leave.StatusPending)

		deps.supervisors.EXPECT().GetByEmployeeID(ctx, gomock.Any()).Return(f.sup, nil)
		expectTx(t, deps.sqlMock, false)
		deps.expectLoad(ctx, f.req)
		deps.repo.EXPECT().
			UpdateDecision(ctx, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(leaveerrors.ErrConcurrentDecision)

		_, err := deps.service.SupervisorDecide(ctx, f.sup.EmployeeID.String(), f.req.ID.String(),
			leave.DecisionRequest{Action: "approve"})
		assert.ErrorIs(t, err, leaveerrors.ErrConcurrentDecision)
		assert.Empty(t, deps.publisher.msgs)
	})

	t.Run("not a supervisor", func(t *testing.T) {
		deps := setupServiceTest(t, config.OverdraftAllow)
		defer deps.db.Close()

		deps.supervisors.EXPECT().GetByEmployeeID(ctx, gomock.Any()).Return(nil, supervisorerrors.ErrNotSupervisor)

		_, err := deps.service.SupervisorDecide(ctx, uuid.NewString(), uuid.NewString(),
			leave.DecisionRequest{Action: "approve"})
		assert.ErrorIs(t, err, supervisorerrors.ErrNotSupervisor)
	})
}

func TestLeaveService_HRDecide(t *testing.T) {
	ctx := context.Background()

	t.Run("approve debits requested days", func(t *testing.T) {
		deps := setupServiceTest(t, config.OverdraftAllow)
		defer deps.db.Close()
		f := newFixture(leave.StatusSupervisorApproved)

		expectTx(t, deps.sqlMock, true)
		deps.expectLoad(ctx, f.req)
		deps.repo.EXPECT().
			UpdateDecision(ctx, f.req.ID.String(), leave.StatusSupervisorApproved, leave.StatusHRApproved, "hr_comment", "ok").
			Return(nil)
		deps.employeeRepo.EXPECT().WithTx(gomock.Any()).Return(deps.employeeRepo)
		deps.employeeRepo.EXPECT().FindByIDForUpdate(ctx, f.emp.ID.String()).Return(f.emp, nil)
		deps.employeeRepo.EXPECT().
			SaveLedger(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, e *employee.Employee) error {
				assert.Equal(t, 15, e.LeaveDaysTaken)
				assert.Equal(t, 30, e.AnnualLeaveDays)
				return nil
			})

		resp, err := deps.service.HRDecide(ctx, f.req.ID.String(), leave.DecisionRequest{Action: "APPROVE", Comment: "ok"})

		assert.NoError(t, err)
		assert.Equal(t, leave.StatusHRApproved, resp.Status)
		if assert.NotNil(t, resp.Balance) {
			assert.Equal(t, 15, resp.Balance.RemainingLeaveDays)
			assert.False(t, resp.Balance.Overdrawn)
		}
		if assert.Len(t, deps.publisher.msgs, 1) {
			msg := deps.publisher.msgs[0]
			assert.Equal(t, notification.KindHRDecision, msg.Kind)
			assert.Equal(t, []string{"ana@example.com"}, msg.To)
			assert.Equal(t, "Leave Request HR APPROVED by HR", msg.Subject)
		}
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("approve rolls stale ledger before debit", func(t *testing.T) {
		deps := setupServiceTest(t, config.OverdraftAllow)
		defer deps.db.Close()
		f := newFixture(leave.StatusSupervisorApproved)
		f.emp.LastResetYear = 2023
		f.emp.LeaveDaysTaken = 20

		expectTx(t, deps.sqlMock, true)
		deps.expectLoad(ctx, f.req)
		deps.repo.EXPECT().UpdateDecision(ctx, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		deps.employeeRepo.EXPECT().WithTx(gomock.Any()).Return(deps.employeeRepo)
		deps.employeeRepo.EXPECT().FindByIDForUpdate(ctx, gomock.Any()).Return(f.emp, nil)
		deps.employeeRepo.EXPECT().
			SaveLedger(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, e *employee.Employee) error {
				assert.Equal(t, 40, e.AnnualLeaveDays)
				assert.Equal(t, 5, e.LeaveDaysTaken)
				assert.Equal(t, 2024, e.LastResetYear)
				return nil
			})

		_, err := deps.service.HRDecide(ctx, f.req.ID.String(), leave.DecisionRequest{Action: "approve"})
		assert.NoError(t, err)
	})

	t.Run("reject leaves ledger alone", func(t *testing.T) {
		deps := setupServiceTest(t, config.OverdraftAllow)
		defer deps.db.Close()
		f := newFixture(leave.StatusSupervisorApproved)

		expectTx(t, deps.sqlMock, true)
		deps.expectLoad(ctx, f.req)
		deps.repo.EXPECT().
			UpdateDecision(ctx, f.req.ID.String(), leave.StatusSupervisorApproved, leave.StatusHRRejected, "hr_comment", "busy season").
			Return(nil)
		deps.employeeRepo.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any()).Times(0)
		deps.employeeRepo.EXPECT().SaveLedger(gomock.Any(), gomock.Any()).Times(0)

		resp, err := deps.service.HRDecide(ctx, f.req.ID.String(), leave.DecisionRequest{Action: "reject", Comment: "busy season"})

		assert.NoError(t, err)
		assert.Equal(t, leave.StatusHRRejected, resp.Status)
		assert.Nil(t, resp.Balance)
		assert.Equal(t, 10, f.emp.LeaveDaysTaken)
		if assert.Len(t, deps.publisher.msgs, 1) {
			assert.Equal(t, "Leave Request HR REJECTED by HR", deps.publisher.msgs[0].Subject)
		}
	})

	t.Run("overdraft allowed is flagged", func(t *testing.T) {
		deps := setupServiceTest(t, config.OverdraftAllow)
		defer deps.db.Close()
		f := newFixture(leave.StatusSupervisorApproved)
		f.emp.LeaveDaysTaken = 28

		expectTx(t, deps.sqlMock, true)
		deps.expectLoad(ctx, f.req)
		deps.repo.EXPECT().UpdateDecision(ctx, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		deps.employeeRepo.EXPECT().WithTx(gomock.Any()).Return(deps.employeeRepo)
		deps.employeeRepo.EXPECT().FindByIDForUpdate(ctx, gomock.Any()).Return(f.emp, nil)
		deps.employeeRepo.EXPECT().SaveLedger(ctx, gomock.Any()).Return(nil)

		resp, err := deps.service.HRDecide(ctx, f.req.ID.String(), leave.DecisionRequest{Action: "approve"})

		assert.NoError(t, err)
		assert.Equal(t, -3, resp.Balance.RemainingLeaveDays)
		assert.True(t, resp.Balance.Overdrawn)
	})

	t.Run("overdraft rejected by policy", func(t *testing.T) {
		deps := setupServiceTest(t, config.OverdraftReject)
		defer deps.db.Close()
		f := newFixture(leave.StatusSupervisorApproved)
		f.emp.LeaveDaysTaken = 28

		expectTx(t, deps.sqlMock, false)
		deps.expectLoad(ctx, f.req)
		deps.repo.EXPECT().UpdateDecision(ctx, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		deps.employeeRepo.EXPECT().WithTx(gomock.Any()).Return(deps.employeeRepo)
		deps.employeeRepo.EXPECT().FindByIDForUpdate(ctx, gomock.Any()).Return(f.emp, nil)
		deps.employeeRepo.EXPECT().SaveLedger(gomock.Any(), gomock.Any()).Times(0)

		_, err := deps.service.HRDecide(ctx, f.req.ID.String(), leave.DecisionRequest{Action: "approve"})

		assert.ErrorIs(t, err, leaveerrors.ErrInsufficientBalance)
		assert.Empty(t, deps.publisher.msgs)
	})

	t.Run("pending request is not yet reviewable", func(t *testing.T) {
		deps := setupServiceTest(t, config.OverdraftAllow)
		defer deps.db.Close()
		f := newFixture(leave.StatusPending)

		expectTx(t, deps.sqlMock, false)
		deps.expectLoad(ctx, f.req)

		_, err := deps.service.HRDecide(ctx, f.req.ID.String(), leave.DecisionRequest{Action: "approve"})
		assert.ErrorIs(t, err, leaveerrors.ErrInvalidStatusTransition)
	})

	t.Run("unknown action is not a rejection", func(t *testing.T) {
		deps := setupServiceTest(t, config.OverdraftAllow)
		defer deps.db.Close()

		_, err := deps.service.HRDecide(ctx, uuid.NewString(), leave.DecisionRequest{Action: "nope", Comment: "c"})

		assert.ErrorIs(t, err, leaveerrors.ErrInvalidAction)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("missing request", func(t *testing.T) {
		deps := setupServiceTest(t, config.OverdraftAllow)
		defer deps.db.Close()
		id := uuid.NewString()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByIDForUpdate(ctx, id).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.HRDecide(ctx, id, leave.DecisionRequest{Action: "approve"})
		assert.ErrorIs(t, err, leaveerrors.ErrLeaveNotFound)
	})

	t.Run("publish failure rolls back", func(t *testing.T) {
		deps := setupServiceTest(t, config.OverdraftAllow)
		defer deps.db.Close()
		f := newFixture(leave.StatusSupervisorApproved)
		deps.publisher.err = errors.New("smtp down")

		expectTx(t, deps.sqlMock, false)
		deps.expectLoad(ctx, f.req)
		deps.repo.EXPECT().UpdateDecision(ctx, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		_, err := deps.service.HRDecide(ctx, f.req.ID.String(), leave.DecisionRequest{Action: "reject"})
		assert.EqualError(t, err, "smtp down")
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestLeaveService_Lists(t *testing.T) {
	ctx := context.Background()

	t.Run("hr sees supervisor approved only", func(t *testing.T) {
		deps := setupServiceTest(t, config.OverdraftAllow)
		defer deps.db.Close()
		f := newFixture(leave.StatusSupervisorApproved)

		deps.repo.EXPECT().FindByStatus(ctx, leave.StatusSupervisorApproved).Return([]leave.LeaveRequest{*f.req}, nil)

		resp, err := deps.service.ListForHR(ctx)
		assert.NoError(t, err)
		if assert.Len(t, resp, 1) {
			assert.Equal(t, "Ana Lima", resp[0].EmployeeName)
			assert.Equal(t, "IT", resp[0].Department)
			assert.Equal(t, 5, resp[0].DaysRequested)
		}
	})

	t.Run("supervisor dashboard", func(t *testing.T) {
		deps := setupServiceTest(t, config.OverdraftAllow)
		defer deps.db.Close()
		f := newFixture(leave.StatusPending)

		deps.supervisors.EXPECT().GetByEmployeeID(ctx, f.sup.EmployeeID.String()).Return(f.sup, nil)
		deps.repo.EXPECT().FindPendingBySupervisor(ctx, f.sup.ID.String()).Return([]leave.LeaveRequest{*f.req}, nil)
		deps.repo.EXPECT().FindByDepartment(ctx, "IT").Return([]leave.LeaveRequest{*f.req}, nil)

		resp, err := deps.service.SupervisorDashboard(ctx, f.sup.EmployeeID.String())
		assert.NoError(t, err)
		assert.Equal(t, "IT", resp.Department)
		assert.Len(t, resp.Pending, 1)
		assert.Len(t, resp.Requests, 1)
	})

	t.Run("mine rejects malformed id", func(t *testing.T) {
		deps := setupServiceTest(t, config.OverdraftAllow)
		defer deps.db.Close()

		_, err := deps.service.ListMine(ctx, "not-a-uuid")
		assert.ErrorIs(t, err, employeeerrors.ErrInvalidEmployeeID)
	})

	t.Run("export renders approved", func(t *testing.T) {
		deps := setupServiceTest(t, config.OverdraftAllow)
		defer deps.db.Close()
		f := newFixture(leave.StatusHRApproved)

		deps.repo.EXPECT().FindByStatus(ctx, leave.StatusHRApproved).Return([]leave.LeaveRequest{*f.req}, nil)

		doc, err := deps.service.ExportApprovedPDF(ctx)
		assert.NoError(t, err)
		assert.NotEmpty(t, doc)
	})
}
