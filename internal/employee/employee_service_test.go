package employee_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"go-leaveflow/internal/employee"
	employeeerrors "go-leaveflow/internal/employee/errors"
	employeeMock "go-leaveflow/internal/employee/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type serviceDeps struct {
	db        *sql.DB
	sqlMock   sqlmock.Sqlmock
	service   employee.Service
	repo      *employeeMock.MockRepository
	redismock redismock.ClientMock
}

func serviceFixedClock(year int) func() time.Time {
	return func() time.Time { return time.Date(year, time.March, 1, 9, 0, 0, 0, time.UTC) }
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, _ := sqlmock.New()
	rdb, redisMock := redismock.NewClientMock()
	repo := employeeMock.NewMockRepository(ctrl)

	ledger := employee.NewLedger(employee.BaseAllocation, serviceFixedClock(2026))
	pool := employee.NewHRPool(repo, rdb, time.Hour)
	svc := employee.NewService(db, repo, ledger, pool)

	return &serviceDeps{
		db:        db,
		sqlMock:   sqlMock,
		service:   svc,
		repo:      repo,
		redismock: redisMock,
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

func TestEmployeeService_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid id", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.GetByID(ctx, "not-a-uuid")
		assert.ErrorIs(t, err, employeeerrors.ErrInvalidEmployeeID)
	})

	t.Run("rolls over a stale ledger", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		id := uuid.New()
		expectTx(t, deps.sqlMock, true)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			FindByID(ctx, id.String()).
			Return(&employee.Employee{ID: id, FullName: "Ana", AnnualLeaveDays: 30, LeaveDaysTaken: 20, LastResetYear: 2025, Version: 3}, nil)
		deps.repo.EXPECT().
			SaveLedger(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, e *employee.Employee) error {
				assert.Equal(t, 40, e.AnnualLeaveDays)
				assert.Equal(t, 0, e.LeaveDaysTaken)
				assert.Equal(t, 2026, e.LastResetYear)
				return nil
			})

		resp, err := deps.service.GetByID(ctx, id.String())

		assert.NoError(t, err)
		assert.Equal(t, 40, resp.Balance.RemainingLeaveDays)
		assert.True(t, resp.Balance.Reconciled)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("current year ledger is not rewritten", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		id := uuid.New()
		expectTx(t, deps.sqlMock, true)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			FindByID(ctx, id.String()).
			Return(&employee.Employee{ID: id, AnnualLeaveDays: 30, LeaveDaysTaken: 4, LastResetYear: 2026}, nil)
		deps.repo.EXPECT().SaveLedger(gomock.Any(), gomock.Any()).Times(0)

		resp, err := deps.service.GetByID(ctx, id.String())

		assert.NoError(t, err)
		assert.Equal(t, 26, resp.Balance.RemainingLeaveDays)
		assert.False(t, resp.Balance.Reconciled)
	})

	t.Run("not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		id := uuid.New().String()
		expectTx(t, deps.sqlMock, false)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, id).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.GetByID(ctx, id)
		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})
}

func TestEmployeeService_Reconcile_RetriesOnConflict(t *testing.T) {
	deps := setupServiceTest(t)
	defer deps.db.Close()

	ctx := context.Background()
	id := uuid.New()

	deps.sqlMock.ExpectBegin()
	deps.sqlMock.ExpectRollback()
	deps.sqlMock.ExpectBegin()
	deps.sqlMock.ExpectCommit()

	deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo).Times(2)
	deps.repo.EXPECT().
		FindByID(ctx, id.String()).
		DoAndReturn(func(context.Context, string) (*employee.Employee, error) {
			return &employee.Employee{ID: id, AnnualLeaveDays: 30, LeaveDaysTaken: 10, LastResetYear: 2025}, nil
		}).
		Times(2)

	gomock.InOrder(
		deps.repo.EXPECT().SaveLedger(ctx, gomock.Any()).Return(employeeerrors.ErrConcurrentModification),
		deps.repo.EXPECT().SaveLedger(ctx, gomock.Any()).Return(nil),
	)

	resp, err := deps.service.Reconcile(ctx, id.String())

	assert.NoError(t, err)
	assert.Equal(t, 50, resp.AnnualLeaveDays)
	assert.Equal(t, 2026, resp.LastResetYear)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestEmployeeService_GetAll(t *testing.T) {
	ctx := context.Background()

	t.Run("stale rows are rolled over before listing", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		stale := employee.Employee{ID: uuid.New(), FullName: "Ana", AnnualLeaveDays: 30, LeaveDaysTaken: 20, LastResetYear: 2025, Version: 1}
		current := employee.Employee{ID: uuid.New(), FullName: "Budi", AnnualLeaveDays: 30, LeaveDaysTaken: 4, LastResetYear: 2026, Version: 1}

		deps.repo.EXPECT().FindAll(ctx).Return([]employee.Employee{stale, current}, nil)

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		staleCopy := stale
		deps.repo.EXPECT().FindByID(ctx, stale.ID.String()).Return(&staleCopy, nil)
		deps.repo.EXPECT().SaveLedger(ctx, gomock.Any()).Return(nil)

		resp, err := deps.service.GetAll(ctx)

		assert.NoError(t, err)
		assert.Len(t, resp, 2)
		assert.Equal(t, 40, resp[0].Balance.RemainingLeaveDays)
		assert.Equal(t, 2026, resp[0].Balance.LastResetYear)
		assert.True(t, resp[0].Balance.Reconciled)
		assert.Equal(t, 26, resp[1].Balance.RemainingLeaveDays)
		assert.False(t, resp[1].Balance.Reconciled)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("current rows need no transaction", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.repo.EXPECT().FindAll(ctx).Return([]employee.Employee{
			{ID: uuid.New(), AnnualLeaveDays: 30, LeaveDaysTaken: 0, LastResetYear: 2026},
		}, nil)

		resp, err := deps.service.GetAll(ctx)

		assert.NoError(t, err)
		assert.Equal(t, 30, resp[0].Balance.RemainingLeaveDays)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestEmployeeService_UpdateRole(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid role", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.UpdateRole(ctx, uuid.New().String(), employee.UpdateRoleRequest{Role: "CEO"})
		assert.ErrorIs(t, err, employeeerrors.ErrInvalidRole)
	})

	t.Run("success invalidates hr pool", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		id := uuid.New()
		deps.repo.EXPECT().UpdateRole(ctx, id.String(), employee.RoleHR).Return(nil)
		deps.redismock.ExpectDel(employee.HRPoolCacheKey).SetVal(1)
		deps.repo.EXPECT().
			FindByID(ctx, id.String()).
			Return(&employee.Employee{ID: id, Role: employee.RoleHR, LastResetYear: 2026}, nil)

		resp, err := deps.service.UpdateRole(ctx, id.String(), employee.UpdateRoleRequest{Role: employee.RoleHR})

		assert.NoError(t, err)
		assert.Equal(t, employee.RoleHR, resp.Role)
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("unknown employee", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		id := uuid.New().String()
		deps.repo.EXPECT().UpdateRole(ctx, id, employee.RoleSupervisor).Return(gorm.ErrRecordNotFound)

		_, err := deps.service.UpdateRole(ctx, id, employee.UpdateRoleRequest{Role: employee.RoleSupervisor})
		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})
}

func TestEmployeeService_ResetBalances(t *testing.T) {
	ctx := context.Background()

	t.Run("selected employees", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		ids := []string{uuid.NewString(), uuid.NewString()}
		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().ResetLedgers(ctx, ids, employee.BaseAllocation).Return(int64(2), nil)

		resp, err := deps.service.ResetBalances(ctx, employee.ResetBalancesRequest{EmployeeIDs: ids})

		assert.NoError(t, err)
		assert.Equal(t, int64(2), resp.Reset)
		assert.Equal(t, 30, resp.BaseAllocation)
	})

	t.Run("all flag resets everyone", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().ResetLedgers(ctx, []string(nil), employee.BaseAllocation).Return(int64(7), nil)

		resp, err := deps.service.ResetBalances(ctx, employee.ResetBalancesRequest{All: true})

		assert.NoError(t, err)
		assert.Equal(t, int64(7), resp.Reset)
	})

	t.Run("empty selection rejected before tx", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.ResetBalances(ctx, employee.ResetBalancesRequest{})
		assert.ErrorIs(t, err, employeeerrors.ErrEmptyResetSelection)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("invalid id rejected before tx", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.ResetBalances(ctx, employee.ResetBalancesRequest{EmployeeIDs: []string{"x"}})
		assert.ErrorIs(t, err, employeeerrors.ErrInvalidEmployeeID)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("repo error rolls back", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().ResetLedgers(ctx, gomock.Any(), gomock.Any()).Return(int64(0), errors.New("db down"))

		_, err := deps.service.ResetBalances(ctx, employee.ResetBalancesRequest{All: true})
		assert.Error(t, err)
	})
}
