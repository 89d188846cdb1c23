package dbtx_test

import (
	"context"
	"testing"

	"go-leaveflow/internal/shared/dbtx"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func TestBind_RunsStatementsOnTx(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	assert.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE employees SET leave_days_taken = 0`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectRollback()

	tx, err := db.BeginTx(context.Background(), nil)
	assert.NoError(t, err)

	bound := dbtx.Bind(gdb, tx)
	res := bound.WithContext(context.Background()).Exec(`UPDATE employees SET leave_days_taken = 0`)
	assert.NoError(t, res.Error)
	assert.Equal(t, int64(1), res.RowsAffected)

	assert.NoError(t, tx.Rollback())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBind_NilTxReturnsSameHandle(t *testing.T) {
	db, _, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	assert.NoError(t, err)

	assert.Same(t, gdb, dbtx.Bind(gdb, nil))
}
