package supervisor

import (
	"errors"

	employeeerrors "go-leaveflow/internal/employee/errors"
	supervisorerrors "go-leaveflow/internal/supervisor/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return supervisorerrors.ErrSupervisorNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return supervisorerrors.ErrSupervisorAlreadyExists
		case "23503":
			return employeeerrors.ErrEmployeeNotFound
		case "22P02":
			return supervisorerrors.ErrInvalidSupervisorID
		}
	}

	return err
}
