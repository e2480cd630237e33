package employee

import (
	"errors"
	"strings"

	employeeerrors "github.com/ifzc/easy-record-working-api/internal/employee/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// mapRepositoryError translates database errors into stable API errors.
func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employeeerrors.ErrEmployeeNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return employeeerrors.ErrDuplicateName
	}
	if strings.Contains(strings.ToLower(err.Error()), "duplicate key value") {
		return employeeerrors.ErrDuplicateName
	}

	return err
}
