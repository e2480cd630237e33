package timeentry

import (
	"errors"
	"strings"

	timeentryerrors "github.com/ifzc/easy-record-working-api/internal/timeentry/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// mapRepositoryError classifies store failures. A 23505 on the partial
// unique index means a concurrent writer won the (tenant, employee,
// date) race; callers see it as the same conflict a pre-check would
// have reported.
func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return timeentryerrors.ErrEntryNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" {
			return timeentryerrors.ErrDuplicateEntry
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") {
		return timeentryerrors.ErrDuplicateEntry
	}

	return err
}
