package employeeerrors

import (
	"net/http"

	"github.com/ifzc/easy-record-working-api/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(apperror.CodeNotFound, "Employee not found", http.StatusNotFound)

	// Names are unique per tenant among non-deleted employees.
	ErrDuplicateName = apperror.New(apperror.CodeConflict, "An employee with this name already exists", http.StatusConflict)

	ErrInvalidCSV  = apperror.New(apperror.CodeInvalidInput, "CSV file could not be parsed", http.StatusBadRequest)
	ErrEmptyImport = apperror.New(apperror.CodeInvalidInput, "Import file contains no rows", http.StatusBadRequest)
)
