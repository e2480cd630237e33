package timeentryerrors

import (
	"net/http"

	"github.com/ifzc/easy-record-working-api/internal/shared/apperror"
)

var (
	ErrEntryNotFound = apperror.New(
		apperror.CodeNotFound,
		"Time entry not found",
		http.StatusNotFound,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrProjectNotFound = apperror.New(
		apperror.CodeNotFound,
		"Project not found",
		http.StatusNotFound,
	)
	ErrDuplicateEntry = apperror.New(
		apperror.CodeConflict,
		"A time entry already exists for this employee and date",
		http.StatusConflict,
	)
	ErrInvalidHours = apperror.New(
		apperror.CodeInvalidInput,
		"Hours must be non-negative in steps of 0.5",
		http.StatusBadRequest,
	)
	ErrEmployeeInactive = apperror.New(
		apperror.CodeInvalidInput,
		"Employee is inactive",
		http.StatusBadRequest,
	)
	ErrInvalidDate = apperror.New(
		apperror.CodeInvalidInput,
		"date must be formatted as YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidMonth = apperror.New(
		apperror.CodeInvalidInput,
		"month must be formatted as YYYY-MM",
		http.StatusBadRequest,
	)
	ErrMissingRange = apperror.New(
		apperror.CodeInvalidInput,
		"either date or month is required",
		http.StatusBadRequest,
	)
	ErrEmptyBatch = apperror.New(
		apperror.CodeInvalidInput,
		"employee_ids and work_dates must not be empty",
		http.StatusBadRequest,
	)
)
