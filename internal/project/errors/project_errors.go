package projecterrors

import (
	"net/http"

	"github.com/ifzc/easy-record-working-api/internal/shared/apperror"
)

var (
	ErrProjectNotFound = apperror.New(apperror.CodeNotFound, "Project not found", http.StatusNotFound)
	ErrDuplicateName   = apperror.New(apperror.CodeConflict, "A project with this name already exists", http.StatusConflict)
	ErrDuplicateCode   = apperror.New(apperror.CodeConflict, "A project with this code already exists", http.StatusConflict)
	ErrInvalidStatus   = apperror.New(apperror.CodeInvalidInput, "Status must be active or archived", http.StatusBadRequest)
	ErrInvalidDate     = apperror.New(apperror.CodeInvalidInput, "date must be formatted as YYYY-MM-DD", http.StatusBadRequest)
)
