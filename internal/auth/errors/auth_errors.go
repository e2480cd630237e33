package autherrors

import (
	"net/http"

	"github.com/ifzc/easy-record-working-api/internal/shared/apperror"
)

var (
	// ErrInvalidCredentials deliberately does not say which part was wrong.
	ErrInvalidCredentials = apperror.New(apperror.CodeUnauthorized, "Invalid account or password", http.StatusUnauthorized)

	ErrInvalidToken = apperror.New(apperror.CodeUnauthorized, "Invalid or missing token", http.StatusUnauthorized)
	ErrTokenExpired = apperror.New(apperror.CodeUnauthorized, "Token has expired", http.StatusUnauthorized)

	ErrTenantDisabled = apperror.New(apperror.CodeForbidden, "Tenant is disabled", http.StatusForbidden)
	ErrUserDisabled   = apperror.New(apperror.CodeForbidden, "User account is disabled", http.StatusForbidden)

	// ErrAmbiguousAccount is returned when a bare account matches users in
	// more than one tenant; the caller must qualify it as tenant/account.
	ErrAmbiguousAccount = apperror.New(apperror.CodeInvalidInput, "Account exists in multiple tenants, use tenant/account", http.StatusBadRequest)

	ErrPasswordIncorrect = apperror.New(apperror.CodeInvalidInput, "Current password is incorrect", http.StatusBadRequest)
	ErrPasswordTooShort  = apperror.New(apperror.CodeInvalidInput, "New password must be at least 6 characters", http.StatusBadRequest)
)
