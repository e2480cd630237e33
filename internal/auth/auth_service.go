package auth

import (
	"context"
	"errors"
	"os"
	"strings"
	"time"

	autherrors "github.com/ifzc/easy-record-working-api/internal/auth/errors"
	"github.com/ifzc/easy-record-working-api/internal/shared/apperror"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	tokenTTL          = 24 * time.Hour
	minPasswordLength = 6
)

type Service interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
	Me(ctx context.Context, tenantID, userID string) (MeResponse, error)
	ChangePassword(ctx context.Context, tenantID, userID string, req ChangePasswordRequest) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{repo: repo, logger: l}
}

// splitAccount accepts "tenant/account", "account@tenant", or a bare
// account. A bare account only works when it is unique across tenants.
func splitAccount(raw string) (tenantCode, account string) {
	raw = strings.TrimSpace(raw)
	if i := strings.Index(raw, "/"); i >= 0 {
		return raw[:i], raw[i+1:]
	}
	if i := strings.LastIndex(raw, "@"); i >= 0 {
		return raw[i+1:], raw[:i]
	}
	return "", raw
}

func (s *service) Login(ctx context.Context, req LoginRequest) (LoginResponse, error) {
	tenantCode, account := splitAccount(req.Account)
	if account == "" {
		return LoginResponse{}, autherrors.ErrInvalidCredentials
	}

	user, ten, err := s.resolveUser(ctx, tenantCode, account)
	if err != nil {
		return LoginResponse{}, err
	}

	if ten.Status != StatusActive {
		return LoginResponse{}, autherrors.ErrTenantDisabled
	}
	if user.Status != StatusActive {
		return LoginResponse{}, autherrors.ErrUserDisabled
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		s.logger.Info("login rejected", zap.String("account", account), zap.String("tenant", ten.Code))
		return LoginResponse{}, autherrors.ErrInvalidCredentials
	}

	token, err := s.issueToken(user)
	if err != nil {
		s.logger.Error("sign token failed", zap.Error(err))
		return LoginResponse{}, apperror.ErrInternal
	}

	s.logger.Info("login succeeded", zap.String("user_id", user.ID.String()), zap.String("tenant", ten.Code))
	return LoginResponse{
		Token:  token,
		User:   mapUser(user),
		Tenant: mapTenant(ten),
	}, nil
}

// resolveUser finds the user and its tenant for the three account forms.
// All lookup failures collapse into ErrInvalidCredentials so the
// response does not leak which part was wrong.
func (s *service) resolveUser(ctx context.Context, tenantCode, account string) (*User, *Tenant, error) {
	if tenantCode != "" {
		ten, err := s.repo.FindTenantByCode(ctx, tenantCode)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, nil, autherrors.ErrInvalidCredentials
			}
			return nil, nil, apperror.ErrInternal
		}
		user, err := s.repo.FindUserByAccount(ctx, ten.ID.String(), account)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, nil, autherrors.ErrInvalidCredentials
			}
			return nil, nil, apperror.ErrInternal
		}
		return user, ten, nil
	}

	users, err := s.repo.FindUsersByAccount(ctx, account)
	if err != nil {
		return nil, nil, apperror.ErrInternal
	}
	switch len(users) {
	case 0:
		return nil, nil, autherrors.ErrInvalidCredentials
	case 1:
	default:
		return nil, nil, autherrors.ErrAmbiguousAccount
	}

	user := users[0]
	ten, err := s.repo.FindTenantByID(ctx, user.TenantID.String())
	if err != nil {
		return nil, nil, apperror.ErrInternal
	}
	return &user, ten, nil
}

func (s *service) issueToken(user *User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id":   user.ID.String(),
		"tenant_id": user.TenantID.String(),
		"account":   user.Account,
		"role":      user.Role,
		"iat":       now.Unix(),
		"exp":       now.Add(tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

func (s *service) Me(ctx context.Context, tenantID, userID string) (MeResponse, error) {
	user, err := s.repo.FindUserByID(ctx, tenantID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return MeResponse{}, apperror.ErrUnauthenticated
		}
		return MeResponse{}, apperror.ErrInternal
	}
	ten, err := s.repo.FindTenantByID(ctx, tenantID)
	if err != nil {
		return MeResponse{}, apperror.ErrInternal
	}
	return MeResponse{User: mapUser(user), Tenant: mapTenant(ten)}, nil
}

func (s *service) ChangePassword(ctx context.Context, tenantID, userID string, req ChangePasswordRequest) error {
	if len(req.NewPassword) < minPasswordLength {
		return autherrors.ErrPasswordTooShort
	}

	user, err := s.repo.FindUserByID(ctx, tenantID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.ErrUnauthenticated
		}
		return apperror.ErrInternal
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return autherrors.ErrPasswordIncorrect
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return apperror.ErrInternal
	}

	user.PasswordHash = string(hash)
	if err := s.repo.UpdateUser(ctx, user); err != nil {
		s.logger.Error("update password failed", zap.Error(err))
		return apperror.ErrInternal
	}

	s.logger.Info("password changed", zap.String("user_id", userID))
	return nil
}

func mapUser(u *User) UserResponse {
	return UserResponse{
		ID:          u.ID.String(),
		Account:     u.Account,
		DisplayName: u.DisplayName,
		Role:        u.Role,
	}
}

func mapTenant(t *Tenant) TenantResponse {
	return TenantResponse{
		ID:   t.ID.String(),
		Code: t.Code,
		Name: t.Name,
	}
}
