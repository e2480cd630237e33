package project

import (
	"context"
	"errors"
	"strings"
	"time"

	projecterrors "github.com/ifzc/easy-record-working-api/internal/project/errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service interface {
	Create(ctx context.Context, tenantID string, req CreateProjectRequest) (ProjectResponse, error)
	List(ctx context.Context, tenantID string, q ListQuery) ([]ProjectResponse, int64, error)
	GetByID(ctx context.Context, tenantID, id string) (ProjectResponse, error)
	Update(ctx context.Context, tenantID, id string, req UpdateProjectRequest) (ProjectResponse, error)
	Delete(ctx context.Context, tenantID, id string) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("project.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("project.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, tenantID string, req CreateProjectRequest) (ProjectResponse, error) {
	name := strings.TrimSpace(req.Name)
	if existing, err := s.repo.FindByName(ctx, tenantID, name); err == nil && existing != nil {
		return ProjectResponse{}, projecterrors.ErrDuplicateName
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return ProjectResponse{}, mapRepositoryError(err)
	}

	code := normalizeOptional(req.Code)
	if code != nil {
		if err := s.checkCodeFree(ctx, tenantID, *code, ""); err != nil {
			return ProjectResponse{}, err
		}
	}

	status := StatusActive
	if req.Status != nil {
		status = *req.Status
	}

	start, err := parsePlannedDate(req.PlannedStartDate)
	if err != nil {
		return ProjectResponse{}, err
	}
	end, err := parsePlannedDate(req.PlannedEndDate)
	if err != nil {
		return ProjectResponse{}, err
	}

	p := &Project{
		ID:               uuid.New(),
		TenantID:         uuid.MustParse(tenantID),
		Name:             name,
		Code:             code,
		Status:           status,
		PlannedStartDate: start,
		PlannedEndDate:   end,
		Remark:           normalizeOptional(req.Remark),
	}

	if err := s.repo.Create(ctx, p); err != nil {
		s.logger.Error("create project persist failed", zap.Error(err))
		return ProjectResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("create project success", zap.String("project_id", p.ID.String()))
	return mapToResponse(*p), nil
}

func (s *service) List(ctx context.Context, tenantID string, q ListQuery) ([]ProjectResponse, int64, error) {
	projects, total, err := s.repo.List(ctx, tenantID, q)
	if err != nil {
		s.logger.Error("list projects failed", zap.Error(err))
		return nil, 0, mapRepositoryError(err)
	}

	res := make([]ProjectResponse, len(projects))
	for i, p := range projects {
		res[i] = mapToResponse(p)
	}
	return res, total, nil
}

func (s *service) GetByID(ctx context.Context, tenantID, id string) (ProjectResponse, error) {
	p, err := s.repo.FindByID(ctx, tenantID, id)
	if err != nil {
		return ProjectResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*p), nil
}

func (s *service) Update(ctx context.Context, tenantID, id string, req UpdateProjectRequest) (ProjectResponse, error) {
	p, err := s.repo.FindByID(ctx, tenantID, id)
	if err != nil {
		return ProjectResponse{}, mapRepositoryError(err)
	}

	name := strings.TrimSpace(req.Name)
	if name != p.Name {
		if existing, err := s.repo.FindByName(ctx, tenantID, name); err == nil && existing != nil {
			return ProjectResponse{}, projecterrors.ErrDuplicateName
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return ProjectResponse{}, mapRepositoryError(err)
		}
	}

	code := normalizeOptional(req.Code)
	if code != nil && (p.Code == nil || *code != *p.Code) {
		if err := s.checkCodeFree(ctx, tenantID, *code, id); err != nil {
			return ProjectResponse{}, err
		}
	}

	start, err := parsePlannedDate(req.PlannedStartDate)
	if err != nil {
		return ProjectResponse{}, err
	}
	end, err := parsePlannedDate(req.PlannedEndDate)
	if err != nil {
		return ProjectResponse{}, err
	}

	p.Name = name
	p.Code = code
	p.PlannedStartDate = start
	p.PlannedEndDate = end
	p.Remark = normalizeOptional(req.Remark)
	if req.Status != nil {
		p.Status = *req.Status
	}

	if err := s.repo.Update(ctx, p); err != nil {
		s.logger.Error("update project persist failed", zap.Error(err))
		return ProjectResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("update project success", zap.String("project_id", id))
	return mapToResponse(*p), nil
}

// Delete soft-removes the project. Existing time entries keep their
// project_id; summaries fall back to a placeholder label for it.
func (s *service) Delete(ctx context.Context, tenantID, id string) error {
	if err := s.repo.Delete(ctx, tenantID, id); err != nil {
		s.logger.Error("delete project failed", zap.Error(err))
		return mapRepositoryError(err)
	}

	s.logger.Info("delete project success", zap.String("project_id", id))
	return nil
}

// checkCodeFree rejects a code already carried by another project of
// the tenant.
func (s *service) checkCodeFree(ctx context.Context, tenantID, code, excludeID string) error {
	existing, err := s.repo.FindByCode(ctx, tenantID, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return mapRepositoryError(err)
	}
	if existing != nil && existing.ID.String() != excludeID {
		return projecterrors.ErrDuplicateCode
	}
	return nil
}

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return projecterrors.ErrProjectNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return projecterrors.ErrDuplicateName
	}
	if strings.Contains(strings.ToLower(err.Error()), "duplicate key value") {
		return projecterrors.ErrDuplicateName
	}

	return err
}

func normalizeOptional(v *string) *string {
	if v == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*v)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func parsePlannedDate(v *string) (*time.Time, error) {
	if v == nil || strings.TrimSpace(*v) == "" {
		return nil, nil
	}
	d, err := time.Parse("2006-01-02", strings.TrimSpace(*v))
	if err != nil {
		return nil, projecterrors.ErrInvalidDate
	}
	return &d, nil
}

func formatPlannedDate(v *time.Time) *string {
	if v == nil {
		return nil
	}
	s := v.Format("2006-01-02")
	return &s
}

func mapToResponse(p Project) ProjectResponse {
	return ProjectResponse{
		ID:               p.ID.String(),
		Name:             p.Name,
		Code:             p.Code,
		Status:           p.Status,
		PlannedStartDate: formatPlannedDate(p.PlannedStartDate),
		PlannedEndDate:   formatPlannedDate(p.PlannedEndDate),
		Remark:           p.Remark,
	}
}
