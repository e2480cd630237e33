package project

import (
	"context"
	"strings"
	"testing"

	projecterrors "github.com/ifzc/easy-record-working-api/internal/project/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeProjectRepo struct {
	projects []Project
}

func (f *fakeProjectRepo) Create(_ context.Context, p *Project) error {
	f.projects = append(f.projects, *p)
	return nil
}

func (f *fakeProjectRepo) Update(_ context.Context, p *Project) error {
	for i := range f.projects {
		if f.projects[i].ID == p.ID {
			f.projects[i] = *p
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeProjectRepo) FindByID(_ context.Context, tenantID, id string) (*Project, error) {
	for i := range f.projects {
		if f.projects[i].TenantID.String() == tenantID && f.projects[i].ID.String() == id {
			return &f.projects[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeProjectRepo) FindByName(_ context.Context, tenantID, name string) (*Project, error) {
	for i := range f.projects {
		if f.projects[i].TenantID.String() == tenantID && f.projects[i].Name == name {
			return &f.projects[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeProjectRepo) FindByCode(_ context.Context, tenantID, code string) (*Project, error) {
	for i := range f.projects {
		if f.projects[i].TenantID.String() == tenantID && f.projects[i].Code != nil && *f.projects[i].Code == code {
			return &f.projects[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeProjectRepo) List(_ context.Context, tenantID string, q ListQuery) ([]Project, int64, error) {
	var out []Project
	for _, p := range f.projects {
		if p.TenantID.String() != tenantID {
			continue
		}
		if q.Status != "" && p.Status != q.Status {
			continue
		}
		if q.Keyword != "" &&
			!strings.Contains(p.Name, q.Keyword) &&
			(p.Code == nil || !strings.Contains(*p.Code, q.Keyword)) {
			continue
		}
		out = append(out, p)
	}
	return out, int64(len(out)), nil
}

func (f *fakeProjectRepo) Delete(_ context.Context, tenantID, id string) error {
	for i := range f.projects {
		if f.projects[i].TenantID.String() == tenantID && f.projects[i].ID.String() == id {
			f.projects = append(f.projects[:i], f.projects[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func strPtr(s string) *string { return &s }

func TestCreateProject(t *testing.T) {
	repo := &fakeProjectRepo{}
	svc := NewService(repo)
	tid := uuid.NewString()

	res, err := svc.Create(context.Background(), tid, CreateProjectRequest{
		Name:             " Site A ",
		Code:             strPtr("  P-001  "),
		PlannedStartDate: strPtr("2026-03-01"),
		PlannedEndDate:   strPtr("2026-06-30"),
		Remark:           strPtr("  east wing  "),
	})
	require.NoError(t, err)
	assert.Equal(t, "Site A", res.Name)
	require.NotNil(t, res.Code)
	assert.Equal(t, "P-001", *res.Code)
	assert.Equal(t, StatusActive, res.Status)
	require.NotNil(t, res.PlannedStartDate)
	assert.Equal(t, "2026-03-01", *res.PlannedStartDate)
	require.NotNil(t, res.PlannedEndDate)
	assert.Equal(t, "2026-06-30", *res.PlannedEndDate)
	require.NotNil(t, res.Remark)
	assert.Equal(t, "east wing", *res.Remark)
}

func TestCreateProjectDuplicateName(t *testing.T) {
	repo := &fakeProjectRepo{}
	svc := NewService(repo)
	tid := uuid.NewString()

	_, err := svc.Create(context.Background(), tid, CreateProjectRequest{Name: "Site A"})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), tid, CreateProjectRequest{Name: "Site A"})
	assert.ErrorIs(t, err, projecterrors.ErrDuplicateName)
}

func TestCreateProjectDuplicateCode(t *testing.T) {
	repo := &fakeProjectRepo{}
	svc := NewService(repo)
	tid := uuid.NewString()

	_, err := svc.Create(context.Background(), tid, CreateProjectRequest{Name: "Site A", Code: strPtr("P-001")})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), tid, CreateProjectRequest{Name: "Site B", Code: strPtr("P-001")})
	assert.ErrorIs(t, err, projecterrors.ErrDuplicateCode)
}

func TestCreateProjectSameNameOtherTenant(t *testing.T) {
	repo := &fakeProjectRepo{}
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), uuid.NewString(), CreateProjectRequest{Name: "Site A"})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), uuid.NewString(), CreateProjectRequest{Name: "Site A"})
	assert.NoError(t, err)
}

func TestUpdateProjectArchives(t *testing.T) {
	repo := &fakeProjectRepo{}
	svc := NewService(repo)
	tid := uuid.NewString()

	created, err := svc.Create(context.Background(), tid, CreateProjectRequest{Name: "Site A"})
	require.NoError(t, err)

	res, err := svc.Update(context.Background(), tid, created.ID, UpdateProjectRequest{
		Name:   "Site A",
		Status: strPtr(StatusArchived),
	})
	require.NoError(t, err)
	assert.Equal(t, StatusArchived, res.Status)
}

func TestUpdateProjectKeepsOwnCode(t *testing.T) {
	repo := &fakeProjectRepo{}
	svc := NewService(repo)
	tid := uuid.NewString()

	created, err := svc.Create(context.Background(), tid, CreateProjectRequest{Name: "Site A", Code: strPtr("P-001")})
	require.NoError(t, err)

	// resubmitting its current code must not count as a collision
	res, err := svc.Update(context.Background(), tid, created.ID, UpdateProjectRequest{
		Name: "Site A renamed",
		Code: strPtr("P-001"),
	})
	require.NoError(t, err)
	require.NotNil(t, res.Code)
	assert.Equal(t, "P-001", *res.Code)
}

func TestUpdateProjectCodeCollision(t *testing.T) {
	repo := &fakeProjectRepo{}
	svc := NewService(repo)
	tid := uuid.NewString()

	_, err := svc.Create(context.Background(), tid, CreateProjectRequest{Name: "Site A", Code: strPtr("P-001")})
	require.NoError(t, err)
	other, err := svc.Create(context.Background(), tid, CreateProjectRequest{Name: "Site B", Code: strPtr("P-002")})
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), tid, other.ID, UpdateProjectRequest{
		Name: "Site B",
		Code: strPtr("P-001"),
	})
	assert.ErrorIs(t, err, projecterrors.ErrDuplicateCode)
}

func TestListProjectsFiltersByStatus(t *testing.T) {
	repo := &fakeProjectRepo{}
	svc := NewService(repo)
	tid := uuid.NewString()

	_, err := svc.Create(context.Background(), tid, CreateProjectRequest{Name: "Site A"})
	require.NoError(t, err)
	archived, err := svc.Create(context.Background(), tid, CreateProjectRequest{Name: "Site B", Status: strPtr(StatusArchived)})
	require.NoError(t, err)

	res, total, err := svc.List(context.Background(), tid, ListQuery{Status: StatusArchived, Page: 1, PageSize: 20})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, res, 1)
	assert.Equal(t, archived.ID, res[0].ID)
}

func TestListProjectsKeywordMatchesCode(t *testing.T) {
	repo := &fakeProjectRepo{}
	svc := NewService(repo)
	tid := uuid.NewString()

	_, err := svc.Create(context.Background(), tid, CreateProjectRequest{Name: "Site A", Code: strPtr("P-001")})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), tid, CreateProjectRequest{Name: "Site B"})
	require.NoError(t, err)

	res, total, err := svc.List(context.Background(), tid, ListQuery{Keyword: "P-00", Page: 1, PageSize: 20})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, res, 1)
	assert.Equal(t, "Site A", res[0].Name)
}

func TestDeleteProjectNotFound(t *testing.T) {
	repo := &fakeProjectRepo{}
	svc := NewService(repo)

	err := svc.Delete(context.Background(), uuid.NewString(), uuid.NewString())
	assert.ErrorIs(t, err, projecterrors.ErrProjectNotFound)
}
