package employee

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/csv"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"time"

	employeeerrors "github.com/ifzc/easy-record-working-api/internal/employee/errors"
	"github.com/ifzc/easy-record-working-api/internal/events"
	"github.com/ifzc/easy-record-working-api/internal/messaging/kafka"
	"github.com/ifzc/easy-record-working-api/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const (
	OptionsKeyPrefix = "employees:options:"
	optionsCacheTTL  = time.Hour

	importStatusImported = "imported"
	importStatusSkipped  = "skipped"
)

func OptionsKey(tenantID string) string {
	return OptionsKeyPrefix + tenantID
}

var csvHeader = []string{"name", "type", "work_type", "phone", "remark"}

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, tenantID string, req CreateEmployeeRequest) (EmployeeResponse, error)
	List(ctx context.Context, tenantID string, q ListQuery) ([]EmployeeResponse, int64, error)
	GetOptions(ctx context.Context, tenantID string) ([]EmployeeOption, error)
	GetByID(ctx context.Context, tenantID, id string) (EmployeeResponse, error)
	Update(ctx context.Context, tenantID, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, tenantID, id string) error
	ImportCSV(ctx context.Context, tenantID string, r io.Reader) (ImportResult, error)
	ExportCSV(ctx context.Context, tenantID string) ([]byte, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	outbox kafka.OutboxRepository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, nil, rdb, logger...)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	outboxRepo kafka.OutboxRepository,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		outbox: outboxRepo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

func (s *service) Create(ctx context.Context, tenantID string, req CreateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("tenant_id", tenantID),
		zap.String("name", req.Name),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create employee begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	emp, err := s.insertOne(ctx, tx, tenantID, rid, req, "employee_created")
	if err != nil {
		return EmployeeResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create employee commit failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.invalidateOptions(ctx, tenantID)
	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", emp.ID.String()),
	)
	return mapToResponse(*emp), nil
}

// insertOne persists a single employee plus its lifecycle outbox row
// inside the caller's transaction. Shared by Create and ImportCSV.
func (s *service) insertOne(
	ctx context.Context,
	tx *sql.Tx,
	tenantID, rid string,
	req CreateEmployeeRequest,
	eventType string,
) (*Employee, error) {
	name := strings.TrimSpace(req.Name)
	if existing, err := s.repo.FindByName(ctx, tenantID, name); err == nil && existing != nil {
		return nil, employeeerrors.ErrDuplicateName
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, mapRepositoryError(err)
	}

	empType := req.Type
	if empType == "" {
		empType = TypeRegular
	}

	emp := &Employee{
		ID:       uuid.New(),
		TenantID: uuid.MustParse(tenantID),
		Name:     name,
		Type:     empType,
		WorkType: normalizeOptional(req.WorkType),
		Phone:    normalizeOptional(req.Phone),
		Remark:   normalizeOptional(req.Remark),
		IsActive: true,
	}

	qtx := s.repo.WithTx(tx)
	if err := qtx.Create(ctx, emp); err != nil {
		s.logger.Error("create employee persist failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	if s.outbox != nil {
		event := events.EmployeeLifecycleEvent{
			EventType:  eventType,
			RequestID:  rid,
			EmployeeID: emp.ID.String(),
			TenantID:   tenantID,
			OccurredAt: time.Now().UTC(),
		}
		payload, err := json.Marshal(event)
		if err != nil {
			return nil, err
		}
		if err := s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     rid,
			AggregateType: "employee",
			AggregateID:   emp.ID.String(),
			EventType:     eventType,
			Topic:         events.EmployeeLifecycleTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}); err != nil {
			s.logger.Error("create employee outbox persist failed",
				zap.String("employee_id", emp.ID.String()),
				zap.Error(err),
			)
			return nil, err
		}
	}

	return emp, nil
}

func (s *service) List(ctx context.Context, tenantID string, q ListQuery) ([]EmployeeResponse, int64, error) {
	emps, total, err := s.repo.List(ctx, tenantID, q)
	if err != nil {
		s.logger.Error("list employees failed", zap.Error(err))
		return nil, 0, mapRepositoryError(err)
	}

	res := make([]EmployeeResponse, len(emps))
	for i, e := range emps {
		res[i] = mapToResponse(e)
	}
	return res, total, nil
}

// GetOptions returns the active employee picker list. It is the hot
// read during grid entry, so it goes through redis with singleflight
// collapsing concurrent misses.
func (s *service) GetOptions(ctx context.Context, tenantID string) ([]EmployeeOption, error) {
	cacheKey := OptionsKey(tenantID)

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var resp []EmployeeOption
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		emps, err := s.repo.FindActive(ctx, tenantID)
		if err != nil {
			return nil, mapRepositoryError(err)
		}

		resp := make([]EmployeeOption, len(emps))
		for i, e := range emps {
			resp[i] = EmployeeOption{
				ID:       e.ID.String(),
				Name:     e.Name,
				Type:     e.Type,
				WorkType: e.WorkType,
			}
		}

		if s.rdb != nil {
			if data, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, cacheKey, data, optionsCacheTTL)
			}
		}
		return resp, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]EmployeeOption), nil
}

func (s *service) GetByID(ctx context.Context, tenantID, id string) (EmployeeResponse, error) {
	emp, err := s.repo.FindByID(ctx, tenantID, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*emp), nil
}

func (s *service) Update(ctx context.Context, tenantID, id string, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	s.logger.Debug("update employee requested",
		zap.String("tenant_id", tenantID),
		zap.String("employee_id", id),
	)

	emp, err := s.repo.FindByID(ctx, tenantID, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	name := strings.TrimSpace(req.Name)
	if name != emp.Name {
		if existing, err := s.repo.FindByName(ctx, tenantID, name); err == nil && existing != nil {
			return EmployeeResponse{}, employeeerrors.ErrDuplicateName
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return EmployeeResponse{}, mapRepositoryError(err)
		}
	}

	emp.Name = name
	if req.Type != "" {
		emp.Type = req.Type
	}
	emp.WorkType = normalizeOptional(req.WorkType)
	emp.Phone = normalizeOptional(req.Phone)
	emp.Remark = normalizeOptional(req.Remark)
	if req.IsActive != nil {
		emp.IsActive = *req.IsActive
	}

	if err := s.repo.Update(ctx, emp); err != nil {
		s.logger.Error("update employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	s.invalidateOptions(ctx, tenantID)
	s.logger.Info("update employee success", zap.String("employee_id", id))
	return mapToResponse(*emp), nil
}

func (s *service) Delete(ctx context.Context, tenantID, id string) error {
	if err := s.repo.Delete(ctx, tenantID, id); err != nil {
		s.logger.Error("delete employee failed", zap.Error(err))
		return mapRepositoryError(err)
	}

	s.invalidateOptions(ctx, tenantID)
	s.logger.Info("delete employee success", zap.String("employee_id", id))
	return nil
}

// ImportCSV loads employees from a name,type,work_type,phone,remark
// file. The header row is optional. Rows that duplicate an existing
// name, or a name earlier in the file, are reported as skipped; valid
// rows all land in one transaction.
func (s *service) ImportCSV(ctx context.Context, tenantID string, r io.Reader) (ImportResult, error) {
	rid := contextutil.GetRequestID(ctx)

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return ImportResult{}, employeeerrors.ErrInvalidCSV
	}

	if len(records) > 0 && isHeaderRow(records[0]) {
		records = records[1:]
	}
	if len(records) == 0 {
		return ImportResult{}, employeeerrors.ErrEmptyImport
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("import employees begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return ImportResult{}, err
	}
	defer tx.Rollback()

	result := ImportResult{Total: len(records)}
	seen := make(map[string]bool)

	for i, rec := range records {
		line := i + 1
		req, reason := rowToRequest(rec)
		if reason == "" && seen[req.Name] {
			reason = "duplicate name in file"
		}

		if reason == "" {
			if _, err := s.insertOne(ctx, tx, tenantID, rid, req, "employee_imported"); err != nil {
				if errors.Is(err, employeeerrors.ErrDuplicateName) {
					reason = "name already exists"
				} else {
					return ImportResult{}, err
				}
			}
		}

		if reason == "" {
			seen[req.Name] = true
			result.Imported++
			result.Details = append(result.Details, ImportDetail{
				Line: line, Name: req.Name, Status: importStatusImported,
			})
		} else {
			result.Skipped++
			result.Details = append(result.Details, ImportDetail{
				Line: line, Name: req.Name, Status: importStatusSkipped, Reason: reason,
			})
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("import employees commit failed", zap.String("request_id", rid), zap.Error(err))
		return ImportResult{}, err
	}

	s.invalidateOptions(ctx, tenantID)
	s.logger.Info("import employees done",
		zap.String("request_id", rid),
		zap.Int("imported", result.Imported),
		zap.Int("skipped", result.Skipped),
	)
	return result, nil
}

func (s *service) ExportCSV(ctx context.Context, tenantID string) ([]byte, error) {
	emps, _, err := s.repo.List(ctx, tenantID, ListQuery{Page: 1, PageSize: 10000})
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}
	for _, e := range emps {
		row := []string{e.Name, e.Type, deref(e.WorkType), deref(e.Phone), deref(e.Remark)}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s *service) invalidateOptions(ctx context.Context, tenantID string) {
	if s.rdb == nil {
		return
	}
	key := OptionsKey(tenantID)
	if err := s.rdb.Del(ctx, key).Err(); err != nil {
		s.logger.Error("failed to invalidate employee options cache",
			zap.Error(err),
			zap.String("key", key),
		)
	}
}

func isHeaderRow(rec []string) bool {
	return len(rec) > 0 && strings.EqualFold(strings.TrimSpace(rec[0]), "name")
}

func rowToRequest(rec []string) (CreateEmployeeRequest, string) {
	get := func(i int) string {
		if i < len(rec) {
			return strings.TrimSpace(rec[i])
		}
		return ""
	}

	req := CreateEmployeeRequest{Name: get(0)}
	if req.Name == "" {
		return req, "name is required"
	}

	switch t := get(1); t {
	case "", TypeRegular, TypeTemporary:
		req.Type = t
	default:
		return req, "type must be regular or temporary"
	}

	req.WorkType = optionalField(get(2))
	req.Phone = optionalField(get(3))
	req.Remark = optionalField(get(4))
	return req, ""
}

func optionalField(v string) *string {
	if v == "" {
		return nil
	}
	return &v
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

func deref(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func mapToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:       e.ID.String(),
		Name:     e.Name,
		Type:     e.Type,
		WorkType: e.WorkType,
		Phone:    e.Phone,
		Remark:   e.Remark,
		IsActive: e.IsActive,
	}
}
