package timeentry

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/ifzc/easy-record-working-api/internal/events"
	"github.com/ifzc/easy-record-working-api/internal/messaging/kafka"
	"github.com/ifzc/easy-record-working-api/internal/shared/apperror"
	"github.com/ifzc/easy-record-working-api/internal/shared/contextutil"
	timeentryerrors "github.com/ifzc/easy-record-working-api/internal/timeentry/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	skipReasonEmployeeNotFound = "employee not found"
	skipReasonAlreadyExists    = "already exists"

	// label for the nil-project group in by-project summaries
	unassignedProjectLabel = "unassigned"

	// display fallbacks for dangling references in pooled summaries
	unknownProjectLabel  = "unknown project"
	unknownEmployeeLabel = "unknown employee"

	defaultNormalHours = 8.0

	summaryCacheTTL = time.Minute
)

func summaryCacheKey(tenantID string, start, end time.Time) string {
	return fmt.Sprintf("timeentry:summary:%s:%s:%s",
		tenantID, start.Format("2006-01-02"), end.Format("2006-01-02"))
}

//go:generate mockgen -source=timeentry_service.go -destination=mock/timeentry_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context, tenantID string, q ListQuery) ([]TimeEntryResponse, int64, error)
	Create(ctx context.Context, tenantID string, req CreateTimeEntryRequest) (TimeEntryResponse, error)
	Update(ctx context.Context, tenantID, id string, req UpdateTimeEntryRequest) (TimeEntryResponse, error)
	Delete(ctx context.Context, tenantID, id string) error
	BatchCreate(ctx context.Context, tenantID string, req BatchCreateTimeEntriesRequest) (BatchCreateResult, error)
	Summary(ctx context.Context, tenantID string, q SummaryQuery) ([]DailySummaryResponse, error)
	SummaryByProject(ctx context.Context, tenantID string, q SummaryQuery) ([]ProjectSummaryResponse, error)
	SummaryByEmployee(ctx context.Context, tenantID string, q SummaryQuery) ([]EmployeeSummaryResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	outbox kafka.OutboxRepository
	rdb    *redis.Client
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
	l := zap.L().Named("timeentry.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("timeentry.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		outbox: outboxRepo,
		rdb:    rdb,
		logger: l,
	}
}

func (s *service) List(ctx context.Context, tenantID string, q ListQuery) ([]TimeEntryResponse, int64, error) {
	if strings.TrimSpace(q.Date) == "" {
		return nil, 0, apperror.RequiredField("date")
	}
	workDate, err := parseWorkDate(q.Date)
	if err != nil {
		return nil, 0, timeentryerrors.ErrInvalidDate
	}

	filter := ListFilter{
		Keyword:      q.Keyword,
		EmployeeType: q.EmployeeType,
		ProjectID:    q.ProjectID,
		Sort:         q.Sort,
		Offset:       (q.Page - 1) * q.PageSize,
		Limit:        q.PageSize,
	}

	entries, total, err := s.repo.ListByDate(ctx, tenantID, workDate, filter)
	if err != nil {
		s.logger.Error("list time entries failed", zap.Error(err))
		return nil, 0, mapRepositoryError(err)
	}

	res := make([]TimeEntryResponse, len(entries))
	for i, e := range entries {
		res[i] = mapToResponse(e)
	}
	return res, total, nil
}

func (s *service) Create(ctx context.Context, tenantID string, req CreateTimeEntryRequest) (TimeEntryResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	normal := hoursOrDefault(req.NormalHours)

	if !IsValidHour(normal) || !IsValidHour(req.OvertimeHours) {
		return TimeEntryResponse{}, timeentryerrors.ErrInvalidHours
	}
	workDate, err := parseWorkDate(req.WorkDate)
	if err != nil {
		return TimeEntryResponse{}, timeentryerrors.ErrInvalidDate
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create time entry begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return TimeEntryResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	emp, err := qtx.FindEmployee(ctx, tenantID, req.EmployeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return TimeEntryResponse{}, timeentryerrors.ErrEmployeeNotFound
		}
		return TimeEntryResponse{}, err
	}
	if !emp.IsActive {
		return TimeEntryResponse{}, timeentryerrors.ErrEmployeeInactive
	}

	proj, projectID, err := s.resolveProject(ctx, qtx, tenantID, req.ProjectID)
	if err != nil {
		return TimeEntryResponse{}, err
	}

	entry, err := s.createOrRestore(ctx, qtx, tenantID, req.EmployeeID, workDate, normal, req.OvertimeHours, req.Remark, projectID)
	if err != nil {
		return TimeEntryResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create time entry commit failed", zap.String("request_id", rid), zap.Error(err))
		return TimeEntryResponse{}, err
	}

	s.logger.Info("create time entry success",
		zap.String("request_id", rid),
		zap.String("entry_id", entry.ID.String()),
		zap.String("employee_id", req.EmployeeID),
		zap.String("work_date", req.WorkDate),
	)

	entry.Employee = emp
	entry.Project = proj
	return mapToResponse(*entry), nil
}

// createOrRestore applies the single-cell decision shared by Create and
// BatchCreate. A soft-deleted row for the key is reactivated in place
// with the new hours/remark/project; an active row is a conflict; an
// absent key inserts.
func (s *service) createOrRestore(
	ctx context.Context,
	qtx Repository,
	tenantID, employeeID string,
	workDate time.Time,
	normal, overtime float64,
	remark *string,
	projectID *uuid.UUID,
) (*TimeEntry, error) {
	existing, err := qtx.FindByEmployeeAndDate(ctx, tenantID, employeeID, workDate, true)

	switch {
	case err == nil && !existing.IsDeleted():
		return nil, timeentryerrors.ErrDuplicateEntry

	case err == nil:
		existing.Restore()
		existing.NormalHours = normal
		existing.OvertimeHours = overtime
		existing.Remark = normalizeRemark(remark)
		existing.ProjectID = projectID
		if err := qtx.Update(ctx, existing); err != nil {
			return nil, mapRepositoryError(err)
		}
		return existing, nil

	case errors.Is(err, gorm.ErrRecordNotFound):
		entry := &TimeEntry{
			ID:            uuid.New(),
			TenantID:      uuid.MustParse(tenantID),
			EmployeeID:    uuid.MustParse(employeeID),
			ProjectID:     projectID,
			WorkDate:      workDate,
			NormalHours:   normal,
			OvertimeHours: overtime,
			Remark:        normalizeRemark(remark),
			State:         StateActive,
		}
		if err := qtx.Create(ctx, entry); err != nil {
			return nil, mapRepositoryError(err)
		}
		return entry, nil

	default:
		return nil, err
	}
}

func (s *service) Update(ctx context.Context, tenantID, id string, req UpdateTimeEntryRequest) (TimeEntryResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	if !IsValidHour(req.NormalHours) || !IsValidHour(req.OvertimeHours) {
		return TimeEntryResponse{}, timeentryerrors.ErrInvalidHours
	}
	workDate, err := parseWorkDate(req.WorkDate)
	if err != nil {
		return TimeEntryResponse{}, timeentryerrors.ErrInvalidDate
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return TimeEntryResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	entry, err := qtx.FindActiveByID(ctx, tenantID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return TimeEntryResponse{}, timeentryerrors.ErrEntryNotFound
		}
		return TimeEntryResponse{}, err
	}

	emp, err := qtx.FindEmployee(ctx, tenantID, req.EmployeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return TimeEntryResponse{}, timeentryerrors.ErrEmployeeNotFound
		}
		return TimeEntryResponse{}, err
	}
	if !emp.IsActive {
		return TimeEntryResponse{}, timeentryerrors.ErrEmployeeInactive
	}

	proj, projectID, err := s.resolveProject(ctx, qtx, tenantID, req.ProjectID)
	if err != nil {
		return TimeEntryResponse{}, err
	}

	// the new key must not collide with another active entry
	dup, err := qtx.HasActiveDuplicate(ctx, tenantID, req.EmployeeID, workDate, id)
	if err != nil {
		return TimeEntryResponse{}, err
	}
	if dup {
		return TimeEntryResponse{}, timeentryerrors.ErrDuplicateEntry
	}

	entry.EmployeeID = uuid.MustParse(req.EmployeeID)
	entry.ProjectID = projectID
	entry.WorkDate = workDate
	entry.NormalHours = req.NormalHours
	entry.OvertimeHours = req.OvertimeHours
	if req.Remark != nil {
		entry.Remark = normalizeRemark(req.Remark)
	}

	if err := qtx.Update(ctx, entry); err != nil {
		return TimeEntryResponse{}, mapRepositoryError(err)
	}
	if err := tx.Commit(); err != nil {
		return TimeEntryResponse{}, err
	}

	s.logger.Info("update time entry success",
		zap.String("request_id", rid),
		zap.String("entry_id", id),
	)

	entry.Employee = emp
	entry.Project = proj
	return mapToResponse(*entry), nil
}

func (s *service) Delete(ctx context.Context, tenantID, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	entry, err := qtx.FindActiveByID(ctx, tenantID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return timeentryerrors.ErrEntryNotFound
		}
		return err
	}

	entry.MarkDeleted()
	if err := qtx.Update(ctx, entry); err != nil {
		return mapRepositoryError(err)
	}
	if err := tx.Commit(); err != nil {
		return err
	}

	s.logger.Info("delete time entry success",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.String("entry_id", id),
	)
	return nil
}

func (s *service) BatchCreate(ctx context.Context, tenantID string, req BatchCreateTimeEntriesRequest) (BatchCreateResult, error) {
	rid := contextutil.GetRequestID(ctx)
	normal := hoursOrDefault(req.NormalHours)

	// whole-batch preconditions fail fast, before any cell is touched
	if !IsValidHour(normal) || !IsValidHour(req.OvertimeHours) {
		return BatchCreateResult{}, timeentryerrors.ErrInvalidHours
	}
	if len(req.EmployeeIDs) == 0 || len(req.WorkDates) == 0 {
		return BatchCreateResult{}, timeentryerrors.ErrEmptyBatch
	}

	employeeIDs := distinct(req.EmployeeIDs)
	rawDates := distinct(req.WorkDates)
	workDates := make([]time.Time, len(rawDates))
	for i, d := range rawDates {
		parsed, err := parseWorkDate(d)
		if err != nil {
			return BatchCreateResult{}, timeentryerrors.ErrInvalidDate
		}
		workDates[i] = parsed
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("batch create begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return BatchCreateResult{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	_, projectID, err := s.resolveProject(ctx, qtx, tenantID, req.ProjectID)
	if err != nil {
		return BatchCreateResult{}, err
	}

	result := BatchCreateResult{
		Total:   len(employeeIDs) * len(workDates),
		Details: make([]BatchCreateDetail, 0, len(employeeIDs)*len(workDates)),
	}

	// employees outer, dates inner, both in first-seen input order
	for i, employeeID := range employeeIDs {
		emp, err := qtx.FindEmployee(ctx, tenantID, employeeID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return BatchCreateResult{}, err
		}
		// an inactive or missing employee skips the whole row
		if err != nil || !emp.IsActive {
			for j := range workDates {
				result.Skipped++
				result.Details = append(result.Details, BatchCreateDetail{
					EmployeeID: employeeID,
					WorkDate:   rawDates[j],
					Status:     BatchStatusSkipped,
					Reason:     skipReasonEmployeeNotFound,
				})
			}
			continue
		}

		for j, workDate := range workDates {
			_, cellErr := s.createOrRestore(ctx, qtx, tenantID, employeeID, workDate, normal, req.OvertimeHours, req.Remark, projectID)
			detail := BatchCreateDetail{
				EmployeeID: employeeIDs[i],
				WorkDate:   rawDates[j],
			}
			switch {
			case cellErr == nil:
				result.Created++
				detail.Status = BatchStatusCreated
			case errors.Is(cellErr, timeentryerrors.ErrDuplicateEntry):
				result.Skipped++
				detail.Status = BatchStatusSkipped
				detail.Reason = skipReasonAlreadyExists
			default:
				return BatchCreateResult{}, cellErr
			}
			result.Details = append(result.Details, detail)
		}
	}

	if s.outbox != nil && result.Created > 0 {
		event := events.TimeEntryBatchEvent{
			EventType:  "time_entry_batch_created",
			RequestID:  rid,
			TenantID:   tenantID,
			Total:      result.Total,
			Created:    result.Created,
			Skipped:    result.Skipped,
			OccurredAt: time.Now().UTC(),
		}
		payload, err := json.Marshal(event)
		if err != nil {
			return BatchCreateResult{}, err
		}
		if err := s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     rid,
			AggregateType: "time_entry_batch",
			AggregateID:   tenantID,
			EventType:     event.EventType,
			Topic:         events.TimeEntryBatchTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}); err != nil {
			s.logger.Error("batch create outbox persist failed", zap.String("request_id", rid), zap.Error(err))
			return BatchCreateResult{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("batch create commit failed", zap.String("request_id", rid), zap.Error(err))
		return BatchCreateResult{}, err
	}

	s.logger.Info("batch create success",
		zap.String("request_id", rid),
		zap.Int("total", result.Total),
		zap.Int("created", result.Created),
		zap.Int("skipped", result.Skipped),
	)
	return result, nil
}

func (s *service) Summary(ctx context.Context, tenantID string, q SummaryQuery) ([]DailySummaryResponse, error) {
	start, end, err := resolveRange(q)
	if err != nil {
		return nil, err
	}

	filter, filtered, err := s.buildRangeFilter(ctx, tenantID, q)
	if err != nil {
		return nil, err
	}

	// stale reads are acceptable for reporting, so unfiltered summaries
	// sit behind a short redis TTL with no invalidation
	cacheable := s.rdb != nil && !filtered
	cacheKey := summaryCacheKey(tenantID, start, end)
	if cacheable {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var res []DailySummaryResponse
			if json.Unmarshal([]byte(cached), &res) == nil {
				return res, nil
			}
		}
	}

	entries, err := s.repo.FindRange(ctx, tenantID, start, end, filter)
	if err != nil {
		s.logger.Error("summary range query failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	type dailyAgg struct {
		normal    float64
		overtime  float64
		employees map[string]struct{}
	}
	byDate := make(map[string]*dailyAgg)
	for _, e := range entries {
		key := e.WorkDate.Format("2006-01-02")
		agg, ok := byDate[key]
		if !ok {
			agg = &dailyAgg{employees: make(map[string]struct{})}
			byDate[key] = agg
		}
		agg.normal += e.NormalHours
		agg.overtime += e.OvertimeHours
		agg.employees[e.EmployeeID.String()] = struct{}{}
	}

	// one row per calendar day, zero-filled; the store never produces
	// empty-day rows
	res := make([]DailySummaryResponse, 0, int(end.Sub(start).Hours()/24)+1)
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		key := day.Format("2006-01-02")
		row := DailySummaryResponse{Date: key}
		if agg, ok := byDate[key]; ok {
			row.NormalHours = agg.normal
			row.OvertimeHours = agg.overtime
			row.TotalHours = agg.normal + agg.overtime
			row.TotalWorkUnits = WorkUnits(agg.normal, agg.overtime)
			row.Headcount = len(agg.employees)
		}
		res = append(res, row)
	}

	if cacheable {
		if payload, err := json.Marshal(res); err == nil {
			s.rdb.Set(ctx, cacheKey, payload, summaryCacheTTL)
		}
	}

	return res, nil
}

func (s *service) SummaryByProject(ctx context.Context, tenantID string, q SummaryQuery) ([]ProjectSummaryResponse, error) {
	start, end, err := resolveRange(q)
	if err != nil {
		return nil, err
	}
	filter, _, err := s.buildRangeFilter(ctx, tenantID, q)
	if err != nil {
		return nil, err
	}

	entries, err := s.repo.FindRange(ctx, tenantID, start, end, filter)
	if err != nil {
		s.logger.Error("summary by project range query failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	type group struct {
		id    *string
		name  string
		hours float64
		units float64
	}
	groups := make(map[string]*group)
	for _, e := range entries {
		key := ""
		if e.ProjectID != nil {
			key = e.ProjectID.String()
		}
		g, ok := groups[key]
		if !ok {
			g = &group{}
			switch {
			case e.ProjectID == nil:
				g.name = unassignedProjectLabel
			case e.Project != nil:
				id := e.ProjectID.String()
				g.id = &id
				g.name = e.Project.Name
			default:
				id := e.ProjectID.String()
				g.id = &id
				g.name = unknownProjectLabel
			}
			groups[key] = g
		}
		g.hours += e.NormalHours + e.OvertimeHours
		g.units += WorkUnits(e.NormalHours, e.OvertimeHours)
	}

	res := make([]ProjectSummaryResponse, 0, len(groups))
	for _, g := range groups {
		res = append(res, ProjectSummaryResponse{
			ProjectID:   g.id,
			ProjectName: g.name,
			TotalHours:  g.hours,
			WorkUnits:   g.units,
		})
	}
	sort.Slice(res, func(i, j int) bool {
		if res[i].WorkUnits != res[j].WorkUnits {
			return res[i].WorkUnits > res[j].WorkUnits
		}
		return res[i].ProjectName < res[j].ProjectName
	})
	return res, nil
}

func (s *service) SummaryByEmployee(ctx context.Context, tenantID string, q SummaryQuery) ([]EmployeeSummaryResponse, error) {
	start, end, err := resolveRange(q)
	if err != nil {
		return nil, err
	}
	filter, _, err := s.buildRangeFilter(ctx, tenantID, q)
	if err != nil {
		return nil, err
	}

	entries, err := s.repo.FindRange(ctx, tenantID, start, end, filter)
	if err != nil {
		s.logger.Error("summary by employee range query failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	type group struct {
		name  string
		hours float64
		units float64
	}
	groups := make(map[string]*group)
	for _, e := range entries {
		key := e.EmployeeID.String()
		g, ok := groups[key]
		if !ok {
			g = &group{name: unknownEmployeeLabel}
			if e.Employee != nil {
				g.name = e.Employee.Name
			}
			groups[key] = g
		}
		g.hours += e.NormalHours + e.OvertimeHours
		g.units += WorkUnits(e.NormalHours, e.OvertimeHours)
	}

	res := make([]EmployeeSummaryResponse, 0, len(groups))
	for id, g := range groups {
		res = append(res, EmployeeSummaryResponse{
			EmployeeID:   id,
			EmployeeName: g.name,
			TotalHours:   g.hours,
			WorkUnits:    g.units,
		})
	}
	sort.Slice(res, func(i, j int) bool {
		if res[i].WorkUnits != res[j].WorkUnits {
			return res[i].WorkUnits > res[j].WorkUnits
		}
		return res[i].EmployeeName < res[j].EmployeeName
	})
	return res, nil
}

// buildRangeFilter translates query filters into a RangeFilter. The
// employee_type / work_type filters resolve matching employee ids
// first; filtered reports whether any filter narrowed the query.
func (s *service) buildRangeFilter(ctx context.Context, tenantID string, q SummaryQuery) (RangeFilter, bool, error) {
	filter := RangeFilter{
		EmployeeID: q.EmployeeID,
		ProjectID:  q.ProjectID,
	}
	filtered := q.EmployeeID != "" || q.ProjectID != ""

	if q.EmployeeType != "" || q.WorkType != "" {
		ids, err := s.repo.FindEmployeeIDsByClass(ctx, tenantID, q.EmployeeType, q.WorkType)
		if err != nil {
			return RangeFilter{}, false, err
		}
		if ids == nil {
			ids = []string{}
		}
		filter.EmployeeIDs = ids
		filtered = true
	}

	return filter, filtered, nil
}

func (s *service) resolveProject(ctx context.Context, qtx Repository, tenantID string, projectID *string) (*ProjectRef, *uuid.UUID, error) {
	if projectID == nil || *projectID == "" {
		return nil, nil, nil
	}

	proj, err := qtx.FindActiveProject(ctx, tenantID, *projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, timeentryerrors.ErrProjectNotFound
		}
		return nil, nil, err
	}

	id := uuid.MustParse(*projectID)
	return proj, &id, nil
}

// resolveRange yields the inclusive [start, end] day range: a single
// day, or the first-to-last day of a calendar month. date wins when
// both are supplied.
func resolveRange(q SummaryQuery) (time.Time, time.Time, error) {
	if strings.TrimSpace(q.Date) != "" {
		day, err := parseWorkDate(q.Date)
		if err != nil {
			return time.Time{}, time.Time{}, timeentryerrors.ErrInvalidDate
		}
		return day, day, nil
	}

	if strings.TrimSpace(q.Month) != "" {
		first, err := time.ParseInLocation("2006-01", q.Month, time.UTC)
		if err != nil {
			return time.Time{}, time.Time{}, timeentryerrors.ErrInvalidMonth
		}
		last := first.AddDate(0, 1, -1)
		return first, last, nil
	}

	return time.Time{}, time.Time{}, timeentryerrors.ErrMissingRange
}

func parseWorkDate(s string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", s, time.UTC)
}

func hoursOrDefault(v *float64) float64 {
	if v == nil {
		return defaultNormalHours
	}
	return *v
}

func normalizeRemark(r *string) *string {
	if r == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*r)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// distinct keeps the first occurrence of each value, preserving input
// order; batch iteration order is defined by it.
func distinct(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

func mapToResponse(e TimeEntry) TimeEntryResponse {
	resp := TimeEntryResponse{
		ID:            e.ID.String(),
		EmployeeID:    e.EmployeeID.String(),
		WorkDate:      e.WorkDate.Format("2006-01-02"),
		NormalHours:   e.NormalHours,
		OvertimeHours: e.OvertimeHours,
		Remark:        e.Remark,
		TotalHours:    e.NormalHours + e.OvertimeHours,
		WorkUnits:     WorkUnits(e.NormalHours, e.OvertimeHours),
		CreatedAt:     e.CreatedAt.Format(time.RFC3339),
	}
	if e.Employee != nil {
		resp.EmployeeName = e.Employee.Name
		resp.EmployeeType = e.Employee.Type
		resp.WorkType = e.Employee.WorkType
	}
	if e.ProjectID != nil {
		id := e.ProjectID.String()
		resp.ProjectID = &id
	}
	if e.Project != nil {
		name := e.Project.Name
		resp.ProjectName = &name
	}
	return resp
}
