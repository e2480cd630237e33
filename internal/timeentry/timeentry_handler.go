package timeentry

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/ifzc/easy-record-working-api/internal/shared/apperror"
	"github.com/ifzc/easy-record-working-api/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

type Handler struct {
	service Service
	rdb     *redis.Client
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// NewHandlerWithRedis enables idempotency-key completion on batch
// creation.
func NewHandlerWithRedis(service Service, rdb *redis.Client) *Handler {
	return &Handler{service: service, rdb: rdb}
}

func writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// tenantID returns the caller's tenant or writes 401 and returns "".
func tenantID(c *gin.Context) string {
	tid := c.GetString("tenant_id")
	if tid == "" {
		writeServiceError(c, apperror.ErrUnauthenticated)
	}
	return tid
}

func (h *Handler) List(c *gin.Context) {
	tid := tenantID(c)
	if tid == "" {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if pageSize < 1 {
		pageSize = 20
	}
	if pageSize > 200 {
		pageSize = 200
	}

	q := ListQuery{
		Date:         c.Query("date"),
		Keyword:      c.Query("keyword"),
		EmployeeType: c.Query("employee_type"),
		ProjectID:    c.Query("project_id"),
		Sort:         c.Query("sort"),
		Page:         page,
		PageSize:     pageSize,
	}

	res, total, err := h.service.List(c.Request.Context(), tid, q)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	meta := response.NewPaginationMeta(total, page, pageSize)
	response.Success(c, http.StatusOK, res, &meta)
}

func (h *Handler) Create(c *gin.Context) {
	tid := tenantID(c)
	if tid == "" {
		return
	}

	var req CreateTimeEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	res, err := h.service.Create(c.Request.Context(), tid, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, res, nil)
}

func (h *Handler) Update(c *gin.Context) {
	tid := tenantID(c)
	if tid == "" {
		return
	}

	var req UpdateTimeEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	res, err := h.service.Update(c.Request.Context(), tid, c.Param("id"), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) Delete(c *gin.Context) {
	tid := tenantID(c)
	if tid == "" {
		return
	}

	if err := h.service.Delete(c.Request.Context(), tid, c.Param("id")); err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{}, nil)
}

func (h *Handler) BatchCreate(c *gin.Context) {
	tid := tenantID(c)
	if tid == "" {
		return
	}

	var req BatchCreateTimeEntriesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	res, err := h.service.BatchCreate(c.Request.Context(), tid, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	h.completeIdempotency(c, res)
	response.Success(c, http.StatusOK, res, nil)
}

// completeIdempotency stores the response under the key the middleware
// reserved and releases its lock.
func (h *Handler) completeIdempotency(c *gin.Context, res any) {
	if h.rdb == nil {
		return
	}
	cacheKey := c.GetString("idempotency_cache_key")
	lockKey := c.GetString("idempotency_lock_key")
	if cacheKey == "" {
		return
	}

	if payload, err := json.Marshal(res); err == nil {
		h.rdb.Set(c.Request.Context(), cacheKey, payload, 24*time.Hour)
	}
	if lockKey != "" {
		h.rdb.Del(c.Request.Context(), lockKey)
	}
}

func summaryQuery(c *gin.Context) SummaryQuery {
	return SummaryQuery{
		Date:         c.Query("date"),
		Month:        c.Query("month"),
		EmployeeID:   c.Query("employee_id"),
		EmployeeType: c.Query("employee_type"),
		WorkType:     c.Query("work_type"),
		ProjectID:    c.Query("project_id"),
	}
}

func (h *Handler) Summary(c *gin.Context) {
	tid := tenantID(c)
	if tid == "" {
		return
	}

	res, err := h.service.Summary(c.Request.Context(), tid, summaryQuery(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) SummaryByProject(c *gin.Context) {
	tid := tenantID(c)
	if tid == "" {
		return
	}

	res, err := h.service.SummaryByProject(c.Request.Context(), tid, summaryQuery(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) SummaryByEmployee(c *gin.Context) {
	tid := tenantID(c)
	if tid == "" {
		return
	}

	res, err := h.service.SummaryByEmployee(c.Request.Context(), tid, summaryQuery(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}
