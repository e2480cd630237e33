package employee

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/ifzc/easy-record-working-api/internal/shared/apperror"
	"github.com/ifzc/easy-record-working-api/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// importMaxBytes caps an uploaded CSV at 2 MiB.
const importMaxBytes = 2 << 20

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func tenantID(c *gin.Context) string {
	tid := c.GetString("tenant_id")
	if tid == "" {
		writeServiceError(c, apperror.ErrUnauthenticated)
	}
	return tid
}

func (h *Handler) Create(c *gin.Context) {
	tid := tenantID(c)
	if tid == "" {
		return
	}

	var req CreateEmployeeRequest
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
		Keyword:  c.Query("keyword"),
		Type:     c.Query("type"),
		WorkType: c.Query("work_type"),
		Active:   c.Query("active"),
		Page:     page,
		PageSize: pageSize,
	}

	res, total, err := h.service.List(c.Request.Context(), tid, q)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	meta := response.NewPaginationMeta(total, page, pageSize)
	response.Success(c, http.StatusOK, res, &meta)
}

func (h *Handler) GetOptions(c *gin.Context) {
	tid := tenantID(c)
	if tid == "" {
		return
	}

	res, err := h.service.GetOptions(c.Request.Context(), tid)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) GetByID(c *gin.Context) {
	tid := tenantID(c)
	if tid == "" {
		return
	}

	res, err := h.service.GetByID(c.Request.Context(), tid, c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) Update(c *gin.Context) {
	tid := tenantID(c)
	if tid == "" {
		return
	}

	var req UpdateEmployeeRequest
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
	response.Success(c, http.StatusOK, gin.H{"deleted": true}, nil)
}

// ImportCSV accepts a multipart upload under the "file" field.
func (h *Handler) ImportCSV(c *gin.Context) {
	tid := tenantID(c)
	if tid == "" {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		writeServiceError(c, apperror.RequiredField("file"))
		return
	}
	if fileHeader.Size > importMaxBytes {
		writeServiceError(c, apperror.New(apperror.CodeInvalidInput, "File exceeds the 2MB limit", http.StatusBadRequest))
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		writeServiceError(c, apperror.ErrInternal)
		return
	}
	defer f.Close()

	res, err := h.service.ImportCSV(c.Request.Context(), tid, f)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) ExportCSV(c *gin.Context) {
	tid := tenantID(c)
	if tid == "" {
		return
	}

	data, err := h.service.ExportCSV(c.Request.Context(), tid)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	filename := fmt.Sprintf("employees-%s.csv", time.Now().Format("20060102"))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}
