package auth

import (
	"net/http"

	"github.com/ifzc/easy-record-working-api/internal/shared/apperror"
	"github.com/ifzc/easy-record-working-api/internal/shared/response"

	"github.com/gin-gonic/gin"
)

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

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	res, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) Me(c *gin.Context) {
	tid := c.GetString("tenant_id")
	uid := c.GetString("user_id")
	if tid == "" || uid == "" {
		writeServiceError(c, apperror.ErrUnauthenticated)
		return
	}

	res, err := h.service.Me(c.Request.Context(), tid, uid)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) ChangePassword(c *gin.Context) {
	tid := c.GetString("tenant_id")
	uid := c.GetString("user_id")
	if tid == "" || uid == "" {
		writeServiceError(c, apperror.ErrUnauthenticated)
		return
	}

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	if err := h.service.ChangePassword(c.Request.Context(), tid, uid, req); err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"changed": true}, nil)
}

// Logout is stateless; tokens simply age out. The endpoint exists so
// clients have a uniform call to clear their session against.
func (h *Handler) Logout(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"logged_out": true}, nil)
}
