package attendance

import (
	"net/http"
	"time"

	attendanceerrors "github.com/vivek068790/Employee-Register-App/internal/attendance/errors"
	"github.com/vivek068790/Employee-Register-App/internal/domain"
	"github.com/vivek068790/Employee-Register-App/internal/shared/apperror"
	"github.com/vivek068790/Employee-Register-App/internal/shared/query"
	"github.com/vivek068790/Employee-Register-App/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	now     func() time.Time
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("attendance.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.handler")
	}
	return &Handler{service: service, now: time.Now, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("attendance request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Mark(c *gin.Context) {
	var req MarkAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http mark attendance validation failed", zap.Error(err))
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Mark(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetByDate(c *gin.Context) {
	date, err := query.Date(c, "date", h.now())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	resp, err := h.service.ListByDate(c.Request.Context(), date)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetUnmarked(c *gin.Context) {
	date, err := query.Date(c, "date", h.now())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	resp, err := h.service.Unmarked(c.Request.Context(), date)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetByStatus(c *gin.Context) {
	status := domain.Status(c.Param("status"))
	if !status.Valid() {
		h.writeServiceError(c, attendanceerrors.ErrInvalidStatus)
		return
	}
	date, err := query.Date(c, "date", h.now())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	resp, err := h.service.ByStatus(c.Request.Context(), date, status)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

// MarkUnmarkedAbsent marks everyone without a record on ?date= (default
// today) as absent.
func (h *Handler) MarkUnmarkedAbsent(c *gin.Context) {
	date, err := query.Date(c, "date", h.now())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	resp, err := h.service.MarkUnmarkedAbsent(c.Request.Context(), date)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}
