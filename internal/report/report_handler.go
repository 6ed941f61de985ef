package report

import (
	"net/http"
	"time"

	"github.com/vivek068790/Employee-Register-App/internal/shared/apperror"
	"github.com/vivek068790/Employee-Register-App/internal/shared/query"
	"github.com/vivek068790/Employee-Register-App/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const defaultRecentLimit = 7

type Handler struct {
	service Service
	now     func() time.Time
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("report.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("report.handler")
	}
	return &Handler{service: service, now: time.Now, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("report request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) GetSessions(c *gin.Context) {
	sessions := h.service.Sessions(c.Request.Context())
	meta := response.NewPaginationMeta(int64(len(sessions)), 1, len(sessions))
	response.Success(c, http.StatusOK, sessions, &meta)
}

func (h *Handler) GetRecent(c *gin.Context) {
	limit, err := query.Limit(c, defaultRecentLimit)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, h.service.Recent(c.Request.Context(), limit), nil)
}

func (h *Handler) GetSession(c *gin.Context) {
	date, err := query.Date(c, "date", h.now())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	session, err := h.service.Session(c.Request.Context(), date)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, session, nil)
}

func (h *Handler) GetDayStats(c *gin.Context) {
	date, err := query.Date(c, "date", h.now())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	stats, err := h.service.DayStats(c.Request.Context(), date)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, stats, nil)
}

func (h *Handler) ExportSession(c *gin.Context) {
	date, err := query.Date(c, "date", h.now())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	f, err := h.service.ExportSession(c.Request.Context(), date)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Attachment(c, http.StatusOK, f.Name, f.ContentType, f.Body)
}

func (h *Handler) GetOverall(c *gin.Context) {
	response.Success(c, http.StatusOK, h.service.Overall(c.Request.Context()), nil)
}

func (h *Handler) GetMonthly(c *gin.Context) {
	month, year, err := query.Period(c, h.now())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, h.service.Monthly(c.Request.Context(), month, year), nil)
}

func (h *Handler) GetMonthlyByEmployee(c *gin.Context) {
	month, year, err := query.Period(c, h.now())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, h.service.MonthlyByEmployee(c.Request.Context(), month, year), nil)
}
