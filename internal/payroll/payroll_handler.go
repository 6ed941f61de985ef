package payroll

import (
	"net/http"
	"strings"
	"time"

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
	l := zap.L().Named("payroll.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payroll.handler")
	}
	return &Handler{service: service, now: time.Now, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("payroll request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// GetMonthly: ?month=1..12&year=YYYY, both default to the current period.
func (h *Handler) GetMonthly(c *gin.Context) {
	month, year, err := query.Period(c, h.now())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	resp, err := h.service.GetMonthly(c.Request.Context(), month, year)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Export(c *gin.Context) {
	month, year, err := query.Period(c, h.now())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	format := Format(strings.TrimSpace(c.DefaultQuery("format", string(FormatCSV))))

	f, err := h.service.Export(c.Request.Context(), month, year, format)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Attachment(c, http.StatusOK, f.Name, f.ContentType, f.Body)
}

func (h *Handler) Payslip(c *gin.Context) {
	month, year, err := query.Period(c, h.now())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	f, err := h.service.Payslip(c.Request.Context(), c.Param("employeeId"), month, year)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Attachment(c, http.StatusOK, f.Name, f.ContentType, f.Body)
}
