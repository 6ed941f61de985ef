package payroll

import (
	"github.com/vivek068790/Employee-Register-App/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	payroll := r.Group("/payroll")
	{
		payroll.GET("", h.GetMonthly)
		payroll.GET("/export", middleware.RateLimitByIP(1, 5), h.Export)
		payroll.GET("/:employeeId/payslip", middleware.RateLimitByIP(2, 10), h.Payslip)
	}
}
