package app

import (
	"net/http"

	"github.com/vivek068790/Employee-Register-App/internal/attendance"
	"github.com/vivek068790/Employee-Register-App/internal/employee"
	"github.com/vivek068790/Employee-Register-App/internal/middleware"
	"github.com/vivek068790/Employee-Register-App/internal/payroll"
	"github.com/vivek068790/Employee-Register-App/internal/report"
	"github.com/vivek068790/Employee-Register-App/internal/shared/response"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RegisterRoutes mounts every feature under /api/v1.
func (a *App) RegisterRoutes(router *gin.Engine) {
	router.Use(middleware.RequestID(), middleware.ContextLogger(a.logger))

	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok", "store": a.cfg.Store.Driver}, nil)
	})

	api := router.Group("/api/v1")
	api.Use(middleware.RateLimitByIP(rate.Limit(a.cfg.RateLimitRPS), a.cfg.RateLimitBurst))
	{
		employee.RegisterRoutes(api, employee.NewHandler(a.Employees, a.logger))
		attendance.RegisterRoutes(api, attendance.NewHandler(a.Attendance, a.logger))
		payroll.RegisterRoutes(api, payroll.NewHandler(a.Payroll, a.logger))
		report.RegisterRoutes(api, report.NewHandler(a.Reports, a.logger))
	}
}
