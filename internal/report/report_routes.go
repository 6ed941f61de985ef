package report

import (
	"github.com/vivek068790/Employee-Register-App/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	sessions := r.Group("/sessions")
	{
		sessions.GET("", h.GetSessions)
		sessions.GET("/recent", h.GetRecent)
		sessions.GET("/:date", h.GetSession)
		sessions.GET("/:date/stats", h.GetDayStats)
		sessions.GET("/:date/export", middleware.RateLimitByIP(1, 5), h.ExportSession)
	}

	stats := r.Group("/stats")
	{
		stats.GET("/overall", h.GetOverall)
		stats.GET("/monthly", h.GetMonthly)
		stats.GET("/monthly/employees", h.GetMonthlyByEmployee)
	}
}
