package attendance

import (
	"github.com/vivek068790/Employee-Register-App/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	attendances := r.Group("/attendances")
	{
		attendances.GET("", h.GetByDate)
		attendances.GET("/unmarked", h.GetUnmarked)
		attendances.GET("/status/:status", h.GetByStatus)
		attendances.POST("", middleware.RateLimitByIP(5, 20), h.Mark)
		attendances.POST("/absent-unmarked", middleware.RateLimitByIP(0.2, 1), h.MarkUnmarkedAbsent)
	}
}
