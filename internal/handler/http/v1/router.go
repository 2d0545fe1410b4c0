package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Маршрут Health-check доступен без ключа
	api.GET("/system/health", h.healthCheck)

	protected := api.Group("", APIKeyAuthMiddleware(h.cfg, h.logger))

	family := protected.Group("/family")
	{
		family.GET("", h.getFamily)
		family.POST("/create", h.createFamily)
		family.POST("/join", h.joinFamily)
	}

	members := protected.Group("/members")
	{
		members.GET("", h.listMembers)
		members.GET("/:id", h.getMember)
	}

	// Устройство передает сюда позиции и сбои датчика
	location := protected.Group("/location")
	{
		location.POST("/fix", h.submitFix)
		location.POST("/error", h.reportSensorError)
	}

	tracking := protected.Group("/tracking")
	{
		tracking.GET("/status", h.trackingStatus)
		tracking.POST("/start", h.startTracking)
		tracking.POST("/stop", h.stopTracking)
	}

	reports := protected.Group("/reports")
	{
		reports.GET("", h.listReports)
		reports.POST("", h.broadcast)
	}

	automations := protected.Group("/automations")
	{
		automations.GET("", h.listAutomations)
		automations.POST("", h.createAutomation)
		automations.POST("/:id/toggle", h.toggleAutomation)
		automations.POST("/:id/members", h.toggleAutomationMember)
		automations.DELETE("/:id", h.deleteAutomation)
	}

	protected.PUT("/profile", h.updateProfile)

	settings := protected.Group("/settings")
	{
		settings.GET("/palette", h.getPalette)
		settings.PUT("/palette", h.setPalette)
	}

	protected.GET("/stats", h.getStats)
}
