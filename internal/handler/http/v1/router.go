package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты локального API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Жизненный цикл панели водителя
	sessions := api.Group("/session")
	{
		sessions.POST("", h.mountSession)
		sessions.DELETE("", h.unmountSession)
		sessions.GET("/status", h.sessionStatus)
	}

	// Шлюз допуска и ручное обновление позиции
	api.POST("/gate/retry", h.retryGate)
	api.POST("/location/refresh", h.refreshLocation)

	// Заказы: отдаются только при открытом шлюзе
	orders := api.Group("/orders")
	{
		orders.GET("/available", h.availableOrders)
		orders.GET("", h.myOrders)
		orders.GET("/requested", h.requestedOrders)
		orders.POST("/:id/accept", h.acceptOrder)
		orders.POST("/:id/accept_request", h.acceptRequest)
		orders.POST("/:id/reject_request", h.rejectRequest)
		orders.POST("/:id/status", h.updateOrderStatus)
	}

	// Профиль, заработок, чат поддержки
	api.GET("/earnings", h.earnings)
	api.GET("/profile", h.profile)
	api.PUT("/profile", h.updateProfile)
	api.POST("/support/chat", h.supportChat)

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
