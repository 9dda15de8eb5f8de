package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, adminMiddleware gin.HandlerFunc) {
	group := g.Group("/bookings")
	group.Use(authMiddleware)
	{
		group.GET("", h.List)
		group.GET("/:id", h.Get)
		group.POST("", h.Create)
		group.DELETE("/:id", h.Cancel)
		group.PATCH("/:id/status", adminMiddleware, h.Decide)
	}

	// Availability hangs off the facility path but is driven by the
	// booking schedule, so it lives with the booking handlers.
	g.GET("/facilities/:id/available-times", authMiddleware, h.AvailableTimes)
}
