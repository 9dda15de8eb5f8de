package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware gin.HandlerFunc) {
	group := g.Group("/loans")
	group.Use(authMiddleware)
	{
		group.GET("", h.List)
		group.POST("", h.Borrow)
		group.POST("/return", h.Return)
	}
}
