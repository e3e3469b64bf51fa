package http

import (
	"github.com/gin-gonic/gin"

	"shareit/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
// Search is public; everything else needs a caller.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.GET("/items/search", h.Search)

	items := rg.Group("/items", mw.Caller())
	{
		items.POST("", h.Create)
		items.GET("", h.ListByOwner)
		items.GET("/:id", h.Detail)
		items.PATCH("/:id", h.Update)
		items.DELETE("/:id", h.Delete)
		items.POST("/:id/comment", h.CreateComment)
	}
}
