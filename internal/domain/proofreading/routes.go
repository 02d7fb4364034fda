package proofreading

import "github.com/gin-gonic/gin"

func RegisterRoutes(rg *gin.RouterGroup, h *Handler) {
	g := rg.Group("/file-proofreading")
	{
		g.POST("", h.Create)
		g.GET("", h.List)
		g.GET("/:proofreading_id", h.GetByID)
		g.PUT("/:proofreading_id", h.Update)
		g.DELETE("/:proofreading_id", h.Delete)
	}
}
