package task

import "github.com/gin-gonic/gin"

func RegisterRoutes(rg *gin.RouterGroup, h *Handler) {
	g := rg.Group("/file-tasks")
	{
		g.POST("", h.Create)
		g.POST("/open/:file_id", h.Open)
		g.GET("/:file_id", h.GetByFileID)
		g.GET("/:file_id/details", h.GetDetails)
		g.PUT("/:file_id", h.Update)
	}
}
